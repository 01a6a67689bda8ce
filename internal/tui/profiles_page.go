package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sakhi/internal/app"
)

// Form field order matches the original two-step wizard: farmer
// details first, then farm details.
const (
	fieldName = iota
	fieldAge
	fieldContact
	fieldLocation
	fieldLandSize
	fieldCropType
	fieldSoilType
	fieldIrrigation
	fieldCount
)

const farmerFieldCount = 3 // name, age, contact belong to step 1

var fieldLabels = [fieldCount]string{
	"profile.field.name",
	"profile.field.age",
	"profile.field.contact",
	"profile.field.location",
	"profile.field.landsize",
	"profile.field.croptype",
	"profile.field.soiltype",
	"profile.field.irrigation",
}

type profileForm struct {
	editID string // "" means create
	step   int    // 1 or 2
	focus  int
	inputs [fieldCount]textinput.Model
	errMsg string
}

// profilesModel owns the profile page: the list view and, when open,
// the create/edit form.
type profilesModel struct {
	app    *app.Application
	theme  Theme
	width  int
	height int

	cursor int
	form   *profileForm
	status string
}

func newProfilesModel(application *app.Application, theme Theme) profilesModel {
	return profilesModel{app: application, theme: theme}
}

func (p *profilesModel) resize(width, height int) {
	p.width = width
	p.height = height
}

func (p *profilesModel) inForm() bool      { return p.form != nil }
func (p *profilesModel) capturesTab() bool { return p.form != nil }

func (p *profilesModel) openForm(edit *app.Profile) {
	f := &profileForm{step: 1}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = p.app.T(fieldLabels[i])
		ti.CharLimit = 64
		ti.Width = 32
		f.inputs[i] = ti
	}
	if edit != nil {
		f.editID = edit.ID
		f.inputs[fieldName].SetValue(edit.Name)
		f.inputs[fieldAge].SetValue(strconv.Itoa(edit.Age))
		f.inputs[fieldContact].SetValue(edit.Contact)
		f.inputs[fieldLocation].SetValue(edit.Location)
		f.inputs[fieldLandSize].SetValue(edit.LandSize)
		f.inputs[fieldCropType].SetValue(edit.CropType)
		f.inputs[fieldSoilType].SetValue(edit.SoilType)
		f.inputs[fieldIrrigation].SetValue(edit.IrrigationMethod)
	}
	f.inputs[fieldName].Focus()
	p.form = f
}

func (p *profilesModel) update(msg tea.Msg) tea.Cmd {
	if p.form != nil {
		return p.updateForm(msg)
	}
	return p.updateList(msg)
}

func (p *profilesModel) updateList(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	profiles := p.app.Profiles.List()
	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(profiles)-1 {
			p.cursor++
		}
	case "n":
		p.openForm(nil)
	case "e":
		if p.cursor < len(profiles) {
			prof := profiles[p.cursor]
			p.openForm(&prof)
		}
	case "d":
		if p.cursor < len(profiles) {
			p.app.Profiles.Delete(profiles[p.cursor].ID)
			if p.cursor > 0 {
				p.cursor--
			}
			p.status = ""
		}
	case "enter":
		if p.cursor < len(profiles) {
			if err := p.app.Profiles.Select(profiles[p.cursor].ID); err == nil {
				p.status = fmt.Sprintf("selected %s", profiles[p.cursor].Name)
			}
		}
	case "c":
		p.app.Profiles.Select("")
		p.status = "selection cleared"
	}
	return nil
}

func (p *profilesModel) updateForm(msg tea.Msg) tea.Cmd {
	f := p.form
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	lo, hi := f.stepBounds()
	switch keyMsg.String() {
	case "esc":
		p.form = nil
		return nil
	case "tab", "down":
		f.setFocus(clampFocus(f.focus+1, lo, hi))
		return nil
	case "shift+tab", "up":
		f.setFocus(clampFocus(f.focus-1, lo, hi))
		return nil
	case "enter":
		if f.focus < hi {
			f.setFocus(f.focus + 1)
			return nil
		}
		if f.step == 1 {
			f.step = 2
			f.errMsg = ""
			f.setFocus(farmerFieldCount)
			return nil
		}
		p.submitForm()
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *profileForm) stepBounds() (lo, hi int) {
	if f.step == 1 {
		return 0, farmerFieldCount - 1
	}
	return farmerFieldCount, fieldCount - 1
}

func clampFocus(v, lo, hi int) int {
	if v < lo {
		return hi
	}
	if v > hi {
		return lo
	}
	return v
}

func (f *profileForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

func (f *profileForm) fields() app.ProfileFields {
	age, _ := strconv.Atoi(strings.TrimSpace(f.inputs[fieldAge].Value()))
	return app.ProfileFields{
		Name:             f.inputs[fieldName].Value(),
		Age:              age,
		Contact:          f.inputs[fieldContact].Value(),
		Location:         f.inputs[fieldLocation].Value(),
		LandSize:         f.inputs[fieldLandSize].Value(),
		CropType:         f.inputs[fieldCropType].Value(),
		SoilType:         f.inputs[fieldSoilType].Value(),
		IrrigationMethod: f.inputs[fieldIrrigation].Value(),
	}
}

func (p *profilesModel) submitForm() {
	f := p.form
	fields := f.fields()

	var err error
	if f.editID == "" {
		_, err = p.app.Profiles.Create(fields)
	} else {
		_, err = p.app.Profiles.Update(f.editID, fields)
	}
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			f.errMsg = verr.Error()
			// Jump back to the step holding the first bad field.
			if idx := firstBadField(verr); idx >= 0 {
				if idx < farmerFieldCount {
					f.step = 1
				} else {
					f.step = 2
				}
				f.setFocus(idx)
			}
			return
		}
		f.errMsg = err.Error()
		return
	}
	p.form = nil
	p.status = ""
	p.cursor = p.app.Profiles.Len() - 1
}

func firstBadField(verr *app.ValidationError) int {
	names := [fieldCount]string{
		"name", "age", "contact", "location",
		"land_size", "crop_type", "soil_type", "irrigation_method",
	}
	for i, n := range names {
		for _, bad := range verr.Fields {
			if bad == n {
				return i
			}
		}
	}
	return -1
}

func (p *profilesModel) view() string {
	if p.form != nil {
		return p.formView()
	}
	return p.listView()
}

func (p *profilesModel) listView() string {
	var b strings.Builder
	b.WriteString(p.theme.PaneTitle.Render(p.app.T("features.profile")))
	b.WriteString("\n\n")

	profiles := p.app.Profiles.List()
	if len(profiles) == 0 {
		b.WriteString(p.theme.PaneTitle.Render(p.app.T("profile.empty.title")))
		b.WriteString("\n")
		b.WriteString(p.app.T("profile.empty.body"))
		b.WriteString("\n\n")
	} else {
		selected, hasSelected := p.app.Profiles.Selected()
		for i, prof := range profiles {
			cursor := "  "
			if i == p.cursor {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s — %s, %s (%s)", cursor, prof.Name, prof.CropType, prof.Location, prof.LandSize)
			if hasSelected && prof.ID == selected.ID {
				line = p.theme.Selected.Render(line + "  *")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if p.status != "" {
		b.WriteString(p.theme.TopBarMeta.Render(p.status))
		b.WriteString("\n")
	}
	b.WriteString(p.theme.Footer.Render("n: " + p.app.T("profile.create") + "  e: edit  d: delete  enter: select  c: clear"))
	return p.theme.Pane.Width(p.paneWidth()).Render(b.String())
}

func (p *profilesModel) formView() string {
	f := p.form
	var b strings.Builder

	title := p.app.T("profile.create")
	if f.editID != "" {
		title = p.app.T("profile.edit")
	}
	b.WriteString(p.theme.PaneTitle.Render(title))
	b.WriteString("\n")

	stepTitle := p.app.T("profile.farmer.details")
	if f.step == 2 {
		stepTitle = p.app.T("profile.farm.details")
	}
	b.WriteString(p.theme.TopBarMeta.Render(fmt.Sprintf("step %d/2 — %s", f.step, stepTitle)))
	b.WriteString("\n\n")

	lo, hi := f.stepBounds()
	for i := lo; i <= hi; i++ {
		b.WriteString(p.app.T(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(p.theme.ErrText.Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.theme.Footer.Render("enter: next  tab: move  esc: cancel"))
	return p.theme.Pane.Width(p.paneWidth()).Render(b.String())
}

func (p *profilesModel) paneWidth() int {
	w := p.width - 2
	if w < 20 {
		w = 20
	}
	return w
}
