package app

import (
	"strings"
	"sync"
	"time"
)

// Profile is one farmer/farm record held in the session-scoped
// directory. ID and CreatedAt are assigned at creation and never change.
type Profile struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Contact          string    `json:"contact"`
	Location         string    `json:"location"`
	LandSize         string    `json:"land_size"`
	CropType         string    `json:"crop_type"`
	SoilType         string    `json:"soil_type"`
	IrrigationMethod string    `json:"irrigation_method"`
	CreatedAt        time.Time `json:"created_at"`
}

// ProfileFields is the caller-supplied portion of a profile.
type ProfileFields struct {
	Name             string
	Age              int
	Contact          string
	Location         string
	LandSize         string
	CropType         string
	SoilType         string
	IrrigationMethod string
}

func (f ProfileFields) validate() error {
	var bad []string
	text := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			bad = append(bad, name)
		}
	}
	text("name", f.Name)
	if f.Age <= 0 {
		bad = append(bad, "age")
	}
	text("contact", f.Contact)
	text("location", f.Location)
	text("land_size", f.LandSize)
	text("crop_type", f.CropType)
	text("soil_type", f.SoilType)
	text("irrigation_method", f.IrrigationMethod)
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

// Directory holds the farm profiles created during the session and the
// currently selected profile. Everything is in memory; nothing survives
// the process.
//
// The TUI event loop and conversation reply timers run on different
// goroutines, so access is guarded by a mutex.
type Directory struct {
	mu       sync.RWMutex
	ids      IDGenerator
	clock    Clock
	profiles []Profile
	selected string // profile id, "" when nothing is selected
}

// NewDirectory builds an empty directory. Nil ids/clock fall back to
// the production implementations.
func NewDirectory(ids IDGenerator, clock Clock) *Directory {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if clock == nil {
		clock = SystemClock()
	}
	return &Directory{ids: ids, clock: clock}
}

// Create validates fields, assigns a fresh id and creation timestamp,
// appends the profile in insertion order, and selects it. Two profiles
// with identical field values are distinct entries.
func (d *Directory) Create(fields ProfileFields) (Profile, error) {
	if err := fields.validate(); err != nil {
		return Profile{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	p := Profile{
		ID:               d.ids.NewID(),
		Name:             fields.Name,
		Age:              fields.Age,
		Contact:          fields.Contact,
		Location:         fields.Location,
		LandSize:         fields.LandSize,
		CropType:         fields.CropType,
		SoilType:         fields.SoilType,
		IrrigationMethod: fields.IrrigationMethod,
		CreatedAt:        d.clock.Now(),
	}
	d.profiles = append(d.profiles, p)
	d.selected = p.ID
	return p, nil
}

// Update replaces all mutable fields of the profile with id, keeping
// ID and CreatedAt. Returns ErrNotFound for unknown ids with the
// directory unchanged.
func (d *Directory) Update(id string, fields ProfileFields) (Profile, error) {
	if err := fields.validate(); err != nil {
		return Profile{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	idx := d.indexOf(id)
	if idx < 0 {
		return Profile{}, ErrNotFound
	}
	p := &d.profiles[idx]
	p.Name = fields.Name
	p.Age = fields.Age
	p.Contact = fields.Contact
	p.Location = fields.Location
	p.LandSize = fields.LandSize
	p.CropType = fields.CropType
	p.SoilType = fields.SoilType
	p.IrrigationMethod = fields.IrrigationMethod
	return *p, nil
}

// Delete removes the profile with id and reports whether anything was
// removed. Deleting an unknown id is a no-op. Deleting the selected
// profile clears the selection.
func (d *Directory) Delete(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	idx := d.indexOf(id)
	if idx < 0 {
		return false
	}
	d.profiles = append(d.profiles[:idx], d.profiles[idx+1:]...)
	if d.selected == id {
		d.selected = ""
	}
	return true
}

// Select makes the profile with id the selected one. An empty id
// clears the selection. Unknown non-empty ids return ErrNotFound and
// leave the selection unchanged.
func (d *Directory) Select(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id == "" {
		d.selected = ""
		return nil
	}
	if d.indexOf(id) < 0 {
		return ErrNotFound
	}
	d.selected = id
	return nil
}

// Selected returns the selected profile, if any.
func (d *Directory) Selected() (Profile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.selected == "" {
		return Profile{}, false
	}
	idx := d.indexOf(d.selected)
	if idx < 0 {
		return Profile{}, false
	}
	return d.profiles[idx], true
}

// Get returns the profile with id, if present.
func (d *Directory) Get(id string) (Profile, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	idx := d.indexOf(id)
	if idx < 0 {
		return Profile{}, false
	}
	return d.profiles[idx], true
}

// List returns a copy of the profiles in insertion order.
func (d *Directory) List() []Profile {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Profile, len(d.profiles))
	copy(out, d.profiles)
	return out
}

// Len returns the number of profiles.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.profiles)
}

// indexOf requires d.mu held.
func (d *Directory) indexOf(id string) int {
	for i := range d.profiles {
		if d.profiles[i].ID == id {
			return i
		}
	}
	return -1
}
