package app

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func validFields() ProfileFields {
	return ProfileFields{
		Name:             "Ravi",
		Age:              40,
		Contact:          "999",
		Location:         "Kochi",
		LandSize:         "2 acres",
		CropType:         "Rice",
		SoilType:         "Clay",
		IrrigationMethod: "Flood",
	}
}

func newTestDirectory() *Directory {
	return NewDirectory(&SequenceGenerator{Prefix: "p"}, newFakeClock())
}

func TestCreateAssignsIdentityAndSelects(t *testing.T) {
	dir := newTestDirectory()

	p, err := dir.Create(validFields())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID != "p-1" {
		t.Fatalf("expected deterministic id p-1, got %q", p.ID)
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
	sel, ok := dir.Selected()
	if !ok || sel.ID != p.ID {
		t.Fatalf("expected new profile selected, got %+v ok=%v", sel, ok)
	}
}

func TestCreateUniqueIdsAndListLength(t *testing.T) {
	dir := NewDirectory(UUIDGenerator{}, SystemClock())
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := dir.Create(validFields())
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id %q", p.ID)
		}
		seen[p.ID] = true
	}
	if dir.Len() != 50 {
		t.Fatalf("expected 50 profiles, got %d", dir.Len())
	}

	list := dir.List()
	if !dir.Delete(list[10].ID) || !dir.Delete(list[20].ID) {
		t.Fatalf("expected deletes to succeed")
	}
	if dir.Len() != 48 {
		t.Fatalf("expected 48 profiles after deletes, got %d", dir.Len())
	}
}

func TestCreateAllowsDuplicateFieldValues(t *testing.T) {
	dir := newTestDirectory()
	a, _ := dir.Create(validFields())
	b, err := dir.Create(validFields())
	if err != nil {
		t.Fatalf("duplicate field values must be allowed: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("distinct entities must get distinct ids")
	}
}

func TestCreateValidation(t *testing.T) {
	dir := newTestDirectory()

	fields := validFields()
	fields.Name = "   "
	fields.Age = 0
	_, err := dir.Create(fields)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"name", "age"}
	if !reflect.DeepEqual(verr.Fields, want) {
		t.Fatalf("bad fields: got %v want %v", verr.Fields, want)
	}
	if dir.Len() != 0 {
		t.Fatalf("failed create must not mutate the directory")
	}
	if _, ok := dir.Selected(); ok {
		t.Fatalf("failed create must not select anything")
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	clock := newFakeClock()
	dir := NewDirectory(&SequenceGenerator{Prefix: "p"}, clock)
	p, _ := dir.Create(validFields())
	created := p.CreatedAt

	clock.Advance(time.Hour)
	fields := validFields()
	fields.Name = "Ravi Kumar"
	fields.CropType = "Banana"
	updated, err := dir.Update(p.ID, fields)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != p.ID {
		t.Fatalf("id must not change: got %q want %q", updated.ID, p.ID)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("createdAt must not change: got %v want %v", updated.CreatedAt, created)
	}
	if updated.Name != "Ravi Kumar" || updated.CropType != "Banana" {
		t.Fatalf("fields not replaced: %+v", updated)
	}

	// Selection identity unchanged, values refreshed.
	sel, ok := dir.Selected()
	if !ok || sel.Name != "Ravi Kumar" {
		t.Fatalf("selected view must reflect update, got %+v ok=%v", sel, ok)
	}
}

func TestUpdateUnknownIdLeavesDirectoryUnchanged(t *testing.T) {
	dir := newTestDirectory()
	p, _ := dir.Create(validFields())

	before := dir.List()
	_, err := dir.Update("missing", validFields())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !reflect.DeepEqual(dir.List(), before) {
		t.Fatalf("directory changed on failed update")
	}
	if sel, ok := dir.Selected(); !ok || sel.ID != p.ID {
		t.Fatalf("selection changed on failed update")
	}
}

func TestDeleteSelectionBehavior(t *testing.T) {
	dir := newTestDirectory()
	a, _ := dir.Create(validFields())
	b, _ := dir.Create(validFields())

	// b is selected (most recent create). Deleting a keeps selection.
	if !dir.Delete(a.ID) {
		t.Fatalf("expected delete of existing profile")
	}
	if sel, ok := dir.Selected(); !ok || sel.ID != b.ID {
		t.Fatalf("deleting non-selected profile must keep selection")
	}

	// Deleting the selected profile clears selection.
	if !dir.Delete(b.ID) {
		t.Fatalf("expected delete of existing profile")
	}
	if _, ok := dir.Selected(); ok {
		t.Fatalf("deleting selected profile must clear selection")
	}
}

func TestDeleteUnknownIdIsNoOp(t *testing.T) {
	dir := newTestDirectory()
	dir.Create(validFields())
	if dir.Delete("missing") {
		t.Fatalf("deleting unknown id must report false")
	}
	if dir.Len() != 1 {
		t.Fatalf("no-op delete must not change the directory")
	}
}

func TestSelect(t *testing.T) {
	dir := newTestDirectory()
	a, _ := dir.Create(validFields())
	dir.Create(validFields())

	if err := dir.Select(a.ID); err != nil {
		t.Fatalf("select: %v", err)
	}
	if sel, _ := dir.Selected(); sel.ID != a.ID {
		t.Fatalf("expected %q selected", a.ID)
	}

	if err := dir.Select("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if sel, _ := dir.Selected(); sel.ID != a.ID {
		t.Fatalf("failed select must not change selection")
	}

	if err := dir.Select(""); err != nil {
		t.Fatalf("clear selection: %v", err)
	}
	if _, ok := dir.Selected(); ok {
		t.Fatalf("expected empty selection")
	}
}

func TestListIsStableCopy(t *testing.T) {
	dir := newTestDirectory()
	dir.Create(validFields())
	dir.Create(validFields())

	first := dir.List()
	second := dir.List()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("list must be idempotent without intervening mutation")
	}

	first[0].Name = "mutated"
	if dir.List()[0].Name == "mutated" {
		t.Fatalf("list must return a copy")
	}
}
