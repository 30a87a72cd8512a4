package domain

import "testing"

func TestStatBlockAddSub(t *testing.T) {
	base := StatBlock{HP: 500, Power: 50, Defense: 30, Speed: 20}
	delta := StatBlock{Power: 10, Speed: -5}

	got := base.Add(delta)
	if got.Power != 60 || got.Speed != 15 || got.HP != 500 || got.Defense != 30 {
		t.Errorf("Add produced %+v", got)
	}

	// Sub must be the exact inverse of Add
	if restored := got.Sub(delta); restored != base {
		t.Errorf("Sub did not restore base: got %+v, want %+v", restored, base)
	}
}

func TestStatBlockIsZero(t *testing.T) {
	if !(StatBlock{}).IsZero() {
		t.Error("zero value should report IsZero")
	}
	if (StatBlock{HP: 1}).IsZero() {
		t.Error("non-zero block should not report IsZero")
	}
}

func TestMountingLocationValid(t *testing.T) {
	for _, loc := range MountingLocations {
		if !loc.Valid() {
			t.Errorf("expected %s to be valid", loc)
		}
	}
	if MountingLocation("신발").Valid() {
		t.Error("unknown location should be invalid")
	}
	if MountingLocation("").Valid() {
		t.Error("empty location should be invalid")
	}
}
