package hospital

import (
	"errors"
	"path/filepath"
	"testing"

	"triage/patient"
)

func storePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "triage.db")
}

func mustOpenStore(t *testing.T, path string) *Store {
	t.Helper()
	st, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore(%q) failed: %v", path, err)
	}
	return st
}

func TestStoreRoundTrip(t *testing.T) {
	st := mustOpenStore(t, storePath(t))
	defer st.Close()

	rows := []struct {
		p     patient.Patient
		state State
	}{
		{patient.Patient{ID: 1, Name: "A", Age: 30, Priority: 2, Symptom: "cough"}, StateWaiting},
		{patient.Patient{ID: 2, Name: "B", Age: 61, Priority: 1, Symptom: "chest pain"}, StateInRoom},
		{patient.Patient{ID: 3, Name: "C", Age: 12, Priority: 3, Symptom: "rash"}, StateCompleted},
	}
	for i := range rows {
		if err := st.SavePatient(&rows[i].p, rows[i].state); err != nil {
			t.Fatalf("SavePatient(%d) failed: %v", rows[i].p.ID, err)
		}
	}

	got, err := st.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != len(rows) {
		t.Fatalf("LoadAll returned %d rows, want %d", len(got), len(rows))
	}
	for i := range rows {
		if got[i].Patient != rows[i].p {
			t.Fatalf("row %d = %+v, want %+v", i, got[i].Patient, rows[i].p)
		}
		if got[i].State != rows[i].state {
			t.Fatalf("row %d state = %d, want %d", i, got[i].State, rows[i].state)
		}
	}
}

func TestStoreLoadAllEmpty(t *testing.T) {
	st := mustOpenStore(t, storePath(t))
	defer st.Close()

	got, err := st.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh store returned %d rows", len(got))
	}
}

func TestStoreUpdateStatus(t *testing.T) {
	st := mustOpenStore(t, storePath(t))
	defer st.Close()

	p := patient.Patient{ID: 1, Name: "A", Age: 30, Priority: 2, Symptom: "cough"}
	if err := st.SavePatient(&p, StateWaiting); err != nil {
		t.Fatalf("SavePatient failed: %v", err)
	}
	if err := st.UpdateStatus(1, StateCompleted); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	got, err := st.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 1 || got[0].State != StateCompleted {
		t.Fatalf("rows = %+v, want one completed row", got)
	}
}

func TestStoreSchemaSurvivesReopen(t *testing.T) {
	path := storePath(t)

	st := mustOpenStore(t, path)
	p := patient.Patient{ID: 1, Name: "A", Age: 30, Priority: 2, Symptom: "cough"}
	if err := st.SavePatient(&p, StateWaiting); err != nil {
		t.Fatalf("SavePatient failed: %v", err)
	}
	st.Close()

	st = mustOpenStore(t, path)
	defer st.Close()
	got, err := st.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll after reopen failed: %v", err)
	}
	if len(got) != 1 || got[0].Patient.Name != "A" {
		t.Fatalf("rows after reopen = %+v", got)
	}
}

func TestAlteredRowStillLoads(t *testing.T) {
	st := mustOpenStore(t, storePath(t))
	defer st.Close()

	p := patient.Patient{ID: 1, Name: "A", Age: 30, Priority: 2, Symptom: "cough"}
	if err := st.SavePatient(&p, StateWaiting); err != nil {
		t.Fatalf("SavePatient failed: %v", err)
	}
	// Edit the row behind the system's back; the stale fingerprint gets
	// reported on load but the record must not vanish.
	if _, err := st.db.Exec("UPDATE patients SET name = 'Altered' WHERE id = 1"); err != nil {
		t.Fatalf("direct edit failed: %v", err)
	}

	got, err := st.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(got) != 1 || got[0].Patient.Name != "Altered" {
		t.Fatalf("rows = %+v, want the altered row", got)
	}
}

func TestSystemPersistsAcrossBoots(t *testing.T) {
	path := storePath(t)

	boot1 := New()
	st := mustOpenStore(t, path)
	boot1.AttachStore(st)
	mustRegister(t, boot1, "A", 30, 2, "cough")
	urgent := mustRegister(t, boot1, "B", 61, 1, "chest pain")
	mustRegister(t, boot1, "C", 12, 2, "rash")
	if p := mustAttend(t, boot1); p.ID != urgent.ID {
		t.Fatalf("attended %q, want the priority-1 patient", p.Name)
	}
	mustFree(t, boot1)
	st.Close()

	boot2 := New()
	st = mustOpenStore(t, path)
	defer st.Close()
	boot2.AttachStore(st)
	n, err := boot2.LoadFromStore()
	if err != nil {
		t.Fatalf("LoadFromStore failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("loaded %d rows, want 3", n)
	}

	ov := boot2.Snapshot()
	if ov.Registered != 3 || ov.Waiting != 2 || ov.InRooms != 0 || ov.Completed != 1 {
		t.Fatalf("restored counts = reg %d wait %d rooms %d done %d",
			ov.Registered, ov.Waiting, ov.InRooms, ov.Completed)
	}
	expectStatus(t, boot2, urgent.ID, StateCompleted, 0)

	// The ID counter resumes past the loaded rows.
	p := mustRegister(t, boot2, "D", 40, 3, "sprain")
	if p.ID != 4 {
		t.Fatalf("post-restore admission got ID %d, want 4", p.ID)
	}
}

func TestLoadRestoresOccupiedRooms(t *testing.T) {
	path := storePath(t)

	boot1 := New()
	st := mustOpenStore(t, path)
	boot1.AttachStore(st)
	a := mustRegister(t, boot1, "A", 30, 1, "fever")
	mustAttend(t, boot1)
	st.Close()

	boot2 := New()
	st = mustOpenStore(t, path)
	defer st.Close()
	boot2.AttachStore(st)
	if _, err := boot2.LoadFromStore(); err != nil {
		t.Fatalf("LoadFromStore failed: %v", err)
	}
	expectStatus(t, boot2, a.ID, StateInRoom, 1)
}

func TestLoadFromStoreRequiresStore(t *testing.T) {
	s := New()
	if _, err := s.LoadFromStore(); !errors.Is(err, ErrNoStore) {
		t.Fatalf("err = %v, want ErrNoStore", err)
	}
}

func TestLoadFromStoreRequiresPristineSystem(t *testing.T) {
	s := New()
	st := mustOpenStore(t, storePath(t))
	defer st.Close()
	s.AttachStore(st)
	mustRegister(t, s, "A", 30, 2, "cough")

	if _, err := s.LoadFromStore(); !errors.Is(err, ErrNotPristine) {
		t.Fatalf("err = %v, want ErrNotPristine", err)
	}
}
