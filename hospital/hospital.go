// ════════════════════════════════════════════════════════════════════════════
// 🏥 HOSPITAL TRIAGE SYSTEM
// ════════════════════════════════════════════════════════════════════════════
//
// Project: Hospital Triage System
// Component: Patient Flow Engine
//
// Description:
//   Single-threaded façade tying the containers into one patient flow:
//   admissions land in the registry and the triage queue, consultations
//   occupy a fixed ring of rooms, discharges stack onto the history list.
//   An ID index resolves patient IDs to registry slots without scanning.
//
// Flow:
//   Register → triage (bucket per priority, FIFO within a level)
//   AttendNext → most urgent waiting patient enters the first free room
//   FreeRoom → longest-occupied room empties, patient tops the history
//
// Persistence:
//   Optional SQLite store; admissions must persist before they take
//   effect, later status changes are best-effort (memory stays the
//   source of truth while the process lives).
// ════════════════════════════════════════════════════════════════════════════

package hospital

import (
	"errors"
	"strings"

	"triage/bucketqueue"
	"triage/constants"
	"triage/debug"
	"triage/dynarray"
	"triage/idindex"
	"triage/list"
	"triage/patient"
	"triage/ring"
	"triage/utils"
)

// Validation and flow errors.
var (
	ErrBlankName      = errors.New("hospital: name must not be blank")
	ErrNameTooLong    = errors.New("hospital: name too long")
	ErrAgeOutOfRange  = errors.New("hospital: age out of range")
	ErrBadPriority    = errors.New("hospital: priority out of range")
	ErrBlankSymptom   = errors.New("hospital: symptom must not be blank")
	ErrSymptomTooLong = errors.New("hospital: symptom too long")

	ErrNoWaiting      = errors.New("hospital: no patients waiting")
	ErrRoomsFull      = errors.New("hospital: all consultation rooms occupied")
	ErrRoomsIdle      = errors.New("hospital: no consultation rooms occupied")
	ErrUnknownPatient = errors.New("hospital: no such patient")

	ErrNoStore     = errors.New("hospital: no store attached")
	ErrNotPristine = errors.New("hospital: system already holds patients")
)

// State tracks where a patient sits in the flow.
type State uint8

const (
	StateRegistered State = iota // admitted but not queued (restored rows only)
	StateWaiting
	StateInRoom
	StateCompleted
)

// StateName renders a State for reports and logs.
func StateName(s State) string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateInRoom:
		return "in consultation"
	case StateCompleted:
		return "completed"
	default:
		return "registered"
	}
}

// Status resolves one patient plus their position in the flow.
type Status struct {
	Patient *patient.Patient
	State   State
	Room    int // 1-based room number when StateInRoom, else 0
}

// Overview is a point-in-time snapshot of the whole system.
type Overview struct {
	Registered int
	Waiting    int
	PerLevel   []int // PerLevel[0] counts priority 1, and so on
	InRooms    int
	RoomCap    int
	Rooms      []*patient.Patient // occupied rooms, room 1 first
	Completed  int
	LastFreed  *patient.Patient // nil until the first discharge
}

// System is the patient flow engine. Not safe for concurrent use.
type System struct {
	registry *dynarray.Array[*patient.Patient]
	index    *idindex.Index
	triage   *bucketqueue.Queue[*patient.Patient]
	rooms    *ring.Queue[*patient.Patient]
	history  *list.List[*patient.Patient]
	store    *Store
	nextID   int64
}

// New builds an empty system sized from the package constants.
func New() *System {
	registry, err := dynarray.New[*patient.Patient](constants.RegistryCapacity)
	if err != nil {
		panic("hospital: " + err.Error())
	}
	triage, err := bucketqueue.New[*patient.Patient](constants.TriageLevels)
	if err != nil {
		panic("hospital: " + err.Error())
	}
	rooms, err := ring.New[*patient.Patient](constants.ConsultationRooms)
	if err != nil {
		panic("hospital: " + err.Error())
	}
	return &System{
		registry: registry,
		index:    idindex.New(constants.IDIndexSeed),
		triage:   triage,
		rooms:    rooms,
		history:  list.New[*patient.Patient](list.Prepend),
		nextID:   1,
	}
}

// Register validates an admission, persists it when a store is attached,
// and queues the patient for triage. Nothing changes on error. Returns
// the stored record with its assigned ID.
func (s *System) Register(name string, age, priority int, symptom string) (*patient.Patient, error) {
	name = strings.TrimSpace(name)
	symptom = strings.TrimSpace(symptom)

	switch {
	case name == "":
		return nil, ErrBlankName
	case len(name) > constants.MaxNameLen:
		return nil, ErrNameTooLong
	case age <= 0 || age > constants.MaxPatientAge:
		return nil, ErrAgeOutOfRange
	case priority < 1 || priority > constants.TriageLevels:
		return nil, ErrBadPriority
	case symptom == "":
		return nil, ErrBlankSymptom
	case len(symptom) > constants.MaxSymptomLen:
		return nil, ErrSymptomTooLong
	}

	p := &patient.Patient{
		ID:       s.nextID,
		Name:     name,
		Age:      age,
		Priority: priority,
		Symptom:  symptom,
	}

	// The identity row must exist before the admission takes effect.
	if s.store != nil {
		if err := s.store.SavePatient(p, StateWaiting); err != nil {
			return nil, err
		}
	}

	s.registry.Append(p)
	s.index.Put(uint32(p.ID), uint32(s.registry.Len()-1))
	_ = s.triage.Add(p, priority) // priority validated above
	s.nextID++
	return p, nil
}

// AttendNext moves the most urgent waiting patient into a consultation
// room. The room check runs before the triage pop so a full house never
// loses a patient's place in line.
func (s *System) AttendNext() (*patient.Patient, error) {
	if s.triage.Empty() {
		return nil, ErrNoWaiting
	}
	if s.rooms.Full() {
		return nil, ErrRoomsFull
	}
	// Both gates held, neither call can fail now.
	p, _ := s.triage.Pop()
	_ = s.rooms.Enqueue(p)
	s.persistStatus(p.ID, StateInRoom)
	return p, nil
}

// FreeRoom releases the longest-occupied consultation room and pushes the
// discharged patient onto the history (most recent first).
func (s *System) FreeRoom() (*patient.Patient, error) {
	p, err := s.rooms.Dequeue()
	if err != nil {
		return nil, ErrRoomsIdle
	}
	s.history.Add(p)
	s.persistStatus(p.ID, StateCompleted)
	return p, nil
}

// Lookup resolves a patient ID through the index.
func (s *System) Lookup(id int64) (*patient.Patient, error) {
	if id <= 0 {
		return nil, ErrUnknownPatient
	}
	slot, ok := s.index.Get(uint32(id)) // IDs are sequential, well inside uint32
	if !ok {
		return nil, ErrUnknownPatient
	}
	p, err := s.registry.Get(int(slot))
	if err != nil {
		return nil, ErrUnknownPatient
	}
	return p, nil
}

// StatusOf reports where a patient currently sits in the flow.
func (s *System) StatusOf(id int64) (Status, error) {
	p, err := s.Lookup(id)
	if err != nil {
		return Status{}, err
	}
	match := patient.SameID(id)
	if room := s.rooms.FindPosition(match); room != -1 {
		return Status{Patient: p, State: StateInRoom, Room: room}, nil
	}
	if s.triage.Contains(match) {
		return Status{Patient: p, State: StateWaiting}, nil
	}
	if s.history.Contains(match) {
		return Status{Patient: p, State: StateCompleted}, nil
	}
	return Status{Patient: p, State: StateRegistered}, nil
}

// Snapshot captures the counts and occupancy a report needs in one pass.
func (s *System) Snapshot() Overview {
	ov := Overview{
		Registered: s.registry.Len(),
		Waiting:    s.triage.Len(),
		PerLevel:   make([]int, s.triage.Levels()),
		InRooms:    s.rooms.Size(),
		RoomCap:    s.rooms.Cap(),
		Completed:  s.history.Len(),
	}
	for lvl := 1; lvl <= s.triage.Levels(); lvl++ {
		n, _ := s.triage.LevelLen(lvl)
		ov.PerLevel[lvl-1] = n
	}
	ov.Rooms = make([]*patient.Patient, 0, s.rooms.Size())
	for i := 0; i < s.rooms.Size(); i++ {
		p, _ := s.rooms.GetAt(i)
		ov.Rooms = append(ov.Rooms, p)
	}
	if last, err := s.history.Peek(); err == nil {
		ov.LastFreed = last
	}
	return ov
}

// Patients returns every registered record in admission order.
func (s *System) Patients() []*patient.Patient {
	out := make([]*patient.Patient, 0, s.registry.Len())
	for i := 0; i < s.registry.Len(); i++ {
		p, _ := s.registry.Get(i)
		out = append(out, p)
	}
	return out
}

// DumpHistory renders the discharge history in the list dump form, most
// recent first, with patient IDs as tokens.
func (s *System) DumpHistory(dst []byte) []byte {
	return s.history.AppendDump(dst, func(dst []byte, p *patient.Patient) []byte {
		return utils.AppendInt(dst, p.ID)
	})
}

// RestoreHistory rebuilds the discharge history from a DumpHistory form.
// Every ID token must resolve through the registry; a malformed dump or
// an unknown ID leaves the current history untouched.
func (s *System) RestoreHistory(data []byte) error {
	return s.history.Restore(data, func(tok []byte) (*patient.Patient, error) {
		id, ok := utils.ParseInt(tok)
		if !ok {
			return nil, list.ErrBadDump
		}
		return s.Lookup(id)
	})
}

// persistStatus forwards a state change to the store when one is
// attached. Failures are logged, not propagated: the in-memory flow
// already moved on.
func (s *System) persistStatus(id int64, state State) {
	if s.store == nil {
		return
	}
	if err := s.store.UpdateStatus(id, state); err != nil {
		debug.DropError("hospital", err)
	}
}
