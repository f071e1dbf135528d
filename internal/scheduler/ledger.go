package scheduler

// Ledger owns all occupancy state for rooms, professors and batches. The three
// key spaces are independent; keys are entity-day-slot composites. There is no
// way to free a key: the engine is single pass, one schedule per run.
type Ledger struct {
	rooms      map[string]struct{}
	professors map[string]struct{}
	batches    map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		rooms:      make(map[string]struct{}),
		professors: make(map[string]struct{}),
		batches:    make(map[string]struct{}),
	}
}

func slotKey(entity string, day string, slot string) string {
	return entity + "-" + day + "-" + slot
}

// IsRoomFree reports whether a room is unoccupied at the given time.
func (l *Ledger) IsRoomFree(roomID string, day string, slot string) bool {
	_, busy := l.rooms[slotKey(roomID, day, slot)]
	return !busy
}

// MarkRoomBusy records a room occupation. Idempotent.
func (l *Ledger) MarkRoomBusy(roomID string, day string, slot string) {
	l.rooms[slotKey(roomID, day, slot)] = struct{}{}
}

// IsProfessorFree reports whether an instructor is unassigned at the given time.
func (l *Ledger) IsProfessorFree(profID string, day string, slot string) bool {
	_, busy := l.professors[slotKey(profID, day, slot)]
	return !busy
}

// MarkProfessorBusy records an instructor assignment. Idempotent.
func (l *Ledger) MarkProfessorBusy(profID string, day string, slot string) {
	l.professors[slotKey(profID, day, slot)] = struct{}{}
}

// IsBatchFree reports whether a batch is unoccupied at the given time.
func (l *Ledger) IsBatchFree(batchID string, day string, slot string) bool {
	_, busy := l.batches[slotKey(batchID, day, slot)]
	return !busy
}

// MarkBatchBusy records a batch occupation. Idempotent.
func (l *Ledger) MarkBatchBusy(batchID string, day string, slot string) {
	l.batches[slotKey(batchID, day, slot)] = struct{}{}
}
