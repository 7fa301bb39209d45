package util

// NoteDeduper remembers which note IDs already produced an alert within one
// pipeline instance. The platform can announce the same note twice (the
// order-note event plus the legacy comment event); this guard makes the
// second announcement a no-op. One execution handles one event to
// completion, so no locking is needed, and the set is never persisted.
type NoteDeduper struct {
	seen map[int64]struct{}
}

func NewNoteDeduper() *NoteDeduper {
	return &NoteDeduper{seen: make(map[int64]struct{})}
}

// ShouldProcess reports whether the note has not been handled yet.
func (d *NoteDeduper) ShouldProcess(noteID int64) bool {
	_, dup := d.seen[noteID]
	return !dup
}

// MarkProcessed records the note as handled. Idempotent.
func (d *NoteDeduper) MarkProcessed(noteID int64) {
	d.seen[noteID] = struct{}{}
}
