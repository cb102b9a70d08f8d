package navigate

// Tracker remembers the last reported caret cell so that repeated caret
// updates inside the same cell are not reported again.
type Tracker struct {
	last  Target
	valid bool
}

// Observe records t and reports whether it differs from the previously
// observed cell. The first observation always reports true.
func (tr *Tracker) Observe(t Target) bool {
	if tr.valid && tr.last == t {
		return false
	}
	tr.last = t
	tr.valid = true
	return true
}

// Reset forgets the last observed cell.
func (tr *Tracker) Reset() { *tr = Tracker{} }
