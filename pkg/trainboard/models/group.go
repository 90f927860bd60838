package models

// Group represents a contiguous run of rows sharing one effective key value.
type Group struct {
	// Key is the forward-filled key value shared by every row in the run.
	Key string `json:"key"`
	// Rows are the source rows of the run, in input order and unmodified.
	Rows []Row `json:"rows"`
}

// Len returns the number of rows in the group.
func (g Group) Len() int {
	return len(g.Rows)
}

// PhaseSegment is a run of weekly-plan rows inside one day group.
type PhaseSegment struct {
	// Phase is the phase header to emit before Rows, empty when none is due.
	Phase string `json:"phase,omitempty"`
	// Rows are the rows belonging to the segment.
	Rows []Row `json:"rows"`
}
