// Package record defines the persisted health log shape.
package record

// Record is the unit of persistence: the ordered list of tracked users and
// their weight/height measurements. Insertion order of Users is significant;
// it drives display order before a ranking is requested. The JSON encoding
// is what the storage gateway writes as the per-identity blob.
type Record struct {
	Users   []string         `json:"users"`
	Weights map[string]int64 `json:"weights"`
	Heights map[string]int64 `json:"heights"`
}

// New returns an empty, fully initialized record.
func New() *Record {
	return &Record{
		Users:   []string{},
		Weights: map[string]int64{},
		Heights: map[string]int64{},
	}
}

// Clone returns a deep copy so callers never alias stored state.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	c := &Record{
		Users:   make([]string, len(r.Users)),
		Weights: make(map[string]int64, len(r.Weights)),
		Heights: make(map[string]int64, len(r.Heights)),
	}
	copy(c.Users, r.Users)
	for k, v := range r.Weights {
		c.Weights[k] = v
	}
	for k, v := range r.Heights {
		c.Heights[k] = v
	}
	return c
}
