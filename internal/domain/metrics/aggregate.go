// Package metrics implements the operations over one identity's health log
// record: user membership, weight/height updates and descending-order
// rankings.
package metrics

import (
	"sort"

	"healthlog/internal/domain/record"
	"healthlog/internal/domain/types"
)

// Aggregate binds a record to the identity it was loaded for. It lives for
// a single request; the storage gateway remains the source of truth between
// requests.
type Aggregate struct {
	identity string
	rec      *record.Record
}

// New wraps an existing record for the given identity.
func New(identity string, rec *record.Record) *Aggregate {
	if rec == nil {
		rec = record.New()
	}
	return &Aggregate{identity: identity, rec: rec}
}

// Identity returns the identity this aggregate was loaded for.
func (a *Aggregate) Identity() string { return a.identity }

// Record exposes the underlying record for persistence.
func (a *Aggregate) Record() *record.Record { return a.rec }

// HasUsers reports whether any user is tracked.
func (a *Aggregate) HasUsers() bool { return len(a.rec.Users) > 0 }

// UserCount returns the number of tracked users.
func (a *Aggregate) UserCount() int { return len(a.rec.Users) }

// HasUser reports exact membership of name in the tracked users.
func (a *Aggregate) HasUser(name string) bool {
	for _, u := range a.rec.Users {
		if u == name {
			return true
		}
	}
	return false
}

// AddUser tracks a new user. Names are unique; adding a name that is
// already tracked is a no-op and reports false.
func (a *Aggregate) AddUser(name string) bool {
	if a.HasUser(name) {
		return false
	}
	a.rec.Users = append(a.rec.Users, name)
	return true
}

// HasWeights reports whether any weight has been recorded.
func (a *Aggregate) HasWeights() bool { return len(a.rec.Weights) > 0 }

// HasHeights reports whether any height has been recorded.
func (a *Aggregate) HasHeights() bool { return len(a.rec.Heights) > 0 }

// SetWeight records a weight for a tracked user. It reports false, without
// mutating the record, when the user is unknown.
func (a *Aggregate) SetWeight(name string, pounds int64) bool {
	if !a.HasUser(name) {
		return false
	}
	a.rec.Weights[name] = pounds
	return true
}

// SetHeight records a height for a tracked user. It reports false, without
// mutating the record, when the user is unknown.
func (a *Aggregate) SetHeight(name string, inches int64) bool {
	if !a.HasUser(name) {
		return false
	}
	a.rec.Heights[name] = inches
	return true
}

// WeightOf returns the stored weight for a user known to exist. Users with
// no recorded weight read as zero.
func (a *Aggregate) WeightOf(name string) int64 { return a.rec.Weights[name] }

// HeightOf returns the stored height for a user known to exist. Users with
// no recorded height read as zero.
func (a *Aggregate) HeightOf(name string) int64 { return a.rec.Heights[name] }

// ResetWeights sets every tracked user's weight to zero.
func (a *Aggregate) ResetWeights() {
	for _, u := range a.rec.Users {
		a.rec.Weights[u] = 0
	}
}

// ResetHeights sets every tracked user's height to zero.
func (a *Aggregate) ResetHeights() {
	for _, u := range a.rec.Users {
		a.rec.Heights[u] = 0
	}
}

// RankedWeights returns every tracked user with their weight, ordered by
// descending weight with ties broken by ascending name. Users without a
// recorded weight appear with zero.
func (a *Aggregate) RankedWeights() []types.Measurement {
	return ranked(a.rec.Users, a.rec.Weights)
}

// RankedHeights returns every tracked user with their height, ordered by
// descending height with ties broken by ascending name. Users without a
// recorded height appear with zero.
func (a *Aggregate) RankedHeights() []types.Measurement {
	return ranked(a.rec.Users, a.rec.Heights)
}

// ranked builds the ranking as a pure projection: defaults for missing
// users are applied to the view only, never written back to the record.
func ranked(users []string, values map[string]int64) []types.Measurement {
	out := make([]types.Measurement, 0, len(users))
	for _, u := range users {
		out = append(out, types.Measurement{Name: u, Value: values[u]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}
