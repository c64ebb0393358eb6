package domain

import "iter"

// StatusFilter narrows a grievance list to one status.
// The zero value means "All".
type StatusFilter struct {
	status GrievanceStatus
}

// FilterAll shows every grievance.
var FilterAll = StatusFilter{}

// FilterBy returns a filter for a single status.
func FilterBy(s GrievanceStatus) StatusFilter {
	return StatusFilter{status: s}
}

// IsAll reports whether the filter lets everything through.
func (f StatusFilter) IsAll() bool {
	return f.status == ""
}

// Status returns the selected status, empty for All.
func (f StatusFilter) Status() GrievanceStatus {
	return f.status
}

// Toggle applies a status button press: the active status clears the
// filter, any other status replaces it.
func (f StatusFilter) Toggle(s GrievanceStatus) StatusFilter {
	if f.status == s {
		return FilterAll
	}
	return FilterBy(s)
}

// Matches reports whether g passes the filter.
func (f StatusFilter) Matches(g *Grievance) bool {
	return f.IsAll() || g.Status == f.status
}

// Apply returns a lazy view over grievances that pass the filter.
// The sequence can be ranged over any number of times.
func (f StatusFilter) Apply(grievances []*Grievance) iter.Seq[*Grievance] {
	return func(yield func(*Grievance) bool) {
		for _, g := range grievances {
			if !f.Matches(g) {
				continue
			}
			if !yield(g) {
				return
			}
		}
	}
}
