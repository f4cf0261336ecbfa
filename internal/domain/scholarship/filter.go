package scholarship

import (
	"sort"
	"strings"
)

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortDefault  SortKey = ""
	SortName     SortKey = "name"
	SortFeesLow  SortKey = "fees-low"
	SortFeesHigh SortKey = "fees-high"
	SortRating   SortKey = "rating"
)

// ParseSortKey maps unknown values to SortDefault.
func ParseSortKey(raw string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(raw))); k {
	case SortName, SortFeesLow, SortFeesHigh, SortRating:
		return k
	}
	return SortDefault
}

// Filter describes a catalogue query. Zero values mean "no constraint".
type Filter struct {
	Search   string
	Category string
	Subject  string
	Degree   string
	Sort     SortKey
	Page     int
	Limit    int
}

// Normalize clamps paging to sane bounds.
func (f Filter) Normalize() Filter {
	f.Search = strings.TrimSpace(f.Search)
	f.Category = strings.TrimSpace(f.Category)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Degree = strings.TrimSpace(f.Degree)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 12
	}
	return f
}

// Matches reports whether s satisfies the text and equality constraints of f.
// Search is a case-insensitive substring match over name, university and degree.
func (f Filter) Matches(s Scholarship) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.UniversityName), q) &&
			!strings.Contains(strings.ToLower(s.Degree), q) {
			return false
		}
	}
	if f.Category != "" && !strings.EqualFold(s.ScholarshipCategory, f.Category) {
		return false
	}
	if f.Subject != "" && !strings.EqualFold(s.SubjectCategory, f.Subject) {
		return false
	}
	if f.Degree != "" && !strings.EqualFold(s.Degree, f.Degree) {
		return false
	}
	return true
}

// Apply filters and sorts list without modifying it.
func Apply(list []Scholarship, f Filter) []Scholarship {
	out := make([]Scholarship, 0, len(list))
	for _, s := range list {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	Sort(out, f.Sort)
	return out
}

// Sort orders list in place. Ties keep their input order.
func Sort(list []Scholarship, key SortKey) {
	var less func(a, b Scholarship) bool
	switch key {
	case SortName:
		less = func(a, b Scholarship) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortFeesLow:
		less = func(a, b Scholarship) bool { return a.ApplicationFees < b.ApplicationFees }
	case SortFeesHigh:
		less = func(a, b Scholarship) bool { return a.ApplicationFees > b.ApplicationFees }
	case SortRating:
		less = func(a, b Scholarship) bool { return a.Rating > b.Rating }
	default:
		less = func(a, b Scholarship) bool { return a.PostDate.After(b.PostDate) }
	}
	sort.SliceStable(list, func(i, j int) bool { return less(list[i], list[j]) })
}

// OrderClause is the SQL equivalent of Sort for server-side paging.
func OrderClause(key SortKey) string {
	switch key {
	case SortName:
		return "LOWER(name) ASC, id ASC"
	case SortFeesLow:
		return "application_fees ASC, id ASC"
	case SortFeesHigh:
		return "application_fees DESC, id ASC"
	case SortRating:
		return "rating DESC, id ASC"
	}
	return "post_date DESC, id DESC"
}
