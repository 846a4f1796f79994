package date

// Range is an inclusive range of dates. A zero bound is open.
type Range struct{ From, To Date }

// NewRange returns the range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Contains reports whether on is within the range, boundaries included.
func (r Range) Contains(on Date) bool {
	if !r.From.IsZero() && on.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && on.After(r.To) {
		return false
	}
	return true
}
