package types

// Todo is a single task record. ID is assigned on creation and never changes;
// Title is never persisted empty (an edit to empty text deletes the item).
type Todo struct {
	ID        string `json:"id" toml:"id"`
	Title     string `json:"title" toml:"title"`
	Completed bool   `json:"completed" toml:"completed"`
}

// Filter selects which subset of the collection is displayed.
type Filter string

// Filter modes.
const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filter modes in navigation order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Route returns the navigation route for the filter, e.g. "/active".
func (f Filter) Route() string {
	return "/" + string(f)
}

// Valid reports whether f is one of the known filter modes.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Match reports whether t belongs to the subset selected by f.
// Unknown filters match every item.
func (f Filter) Match(t Todo) bool {
	switch f {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// ParseRoute maps a navigation route ("/all", "/active", "/completed") to its
// filter. The second result is false for unrecognized routes, in which case
// FilterAll is returned.
func ParseRoute(route string) (Filter, bool) {
	f := Filter(trimRoute(route))
	if !f.Valid() {
		return FilterAll, false
	}
	return f, true
}

// trimRoute strips the leading "/" and an optional "#" fragment marker so
// "#/active", "/active" and "active" all name the same route.
func trimRoute(route string) string {
	for len(route) > 0 && (route[0] == '#' || route[0] == '/') {
		route = route[1:]
	}
	return route
}
