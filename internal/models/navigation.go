package models

// NavigationStack is the LIFO sequence of routes the user has walked
// through. The root route is never removed, so Current always has a value.
type NavigationStack struct {
	routes []Route
}

// NewNavigationStack creates a stack holding only root.
func NewNavigationStack(root Route) *NavigationStack {
	return &NavigationStack{routes: []Route{root}}
}

// Push makes route the current screen.
func (s *NavigationStack) Push(route Route) {
	s.routes = append(s.routes, route)
}

// Pop removes the current screen. It returns false and leaves the stack
// untouched when only the root remains.
func (s *NavigationStack) Pop() bool {
	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// PopAndPush replaces the current screen with route so that tab switches
// don't grow the stack. On a root-only stack the root itself is replaced.
func (s *NavigationStack) PopAndPush(route Route) {
	if len(s.routes) <= 1 {
		s.routes[0] = route
		return
	}
	s.routes[len(s.routes)-1] = route
}

// Current returns the top of the stack.
func (s *NavigationStack) Current() Route {
	return s.routes[len(s.routes)-1]
}

// Previous returns the route under the current one, or the root when the
// stack has a single entry.
func (s *NavigationStack) Previous() Route {
	if len(s.routes) < 2 {
		return s.routes[0]
	}
	return s.routes[len(s.routes)-2]
}

// Len returns the stack depth (always >= 1).
func (s *NavigationStack) Len() int {
	return len(s.routes)
}

// Reset drops everything and starts over at root.
func (s *NavigationStack) Reset(root Route) {
	s.routes = []Route{root}
}

// Contains reports whether route is anywhere on the stack.
func (s *NavigationStack) Contains(route Route) bool {
	for _, r := range s.routes {
		if r == route {
			return true
		}
	}
	return false
}

// Routes returns a copy of the stack, bottom first.
func (s *NavigationStack) Routes() []Route {
	out := make([]Route, len(s.routes))
	copy(out, s.routes)
	return out
}
