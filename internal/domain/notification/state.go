// internal/domain/notification/state.go
package notification

// State remembers the last notification text considered for delivery.
// It lives for the process lifetime only and is owned by a single polling loop.
type State struct {
	last string
}

func NewState() *State {
	return &State{}
}

// ShouldNotify reports whether text differs from the last recorded one.
// The initial state is empty, so the first non-empty text is always sent.
func (s *State) ShouldNotify(text string) bool {
	return text != s.last
}

// Record stores text as the last considered notification, regardless of
// whether its delivery succeeded.
func (s *State) Record(text string) {
	s.last = text
}

func (s *State) Last() string {
	return s.last
}
