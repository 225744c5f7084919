package router

import "errors"

// ErrStackEmpty is returned when popping an empty stack.
var ErrStackEmpty = errors.New("navigation stack is empty")

// StackEntry represents a single mounted screen.
// It stores the screen identifier, the request that mounted it and whether
// it was presented modally.
type StackEntry struct {
	Screen  Screen
	Request Request
	Modal   bool
}

// Stack is the in-memory reference navigation host.
// Push and modal requests add an entry, replace swaps the top entry and pop
// removes it.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Navigate applies req to the stack.
func (s *Stack) Navigate(req Request) error {
	switch req.Presentation() {
	case PresentPush, PresentModal:
		s.Push(req)
	case PresentReplace:
		s.Pop()
		s.Push(req)
	case PresentPop:
		if s.Pop() == nil {
			return ErrStackEmpty
		}
	default:
		return ErrPresentation
	}
	return nil
}

// Push adds a new entry for req.
func (s *Stack) Push(req Request) {
	s.entries = append(s.entries, StackEntry{
		Screen:  req.Screen(),
		Request: req,
		Modal:   req.Presentation() == PresentModal,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Screens lists the mounted screens, bottom first.
func (s *Stack) Screens() []Screen {
	screens := make([]Screen, len(s.entries))
	for i, e := range s.entries {
		screens[i] = e.Screen
	}
	return screens
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
