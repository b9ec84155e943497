package ui

// ViewStack is one tab's navigation stack. The bottom view is the tab's root
// page and is never popped.
type ViewStack struct {
	Stack []View
}

// NewViewStack creates a stack rooted at root.
func NewViewStack(root View) *ViewStack {
	return &ViewStack{Stack: []View{root}}
}

// Push adds a view to the top of the stack.
func (s *ViewStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top view.
// Returns nil if only the root (or nothing) is left.
func (s *ViewStack) Pop() View {
	if len(s.Stack) <= 1 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Replace swaps the top view, used after the top view's Update.
func (s *ViewStack) Replace(v View) {
	if len(s.Stack) == 0 {
		s.Stack = append(s.Stack, v)
		return
	}
	s.Stack[len(s.Stack)-1] = v
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
