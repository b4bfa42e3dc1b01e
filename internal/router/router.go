// Package router keeps the stack of screens: the picker at the bottom,
// a lesson above it, and the lesson's summary replacing it when done.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keypals/internal/screen"
)

// Screens navigate by returning one of these messages from a command.
type (
	PushScreenMsg    struct{ Screen screen.Screen }
	PopScreenMsg     struct{}
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router holds a non-empty stack of screens. Only the top one sees input.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) top() int { return len(r.stack) - 1 }

// Push puts s on top and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop drops the top screen. The root screen is never popped.
func (r *Router) Pop() tea.Cmd {
	if r.top() > 0 {
		r.stack[r.top()] = nil
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// Replace swaps the top screen for s without growing the stack.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[r.top()] = s
	return s.Init()
}

func (r *Router) Active() screen.Screen { return r.stack[r.top()] }

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case PushScreenMsg:
		cmd = r.Push(msg.Screen)
	case PopScreenMsg:
		cmd = r.Pop()
	case ReplaceScreenMsg:
		cmd = r.Replace(msg.Screen)
	default:
		r.stack[r.top()], cmd = r.Active().Update(msg)
	}
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
