// Package flow models the small state a screen owns and its legal transitions.
//
// A step wizard, a choice among a closed set and a boolean toggle cover every
// screen. States are values. Each transition returns the next state plus an
// Effect telling the screen whether to re-resolve its displayed asset or to
// hand a navigation request to the router.
//
// Transitions are total over their domains. Values outside a domain are a
// caller error: they are rejected at the boundary by Domain.Parse, and passing
// them to a transition anyway panics with a fault.ProgrammingError.
package flow

import (
	"errors"

	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// ErrOutOfDomain indicates a seed or selection outside the state's domain.
var ErrOutOfDomain = errors.New("value outside flow domain")

// Effect is the side-effect descriptor of a transition.
type Effect struct {
	// Redisplay is set when the displayed asset must be resolved again.
	Redisplay bool
	// Request is the navigation the transition asks for, if any.
	// A transition that sets it is terminal: the screen is about to unmount.
	Request *router.Request
}

// Terminal reports whether the effect carries a navigation request.
func (e Effect) Terminal() bool {
	return e.Request != nil
}

// None is the effect of a transition that changed nothing observable.
func None() Effect {
	return Effect{}
}

// Redisplay is the effect of a transition that changed the display.
func Redisplay() Effect {
	return Effect{Redisplay: true}
}

// Navigate is the effect of a terminal transition.
func Navigate(req router.Request) Effect {
	return Effect{Request: &req}
}
