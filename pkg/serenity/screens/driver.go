package screens

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// InputSource yields user inputs one at a time. It returns io.EOF when no
// more input will come, or another error to abort the session.
type InputSource interface {
	NextInput() (constants.Input, error)
}

// View presents a screen. Show is called on mount and after every
// transition that asks for a redisplay.
type View interface {
	Show(s Screen)
}

// ViewFunc adapts a function to View.
type ViewFunc func(s Screen)

func (f ViewFunc) Show(s Screen) { f(s) }

// Register binds every screen to r. Each screen function mounts the screen,
// shows it, and feeds it inputs until its flow produces a request.
func Register(r *router.Router, deps Deps, in InputSource, view View) *router.Router {
	for _, d := range Destinations() {
		r.Register(d.Screen, screenFunc(deps, in, view))
	}
	return r
}

func screenFunc(deps Deps, in InputSource, view View) router.ScreenFunc {
	return func(mount router.Request) (router.Request, error) {
		s, err := Mount(mount, deps)
		if err != nil {
			return router.Request{}, err
		}
		view.Show(s)

		for {
			input, err := in.NextInput()
			if err != nil {
				return router.Request{}, err
			}

			eff := s.Handle(input)
			if eff.Terminal() {
				return *eff.Request, nil
			}
			if eff.Redisplay {
				view.Show(s)
			}
		}
	}
}

// Script is an InputSource replaying a fixed list of inputs.
type Script struct {
	inputs []constants.Input
	next   int
}

// NewScript creates a Script of inputs.
func NewScript(inputs ...constants.Input) *Script {
	return &Script{inputs: inputs}
}

// ErrUnknownInput indicates an input name ParseScript cannot map.
var ErrUnknownInput = errors.New("unknown input")

// ParseScript reads a comma separated list of input names such as
// "next,next,confirm".
func ParseScript(raw string) (*Script, error) {
	var inputs []constants.Input
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		in, ok := constants.ParseInput(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownInput, name)
		}
		inputs = append(inputs, in)
	}
	return NewScript(inputs...), nil
}

// NextInput implements InputSource.
func (s *Script) NextInput() (constants.Input, error) {
	if s.next >= len(s.inputs) {
		return constants.InputNone, io.EOF
	}
	in := s.inputs[s.next]
	s.next++
	return in, nil
}

// Remaining returns the number of inputs not yet consumed.
func (s *Script) Remaining() int {
	return len(s.inputs) - s.next
}
