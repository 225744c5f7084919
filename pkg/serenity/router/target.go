package router

import (
	"errors"
	"fmt"
	"sort"
)

// Target is a validated recipe for a request whose last parameters are only
// known when a flow finishes, such as the plan a user picked. The open
// parameters are checked against the destination when the Target is made, so
// Build cannot produce a malformed request from well-typed values.
type Target struct {
	registry     *Registry
	screen       Screen
	params       Params
	presentation Presentation
	open         map[string]ParamKind
}

// Target prepares a request to screen shown with p. The names in open must be
// declared by the destination and are supplied to Build; params covers the rest.
func (r *Registry) Target(screen Screen, params Params, p Presentation, open ...string) (Target, error) {
	d, ok := r.destinations[screen]
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}
	if p == PresentPop || p.String() == "unknown" {
		return Target{}, fmt.Errorf("%w: %s for %s", ErrPresentation, p, screen)
	}

	kinds := make(map[string]ParamKind, len(d.Params))
	for _, spec := range d.Params {
		kinds[spec.Name] = spec.Kind
	}

	openKinds := make(map[string]ParamKind, len(open))
	probe := make(Params, len(params)+len(open))
	for k, v := range params {
		probe[k] = v
	}
	for _, name := range open {
		kind, declared := kinds[name]
		if !declared {
			return Target{}, fmt.Errorf("%w: %s.%s", ErrUnexpectedParam, screen, name)
		}
		if _, clash := params[name]; clash {
			return Target{}, fmt.Errorf("%s.%s is both fixed and open", screen, name)
		}
		openKinds[name] = kind
		probe[name] = zeroOf(kind)
	}

	if err := r.Validate(screen, probe); err != nil {
		return Target{}, err
	}

	fixed := make(Params, len(params))
	for k, v := range params {
		fixed[k] = v
	}
	return Target{registry: r, screen: screen, params: fixed, presentation: p, open: openKinds}, nil
}

// MustTarget is Target for statically known arguments; errors panic.
func (r *Registry) MustTarget(screen Screen, params Params, p Presentation, open ...string) Target {
	t, err := r.Target(screen, params, p, open...)
	if err != nil {
		mustRequest(Request{}, err)
	}
	return t
}

// DeclaredTarget is MustTarget with the destination's declared presentation.
func (r *Registry) DeclaredTarget(screen Screen, params Params, open ...string) Target {
	d, ok := r.destinations[screen]
	if !ok {
		mustRequest(Request{}, fmt.Errorf("%w: %q", ErrUnknownScreen, screen))
	}
	return r.MustTarget(screen, params, d.Presentation, open...)
}

// Screen returns the destination of the target.
func (t Target) Screen() Screen { return t.screen }

// Presentation returns how the destination will be shown.
func (t Target) Presentation() Presentation { return t.presentation }

// IsZero reports whether t was not made by a Registry.
func (t Target) IsZero() bool { return t.registry == nil }

// Open returns the names Build expects, sorted.
func (t Target) Open() []string {
	names := make([]string, 0, len(t.open))
	for name := range t.open {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build produces a fresh request with the open parameters filled in.
// Supplying anything other than exactly the open parameters panics.
func (t Target) Build(supplied Params) Request {
	if t.IsZero() {
		mustRequest(Request{}, errors.New("zero target"))
	}

	params := make(Params, len(t.params)+len(supplied))
	for k, v := range t.params {
		params[k] = v
	}
	for k, v := range supplied {
		if _, isOpen := t.open[k]; !isOpen {
			mustRequest(Request{}, fmt.Errorf("%w: %s.%s", ErrUnexpectedParam, t.screen, k))
		}
		params[k] = v
	}
	return t.registry.MustRequest(t.screen, params, t.presentation)
}

func zeroOf(kind ParamKind) any {
	switch kind {
	case KindInt:
		return 0
	case KindBool:
		return false
	default:
		return ""
	}
}
