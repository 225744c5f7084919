package router

import (
	"errors"
	"fmt"
	"sort"
)

// ParamSpec declares one parameter a destination accepts.
type ParamSpec struct {
	Name string
	Kind ParamKind
}

// Destination declares a screen, the exact parameters it accepts and how it
// is presented by default.
type Destination struct {
	Screen       Screen
	Params       []ParamSpec
	Presentation Presentation
}

// Registry is the frozen set of destinations requests may name.
// Requests are validated here, when they are built, never at delivery.
type Registry struct {
	destinations map[Screen]Destination
}

// NewRegistry validates the declarations and freezes them.
func NewRegistry(destinations ...Destination) (*Registry, error) {
	r := &Registry{destinations: make(map[Screen]Destination, len(destinations))}

	var errs []error
	for _, d := range destinations {
		if d.Screen == ScreenBack {
			errs = append(errs, errors.New("destination with empty screen name"))
			continue
		}
		if _, exists := r.destinations[d.Screen]; exists {
			errs = append(errs, fmt.Errorf("duplicate destination %s", d.Screen))
			continue
		}
		if d.Presentation == PresentPop || d.Presentation.String() == "unknown" {
			errs = append(errs, fmt.Errorf("%w: %s declares %s", ErrPresentation, d.Screen, d.Presentation))
			continue
		}

		seen := make(map[string]struct{}, len(d.Params))
		for _, p := range d.Params {
			if _, dup := seen[p.Name]; dup {
				errs = append(errs, fmt.Errorf("%s declares parameter %q twice", d.Screen, p.Name))
			}
			seen[p.Name] = struct{}{}
		}

		d.Params = append([]ParamSpec(nil), d.Params...)
		r.destinations[d.Screen] = d
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// Destination returns the declaration for screen.
func (r *Registry) Destination(screen Screen) (Destination, bool) {
	d, ok := r.destinations[screen]
	return d, ok
}

// Screens returns every declared screen, sorted.
func (r *Registry) Screens() []Screen {
	screens := make([]Screen, 0, len(r.destinations))
	for s := range r.destinations {
		screens = append(screens, s)
	}
	sort.Slice(screens, func(i, j int) bool { return screens[i] < screens[j] })
	return screens
}

// Validate checks params against the declaration of screen: every declared
// parameter present with the right kind, nothing else.
func (r *Registry) Validate(screen Screen, params Params) error {
	d, ok := r.destinations[screen]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScreen, screen)
	}

	var errs []error
	declared := make(map[string]struct{}, len(d.Params))
	for _, spec := range d.Params {
		declared[spec.Name] = struct{}{}
		v, ok := params[spec.Name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s.%s", ErrMissingParam, screen, spec.Name))
			continue
		}
		if !spec.Kind.accepts(v) {
			errs = append(errs, fmt.Errorf("%w: %s.%s wants %s, got %T", ErrParamKind, screen, spec.Name, spec.Kind, v))
		}
	}

	extra := make([]string, 0)
	for name := range params {
		if _, ok := declared[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		errs = append(errs, fmt.Errorf("%w: %s.%s", ErrUnexpectedParam, screen, name))
	}

	return errors.Join(errs...)
}

// Request builds a validated request for screen shown with p.
// Use Back for pop requests.
func (r *Registry) Request(screen Screen, params Params, p Presentation) (Request, error) {
	if p == PresentPop || p.String() == "unknown" {
		return Request{}, fmt.Errorf("%w: %s for %s", ErrPresentation, p, screen)
	}
	if err := r.Validate(screen, params); err != nil {
		return Request{}, err
	}
	return newRequest(screen, params, p), nil
}

// MustRequest is Request for statically known arguments. A malformed request
// is a programming error and panics.
func (r *Registry) MustRequest(screen Screen, params Params, p Presentation) Request {
	return mustRequest(r.Request(screen, params, p))
}

// Navigate builds a request using the destination's declared presentation.
// It panics like MustRequest.
func (r *Registry) Navigate(screen Screen, params Params) Request {
	d, ok := r.destinations[screen]
	if !ok {
		return mustRequest(Request{}, fmt.Errorf("%w: %q", ErrUnknownScreen, screen))
	}
	return r.MustRequest(screen, params, d.Presentation)
}
