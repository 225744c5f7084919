package router

import (
	"errors"
	"fmt"

	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
)

// Sentinel errors for delivery.
var (
	// ErrAlreadyRouted indicates a request that was handed to a host before.
	ErrAlreadyRouted = errors.New("request already routed")

	// ErrZeroRequest indicates a Request not built by a Registry or Back.
	ErrZeroRequest = errors.New("zero request")
)

// Host is the surrounding navigation host. It owns the real stack and the
// transition animation; the router only hands it requests.
type Host interface {
	Navigate(req Request) error
}

// StackHost is a Host that exposes its top entry, which Run needs.
type StackHost interface {
	Host
	Peek() *StackEntry
}

// Observer is notified of every request the host accepted.
type Observer interface {
	Routed(req Request)
}

// ScreenFunc runs a mounted screen.
// It receives the request that mounted the screen and returns the request
// its flow produced when it finished.
type ScreenFunc func(mount Request) (next Request, err error)

// Router delivers navigation requests to a host, exactly once each.
// Screens can be registered with their functions so Run can drive a whole
// session from one start request.
type Router struct {
	host      Host
	screens   map[Screen]ScreenFunc
	observers []Observer
}

// New creates a Router delivering to host.
func New(host Host) *Router {
	return &Router{
		host:    host,
		screens: make(map[Screen]ScreenFunc),
	}
}

// Register adds a screen function used by Run.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// Observe adds an observer of routed requests.
func (r *Router) Observe(o Observer) *Router {
	r.observers = append(r.observers, o)
	return r
}

// Route hands req to the host. A request can only be routed once; requests
// already handed over are not retracted if the host fails.
func (r *Router) Route(req Request) error {
	if req.IsZero() {
		return ErrZeroRequest
	}
	if !req.claim() {
		return fmt.Errorf("%w: %s", ErrAlreadyRouted, req.ID())
	}

	internal.GetInternalLogger().Debug("Routing request",
		"id", req.ID(),
		"screen", string(req.Screen()),
		"presentation", req.Presentation().String(),
	)

	if err := r.host.Navigate(req); err != nil {
		return fmt.Errorf("router: host rejected %s: %w", req.Describe(), err)
	}

	for _, o := range r.observers {
		o.Routed(req)
	}
	return nil
}

// Run routes start and then keeps running the screen on top of the host's
// stack, routing whatever request it returns, until the stack is empty.
func (r *Router) Run(start Request) error {
	host, ok := r.host.(StackHost)
	if !ok {
		return fmt.Errorf("router: host %T does not expose a stack", r.host)
	}

	if err := r.Route(start); err != nil {
		return err
	}

	for {
		top := host.Peek()
		if top == nil {
			return nil
		}

		fn, ok := r.screens[top.Screen]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", top.Screen)
		}

		next, err := fn(top.Request)
		if err != nil {
			return fmt.Errorf("router: screen %s error: %w", top.Screen, err)
		}

		if err := r.Route(next); err != nil {
			return err
		}
	}
}
