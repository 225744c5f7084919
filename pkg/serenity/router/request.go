package router

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/serenity-wellness/serenity/pkg/serenity/fault"
	"go.uber.org/atomic"
)

// Screen names a navigation destination.
type Screen string

// ScreenBack is the pseudo-destination of pop requests.
const ScreenBack Screen = ""

// Presentation selects how the host shows a destination.
type Presentation int

const (
	PresentPush Presentation = iota
	PresentModal
	PresentReplace
	PresentPop
)

func (p Presentation) String() string {
	switch p {
	case PresentPush:
		return "push"
	case PresentModal:
		return "modal"
	case PresentReplace:
		return "replace"
	case PresentPop:
		return "pop"
	default:
		return "unknown"
	}
}

// ParamKind is the declared type of a destination parameter.
type ParamKind int

const (
	KindString ParamKind = iota
	KindInt
	KindBool
)

func (k ParamKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

func (k ParamKind) accepts(v any) bool {
	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindInt:
		_, ok := v.(int)
		return ok
	case KindBool:
		_, ok := v.(bool)
		return ok
	default:
		return false
	}
}

// Params maps parameter names to plain values (string, int or bool).
type Params map[string]any

// Sentinel errors for malformed requests.
var (
	ErrUnknownScreen   = errors.New("unknown destination screen")
	ErrMissingParam    = errors.New("missing declared parameter")
	ErrUnexpectedParam = errors.New("parameter not declared by destination")
	ErrParamKind       = errors.New("parameter has the wrong kind")
	ErrPresentation    = errors.New("invalid presentation")
)

// Request is an immutable, fully parameterised navigation request.
// Copies share one consumption token, so a request is routed at most once
// no matter how many copies exist.
type Request struct {
	id           string
	screen       Screen
	params       Params
	presentation Presentation
	consumed     *atomic.Bool
}

func newRequest(screen Screen, params Params, p Presentation) Request {
	copied := make(Params, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return Request{
		id:           uuid.NewString(),
		screen:       screen,
		params:       copied,
		presentation: p,
		consumed:     atomic.NewBool(false),
	}
}

// Back builds the pop request that returns to the previous screen.
func Back() Request {
	return newRequest(ScreenBack, nil, PresentPop)
}

// ID returns a unique id for log correlation.
func (r Request) ID() string { return r.id }

// Screen returns the destination; ScreenBack for pop requests.
func (r Request) Screen() Screen { return r.screen }

// Presentation returns how the destination is shown.
func (r Request) Presentation() Presentation { return r.presentation }

// IsBack reports whether r is a pop request.
func (r Request) IsBack() bool { return r.presentation == PresentPop }

// IsZero reports whether r was not built by a Registry or Back.
func (r Request) IsZero() bool { return r.consumed == nil }

// Consumed reports whether a router already accepted r.
func (r Request) Consumed() bool { return r.consumed != nil && r.consumed.Load() }

// Param returns the value of a parameter.
func (r Request) Param(name string) (any, bool) {
	v, ok := r.params[name]
	return v, ok
}

// StringParam returns the named string parameter, or "" when absent.
func (r Request) StringParam(name string) string {
	s, _ := r.params[name].(string)
	return s
}

// IntParam returns the named int parameter, or 0 when absent.
func (r Request) IntParam(name string) int {
	n, _ := r.params[name].(int)
	return n
}

// BoolParam returns the named bool parameter, or false when absent.
func (r Request) BoolParam(name string) bool {
	b, _ := r.params[name].(bool)
	return b
}

// Params returns a copy of the parameters.
func (r Request) Params() Params {
	copied := make(Params, len(r.params))
	for k, v := range r.params {
		copied[k] = v
	}
	return copied
}

// Describe renders r for logs and CLI output, with parameters in name order.
func (r Request) Describe() string {
	if r.IsBack() {
		return "pop"
	}
	names := make([]string, 0, len(r.params))
	for name := range r.params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, r.params[name]))
	}
	return fmt.Sprintf("%s %s{%s}", r.presentation, r.screen, strings.Join(parts, ", "))
}

func (r Request) claim() bool {
	return r.consumed.CompareAndSwap(false, true)
}

// mustRequest panics with a programming error if err is set.
func mustRequest(req Request, err error) Request {
	if err != nil {
		fault.Panic("router.request", err)
	}
	return req
}
