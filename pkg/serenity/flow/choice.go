package flow

import (
	"fmt"
	"slices"
	"strings"

	"github.com/serenity-wellness/serenity/pkg/serenity/fault"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// Domain is a closed, ordered set of string-backed values with a default.
type Domain[T ~string] struct {
	name    string
	def     T
	members []T
}

// NewDomain declares a domain. The default must be one of members, and
// members must be non-empty and distinct; anything else panics.
func NewDomain[T ~string](name string, def T, members ...T) Domain[T] {
	if len(members) == 0 {
		fault.Panic("flow.domain", fmt.Errorf("%w: domain %s has no members", ErrOutOfDomain, name))
	}
	seen := make(map[T]struct{}, len(members))
	for _, m := range members {
		if _, dup := seen[m]; dup {
			fault.Panic("flow.domain", fmt.Errorf("%w: domain %s lists %q twice", ErrOutOfDomain, name, m))
		}
		seen[m] = struct{}{}
	}
	if _, ok := seen[def]; !ok {
		fault.Panic("flow.domain", fmt.Errorf("%w: default %q of %s is not a member", ErrOutOfDomain, def, name))
	}
	return Domain[T]{name: name, def: def, members: slices.Clone(members)}
}

// Name returns the domain's name.
func (d Domain[T]) Name() string { return d.name }

// Default returns the default member.
func (d Domain[T]) Default() T { return d.def }

// Members returns the members in declaration order.
func (d Domain[T]) Members() []T { return slices.Clone(d.members) }

// Contains reports whether v is a member.
func (d Domain[T]) Contains(v T) bool { return d.Index(v) >= 0 }

// Index returns the position of v, or -1.
func (d Domain[T]) Index(v T) int { return slices.Index(d.members, v) }

// Parse converts untrusted input, such as a navigation parameter, to a member.
// Matching ignores case and surrounding space. Blank input is not a member.
func (d Domain[T]) Parse(raw string) (T, error) {
	raw = strings.TrimSpace(raw)
	for _, m := range d.members {
		if strings.EqualFold(string(m), raw) {
			return m, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q is not a %s", ErrOutOfDomain, raw, d.name)
}

// Choice is the current member of a Domain.
type Choice[T ~string] struct {
	domain  Domain[T]
	current T
}

// NewChoice starts a choice at the domain default.
func NewChoice[T ~string](d Domain[T]) Choice[T] {
	return Choice[T]{domain: d, current: d.def}
}

// SeedChoice starts a choice at seed, which must be a member.
func SeedChoice[T ~string](d Domain[T], seed T) Choice[T] {
	if !d.Contains(seed) {
		fault.Panic("flow.choice", fmt.Errorf("%w: seed %q is not a %s", ErrOutOfDomain, seed, d.name))
	}
	return Choice[T]{domain: d, current: seed}
}

// Current returns the selected member.
func (c Choice[T]) Current() T { return c.current }

// Domain returns the domain the choice ranges over.
func (c Choice[T]) Domain() Domain[T] { return c.domain }

// Select makes v current. Selecting the current member again has no effect.
func (c Choice[T]) Select(v T) (Choice[T], Effect) {
	if !c.domain.Contains(v) {
		fault.Panic("flow.choice", fmt.Errorf("%w: %q is not a %s", ErrOutOfDomain, v, c.domain.name))
	}
	if v == c.current {
		return c, None()
	}
	internal.GetInternalLogger().Debug("Choice changed", "domain", c.domain.name, "from", string(c.current), "to", string(v))
	c.current = v
	return c, Redisplay()
}

// Next selects the following member, wrapping around.
func (c Choice[T]) Next() (Choice[T], Effect) {
	return c.step(1)
}

// Prev selects the preceding member, wrapping around.
func (c Choice[T]) Prev() (Choice[T], Effect) {
	return c.step(-1)
}

func (c Choice[T]) step(delta int) (Choice[T], Effect) {
	n := len(c.domain.members)
	i := (c.domain.Index(c.current) + delta + n) % n
	return c.Select(c.domain.members[i])
}

// Confirm finishes the choice by navigating to target with the current member
// supplied as param. The choice itself does not change.
func (c Choice[T]) Confirm(target router.Target, param string) Effect {
	req := target.Build(router.Params{param: string(c.current)})
	internal.GetInternalLogger().Debug("Choice confirmed", "domain", c.domain.name, "value", string(c.current), "request", req.Describe())
	return Navigate(req)
}
