package flow

import (
	"fmt"

	"github.com/serenity-wellness/serenity/pkg/serenity/fault"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
)

// Wizard is a step index in [0, steps-1].
// Advance and Retreat move it by one; at either end they navigate instead.
type Wizard struct {
	step       int
	steps      int
	completion router.Target
}

// NewWizard creates a wizard of steps steps starting at seed. Finishing the
// last step navigates to completion. A seed outside [0, steps-1], fewer than
// one step or a zero completion target panics.
func NewWizard(steps, seed int, completion router.Target) Wizard {
	if steps < 1 {
		fault.Panic("flow.wizard", fmt.Errorf("%w: %d steps", ErrOutOfDomain, steps))
	}
	if seed < 0 || seed > steps-1 {
		fault.Panic("flow.wizard", fmt.Errorf("%w: seed %d not in [0, %d]", ErrOutOfDomain, seed, steps-1))
	}
	if completion.IsZero() {
		fault.Panic("flow.wizard", fmt.Errorf("%w: no completion target", ErrOutOfDomain))
	}
	return Wizard{step: seed, steps: steps, completion: completion}
}

// Step returns the current step index.
func (w Wizard) Step() int { return w.step }

// Steps returns the number of steps.
func (w Wizard) Steps() int { return w.steps }

// IsFirst reports whether the wizard is on its first step.
func (w Wizard) IsFirst() bool { return w.step == 0 }

// IsLast reports whether the wizard is on its last step.
func (w Wizard) IsLast() bool { return w.step == w.steps-1 }

// Advance moves to the next step, or on the last step emits the completion
// request and stays put.
func (w Wizard) Advance() (Wizard, Effect) {
	if w.step < w.steps-1 {
		w.step++
		internal.GetInternalLogger().Debug("Wizard advanced", "step", w.step, "steps", w.steps)
		return w, Redisplay()
	}
	return w, w.complete()
}

// Retreat moves to the previous step, or on the first step emits a pop
// request so the previous screen takes over.
func (w Wizard) Retreat() (Wizard, Effect) {
	if w.step > 0 {
		w.step--
		internal.GetInternalLogger().Debug("Wizard retreated", "step", w.step, "steps", w.steps)
		return w, Redisplay()
	}
	internal.GetInternalLogger().Debug("Wizard left from first step")
	return w, Navigate(router.Back())
}

// Skip jumps straight to completion from any step without moving.
func (w Wizard) Skip() (Wizard, Effect) {
	return w, w.complete()
}

func (w Wizard) complete() Effect {
	req := w.completion.Build(nil)
	internal.GetInternalLogger().Debug("Wizard completed", "step", w.step, "destination", string(req.Screen()))
	return Navigate(req)
}
