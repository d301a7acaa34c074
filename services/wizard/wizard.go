// Package wizard sequences form completion across immutable step definitions,
// gating forward navigation on step validity while leaving backward navigation
// free.
package wizard

import (
	"strings"

	"sufra/models"
	"sufra/services/locale"
)

// Step is an immutable definition of one wizard step: its required fields and
// an optional step-local check. Only the controller's position and error map
// are mutable state.
type Step struct {
	Index    int
	Required []models.FieldRef
	Check    func(form *models.FormData) models.ErrorMap
}

// Controller walks a form through its steps. It performs no I/O and holds no
// history: validation is a pure function of the form snapshot, so re-running
// it on the same data always yields the same errors.
type Controller struct {
	steps   []Step
	sync    *locale.Synchronizer
	current int
	errs    models.ErrorMap
}

// NewController starts a controller at step 1.
func NewController(steps []Step, sync *locale.Synchronizer) *Controller {
	return Resume(steps, sync, 1)
}

// Resume rebuilds a controller at a stored position, clamped into range. Used
// when a form session is reloaded between requests.
func Resume(steps []Step, sync *locale.Synchronizer, current int) *Controller {
	if current < 1 {
		current = 1
	}
	if current > len(steps) {
		current = len(steps)
	}
	return &Controller{steps: steps, sync: sync, current: current, errs: models.ErrorMap{}}
}

// Current returns the 1-based index of the active step.
func (c *Controller) Current() int {
	return c.current
}

// StepCount returns N, the number of steps in the flow.
func (c *Controller) StepCount() int {
	return len(c.steps)
}

// Errors returns the error map produced by the last gated transition attempt.
func (c *Controller) Errors() models.ErrorMap {
	return c.errs
}

// Validate runs one step's checks against the form snapshot. Required
// translatable fields are checked against their default-language entry only;
// plain fields against the flat value.
func (c *Controller) Validate(form *models.FormData, stepIndex int) models.ErrorMap {
	errs := models.ErrorMap{}
	if stepIndex < 1 || stepIndex > len(c.steps) {
		return errs
	}
	step := c.steps[stepIndex-1]
	for _, ref := range step.Required {
		var v string
		if ref.Translatable() {
			v = c.sync.DefaultValue(form, ref)
		} else {
			v = form.Value(ref)
		}
		if strings.TrimSpace(v) == "" {
			errs[ref.Key()] = "this field is required"
		}
	}
	if step.Check != nil {
		errs.Merge(step.Check(form))
	}
	return errs
}

// Advance moves to the next step if the current one validates. On failure the
// position is unchanged and the errors are kept for display; retrying with the
// same data fails identically.
func (c *Controller) Advance(form *models.FormData) bool {
	c.errs = c.Validate(form, c.current)
	if len(c.errs) > 0 {
		return false
	}
	if c.current < len(c.steps) {
		c.current++
	}
	return true
}

// Retreat steps back without re-validating: a user may go back with existing
// errors intact.
func (c *Controller) Retreat() bool {
	if c.current <= 1 {
		return false
	}
	c.current--
	return true
}

// JumpTo moves directly to step k, as from a clickable progress indicator.
// Only steps already reached are allowed; skipping ahead unvalidated is not.
func (c *Controller) JumpTo(k int) bool {
	if k < 1 || k > c.current {
		return false
	}
	c.current = k
	return true
}

// Submit validates the final step. An empty map means the form may be handed
// to the branch service; the controller does not reset itself, post-submit
// navigation belongs to the caller.
func (c *Controller) Submit(form *models.FormData) models.ErrorMap {
	c.errs = c.Validate(form, len(c.steps))
	return c.errs
}
