// Package forms holds editable form state for the admin pages: a flat
// string-valued field set, the validation errors for it, and server-side
// sessions that let a client edit a form across several requests.
package forms

// Fields maps a form field name to its editable value.
type Fields map[string]string

// Errors maps a form field name to a validation message.
type Errors map[string]string

// ValidateFunc inspects a field set and returns the errors found, if any.
type ValidateFunc func(Fields) Errors

// ChangeEvent is a single input change coming from the client.
type ChangeEvent struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value"`
}

// Controller owns the state of one form. Every mutation replaces the value
// and error maps with fresh copies built from the latest state, so maps handed
// out earlier never change underneath the caller.
type Controller struct {
	initial  Fields
	values   Fields
	errors   Errors
	validate ValidateFunc
}

// NewController starts a form from initial. validate may be nil, in which case
// Validate always succeeds.
func NewController(initial Fields, validate ValidateFunc) *Controller {
	start := copyFields(initial)
	return &Controller{
		initial:  start,
		values:   copyFields(start),
		errors:   Errors{},
		validate: validate,
	}
}

// HandleChange applies one change event, leaving the other fields untouched.
func (c *Controller) HandleChange(ev ChangeEvent) {
	c.SetField(ev.Name, ev.Value)
}

// SetField replaces a single field value.
func (c *Controller) SetField(key, value string) {
	next := copyFields(c.values)
	next[key] = value
	c.values = next
}

// Validate runs the validation function against the current values, stores
// the resulting errors and reports whether there were none.
func (c *Controller) Validate() bool {
	if c.validate == nil {
		c.errors = Errors{}
		return true
	}
	found := c.validate(copyFields(c.values))
	next := make(Errors, len(found))
	for k, v := range found {
		next[k] = v
	}
	c.errors = next
	return len(next) == 0
}

// Reset restores the initial values and clears errors.
func (c *Controller) Reset() {
	c.values = copyFields(c.initial)
	c.errors = Errors{}
}

// Values returns the current value snapshot.
func (c *Controller) Values() Fields { return c.values }

// Errors returns the current error snapshot.
func (c *Controller) Errors() Errors { return c.errors }

func copyFields(in Fields) Fields {
	out := make(Fields, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
