// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package contact

// SuccessMessage is sent to the Notifier after a valid submission.
const SuccessMessage = "Thank you for your message! We will get back to you soon."

// Notifier receives the confirmation shown to the visitor after a successful submit.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls fn(message).
func (fn NotifierFunc) Notify(message string) {
	fn(message)
}

// Controller owns the state of one contact form.
// It is not safe for concurrent use.
type Controller struct {
	form     Form
	errs     Errors
	notifier Notifier
}

// NewController creates a controller with an empty form.
func NewController(n Notifier) *Controller {
	return &Controller{notifier: n}
}

// Form returns the current field values.
func (c *Controller) Form() Form {
	return c.form
}

// Errors returns the current validation errors.
func (c *Controller) Errors() Errors {
	return c.errs
}

// OnFieldChange stores the new value and drops any error shown for that field.
// Other fields' errors are left as they are.
func (c *Controller) OnFieldChange(field Field, value string) {
	c.form.Set(field, value)
	c.errs.clear(field)
}

// OnSubmit validates the form. On failure the errors replace the previous
// ones and the values are kept so the visitor can fix them. On success the
// notifier is called once, then the form and errors are reset.
func (c *Controller) OnSubmit() bool {
	ok, errs := Validate(c.form)
	if !ok {
		c.errs = errs

		return false
	}

	if c.notifier != nil {
		c.notifier.Notify(SuccessMessage)
	}

	c.form = Form{}
	c.errs = Errors{}

	return true
}
