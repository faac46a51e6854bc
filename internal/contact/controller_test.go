// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func fill(c *Controller, form Form) {
	for _, f := range Fields {
		c.OnFieldChange(f, form.Get(f))
	}
}

func TestController_StartsEmpty(t *testing.T) {
	t.Parallel()

	c := NewController(nil)

	assert.Equal(t, Form{}, c.Form())
	assert.True(t, c.Errors().Empty())
}

func TestController_SubmitValid(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{}
	c := NewController(n)
	fill(c, Form{Name: "Li", Email: "li@example.cn", Subject: "tour", Message: "Beijing in May?"})

	ok := c.OnSubmit()

	require.True(t, ok)
	assert.Equal(t, []string{SuccessMessage}, n.messages)
	assert.Equal(t, Form{}, c.Form())
	assert.True(t, c.Errors().Empty())
}

func TestController_SubmitInvalid(t *testing.T) {
	t.Parallel()

	n := &recordingNotifier{}
	c := NewController(n)
	form := Form{Name: "", Email: "a@b.com", Subject: "", Message: "hi"}
	fill(c, form)

	ok := c.OnSubmit()

	require.False(t, ok)
	assert.Empty(t, n.messages)
	assert.Equal(t, form, c.Form())
	assert.Equal(t, map[Field]string{
		FieldName:    "Name is required",
		FieldSubject: "Subject is required",
	}, c.Errors().Map())
}

func TestController_SubmitReplacesErrors(t *testing.T) {
	t.Parallel()

	c := NewController(nil)
	fill(c, Form{Email: "a@b.com", Message: "hi"})
	require.False(t, c.OnSubmit())
	require.True(t, c.Errors().Has(FieldName))

	// Fix the name, break the email: name error must not linger.
	c.OnFieldChange(FieldName, "Ann")
	c.OnFieldChange(FieldEmail, "broken")
	require.False(t, c.OnSubmit())

	assert.Equal(t, map[Field]string{
		FieldEmail:   "Email is not valid",
		FieldSubject: "Subject is required",
	}, c.Errors().Map())
}

func TestController_FieldChangeClearsOnlyThatError(t *testing.T) {
	t.Parallel()

	c := NewController(nil)
	require.False(t, c.OnSubmit())
	require.Len(t, c.Errors().Map(), 4)

	c.OnFieldChange(FieldName, "")

	assert.False(t, c.Errors().Has(FieldName))
	assert.True(t, c.Errors().Has(FieldEmail))
	assert.True(t, c.Errors().Has(FieldSubject))
	assert.True(t, c.Errors().Has(FieldMessage))
	assert.Empty(t, c.Form().Name)
}

func TestController_FieldChangeWithoutError(t *testing.T) {
	t.Parallel()

	c := NewController(nil)
	c.OnFieldChange(FieldMessage, "Hello")

	assert.Equal(t, "Hello", c.Form().Message)
	assert.True(t, c.Errors().Empty())
}

func TestController_NotifiesOncePerSuccess(t *testing.T) {
	t.Parallel()

	var calls int

	c := NewController(NotifierFunc(func(string) { calls++ }))
	valid := Form{Name: "A", Email: "a@b.co", Subject: "custom", Message: "M"}

	fill(c, valid)
	require.True(t, c.OnSubmit())

	// The reset form is empty, so a second submit fails and must not notify.
	require.False(t, c.OnSubmit())

	fill(c, valid)
	require.True(t, c.OnSubmit())

	assert.Equal(t, 2, calls)
}
