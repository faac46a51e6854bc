// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package contact implements the contact form: field state, validation and
// the submit flow that notifies the visitor and resets the form.
package contact

import (
	"regexp"
	"strings"
)

// Field identifies one of the contact form inputs.
type Field uint8

// Contact form fields, in display order.
const (
	FieldName Field = iota
	FieldEmail
	FieldSubject
	FieldMessage

	fieldCount
)

// Fields lists every form field in display order.
var Fields = [fieldCount]Field{FieldName, FieldEmail, FieldSubject, FieldMessage} //nolint:gochecknoglobals // immutable field list

var fieldNames = [fieldCount]string{"name", "email", "subject", "message"} //nolint:gochecknoglobals // immutable

// String returns the form input name of the field.
func (f Field) String() string {
	if f >= fieldCount {
		return "unknown"
	}

	return fieldNames[f]
}

// ParseField maps a form input name to its Field.
func ParseField(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}

	return 0, false
}

// Subject choices offered by the form. The empty value is the placeholder.
var Subjects = []string{"", "tour", "exhibition", "custom", "general", "other"} //nolint:gochecknoglobals // immutable option list

// Form holds the values currently typed into the contact form.
type Form struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Get returns the value of the given field.
func (f *Form) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldSubject:
		return f.Subject
	case FieldMessage:
		return f.Message
	default:
		return ""
	}
}

// Set stores value in the given field.
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldSubject:
		f.Subject = value
	case FieldMessage:
		f.Message = value
	}
}

// Problem is the reason a field failed validation.
type Problem uint8

const (
	// ProblemNone means the field is valid.
	ProblemNone Problem = iota
	// ProblemRequired means the field is blank.
	ProblemRequired
	// ProblemInvalid means the field is present but malformed.
	ProblemInvalid
)

// String returns the short code used in message keys.
func (p Problem) String() string {
	switch p {
	case ProblemRequired:
		return "required"
	case ProblemInvalid:
		return "invalid"
	default:
		return ""
	}
}

// Errors holds at most one validation problem per field.
type Errors struct {
	problems [fieldCount]Problem
}

// Has reports whether the field currently has an error.
func (e Errors) Has(field Field) bool {
	return field < fieldCount && e.problems[field] != ProblemNone
}

// Problem returns the field's problem, ProblemNone when it has no error.
func (e Errors) Problem(field Field) Problem {
	if field >= fieldCount {
		return ProblemNone
	}

	return e.problems[field]
}

// Message returns the field's error message, or "" when it has no error.
func (e Errors) Message(field Field) string {
	return message(field, e.Problem(field))
}

// Empty reports whether no field has an error.
func (e Errors) Empty() bool {
	return e == Errors{}
}

// Map returns the failing fields and their messages.
func (e Errors) Map() map[Field]string {
	out := make(map[Field]string)

	for _, f := range Fields {
		if msg := e.Message(f); msg != "" {
			out[f] = msg
		}
	}

	return out
}

func (e *Errors) set(field Field, p Problem) {
	e.problems[field] = p
}

func (e *Errors) clear(field Field) {
	if field < fieldCount {
		e.problems[field] = ProblemNone
	}
}

func message(field Field, p Problem) string {
	switch p {
	case ProblemRequired:
		switch field {
		case FieldName:
			return "Name is required"
		case FieldEmail:
			return "Email is required"
		case FieldSubject:
			return "Subject is required"
		case FieldMessage:
			return "Message is required"
		}
	case ProblemInvalid:
		if field == FieldEmail {
			return "Email is not valid"
		}
	}

	return ""
}

// emailPattern is a shape check only: something@something.something
// anywhere in the value.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`) //nolint:gochecknoglobals // compiled once

// Validate checks every field of form and reports the failures.
// It has no side effects.
func Validate(form Form) (bool, Errors) {
	var errs Errors

	if blank(form.Name) {
		errs.set(FieldName, ProblemRequired)
	}

	switch {
	case blank(form.Email):
		errs.set(FieldEmail, ProblemRequired)
	case !emailPattern.MatchString(form.Email):
		errs.set(FieldEmail, ProblemInvalid)
	}

	if blank(form.Subject) {
		errs.set(FieldSubject, ProblemRequired)
	}

	if blank(form.Message) {
		errs.set(FieldMessage, ProblemRequired)
	}

	return errs.Empty(), errs
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
