// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package web

import (
	"net/http"
	"slices"

	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/Da1TT/Tour-Business-in-China/internal/contact"
	"github.com/Da1TT/Tour-Business-in-China/internal/i18n"
	"github.com/Da1TT/Tour-Business-in-China/internal/metrics"
	"github.com/Da1TT/Tour-Business-in-China/internal/templates"
)

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	v := s.view(r, templates.PageContact)
	form := contact.NewController(nil)

	// "Enquire" buttons link here with the subject preselected
	if subject := r.URL.Query().Get("subject"); subject != "" && slices.Contains(contact.Subjects, subject) {
		form.OnFieldChange(contact.FieldSubject, subject)
	}

	s.renderPage(w, r, v, http.StatusOK, templates.Contact(v, templates.ContactState{Form: form.Form()}))
}

// handleContactSubmit replays the posted values into a fresh form and submits it.
// Nothing is sent or stored: a valid submit only produces the confirmation toast.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	v := s.view(r, templates.PageContact)
	log := logf.FromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, v.L.T("err_invalid_form"), http.StatusBadRequest)

		return
	}

	var toast string

	form := contact.NewController(contact.NotifierFunc(func(message string) {
		toast = toastText(v.L, message)
	}))

	for _, f := range contact.Fields {
		form.OnFieldChange(f, r.PostFormValue(f.String()))
	}

	accepted := form.OnSubmit()
	metrics.RecordContactSubmission(accepted)

	state := templates.ContactState{Form: form.Form(), Errors: form.Errors(), Toast: toast}

	if accepted {
		log.Info("Contact form accepted", "subject", r.PostFormValue(contact.FieldSubject.String()))
	} else {
		log.V(1).Info("Contact form rejected", "fields", failingFields(state.Errors))
	}

	// htmx only swaps 2xx responses, so validation failures stay 200 for it.
	status := http.StatusOK
	if !accepted && !isHTMX(r) {
		status = http.StatusUnprocessableEntity
	}

	if isHTMX(r) {
		s.render(w, r, v.L, status, templates.ContactForm(v.L, state))

		return
	}

	s.renderPage(w, r, v, status, templates.Contact(v, state))
}

// handleContactField is the edit event for one field: the new value clears
// that field's error, so the response is the field's emptied error slot.
func (s *Server) handleContactField(w http.ResponseWriter, r *http.Request) {
	l := i18n.Detect(r)

	field, ok := contact.ParseField(r.PathValue("field"))
	if !ok {
		http.Error(w, l.T("err_unknown_field"), http.StatusNotFound)

		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, l.T("err_invalid_form"), http.StatusBadRequest)

		return
	}

	form := contact.NewController(nil)
	form.OnFieldChange(field, r.PostFormValue(field.String()))

	s.render(w, r, l, http.StatusOK, templates.FieldError(l, field, form.Errors().Problem(field)))
}

func toastText(l i18n.Localizer, message string) string {
	if message == contact.SuccessMessage {
		return l.T("contact_success")
	}

	return message
}

func failingFields(errs contact.Errors) []string {
	var names []string

	for _, f := range contact.Fields {
		if errs.Has(f) {
			names = append(names, f.String())
		}
	}

	return names
}
