// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Da1TT/Tour-Business-in-China/internal/contact"
	"github.com/Da1TT/Tour-Business-in-China/internal/i18n"
)

func post(t *testing.T, h http.Handler, target string, values url.Values, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func validSubmission() url.Values {
	return url.Values{
		"name":    {"Ann Lee"},
		"email":   {"ann@example.com"},
		"subject": {"tour"},
		"message": {"Two weeks in Yunnan, please."},
	}
}

func TestContactPage_PreselectsSubject(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	rec := get(t, handler, "/contact?subject=exhibition")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="exhibition" selected>`)

	rec = get(t, handler, "/contact?subject=bogus")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="" selected>`)
	assert.NotContains(t, rec.Body.String(), "is required")
}

func TestContactSubmit_Valid(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	rec := post(t, handler, "/contact", validSubmission())

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `class="toast"`)
	assert.Contains(t, body, contact.SuccessMessage)
	assert.NotContains(t, body, "Ann Lee")
	assert.NotContains(t, body, "ann@example.com")
	assert.NotContains(t, body, "Yunnan")
	assert.Contains(t, body, `<option value="" selected>`)
	assert.NotContains(t, body, `aria-invalid`)
}

func TestContactSubmit_InvalidPlainPost(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	values := validSubmission()
	values.Set("email", "not-an-email")
	values.Set("message", "   ")

	rec := post(t, handler, "/contact", values)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<html")
	assert.Contains(t, body, "Email is not valid")
	assert.Contains(t, body, "Message is required")
	assert.NotContains(t, body, "Name is required")
	assert.NotContains(t, body, "Subject is required")
	// Entered values survive a failed submit
	assert.Contains(t, body, `value="Ann Lee"`)
	assert.Contains(t, body, `value="not-an-email"`)
	assert.NotContains(t, body, `class="toast"`)
}

func TestContactSubmit_EmptyHTMX(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	rec := post(t, handler, "/contact", url.Values{}, "Hx-Request", "true")

	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "<html")
	assert.True(t, strings.HasPrefix(body, `<form id="contact-form"`))

	for _, msg := range []string{"Name is required", "Email is required", "Subject is required", "Message is required"} {
		assert.Contains(t, body, msg)
	}
}

func TestContactSubmit_LocalizedToast(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	rec := post(t, handler, "/contact?lang=zh", validSubmission(), "Hx-Request", "true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), i18n.New(i18n.LangZH).T("contact_success"))
	assert.NotContains(t, rec.Body.String(), contact.SuccessMessage)
}

func TestContactField_ClearsError(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	rec := post(t, handler, "/contact/fields/email", url.Values{"email": {"still wrong"}}, "Hx-Request", "true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<p id="error-email" class="field-error"></p>`, rec.Body.String())
}

func TestContactField_Unknown(t *testing.T) {
	t.Parallel()

	handler := newTestServer(t).Handler()

	rec := post(t, handler, "/contact/fields/phone", url.Values{"phone": {"123"}})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unknown form field")
}

func TestFailingFields(t *testing.T) {
	t.Parallel()

	_, errs := contact.Validate(contact.Form{Name: "Ann", Subject: "tour"})

	assert.Equal(t, []string{"email", "message"}, failingFields(errs))
}
