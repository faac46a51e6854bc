// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		target   string
		cookie   string
		accept   string
		expected string
	}{
		{"default", "/", "", "", LangEN},
		{"query wins", "/?lang=zh", "en", "en-US", LangZH},
		{"unsupported query ignored", "/?lang=fr", "", "zh-CN,zh;q=0.9", LangZH},
		{"cookie before header", "/", "zh", "en-US", LangZH},
		{"bad cookie ignored", "/", "xx", "zh-CN", LangZH},
		{"accept language region", "/", "", "zh-CN,en;q=0.5", LangZH},
		{"accept language quality order", "/", "", "fr;q=0.9,en;q=0.8,zh;q=0.1", LangEN},
		{"accept language unsupported", "/", "", "de-DE,fr;q=0.8", LangEN},
		{"malformed header", "/", "", ";;;", LangEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}

			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}

			assert.Equal(t, tt.expected, Detect(req).Lang())
		})
	}
}

func TestRemember(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Remember(rec, httptest.NewRequest(http.MethodGet, "/?lang=zh", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, LangZH, cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)

	rec = httptest.NewRecorder()
	Remember(rec, httptest.NewRequest(http.MethodGet, "/?lang=klingon", nil))
	assert.Empty(t, rec.Result().Cookies())
}

func TestLocalizer_T(t *testing.T) {
	t.Parallel()

	en := New(LangEN)
	zh := New(LangZH)

	assert.Equal(t, "Contact us", en.T("contact_title"))
	assert.Equal(t, "联系我们", zh.T("contact_title"))
	assert.Equal(t, "missing_key", zh.T("missing_key"))
	assert.Equal(t, LangEN, New("fr").Lang())
	assert.Equal(t, LangZH, New(" ZH ").Lang())
	assert.Equal(t, LangEN, Localizer{}.Lang())
}

func TestLocalizer_Tf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Nothing matches tag hiking", New(LangEN).Tf("empty_filtered", "hiking"))
	assert.Equal(t, "没有匹配标签 徒步 的项目", New(LangZH).Tf("empty_filtered", "徒步"))
}

func TestMessages_SameKeys(t *testing.T) {
	t.Parallel()

	for key := range messages[DefaultLang] {
		for _, lang := range Supported() {
			_, ok := messages[lang][key]
			assert.True(t, ok, "%s missing key %q", lang, key)
		}
	}
}

func TestContactErrorsMatchValidator(t *testing.T) {
	t.Parallel()

	// English copies of the validation messages must stay identical.
	en := New(LangEN)
	assert.Equal(t, "Name is required", en.T("contact_err_name_required"))
	assert.Equal(t, "Email is not valid", en.T("contact_err_email_invalid"))
	assert.Equal(t, "Thank you for your message! We will get back to you soon.", en.T("contact_success"))
}

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "English", Name(LangEN))
	assert.NotEqual(t, "English", Name(LangZH))
}
