// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package i18n

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Supported languages.
const (
	LangEN = "en"
	LangZH = "zh"

	DefaultLang = LangEN
)

// CookieName is the cookie that remembers the visitor's language choice.
const CookieName = "lang"

const cookieMaxAge = 365 * 24 * time.Hour

// supportedLangs contains all supported language codes, default first.
var supportedLangs = []string{LangEN, LangZH} //nolint:gochecknoglobals // immutable language list

//nolint:gochecknoglobals // immutable matcher built from supportedLangs
var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// Localizer resolves message keys for one language. It is passed explicitly
// to everything that renders text; there is no process-wide current language.
type Localizer struct {
	lang string
}

// New returns a Localizer for lang, or for DefaultLang when lang is not supported.
func New(lang string) Localizer {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !isSupported(lang) {
		lang = DefaultLang
	}

	return Localizer{lang: lang}
}

// Lang returns the language code.
func (l Localizer) Lang() string {
	if l.lang == "" {
		return DefaultLang
	}

	return l.lang
}

// T returns the translation for key, falling back to English and then to the key itself.
func (l Localizer) T(key string) string {
	if translations, ok := messages[l.Lang()]; ok {
		if msg, ok := translations[key]; ok {
			return msg
		}
	}

	if translations, ok := messages[DefaultLang]; ok {
		if msg, ok := translations[key]; ok {
			return msg
		}
	}

	return key
}

// Tf formats the translation for key with args.
func (l Localizer) Tf(key string, args ...any) string {
	return fmt.Sprintf(l.T(key), args...)
}

// Supported returns the supported language codes, default first.
func Supported() []string {
	return slices.Clone(supportedLangs)
}

// Name returns the language's own name for the switcher.
func Name(lang string) string {
	switch lang {
	case LangZH:
		return "中文" //nolint:gosmopolitan // native language name
	default:
		return "English"
	}
}

// Detect determines the language for the request.
// Priority: 1) ?lang= parameter, 2) lang cookie, 3) Accept-Language header, 4) default (en).
func Detect(r *http.Request) Localizer {
	if lang := r.URL.Query().Get("lang"); lang != "" && isSupported(lang) {
		return New(lang)
	}

	if c, err := r.Cookie(CookieName); err == nil && isSupported(c.Value) {
		return New(c.Value)
	}

	if lang := parseAcceptLanguage(r.Header.Get("Accept-Language")); lang != "" {
		return New(lang)
	}

	return New(DefaultLang)
}

// Remember stores an explicit ?lang= choice in a cookie so later pages keep it.
func Remember(w http.ResponseWriter, r *http.Request) {
	lang := strings.ToLower(r.URL.Query().Get("lang"))
	if !isSupported(lang) {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    lang,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// parseAcceptLanguage returns the best supported language from the header, or "".
func parseAcceptLanguage(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return ""
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return ""
	}

	return supportedLangs[idx]
}

// isSupported checks if the language is in the supported list.
func isSupported(lang string) bool {
	return slices.Contains(supportedLangs, strings.ToLower(lang))
}
