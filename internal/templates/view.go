// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package templates holds the templ components of the website. Edit the
// .templ files and run `templ generate` from the repository root; the
// *_templ.go files are generated.
package templates

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	catalogv1alpha1 "github.com/Da1TT/Tour-Business-in-China/api/v1alpha1"
	"github.com/Da1TT/Tour-Business-in-China/internal/config"
	"github.com/Da1TT/Tour-Business-in-China/internal/contact"
	"github.com/Da1TT/Tour-Business-in-China/internal/i18n"
)

// Page names, also used as metric labels.
const (
	PageHome        = "home"
	PageTours       = "tours"
	PageExhibitions = "exhibitions"
	PageAbout       = "about"
	PageContact     = "contact"
	PageNotFound    = "not_found"
)

const faqCount = 4

// View is the per-request rendering context shared by every page.
type View struct {
	L    i18n.Localizer
	Site config.Site
	Page string
	Path string
	Year int
}

// ContactState is what the contact form shows: the values, the errors
// beside each field and an optional toast after a successful submit.
type ContactState struct {
	Form   contact.Form
	Errors contact.Errors
	Toast  string
}

type navItem struct {
	page string
	href string
	key  string
}

//nolint:gochecknoglobals // immutable navigation
var nav = []navItem{
	{PageHome, "/", "nav_home"},
	{PageTours, "/tours", "nav_tours"},
	{PageExhibitions, "/exhibitions", "nav_exhibitions"},
	{PageAbout, "/about", "nav_about"},
	{PageContact, "/contact", "nav_contact"},
}

type service struct {
	icon     string
	titleKey string
	textKey  string
}

//nolint:gochecknoglobals // immutable home page content
var services = []service{
	{"🏯", "service_tours_title", "service_tours_text"},
	{"🏛", "service_expo_title", "service_expo_text"},
	{"🧭", "service_custom_title", "service_custom_text"},
}

func documentTitle(v View, title string) string {
	return title + " | " + v.Site.Name
}

func langHref(v View, lang string) string {
	return v.Path + "?lang=" + lang
}

func copyright(v View) string {
	return strconv.Itoa(v.Year) + " " + v.Site.Name + ". " + v.L.T("footer_rights")
}

func faqKey(n int, part string) string {
	return "faq_" + strconv.Itoa(n) + "_" + part
}

// categoryKey picks the message key of a listings page, e.g. "tours_title".
func categoryKey(category catalogv1alpha1.Category, suffix string) string {
	if category == catalogv1alpha1.CategoryExhibition {
		return "exhibitions_" + suffix
	}

	return "tours_" + suffix
}

// filterHref is the full page URL of a tag filter; an empty tag clears it.
func filterHref(category catalogv1alpha1.Category, tag string) string {
	href := "/tours"
	if category == catalogv1alpha1.CategoryExhibition {
		href = "/exhibitions"
	}

	if tag != "" {
		href += "?" + url.Values{"tag": {tag}}.Encode()
	}

	return href
}

// fragmentHref is the HTMX endpoint returning only the listing content.
func fragmentHref(category catalogv1alpha1.Category, tag string) string {
	query := url.Values{"category": {string(category)}}
	if tag != "" {
		query.Set("tag", tag)
	}

	return "/listings?" + query.Encode()
}

// imageSrc drops image URLs with a scheme other than http(s), mailto, tel or ftp.
func imageSrc(u string) string {
	return string(templ.URL(u))
}

func joinDestinations(destinations []string) string {
	return strings.Join(destinations, " · ")
}

func enquireHref(category catalogv1alpha1.Category) string {
	subject := "tour"
	if category == catalogv1alpha1.CategoryExhibition {
		subject = "exhibition"
	}

	return "/contact?" + url.Values{"subject": {subject}}.Encode()
}

func fieldID(f contact.Field) string {
	return "contact-" + f.String()
}

func errorID(f contact.Field) string {
	return "error-" + f.String()
}

func fieldEndpoint(f contact.Field) string {
	return "/contact/fields/" + f.String()
}

func inputType(f contact.Field) string {
	if f == contact.FieldEmail {
		return "email"
	}

	return "text"
}

func errorText(l i18n.Localizer, f contact.Field, problem contact.Problem) string {
	return l.T("contact_err_" + f.String() + "_" + problem.String())
}
