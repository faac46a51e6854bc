// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	catalogv1alpha1 "github.com/Da1TT/Tour-Business-in-China/api/v1alpha1"
	"github.com/Da1TT/Tour-Business-in-China/internal/config"
	"github.com/Da1TT/Tour-Business-in-China/internal/contact"
	"github.com/Da1TT/Tour-Business-in-China/internal/i18n"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))

	return sb.String()
}

func testView(lang, page, path string) View {
	site := config.Default()
	site.Social = []config.Link{{Label: "Weibo", URL: "https://weibo.com/example"}}

	return View{L: i18n.New(lang), Site: site, Page: page, Path: path, Year: 2026}
}

func TestLayout_NavAndLanguage(t *testing.T) {
	t.Parallel()

	out := render(t, About(testView(i18n.LangZH, PageAbout, "/about")))

	assert.Contains(t, out, `<html lang="zh">`)
	assert.Contains(t, out, `class="nav-link active" href="/about"`)
	assert.Contains(t, out, `href="/about?lang=en"`)
	assert.Contains(t, out, "关于我们")
	assert.Contains(t, out, "北京市朝阳区建国路88号")
	assert.Contains(t, out, `href="https://weibo.com/example"`)
	assert.Contains(t, out, "2026")
}

func TestLayout_Document(t *testing.T) {
	t.Parallel()

	out := render(t, About(testView(i18n.LangEN, PageAbout, "/about")))

	assert.True(t, strings.HasPrefix(out, `<!doctype html><html lang="en">`))
	assert.Contains(t, out, `<title>About us | `)
	assert.Contains(t, out, `href="mailto:info@tourbusiness.cn"`)
	assert.Contains(t, out, `href="tel:+86 10 8888 6666"`)
	assert.Contains(t, out, `rel="noopener" target="_blank">Weibo</a>`)
	assert.True(t, strings.HasSuffix(out, "</p></footer></body></html>"))
}

func TestLayout_SanitizesSocialLinks(t *testing.T) {
	t.Parallel()

	v := testView(i18n.LangEN, PageHome, "/")
	v.Site.Social = []config.Link{{Label: "Bad", URL: "javascript:alert(1)"}}

	out := render(t, Home(v, nil))

	assert.NotContains(t, out, "javascript:alert")
	assert.Contains(t, out, string(templ.FailedSanitizationURL))
}

func TestLayout_EscapesSiteName(t *testing.T) {
	t.Parallel()

	v := testView(i18n.LangEN, PageHome, "/")
	v.Site.Name = `<script>alert("x")</script>`

	out := render(t, Home(v, nil))

	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestHome_Featured(t *testing.T) {
	t.Parallel()

	featured := []catalogv1alpha1.Listing{{
		ObjectMeta: metav1.ObjectMeta{Name: "li-river"},
		Spec: catalogv1alpha1.ListingSpec{
			Category: catalogv1alpha1.CategoryTour,
			Title:    "Li River Cruise",
			Localized: map[string]catalogv1alpha1.LocalizedText{
				"zh": {Title: "漓江游船"},
			},
		},
	}}

	en := render(t, Home(testView(i18n.LangEN, PageHome, "/"), featured))
	zh := render(t, Home(testView(i18n.LangZH, PageHome, "/"), featured))

	assert.Contains(t, en, "Featured this season")
	assert.Contains(t, en, "Li River Cruise")
	assert.Contains(t, zh, "漓江游船")
	assert.NotContains(t, render(t, Home(testView(i18n.LangEN, PageHome, "/"), nil)), "Featured this season")
}

func TestListingContent(t *testing.T) {
	t.Parallel()

	v := testView(i18n.LangEN, PageExhibitions, "/exhibitions")
	listings := []catalogv1alpha1.Listing{{
		ObjectMeta: metav1.ObjectMeta{Name: "canton-fair"},
		Spec: catalogv1alpha1.ListingSpec{
			Category:     catalogv1alpha1.CategoryExhibition,
			Title:        "Canton Fair",
			ImageURL:     "javascript:alert(1)",
			Duration:     "5 days",
			Price:        "¥ 9800",
			Destinations: []string{"Guangzhou", "Foshan"},
			Tags:         []string{"trade"},
		},
	}}

	out := render(t, ListingContent(v, catalogv1alpha1.CategoryExhibition, listings, []string{"trade"}, "trade"))

	assert.Contains(t, out, `id="listing-content"`)
	assert.Contains(t, out, `class="tag active" href="/exhibitions?tag=trade"`)
	assert.Contains(t, out, `hx-get="/listings?category=exhibition&amp;tag=trade"`)
	assert.Contains(t, out, "Guangzhou · Foshan")
	assert.Contains(t, out, `href="/contact?subject=exhibition"`)
	assert.NotContains(t, out, "javascript:alert")
}

func TestListingContent_Empty(t *testing.T) {
	t.Parallel()

	v := testView(i18n.LangEN, PageTours, "/tours")

	filtered := render(t, ListingContent(v, catalogv1alpha1.CategoryTour, nil, []string{"hiking"}, "hiking"))
	assert.Contains(t, filtered, "Nothing matches tag hiking")
	assert.Contains(t, filtered, `class="tag active" href="/tours?tag=hiking"`)
	assert.Contains(t, filtered, `class="tag" href="/tours"`)

	zh := render(t, ListingContent(testView(i18n.LangZH, PageTours, "/tours"), catalogv1alpha1.CategoryTour, nil, nil, "徒步"))
	assert.Contains(t, zh, `<p class="empty">没有匹配标签 徒步 的项目</p>`)

	empty := render(t, ListingContent(v, catalogv1alpha1.CategoryTour, nil, nil, ""))
	assert.Contains(t, empty, "New dates are coming soon.")
	assert.NotContains(t, empty, `class="filter"`)
}

func TestContactForm_ShowsErrorsAndValues(t *testing.T) {
	t.Parallel()

	c := contact.NewController(nil)
	c.OnFieldChange(contact.FieldName, `Ann "The Traveller"`)
	c.OnFieldChange(contact.FieldEmail, "bad")
	c.OnFieldChange(contact.FieldSubject, "tour")
	require.False(t, c.OnSubmit())

	out := render(t, ContactForm(i18n.New(i18n.LangEN), ContactState{Form: c.Form(), Errors: c.Errors()}))

	assert.Contains(t, out, `value="Ann &#34;The Traveller&#34;"`)
	assert.Contains(t, out, `<option value="tour" selected>`)
	assert.Contains(t, out, "Email is not valid")
	assert.Contains(t, out, "Message is required")
	assert.NotContains(t, out, "Name is required")
	assert.NotContains(t, out, `class="toast"`)
}

func TestContactForm_Toast(t *testing.T) {
	t.Parallel()

	out := render(t, ContactForm(i18n.New(i18n.LangZH), ContactState{Toast: "感谢您的留言！"}))

	assert.Contains(t, out, `class="toast"`)
	assert.Contains(t, out, "感谢您的留言！")
	assert.Contains(t, out, "发送留言")
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	l := i18n.New(i18n.LangZH)

	assert.Equal(t,
		`<p id="error-email" class="field-error">邮箱格式不正确</p>`,
		render(t, FieldError(l, contact.FieldEmail, contact.ProblemInvalid)))
	assert.Equal(t,
		`<p id="error-name" class="field-error"></p>`,
		render(t, FieldError(l, contact.FieldName, contact.ProblemNone)))
}

func TestContactPage_InfoAndFAQ(t *testing.T) {
	t.Parallel()

	out := render(t, Contact(testView(i18n.LangEN, PageContact, "/contact"), ContactState{}))

	assert.Contains(t, out, "Contact information")
	assert.Contains(t, out, "info@tourbusiness.cn")
	assert.Contains(t, out, "Office hours")
	assert.Contains(t, out, "Do I need a visa to visit China?")
	assert.Equal(t, faqCount, strings.Count(out, "<details>"))
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	out := render(t, NotFound(testView(i18n.LangEN, PageNotFound, "/nope")))

	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, `href="/nope?lang=zh"`)
}
