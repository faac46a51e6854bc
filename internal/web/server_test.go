// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"

	catalogv1alpha1 "github.com/Da1TT/Tour-Business-in-China/api/v1alpha1"
	"github.com/Da1TT/Tour-Business-in-China/internal/config"
	"github.com/Da1TT/Tour-Business-in-China/internal/i18n"
)

func newScheme(t *testing.T) *runtime.Scheme {
	t.Helper()

	scheme := runtime.NewScheme()
	require.NoError(t, catalogv1alpha1.AddToScheme(scheme))

	return scheme
}

func newTestServer(t *testing.T, listings ...*catalogv1alpha1.Listing) *Server {
	t.Helper()

	objs := make([]client.Object, len(listings))
	for i, l := range listings {
		objs[i] = l
	}

	fakeClient := fake.NewClientBuilder().
		WithScheme(newScheme(t)).
		WithObjects(objs...).
		WithStatusSubresource(objs...).
		Build()

	return NewServer(fakeClient, config.NewStore(config.Default()), Options{
		Namespace: "default",
		RateLimit: 30,
		RateBurst: 100,
	})
}

func newListing(name string, category catalogv1alpha1.Category, priority int32, active bool, tags ...string) *catalogv1alpha1.Listing {
	return &catalogv1alpha1.Listing{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: "default",
		},
		Spec: catalogv1alpha1.ListingSpec{
			Category: category,
			Title:    strings.ReplaceAll(name, "-", " "),
			Priority: priority,
			Tags:     tags,
		},
		Status: catalogv1alpha1.ListingStatus{
			Active: active,
		},
	}
}

func get(t *testing.T, h http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestServer_HandleHome(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		newListing("great-wall-hike", catalogv1alpha1.CategoryTour, 5, true),
		newListing("canton-fair", catalogv1alpha1.CategoryExhibition, 4, true),
		newListing("terracotta-army", catalogv1alpha1.CategoryTour, 3, true),
		newListing("yangtze-cruise", catalogv1alpha1.CategoryTour, 1, true),
		newListing("hidden-offer", catalogv1alpha1.CategoryTour, 5, false),
	)

	rec := get(t, srv.Handler(), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, "great wall hike")
	assert.Contains(t, body, "canton fair")
	assert.Contains(t, body, "terracotta army")
	assert.NotContains(t, body, "yangtze cruise")
	assert.NotContains(t, body, "hidden offer")
}

func TestServer_HandleTours(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		newListing("li-river-cruise", catalogv1alpha1.CategoryTour, 2, true, "guilin"),
		newListing("forbidden-city", catalogv1alpha1.CategoryTour, 4, true, "beijing"),
		newListing("canton-fair", catalogv1alpha1.CategoryExhibition, 5, true, "guangzhou"),
		newListing("winter-harbin", catalogv1alpha1.CategoryTour, 5, false, "harbin"),
	)

	rec := get(t, srv.Handler(), "/tours")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `class="nav-link active" href="/tours"`)
	assert.NotContains(t, body, "canton fair")
	assert.NotContains(t, body, "winter harbin")
	assert.NotContains(t, body, `href="/tours?tag=guangzhou"`)

	// Sorted by priority: forbidden city before li river
	assert.Less(t, strings.Index(body, "forbidden city"), strings.Index(body, "li river cruise"))
}

func TestServer_HandleExhibitions_TagFilter(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		newListing("canton-fair", catalogv1alpha1.CategoryExhibition, 5, true, "guangzhou", "trade"),
		newListing("ciie-shanghai", catalogv1alpha1.CategoryExhibition, 4, true, "shanghai", "trade"),
		newListing("auto-china", catalogv1alpha1.CategoryExhibition, 3, true, "beijing"),
	)

	rec := get(t, srv.Handler(), "/exhibitions?tag=shanghai")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "ciie shanghai")
	assert.NotContains(t, body, "canton fair")
	assert.NotContains(t, body, "auto china")
	// All tags stay available in the filter
	assert.Contains(t, body, `href="/exhibitions?tag=beijing"`)
	assert.Contains(t, body, `class="tag active" href="/exhibitions?tag=shanghai"`)
}

func TestServer_HandleListingsFragment(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t,
		newListing("forbidden-city", catalogv1alpha1.CategoryTour, 4, true, "beijing"),
	)
	handler := srv.Handler()

	rec := get(t, handler, "/listings?category=tour&tag=beijing", "Hx-Request", "true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "forbidden city")
	assert.NotContains(t, rec.Body.String(), "<html")

	rec = get(t, handler, "/listings?category=hotel")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_HandleAbout_Chinese(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := get(t, srv.Handler(), "/about?lang=zh")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "关于我们")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, i18n.CookieName, cookies[0].Name)
	assert.Equal(t, i18n.LangZH, cookies[0].Value)
}

func TestServer_LanguageCookie(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: i18n.LangZH})
	req.Header.Set("Accept-Language", "en-US")

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `<html lang="zh">`)
	assert.Empty(t, rec.Result().Cookies())
}

func TestServer_NotFound(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := get(t, srv.Handler(), "/no-such-page")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestServer_Static(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	rec := get(t, srv.Handler(), "/static/site.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), ".toast")
}

func TestServer_ListError(t *testing.T) {
	t.Parallel()

	fakeClient := fake.NewClientBuilder().
		WithScheme(newScheme(t)).
		WithInterceptorFuncs(interceptor.Funcs{
			List: func(context.Context, client.WithWatch, client.ObjectList, ...client.ListOption) error {
				return errors.New("apiserver unavailable")
			},
		}).
		Build()

	srv := NewServer(fakeClient, config.NewStore(config.Default()), Options{Namespace: "default", RateLimit: 30, RateBurst: 10})

	rec := get(t, srv.Handler(), "/tours")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load listings")

	_, _, err := srv.listListings(context.Background(), catalogv1alpha1.CategoryTour, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list listings.catalog.tourbusiness.cn: apiserver unavailable")
}

func TestServer_StartStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.opts.Addr = "127.0.0.1:0"

	assert.False(t, srv.NeedLeaderElection())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)

	go func() {
		errCh <- srv.Start(ctx)
	}()

	// Give ListenAndServe a moment to bind before shutting down
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("Start did not return after the context was cancelled")
	}
}

func TestServer_StartReportsListenError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.opts.Addr = "127.0.0.1:-1"

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "web server")
}

func TestServer_SiteConfigReload(t *testing.T) {
	t.Parallel()

	store := config.NewStore(config.Default())
	srv := NewServer(
		fake.NewClientBuilder().WithScheme(newScheme(t)).Build(),
		store,
		Options{Namespace: "default", RateLimit: 30, RateBurst: 10},
	)
	handler := srv.Handler()

	assert.NotContains(t, get(t, handler, "/about").Body.String(), "Panda Journeys")

	site := config.Default()
	site.Name = "Panda Journeys"
	store.Set(site)

	assert.Contains(t, get(t, handler, "/about").Body.String(), "Panda Journeys")
}

func TestServer_RateLimiting(t *testing.T) {
	t.Parallel()

	const testRemoteAddr = "192.168.1.1:12345"

	srv := newTestServer(t)
	// burst=2 means 2 requests can be made immediately
	srv.limiter = newClientLimiter(1, 2)

	handler := srv.Handler()

	for i, expected := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		req.RemoteAddr = testRemoteAddr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, expected, rec.Code, "request %d", i+1)
	}

	// Another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.RemoteAddr = "10.0.0.7:4444"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientLimiter_EvictsIdle(t *testing.T) {
	t.Parallel()

	l := newClientLimiter(1, 1)
	start := time.Now()

	l.allow("203.0.113.1", start)

	later := start.Add(limiterIdleTTL + time.Minute)
	for i := 0; i < limiterSweepEvery; i++ {
		l.allow("203.0.113.2", later)
	}

	_, stale := l.clients["203.0.113.1"]
	assert.False(t, stale)
	assert.Len(t, l.clients, 1)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		remote   string
		expected string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.1"}, "10.0.0.1:1", "198.51.100.4"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.5"}, "10.0.0.1:1", "198.51.100.5"},
		{"remote addr", nil, "192.0.2.9:5555", "192.0.2.9"},
		{"remote without port", nil, "192.0.2.10", "192.0.2.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, clientIP(req))
		})
	}
}
