// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"time"

	"github.com/a-h/templ"
	"github.com/go-logr/logr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	catalogv1alpha1 "github.com/Da1TT/Tour-Business-in-China/api/v1alpha1"
	"github.com/Da1TT/Tour-Business-in-China/internal/config"
	"github.com/Da1TT/Tour-Business-in-China/internal/i18n"
	"github.com/Da1TT/Tour-Business-in-China/internal/metrics"
	"github.com/Da1TT/Tour-Business-in-China/internal/templates"
)

const (
	featuredCount   = 3
	shutdownTimeout = 10 * time.Second
	readTimeout     = 15 * time.Second
)

// Options configures the web server.
type Options struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// Namespace is where Listing resources are read from.
	Namespace string
	// RateLimit is requests per second allowed per client IP.
	RateLimit float64
	// RateBurst is the burst size per client IP.
	RateBurst int
}

// Server handles HTTP requests for the public website.
type Server struct {
	reader  client.Reader
	site    *config.Store
	opts    Options
	limiter *clientLimiter
	log     logr.Logger
	now     func() time.Time
}

// NewServer creates a new web server.
func NewServer(r client.Reader, site *config.Store, opts Options) *Server {
	return &Server{
		reader:  r,
		site:    site,
		opts:    opts,
		limiter: newClientLimiter(opts.RateLimit, opts.RateBurst),
		log:     ctrl.Log.WithName("web"),
		now:     time.Now,
	}
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /tours", s.handleListingsPage(catalogv1alpha1.CategoryTour, templates.PageTours))
	mux.HandleFunc("GET /exhibitions", s.handleListingsPage(catalogv1alpha1.CategoryExhibition, templates.PageExhibitions))
	mux.HandleFunc("GET /listings", s.handleListingsFragment)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /contact", s.handleContactPage)
	mux.HandleFunc("POST /contact", s.handleContactSubmit)
	mux.HandleFunc("POST /contact/fields/{field}", s.handleContactField)
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticHandler()))
	mux.HandleFunc("/", s.handleNotFound)

	return s.rateLimitMiddleware(s.contextMiddleware(mux))
}

// Start serves until ctx is cancelled. It satisfies manager.Runnable.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("Starting web server", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown web server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server: %w", err)
	}

	return nil
}

// NeedLeaderElection reports false: every replica serves the site.
func (s *Server) NeedLeaderElection() bool {
	return false
}

// contextMiddleware attaches a request logger and remembers an explicit language choice.
func (s *Server) contextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.log.WithValues("method", r.Method, "path", r.URL.Path)
		r = r.WithContext(logf.IntoContext(r.Context(), log))

		i18n.Remember(w, r)

		next.ServeHTTP(w, r)
	})
}

func (s *Server) view(r *http.Request, page string) templates.View {
	return templates.View{
		L:    i18n.Detect(r),
		Site: s.site.Get(),
		Page: page,
		Path: r.URL.Path,
		Year: s.now().Year(),
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	v := s.view(r, templates.PageHome)

	listings, _, err := s.listListings(r.Context(), "", "")
	if err != nil {
		s.fail(w, r, v.L, err, "err_list_listings")

		return
	}

	if len(listings) > featuredCount {
		listings = listings[:featuredCount]
	}

	s.renderPage(w, r, v, http.StatusOK, templates.Home(v, listings))
}

func (s *Server) handleListingsPage(category catalogv1alpha1.Category, page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := s.view(r, page)
		filterTag := r.URL.Query().Get("tag")

		listings, allTags, err := s.listListings(r.Context(), category, filterTag)
		if err != nil {
			s.fail(w, r, v.L, err, "err_list_listings")

			return
		}

		s.renderPage(w, r, v, http.StatusOK, templates.ListingsPage(v, category, listings, allTags, filterTag))
	}
}

func (s *Server) handleListingsFragment(w http.ResponseWriter, r *http.Request) {
	category := catalogv1alpha1.Category(r.URL.Query().Get("category"))
	page := templates.PageTours

	switch category {
	case catalogv1alpha1.CategoryTour:
	case catalogv1alpha1.CategoryExhibition:
		page = templates.PageExhibitions
	default:
		s.handleNotFound(w, r)

		return
	}

	v := s.view(r, page)
	filterTag := r.URL.Query().Get("tag")

	listings, allTags, err := s.listListings(r.Context(), category, filterTag)
	if err != nil {
		s.fail(w, r, v.L, err, "err_list_listings")

		return
	}

	s.render(w, r, v.L, http.StatusOK, templates.ListingContent(v, category, listings, allTags, filterTag))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	v := s.view(r, templates.PageAbout)
	s.renderPage(w, r, v, http.StatusOK, templates.About(v))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	v := s.view(r, templates.PageNotFound)
	s.renderPage(w, r, v, http.StatusNotFound, templates.NotFound(v))
}

// listListings returns active listings of category ("" for all), filtered by
// tag when set, plus every tag used by the category for the filter UI.
func (s *Server) listListings(
	ctx context.Context,
	category catalogv1alpha1.Category,
	filterTag string,
) ([]catalogv1alpha1.Listing, []string, error) {
	list := &catalogv1alpha1.ListingList{}
	if err := s.reader.List(ctx, list, client.InNamespace(s.opts.Namespace)); err != nil {
		return nil, nil, fmt.Errorf("list %s: %w", catalogv1alpha1.Resource("listings"), err)
	}

	tagSet := make(map[string]struct{})
	active := make([]catalogv1alpha1.Listing, 0, len(list.Items))

	for i := range list.Items {
		listing := &list.Items[i]
		if !listing.Status.Active {
			continue
		}

		if category != "" && listing.Spec.Category != category {
			continue
		}

		// Collect all tags for filter UI
		for _, tag := range listing.Spec.Tags {
			tagSet[tag] = struct{}{}
		}

		if filterTag != "" && !listing.HasTag(filterTag) {
			continue
		}

		active = append(active, *listing)
	}

	// Highest priority first, then by title
	sort.Slice(active, func(i, j int) bool {
		if active[i].Spec.Priority != active[j].Spec.Priority {
			return active[i].Spec.Priority > active[j].Spec.Priority
		}

		return active[i].Spec.Title < active[j].Spec.Title
	})

	allTags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		allTags = append(allTags, tag)
	}

	sort.Strings(allTags)

	return active, allTags, nil
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, v templates.View, status int, c templ.Component) {
	metrics.RecordPageView(v.Page)
	s.render(w, r, v.L, status, c)
}

// render buffers the component so a template error can still become a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, l i18n.Localizer, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		s.fail(w, r, l, err, "err_render")

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		logf.FromContext(r.Context()).V(1).Info("Client went away", "error", err.Error())
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, l i18n.Localizer, err error, key string) {
	logf.FromContext(r.Context()).Error(err, "Request failed")
	http.Error(w, l.T(key), http.StatusInternalServerError)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("Hx-Request") == "true"
}
