// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package metrics defines the website's Prometheus counters. They are served
// by the controller-runtime metrics endpoint.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const subsystem = "site"

// Contact submission results.
const (
	ResultAccepted = "accepted"
	ResultRejected = "rejected"
)

//nolint:gochecknoglobals // collectors are registered once per process
var (
	pageViews = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "page_views_total",
			Help:      "Count of rendered pages by page name.",
		},
		[]string{"page"},
	)
	contactSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "contact_submissions_total",
			Help:      "Count of contact form submissions by validation result.",
		},
		[]string{"result"},
	)
	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "rate_limited_total",
			Help:      "Count of requests rejected by the per-client rate limiter.",
		},
	)
)

var registerMetrics sync.Once //nolint:gochecknoglobals // guards Register

// Register all metrics with the controller-runtime registry.
func Register() {
	registerMetrics.Do(func() {
		metrics.Registry.MustRegister(pageViews, contactSubmissions, rateLimited)
	})
}

// RecordPageView counts one render of page.
func RecordPageView(page string) {
	pageViews.WithLabelValues(page).Inc()
}

// RecordContactSubmission counts one contact form submit with its result.
func RecordContactSubmission(accepted bool) {
	result := ResultRejected
	if accepted {
		result = ResultAccepted
	}

	contactSubmissions.WithLabelValues(result).Inc()
}

// RecordRateLimited counts one rejected request.
func RecordRateLimited() {
	rateLimited.Inc()
}
