// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package v1alpha1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

func timePtr(t time.Time) *metav1.Time {
	mt := metav1.NewTime(t)

	return &mt
}

func TestListing_InSeason(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		from     *metav1.Time
		until    *metav1.Time
		expected bool
	}{
		{"open ended", nil, nil, true},
		{"started", timePtr(now.Add(-time.Hour)), nil, true},
		{"not started", timePtr(now.Add(time.Hour)), nil, false},
		{"ended", nil, timePtr(now.Add(-time.Hour)), false},
		{"ends exactly now", nil, timePtr(now), false},
		{"inside window", timePtr(now.Add(-time.Hour)), timePtr(now.Add(time.Hour)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := &Listing{Spec: ListingSpec{AvailableFrom: tt.from, AvailableUntil: tt.until}}
			assert.Equal(t, tt.expected, l.InSeason(now))
		})
	}
}

func TestListing_NextBoundary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)
	from := now.Add(24 * time.Hour)
	until := now.Add(72 * time.Hour)

	l := &Listing{Spec: ListingSpec{AvailableFrom: timePtr(from), AvailableUntil: timePtr(until)}}

	assert.True(t, l.NextBoundary(now).Equal(from))
	assert.True(t, l.NextBoundary(from).Equal(until))
	assert.True(t, l.NextBoundary(until).IsZero())
	assert.True(t, (&Listing{}).NextBoundary(now).IsZero())
}

func TestListing_Localized(t *testing.T) {
	t.Parallel()

	l := &Listing{Spec: ListingSpec{
		Title:   "Great Wall Hike",
		Summary: "A day on the wall",
		Localized: map[string]LocalizedText{
			"zh": {Title: "长城徒步"},
		},
	}}

	assert.Equal(t, "长城徒步", l.Title("zh"))
	assert.Equal(t, "A day on the wall", l.Summary("zh"))
	assert.Equal(t, "Great Wall Hike", l.Title("en"))
}

func TestListing_HasTag(t *testing.T) {
	t.Parallel()

	l := &Listing{Spec: ListingSpec{Tags: []string{"hiking", "beijing"}}}

	assert.True(t, l.HasTag("beijing"))
	assert.False(t, l.HasTag("shanghai"))
}

func TestListing_DeepCopy(t *testing.T) {
	t.Parallel()

	orig := &Listing{
		ObjectMeta: metav1.ObjectMeta{Name: "canton-fair", Namespace: "default"},
		Spec: ListingSpec{
			Category:      CategoryExhibition,
			Title:         "Canton Fair Phase 1",
			Tags:          []string{"guangzhou"},
			Destinations:  []string{"Guangzhou"},
			Localized:     map[string]LocalizedText{"zh": {Title: "广交会第一期"}},
			AvailableFrom: timePtr(time.Now()),
		},
		Status: ListingStatus{
			Active:     true,
			Conditions: []metav1.Condition{{Type: ConditionAvailable, Status: metav1.ConditionTrue}},
		},
	}

	cp := orig.DeepCopy()
	require.NotNil(t, cp)
	assert.Equal(t, orig, cp)

	cp.Spec.Tags[0] = "changed"
	cp.Spec.Localized["zh"] = LocalizedText{Title: "changed"}
	cp.Status.Conditions[0].Reason = "changed"

	assert.Equal(t, "guangzhou", orig.Spec.Tags[0])
	assert.Equal(t, "广交会第一期", orig.Spec.Localized["zh"].Title)
	assert.Empty(t, orig.Status.Conditions[0].Reason)
}

func TestAddToScheme(t *testing.T) {
	t.Parallel()

	scheme := runtime.NewScheme()
	require.NoError(t, AddToScheme(scheme))

	gvks, _, err := scheme.ObjectKinds(&Listing{})
	require.NoError(t, err)
	require.Len(t, gvks, 1)
	assert.Equal(t, "Listing", gvks[0].Kind)
	assert.Equal(t, GroupVersion, gvks[0].GroupVersion())
}

func TestResource(t *testing.T) {
	t.Parallel()

	gr := Resource("listings")

	assert.Equal(t, GroupName, gr.Group)
	assert.Equal(t, "listings.catalog.tourbusiness.cn", gr.String())
}
