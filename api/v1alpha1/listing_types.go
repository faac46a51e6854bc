// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package v1alpha1

import (
	"slices"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Category separates tours from exhibition packages.
// +kubebuilder:validation:Enum=tour;exhibition
type Category string

// Listing categories.
const (
	CategoryTour       Category = "tour"
	CategoryExhibition Category = "exhibition"
)

// ConditionAvailable reports whether the listing is inside its season window.
const ConditionAvailable = "Available"

// LocalizedText overrides the default title and summary for one language.
type LocalizedText struct {
	// +optional
	Title string `json:"title,omitempty"`

	// +optional
	Summary string `json:"summary,omitempty"`
}

// ListingSpec defines the desired state of Listing.
type ListingSpec struct {
	// Category is either tour or exhibition.
	// +kubebuilder:validation:Required
	Category Category `json:"category"`

	// Title is the default (English) name of the offer.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	Title string `json:"title"`

	// Summary is a short default (English) description.
	// +optional
	Summary string `json:"summary,omitempty"`

	// Localized holds per-language title and summary, keyed by language code.
	// +optional
	Localized map[string]LocalizedText `json:"localized,omitempty"`

	// ImageURL is the URL to the cover image.
	// +optional
	ImageURL string `json:"imageURL,omitempty"`

	// Duration is a display string (e.g., "5 days").
	// +optional
	Duration string `json:"duration,omitempty"`

	// Price is a display string (e.g., "¥ 6800").
	// +optional
	Price string `json:"price,omitempty"`

	// Destinations are the cities or venues visited.
	// +optional
	Destinations []string `json:"destinations,omitempty"`

	// Tags are labels used by the filter UI.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// Priority orders listings (0-5, highest first).
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:validation:Maximum=5
	// +optional
	Priority int32 `json:"priority,omitempty"`

	// AvailableFrom is when the listing starts being shown.
	// +optional
	AvailableFrom *metav1.Time `json:"availableFrom,omitempty"`

	// AvailableUntil is when the listing stops being shown.
	// +optional
	AvailableUntil *metav1.Time `json:"availableUntil,omitempty"`
}

// ListingStatus defines the observed state of Listing.
type ListingStatus struct {
	// Active indicates the listing is inside its season window and is shown on the site.
	// +optional
	Active bool `json:"active,omitempty"`

	// Conditions represent the current state of the Listing resource.
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Category",type=string,JSONPath=`.spec.category`
// +kubebuilder:printcolumn:name="Active",type=boolean,JSONPath=`.status.active`

// Listing is the Schema for the listings API
type Listing struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is a standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitzero"`

	// spec defines the desired state of Listing
	// +required
	Spec ListingSpec `json:"spec"`

	// status defines the observed state of Listing
	// +optional
	Status ListingStatus `json:"status,omitzero"`
}

// +kubebuilder:object:root=true

// ListingList contains a list of Listing
type ListingList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitzero"`

	Items []Listing `json:"items"`
}

// InSeason reports whether now falls inside the listing's season window.
// A missing bound is open-ended.
func (l *Listing) InSeason(now time.Time) bool {
	if l.Spec.AvailableFrom != nil && now.Before(l.Spec.AvailableFrom.Time) {
		return false
	}

	if l.Spec.AvailableUntil != nil && !now.Before(l.Spec.AvailableUntil.Time) {
		return false
	}

	return true
}

// NextBoundary returns the next season edge after now, or zero when there is none.
func (l *Listing) NextBoundary(now time.Time) time.Time {
	if l.Spec.AvailableFrom != nil && now.Before(l.Spec.AvailableFrom.Time) {
		return l.Spec.AvailableFrom.Time
	}

	if l.Spec.AvailableUntil != nil && now.Before(l.Spec.AvailableUntil.Time) {
		return l.Spec.AvailableUntil.Time
	}

	return time.Time{}
}

// Title returns the title for lang, falling back to the default title.
func (l *Listing) Title(lang string) string {
	if t, ok := l.Spec.Localized[lang]; ok && t.Title != "" {
		return t.Title
	}

	return l.Spec.Title
}

// Summary returns the summary for lang, falling back to the default summary.
func (l *Listing) Summary(lang string) string {
	if t, ok := l.Spec.Localized[lang]; ok && t.Summary != "" {
		return t.Summary
	}

	return l.Spec.Summary
}

// HasTag reports whether the listing carries tag.
func (l *Listing) HasTag(tag string) bool {
	return slices.Contains(l.Spec.Tags, tag)
}
