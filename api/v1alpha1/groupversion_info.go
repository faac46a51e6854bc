// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

// Package v1alpha1 holds the catalog API: Listing resources describing the
// tours and exhibitions shown on the website.
// +kubebuilder:object:generate=true
// +groupName=catalog.tourbusiness.cn
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// GroupName is the API group of the catalog resources.
const GroupName = "catalog.tourbusiness.cn"

//nolint:gochecknoglobals // scheme registration
var (
	GroupVersion  = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}
	AddToScheme   = SchemeBuilder.AddToScheme
)

// Resource qualifies a bare resource name such as "listings" with the group.
func Resource(resource string) schema.GroupResource {
	return GroupVersion.WithResource(resource).GroupResource()
}

func init() {
	SchemeBuilder.Register(&Listing{}, &ListingList{})
}
