// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package controller

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	catalogv1alpha1 "github.com/Da1TT/Tour-Business-in-China/api/v1alpha1"
)

const (
	reasonInSeason    = "InSeason"
	reasonNotStarted  = "NotStarted"
	reasonSeasonEnded = "SeasonEnded"
)

// ListingReconciler reconciles a Listing object
type ListingReconciler struct {
	client.Client

	Scheme *runtime.Scheme

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// +kubebuilder:rbac:groups=catalog.tourbusiness.cn,resources=listings,verbs=get;list;watch
// +kubebuilder:rbac:groups=catalog.tourbusiness.cn,resources=listings/status,verbs=get;update;patch

// Reconcile handles the reconciliation of Listing resources.
// It publishes or hides a listing according to its season window.
func (r *ListingReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := logf.FromContext(ctx)

	listing := &catalogv1alpha1.Listing{}
	if err := r.Get(ctx, req.NamespacedName, listing); err != nil {
		if errors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}

		return ctrl.Result{}, err
	}

	now := r.now()
	isActive := listing.InSeason(now)
	statusChanged := false

	if listing.Status.Active != isActive {
		listing.Status.Active = isActive
		statusChanged = true
		log.Info("Updated Active status", "active", isActive)
	}

	if meta.SetStatusCondition(&listing.Status.Conditions, availableCondition(listing, now, isActive)) {
		statusChanged = true
	}

	if statusChanged {
		if err := r.Status().Update(ctx, listing); err != nil {
			log.Error(err, "Failed to update Listing status")

			return ctrl.Result{}, err
		}
	}

	// Wake up again when the listing enters or leaves its season
	if next := listing.NextBoundary(now); !next.IsZero() {
		return ctrl.Result{RequeueAfter: next.Sub(now)}, nil
	}

	return ctrl.Result{}, nil
}

func (r *ListingReconciler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}

	return time.Now()
}

func availableCondition(listing *catalogv1alpha1.Listing, now time.Time, active bool) metav1.Condition {
	cond := metav1.Condition{
		Type:               catalogv1alpha1.ConditionAvailable,
		ObservedGeneration: listing.Generation,
	}

	switch {
	case active:
		cond.Status = metav1.ConditionTrue
		cond.Reason = reasonInSeason
		cond.Message = "Listing is shown on the site"
	case listing.Spec.AvailableFrom != nil && now.Before(listing.Spec.AvailableFrom.Time):
		cond.Status = metav1.ConditionFalse
		cond.Reason = reasonNotStarted
		cond.Message = "Season has not started yet"
	default:
		cond.Status = metav1.ConditionFalse
		cond.Reason = reasonSeasonEnded
		cond.Message = "Season has ended"
	}

	return cond
}

// SetupWithManager sets up the controller with the Manager.
func (r *ListingReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&catalogv1alpha1.Listing{}).
		Named("listing").
		Complete(r)
}
