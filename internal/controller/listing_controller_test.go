// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2025 Aleksei Sviridkin

package controller

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	catalogv1alpha1 "github.com/Da1TT/Tour-Business-in-China/api/v1alpha1"
)

var _ = Describe("Listing Controller", func() {
	const (
		timeout  = time.Second * 10
		interval = time.Millisecond * 250

		listingNamespace = "default"
	)

	now := time.Date(2026, time.May, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	newReconciler := func() *ListingReconciler {
		return &ListingReconciler{
			Client: k8sClient,
			Scheme: k8sClient.Scheme(),
			Now:    func() time.Time { return now },
		}
	}

	cleanup := func(key types.NamespacedName) {
		By("Cleaning up the Listing resource")
		listing := &catalogv1alpha1.Listing{}
		if err := k8sClient.Get(ctx, key, listing); err == nil {
			Expect(k8sClient.Delete(ctx, listing)).To(Succeed())
		}
	}

	Context("When reconciling a Listing without a season window", func() {
		key := types.NamespacedName{Name: "great-wall-hike", Namespace: listingNamespace}

		BeforeEach(func() {
			By("Creating an open-ended Listing")
			listing := &catalogv1alpha1.Listing{
				ObjectMeta: metav1.ObjectMeta{Name: key.Name, Namespace: key.Namespace},
				Spec: catalogv1alpha1.ListingSpec{
					Category: catalogv1alpha1.CategoryTour,
					Title:    "Great Wall Hike",
					Priority: 5,
				},
			}
			Expect(k8sClient.Create(ctx, listing)).To(Succeed())
		})

		AfterEach(func() { cleanup(key) })

		It("should set Active to true and not requeue", func() {
			result, err := newReconciler().Reconcile(ctx, reconcile.Request{NamespacedName: key})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RequeueAfter).To(BeZero())

			By("Checking that Active is true with an Available condition")
			listing := &catalogv1alpha1.Listing{}
			Eventually(func() bool {
				if err := k8sClient.Get(ctx, key, listing); err != nil {
					return false
				}

				return listing.Status.Active &&
					meta.IsStatusConditionTrue(listing.Status.Conditions, catalogv1alpha1.ConditionAvailable)
			}, timeout, interval).Should(BeTrue())
		})
	})

	Context("When reconciling a Listing whose season has not started", func() {
		key := types.NamespacedName{Name: "canton-fair-autumn", Namespace: listingNamespace}
		from := now.Add(48 * time.Hour)

		BeforeEach(func() {
			By("Creating a Listing that opens in two days")
			start := metav1.NewTime(from)
			listing := &catalogv1alpha1.Listing{
				ObjectMeta: metav1.ObjectMeta{Name: key.Name, Namespace: key.Namespace},
				Spec: catalogv1alpha1.ListingSpec{
					Category:      catalogv1alpha1.CategoryExhibition,
					Title:         "Canton Fair Autumn",
					AvailableFrom: &start,
				},
			}
			Expect(k8sClient.Create(ctx, listing)).To(Succeed())
		})

		AfterEach(func() { cleanup(key) })

		It("should stay inactive and requeue at the start", func() {
			result, err := newReconciler().Reconcile(ctx, reconcile.Request{NamespacedName: key})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RequeueAfter).To(Equal(48 * time.Hour))

			listing := &catalogv1alpha1.Listing{}
			Expect(k8sClient.Get(ctx, key, listing)).To(Succeed())
			Expect(listing.Status.Active).To(BeFalse())

			cond := meta.FindStatusCondition(listing.Status.Conditions, catalogv1alpha1.ConditionAvailable)
			Expect(cond).NotTo(BeNil())
			Expect(cond.Status).To(Equal(metav1.ConditionFalse))
			Expect(cond.Reason).To(Equal(reasonNotStarted))
		})
	})

	Context("When reconciling an active Listing whose season has ended", func() {
		key := types.NamespacedName{Name: "spring-blossom-tour", Namespace: listingNamespace}

		BeforeEach(func() {
			By("Creating a Listing that ended an hour ago and is still marked active")
			until := metav1.NewTime(now.Add(-time.Hour))
			listing := &catalogv1alpha1.Listing{
				ObjectMeta: metav1.ObjectMeta{Name: key.Name, Namespace: key.Namespace},
				Spec: catalogv1alpha1.ListingSpec{
					Category:       catalogv1alpha1.CategoryTour,
					Title:          "Spring Blossom Tour",
					AvailableUntil: &until,
				},
			}
			Expect(k8sClient.Create(ctx, listing)).To(Succeed())

			listing.Status.Active = true
			Expect(k8sClient.Status().Update(ctx, listing)).To(Succeed())
		})

		AfterEach(func() { cleanup(key) })

		It("should set Active to false", func() {
			result, err := newReconciler().Reconcile(ctx, reconcile.Request{NamespacedName: key})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RequeueAfter).To(BeZero())

			listing := &catalogv1alpha1.Listing{}
			Eventually(func() bool {
				if err := k8sClient.Get(ctx, key, listing); err != nil {
					return false
				}

				return !listing.Status.Active
			}, timeout, interval).Should(BeTrue())

			cond := meta.FindStatusCondition(listing.Status.Conditions, catalogv1alpha1.ConditionAvailable)
			Expect(cond).NotTo(BeNil())
			Expect(cond.Reason).To(Equal(reasonSeasonEnded))
		})
	})

	Context("When reconciling a Listing inside its window", func() {
		key := types.NamespacedName{Name: "silk-road-express", Namespace: listingNamespace}

		BeforeEach(func() {
			from := metav1.NewTime(now.Add(-24 * time.Hour))
			until := metav1.NewTime(now.Add(6 * time.Hour))
			listing := &catalogv1alpha1.Listing{
				ObjectMeta: metav1.ObjectMeta{Name: key.Name, Namespace: key.Namespace},
				Spec: catalogv1alpha1.ListingSpec{
					Category:       catalogv1alpha1.CategoryTour,
					Title:          "Silk Road Express",
					AvailableFrom:  &from,
					AvailableUntil: &until,
				},
			}
			Expect(k8sClient.Create(ctx, listing)).To(Succeed())
		})

		AfterEach(func() { cleanup(key) })

		It("should activate and requeue at the end of the season", func() {
			result, err := newReconciler().Reconcile(ctx, reconcile.Request{NamespacedName: key})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.RequeueAfter).To(Equal(6 * time.Hour))

			listing := &catalogv1alpha1.Listing{}
			Expect(k8sClient.Get(ctx, key, listing)).To(Succeed())
			Expect(listing.Status.Active).To(BeTrue())
		})

		It("should be a no-op on the second pass", func() {
			reconciler := newReconciler()
			_, err := reconciler.Reconcile(ctx, reconcile.Request{NamespacedName: key})
			Expect(err).NotTo(HaveOccurred())

			before := &catalogv1alpha1.Listing{}
			Expect(k8sClient.Get(ctx, key, before)).To(Succeed())

			_, err = reconciler.Reconcile(ctx, reconcile.Request{NamespacedName: key})
			Expect(err).NotTo(HaveOccurred())

			after := &catalogv1alpha1.Listing{}
			Expect(k8sClient.Get(ctx, key, after)).To(Succeed())
			Expect(after.ResourceVersion).To(Equal(before.ResourceVersion))
		})
	})

	Context("When the Listing does not exist", func() {
		It("should return without error", func() {
			key := types.NamespacedName{Name: "missing", Namespace: listingNamespace}
			result, err := newReconciler().Reconcile(ctx, reconcile.Request{NamespacedName: key})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(reconcile.Result{}))
		})
	})
})
