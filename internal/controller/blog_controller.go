/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/clock"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/builder"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	blogv1 "github.com/letsgopherit/blog-operator/api/v1"
)

// =============================================================================
// BlogReconciler reconciles a Blog object.
//
// Each Blog's status is derived from its spec and written back with a
// server-side apply. The controller-runtime workqueue guarantees that a given
// Blog is never reconciled by two workers at once; distinct Blogs are
// reconciled in parallel up to MaxConcurrentReconciles.
//
// Related files:
// - constants.go: finalizer name, field manager, default intervals
// - finalizer.go: Apply/Cleanup finalizer protocol
// - status.go: status computation and apply patch
// - policy.go: requeue decisions for success and failure
// =============================================================================
type BlogReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	// Clock supplies "now" for status timestamps. Defaults to the wall clock.
	Clock clock.PassiveClock

	// Policy decides when a Blog is visited again. Zero value means
	// DefaultRequeuePolicy.
	Policy RequeuePolicy

	// MaxConcurrentReconciles bounds parallelism across distinct Blogs.
	MaxConcurrentReconciles int
}

// +kubebuilder:rbac:groups=letsgopherit.com,resources=blogs,verbs=get;list;watch;update;patch
// +kubebuilder:rbac:groups=letsgopherit.com,resources=blogs/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=letsgopherit.com,resources=blogs/finalizers,verbs=update

// =============================================================================
// Reconcile is the entry point called by the workqueue for one Blog.
//
// It is called whenever:
// - A Blog is created, its spec changes, or its deletion is requested
// - The initial list seeds the cache on startup
// - A previously scheduled recheck fires
//
// Errors never leave this function: they are logged and turned into a
// fixed-delay requeue by the RequeuePolicy.
// =============================================================================
func (r *BlogReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := logf.FromContext(ctx)

	result, err := r.reconcile(ctx, req)
	return r.policy().OnOutcome(log, req.NamespacedName, result, err), nil
}

func (r *BlogReconciler) reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := logf.FromContext(ctx)
	log.Info("Starting reconciliation", "blog", req.Name)

	// -------------------------------------------------------------------------
	// Step 1: Fetch the Blog
	// -------------------------------------------------------------------------
	var blog blogv1.Blog
	if err := r.Get(ctx, req.NamespacedName, &blog); err != nil {
		if apierrors.IsNotFound(err) {
			log.Info("Blog not found, likely deleted")
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, fmt.Errorf("fetching Blog: %w", err)
	}

	// -------------------------------------------------------------------------
	// Step 2: Run the finalizer protocol, applying or cleaning up
	// -------------------------------------------------------------------------
	result, err := Finalize(ctx, r.Client, FinalizerName, &blog, r.handle)
	if err != nil {
		return result, err
	}

	log.Info("Reconciled Blog", "blog", blog.Name)
	return result, nil
}

func (r *BlogReconciler) handle(ctx context.Context, event Event[*blogv1.Blog]) (ctrl.Result, error) {
	switch event.Kind {
	case EventCleanup:
		return r.cleanup(ctx, event.Object)
	default:
		return r.apply(ctx, event.Object)
	}
}

// apply writes the derived status and schedules the periodic recheck.
func (r *BlogReconciler) apply(ctx context.Context, blog *blogv1.Blog) (ctrl.Result, error) {
	log := logf.FromContext(ctx)

	status := ComputeStatus(blog.Spec, blog.Status, r.wallClock().Now())
	if err := patchStatus(ctx, r.Client, blog, status); err != nil {
		return ctrl.Result{}, err
	}
	log.Info("Applied status", "draft", status.Draft, "publishedAt", status.PublishedAt)

	// If no events are received, check back after the recheck interval.
	return ctrl.Result{RequeueAfter: r.policy().RecheckInterval}, nil
}

// cleanup has nothing external to tear down. It exists so that the finalizer
// is removed only after the controller has observed the deletion.
func (r *BlogReconciler) cleanup(ctx context.Context, blog *blogv1.Blog) (ctrl.Result, error) {
	logf.FromContext(ctx).Info("Cleaning up Blog", "blog", blog.Name)
	return ctrl.Result{}, nil
}

func (r *BlogReconciler) policy() RequeuePolicy {
	p := r.Policy
	if p.RecheckInterval <= 0 {
		p.RecheckInterval = DefaultRecheckInterval
	}
	if p.ErrorRequeueInterval <= 0 {
		p.ErrorRequeueInterval = DefaultErrorRequeueInterval
	}
	return p
}

func (r *BlogReconciler) wallClock() clock.PassiveClock {
	if r.Clock == nil {
		return clock.RealClock{}
	}
	return r.Clock
}

// =============================================================================
// SetupWithManager registers the controller with the Manager.
//
// Only Blogs are watched. Status-only updates are filtered out so that our
// own status applies do not retrigger reconciliation.
// =============================================================================
func (r *BlogReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&blogv1.Blog{}, builder.WithPredicates(BlogChangedPredicate())).
		WithOptions(controller.Options{MaxConcurrentReconciles: r.MaxConcurrentReconciles}).
		Named("blog").
		Complete(r)
}
