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

	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

// =============================================================================
// Finalizer lifecycle.
//
// Every notification goes through a single transition function that decides,
// from the deletion timestamp and the presence of our finalizer, which of the
// four protocol steps applies. The handler only ever sees an Apply or a
// Cleanup event, never both, and never before the finalizer is persisted.
// =============================================================================

// EventKind distinguishes the two events delivered to a FinalizerHandler.
type EventKind string

const (
	// EventApply is delivered for live objects that carry the finalizer.
	EventApply EventKind = "Apply"
	// EventCleanup is delivered for deleting objects that still carry it.
	EventCleanup EventKind = "Cleanup"
)

// Event is what a FinalizerHandler is asked to act on.
type Event[T client.Object] struct {
	Kind   EventKind
	Object T
}

// FinalizerHandler reacts to an Apply or Cleanup event.
// Cleanup must be idempotent: it is retried until the finalizer is gone.
type FinalizerHandler[T client.Object] func(ctx context.Context, event Event[T]) (ctrl.Result, error)

// transition is one row of the finalizer protocol table.
type transition int

const (
	// not deleting, finalizer missing: persist finalizer, then Apply
	transitionAddFinalizerThenApply transition = iota
	// not deleting, finalizer present: Apply
	transitionApply
	// deleting, finalizer present: Cleanup, then remove finalizer
	transitionCleanupThenRemoveFinalizer
	// deleting, finalizer missing: nothing left for us
	transitionDone
)

func (t transition) String() string {
	switch t {
	case transitionAddFinalizerThenApply:
		return "AddFinalizerThenApply"
	case transitionApply:
		return "Apply"
	case transitionCleanupThenRemoveFinalizer:
		return "CleanupThenRemoveFinalizer"
	case transitionDone:
		return "Done"
	}
	return "Unknown"
}

func nextTransition(obj client.Object, finalizer string) transition {
	deleting := !obj.GetDeletionTimestamp().IsZero()
	present := controllerutil.ContainsFinalizer(obj, finalizer)

	switch {
	case !deleting && !present:
		return transitionAddFinalizerThenApply
	case !deleting:
		return transitionApply
	case present:
		return transitionCleanupThenRemoveFinalizer
	default:
		return transitionDone
	}
}

// Finalize runs one step of the finalizer protocol for obj and returns the
// handler's result. At most two writes are issued, both to the finalizer list.
//
// Marker writes are JSON merge patches guarded by resourceVersion, so a stale
// copy of the object loses against a concurrent writer instead of clobbering
// its finalizers.
func Finalize[T client.Object](
	ctx context.Context,
	c client.Writer,
	finalizer string,
	obj T,
	handle FinalizerHandler[T],
) (ctrl.Result, error) {
	log := logf.FromContext(ctx)

	if obj.GetName() == "" {
		return ctrl.Result{}, &FinalizerError{Reason: FinalizerReasonUnnamedObject}
	}

	t := nextTransition(obj, finalizer)
	log.V(1).Info("Finalizer transition", "transition", t.String())

	switch t {
	case transitionAddFinalizerThenApply:
		log.Info("Adding finalizer", "finalizer", finalizer)
		if err := patchFinalizers(ctx, c, obj, func(o client.Object) bool {
			return controllerutil.AddFinalizer(o, finalizer)
		}); err != nil {
			return ctrl.Result{}, &FinalizerError{Reason: FinalizerReasonAddFinalizer, Err: err}
		}
		return dispatch(ctx, obj, EventApply, handle)

	case transitionApply:
		return dispatch(ctx, obj, EventApply, handle)

	case transitionCleanupThenRemoveFinalizer:
		result, err := dispatch(ctx, obj, EventCleanup, handle)
		if err != nil {
			return result, err
		}
		log.Info("Removing finalizer", "finalizer", finalizer)
		if err := patchFinalizers(ctx, c, obj, func(o client.Object) bool {
			return controllerutil.RemoveFinalizer(o, finalizer)
		}); err != nil {
			return ctrl.Result{}, &FinalizerError{Reason: FinalizerReasonRemoveFinalizer, Err: err}
		}
		return result, nil

	default:
		return ctrl.Result{}, nil
	}
}

func dispatch[T client.Object](
	ctx context.Context,
	obj T,
	kind EventKind,
	handle FinalizerHandler[T],
) (ctrl.Result, error) {
	result, err := handle(ctx, Event[T]{Kind: kind, Object: obj})
	if err != nil {
		reason := FinalizerReasonApplyFailed
		if kind == EventCleanup {
			reason = FinalizerReasonCleanupFailed
		}
		return result, &FinalizerError{Reason: reason, Err: err}
	}
	return result, nil
}

// patchFinalizers applies mutate to obj and persists the change. A mutation
// that reports no change issues no write.
func patchFinalizers(ctx context.Context, c client.Writer, obj client.Object, mutate func(client.Object) bool) error {
	base, ok := obj.DeepCopyObject().(client.Object)
	if !ok {
		return errNotAClientObject
	}
	if !mutate(obj) {
		return nil
	}
	return c.Patch(ctx, obj, client.MergeFromWithOptions(base, client.MergeFromWithOptimisticLock{}))
}
