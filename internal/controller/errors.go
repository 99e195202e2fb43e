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
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// =============================================================================
// Error taxonomy for the Blog operator.
//
// FinalizerError and StatusPatchError are per-instance failures: the driver
// logs them and requeues after a fixed delay. FatalPreconditionError is only
// returned at startup and terminates the process.
// =============================================================================

var errNotAClientObject = errors.New("deep copy is not a client.Object")

// FinalizerReason tells which step of the finalizer protocol failed.
type FinalizerReason string

const (
	FinalizerReasonAddFinalizer    FinalizerReason = "AddFinalizer"
	FinalizerReasonRemoveFinalizer FinalizerReason = "RemoveFinalizer"
	FinalizerReasonApplyFailed     FinalizerReason = "ApplyFailed"
	FinalizerReasonCleanupFailed   FinalizerReason = "CleanupFailed"
	FinalizerReasonUnnamedObject   FinalizerReason = "UnnamedObject"
)

// FinalizerError is returned by Finalize. Err is the store error for marker
// updates, or the error returned by the apply/cleanup handler.
type FinalizerError struct {
	Reason FinalizerReason
	Err    error
}

func (e *FinalizerError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("finalizer error: %s", e.Reason)
	}
	return fmt.Sprintf("finalizer error: %s: %v", e.Reason, e.Err)
}

func (e *FinalizerError) Unwrap() error {
	return e.Err
}

// StatusPatchError means the store rejected the status apply patch.
type StatusPatchError struct {
	Name string
	Err  error
}

func (e *StatusPatchError) Error() string {
	return fmt.Sprintf("patching status of Blog %q: %v", e.Name, e.Err)
}

func (e *StatusPatchError) Unwrap() error {
	return e.Err
}

// Conflict reports whether the patch lost an optimistic concurrency race.
func (e *StatusPatchError) Conflict() bool {
	return apierrors.IsConflict(e.Err)
}

// FatalPreconditionError means the controller cannot start, typically
// because the Blog CRD is not installed.
type FatalPreconditionError struct {
	Err error
}

func (e *FatalPreconditionError) Error() string {
	return fmt.Sprintf("listing Blogs failed (%v): is the CRD installed? please run: kubectl apply -f %s",
		e.Err, CRDManifestPath)
}

func (e *FatalPreconditionError) Unwrap() error {
	return e.Err
}
