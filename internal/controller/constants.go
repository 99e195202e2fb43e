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

import "time"

// =============================================================================
// Constants for the Blog operator.
//
// These are used for:
// - Finalizer management (cleanup before deletion)
// - Server-side apply of the status subresource
// - Requeue timing for level-triggered rechecks
// =============================================================================

// FinalizerName blocks physical deletion of a Blog until cleanup has run.
const FinalizerName = "letsgopherit.com/blogs"

// FieldManager is the server-side apply field owner for status patches.
// It must stay stable so repeated applies are recognised as the same writer.
const FieldManager = "ctrlr"

// TimestampLayout is the fixed-width, sortable layout of status timestamps.
const TimestampLayout = time.RFC3339

const (
	// DefaultRecheckInterval is how long a successfully reconciled Blog waits
	// before it is checked again without any watch event.
	DefaultRecheckInterval = 5 * time.Minute

	// DefaultErrorRequeueInterval is the flat delay applied after every failed
	// reconciliation. There is no backoff growth and no retry cap.
	DefaultErrorRequeueInterval = 5 * time.Minute

	// DefaultPreconditionTimeout bounds the startup list call.
	DefaultPreconditionTimeout = 30 * time.Second
)

// CRDManifestPath is where the Blog CRD manifest lives in this repository.
const CRDManifestPath = "config/crd/bases/letsgopherit.com_blogs.yaml"
