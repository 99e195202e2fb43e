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
	"encoding/json"
	"fmt"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	blogv1 "github.com/letsgopherit/blog-operator/api/v1"
)

// =============================================================================
// Status computation and server-side apply.
//
// ComputeStatus is pure: the same spec and the same now always produce the
// same status document. The apply patch only carries the status, so spec and
// metadata are never touched by the controller.
// =============================================================================

// FormatTimestamp renders t the way status timestamps are stored.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ComputeStatus derives the observed status of a Blog.
//
// CreatedAt is recomputed on every call; the current status is not consulted.
// TODO: keep the first observed CreatedAt once its intended meaning is settled.
func ComputeStatus(spec blogv1.BlogSpec, _ blogv1.BlogStatus, now time.Time) blogv1.BlogStatus {
	ts := FormatTimestamp(now)
	publishedAt := ts
	if spec.IsDraft() {
		publishedAt = ""
	}

	return blogv1.BlogStatus{
		Draft:       spec.IsDraft(),
		CreatedAt:   ts,
		PublishedAt: publishedAt,
		ModifiedAt:  ts,
	}
}

// statusApplyConfiguration is the body of the status apply patch. Only
// identity and status are sent so the field manager owns nothing else.
type statusApplyConfiguration struct {
	metav1.TypeMeta `json:",inline"`
	Metadata        statusApplyMetadata `json:"metadata"`
	Status          blogv1.BlogStatus   `json:"status"`
}

type statusApplyMetadata struct {
	Name string `json:"name"`
}

// statusApplyPatch builds the server-side apply patch for status.
func statusApplyPatch(name string, status blogv1.BlogStatus) (client.Patch, error) {
	data, err := json.Marshal(statusApplyConfiguration{
		TypeMeta: metav1.TypeMeta{
			APIVersion: blogv1.GroupVersion.String(),
			Kind:       "Blog",
		},
		Metadata: statusApplyMetadata{Name: name},
		Status:   status,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding status apply patch: %w", err)
	}
	return client.RawPatch(types.ApplyPatchType, data), nil
}

// applyStatusOptions forces ownership under FieldManager.
func applyStatusOptions() client.SubResourcePatchOption {
	return &client.SubResourcePatchOptions{
		PatchOptions: *(&client.PatchOptions{}).ApplyOptions([]client.PatchOption{
			client.ForceOwnership,
			client.FieldOwner(FieldManager),
		}),
	}
}

// patchStatus applies status to the Blog's status subresource.
func patchStatus(ctx context.Context, c client.StatusClient, blog *blogv1.Blog, status blogv1.BlogStatus) error {
	patch, err := statusApplyPatch(blog.Name, status)
	if err != nil {
		return &StatusPatchError{Name: blog.Name, Err: err}
	}
	if err := c.Status().Patch(ctx, blog, patch, applyStatusOptions()); err != nil {
		return &StatusPatchError{Name: blog.Name, Err: err}
	}
	return nil
}
