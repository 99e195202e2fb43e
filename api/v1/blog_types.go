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

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// =============================================================================
// BlogSpec defines the desired state of Blog.
//
// The spec is owned by whoever publishes the post. The controller only reads
// it; everything the controller derives lands in BlogStatus.
// =============================================================================
type BlogSpec struct {
	// Authors lists the post authors in display order.
	//
	// +optional
	Authors []string `json:"authors,omitempty"`

	// Title is the post headline.
	//
	// +required
	Title string `json:"title"`

	// Draft keeps the post unpublished while true.
	// Flipping it to false publishes the post on the next reconciliation.
	//
	// +kubebuilder:default=false
	// +optional
	Draft bool `json:"draft"`

	// Content is the markdown body of the post.
	//
	// +optional
	Content string `json:"content,omitempty"`
}

// IsDraft reports whether the post is still a draft.
func (s *BlogSpec) IsDraft() bool {
	return s.Draft
}

// =============================================================================
// BlogStatus defines the observed state of Blog.
//
// Written exclusively by the controller through server-side apply on the
// status subresource. Timestamps use RFC 3339 in UTC, second precision.
//
// PublishedAt is empty if and only if Draft is true.
// =============================================================================
type BlogStatus struct {
	// Draft mirrors spec.draft as of the last reconciliation.
	Draft bool `json:"draft"`

	// CreatedAt is the time of the last reconciliation.
	// +optional
	CreatedAt string `json:"created_at"`

	// PublishedAt is the time the post was published, empty for drafts.
	// +optional
	PublishedAt string `json:"published_at"`

	// ModifiedAt is the time of the last reconciliation.
	// +optional
	ModifiedAt string `json:"modified_at"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Cluster,shortName=blog
// +kubebuilder:printcolumn:name="Title",type=string,JSONPath=`.spec.title`
// +kubebuilder:printcolumn:name="Draft",type=boolean,JSONPath=`.status.draft`
// +kubebuilder:printcolumn:name="Published",type=string,JSONPath=`.status.published_at`

// Blog is the Schema for the blogs API
type Blog struct {
	metav1.TypeMeta `json:",inline"`

	// metadata is a standard object metadata
	// +optional
	metav1.ObjectMeta `json:"metadata,omitzero"`

	// spec defines the desired state of Blog
	// +required
	Spec BlogSpec `json:"spec"`

	// status defines the observed state of Blog
	// +optional
	Status BlogStatus `json:"status,omitzero"`
}

// +kubebuilder:object:root=true

// BlogList contains a list of Blog
type BlogList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitzero"`
	Items           []Blog `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Blog{}, &BlogList{})
}
