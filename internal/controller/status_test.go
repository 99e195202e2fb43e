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
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	blogv1 "github.com/letsgopherit/blog-operator/api/v1"
)

var _ = Describe("ComputeStatus", func() {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	It("leaves published_at empty for drafts", func() {
		status := ComputeStatus(blogv1.BlogSpec{Title: "t", Draft: true}, blogv1.BlogStatus{}, now)
		Expect(status).To(Equal(blogv1.BlogStatus{
			Draft:       true,
			CreatedAt:   "2024-01-01T00:00:00Z",
			PublishedAt: "",
			ModifiedAt:  "2024-01-01T00:00:00Z",
		}))
	})

	It("stamps published_at for published posts", func() {
		t := now.Add(90 * time.Minute)
		status := ComputeStatus(blogv1.BlogSpec{Title: "t", Draft: false}, blogv1.BlogStatus{}, t)
		Expect(status).To(Equal(blogv1.BlogStatus{
			Draft:       false,
			CreatedAt:   "2024-01-01T01:30:00Z",
			PublishedAt: "2024-01-01T01:30:00Z",
			ModifiedAt:  "2024-01-01T01:30:00Z",
		}))
	})

	DescribeTable("keeps published_at empty exactly when draft",
		func(spec blogv1.BlogSpec) {
			status := ComputeStatus(spec, blogv1.BlogStatus{}, now)
			Expect(status.Draft).To(Equal(spec.Draft))
			if spec.Draft {
				Expect(status.PublishedAt).To(BeEmpty())
			} else {
				Expect(status.PublishedAt).To(Equal(FormatTimestamp(now)))
			}
		},
		Entry("draft without content", blogv1.BlogSpec{Title: "a", Draft: true}),
		Entry("draft with authors and content", blogv1.BlogSpec{Title: "b", Draft: true, Authors: []string{"x", "y"}, Content: "# hi"}),
		Entry("published without authors", blogv1.BlogSpec{Title: "c"}),
		Entry("published with authors", blogv1.BlogSpec{Title: "d", Authors: []string{"x"}, Content: "body"}),
	)

	It("produces byte-identical documents for the same spec and now", func() {
		spec := blogv1.BlogSpec{Title: "same", Authors: []string{"a"}}

		first, err := json.Marshal(ComputeStatus(spec, blogv1.BlogStatus{}, now))
		Expect(err).NotTo(HaveOccurred())
		second, err := json.Marshal(ComputeStatus(spec, blogv1.BlogStatus{Draft: true, CreatedAt: "x"}, now))
		Expect(err).NotTo(HaveOccurred())

		Expect(second).To(Equal(first))
	})

	It("recomputes created_at on every call", func() {
		previous := ComputeStatus(blogv1.BlogSpec{}, blogv1.BlogStatus{}, now)
		later := now.Add(time.Hour)

		status := ComputeStatus(blogv1.BlogSpec{}, previous, later)
		Expect(status.CreatedAt).To(Equal(FormatTimestamp(later)))
		Expect(status.CreatedAt).NotTo(Equal(previous.CreatedAt))
	})

	It("never moves modified_at backwards as time advances", func() {
		var last string
		for i := range 5 {
			status := ComputeStatus(blogv1.BlogSpec{}, blogv1.BlogStatus{}, now.Add(time.Duration(i)*time.Second))
			Expect(status.ModifiedAt >= last).To(BeTrue())
			last = status.ModifiedAt
		}
	})

	It("formats non-UTC times in UTC", func() {
		loc := time.FixedZone("UTC+2", 2*60*60)
		Expect(FormatTimestamp(time.Date(2024, 1, 1, 2, 0, 0, 0, loc))).To(Equal("2024-01-01T00:00:00Z"))
	})
})

var _ = Describe("statusApplyPatch", func() {
	It("is a server-side apply patch carrying only identity and status", func() {
		status := blogv1.BlogStatus{Draft: true, CreatedAt: "c", ModifiedAt: "m"}

		patch, err := statusApplyPatch("hello", status)
		Expect(err).NotTo(HaveOccurred())
		Expect(patch.Type()).To(Equal(types.ApplyPatchType))

		data, err := patch.Data(nil)
		Expect(err).NotTo(HaveOccurred())

		var doc map[string]any
		Expect(json.Unmarshal(data, &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("apiVersion", "letsgopherit.com/v1"))
		Expect(doc).To(HaveKeyWithValue("kind", "Blog"))
		Expect(doc).To(HaveKeyWithValue("metadata", map[string]any{"name": "hello"}))
		Expect(doc).NotTo(HaveKey("spec"))
		Expect(doc).To(HaveKeyWithValue("status", map[string]any{
			"draft":        true,
			"created_at":   "c",
			"published_at": "",
			"modified_at":  "m",
		}))
	})

	It("forces ownership under the stable field manager", func() {
		opts := applyStatusOptions().(*client.SubResourcePatchOptions)
		Expect(opts.FieldManager).To(Equal(FieldManager))
		Expect(opts.Force).NotTo(BeNil())
		Expect(*opts.Force).To(BeTrue())
	})
})
