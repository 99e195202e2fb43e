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
	"time"

	"sigs.k8s.io/controller-runtime/pkg/client"

	blogv1 "github.com/letsgopherit/blog-operator/api/v1"
)

// CheckCRDInstalled lists at most one Blog through reader. Any failure,
// including the API server not knowing the kind, is reported as a
// FatalPreconditionError.
func CheckCRDInstalled(ctx context.Context, reader client.Reader, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var blogs blogv1.BlogList
	if err := reader.List(ctx, &blogs, client.Limit(1)); err != nil {
		return &FatalPreconditionError{Err: err}
	}
	return nil
}
