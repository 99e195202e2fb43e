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
	"time"

	"github.com/go-logr/logr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// RequeuePolicy turns the outcome of one reconciliation into the next wake-up.
//
// Failures always wait ErrorRequeueInterval. The delay does not grow with
// consecutive failures and there is no retry limit.
type RequeuePolicy struct {
	RecheckInterval      time.Duration
	ErrorRequeueInterval time.Duration
}

// DefaultRequeuePolicy returns the policy with both intervals at five minutes.
func DefaultRequeuePolicy() RequeuePolicy {
	return RequeuePolicy{
		RecheckInterval:      DefaultRecheckInterval,
		ErrorRequeueInterval: DefaultErrorRequeueInterval,
	}
}

// OnOutcome maps (result, err) to the result handed back to the workqueue.
// The returned error is always nil: errors are logged here and converted into
// a fixed-delay requeue so the workqueue's own rate limiter stays out of it.
func (p RequeuePolicy) OnOutcome(log logr.Logger, key client.ObjectKey, result ctrl.Result, err error) ctrl.Result {
	if err != nil {
		log.Error(err, "Reconcile failed", "blog", key.Name, "requeueAfter", p.ErrorRequeueInterval)
		return ctrl.Result{RequeueAfter: p.ErrorRequeueInterval}
	}
	if result.RequeueAfter > 0 {
		return ctrl.Result{RequeueAfter: result.RequeueAfter}
	}
	return ctrl.Result{}
}
