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

package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/letsgopherit/blog-operator/internal/controller"
)

// Config holds the command-line settings of the controller process.
type Config struct {
	MetricsBindAddress      string
	HealthProbeBindAddress  string
	MaxConcurrentReconciles int
	RecheckInterval         time.Duration
	ErrorRequeueInterval    time.Duration
	PreconditionTimeout     time.Duration
}

func bindFlags(fs *pflag.FlagSet) *Config {
	cfg := &Config{}
	fs.StringVar(&cfg.MetricsBindAddress, "metrics-bind-address", "0",
		"The address the metrics endpoint binds to. Use 0 to disable it.")
	fs.StringVar(&cfg.HealthProbeBindAddress, "health-probe-bind-address", ":8081",
		"The address the probe endpoint binds to.")
	fs.IntVar(&cfg.MaxConcurrentReconciles, "max-concurrent-reconciles", 4,
		"How many distinct Blogs may be reconciled in parallel.")
	fs.DurationVar(&cfg.RecheckInterval, "recheck-interval", controller.DefaultRecheckInterval,
		"Delay before a successfully reconciled Blog is checked again.")
	fs.DurationVar(&cfg.ErrorRequeueInterval, "error-requeue-interval", controller.DefaultErrorRequeueInterval,
		"Fixed delay before a failed Blog is retried.")
	fs.DurationVar(&cfg.PreconditionTimeout, "precondition-timeout", controller.DefaultPreconditionTimeout,
		"Timeout of the startup check that the Blog CRD is installed.")
	return cfg
}

// Validate rejects settings the controller cannot run with.
func (c *Config) Validate() error {
	if c.MaxConcurrentReconciles < 1 {
		return fmt.Errorf("--max-concurrent-reconciles must be at least 1, got %d", c.MaxConcurrentReconciles)
	}
	if c.RecheckInterval <= 0 {
		return fmt.Errorf("--recheck-interval must be positive, got %s", c.RecheckInterval)
	}
	if c.ErrorRequeueInterval <= 0 {
		return fmt.Errorf("--error-requeue-interval must be positive, got %s", c.ErrorRequeueInterval)
	}
	return nil
}

// RequeuePolicy builds the reconciler's requeue policy from the flags.
func (c *Config) RequeuePolicy() controller.RequeuePolicy {
	return controller.RequeuePolicy{
		RecheckInterval:      c.RecheckInterval,
		ErrorRequeueInterval: c.ErrorRequeueInterval,
	}
}
