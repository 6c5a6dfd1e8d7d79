// Package config holds the settings of one execd invocation. The environment
// is read once, in FromEnv; everything downstream receives a Config value.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/execdat/execd/internal/k8s"
)

const (
	EnvNamespace      = "EXECD_NAMESPACE"
	EnvRequestTimeout = "EXECD_REQUEST_TIMEOUT"
	EnvSchemaTimeout  = "EXECD_SCHEMA_TIMEOUT"
	EnvLogLevel       = "EXECD_LOG_LEVEL"

	DefaultNamespace      = "default"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// Config holds the settings of one execd invocation. Flags override values
// read from the environment.
type Config struct {
	Namespace string

	// Kubeconfig and Context select the cluster. Empty values fall back to
	// in-cluster config, then KUBECONFIG, then ~/.kube/config, resolved when
	// the client is built.
	Kubeconfig string
	Context    string

	RequestTimeout time.Duration
	SchemaTimeout  time.Duration

	LogLevel     string
	FieldManager string
}

// FromEnv returns the defaults overridden by EXECD_* variables.
func FromEnv() (Config, error) {
	requestTimeout, err := Duration(EnvRequestTimeout, DefaultRequestTimeout)
	if err != nil {
		return Config{}, err
	}
	schemaTimeout, err := Duration(EnvSchemaTimeout, k8s.DefaultSchemaTimeout)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Namespace:      String(EnvNamespace, DefaultNamespace),
		RequestTimeout: requestTimeout,
		SchemaTimeout:  schemaTimeout,
		LogLevel:       String(EnvLogLevel, DefaultLogLevel),
		FieldManager:   k8s.DefaultFieldManager,
	}, nil
}

// Validate checks values that flags may have overridden.
func (c Config) Validate() error {
	var errs []error
	if c.Namespace == "" {
		errs = append(errs, errors.New("namespace must not be empty"))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout))
	}
	if c.SchemaTimeout <= 0 {
		errs = append(errs, fmt.Errorf("schema timeout must be positive, got %s", c.SchemaTimeout))
	}
	return errors.Join(errs...)
}

// ClientOptions returns the settings the control-plane client needs.
func (c Config) ClientOptions() k8s.ClientOptions {
	return k8s.ClientOptions{
		Kubeconfig:     c.Kubeconfig,
		Context:        c.Context,
		RequestTimeout: c.RequestTimeout,
	}
}
