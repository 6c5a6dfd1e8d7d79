package cli

import (
	"errors"

	"github.com/execdat/execd/internal/k8s"
	"github.com/execdat/execd/internal/spec"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitError        = 1 // usage or unclassified
	ExitInput        = 2 // the input file could not be read or parsed
	ExitNotFound     = 3
	ExitControlPlane = 4 // transport, conflict, rejection or schema not ready
)

// ExitCode classifies err into a process exit code.
func ExitCode(err error) int {
	var (
		readErr     *spec.ReadError
		parseErr    *spec.ParseError
		notFound    *k8s.NotFoundError
		conflict    *k8s.ConflictError
		validation  *k8s.ValidationError
		transport   *k8s.TransportError
		schemaError *k8s.SchemaNotReadyError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &readErr), errors.As(err, &parseErr), errors.Is(err, spec.ErrOutputExists):
		return ExitInput
	case errors.As(err, &notFound):
		return ExitNotFound
	case errors.As(err, &conflict), errors.As(err, &validation), errors.As(err, &transport), errors.As(err, &schemaError):
		return ExitControlPlane
	default:
		return ExitError
	}
}
