package k8s

import (
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// ResourceRef identifies the object an error refers to.
type ResourceRef struct {
	Kind      string
	Namespace string
	Name      string
}

func (r ResourceRef) String() string {
	if r.Namespace == "" {
		return fmt.Sprintf("%s %s", r.Kind, r.Name)
	}
	if r.Name == "" {
		return fmt.Sprintf("%s in namespace %s", r.Kind, r.Namespace)
	}
	return fmt.Sprintf("%s %s/%s", r.Kind, r.Namespace, r.Name)
}

// ConflictError is returned when the name is already taken and the chosen
// strategy does not overwrite.
type ConflictError struct {
	Resource ResourceRef
	Err      error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %v", e.Resource, e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// ValidationError is returned when the control plane rejects the object content.
type ValidationError struct {
	Resource ResourceRef
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s rejected by the control plane: %v", e.Resource, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError is returned when a named resource does not exist.
type NotFoundError struct {
	Resource ResourceRef
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// TransportError covers connectivity, authentication and any other failure to
// get an answer from the control plane.
type TransportError struct {
	Op       string
	Resource ResourceRef
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SchemaNotReadyError is returned when a CRD was not established in time.
type SchemaNotReadyError struct {
	CRD     string
	Timeout time.Duration
	LastErr error
}

func (e *SchemaNotReadyError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("resource type %s not established after %s: %v", e.CRD, e.Timeout, e.LastErr)
	}
	return fmt.Sprintf("resource type %s not established after %s", e.CRD, e.Timeout)
}

func (e *SchemaNotReadyError) Unwrap() error { return e.LastErr }

// classify maps an API error onto the error taxonomy.
func classify(op string, ref ResourceRef, err error) error {
	switch {
	case err == nil:
		return nil
	case apierrors.IsAlreadyExists(err), apierrors.IsConflict(err):
		return &ConflictError{Resource: ref, Err: err}
	case apierrors.IsInvalid(err), apierrors.IsBadRequest(err):
		return &ValidationError{Resource: ref, Err: err}
	case apierrors.IsNotFound(err):
		return &NotFoundError{Resource: ref, Err: err}
	default:
		return &TransportError{Op: op, Resource: ref, Err: err}
	}
}

// classifyCollection is classify for calls against a collection (create,
// apply, list), where NotFound means the resource type itself is not served.
func classifyCollection(op string, ref ResourceRef, err error) error {
	if apierrors.IsNotFound(err) {
		return &TransportError{
			Op:       op,
			Resource: ref,
			Err:      fmt.Errorf("resource type is not served, is the CRD installed? %w", err),
		}
	}
	return classify(op, ref, err)
}
