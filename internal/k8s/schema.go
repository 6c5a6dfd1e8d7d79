package k8s

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	k8sschema "k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/dynamic"
)

const (
	// DefaultSchemaTimeout bounds how long a submission waits for its CRD.
	DefaultSchemaTimeout = 10 * time.Second
	// DefaultSchemaPollInterval is the fixed delay between two CRD reads.
	DefaultSchemaPollInterval = 500 * time.Millisecond
)

// CustomResourceDefinitionGVR addresses the CRD registry.
var CustomResourceDefinitionGVR = k8sschema.GroupVersionResource{
	Group:    "apiextensions.k8s.io",
	Version:  "v1",
	Resource: "customresourcedefinitions",
}

// SchemaState is the outcome of waiting for a resource type.
type SchemaState int

const (
	SchemaReady SchemaState = iota
	SchemaTimedOut
)

func (s SchemaState) String() string {
	switch s {
	case SchemaReady:
		return "Ready"
	case SchemaTimedOut:
		return "TimedOut"
	default:
		return fmt.Sprintf("SchemaState(%d)", int(s))
	}
}

// SchemaWaiter polls the CRD registry until a resource type is established.
type SchemaWaiter struct {
	client   dynamic.Interface
	interval time.Duration
}

// NewSchemaWaiter creates a SchemaWaiter polling every interval. A zero
// interval selects DefaultSchemaPollInterval.
func NewSchemaWaiter(client dynamic.Interface, interval time.Duration) *SchemaWaiter {
	if interval <= 0 {
		interval = DefaultSchemaPollInterval
	}
	return &SchemaWaiter{client: client, interval: interval}
}

// Wait blocks until the CRD named crdName reports Established=True or timeout
// elapses. It always returns within timeout (plus one in-flight request
// cancellation). SchemaTimedOut comes with a *SchemaNotReadyError, or with a
// *TransportError when the CRD registry refuses the read; that fails at once.
func (w *SchemaWaiter) Wait(ctx context.Context, crdName string, timeout time.Duration) (SchemaState, error) {
	var lastErr error
	err := wait.PollUntilContextTimeout(ctx, w.interval, timeout, true, func(ctx context.Context) (bool, error) {
		crd, err := w.client.Resource(CustomResourceDefinitionGVR).Get(ctx, crdName, metav1.GetOptions{})
		if apierrors.IsForbidden(err) || apierrors.IsUnauthorized(err) {
			return false, err
		}
		if err != nil {
			// NotFound is expected while the CRD is being registered.
			lastErr = err
			return false, nil
		}

		established, err := isEstablished(crd)
		if err != nil {
			lastErr = err
			return false, nil
		}
		if !established {
			lastErr = fmt.Errorf("condition Established is not True")
		}
		return established, nil
	})
	if apierrors.IsForbidden(err) || apierrors.IsUnauthorized(err) {
		return SchemaTimedOut, &TransportError{
			Op:       "read",
			Resource: ResourceRef{Kind: "CustomResourceDefinition", Name: crdName},
			Err:      fmt.Errorf("%w (use --skip-schema-check to submit without the check)", err),
		}
	}
	if err != nil {
		return SchemaTimedOut, &SchemaNotReadyError{CRD: crdName, Timeout: timeout, LastErr: lastErr}
	}
	return SchemaReady, nil
}

func isEstablished(crd *unstructured.Unstructured) (bool, error) {
	conditions, found, err := unstructured.NestedSlice(crd.Object, "status", "conditions")
	if err != nil {
		return false, fmt.Errorf("malformed status of %s: %w", crd.GetName(), err)
	}
	if !found {
		return false, nil
	}

	for _, c := range conditions {
		condition, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		if condition["type"] == "Established" {
			return condition["status"] == "True", nil
		}
	}
	return false, nil
}
