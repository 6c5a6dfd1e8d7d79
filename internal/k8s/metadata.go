package k8s

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

const (
	LabelManagedBy    = "app.kubernetes.io/managed-by"
	LabelSubmissionID = "task.execd.at/submission-id"
	LabelKind         = "task.execd.at/kind"

	managedByValue = "execd"
)

// ResourceMetadata contains the labels stamped on every submitted resource
type ResourceMetadata struct {
	Kind         string
	SubmissionID string
}

// NewResourceMetadata creates ResourceMetadata with a fresh submission ID
func NewResourceMetadata(kind string) *ResourceMetadata {
	return &ResourceMetadata{
		Kind:         kind,
		SubmissionID: uuid.NewString(),
	}
}

// Labels returns Kubernetes labels for this resource
func (m *ResourceMetadata) Labels() map[string]string {
	return map[string]string{
		LabelManagedBy:    managedByValue,
		LabelSubmissionID: m.SubmissionID,
		LabelKind:         strings.ToLower(m.Kind),
	}
}

// assignedIdentity returns the namespace and name the control plane gave an
// accepted object. Both must be set.
func assignedIdentity(obj *unstructured.Unstructured) (namespace, name string, err error) {
	namespace, name = obj.GetNamespace(), obj.GetName()
	if namespace == "" || name == "" {
		return "", "", fmt.Errorf("%s has no assigned identity (namespace=%q, name=%q)", obj.GetKind(), namespace, name)
	}
	return namespace, name, nil
}
