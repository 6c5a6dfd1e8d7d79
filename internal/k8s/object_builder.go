package k8s

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

// ObjectSpec contains what is needed to build a Build or Run envelope.
// Exactly one of Name and GenerateName must be set.
type ObjectSpec struct {
	GVK          schema.GroupVersionKind
	Namespace    string
	Name         string
	GenerateName string
	Labels       map[string]string
	// Spec is a pointer to a v1alpha1 spec struct
	Spec interface{}
}

// BuildObject creates the unstructured envelope for a spec. Only the fields
// the client owns are set, so that server-side apply claims nothing else.
func BuildObject(spec ObjectSpec) (*unstructured.Unstructured, error) {
	if (spec.Name == "") == (spec.GenerateName == "") {
		return nil, fmt.Errorf("exactly one of name or generateName must be set (name=%q, generateName=%q)", spec.Name, spec.GenerateName)
	}

	specMap, err := runtime.DefaultUnstructuredConverter.ToUnstructured(spec.Spec)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s spec: %w", spec.GVK.Kind, err)
	}

	obj := &unstructured.Unstructured{
		Object: map[string]interface{}{"spec": specMap},
	}
	obj.SetGroupVersionKind(spec.GVK)
	obj.SetNamespace(spec.Namespace)
	obj.SetName(spec.Name)
	obj.SetGenerateName(spec.GenerateName)
	obj.SetLabels(spec.Labels)
	return obj, nil
}

// NewRunObject builds a Run envelope labelled with a fresh submission ID.
func NewRunObject(namespace, name, generateName string, runSpec *v1alpha1.RunSpec) (*unstructured.Unstructured, error) {
	meta := NewResourceMetadata(v1alpha1.RunGroupVersionKind.Kind)
	return BuildObject(ObjectSpec{
		GVK:          v1alpha1.RunGroupVersionKind,
		Namespace:    namespace,
		Name:         name,
		GenerateName: generateName,
		Labels:       meta.Labels(),
		Spec:         runSpec,
	})
}

// NewBuildObject builds a Build envelope labelled with a fresh submission ID.
func NewBuildObject(namespace, name, generateName string, buildSpec *v1alpha1.BuildSpec) (*unstructured.Unstructured, error) {
	meta := NewResourceMetadata(v1alpha1.BuildGroupVersionKind.Kind)
	return BuildObject(ObjectSpec{
		GVK:          v1alpha1.BuildGroupVersionKind,
		Namespace:    namespace,
		Name:         name,
		GenerateName: generateName,
		Labels:       meta.Labels(),
		Spec:         buildSpec,
	})
}

// FromUnstructured converts a control plane object into a typed envelope.
func FromUnstructured[T any](obj *unstructured.Unstructured) (*T, error) {
	out := new(T)
	if err := runtime.DefaultUnstructuredConverter.FromUnstructured(obj.Object, out); err != nil {
		return nil, fmt.Errorf("failed to decode %s %s: %w", obj.GetKind(), obj.GetName(), err)
	}
	return out, nil
}
