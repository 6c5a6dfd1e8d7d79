package k8s

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	k8sschema "k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/tools/pager"
)

// DefaultFieldManager owns the fields execd writes with server-side apply.
const DefaultFieldManager = "execd"

// SubmissionStrategy selects how a new resource gets its name.
type SubmissionStrategy string

const (
	// StrategyGenerateName lets the control plane pick the final name from a
	// prefix. It cannot conflict.
	StrategyGenerateName SubmissionStrategy = "generate"
	// StrategyApply uses a client-chosen name and a forced server-side apply,
	// so re-running a submission converges on one resource. An existing
	// resource of that name is overwritten.
	StrategyApply SubmissionStrategy = "apply"
)

// ParseStrategy validates a strategy name from the command line.
func ParseStrategy(s string) (SubmissionStrategy, error) {
	switch SubmissionStrategy(s) {
	case StrategyGenerateName, StrategyApply:
		return SubmissionStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown submission strategy %q (want %q or %q)", s, StrategyGenerateName, StrategyApply)
	}
}

// SubmitOptions controls a single submission.
type SubmitOptions struct {
	Strategy SubmissionStrategy
	// Exclusive makes StrategyApply fail with a ConflictError instead of
	// overwriting. Used for names that came from GenerateName.
	Exclusive bool
}

// Accepted identifies a resource the control plane has stored.
type Accepted struct {
	Kind      string
	Namespace string
	Name      string
	UID       types.UID
}

// ResourceOperations provides submit and read operations for execd resources
type ResourceOperations struct {
	client       dynamic.Interface
	namespace    string
	fieldManager string
}

// NewResourceOperations creates a new ResourceOperations instance scoped to namespace
func NewResourceOperations(client dynamic.Interface, namespace, fieldManager string) *ResourceOperations {
	if fieldManager == "" {
		fieldManager = DefaultFieldManager
	}
	return &ResourceOperations{
		client:       client,
		namespace:    namespace,
		fieldManager: fieldManager,
	}
}

// Namespace returns the namespace operations are scoped to.
func (r *ResourceOperations) Namespace() string {
	return r.namespace
}

// Submit creates or updates exactly one resource. On failure the control
// plane is left unchanged.
func (r *ResourceOperations) Submit(ctx context.Context, gvr k8sschema.GroupVersionResource, obj *unstructured.Unstructured, opts SubmitOptions) (*Accepted, error) {
	if obj.GetNamespace() == "" {
		obj.SetNamespace(r.namespace)
	}
	ref := ResourceRef{Kind: obj.GetKind(), Namespace: obj.GetNamespace(), Name: obj.GetName()}

	if err := checkIdentity(obj, opts.Strategy); err != nil {
		return nil, err
	}

	resource := r.client.Resource(gvr).Namespace(obj.GetNamespace())

	var (
		result *unstructured.Unstructured
		err    error
		op     string
	)
	switch {
	case opts.Strategy == StrategyGenerateName, opts.Exclusive:
		op = "create"
		result, err = resource.Create(ctx, obj, metav1.CreateOptions{FieldManager: r.fieldManager})
	default:
		op = "apply"
		result, err = resource.Apply(ctx, obj.GetName(), obj, metav1.ApplyOptions{
			FieldManager: r.fieldManager,
			Force:        true,
		})
	}
	if err != nil {
		return nil, classifyCollection(op, ref, err)
	}

	namespace, name, err := assignedIdentity(result)
	if err != nil {
		return nil, &TransportError{Op: op, Resource: ref, Err: fmt.Errorf("unexpected response: %w", err)}
	}

	return &Accepted{
		Kind:      result.GetKind(),
		Namespace: namespace,
		Name:      name,
		UID:       result.GetUID(),
	}, nil
}

func checkIdentity(obj *unstructured.Unstructured, strategy SubmissionStrategy) error {
	name, generateName := obj.GetName(), obj.GetGenerateName()
	if (name == "") == (generateName == "") {
		return fmt.Errorf("exactly one of name or generateName must be set (name=%q, generateName=%q)", name, generateName)
	}

	switch strategy {
	case StrategyGenerateName:
		if generateName == "" {
			return fmt.Errorf("strategy %q requires generateName, got name %q", strategy, name)
		}
	case StrategyApply:
		if name == "" {
			return fmt.Errorf("strategy %q requires a name", strategy)
		}
	default:
		return fmt.Errorf("unknown submission strategy %q", strategy)
	}
	return nil
}

// GetResource retrieves a resource by name
func (r *ResourceOperations) GetResource(ctx context.Context, gvr k8sschema.GroupVersionResource, kind, name string) (*unstructured.Unstructured, error) {
	obj, err := r.client.Resource(gvr).Namespace(r.namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, classify("get", ResourceRef{Kind: kind, Namespace: r.namespace, Name: name}, err)
	}
	return obj, nil
}

// ListResources returns every resource of gvr in the namespace, following
// continue tokens until the last page.
func (r *ResourceOperations) ListResources(ctx context.Context, gvr k8sschema.GroupVersionResource, kind string) ([]*unstructured.Unstructured, error) {
	resource := r.client.Resource(gvr).Namespace(r.namespace)
	p := pager.New(func(ctx context.Context, opts metav1.ListOptions) (runtime.Object, error) {
		return resource.List(ctx, opts)
	})

	var items []*unstructured.Unstructured
	err := p.EachListItem(ctx, metav1.ListOptions{}, func(obj runtime.Object) error {
		u, ok := obj.(*unstructured.Unstructured)
		if !ok {
			return fmt.Errorf("unexpected list item type %T", obj)
		}
		items = append(items, u)
		return nil
	})
	if err != nil {
		return nil, classifyCollection("list", ResourceRef{Kind: kind, Namespace: r.namespace}, err)
	}
	return items, nil
}
