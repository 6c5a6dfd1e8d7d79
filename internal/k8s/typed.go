package k8s

import (
	"context"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

// GetRun fetches a Run by name.
func (r *ResourceOperations) GetRun(ctx context.Context, name string) (*v1alpha1.Run, error) {
	obj, err := r.GetResource(ctx, v1alpha1.RunGroupVersionResource, v1alpha1.RunGroupVersionKind.Kind, name)
	if err != nil {
		return nil, err
	}
	return FromUnstructured[v1alpha1.Run](obj)
}

// ListRuns returns all Runs in the namespace.
func (r *ResourceOperations) ListRuns(ctx context.Context) (*v1alpha1.RunList, error) {
	objs, err := r.ListResources(ctx, v1alpha1.RunGroupVersionResource, v1alpha1.RunGroupVersionKind.Kind)
	if err != nil {
		return nil, err
	}
	list := &v1alpha1.RunList{Items: make([]v1alpha1.Run, 0, len(objs))}
	list.SetGroupVersionKind(v1alpha1.RunListGroupVersionKind)
	for _, obj := range objs {
		run, err := FromUnstructured[v1alpha1.Run](obj)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, *run)
	}
	return list, nil
}

// GetBuild fetches a Build by name.
func (r *ResourceOperations) GetBuild(ctx context.Context, name string) (*v1alpha1.Build, error) {
	obj, err := r.GetResource(ctx, v1alpha1.BuildGroupVersionResource, v1alpha1.BuildGroupVersionKind.Kind, name)
	if err != nil {
		return nil, err
	}
	return FromUnstructured[v1alpha1.Build](obj)
}

// ListBuilds returns all Builds in the namespace.
func (r *ResourceOperations) ListBuilds(ctx context.Context) (*v1alpha1.BuildList, error) {
	objs, err := r.ListResources(ctx, v1alpha1.BuildGroupVersionResource, v1alpha1.BuildGroupVersionKind.Kind)
	if err != nil {
		return nil, err
	}
	list := &v1alpha1.BuildList{Items: make([]v1alpha1.Build, 0, len(objs))}
	list.SetGroupVersionKind(v1alpha1.BuildListGroupVersionKind)
	for _, obj := range objs {
		build, err := FromUnstructured[v1alpha1.Build](obj)
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, *build)
	}
	return list, nil
}
