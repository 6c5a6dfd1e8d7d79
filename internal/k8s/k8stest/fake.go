// Package k8stest provides a fake control plane for tests of code built on
// the dynamic client.
package k8stest

import (
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	utilrand "k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/client-go/dynamic/fake"
	clienttesting "k8s.io/client-go/testing"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

var crdGVR = schema.GroupVersionResource{Group: "apiextensions.k8s.io", Version: "v1", Resource: "customresourcedefinitions"}

// NewFakeClient returns a dynamic client that behaves like an API server for
// the calls execd makes: it fills in generateName and serves server-side
// apply as an upsert. objects are preloaded into its tracker.
func NewFakeClient(objects ...runtime.Object) *fake.FakeDynamicClient {
	client := fake.NewSimpleDynamicClientWithCustomListKinds(runtime.NewScheme(),
		map[schema.GroupVersionResource]string{
			v1alpha1.RunGroupVersionResource:   "RunList",
			v1alpha1.BuildGroupVersionResource: "BuildList",
			crdGVR:                             "CustomResourceDefinitionList",
		}, objects...)

	client.PrependReactor("create", "*", func(action clienttesting.Action) (bool, runtime.Object, error) {
		obj, ok := action.(clienttesting.CreateAction).GetObject().(*unstructured.Unstructured)
		if ok && obj.GetName() == "" && obj.GetGenerateName() != "" {
			obj.SetName(obj.GetGenerateName() + utilrand.String(5))
		}
		return false, nil, nil
	})

	client.PrependReactor("patch", "*", func(action clienttesting.Action) (bool, runtime.Object, error) {
		patch := action.(clienttesting.PatchAction)
		if patch.GetPatchType() != types.ApplyPatchType {
			return false, nil, nil
		}

		obj := &unstructured.Unstructured{}
		if err := obj.UnmarshalJSON(patch.GetPatch()); err != nil {
			return true, nil, apierrors.NewBadRequest(err.Error())
		}

		tracker := client.Tracker()
		gvr, ns, name := patch.GetResource(), patch.GetNamespace(), patch.GetName()
		if _, err := tracker.Get(gvr, ns, name); err != nil {
			if !apierrors.IsNotFound(err) {
				return true, nil, err
			}
			if err := tracker.Create(gvr, obj, ns); err != nil {
				return true, nil, err
			}
		} else if err := tracker.Update(gvr, obj, ns); err != nil {
			return true, nil, err
		}

		stored, err := tracker.Get(gvr, ns, name)
		return true, stored, err
	})

	return client
}

// EstablishedCRD returns a CustomResourceDefinition reporting Established=True.
func EstablishedCRD(name string) *unstructured.Unstructured {
	return &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": "apiextensions.k8s.io/v1",
		"kind":       "CustomResourceDefinition",
		"metadata":   map[string]interface{}{"name": name},
		"status": map[string]interface{}{
			"conditions": []interface{}{
				map[string]interface{}{"type": "NamesAccepted", "status": "True"},
				map[string]interface{}{"type": "Established", "status": "True"},
			},
		},
	}}
}
