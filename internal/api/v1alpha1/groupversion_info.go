// Package v1alpha1 contains the Build and Run resource definitions submitted
// by execd. The controller that reconciles them lives outside this module.
//
// +kubebuilder:object:generate=true
// +groupName=task.execd.at
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "task.execd.at", Version: "v1alpha1"}

	RunGroupVersionKind   = GroupVersion.WithKind("Run")
	BuildGroupVersionKind = GroupVersion.WithKind("Build")

	RunListGroupVersionKind   = GroupVersion.WithKind("RunList")
	BuildListGroupVersionKind = GroupVersion.WithKind("BuildList")

	RunGroupVersionResource   = GroupVersion.WithResource("runs")
	BuildGroupVersionResource = GroupVersion.WithResource("builds")
)

// CRDName returns the CustomResourceDefinition name for a resource of this group,
// e.g. "runs.task.execd.at".
func CRDName(gvr schema.GroupVersionResource) string {
	return gvr.Resource + "." + gvr.Group
}
