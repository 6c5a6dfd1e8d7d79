package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RunSpec describes one execution request. A Run always carries the full
// description of the Build it executes.
type RunSpec struct {
	// +required
	Build BuildSpec `json:"build"`

	// +optional
	InputData *InputDataSpec `json:"inputdata,omitempty"`

	// OutputData is where produced artifacts are written
	// +required
	OutputData OutputDataSpec `json:"outputdata"`

	// +optional
	Description string `json:"description,omitempty"`
}

// InputDataSpec locates the data a Run consumes.
type InputDataSpec struct {
	DataPath string `json:"datapath"`
	URL      string `json:"url"`

	// +optional
	DataType string `json:"type,omitempty"`

	// TransformCommand is applied to the data before the entrypoint runs
	// +optional
	TransformCommand string `json:"transformcmd,omitempty"`
}

// OutputDataSpec locates where a Run writes its artifacts.
type OutputDataSpec struct {
	DataPath string `json:"datapath"`
	URL      string `json:"url"`
}

// RunStatus is written by the controller only.
type RunStatus struct {
	CurrentPhase string `json:"currentPhase"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status

// Run is the Schema for the runs API
type Run struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   RunSpec    `json:"spec"`
	Status *RunStatus `json:"status,omitempty"`
}

// Phase returns the current phase, or an empty string when the controller has
// not reported one yet.
func (r *Run) Phase() string {
	if r.Status == nil {
		return ""
	}
	return r.Status.CurrentPhase
}

// DisplayDescription prefers the run's own description over the build's.
func (r *Run) DisplayDescription() string {
	if r.Spec.Description != "" {
		return r.Spec.Description
	}
	return r.Spec.Build.Description
}

// +kubebuilder:object:root=true

// RunList contains a list of Run
type RunList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Run `json:"items"`
}
