package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// BuildSpec describes how to produce an executable image from source.
type BuildSpec struct {
	// BaseImage is the image the build starts from
	// +required
	BaseImage string `json:"baseimage"`

	// +optional
	Description string `json:"description,omitempty"`

	// +required
	SourceCode SourceCode `json:"sourcecode"`
}

// SourceCode locates the sources of a build and how to turn them into an image.
type SourceCode struct {
	// URL of the source repository
	// +required
	URL string `json:"url"`

	// +optional
	Branch string `json:"branch,omitempty"`

	// +optional
	Commit string `json:"commit,omitempty"`

	// BuildCommand runs after dependencies are installed
	// +optional
	BuildCommand string `json:"buildcmd,omitempty"`

	// DependencyCommand installs dependencies not covered by Dependencies
	// +optional
	DependencyCommand string `json:"dependencycmd,omitempty"`

	// +optional
	Dependencies *Dependencies `json:"dependencies,omitempty"`

	// +required
	Entrypoint string `json:"entrypoint"`
}

// RevisionConflict reports whether both branch and commit are set. Whether the
// two are exclusive or commit takes precedence has not been decided yet.
func (s SourceCode) RevisionConflict() bool {
	return s.Branch != "" && s.Commit != ""
}

// Dependencies lists packages per ecosystem. A nil list means none declared.
type Dependencies struct {
	OS     []Dependency `json:"os,omitempty"`
	Pip    []Dependency `json:"pip,omitempty"`
	NPM    []Dependency `json:"npm,omitempty"`
	Yarn   []Dependency `json:"yarn,omitempty"`
	Go     []Dependency `json:"go,omitempty"`
	Cargo  []Dependency `json:"cargo,omitempty"`
	Maven  []Dependency `json:"maven,omitempty"`
	Gradle []Dependency `json:"gradle,omitempty"`
	ASDF   []Dependency `json:"asdf,omitempty"`
}

// EcosystemNames lists the supported dependency ecosystems in wire form.
var EcosystemNames = []string{"os", "pip", "npm", "yarn", "go", "cargo", "maven", "gradle", "asdf"}

// Ecosystems returns the declared dependency lists keyed by their wire name.
// Ecosystems without declarations are omitted.
func (d *Dependencies) Ecosystems() map[string][]Dependency {
	if d == nil {
		return nil
	}
	all := map[string][]Dependency{
		"os":     d.OS,
		"pip":    d.Pip,
		"npm":    d.NPM,
		"yarn":   d.Yarn,
		"go":     d.Go,
		"cargo":  d.Cargo,
		"maven":  d.Maven,
		"gradle": d.Gradle,
		"asdf":   d.ASDF,
	}
	for k, v := range all {
		if len(v) == 0 {
			delete(all, k)
		}
	}
	return all
}

// Dependency is a package pinned to a free-form version string.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// +kubebuilder:object:root=true

// Build is the Schema for the builds API
type Build struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec BuildSpec `json:"spec"`
}

// +kubebuilder:object:root=true

// BuildList contains a list of Build
type BuildList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Build `json:"items"`
}
