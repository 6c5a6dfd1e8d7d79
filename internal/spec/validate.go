package spec

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

func validateRun(run *v1alpha1.RunSpec, strictRevision bool) field.ErrorList {
	var errs field.ErrorList
	errs = append(errs, validateBuildSpec(&run.Build, field.NewPath("build"), strictRevision)...)

	if in := run.InputData; in != nil {
		p := field.NewPath("inputdata")
		errs = append(errs, required(in.DataPath, p.Child("datapath"))...)
		errs = append(errs, required(in.URL, p.Child("url"))...)
	}

	p := field.NewPath("outputdata")
	errs = append(errs, required(run.OutputData.DataPath, p.Child("datapath"))...)
	errs = append(errs, required(run.OutputData.URL, p.Child("url"))...)
	return errs
}

func validateBuild(build *v1alpha1.BuildSpec, strictRevision bool) field.ErrorList {
	return validateBuildSpec(build, nil, strictRevision)
}

func validateBuildSpec(build *v1alpha1.BuildSpec, root *field.Path, strictRevision bool) field.ErrorList {
	var errs field.ErrorList
	errs = append(errs, required(build.BaseImage, child(root, "baseimage"))...)

	src := build.SourceCode
	p := child(root, "sourcecode")
	errs = append(errs, required(src.URL, p.Child("url"))...)
	errs = append(errs, required(src.Entrypoint, p.Child("entrypoint"))...)

	if strictRevision && src.RevisionConflict() {
		errs = append(errs, field.Invalid(p.Child("commit"), src.Commit, "branch and commit must not both be set"))
	}

	declared := src.Dependencies.Ecosystems()
	for _, ecosystem := range v1alpha1.EcosystemNames {
		for i, dep := range declared[ecosystem] {
			dp := p.Child("dependencies", ecosystem).Index(i)
			errs = append(errs, required(dep.Name, dp.Child("name"))...)
			errs = append(errs, required(dep.Version, dp.Child("version"))...)
		}
	}
	return errs
}

func required(value string, p *field.Path) field.ErrorList {
	if value == "" {
		return field.ErrorList{field.Required(p, "")}
	}
	return nil
}

func child(root *field.Path, name string) *field.Path {
	if root == nil {
		return field.NewPath(name)
	}
	return root.Child(name)
}
