package k8s

import (
	"github.com/execdat/execd/internal/api/v1alpha1"
	"github.com/execdat/execd/internal/k8s/k8stest"
)

const testNamespace = "jobs"

var (
	newFakeClient  = k8stest.NewFakeClient
	establishedCRD = k8stest.EstablishedCRD
)

func testRunSpec() *v1alpha1.RunSpec {
	return &v1alpha1.RunSpec{
		Build: v1alpha1.BuildSpec{
			BaseImage:   "python:3.12-slim",
			Description: "train the model",
			SourceCode: v1alpha1.SourceCode{
				URL:          "https://github.com/example/trainer.git",
				Branch:       "main",
				BuildCommand: "make",
				Dependencies: &v1alpha1.Dependencies{
					Pip: []v1alpha1.Dependency{{Name: "numpy", Version: "1.26.4"}},
				},
				Entrypoint: "python train.py",
			},
		},
		InputData: &v1alpha1.InputDataSpec{
			DataPath: "/data/in",
			URL:      "s3://bucket/in",
		},
		OutputData: v1alpha1.OutputDataSpec{
			DataPath: "/data/out",
			URL:      "s3://bucket/out",
		},
	}
}

func testBuildSpec() *v1alpha1.BuildSpec {
	return &testRunSpec().Build
}
