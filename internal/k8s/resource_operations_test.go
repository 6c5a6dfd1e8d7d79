package k8s

import (
	"context"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic/fake"
	clienttesting "k8s.io/client-go/testing"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

var _ = Describe("ResourceOperations", func() {
	var (
		ctx    context.Context
		client *fake.FakeDynamicClient
		ops    *ResourceOperations
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = newFakeClient()
		ops = NewResourceOperations(client, testNamespace, "")
	})

	submitRun := func(name, generateName string, opts SubmitOptions) (*Accepted, error) {
		obj, err := NewRunObject("", name, generateName, testRunSpec())
		Expect(err).NotTo(HaveOccurred())
		return ops.Submit(ctx, v1alpha1.RunGroupVersionResource, obj, opts)
	}

	Describe("Submit with generateName", func() {
		It("lets the control plane pick the name", func() {
			accepted, err := submitRun("", RunNamePrefix, SubmitOptions{Strategy: StrategyGenerateName})
			Expect(err).NotTo(HaveOccurred())
			Expect(accepted.Name).To(MatchRegexp(`^run-[a-z0-9-]+$`))
			Expect(accepted.Namespace).To(Equal(testNamespace))
			Expect(accepted.Kind).To(Equal("Run"))
		})

		It("stores a spec that reads back unchanged", func() {
			accepted, err := submitRun("", RunNamePrefix, SubmitOptions{Strategy: StrategyGenerateName})
			Expect(err).NotTo(HaveOccurred())

			run, err := ops.GetRun(ctx, accepted.Name)
			Expect(err).NotTo(HaveOccurred())
			Expect(run.Spec).To(Equal(*testRunSpec()))
			Expect(run.Labels).To(HaveKeyWithValue(LabelManagedBy, "execd"))
			Expect(run.Labels).To(HaveKey(LabelSubmissionID))
			Expect(run.Phase()).To(BeEmpty())
		})

		It("creates a distinct resource per submission", func() {
			first, err := submitRun("", RunNamePrefix, SubmitOptions{Strategy: StrategyGenerateName})
			Expect(err).NotTo(HaveOccurred())
			second, err := submitRun("", RunNamePrefix, SubmitOptions{Strategy: StrategyGenerateName})
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Name).NotTo(Equal(second.Name))

			runs, err := ops.ListRuns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(runs.Items).To(HaveLen(2))
		})

		It("rejects a fixed name", func() {
			_, err := submitRun("run-fixed", "", SubmitOptions{Strategy: StrategyGenerateName})
			Expect(err).To(MatchError(ContainSubstring("requires generateName")))
			Expect(client.Actions()).To(BeEmpty())
		})
	})

	Describe("Submit with apply", func() {
		It("converges on one resource when repeated", func() {
			for i := 0; i < 3; i++ {
				accepted, err := submitRun("run-nightly", "", SubmitOptions{Strategy: StrategyApply})
				Expect(err).NotTo(HaveOccurred())
				Expect(accepted.Name).To(Equal("run-nightly"))
			}

			runs, err := ops.ListRuns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(runs.Items).To(HaveLen(1))
		})

		It("keeps the last written spec", func() {
			_, err := submitRun("run-nightly", "", SubmitOptions{Strategy: StrategyApply})
			Expect(err).NotTo(HaveOccurred())

			updated := testRunSpec()
			updated.Description = "second attempt"
			obj, err := NewRunObject("", "run-nightly", "", updated)
			Expect(err).NotTo(HaveOccurred())
			_, err = ops.Submit(ctx, v1alpha1.RunGroupVersionResource, obj, SubmitOptions{Strategy: StrategyApply})
			Expect(err).NotTo(HaveOccurred())

			run, err := ops.GetRun(ctx, "run-nightly")
			Expect(err).NotTo(HaveOccurred())
			Expect(run.Spec.Description).To(Equal("second attempt"))
		})

		It("sends a forced apply owned by the field manager", func() {
			_, err := submitRun("run-nightly", "", SubmitOptions{Strategy: StrategyApply})
			Expect(err).NotTo(HaveOccurred())

			var patches []clienttesting.PatchAction
			for _, action := range client.Actions() {
				if patch, ok := action.(clienttesting.PatchActionImpl); ok {
					patches = append(patches, patch)
				}
			}
			Expect(patches).To(HaveLen(1))
			Expect(patches[0].GetName()).To(Equal("run-nightly"))
			Expect(patches[0].GetPatchType()).To(Equal(types.ApplyPatchType))
		})

		It("reports a conflict when the name must be new", func() {
			_, err := submitRun("run-abcd1234", "", SubmitOptions{Strategy: StrategyApply, Exclusive: true})
			Expect(err).NotTo(HaveOccurred())

			_, err = submitRun("run-abcd1234", "", SubmitOptions{Strategy: StrategyApply, Exclusive: true})
			var conflict *ConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
			Expect(conflict.Resource.Name).To(Equal("run-abcd1234"))
		})

		It("requires a name", func() {
			_, err := submitRun("", RunNamePrefix, SubmitOptions{Strategy: StrategyApply})
			Expect(err).To(MatchError(ContainSubstring("requires a name")))
		})

		It("submits Builds the same way", func() {
			obj, err := NewBuildObject("", "build-base", "", testBuildSpec())
			Expect(err).NotTo(HaveOccurred())
			accepted, err := ops.Submit(ctx, v1alpha1.BuildGroupVersionResource, obj, SubmitOptions{Strategy: StrategyApply})
			Expect(err).NotTo(HaveOccurred())
			Expect(accepted.Kind).To(Equal("Build"))

			build, err := ops.GetBuild(ctx, "build-base")
			Expect(err).NotTo(HaveOccurred())
			Expect(build.Spec).To(Equal(*testBuildSpec()))
		})
	})

	Describe("Submit failures", func() {
		reject := func(err error) {
			client.PrependReactor("*", "runs", func(clienttesting.Action) (bool, runtime.Object, error) {
				return true, nil, err
			})
		}
		gr := schema.GroupResource{Group: v1alpha1.GroupVersion.Group, Resource: "runs"}

		It("classifies invalid objects as validation errors", func() {
			reject(apierrors.NewInvalid(v1alpha1.RunGroupVersionKind.GroupKind(), "run-x", nil))
			_, err := submitRun("run-x", "", SubmitOptions{Strategy: StrategyApply})
			var validation *ValidationError
			Expect(errors.As(err, &validation)).To(BeTrue())
		})

		It("classifies an unserved resource type as a transport error", func() {
			reject(apierrors.NewNotFound(gr, ""))
			_, err := submitRun("", RunNamePrefix, SubmitOptions{Strategy: StrategyGenerateName})
			var transport *TransportError
			Expect(errors.As(err, &transport)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("is the CRD installed"))
		})

		It("classifies connection failures as transport errors", func() {
			reject(fmt.Errorf("dial tcp 127.0.0.1:6443: connect: connection refused"))
			_, err := submitRun("", RunNamePrefix, SubmitOptions{Strategy: StrategyGenerateName})
			var transport *TransportError
			Expect(errors.As(err, &transport)).To(BeTrue())
			Expect(transport.Op).To(Equal("create"))
		})
	})

	Describe("GetResource", func() {
		It("returns NotFoundError for a missing name", func() {
			_, err := ops.GetRun(ctx, "run-missing")
			var notFound *NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Resource).To(Equal(ResourceRef{Kind: "Run", Namespace: testNamespace, Name: "run-missing"}))
		})

		It("decodes the reported phase", func() {
			obj, err := NewRunObject(testNamespace, "run-phased", "", testRunSpec())
			Expect(err).NotTo(HaveOccurred())
			obj.Object["status"] = map[string]interface{}{"currentPhase": "Running"}
			Expect(client.Tracker().Add(obj)).To(Succeed())

			run, err := ops.GetRun(ctx, "run-phased")
			Expect(err).NotTo(HaveOccurred())
			Expect(run.Phase()).To(Equal("Running"))
		})
	})

	Describe("ListResources", func() {
		It("returns an empty slice for an empty namespace", func() {
			builds, err := ops.ListBuilds(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(builds.Items).To(BeEmpty())
		})

		It("only returns resources of its namespace", func() {
			other, err := NewRunObject("elsewhere", "run-other", "", testRunSpec())
			Expect(err).NotTo(HaveOccurred())
			Expect(client.Tracker().Add(other)).To(Succeed())
			_, err = submitRun("run-mine", "", SubmitOptions{Strategy: StrategyApply})
			Expect(err).NotTo(HaveOccurred())

			runs, err := ops.ListRuns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(runs.Items).To(HaveLen(1))
			Expect(runs.Items[0].Name).To(Equal("run-mine"))
		})

		It("follows continue tokens until the last page", func() {
			page := func(cont string, names ...string) *unstructured.UnstructuredList {
				list := &unstructured.UnstructuredList{}
				list.SetAPIVersion(v1alpha1.GroupVersion.String())
				list.SetKind("RunList")
				list.SetContinue(cont)
				for _, name := range names {
					obj, err := NewRunObject(testNamespace, name, "", testRunSpec())
					Expect(err).NotTo(HaveOccurred())
					list.Items = append(list.Items, *obj)
				}
				return list
			}

			// The fake drops Continue from the recorded action, so pages are
			// served by call order.
			calls := 0
			client.PrependReactor("list", "runs", func(clienttesting.Action) (bool, runtime.Object, error) {
				calls++
				if calls == 1 {
					return true, page("tok", "run-a", "run-b"), nil
				}
				return true, page("", "run-c"), nil
			})

			runs, err := ops.ListRuns(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(Equal(2))
			names := make([]string, 0, len(runs.Items))
			for _, run := range runs.Items {
				names = append(names, run.Name)
			}
			Expect(names).To(Equal([]string{"run-a", "run-b", "run-c"}))
		})
	})
})

var _ = Describe("ParseStrategy", func() {
	DescribeTable("accepts known names",
		func(in string, want SubmissionStrategy) {
			got, err := ParseStrategy(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("generate", "generate", StrategyGenerateName),
		Entry("apply", "apply", StrategyApply),
	)

	It("rejects anything else", func() {
		_, err := ParseStrategy("replace")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("classify", func() {
	ref := ResourceRef{Kind: "Run", Namespace: testNamespace, Name: "run-x"}
	gr := schema.GroupResource{Group: v1alpha1.GroupVersion.Group, Resource: "runs"}

	DescribeTable("maps API errors onto the taxonomy",
		func(in error, target interface{}) {
			Expect(errors.As(classify("get", ref, in), target)).To(BeTrue())
		},
		Entry("already exists", apierrors.NewAlreadyExists(gr, "run-x"), new(*ConflictError)),
		Entry("conflict", apierrors.NewConflict(gr, "run-x", errors.New("stale")), new(*ConflictError)),
		Entry("bad request", apierrors.NewBadRequest("nope"), new(*ValidationError)),
		Entry("not found", apierrors.NewNotFound(gr, "run-x"), new(*NotFoundError)),
		Entry("forbidden", apierrors.NewForbidden(gr, "run-x", errors.New("rbac")), new(*TransportError)),
		Entry("timeout", apierrors.NewTimeoutError("slow", 1), new(*TransportError)),
	)

	It("keeps the API error reachable", func() {
		err := classify("get", ref, apierrors.NewNotFound(gr, "run-x"))
		Expect(apierrors.IsNotFound(err)).To(BeTrue())
	})

	It("passes nil through", func() {
		Expect(classify("get", ref, nil)).To(Succeed())
	})
})

var _ = Describe("BuildObject", func() {
	It("requires exactly one of name and generateName", func() {
		_, err := BuildObject(ObjectSpec{GVK: v1alpha1.RunGroupVersionKind, Spec: testRunSpec()})
		Expect(err).To(HaveOccurred())

		_, err = BuildObject(ObjectSpec{GVK: v1alpha1.RunGroupVersionKind, Name: "a", GenerateName: "b-", Spec: testRunSpec()})
		Expect(err).To(HaveOccurred())
	})

	It("sets only client-owned fields", func() {
		obj, err := NewRunObject(testNamespace, "", RunNamePrefix, testRunSpec())
		Expect(err).NotTo(HaveOccurred())
		Expect(obj.GetAPIVersion()).To(Equal("task.execd.at/v1alpha1"))
		Expect(obj.GetKind()).To(Equal("Run"))
		Expect(obj.GetGenerateName()).To(Equal(RunNamePrefix))
		Expect(obj.GetName()).To(BeEmpty())
		Expect(obj.Object).NotTo(HaveKey("status"))
		Expect(obj.GetCreationTimestamp()).To(Equal(metav1.Time{}))
	})
})
