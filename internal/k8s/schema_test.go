package k8s

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	clienttesting "k8s.io/client-go/testing"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

var _ = Describe("SchemaWaiter", func() {
	var (
		ctx     context.Context
		crdName string
	)

	BeforeEach(func() {
		ctx = context.Background()
		crdName = v1alpha1.CRDName(v1alpha1.RunGroupVersionResource)
	})

	It("reports Ready for an established CRD", func() {
		waiter := NewSchemaWaiter(newFakeClient(establishedCRD(crdName)), 10*time.Millisecond)

		state, err := waiter.Wait(ctx, crdName, time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(state).To(Equal(SchemaReady))
	})

	It("times out within the deadline when the CRD is missing", func() {
		waiter := NewSchemaWaiter(newFakeClient(), 20*time.Millisecond)
		timeout := 200 * time.Millisecond

		start := time.Now()
		state, err := waiter.Wait(ctx, crdName, timeout)
		elapsed := time.Since(start)

		Expect(state).To(Equal(SchemaTimedOut))
		var notReady *SchemaNotReadyError
		Expect(errors.As(err, &notReady)).To(BeTrue())
		Expect(notReady.CRD).To(Equal(crdName))
		Expect(notReady.LastErr).To(HaveOccurred())
		Expect(elapsed).To(BeNumerically("<", timeout+500*time.Millisecond))
	})

	It("keeps waiting while the CRD is not established", func() {
		pending := establishedCRD(crdName)
		Expect(unstructured.SetNestedSlice(pending.Object, []interface{}{
			map[string]interface{}{"type": "Established", "status": "False"},
		}, "status", "conditions")).To(Succeed())
		waiter := NewSchemaWaiter(newFakeClient(pending), 20*time.Millisecond)

		state, err := waiter.Wait(ctx, crdName, 100*time.Millisecond)
		Expect(state).To(Equal(SchemaTimedOut))
		Expect(err).To(MatchError(ContainSubstring("Established is not True")))
	})

	DescribeTable("fails at once when the CRD registry refuses the read",
		func(refusal error, isRefusal func(error) bool) {
			client := newFakeClient(establishedCRD(crdName))
			client.PrependReactor("get", "customresourcedefinitions", func(clienttesting.Action) (bool, runtime.Object, error) {
				return true, nil, refusal
			})
			waiter := NewSchemaWaiter(client, 20*time.Millisecond)

			start := time.Now()
			state, err := waiter.Wait(ctx, crdName, 5*time.Second)

			Expect(time.Since(start)).To(BeNumerically("<", time.Second))
			Expect(state).To(Equal(SchemaTimedOut))
			var transportErr *TransportError
			Expect(errors.As(err, &transportErr)).To(BeTrue())
			Expect(isRefusal(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("--skip-schema-check")))
		},
		Entry("forbidden", apierrors.NewForbidden(CustomResourceDefinitionGVR.GroupResource(), "runs.task.execd.at", errors.New("rbac")), apierrors.IsForbidden),
		Entry("unauthorized", apierrors.NewUnauthorized("token expired"), apierrors.IsUnauthorized),
	)

	It("stops when the caller cancels", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		waiter := NewSchemaWaiter(newFakeClient(), 20*time.Millisecond)

		state, err := waiter.Wait(cancelled, crdName, time.Minute)
		Expect(state).To(Equal(SchemaTimedOut))
		Expect(err).To(HaveOccurred())
	})

	It("uses the default interval when none is given", func() {
		Expect(NewSchemaWaiter(newFakeClient(), 0).interval).To(Equal(DefaultSchemaPollInterval))
	})
})

var _ = Describe("SchemaState", func() {
	It("has readable names", func() {
		Expect(SchemaReady.String()).To(Equal("Ready"))
		Expect(SchemaTimedOut.String()).To(Equal("TimedOut"))
	})
})
