package processing_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"

	"github.com/aws-samples/eks-notifier/internal/processing"
	"github.com/aws-samples/eks-notifier/internal/trigger"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
	pipelinemock "github.com/aws-samples/eks-notifier/pkg/pipeline/mock"
)

var _ = Describe("Counting triggers", func() {
	var registry *prometheus.Registry
	var count pipeline.Processing[trigger.Event]
	var inner *pipelinemock.MockProcessing[trigger.Event]

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		inner = pipelinemock.NewMockProcessing[trigger.Event](ctrl)
		registry = prometheus.NewPedanticRegistry()

		var err error

		count, err = processing.NewCountTrigger(inner, registry, pipeline.MetricsConfig{Namespace: "main"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should count every trigger by kind, failed or not", func() {
		inner.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		inner.EXPECT().Process(gomock.Any(), gomock.Any()).Return(errOneError).Times(1)

		Expect(count.Process(context.TODO(), trigger.Scheduled())).To(Succeed())
		Expect(count.Process(context.TODO(), trigger.Scheduled())).To(Succeed())
		Expect(count.Process(context.TODO(), trigger.Event{Kind: trigger.KindDeleteCluster})).To(MatchError(errOneError))

		expected := `
# HELP main_trigger_total Trigger counter by kind.
# TYPE main_trigger_total counter
main_trigger_total{kind="delete_cluster"} 1
main_trigger_total{kind="scheduled"} 2
`
		Expect(testutil.GatherAndCompare(registry, strings.NewReader(expected), "main_trigger_total")).To(Succeed())
	})
})
