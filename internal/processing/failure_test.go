package processing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/aws-samples/eks-notifier/internal/domain/repo/mock"
	"github.com/aws-samples/eks-notifier/internal/processing"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
)

var _ = Describe("Dead letter", func() {
	var writer *mock.MockProcessingErrorWriter
	var deadLetter processing.DeadLetter

	pErr := pipeline.NewErrProcessingError(errOneError, "cluster_inventory", nil)

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		writer = mock.NewMockProcessingErrorWriter(ctrl)
		deadLetter = processing.NewDeadLetter(writer)
	})

	It("should write the failed trigger", func(ctx SpecContext) {
		writer.EXPECT().WriteProcessingError(gomock.Any(), pErr).Return(nil).Times(1)

		Expect(deadLetter.Process(ctx, pErr)).To(Succeed())
	})

	It("should report a failed write", func(ctx SpecContext) {
		writer.EXPECT().WriteProcessingError(gomock.Any(), pErr).Return(errOneError).Times(1)

		Expect(deadLetter.Process(ctx, pErr)).To(MatchError(errOneError))
	})
})
