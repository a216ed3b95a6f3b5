package pipeline_test

import (
	"context"
	"sync"

	"github.com/IBM/sarama"
	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/aws-samples/eks-notifier/internal/trigger"
	"github.com/aws-samples/eks-notifier/pkg/pipeline"
	"github.com/aws-samples/eks-notifier/pkg/pipeline/mock"
)

// Kafka fakes, only the methods used by the runner and the handler are implemented

type fakeConsumerGroup struct {
	sarama.ConsumerGroup

	errors   chan error
	consume  func(ctx context.Context, handler sarama.ConsumerGroupHandler) error
	consumed int
}

func (f *fakeConsumerGroup) Consume(ctx context.Context, _ []string, handler sarama.ConsumerGroupHandler) error {
	f.consumed++

	return f.consume(ctx, handler)
}

func (f *fakeConsumerGroup) Errors() <-chan error {
	return f.errors
}

type fakeSession struct {
	sarama.ConsumerGroupSession

	ctx context.Context

	lock   sync.Mutex
	marked []int64
}

func (f *fakeSession) Context() context.Context {
	return f.ctx
}

func (f *fakeSession) Claims() map[string][]int32 {
	return map[string][]int32{"triggers": {0}}
}

func (f *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.marked = append(f.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim

	messages chan *sarama.ConsumerMessage
}

func (f fakeClaim) Topic() string {
	return "triggers"
}

func (f fakeClaim) Partition() int32 {
	return 0
}

func (f fakeClaim) InitialOffset() int64 {
	return 0
}

func (f fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return f.messages
}

const schedule = `{"source":"aws.events","detail-type":"Scheduled Event","detail":{}}`

func newClaim(values ...string) fakeClaim {
	ret := fakeClaim{messages: make(chan *sarama.ConsumerMessage, len(values))}

	for i, value := range values {
		ret.messages <- &sarama.ConsumerMessage{Topic: "triggers", Offset: int64(i), Value: []byte(value)}
	}

	close(ret.messages)

	return ret
}

var _ = Describe("Consuming a claim", func() {
	var proc *mock.MockProcessing[trigger.Event]
	var errProc *mock.MockErrorProcessing
	var handler pipeline.JSONHandler[trigger.Event]
	var session *fakeSession

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		proc = mock.NewMockProcessing[trigger.Event](ctrl)
		errProc = mock.NewMockErrorProcessing(ctrl)

		handler = pipeline.NewJSONHandler[trigger.Event](proc, errProc).WithLogger(logr.Discard())
		session = &fakeSession{ctx: context.Background()}
	})

	When("every message is processed", func() {
		It("should mark every message", func() {
			proc.EXPECT().Process(gomock.Any(), scheduled).Return(nil).Times(2)

			Expect(handler.ConsumeClaim(session, newClaim(schedule, schedule))).To(Succeed())
			Expect(session.marked).To(Equal([]int64{0, 1}))
		})
	})

	When("a message is not json", func() {
		It("should send an unmarshal error with the message and mark it", func() {
			errProc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pErr pipeline.ErrProcessingError) error {
				Expect(pErr.Category).To(Equal(pipeline.UnmarshalErrorCategory))
				Expect(pErr.Trigger).To(BeEmpty())
				Expect(pErr.Event).NotTo(BeNil())
				Expect(pErr.Event.Offset).To(BeEquivalentTo(0))

				return nil
			})
			proc.EXPECT().Process(gomock.Any(), scheduled).Return(nil)

			Expect(handler.ConsumeClaim(session, newClaim(`not json`, schedule))).To(Succeed())
			Expect(session.marked).To(Equal([]int64{0, 1}))
		})
	})

	When("the processing fails", func() {
		It("should keep the category of the failure and record the trigger kind", func() {
			proc.EXPECT().Process(gomock.Any(), scheduled).Return(errInventory)
			errProc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pErr pipeline.ErrProcessingError) error {
				Expect(pErr.Category).To(Equal(inventoryCategory))
				Expect(pErr.Trigger).To(Equal("scheduled"))
				Expect(pErr).To(MatchError(errListClusters))

				return nil
			})

			Expect(handler.ConsumeClaim(session, newClaim(schedule))).To(Succeed())
			Expect(session.marked).To(Equal([]int64{0}))
		})

		It("should still mark the message when the error processing fails", func() {
			proc.EXPECT().Process(gomock.Any(), scheduled).Return(errListClusters)
			errProc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pErr pipeline.ErrProcessingError) error {
				Expect(pErr.Category).To(Equal(pipeline.UnknownCategory))

				return errDeadLetter
			})

			Expect(handler.ConsumeClaim(session, newClaim(schedule))).To(Succeed())
			Expect(session.marked).To(Equal([]int64{0}))
		})
	})

	When("the session is cancelled", func() {
		It("should not mark anything", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			session.ctx = ctx

			Expect(handler.ConsumeClaim(session, newClaim(schedule))).To(Succeed())
			Expect(session.marked).To(BeEmpty())
		})
	})
})

var _ = Describe("Running a consumer group", func() {
	var proc *mock.MockProcessing[trigger.Event]
	var errProc *mock.MockErrorProcessing

	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())
		proc = mock.NewMockProcessing[trigger.Event](ctrl)
		errProc = mock.NewMockErrorProcessing(ctrl)
	})

	It("should consume again after a rebalance and stop cleanly once cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		consumer := &fakeConsumerGroup{errors: make(chan error)}
		consumer.consume = func(_ context.Context, _ sarama.ConsumerGroupHandler) error {
			if consumer.consumed == 2 {
				cancel()
			}

			return nil
		}

		runner := pipeline.NewRunner[trigger.Event](consumer, []string{"triggers"}, proc, errProc).WithLogger(logr.Discard())

		Expect(runner.Start(ctx)).To(Succeed())
		Expect(consumer.consumed).To(Equal(2))
	})

	It("should stop when the consumer group fails", func() {
		consumer := &fakeConsumerGroup{errors: make(chan error)}
		consumer.consume = func(_ context.Context, _ sarama.ConsumerGroupHandler) error {
			return sarama.ErrClosedConsumerGroup
		}

		runner := pipeline.NewRunner[trigger.Event](consumer, []string{"triggers"}, proc, errProc)

		Expect(runner.Start(context.Background())).To(MatchError(sarama.ErrClosedConsumerGroup))
	})
})
