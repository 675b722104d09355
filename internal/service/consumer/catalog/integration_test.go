//go:build integration

package catconsumer_test

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	"github.com/you-humble/storefront/internal/converter"
	"github.com/you-humble/storefront/internal/model"
	catconsumer "github.com/you-humble/storefront/internal/service/consumer/catalog"
	catsvc "github.com/you-humble/storefront/internal/service/catalog"
	catmocks "github.com/you-humble/storefront/internal/service/catalog/mocks"
	"github.com/you-humble/storefront/platform/kafka/consumer"
	"github.com/you-humble/storefront/platform/kafka/middleware"
	"github.com/you-humble/storefront/platform/logger"
)

var _ = Describe("ProductUpdated consumer", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		topic  string
		conv   = converter.NewKafkaConverter()
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(suiteCtx, time.Minute)
		topic = "product.updated." + gofakeit.LetterN(8)
	})

	AfterEach(func() {
		cancel()
	})

	It("invalidates loaded listings of every session", func() {
		client := catmocks.NewMockCatalogClient(GinkgoT())
		client.On("ListProducts", mock.Anything, mock.Anything).
			Return(model.ProductList{Items: []model.Product{{ID: 1, Name: gofakeit.ProductName()}}}, nil)

		svc := catsvc.NewCatalogService(client, model.DefaultProductParams(), time.Hour, time.Minute)
		sid := svc.NewSession(ctx)

		s, err := svc.Products(ctx, sid)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.ProductsLoaded).To(BeTrue())

		By("publishing a product updated event")
		cfg := sarama.NewConfig()
		cfg.Producer.Return.Successes = true
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest

		producer, err := sarama.NewSyncProducer(brokers, cfg)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(producer.Close)

		payload, err := conv.ProductUpdatedToPayload(model.ProductUpdated{
			EventID:    uuid.New(),
			ProductID:  1,
			OccurredAt: time.Now().UTC(),
		})
		Expect(err).NotTo(HaveOccurred())

		_, _, err = producer.SendMessage(&sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder("1"),
			Value: sarama.ByteEncoder(payload),
		})
		Expect(err).NotTo(HaveOccurred())

		By("consuming it")
		group, err := sarama.NewConsumerGroup(brokers, "storefront-it-"+gofakeit.LetterN(6), cfg)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(group.Close)

		kc := consumer.NewConsumer(group, []string{topic}, logger.L(), middleware.Recovery(logger.L()), middleware.Logging(logger.L()))
		cc := catconsumer.NewCatalogConsumer(kc, conv, svc)

		done := make(chan error, 1)
		go func() { done <- cc.RunProductUpdatedConsume(ctx) }()

		Eventually(func(g Gomega) {
			snap, err := svc.Snapshot(ctx, sid)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(snap.ProductsLoaded).To(BeFalse())
			g.Expect(snap.Products.Len()).To(Equal(1))
		}).WithTimeout(45 * time.Second).WithPolling(250 * time.Millisecond).Should(Succeed())

		cancel()
		Eventually(done).WithTimeout(10 * time.Second).Should(Receive(BeNil()))
	})
})
