//go:build integration

package catconsumer_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/storefront/platform/logger"
	tckafka "github.com/you-humble/storefront/platform/testcontainers/kafka"
)

var (
	suiteCtx    context.Context
	suiteCancel context.CancelFunc

	kafkaC  *tckafka.Container
	brokers []string
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Product updated consumer integration suite")
}

var _ = BeforeSuite(func() {
	logger.SetNopLogger()

	suiteCtx, suiteCancel = context.WithTimeout(context.Background(), 5*time.Minute)

	var err error
	kafkaC, err = tckafka.NewContainer(suiteCtx,
		tckafka.WithClusterID("storefront-it"),
		tckafka.WithLogger(logger.L()),
	)
	Expect(err).NotTo(HaveOccurred())

	brokers = kafkaC.Brokers()
	Expect(brokers).NotTo(BeEmpty())
})

var _ = AfterSuite(func() {
	if kafkaC != nil {
		Expect(kafkaC.Terminate(context.Background())).To(Succeed())
	}
	if suiteCancel != nil {
		suiteCancel()
	}
})
