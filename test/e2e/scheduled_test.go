package e2e_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aws-samples/eks-notifier/test/e2e"
)

var _ = Describe("Checking the scheduled run", func() {
	var testConfig e2e.TestConfig
	var testContext e2e.TestContext

	var ctx context.Context

	BeforeEach(func() {
		var err error
		ctx = context.TODO()

		testConfig = e2e.CreateTestConfig("scheduled")

		testContext, err = e2e.CreateTestContext(ctx, testConfig, binary, endpoint, workDir)
		Expect(err).NotTo(HaveOccurred())

		err = testContext.DeployAll(ctx, "23")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		// Keep all components if the test failed
		if CurrentSpecReport().Failed() {
			GinkgoLogr.Info("Test failed", "config", testConfig)

			return
		}

		err := testContext.Shutdown(ctx)
		Expect(err).NotTo(HaveOccurred())
	})

	When("a cluster runs an unsupported version", func() {
		It("should notify about the cluster", func(ctx SpecContext) {
			_, err := testContext.RunNotifier("")
			Expect(err).NotTo(HaveOccurred())

			By("eventually receiving the fleet notification")
			Eventually(func(g Gomega, ctx context.Context) {
				notifications, err := testContext.ReceiveNotifications(ctx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(notifications).To(HaveLen(1))
				g.Expect(notifications[0]).To(HavePrefix("【EKS cluster versions reaching end of support】"))
				g.Expect(notifications[0]).To(ContainSubstring("Cluster " + testConfig.ClusterName + " with version 1.23 has reached end of support"))
				g.Expect(notifications[0]).To(ContainSubstring("Region: us-east-1"))
			}).WithContext(ctx).WithTimeout(time.Minute).WithPolling(5 * time.Second).Should(Succeed())
		})
	})

	When("the payload is not json", func() {
		It("should refuse to run", func() {
			_, err := testContext.RunNotifier("resources/input/not_even_json.txt")
			Expect(err).To(HaveOccurred())
		})
	})

	When("the cluster inventory cannot be read", func() {
		BeforeEach(func() {
			Expect(testContext.RemoveKubeconfig()).To(Succeed())
		})

		It("should fail without notifying", func(ctx SpecContext) {
			_, err := testContext.RunNotifier("")
			Expect(err).To(HaveOccurred())

			Consistently(func(g Gomega, ctx context.Context) {
				notifications, err := testContext.ReceiveNotifications(ctx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(notifications).To(BeEmpty())
			}).WithContext(ctx).WithTimeout(10 * time.Second).WithPolling(2 * time.Second).Should(Succeed())
		})
	})
})
