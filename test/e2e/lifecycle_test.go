package e2e_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/aws-samples/eks-notifier/test/e2e"
)

var _ = Describe("Checking cluster lifecycle triggers", func() {
	var testConfig e2e.TestConfig
	var testContext e2e.TestContext

	var ctx context.Context

	BeforeEach(func() {
		var err error
		ctx = context.TODO()

		testConfig = e2e.CreateTestConfig("lifecycle")

		testContext, err = e2e.CreateTestContext(ctx, testConfig, binary, endpoint, workDir)
		Expect(err).NotTo(HaveOccurred())

		err = testContext.DeployAll(ctx, "30")
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

	When("a cluster is being deleted", func() {
		It("should only send the deletion notice", func(ctx SpecContext) {
			_, err := testContext.RunNotifier("resources/input/delete_cluster.json")
			Expect(err).NotTo(HaveOccurred())

			Eventually(func(g Gomega, ctx context.Context) {
				notifications, err := testContext.ReceiveNotifications(ctx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(notifications).To(HaveLen(1))
				g.Expect(notifications[0]).To(HavePrefix("【Deleting an EKS Cluster】"))
				g.Expect(notifications[0]).To(ContainSubstring("Cluster legacy is being deleted..."))
			}).WithContext(ctx).WithTimeout(time.Minute).WithPolling(5 * time.Second).Should(Succeed())
		})
	})

	When("a cluster is created with an unsupported version", func() {
		It("should warn about the new cluster", func(ctx SpecContext) {
			_, err := testContext.RunNotifier("resources/input/create_cluster.json")
			Expect(err).NotTo(HaveOccurred())

			Eventually(func(g Gomega, ctx context.Context) {
				notifications, err := testContext.ReceiveNotifications(ctx)
				g.Expect(err).NotTo(HaveOccurred())
				g.Expect(notifications).To(HaveLen(1))
				g.Expect(notifications[0]).To(HavePrefix("【Risk alert for creating EKS cluster with lower version】"))
				g.Expect(notifications[0]).To(ContainSubstring("Detected a new cluster named fresh with version 1.24"))
				g.Expect(notifications[0]).To(HaveSuffix("Doc: https://docs.aws.amazon.com/eks/latest/userguide/kubernetes-versions.html"))
			}).WithContext(ctx).WithTimeout(time.Minute).WithPolling(5 * time.Second).Should(Succeed())
		})
	})
})
