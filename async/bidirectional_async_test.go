package async_test

import (
	"context"
	"time"

	"github.com/NVIDIA/aisqueue/async"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("BidirectionalAsync", func() {
	It("routes a reply back through the pipe created for that call", func() {
		req, resp := async.NewUnboundedBidirectionalAsync[int, int]()

		go func() {
			_ = resp.Serve(context.Background(), func(n int) int { return n * 2 })
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		v, err := req.Call(ctx, 21)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(42))
	})
})
