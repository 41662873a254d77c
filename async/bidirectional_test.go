package async_test

import (
	"github.com/NVIDIA/aisqueue/async"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bidirectional sync (S7)", func() {
	It("matches replies to requests in send order without exposing tokens", func() {
		req, resp := async.NewUnboundedBidirectional[int, int]()

		req.SendRequest(12)
		req.SendRequest(15)

		v, ok := resp.TryTakeRequest()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(12))
		Expect(resp.ReplyResponse(13)).To(BeTrue())

		v, ok = resp.TryTakeRequest()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(15))
		Expect(resp.ReplyResponse(16)).To(BeTrue())

		r, ok := req.TryGetResponse()
		Expect(ok).To(BeTrue())
		Expect(r).To(Equal(13))

		r, ok = req.TryGetResponse()
		Expect(ok).To(BeTrue())
		Expect(r).To(Equal(16))
	})
})
