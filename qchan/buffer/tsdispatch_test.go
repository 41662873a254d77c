package buffer_test

import (
	"time"

	"github.com/NVIDIA/aisqueue/qchan/buffer"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TSUnboundedDispatch", func() {
	It("migrates released items into the post stage for every receiver", func() {
		now := time.Now()
		d := buffer.NewTSUnboundedDispatch[tick](now, 1)
		d.NewReceiver(1)
		d.Send(tick{t: now.Add(-time.Hour), v: 1})

		v, ok := d.Recv(0)
		Expect(ok).To(BeTrue())
		Expect(v.v).To(Equal(1))

		got := d.RecvCount(1, 1, true)
		Expect(got).To(HaveLen(1))
		Expect(got[0].v).To(Equal(1))
	})

	It("keeps a future item out of the post stage until it is released", func() {
		now := time.Now()
		d := buffer.NewTSUnboundedDispatch[tick](now, 1)
		d.Send(tick{t: now.Add(time.Hour), v: 1})
		Expect(d.Len(0)).To(Equal(0))
	})
})

var _ = Describe("TSBoundedDispatch", func() {
	It("couples pre and post occupancy under a single capacity", func() {
		now := time.Now()
		d := buffer.NewTSBoundedDispatch[tick](now, 1, 3)
		d.SendItems([]tick{
			{t: now.Add(-time.Hour), v: 1},
			{t: now.Add(-time.Hour), v: 2},
			{t: now.Add(-time.Hour), v: 3},
		})
		Expect(d.Len(0)).To(Equal(3))
		d.Send(tick{t: now.Add(time.Hour), v: 4}) // unreleased, occupies the pre stage
		Expect(len(d.QueryItems(0, 10))).To(BeNumerically("<=", 3))
	})
})
