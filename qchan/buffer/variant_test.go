package buffer_test

import (
	"time"

	"github.com/NVIDIA/aisqueue/qchan/buffer"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Variant", func() {
	It("drives an unbounded variant through the common interface", func() {
		var v buffer.Variant[int] = buffer.NewUnboundedVariant[int]()
		v.Send(1)
		v.SendItems([]int{2, 3})
		x, ok := v.Recv(0)
		Expect(ok).To(BeTrue())
		Expect(x).To(Equal(1))
		Expect(v.Len(0)).To(Equal(2))
	})

	It("drives a broadcast variant with distinct receiver cursors", func() {
		var v buffer.Variant[int] = buffer.NewUnboundedBroadcastVariant[int]()
		v.NewReceiver(1)
		v.SendItems([]int{1, 2})
		v.Recv(0)
		Expect(v.Len(0)).To(Equal(1))
		Expect(v.Len(1)).To(Equal(2))
		v.DropReceiver(1)
	})

	It("drives a temporal dispatch variant", func() {
		now := time.Now()
		var v buffer.Variant[tick] = buffer.NewTSUnboundedDispatchVariant[tick](now, 1)
		v.Send(tick{t: now.Add(-time.Hour), v: 7})
		got, ok := v.Recv(0)
		Expect(ok).To(BeTrue())
		Expect(got.v).To(Equal(7))
	})
})
