package buffer_test

import (
	"time"

	"github.com/NVIDIA/aisqueue/qchan/buffer"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type tick struct {
	t time.Time
	v int
}

func (t tick) DataTime() time.Time { return t.t }

var _ = Describe("TSPre", func() {
	It("withholds items until the gate releases them", func() {
		now := time.Now()
		p := buffer.NewTSPre[tick](now, 1)
		p.Send(tick{t: now.Add(time.Hour), v: 1})
		_, ok := p.Recv()
		Expect(ok).To(BeFalse())
	})

	It("releases items whose data time has already elapsed", func() {
		now := time.Now()
		p := buffer.NewTSPre[tick](now, 1)
		p.Send(tick{t: now.Add(-time.Hour), v: 1})
		v, ok := p.Recv()
		Expect(ok).To(BeTrue())
		Expect(v.v).To(Equal(1))
	})

	It("shrinks a RecvCount batch down to the released prefix", func() {
		now := time.Now()
		p := buffer.NewTSPre[tick](now, 1)
		p.SendItems([]tick{
			{t: now.Add(-time.Hour), v: 1},
			{t: now.Add(-time.Minute), v: 2},
			{t: now.Add(time.Hour), v: 3},
		})
		got := p.RecvCount(3, true)
		Expect(got).To(HaveLen(2))
		Expect(got[0].v).To(Equal(1))
		Expect(got[1].v).To(Equal(2))
		// the unreleased item stays behind for the next call.
		Expect(p.Len()).To(Equal(1))
	})

	It("returns nil when even the first candidate isn't released", func() {
		now := time.Now()
		p := buffer.NewTSPre[tick](now, 1)
		p.SendItems([]tick{
			{t: now.Add(time.Hour), v: 1},
			{t: now.Add(2 * time.Hour), v: 2},
		})
		Expect(p.RecvCount(2, true)).To(BeNil())
	})

	It("trims to its bound on overflow", func() {
		now := time.Now()
		p := buffer.NewTSPre[tick](now, 1)
		p.ApplyBound(2)
		p.SendItems([]tick{
			{t: now.Add(time.Hour), v: 1},
			{t: now.Add(2 * time.Hour), v: 2},
			{t: now.Add(3 * time.Hour), v: 3},
		})
		Expect(p.Len()).To(Equal(2))
		Expect(p.QueryItems(0, 10)[0].v).To(Equal(2))
	})
})
