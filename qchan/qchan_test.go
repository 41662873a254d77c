package qchan_test

import (
	"time"

	"github.com/NVIDIA/aisqueue/qchan"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type sample struct {
	t    time.Time
	data int
}

func (s sample) DataTime() time.Time { return s.t }

var _ = Describe("unbounded consume (S1)", func() {
	It("shares one head across clones", func() {
		tx, rx := qchan.New[int]()
		tx.SendItems([]int{1, 2, 3, 4})
		tx.Send(5)

		rx2 := rx.Clone()

		v, ok := rx.Recv()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))

		Expect(rx2.RecvItems(3)).To(Equal([]int{2, 3, 4}))

		v, ok = rx.Recv()
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(5))
	})
})

var _ = Describe("bounded consume (S2)", func() {
	It("head-drops and shares the tail across clones", func() {
		tx, rx := qchan.New[int](qchan.WithBounded(4))
		tx.SendItems([]int{1, 2, 3, 4})
		tx.Send(5)

		rx2 := rx.Clone()

		Expect(rx.RecvItems(2)).To(Equal([]int{2, 3}))
		Expect(rx2.RecvItems(2)).To(Equal([]int{4, 5}))
		Expect(rx.IsEmpty()).To(BeTrue())
	})
})

var _ = Describe("unbounded broadcast (S3)", func() {
	It("delivers the full sequence to every receiver independently", func() {
		tx, rx := qchan.New[int](qchan.WithDispatch())
		rx2 := rx.Clone()

		tx.SendItems([]int{1, 2, 3, 4})
		tx.Send(5)

		Expect(rx.RecvItems(3)).To(Equal([]int{1, 2, 3}))
		Expect(rx2.RecvItems(3)).To(Equal([]int{1, 2, 3}))
		Expect(rx.RecvItemsWeak(3)).To(Equal([]int{4, 5}))
		Expect(rx2.RecvItemsWeak(3)).To(Equal([]int{4, 5}))
	})
})

var _ = Describe("bounded broadcast (S4)", func() {
	It("drops the oldest item for every cursor alike", func() {
		tx, rx := qchan.New[int](qchan.WithDispatch(), qchan.WithBounded(4))
		rx2 := rx.Clone()

		tx.SendItems([]int{1, 2, 3, 4})
		tx.Send(5)

		Expect(rx.RecvItems(3)).To(Equal([]int{2, 3, 4}))
		Expect(rx2.RecvItems(3)).To(Equal([]int{2, 3, 4}))
		Expect(rx.RecvItemsWeak(3)).To(Equal([]int{5}))
		Expect(rx2.RecvItemsWeak(3)).To(Equal([]int{5}))
	})
})

var _ = Describe("temporal unbounded consume (S5)", func() {
	It("withholds a future item until enough wall time elapses", func() {
		now := time.Now()
		tx, rx := qchan.NewTimeSeries[sample](now, 1)
		rx2 := rx.Clone()

		tx.SendItems([]sample{
			{t: now.Add(-10 * time.Millisecond), data: 111},
			{t: now.Add(10 * time.Millisecond), data: 222},
		})

		v, ok := rx.Recv()
		Expect(ok).To(BeTrue())
		Expect(v.data).To(Equal(111))

		_, ok = rx2.Recv()
		Expect(ok).To(BeFalse())

		time.Sleep(20 * time.Millisecond)

		v, ok = rx2.Recv()
		Expect(ok).To(BeTrue())
		Expect(v.data).To(Equal(222))
	})
})

var _ = Describe("observer (S6, S8)", func() {
	It("never affects receiver read sequences", func() {
		tx, rx := qchan.New[int](qchan.WithDispatch())

		obs := rx.GetObserver()
		Expect(obs.IsEmpty()).To(BeTrue())
		emptyRx := obs.GetReceiver()
		Expect(emptyRx.Len()).To(Equal(0))

		tx.SendItems([]int{10, 20})

		// rx was acquired before the sends: it sees both.
		Expect(rx.RecvItems(2)).To(Equal([]int{10, 20}))

		// a receiver acquired via the observer after the sends starts its
		// cursor at the current base; emptyRx has not read, so nothing was
		// compacted and both items are still there for it.
		lateRx := obs.GetReceiver()
		Expect(lateRx.Len()).To(Equal(2))
	})
})

var _ = Describe("handle lifetime (S7 property)", func() {
	It("tolerates Close being called more than once", func() {
		tx, rx := qchan.New[int]()
		tx.Close()
		tx.Close()
		rx.Close()
		rx.Close()
	})
})
