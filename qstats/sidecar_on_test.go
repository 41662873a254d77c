//go:build qmetrics

package qstats_test

import (
	"github.com/NVIDIA/aisqueue/qstats"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sidecar (qmetrics build)", func() {
	It("accumulates per-slot counts across Record calls", func() {
		s := qstats.New()
		slot := s.NewSlot("items_sent.qmetrics_test")
		s.Record(slot, 5)
		s.Record(slot, 2)

		res, err := s.GetResult(false)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Counters["items_sent.qmetrics_test"]).To(Equal(int64(7)))
	})

	It("zeroes slots when clear is true", func() {
		s := qstats.New()
		slot := s.NewSlot("items_dropped.qmetrics_test")
		s.Record(slot, 4)

		res, err := s.GetResult(true)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Counters["items_dropped.qmetrics_test"]).To(Equal(int64(4)))

		res, err = s.GetResult(false)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Counters["items_dropped.qmetrics_test"]).To(Equal(int64(0)))
	})
})
