// Package cos provides common low-level types and utilities shared across
// the qchan module.
/*
 * Copyright (c) 2018-2022, NVIDIA CORPORATION. All rights reserved.
 */
package cos_test

import (
	"errors"

	"github.com/NVIDIA/aisqueue/cmn/cos"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Errs", func() {
	It("dedupes identical errors", func() {
		var e cos.Errs
		e.Add(errors.New("boom"))
		e.Add(errors.New("boom"))
		Expect(e.Cnt()).To(Equal(1))
	})

	It("caps at maxErrs and reports the overflow count", func() {
		var e cos.Errs
		for i := 0; i < 10; i++ {
			e.Add(errors.New(errors.New("e").Error() + string(rune('a'+i))))
		}
		Expect(e.Cnt()).To(Equal(4))
		Expect(e.Error()).To(ContainSubstring("more error"))
	})

	It("is empty when nothing was added", func() {
		var e cos.Errs
		Expect(e.Cnt()).To(Equal(0))
		Expect(e.Error()).To(Equal(""))
	})
})
