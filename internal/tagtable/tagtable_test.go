// SPDX-License-Identifier: MIT
package tagtable_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skaphos/colortags/internal/tagtable"
)

var _ = Describe("Build", func() {
	It("keeps every canonical name when supported", func() {
		table := tagtable.Build(true)
		Expect(table.Supported()).To(BeTrue())
		Expect(table.Len()).To(Equal(len(tagtable.Canonical())))
		for _, tag := range tagtable.Canonical() {
			code, ok := table.Lookup(tag.Name)
			Expect(ok).To(BeTrue(), tag.Name)
			Expect(code).To(Equal(tag.Code), tag.Name)
			Expect(code).NotTo(BeEmpty(), tag.Name)
		}
	})

	It("keeps the keys but empties the codes when unsupported", func() {
		table := tagtable.Build(false)
		Expect(table.Supported()).To(BeFalse())
		Expect(table.Names()).To(Equal(tagtable.Build(true).Names()))
		for _, name := range table.Names() {
			Expect(table.Has(name)).To(BeTrue())
			Expect(table.Code(name)).To(BeEmpty())
		}
	})

	It("is case sensitive", func() {
		table := tagtable.Build(true)
		Expect(table.Code("red")).To(Equal("\x1b[01;31m"))
		Expect(table.Code("Red")).To(Equal("\x1b[41m"))
		Expect(table.Code("Bred")).To(Equal("\x1b[02;31m"))
		Expect(table.Has("RED")).To(BeFalse())
	})

	It("returns copies of its name list", func() {
		table := tagtable.Build(true)
		names := table.Names()
		names[0] = "mutated"
		Expect(table.Names()[0]).To(Equal("black"))
	})
})
