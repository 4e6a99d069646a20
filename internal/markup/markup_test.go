// SPDX-License-Identifier: MIT
package markup_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skaphos/colortags/internal/markup"
	"github.com/skaphos/colortags/internal/tagtable"
)

var samples = []string{
	"",
	"plain text",
	"<red>",
	"<notatag>middle<white>",
	"abc<red",
	"a>b",
	"red>b",
	"<<red>>",
	"<re<d>>",
	"x>y>z",
	"<blue>this is blue.<white>And <this> is white.<red>Now this is <angry> !<green><white>",
	"<b><u>nested</U></B>",
	"<el><green>Done !<reset>",
	"trailing <",
	"> leading",
	"<><>",
}

var _ = Describe("Engine", func() {
	var (
		enabled  *markup.Engine
		disabled *markup.Engine
	)

	BeforeEach(func() {
		enabled = markup.New(tagtable.Build(true), markup.DefaultDelimiters)
		disabled = markup.New(tagtable.Build(false), markup.DefaultDelimiters)
	})

	It("strips idempotently", func() {
		for _, s := range samples {
			once := enabled.Erase(s)
			Expect(enabled.Erase(once)).To(Equal(once), s)
		}
	})

	It("collapses substitution to stripping when the table is disabled", func() {
		for _, s := range samples {
			Expect(disabled.Sprint(s)).To(Equal(disabled.Erase(s)), s)
			Expect(disabled.Sprint(s)).To(Equal(enabled.Erase(s)), s)
		}
	})

	It("round-trips every known tag", func() {
		table := enabled.Table()
		for _, name := range table.Names() {
			Expect(enabled.Sprint("<"+name+">")).To(Equal(table.Code(name)), name)
			Expect(enabled.Erase("<"+name+">")).To(BeEmpty(), name)
		}
	})

	It("preserves unknown tags verbatim", func() {
		Expect(disabled.Sprint("<notatag>middle<white>")).To(Equal("<notatag>middle"))
		Expect(enabled.Sprint("<notatag>middle<white>")).To(Equal("<notatag>middle\x1b[01;37m"))
	})

	It("does not close an unterminated trailing delimiter", func() {
		Expect(disabled.Sprint("abc<red")).To(Equal("abc<red"))
		Expect(enabled.Sprint("abc<red")).To(Equal("abc<red"))
	})

	It("leaves delimiter-free strings untouched", func() {
		for _, s := range []string{"", "plain", "red", "hello world", "ERROR"} {
			Expect(enabled.Sprint(s)).To(Equal(s))
			Expect(enabled.Erase(s)).To(Equal(s))
		}
	})

	It("expands composite aliases", func() {
		Expect(enabled.Sprint("<ERROR>")).To(Equal("\x1b[0;39;49m\x1b[01;31mERROR\x1b[0;39;49m"))
	})

	It("exposes its defaults", func() {
		Expect(enabled.Delimiters()).To(Equal(markup.DefaultDelimiters))
		Expect(enabled.Table().Supported()).To(BeTrue())
	})
})
