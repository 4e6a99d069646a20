// SPDX-License-Identifier: MIT
package termstyle

import (
	"bufio"
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skaphos/colortags/internal/markup"
	"github.com/skaphos/colortags/internal/tagtable"
)

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

var _ = Describe("Printer", func() {
	var (
		out      *bytes.Buffer
		enabled  *markup.Engine
		disabled *markup.Engine
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		enabled = markup.New(tagtable.Build(true), markup.DefaultDelimiters)
		disabled = markup.New(tagtable.Build(false), markup.DefaultDelimiters)
	})

	It("emits without a line terminator", func() {
		p := New(enabled, out, DefaultOptions())
		Expect(p.Emit("<red>hot")).To(Succeed())
		Expect(out.String()).To(Equal("\x1b[01;31mhot"))
	})

	It("joins items with the separator and ends the line", func() {
		p := New(disabled, out, DefaultOptions())
		Expect(p.EmitLine("<red>X", 42)).To(Succeed())
		Expect(out.String()).To(Equal("X 42\n"))
	})

	It("erases instead of substituting in erase mode", func() {
		opts := DefaultOptions()
		opts.Erase = true
		opts.Separator = ", "
		opts.LineEnd = "!"
		p := New(enabled, out, opts)
		Expect(p.EmitLine("<blue>a", "<nope>b", 3.5)).To(Succeed())
		Expect(out.String()).To(Equal("a, <nope>b, 3.5!"))
	})

	It("passes non-string items through untouched", func() {
		p := New(enabled, out, DefaultOptions())
		Expect(p.EmitLine([]byte("<red>"), true)).To(Succeed())
		Expect(out.String()).To(Equal("[60 114 101 100 62] true\n"))
	})

	It("flushes buffered streams unless told not to", func() {
		buffered := bufio.NewWriter(out)
		p := New(enabled, buffered, DefaultOptions())
		Expect(p.Emit("<b>x")).To(Succeed())
		Expect(out.String()).To(Equal("\x1b[1mx"))

		out.Reset()
		opts := DefaultOptions()
		opts.NoFlush = true
		p = New(enabled, buffered, opts)
		Expect(p.Emit("<B>y")).To(Succeed())
		Expect(out.Len()).To(BeZero())
		Expect(buffered.Flush()).To(Succeed())
		Expect(out.String()).To(Equal("\x1b[2my"))
	})

	It("writes the fixed sequences", func() {
		p := New(enabled, out, DefaultOptions())
		p.ClearLine()
		p.ClearScreen()
		p.ResetAll()
		Expect(out.String()).To(Equal("\r\x1b[K" + "\x1b[2J" + "\x1b[0;39;49m"))
	})

	It("uses custom delimiters for the fixed sequences", func() {
		opts := DefaultOptions()
		opts.Delimiters = markup.Delimiters{Left: "{", Right: "}"}
		p := New(enabled, out, opts)
		p.ResetAll()
		Expect(out.String()).To(Equal("\x1b[0;39;49m"))
	})

	It("reports write errors", func() {
		p := New(enabled, errorWriter{}, DefaultOptions())
		Expect(p.Emit("x")).NotTo(Succeed())
		Expect(p.EmitLine("x")).NotTo(Succeed())
	})

	It("falls back to the engine delimiters", func() {
		p := New(enabled, out, Options{})
		Expect(p.Options().Delimiters).To(Equal(markup.DefaultDelimiters))
		Expect(p.Writer()).To(BeIdenticalTo(out))
	})

	It("fills an empty separator and line end with the defaults", func() {
		p := New(disabled, out, Options{})
		Expect(p.Options().Separator).To(Equal(" "))
		Expect(p.Options().LineEnd).To(Equal("\n"))
		Expect(p.EmitLine("<red>X", 42)).To(Succeed())
		Expect(out.String()).To(Equal("X 42\n"))
	})

	It("joins directly and omits the line end when asked", func() {
		p := New(disabled, out, Options{Separator: ", ", LineEnd: "!", NoSeparator: true, NoLineEnd: true})
		Expect(p.EmitLine("a", "<b>b")).To(Succeed())
		Expect(out.String()).To(Equal("ab"))
	})
})
