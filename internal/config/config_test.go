package config_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skaphos/colortags/internal/config"
	"github.com/skaphos/colortags/internal/markup"
	"github.com/skaphos/colortags/internal/support"
)

var _ = Describe("Config", func() {
	BeforeEach(func() {
		GinkgoT().Setenv(config.EnvConfig, "")
	})

	It("resolves config path from override directory", func() {
		path, err := config.ConfigPath(filepath.Join("tmp", "colortags"))
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join("tmp", "colortags", "config.yaml")))
	})

	It("resolves config path from override file", func() {
		path, err := config.ConfigPath(filepath.Join("tmp", "tags.yml"))
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join("tmp", "tags.yml")))
	})

	It("resolves config path from env", func() {
		GinkgoT().Setenv(config.EnvConfig, filepath.Join("cfg", "config.yaml"))
		path, err := config.ConfigPath("")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join("cfg", "config.yaml")))

		dir, err := config.ConfigDir("")
		Expect(err).NotTo(HaveOccurred())
		Expect(dir).To(Equal("cfg"))
	})

	It("resolves init path to local dotfile by default", func() {
		dir := GinkgoT().TempDir()
		path, err := config.InitConfigPath("", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, config.LocalConfigFilename)))
	})

	It("resolves runtime config from nearest parent dotfile", func() {
		dir := GinkgoT().TempDir()
		parentPath := filepath.Join(dir, config.LocalConfigFilename)
		Expect(os.WriteFile(parentPath, []byte("ansi: never\n"), 0o644)).To(Succeed())

		nested := filepath.Join(dir, "a", "b")
		Expect(os.MkdirAll(nested, 0o755)).To(Succeed())

		path, err := config.ResolveConfigPath("", nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(parentPath))
	})

	It("fills missing fields with defaults", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte("ansi: always\ndelimiters:\n  left: \"{\"\n  right: \"}\"\n"), 0o644)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		mode, err := cfg.Mode()
		Expect(err).NotTo(HaveOccurred())
		Expect(mode).To(Equal(support.ModeAlways))
		Expect(cfg.MarkupDelimiters()).To(Equal(markup.Delimiters{Left: "{", Right: "}"}))
		Expect(cfg.Print.Separator).To(Equal(" "))
		Expect(cfg.Print.LineEnd).To(Equal("\n"))
		Expect(cfg.Desktop.NotifyProgram).To(Equal("notify-send"))
		Expect(cfg.APIVersion).To(Equal(config.ConfigAPIVersion))
	})

	It("returns defaults for a missing file", func() {
		cfg, err := config.LoadOrDefault(filepath.Join(GinkgoT().TempDir(), "absent.yaml"))
		Expect(err).NotTo(HaveOccurred())
		Expect(*cfg).To(Equal(config.DefaultConfig()))
	})

	It("does not hide other load errors", func() {
		path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
		Expect(os.WriteFile(path, []byte("ansi: [\n"), 0o644)).To(Succeed())
		_, err := config.LoadOrDefault(path)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeFalse())
	})

	DescribeTable("rejects invalid values",
		func(body string) {
			path := filepath.Join(GinkgoT().TempDir(), "config.yaml")
			Expect(os.WriteFile(path, []byte(body), 0o644)).To(Succeed())
			_, err := config.Load(path)
			Expect(err).To(HaveOccurred())
		},
		Entry("unknown ansi mode", "ansi: sometimes\n"),
		Entry("empty delimiter", "delimiters:\n  left: \"\"\n"),
		Entry("identical delimiters", "delimiters:\n  left: \"|\"\n  right: \"|\"\n"),
		Entry("negative timeout", "desktop:\n  timeout_seconds: -1\n"),
		Entry("wrong kind", "kind: Other\n"),
		Entry("wrong apiVersion", "apiVersion: v0\n"),
	)

	It("round-trips through Save", func() {
		path := filepath.Join(GinkgoT().TempDir(), "nested", "config.yaml")
		cfg := config.DefaultConfig()
		cfg.ANSI = "never"
		cfg.Print.Erase = true
		Expect(config.Save(&cfg, path)).To(Succeed())

		loaded, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(*loaded).To(Equal(cfg))
	})

	It("refuses to save nil", func() {
		Expect(config.Save(nil, filepath.Join(GinkgoT().TempDir(), "c.yaml"))).NotTo(Succeed())
	})
})
