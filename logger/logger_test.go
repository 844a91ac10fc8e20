package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/anupam312nwd/matrix-manifolds/logger"
)

func decode(buf *bytes.Buffer) map[string]any {
	var parsed map[string]any
	ExpectWithOffset(1, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &parsed)).To(Succeed())
	return parsed
}

var _ = Describe("Logger", func() {
	Describe("New", func() {
		It("writes text records by default", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf))
			l.Info("evaluated dataset", "dataset", "btree1365")

			Expect(buf.String()).To(ContainSubstring("evaluated dataset"))
			Expect(buf.String()).To(ContainSubstring("btree1365"))
		})

		It("hides debug records unless enabled", func() {
			var buf bytes.Buffer
			logger.New(logger.WithWriter(&buf)).Debug("scored run")
			Expect(buf.String()).To(BeEmpty())

			logger.New(logger.WithWriter(&buf), logger.WithDebug(true)).Debug("scored run")
			Expect(buf.String()).To(ContainSubstring("scored run"))
		})

		It("writes JSON records", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true))
			l.Info("dropping run", "run", "3", "layers", 5)

			parsed := decode(&buf)
			Expect(parsed["msg"]).To(Equal("dropping run"))
			Expect(parsed["run"]).To(Equal("3"))
			Expect(parsed["layers"]).To(BeNumerically("==", 5))
		})

		It("prefers JSON over pretty output", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true), logger.WithPretty(true))
			l.Info("both")
			Expect(decode(&buf)["msg"]).To(Equal("both"))
		})

		It("writes pretty records through charmbracelet/log", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithPretty(true), logger.WithDebug(true))
			l.Debug("ground truth built", "scorable", 12)

			Expect(buf.String()).To(ContainSubstring("ground truth built"))
			Expect(buf.String()).To(ContainSubstring("scorable"))
		})

		It("fans out to several writers", func() {
			var a, b bytes.Buffer
			logger.New(logger.WithWriters(&a, &b)).Info("twice")
			Expect(a.String()).To(ContainSubstring("twice"))
			Expect(b.String()).To(ContainSubstring("twice"))
		})
	})

	Describe("Nop", func() {
		It("is disabled at every level", func() {
			l := logger.Nop()
			Expect(l.Handler().Enabled(context.Background(), slog.LevelError)).To(BeFalse())
			Expect(func() { l.With("k", "v").WithGroup("g").Warn("msg") }).NotTo(Panic())
		})

		It("replaces nil loggers", func() {
			Expect(logger.OrNop(nil)).NotTo(BeNil())
			l := logger.New()
			Expect(logger.OrNop(l)).To(BeIdenticalTo(l))
		})
	})

	Describe("Multi", func() {
		It("dispatches to every logger", func() {
			var text, js bytes.Buffer
			m := logger.Multi(
				logger.New(logger.WithWriter(&text)),
				logger.New(logger.WithWriter(&js), logger.WithJSON(true)),
				nil,
			)
			m.Info("broadcast", "key", "val")

			Expect(text.String()).To(ContainSubstring("broadcast"))
			Expect(decode(&js)["key"]).To(Equal("val"))
		})

		It("respects each handler's level", func() {
			var info, debug bytes.Buffer
			m := logger.Multi(
				logger.New(logger.WithWriter(&info)),
				logger.New(logger.WithWriter(&debug), logger.WithDebug(true)),
			)
			m.Debug("only debug")

			Expect(info.String()).To(BeEmpty())
			Expect(debug.String()).To(ContainSubstring("only debug"))
		})

		It("carries attributes and groups", func() {
			var buf bytes.Buffer
			m := logger.Multi(logger.New(logger.WithWriter(&buf), logger.WithJSON(true)))
			m.With("dataset", "grid").WithGroup("run").Info("scored", "id", "0")

			parsed := decode(&buf)
			Expect(parsed["dataset"]).To(Equal("grid"))
			group, ok := parsed["run"].(map[string]any)
			Expect(ok).To(BeTrue())
			Expect(group["id"]).To(Equal("0"))
		})
	})
})
