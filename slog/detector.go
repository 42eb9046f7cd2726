package slog

import (
	"log/slog"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.FrameworkDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a FrameworkDetector and logs the detected framework
// with the content selector it implies.
type LoggingDetector struct {
	next   llmstxt.FrameworkDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next llmstxt.FrameworkDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector.
func (d *LoggingDetector) Detect(html string) llmstxt.Framework {
	framework := d.next.Detect(html)
	name := string(framework)
	if framework == llmstxt.FrameworkUnknown {
		name = "(unknown)"
	}
	d.logger.Info("framework detection",
		"framework", name,
		"selector", llmstxt.ContentSelector(framework),
	)
	return framework
}
