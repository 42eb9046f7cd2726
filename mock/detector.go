package mock

import "github.com/fwojciec/llmstxt"

var _ llmstxt.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of llmstxt.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) llmstxt.Framework
}

func (d *FrameworkDetector) Detect(html string) llmstxt.Framework {
	return d.DetectFn(html)
}
