package render

import "github.com/gogpu/gg"

// Defaults.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultMargin    = 40.0
	DefaultLineWidth = 3.0
	DefaultPointSize = 4.0
)

// Palette.
var (
	Background  = gg.RGB(1, 1, 1)
	Tension     = gg.Hex("#d7301f")
	Compression = gg.Hex("#2166ac")
	Neutral     = gg.Hex("#8c8c8c")
	VertexFree  = gg.Hex("#222222")
	VertexFixed = gg.Hex("#1b9e77")
)

type config struct {
	width, height int
	margin        float64
	lineWidth     float64
	pointSize     float64
}

// Option configures an image.
type Option func(*config)

// WithSize sets the image size in pixels. Panics unless both are positive.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic("render: WithSize requires positive dimensions")
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithMargin sets the blank border in pixels. Panics if negative.
func WithMargin(px float64) Option {
	if px < 0 {
		panic("render: WithMargin(px<0)")
	}
	return func(c *config) { c.margin = px }
}

// WithLineWidth sets the edge stroke width in pixels. Panics unless positive.
func WithLineWidth(px float64) Option {
	if px <= 0 {
		panic("render: WithLineWidth(px<=0)")
	}
	return func(c *config) { c.lineWidth = px }
}

func gather(opts []Option) config {
	c := config{
		width:     DefaultWidth,
		height:    DefaultHeight,
		margin:    DefaultMargin,
		lineWidth: DefaultLineWidth,
		pointSize: DefaultPointSize,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
