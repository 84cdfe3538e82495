package render

import (
	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	ErrUnknownBackend = errors.New("unknown chart backend")
	ErrEmptyChart     = errors.New("chart has no data points")
)

const (
	BackendGonum   = "gonum"
	BackendGochart = "gochart"
)

type Series struct {
	Key    string //protocol as found in the input
	Label  string //legend text
	Color  drawing.Color
	Points plotter.XYs
}

type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

//Len is the number of points over all series
func (c *Chart) Len() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
}

func NewOptions(widthInch, heightInch float64, dpi int) Options {
	return Options{
		Width:  vg.Length(widthInch) * vg.Inch,
		Height: vg.Length(heightInch) * vg.Inch,
		DPI:    dpi,
	}
}

//pixel size of the exported image
func (o Options) Pixels() (int, int) {
	w := float64(o.Width/vg.Inch) * float64(o.DPI)
	h := float64(o.Height/vg.Inch) * float64(o.DPI)
	return int(w + 0.5), int(h + 0.5)
}

//Backend draws a chart and writes it as a PNG file, replacing any existing file
type Backend interface {
	Name() string
	Save(c *Chart, opt Options, path string) error
}

func NewBackend(name string) (Backend, error) {
	switch name {
	case BackendGonum, "":
		return gonumBackend{}, nil
	case BackendGochart:
		return gochartBackend{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", name)
}
