package render

import (
	"math"
	"os"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("dddddd"),
	StrokeWidth: 1,
}

type gochartBackend struct{}

func (gochartBackend) Name() string { return BackendGochart }

//go-chart refuses series without points, so empty series are left out
//of the chart and its legend
func (gochartBackend) Save(c *Chart, opt Options, path string) error {
	if c.Len() == 0 {
		return errors.Wrapf(ErrEmptyChart, "%s", c.Title)
	}
	var series []chart.Series
	for _, s := range c.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, pt := range s.Points {
			xs[i] = pt.X
			ys[i] = pt.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: s.Color,
				StrokeWidth: 2,
				DotColor:    s.Color,
				DotWidth:    4,
			},
		})
	}

	w, h := opt.Pixels()
	ch := chart.Chart{
		Title:  c.Title,
		Width:  w,
		Height: h,
		DPI:    float64(opt.DPI),
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  chart.XAxis{Name: c.XLabel, GridMajorStyle: gridStyle},
		YAxis:  chart.YAxis{Name: c.YLabel, GridMajorStyle: gridStyle},
		Series: series,
	}
	//go-chart rejects a zero width axis range, so a single node count or a
	//flat metric gets one unit of room either side
	xmin, xmax, ymin, ymax := bounds(c)
	if xmin == xmax {
		ch.XAxis.Range = &chart.ContinuousRange{Min: xmin - 1, Max: xmax + 1}
	}
	if ymin == ymax {
		ch.YAxis.Range = &chart.ContinuousRange{Min: ymin - 1, Max: ymax + 1}
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := ch.Render(chart.PNG, f); err != nil {
		f.Close()
		return errors.Wrapf(err, "render %s", path)
	}
	return f.Close()
}

func bounds(c *Chart) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range c.Series {
		for _, pt := range s.Points {
			xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
			ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
		}
	}
	return
}
