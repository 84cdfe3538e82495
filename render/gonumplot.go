package render

import (
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

type gonumBackend struct{}

func (gonumBackend) Name() string { return BackendGonum }

//one marker connected line per series; an empty series only gets its legend entry
func (gonumBackend) Save(c *Chart, opt Options, path string) error {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, s := range c.Series {
		l, sc, err := plotter.NewLinePoints(s.Points)
		if err != nil {
			return errors.Wrapf(err, "%s series %s", c.Title, s.Label)
		}
		l.Color = s.Color
		l.Width = vg.Points(1.5)
		sc.Color = s.Color
		sc.Shape = draw.CircleGlyph{}
		sc.Radius = vg.Points(3)
		if len(s.Points) > 0 {
			p.Add(l, sc)
		}
		p.Legend.Add(s.Label, l, sc)
	}

	img := vgimg.NewWith(vgimg.UseWH(opt.Width, opt.Height), vgimg.UseDPI(opt.DPI))
	p.Draw(draw.New(img))

	w, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		w.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	return w.Close()
}
