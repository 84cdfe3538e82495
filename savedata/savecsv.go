package savedata

import (
	"os"

	"manetplot/render"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

type SeriesRow struct {
	Protocol string  `csv:"protocol"`
	Metric   string  `csv:"metric"`
	Nodes    int     `csv:"nodes"`
	Value    float64 `csv:"value"`
}

type SaveCSV struct {
	Name string
	Data []*SeriesRow
}

func NewCSV(filename string) *SaveCSV {
	return &SaveCSV{Name: filename, Data: make([]*SeriesRow, 0)}
}

//Append one element to csv data, no actual write
func (mycsv *SaveCSV) AddOneToCSV(row *SeriesRow) {
	mycsv.Data = append(mycsv.Data, row)
}

//every plotted point of the chart, in series order
func (mycsv *SaveCSV) AddChart(metric string, c *render.Chart) {
	for _, s := range c.Series {
		for _, pt := range s.Points {
			mycsv.AddOneToCSV(&SeriesRow{Protocol: s.Key, Metric: metric, Nodes: int(pt.X), Value: pt.Y})
		}
	}
}

//write header and rows, replacing the file
func (mycsv *SaveCSV) CloseCSV() error {
	f, err := os.Create(mycsv.Name)
	if err != nil {
		return errors.Wrapf(err, "create csv %s", mycsv.Name)
	}
	if err := gocsv.MarshalFile(&mycsv.Data, f); err != nil {
		f.Close()
		return errors.Wrapf(err, "write csv %s", mycsv.Name)
	}
	return f.Close()
}
