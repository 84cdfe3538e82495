package evaluation

import (
	"manetplot/common"

	"golang.org/x/exp/slices"
	"gonum.org/v1/plot/plotter"
)

//(nodes, metric) points in row order
func MetricXY(records common.Table, m common.Metric) plotter.XYs {
	tsxy := make(plotter.XYs, 0, len(records))
	for _, r := range records {
		tsxy = append(tsxy, plotter.XY{X: float64(r.Nodes), Y: m.Value(r)})
	}
	return tsxy
}

//copy of xys ordered by node count, rows with the same count keep their order
func SortByNodes(xys plotter.XYs) plotter.XYs {
	sorted := make(plotter.XYs, len(xys))
	copy(sorted, xys)
	slices.SortStableFunc(sorted, func(a, b plotter.XY) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	return sorted
}
