package evaluation

import (
	"strings"

	"manetplot/common"
	"manetplot/render"
	"manetplot/results"
)

//BuildChart lays out one metric: a series per protocol, legend in upper case
func BuildChart(t common.Table, m common.Metric, protocols []common.ProtocolStyle, sortNodes bool) (*render.Chart, error) {
	names := make([]string, len(protocols))
	for i, p := range protocols {
		names[i] = p.Name
	}
	groups := results.GroupBy(t, names)

	c := &render.Chart{
		Title:  m.Title(),
		XLabel: common.XLabel,
		YLabel: m.YLabel(),
		Series: make([]render.Series, 0, len(protocols)),
	}
	for i, p := range protocols {
		col, err := common.ParseColor(p.Color)
		if err != nil {
			return nil, err
		}
		xys := MetricXY(groups[i], m)
		if sortNodes {
			xys = SortByNodes(xys)
		}
		c.Series = append(c.Series, render.Series{
			Key:    p.Name,
			Label:  strings.ToUpper(p.Name),
			Color:  col,
			Points: xys,
		})
	}
	return c, nil
}
