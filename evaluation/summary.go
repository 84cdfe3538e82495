package evaluation

import (
	"manetplot/common"
	"manetplot/results"
)

type ProtocolSummary struct {
	Protocol string                    `json:"protocol"`
	Rows     int                       `json:"rows"`
	Metrics  map[string]common.Summary `json:"metrics"`
}

//statistics of every metric for each protocol, in the given order
func Summarize(t common.Table, protocols []string) []ProtocolSummary {
	groups := results.GroupBy(t, protocols)
	out := make([]ProtocolSummary, len(protocols))
	for i, p := range protocols {
		ps := ProtocolSummary{
			Protocol: p,
			Rows:     len(groups[i]),
			Metrics:  make(map[string]common.Summary, len(common.Metrics)),
		}
		for _, m := range common.Metrics {
			values := make([]float64, len(groups[i]))
			for j, r := range groups[i] {
				values[j] = m.Value(r)
			}
			ps.Metrics[m.String()] = common.Summarize(values)
		}
		out[i] = ps
	}
	return out
}
