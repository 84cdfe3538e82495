package common

//one row of the simulation results table
type Record struct {
	Protocol   string
	Nodes      int
	PDR        float64
	Throughput float64
	Delay      float64
	//only set when the simulator columns are present
	Flows   int64
	TotalTx int64
	TotalRx int64
}

//ordered rows as read from the input, never mutated after load
type Table []Record

type Metric int

const (
	PDR Metric = iota
	Throughput
	Delay
)

//x axis label shared by all charts
const XLabel = "Number of Nodes"

//chart order
var Metrics = []Metric{PDR, Throughput, Delay}

type metricInfo struct {
	name   string
	column string
	title  string
	ylabel string
	file   string
}

var metricTable = map[Metric]metricInfo{
	PDR:        {"pdr", "PDR", "PDR vs Number of Nodes", "Packet Delivery Ratio (%)", "pdr_vs_nodes.png"},
	Throughput: {"throughput", "Throughput", "Throughput vs Number of Nodes", "Throughput (Mbps)", "throughput_vs_nodes.png"},
	Delay:      {"delay", "Delay", "Delay vs Number of Nodes", "Average Delay (s)", "delay_vs_nodes.png"},
}

func (m Metric) String() string { return metricTable[m].name }

//Column is the header name of the metric in the results file
func (m Metric) Column() string { return metricTable[m].column }

func (m Metric) Title() string { return metricTable[m].title }

func (m Metric) YLabel() string { return metricTable[m].ylabel }

//FileName is the image written for the metric
func (m Metric) FileName() string { return metricTable[m].file }

func (m Metric) Value(r Record) float64 {
	switch m {
	case PDR:
		return r.PDR
	case Throughput:
		return r.Throughput
	case Delay:
		return r.Delay
	}
	return 0
}

func (m Metric) Set(r *Record, v float64) {
	switch m {
	case PDR:
		r.PDR = v
	case Throughput:
		r.Throughput = v
	case Delay:
		r.Delay = v
	}
}
