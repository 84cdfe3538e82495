package results

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strings"

	"manetplot/common"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

var (
	ErrFileNotFound  = errors.New("results file not found")
	ErrMissingColumn = errors.New("missing required column")
	ErrParse         = errors.New("malformed results table")
)

const (
	ColProtocol = "Protocol"
	ColNodes    = "Nodes"
	ColFlows    = "Flows"
	ColTotalTx  = "TotalTx"
	ColTotalRx  = "TotalRx"
)

var requiredColumns = []string{
	ColProtocol,
	ColNodes,
	common.PDR.Column(),
	common.Throughput.Column(),
	common.Delay.Column(),
}

//header names the ns-3 simulator writes for the metric columns
var headerAliases = map[string]string{
	"Packet Delivery Ratio (%)": common.PDR.Column(),
	"Throughput (Mbps)":         common.Throughput.Column(),
	"Average Delay (s)":         common.Delay.Column(),
}

func Load(path string) (common.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return t, nil
}

//Read parses a comma separated table with a header row, columns in any order.
//A header without data rows is an empty table.
func Read(r io.Reader) (common.Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "%v", err)
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrParse, "no header row")
	}

	columns := mapColumns(records[0])
	for _, c := range requiredColumns {
		if _, ok := columns[c]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%s", c)
		}
	}
	if len(records) == 1 {
		return common.Table{}, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, errors.Wrapf(ErrParse, "%v", df.Err)
	}
	cells := make(map[string][]string, len(columns))
	for canonical, header := range columns {
		cells[canonical] = df.Col(header).Records()
	}

	n := df.Nrow()
	table := make(common.Table, n)
	for i := 0; i < n; i++ {
		rec := &table[i]
		rec.Protocol = cells[ColProtocol][i]
		nodes, err := toInt64(cell(cells, ColNodes, i))
		if err != nil {
			return nil, parseError(i, ColNodes, err)
		}
		rec.Nodes = int(nodes)
		for _, m := range common.Metrics {
			v, err := cast.ToFloat64E(cell(cells, m.Column(), i))
			if err != nil {
				return nil, parseError(i, m.Column(), err)
			}
			m.Set(rec, v)
		}
		for _, opt := range []struct {
			col string
			dst *int64
		}{{ColFlows, &rec.Flows}, {ColTotalTx, &rec.TotalTx}, {ColTotalRx, &rec.TotalRx}} {
			if _, ok := cells[opt.col]; !ok {
				continue
			}
			if *opt.dst, err = toInt64(cell(cells, opt.col, i)); err != nil {
				return nil, parseError(i, opt.col, err)
			}
		}
	}
	return table, nil
}

//decimal integer, leading zeros do not switch the base: "010" is 10
func toInt64(s string) (int64, error) {
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("%q is not an integer", s)
	}
	return int64(f), nil
}

//canonical column name -> header as it appears in the file.
//An exact canonical header wins over an alias for the same column.
func mapColumns(headers []string) map[string]string {
	known := map[string]bool{ColFlows: true, ColTotalTx: true, ColTotalRx: true}
	for _, c := range requiredColumns {
		known[c] = true
	}
	columns := make(map[string]string)
	for _, h := range headers {
		name := strings.TrimSpace(h)
		if known[name] {
			columns[name] = h
		}
	}
	for _, h := range headers {
		canonical, ok := headerAliases[strings.TrimSpace(h)]
		if !ok {
			continue
		}
		if _, taken := columns[canonical]; !taken {
			columns[canonical] = h
		}
	}
	return columns
}

func cell(cells map[string][]string, col string, row int) string {
	return strings.TrimSpace(cells[col][row])
}

func parseError(row int, col string, err error) error {
	return errors.Wrapf(ErrParse, "row %d column %s: %v", row+1, col, err)
}
