package results

import (
	"manetplot/common"

	"golang.org/x/exp/slices"
)

//rows of one protocol in their original order; an absent protocol gives an empty table
func Filter(t common.Table, protocol string) common.Table {
	out := make(common.Table, 0)
	for _, r := range t {
		if r.Protocol == protocol {
			out = append(out, r)
		}
	}
	return out
}

//one Filter result per protocol, same order as protocols
func GroupBy(t common.Table, protocols []string) []common.Table {
	groups := make([]common.Table, len(protocols))
	for i, p := range protocols {
		groups[i] = Filter(t, p)
	}
	return groups
}

//distinct protocol labels in order of first appearance
func Protocols(t common.Table) []string {
	var labels []string
	for _, r := range t {
		if !slices.Contains(labels, r.Protocol) {
			labels = append(labels, r.Protocol)
		}
	}
	return labels
}
