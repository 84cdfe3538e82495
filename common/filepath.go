package common

import (
	"os"
)

const (
	SeriesCSVName = "plotted_series.csv"
	SummaryName   = "summary.json"
)

type FilePaths struct {
	Charts         map[Metric]string
	ChartsExist    map[Metric]bool
	SeriesCSV      string
	SeriesCSVExist bool
	Summary        string
	SummaryExist   bool
}

//resolve every file the run may write and record which ones already exist
func CheckOutputFiles(dir string) *FilePaths {
	fp := &FilePaths{
		Charts:      make(map[Metric]string, len(Metrics)),
		ChartsExist: make(map[Metric]bool, len(Metrics)),
		SeriesCSV:   Outputfilename(dir, SeriesCSVName),
		Summary:     Outputfilename(dir, SummaryName),
	}
	for _, m := range Metrics {
		p := Outputfilename(dir, m.FileName())
		fp.Charts[m] = p
		fp.ChartsExist[m] = exists(p)
	}
	fp.SeriesCSVExist = exists(fp.SeriesCSV)
	fp.SummaryExist = exists(fp.Summary)
	return fp
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
