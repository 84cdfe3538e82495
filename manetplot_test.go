package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"manetplot/common"
	"manetplot/evaluation"
	"manetplot/results"
	"manetplot/savedata"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const resultsCSV = `Protocol,Nodes,PDR,Throughput,Delay
aodv,10,95.2,4.1,0.02
dsdv,10,90.5,3.9,0.03
olsr,10,97.1,4.3,0.01
dsr,10,88.0,3.5,0.04
aodv,20,91.0,3.8,0.05
dsdv,20,85.0,3.1,0.06
olsr,20,93.4,4.0,0.02
dsr,20,80.0,3.0,0.07
`

const successLine = "Plots saved as: pdr_vs_nodes.png, throughput_vs_nodes.png, delay_vs_nodes.png\n"

// testConfig points a small, fast configuration at a results file in dir
func testConfig(t *testing.T, dir, body string) *common.Config {
	t.Helper()
	input := filepath.Join(dir, "manet-results.csv")
	if err := os.WriteFile(input, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := common.DefaultConfig()
	cfg.Input = input
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.Chart.DPI = 100
	return cfg
}

func chartFiles(dir string) []string {
	return []string{
		filepath.Join(dir, "pdr_vs_nodes.png"),
		filepath.Join(dir, "throughput_vs_nodes.png"),
		filepath.Join(dir, "delay_vs_nodes.png"),
	}
}

func TestRun_WritesThreeCharts(t *testing.T) {
	cfg := testConfig(t, t.TempDir(), resultsCSV)
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, p := range chartFiles(cfg.OutputDir) {
		st, err := os.Stat(p)
		if err != nil || st.Size() == 0 {
			t.Fatalf("%s missing or empty: %v", p, err)
		}
	}
	if out.String() != successLine {
		t.Fatalf("stdout %q", out.String())
	}
	// no side files unless asked for
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, common.SeriesCSVName)); !os.IsNotExist(err) {
		t.Fatalf("series csv written without -csv")
	}
}

func TestRun_RepeatableOnSameInput(t *testing.T) {
	cfg := testConfig(t, t.TempDir(), resultsCSV)
	var first, second bytes.Buffer
	if err := run(cfg, &first); err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, &second); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("messages differ: %q vs %q", first.String(), second.String())
	}
}

func TestRun_MissingPDRColumnWritesNothing(t *testing.T) {
	body := "Protocol,Nodes,Throughput,Delay\naodv,10,4.1,0.02\n"
	cfg := testConfig(t, t.TempDir(), body)
	var out bytes.Buffer
	err := run(cfg, &out)
	if !errors.Is(err, results.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	for _, p := range chartFiles(cfg.OutputDir) {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("%s written despite bad input", p)
		}
	}
	if out.Len() != 0 {
		t.Fatalf("success line printed on failure: %q", out.String())
	}
}

func TestRun_MissingInput(t *testing.T) {
	cfg := common.DefaultConfig()
	cfg.Input = filepath.Join(t.TempDir(), "nope.csv")
	if err := run(cfg, io.Discard); !errors.Is(err, results.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestRun_AbsentProtocolStillRenders(t *testing.T) {
	var lines []string
	for _, l := range strings.Split(resultsCSV, "\n") {
		if !strings.HasPrefix(l, "olsr,") {
			lines = append(lines, l)
		}
	}
	cfg := testConfig(t, t.TempDir(), strings.Join(lines, "\n"))
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != successLine {
		t.Fatalf("stdout %q", out.String())
	}
}

func TestRun_ParallelWithSideFiles(t *testing.T) {
	cfg := testConfig(t, t.TempDir(), resultsCSV)
	cfg.Workers = 3
	cfg.ExportCSV = true
	cfg.Summary = true
	if err := run(cfg, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(cfg.OutputDir, common.SeriesCSVName))
	if err != nil {
		t.Fatal(err)
	}
	// header + 3 metrics x 3 protocols x 2 node counts
	if n := strings.Count(strings.TrimSpace(string(b)), "\n") + 1; n != 19 {
		t.Fatalf("csv lines=%d", n)
	}
	if strings.Contains(string(b), "dsr") {
		t.Fatalf("uncharted protocol exported")
	}
	var summary []evaluation.ProtocolSummary
	if err := savedata.LoadJSON(filepath.Join(cfg.OutputDir, common.SummaryName), &summary); err != nil {
		t.Fatal(err)
	}
	if len(summary) != 3 || summary[0].Protocol != "aodv" || summary[0].Metrics["pdr"].Count != 2 {
		t.Fatalf("summary %+v", summary)
	}
}

func TestRun_UnknownBackend(t *testing.T) {
	cfg := testConfig(t, t.TempDir(), resultsCSV)
	cfg.Chart.Backend = "svg"
	if err := run(cfg, io.Discard); err == nil {
		t.Fatal("expected backend error")
	}
	for _, p := range chartFiles(cfg.OutputDir) {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Fatalf("%s written with bad backend", p)
		}
	}
}

func TestParseFlags_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "manetplot.yaml")
	body := "input: from-file.csv\nworkers: 2\nchart:\n  backend: gochart\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("manetplot", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-config", cfgPath, "-worker", "3", "-sort"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.Input != "from-file.csv" || cfg.Chart.Backend != "gochart" {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.Workers != 3 || !cfg.Chart.SortByNodes {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestParseFlags_NoArgsMatchesDefaults(t *testing.T) {
	fs := flag.NewFlagSet("manetplot", flag.ContinueOnError)
	cfg, err := parseFlags(fs, nil)
	if err != nil {
		t.Fatal(err)
	}
	def := common.DefaultConfig()
	if cfg.Input != def.Input || cfg.OutputDir != def.OutputDir || cfg.Chart.Backend != def.Chart.Backend || cfg.Workers != 1 {
		t.Fatalf("got %+v", cfg)
	}
}

func TestParseFlags_InvalidWorkers(t *testing.T) {
	fs := flag.NewFlagSet("manetplot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := parseFlags(fs, []string{"-worker", "0"}); !errors.Is(err, common.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRun_HeaderOnlyWritesEmptyCharts(t *testing.T) {
	cfg := testConfig(t, t.TempDir(), "Protocol,Nodes,PDR,Throughput,Delay\n")
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, p := range chartFiles(cfg.OutputDir) {
		st, err := os.Stat(p)
		if err != nil || st.Size() == 0 {
			t.Fatalf("%s missing or empty: %v", p, err)
		}
	}
	if out.String() != successLine {
		t.Fatalf("stdout %q", out.String())
	}
}

func TestRun_ReplacesStaleSideFiles(t *testing.T) {
	cfg := testConfig(t, t.TempDir(), resultsCSV)
	cfg.ExportCSV = true
	cfg.Summary = true
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{common.SeriesCSVName, common.SummaryName} {
		if err := os.WriteFile(filepath.Join(cfg.OutputDir, name), []byte("stale"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	fp := common.CheckOutputFiles(cfg.OutputDir)
	if !fp.SeriesCSVExist || !fp.SummaryExist {
		t.Fatalf("stale side files not detected: %+v", fp)
	}
	if err := run(cfg, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(fp.SeriesCSV)
	if err != nil || !strings.HasPrefix(string(b), "protocol,metric,nodes,value") {
		t.Fatalf("series csv not replaced: %q %v", b, err)
	}
	var summary []evaluation.ProtocolSummary
	if err := savedata.LoadJSON(fp.Summary, &summary); err != nil {
		t.Fatalf("summary not replaced: %v", err)
	}
}

func TestRunMain_ExitCodes(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })
	cfg := testConfig(t, t.TempDir(), resultsCSV)
	var out bytes.Buffer
	if code := runMain([]string{"-path", cfg.Input, "-outdir", cfg.OutputDir}, &out); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if out.String() != successLine {
		t.Fatalf("stdout %q", out.String())
	}
	if code := runMain([]string{"-worker", "0"}, io.Discard); code != 2 {
		t.Fatalf("bad flag exit %d", code)
	}
}

// a failed run leaves its error in the log file and exits 1
func TestRunMain_FailureIsLogged(t *testing.T) {
	t.Cleanup(func() { zap.ReplaceGlobals(zap.NewNop()) })
	dir := t.TempDir()
	logPath := filepath.Join(dir, "manetplot.log")
	cfgPath := filepath.Join(dir, "manetplot.yaml")
	body := "logger:\n  level: error\n  filename: " + logPath + "\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "nope.csv")
	var out bytes.Buffer
	if code := runMain([]string{"-config", cfgPath, "-path", missing}, &out); code != 1 {
		t.Fatalf("exit %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout on failure: %q", out.String())
	}
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file: %v", err)
	}
	if !strings.Contains(string(b), "results file not found") || !strings.Contains(string(b), missing) {
		t.Fatalf("log lacks the failure: %s", b)
	}
}
