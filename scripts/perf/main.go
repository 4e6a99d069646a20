// SPDX-License-Identifier: MIT

// Command perf runs the tag rendering benchmarks and appends the results
// to a JSON lines history so runs can be compared over time.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type benchmarkMetric struct {
	NsPerOp     float64 `json:"ns_per_op"`
	BPerOp      float64 `json:"b_per_op,omitempty"`
	AllocsPerOp float64 `json:"allocs_per_op,omitempty"`
}

type runRecord struct {
	Timestamp  string                     `json:"timestamp"`
	Commit     string                     `json:"commit"`
	GoVersion  string                     `json:"go_version"`
	Packages   []string                   `json:"packages"`
	Bench      string                     `json:"bench"`
	Benchtime  string                     `json:"benchtime"`
	Count      int                        `json:"count"`
	Benchmarks map[string]benchmarkMetric `json:"benchmarks"`
}

type options struct {
	historyPath string
	rawDir      string
	packages    []string
	bench       string
	benchtime   string
	count       int
}

const defaultPackages = "./internal/markup,./internal/shellgen,./internal/termstyle"

var benchmarkLinePattern = regexp.MustCompile(`^(Benchmark\S+)\s+\d+\s+([0-9.]+)\s+ns/op(?:\s+([0-9.]+)\s+B/op\s+([0-9.]+)\s+allocs/op)?`)

func main() {
	historyPath := flag.String("history", "perf/history.jsonl", "path to benchmark history jsonl")
	rawDir := flag.String("raw-dir", "perf/runs", "directory for raw benchmark logs")
	packageCSV := flag.String("packages", defaultPackages, "comma-separated benchmark packages")
	benchPattern := flag.String("bench", ".", "go test -bench pattern")
	benchtime := flag.String("benchtime", "100ms", "go test benchmark time (for example: 1x, 500ms, 2s)")
	count := flag.Int("count", 5, "go test benchmark count")
	flag.Parse()

	opts := options{
		historyPath: *historyPath,
		rawDir:      *rawDir,
		packages:    splitCSV(*packageCSV),
		bench:       *benchPattern,
		benchtime:   *benchtime,
		count:       *count,
	}
	if len(opts.packages) == 0 {
		fmt.Fprintln(os.Stderr, "no benchmark packages provided")
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	rawOutput, err := runBenchmarks(opts.packages, opts.bench, opts.benchtime, opts.count)
	if err != nil {
		return err
	}
	metrics, err := parseBenchmarkMetrics(rawOutput)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	record := runRecord{
		Timestamp:  now.Format(time.RFC3339),
		Commit:     commandOutput("git", "rev-parse", "--short", "HEAD"),
		GoVersion:  commandOutput("go", "version"),
		Packages:   opts.packages,
		Bench:      opts.bench,
		Benchtime:  opts.benchtime,
		Count:      opts.count,
		Benchmarks: metrics,
	}

	if err := os.MkdirAll(opts.rawDir, 0o755); err != nil {
		return fmt.Errorf("create raw dir: %w", err)
	}
	rawFile := filepath.Join(opts.rawDir, now.Format("20060102T150405Z")+".txt")
	if err := os.WriteFile(rawFile, []byte(rawOutput), 0o644); err != nil {
		return fmt.Errorf("write raw log: %w", err)
	}

	previous, _ := loadLastRecord(opts.historyPath)
	if err := appendRecord(opts.historyPath, record); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	fmt.Printf("saved raw benchmark log: %s\n", rawFile)
	fmt.Printf("updated benchmark history: %s\n", opts.historyPath)
	fmt.Print(summary(record, previous))
	return nil
}

func runBenchmarks(packages []string, bench, benchtime string, count int) (string, error) {
	args := []string{
		"test",
		"-run=^$",
		"-bench=" + bench,
		"-benchmem",
		"-benchtime=" + benchtime,
		fmt.Sprintf("-count=%d", count),
	}
	args = append(args, packages...)
	cmd := exec.Command("go", args...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("benchmark run failed: %w\n%s", err, output.String())
	}
	return output.String(), nil
}

// parseBenchmarkMetrics keeps the last result for each benchmark name
// when -count repeats a benchmark.
func parseBenchmarkMetrics(raw string) (map[string]benchmarkMetric, error) {
	metrics := make(map[string]benchmarkMetric)
	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		match := benchmarkLinePattern.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if len(match) == 0 {
			continue
		}
		entry := benchmarkMetric{NsPerOp: parseFloat(match[2])}
		if match[3] != "" {
			entry.BPerOp = parseFloat(match[3])
		}
		if match[4] != "" {
			entry.AllocsPerOp = parseFloat(match[4])
		}
		metrics[match[1]] = entry
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(metrics) == 0 {
		return nil, fmt.Errorf("no benchmark metrics found in output")
	}
	return metrics, nil
}

func parseFloat(v string) float64 {
	var out float64
	_, _ = fmt.Sscanf(v, "%f", &out)
	return out
}

func commandOutput(name string, args ...string) string {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func splitCSV(in string) []string {
	parts := strings.Split(in, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func appendRecord(path string, record runRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	line, err := json.Marshal(record)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func loadLastRecord(path string) (*runRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var last string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			last = line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if last == "" {
		return nil, fmt.Errorf("history file is empty")
	}
	var record runRecord
	if err := json.Unmarshal([]byte(last), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// summary lists ns/op per benchmark, sorted by name, with the change
// against previous when it has the same benchmark.
func summary(current runRecord, previous *runRecord) string {
	names := make([]string, 0, len(current.Benchmarks))
	for name := range current.Benchmarks {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("benchmark summary (ns/op):\n")
	for _, name := range names {
		metric := current.Benchmarks[name]
		var prev benchmarkMetric
		ok := false
		if previous != nil {
			prev, ok = previous.Benchmarks[name]
		}
		if !ok || prev.NsPerOp == 0 {
			fmt.Fprintf(&b, "  %-40s %.2f\n", name, metric.NsPerOp)
			continue
		}
		deltaPct := ((metric.NsPerOp - prev.NsPerOp) / prev.NsPerOp) * 100
		fmt.Fprintf(&b, "  %-40s %.2f (%+.2f%% vs previous)\n", name, metric.NsPerOp, deltaPct)
	}
	return b.String()
}
