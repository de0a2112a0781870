// Package main provides a performance benchmarking tool for the creditlens CLI.
// It measures execution times for the scoring commands across history lengths
// and worker counts, running each combination multiple times, treating the first
// successful run as cold and averaging the rest as warm, generating CSV output
// for performance analysis and documentation.
//
// Prerequisites:
// - creditlens binary installed and available in PATH
//
// Usage: go run benchmark/main.go
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Command  string
	Years    int
	Workers  int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Timeout     time.Duration
	Runs        int
	YearCounts  []int
	WorkerCount []int
}

func main() {
	config := BenchmarkConfig{
		Timeout:     2 * time.Minute,
		Runs:        4,
		YearCounts:  []int{5, 10, 20},
		WorkerCount: []int{1, 4, 8},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the creditlens binary exists.
func checkPrerequisites() error {
	if _, err := exec.LookPath("creditlens"); err != nil {
		return fmt.Errorf("creditlens binary not found in PATH")
	}
	return nil
}

// runBenchmarks executes all benchmark combinations.
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %v timeout, %d runs per combination\n",
		config.Timeout, config.Runs)

	for _, years := range config.YearCounts {
		for _, workers := range config.WorkerCount {
			fmt.Printf("Benchmarking rankings with %d years, %d workers\n", years, workers)
			result := runBenchmarkSuite(config, "rankings", years, workers)
			results = append(results, result)
		}
	}

	// Single-institution scoring is worker-independent, so vary years only.
	for _, years := range config.YearCounts {
		fmt.Printf("Benchmarking score with %d years\n", years)
		result := runBenchmarkSuite(config, "score", years, 1)
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs one command combination and splits cold/warm timings.
func runBenchmarkSuite(config BenchmarkConfig, command string, years, workers int) BenchmarkResult {
	cold, times := runBenchmark(config, command, years, workers)

	warmAvg := "TIMEOUT"
	if len(times) > 0 {
		var sum float64
		for _, t := range times {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	coldStr := "TIMEOUT"
	if cold > 0 {
		coldStr = fmt.Sprintf("%.3fs", cold)
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldStr, warmAvg)

	return BenchmarkResult{
		Command:  command,
		Years:    years,
		Workers:  workers,
		ColdTime: coldStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a creditlens command multiple times and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, command string, years, workers int) (coldTime float64, warmTimes []float64) {
	args := []string{command, "--years", fmt.Sprint(years), "--workers", fmt.Sprint(workers)}
	if command == "score" {
		args = append(args, "JPMorgan Chase & Co.")
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("creditlens", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Analysis completed in") &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/creditlens_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"cmd", "years", "workers", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{result.Command, fmt.Sprint(result.Years), fmt.Sprint(result.Workers), result.ColdTime, result.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "rankings", "Rankings:")
	printCommandSummary(results, "score", "Score:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  years=%-3d workers=%-3d: Cold: %s, Warm: %s\n", result.Years, result.Workers, result.ColdTime, result.WarmTime)
		}
	}
}
