// Package main provides a performance benchmarking tool for the streak CLI.
// It measures execution times across different repositories and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - streak binary installed and available in PATH
// - Test repositories cloned to the specified base directory
//
// Usage: go run benchmark/main.go [repo-base-dir] [author-email]
//
//	repo-base-dir: Directory containing candidate Git repositories
//	author-email:  Author whose contributions are aggregated
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Repository  string
	Command     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	RepoBase    string
	Email       string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	TestRepos   []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 3 {
		fmt.Printf("Usage: %s [repo-base-dir] [author-email]\n", os.Args[0])
		os.Exit(1)
	}
	repoBase := os.Args[1]
	email := os.Args[2]

	repos, err := discoverRepos(repoBase)
	if err != nil {
		fmt.Printf("Repository discovery failed: %v\n", err)
		os.Exit(1)
	}

	config := BenchmarkConfig{
		RepoBase:    repoBase,
		Email:       email,
		Timeout:     5 * time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		TestRepos:   repos,
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear the cache using streak cache clear
	fmt.Printf("Clearing cache...\n")
	clearCmd := exec.Command("streak", "cache", "clear")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear cache: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Cache cleared successfully\n")
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// discoverRepos lists the Git repositories directly under repoBase.
func discoverRepos(repoBase string) ([]string, error) {
	entries, err := os.ReadDir(repoBase)
	if err != nil {
		return nil, err
	}

	var repos []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(repoBase, entry.Name(), ".git")); err == nil {
			repos = append(repos, entry.Name())
		}
	}
	if len(repos) == 0 {
		return nil, fmt.Errorf("no Git repositories found under %s", repoBase)
	}
	return repos, nil
}

// checkPrerequisites verifies that the streak binary and test repositories exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if streak is available
	if _, err := exec.LookPath("streak"); err != nil {
		return fmt.Errorf("streak binary not found in PATH")
	}

	// Check if repositories exist
	for _, repo := range config.TestRepos {
		repoPath := filepath.Join(config.RepoBase, repo)
		if _, err := os.Stat(repoPath); os.IsNotExist(err) {
			return fmt.Errorf("repository %s not found at %s", repo, repoPath)
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across discovered repositories
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d repos, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.TestRepos), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	for _, repo := range config.TestRepos {
		fmt.Printf("Benchmarking %s\n", repo)

		repoPath := filepath.Join(config.RepoBase, repo)

		// Each repository gets its own throwaway registry so results
		// stay comparable and the user registry is never touched.
		registryPath := filepath.Join(os.TempDir(), fmt.Sprintf("streak_bench_%s.txt", repo))
		_ = os.Remove(registryPath)
		addCmd := exec.Command("streak", "repos", "add", repoPath,
			"--registry", registryPath, "--email", config.Email)
		if output, err := addCmd.CombinedOutput(); err != nil {
			fmt.Printf("Warning: failed to register %s: %v\nOutput: %s\n", repo, err, string(output))
			continue
		}

		// Calendar rendering
		result := runBenchmarkSuite(config, repo, registryPath, "graph", "calendar rendering", "")
		results = append(results, result)

		// Per-repository stats
		result = runBenchmarkSuite(config, repo, registryPath, "stats", "per-repository stats", "")
		results = append(results, result)

		// Day breakdown export
		result = runBenchmarkSuite(config, repo, registryPath, "export", "JSON day export", "--output json")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a command
func runBenchmarkSuite(config BenchmarkConfig, repo, registryPath, command, description, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, repo)

	// Helper to run a benchmark phase
	runPhase := func(cacheBackend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, registryPath, command, extraArgs, cacheBackend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase("none", config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase("sqlite", config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Repository:  repo,
		Command:     command,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a streak command multiple times with the specified cache backend and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, registryPath, command, extraArgs, cacheBackend string, numRuns int) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	args := []string{command, config.Email, "--registry", registryPath, "--cache-backend", cacheBackend}
	if extraArgs != "" {
		args = append(args, parseArgs(extraArgs)...)
	}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("streak", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, command) {
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

func parseArgs(argsStr string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, r := range argsStr {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes && current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			} else if inQuotes {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, command string) bool {
	outputStr := string(output)

	switch command {
	case "graph":
		return strings.Contains(outputStr, "contributions")
	case "stats":
		return strings.Contains(outputStr, "commits in the last six months")
	case "export":
		return strings.Contains(outputStr, `"days"`)
	default:
		return false
	}
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/streak_benchmark_%s.csv", timestamp)

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
	if err := writer.Write([]string{"repo", "cmd", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Repository, result.Command, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "graph", "Calendar Rendering:")
	printCommandSummary(results, "stats", "Repository Stats:")
	printCommandSummary(results, "export", "Day Export:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-cache: %s, Cold: %s, Warm: %s\n", result.Repository, result.NoCacheTime, result.ColdTime, result.WarmTime)
		}
	}
}
