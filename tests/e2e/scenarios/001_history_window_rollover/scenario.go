package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic traffic and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalRequests  = 1500 // Requests sent by the scenario, more than the default history capacity
	missingEvery   = 10   // Every Nth request targets an unknown route and returns 404
	healthPath     = "/api/health"
	missingPath    = "/api/e2e-missing"
	adminPath      = "/api/admin/metrics"
	scenarioClient = "portfolio-api-e2e/1.0"
)

// ### End - fixed configs

type metricsReport struct {
	Success             bool             `json:"success"`
	Timestamp           time.Time        `json:"timestamp"`
	TotalRequests       int64            `json:"totalRequests"`
	ErrorRequests       int64            `json:"errorRequests"`
	AvgDurationMs       int64            `json:"avgDurationMs"`
	P95DurationMs       int64            `json:"p95DurationMs"`
	P50DurationMs       int64            `json:"p50DurationMs"`
	HistorySize         int              `json:"historySize"`
	Capacity            int              `json:"capacity"`
	LastN               []requestMetric  `json:"lastN"`
	RequestsByPath      map[string]int64 `json:"requestsByPath"`
	RequestsByUserAgent map[string]int64 `json:"requestsByUserAgent"`
}

type requestMetric struct {
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	URL        string    `json:"url"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"durationMs"`
}

// main runs the e2e scenario: 001_history_window_rollover
//
// This scenario drives a running portfolio-api server past its history capacity
// and checks the admin metrics report against the traffic it sent.
//
// What it tests:
//   - Every completed request is recorded by the metrics middleware, 404s included
//   - Lifetime counters keep growing after the history window is full
//   - The history window is capped at its capacity and keeps the newest requests
//   - The report breakdowns are computed over the retained window only
//
// Expected results (deltas against a baseline report taken before sending traffic):
//   - totalRequests grows by totalRequests+1 (the baseline report request is recorded too)
//   - errorRequests grows by totalRequests/missingEvery
//   - historySize == min(total, capacity) and len(lastN) == historySize
//   - requestsByPath values sum to historySize
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:3001") // Base URL of the portfolio-api server
	parallel := getEnvInt("PARALLEL", 8)                    // Number of concurrent requests

	fmt.Println("Starting e2e scenario: 001_history_window_rollover")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_REQUESTS: %d\n", totalRequests)
	fmt.Println()

	client := &http.Client{Timeout: 10 * time.Second}

	baseline, err := fetchReport(client, baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch baseline report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Baseline: totalRequests=%d errorRequests=%d capacity=%d\n",
		baseline.TotalRequests, baseline.ErrorRequests, baseline.Capacity)

	// Create worker pool for parallel requests
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var okRequests int64       // 200 status code
	var notFoundRequests int64 // 404 status code
	var failedRequests int64   // transport errors or unexpected statuses

	for i := 1; i <= totalRequests; i++ {
		path := healthPath
		expectedStatus := http.StatusOK
		if i%missingEvery == 0 {
			path = missingPath
			expectedStatus = http.StatusNotFound
		}

		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(path string, expectedStatus int) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			statusCode, err := sendRequest(client, baseURL+path)
			if err != nil || statusCode != expectedStatus {
				atomic.AddInt64(&failedRequests, 1)
				fmt.Fprintf(os.Stderr, "ERROR: GET %s returned %d (err=%v)\n", path, statusCode, err)
				return
			}
			if statusCode == http.StatusOK {
				atomic.AddInt64(&okRequests, 1)
			} else {
				atomic.AddInt64(&notFoundRequests, 1)
			}
		}(path, expectedStatus)
	}

	wg.Wait()

	if failed := atomic.LoadInt64(&failedRequests); failed > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d requests failed\n", failed)
		os.Exit(1)
	}

	report, err := fetchReport(client, baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to fetch report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("OK requests: %d\n", atomic.LoadInt64(&okRequests))
	fmt.Printf("Not found requests: %d\n", atomic.LoadInt64(&notFoundRequests))
	fmt.Printf("Report: totalRequests=%d errorRequests=%d avg=%dms p50=%dms p95=%dms historySize=%d\n",
		report.TotalRequests, report.ErrorRequests, report.AvgDurationMs, report.P50DurationMs, report.P95DurationMs, report.HistorySize)
	fmt.Println()

	if errs := verify(baseline, report); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Println("Scenario completed successfully")
}

func verify(baseline, report *metricsReport) []error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	expectedTotal := baseline.TotalRequests + totalRequests + 1
	expectedErrors := baseline.ErrorRequests + totalRequests/missingEvery
	expectedHistory := report.Capacity
	if expectedTotal < int64(report.Capacity) {
		expectedHistory = int(expectedTotal)
	}

	check(report.Success, "success should be true")
	check(report.TotalRequests == expectedTotal, "totalRequests: got %d, want %d", report.TotalRequests, expectedTotal)
	check(report.ErrorRequests == expectedErrors, "errorRequests: got %d, want %d", report.ErrorRequests, expectedErrors)
	check(report.HistorySize == expectedHistory, "historySize: got %d, want %d", report.HistorySize, expectedHistory)
	check(len(report.LastN) == report.HistorySize, "len(lastN): got %d, want %d", len(report.LastN), report.HistorySize)
	check(report.P95DurationMs >= report.P50DurationMs, "p95 (%d) should not be below p50 (%d)", report.P95DurationMs, report.P50DurationMs)

	var pathTotal int64
	for _, count := range report.RequestsByPath {
		pathTotal += count
	}
	check(pathTotal == int64(report.HistorySize), "requestsByPath sums to %d, want %d", pathTotal, report.HistorySize)

	return errs
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func sendRequest(client *http.Client, url string) (int, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", scenarioClient)

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func fetchReport(client *http.Client, baseURL string) (*metricsReport, error) {
	resp, err := client.Get(baseURL + adminPath)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var report metricsReport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
