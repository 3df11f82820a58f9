// Command apitest smoke-tests a running liturgical calendar API.
//
// It checks the fixed endpoints, then walks every day of the requested years
// through the range endpoint and compares each answer with a local computation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/zapponejosh/liturgical-calendar/internal/calendar"
)

// APIResponse matches the server's response envelope.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

// ErrorInfo matches the server's error details.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// TestRunner issues requests and tallies results.
type TestRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	verbose      bool
	expected     *calendar.Provider
	successCount int
	errorCount   int
	errors       []string
}

// NewTestRunner creates a runner against baseURL.
func NewTestRunner(baseURL string, out io.Writer, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 30 * time.Second},
		out:      out,
		verbose:  verbose,
		expected: calendar.NewProvider(),
	}
}

// Run executes every check for the given years.
func (tr *TestRunner) Run(firstYear, lastYear int) {
	tr.printSection("Health")
	tr.testHealth()

	tr.printSection("Fixed scenarios")
	tr.testScenarios()

	tr.printSection("Invalid input")
	tr.testEdgeCases()

	tr.printSection(fmt.Sprintf("Coverage %d-%d", firstYear, lastYear))
	for year := firstYear; year <= lastYear; year++ {
		tr.testYear(year)
	}

	tr.printSummary()
}

// Failed reports whether any check failed.
func (tr *TestRunner) Failed() bool {
	return tr.errorCount > 0
}

func (tr *TestRunner) testHealth() {
	var health map[string]string
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("health", err.Error())
		return
	}
	if health["status"] != "healthy" {
		tr.recordError("health", fmt.Sprintf("status = %q", health["status"]))
		return
	}
	tr.recordSuccess("health ok")
}

func (tr *TestRunner) testScenarios() {
	scenarios := []struct {
		date    string
		season  calendar.Season
		dayName string
	}{
		{"2024-08-15", calendar.SeasonOrdinaryTime, ""},
		{"2024-12-25", calendar.SeasonChristmas, ""},
		{"2025-01-01", calendar.SeasonChristmas, ""},
		{"2024-03-28", calendar.SeasonLent, calendar.DayNameHolyWeek},
	}

	for _, s := range scenarios {
		var day calendar.Day
		if err := tr.getData("/api/v1/liturgical/date/"+s.date, &day); err != nil {
			tr.recordError(s.date, err.Error())
			continue
		}
		if day.Season != s.season || day.DayName != s.dayName {
			tr.recordError(s.date, fmt.Sprintf("got %s/%q, want %s/%q", day.Season, day.DayName, s.season, s.dayName))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s is %s", s.date, day.Season))
	}
}

func (tr *TestRunner) testEdgeCases() {
	for _, path := range []string{
		"/api/v1/liturgical/date/2024-02-30",
		"/api/v1/liturgical/date/not-a-date",
		"/api/v1/liturgical/range?start=2024-02-01&end=2024-01-01",
		"/api/v1/liturgical/year/12",
	} {
		resp, err := tr.client.Get(tr.baseURL + path)
		if err != nil {
			tr.recordError(path, err.Error())
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			tr.recordError(path, fmt.Sprintf("status = %d, want 400", resp.StatusCode))
			continue
		}
		tr.recordSuccess(path + " rejected")
	}
}

// testYear fetches a year in chunks small enough for the range limit and
// compares every day with the local computation.
func (tr *TestRunner) testYear(year int) {
	start := calendar.NewDate(year, time.January, 1)
	end := calendar.NewDate(year, time.December, 31)

	mismatches := 0
	for chunk := start; !chunk.After(end); chunk = chunk.AddDays(60) {
		chunkEnd := chunk.AddDays(59)
		if chunkEnd.After(end) {
			chunkEnd = end
		}

		var got struct {
			Days []calendar.Day `json:"days"`
		}
		path := fmt.Sprintf("/api/v1/liturgical/range?start=%s&end=%s", chunk, chunkEnd)
		if err := tr.getData(path, &got); err != nil {
			tr.recordError(path, err.Error())
			return
		}

		for _, day := range got.Days {
			want := tr.expected.InfoForDate(day.Date)
			if day.Info != want {
				mismatches++
				tr.recordError(day.Date.String(), fmt.Sprintf("got %+v, want %+v", day.Info, want))
			}
		}
	}

	if mismatches == 0 {
		tr.recordSuccess(fmt.Sprintf("%d: every day matches", year))
	}
}

// getData GETs path and decodes the envelope's data into target.
func (tr *TestRunner) getData(path string, target any) error {
	resp, err := tr.client.Get(tr.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !apiResp.Success {
		if apiResp.Error != nil {
			return fmt.Errorf("status %d: %s (%s)", resp.StatusCode, apiResp.Error.Message, apiResp.Error.Code)
		}
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return json.Unmarshal(apiResp.Data, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintf(tr.out, "\n== %s ==\n", name)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	if tr.verbose {
		fmt.Fprintf(tr.out, "  ok   %s\n", msg)
	}
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	tr.errors = append(tr.errors, fmt.Sprintf("%s: %s", context, msg))
	fmt.Fprintf(tr.out, "  FAIL %s: %s\n", context, msg)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintf(tr.out, "\n%d passed, %d failed\n", tr.successCount, tr.errorCount)
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	first := flag.Int("start", time.Now().Year(), "First year to cover")
	last := flag.Int("end", time.Now().Year(), "Last year to cover")
	verbose := flag.Bool("v", false, "Print passing checks")
	flag.Parse()

	tr := NewTestRunner(*baseURL, os.Stdout, *verbose)
	tr.Run(*first, *last)

	if tr.Failed() {
		os.Exit(1)
	}
}
