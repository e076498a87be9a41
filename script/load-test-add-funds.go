package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/auth"
	timeprovider "github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/time"
)

// addFundsRequest is the JSON add-funds payload
type addFundsRequest struct {
	Amount string `json:"amount"`
}

// testResult contains metrics for a single request
type testResult struct {
	Success      bool
	Replay       bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// testStats contains aggregated test statistics
type testStats struct {
	mu sync.Mutex

	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	Replays            int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	UserStats          map[string]int
}

func (s *testStats) record(r testResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Success {
		s.SuccessfulRequests++
	} else {
		s.FailedRequests++
		errMsg := "unknown"
		if r.Error != nil {
			errMsg = r.Error.Error()
		}
		s.ErrorCounts[errMsg]++
	}
	if r.Replay {
		s.Replays++
	}
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
}

func (s *testStats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.SuccessfulRequests + s.FailedRequests
}

type job struct {
	userID string
	key    string
	amount string
	replay bool
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	totalRequests := flag.Int("n", 100, "Total number of add-funds requests")
	userIDsStr := flag.String("u", "demo-user-1,demo-user-2", "Comma-separated account IDs to spread load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the service")
	secret := flag.String("secret", "dev-only-secret-change-me", "Token secret the service verifies with")
	issuer := flag.String("issuer", "wager-profile", "Token issuer the service expects")
	replayRate := flag.Float64("replay", 0.1, "Fraction of requests that resend an earlier idempotency key")
	delayMs := flag.Int("delay", 0, "Delay between requests per worker in milliseconds")
	flag.Parse()

	var userIDs []string
	for _, id := range strings.Split(*userIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		fmt.Println("no account IDs given")
		return
	}

	tokens, err := issueTokens(*secret, *issuer, userIDs)
	if err != nil {
		fmt.Printf("failed to issue tokens: %v\n", err)
		return
	}

	fmt.Printf("Load testing POST /api/profile/funds across %d accounts\n", len(userIDs))
	fmt.Printf("Concurrency: %d, requests: %d, replay rate: %.0f%%\n", *concurrency, *totalRequests, *replayRate*100)

	stats := &testStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ErrorCounts:   make(map[string]int),
		UserStats:     make(map[string]int),
	}

	jobs := make(chan job, *totalRequests)
	for _, j := range planJobs(*totalRequests, userIDs, *replayRate) {
		stats.UserStats[j.userID]++
		jobs <- j
	}
	close(jobs)

	client := &http.Client{Timeout: 10 * time.Second}
	delay := time.Duration(*delayMs) * time.Millisecond

	var wg sync.WaitGroup
	startTime := time.Now()
	for range *concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if delay > 0 {
					time.Sleep(delay)
				}
				stats.record(send(client, *baseURL, tokens[j.userID], j))
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fmt.Printf("Progress: %d/%d requests completed\n", stats.completed(), stats.TotalRequests)
			case <-done:
				return
			}
		}
	}()

	wg.Wait()
	close(done)
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func issueTokens(secret, issuer string, userIDs []string) (map[string]string, error) {
	service := auth.NewTokenService(secret, issuer, timeprovider.NewRealTimeProvider())

	tokens := make(map[string]string, len(userIDs))
	for _, id := range userIDs {
		token, err := service.Issue(&entity.Identity{ID: id, DisplayName: "Load Test " + id}, time.Hour)
		if err != nil {
			return nil, err
		}
		tokens[id] = token
	}
	return tokens, nil
}

// planJobs builds the request mix. Replays reuse an earlier key for the
// same account and must not credit twice.
func planJobs(n int, userIDs []string, replayRate float64) []job {
	amounts := []string{"5.00", "10.00", "25.50", "100.00"}
	jobs := make([]job, 0, n)

	for i := range n {
		if i > 0 && rand.Float64() < replayRate {
			earlier := jobs[rand.IntN(len(jobs))]
			earlier.replay = true
			jobs = append(jobs, earlier)
			continue
		}
		jobs = append(jobs, job{
			userID: userIDs[rand.IntN(len(userIDs))],
			key:    uuid.NewString(),
			amount: amounts[rand.IntN(len(amounts))],
		})
	}
	return jobs
}

func send(client *http.Client, baseURL, token string, j job) testResult {
	body, err := json.Marshal(addFundsRequest{Amount: j.amount})
	if err != nil {
		return testResult{Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/profile/funds", bytes.NewReader(body))
	if err != nil {
		return testResult{Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", j.key)

	startTime := time.Now()
	resp, err := client.Do(req)
	result := testResult{ResponseTime: time.Since(startTime), Replay: j.replay}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[min(len(sorted)*p/100, len(sorted)-1)]
}

func printResults(stats *testStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	tps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %s\n", humanize.Comma(int64(stats.TotalRequests)))
	fmt.Printf("Successful Requests: %s\n", humanize.Comma(int64(stats.SuccessfulRequests)))
	fmt.Printf("Failed Requests:     %s\n", humanize.Comma(int64(stats.FailedRequests)))
	fmt.Printf("Idempotent Replays:  %s\n", humanize.Comma(int64(stats.Replays)))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f successful requests/s\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average: %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Min:     %v\n", sorted[0])
		fmt.Printf("Max:     %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50:     %v\n", percentile(sorted, 50))
	fmt.Printf("P90:     %v\n", percentile(sorted, 90))
	fmt.Printf("P99:     %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	for userID, count := range stats.UserStats {
		fmt.Printf("%-20s: %d requests\n", userID, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
	}
}
