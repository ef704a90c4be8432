// jsearch.go - Client for the JSearch (RapidAPI) job-search service

package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const maxListings = 20 // Cap on listings returned per search

var (
	apiKey string // RapidAPI key, set once by Configure

	// BaseURL is a variable so tests can point the client at a stub server.
	BaseURL = "https://jsearch.p.rapidapi.com/search"

	// The API can be slow; fail the request instead of hanging past 20s.
	httpClient = &http.Client{Timeout: 20 * time.Second}
)

// Configure sets the RapidAPI key. Called once at startup.
func Configure(key string) {
	apiKey = key
}

// Listing is one job posting reshaped for the dashboard table.
type Listing struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

// searchResponse mirrors the fields of the JSearch payload we use.
type searchResponse struct {
	Data []struct {
		JobTitle     string `json:"job_title"`
		EmployerName string `json:"employer_name"`
		JobCity      string `json:"job_city"`
		JobState     string `json:"job_state"`
		JobApplyLink string `json:"job_apply_link"`
	} `json:"data"`
}

// Search queries JSearch for live job postings matching the query
// (e.g. "Data Scientist in USA") and returns up to 20 reshaped listings.
// An empty result set is a success with an empty slice.
func Search(ctx context.Context, query string) ([]Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, BaseURL, nil)
	if err != nil {
		return nil, err
	}
	q := req.URL.Query()
	q.Set("query", query)
	q.Set("page", "1")
	q.Set("num_pages", "1")
	req.URL.RawQuery = q.Encode()
	req.Header.Set("X-RapidAPI-Key", apiKey)
	req.Header.Set("X-RapidAPI-Host", "jsearch.p.rapidapi.com")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("job search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("job search returned status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("job search returned invalid JSON: %w", err)
	}

	listings := make([]Listing, 0, maxListings)
	for _, job := range result.Data {
		if len(listings) == maxListings {
			break
		}
		// "City, State" with empty parts trimmed away
		location := strings.Trim(strings.TrimSpace(job.JobCity+", "+job.JobState), ", ")
		listings = append(listings, Listing{
			Title:    job.JobTitle,
			Company:  job.EmployerName,
			Location: location,
			Link:     job.JobApplyLink,
		})
	}
	return listings, nil
}
