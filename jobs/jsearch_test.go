// jsearch_test.go - Tests for the JSearch client against a stub server

package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubServer serves a canned JSearch payload and records the request
func stubServer(t *testing.T, payload interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(payload)
	}))
}

// TestSearch tests payload reshaping, including partial locations
func TestSearch(t *testing.T) {
	payload := map[string]interface{}{
		"data": []map[string]string{
			{"job_title": "Data Scientist", "employer_name": "Acme", "job_city": "Austin", "job_state": "TX", "job_apply_link": "https://example.com/1"},
			{"job_title": "ML Engineer", "employer_name": "Globex", "job_city": "", "job_state": "CA", "job_apply_link": "https://example.com/2"},
			{"job_title": "Analyst", "employer_name": "Initech", "job_city": "Remote", "job_state": "", "job_apply_link": "https://example.com/3"},
		},
	}
	srv := stubServer(t, payload)
	defer srv.Close()

	orig := BaseURL
	defer func() { BaseURL = orig }()
	BaseURL = srv.URL
	Configure("test-key")

	listings, err := Search(context.Background(), "Data Scientist in USA")
	assert.NoError(t, err)
	if assert.Len(t, listings, 3) {
		assert.Equal(t, "Austin, TX", listings[0].Location)
		assert.Equal(t, "CA", listings[1].Location) // No city: state only
		assert.Equal(t, "Remote", listings[2].Location)
		assert.Equal(t, "https://example.com/1", listings[0].Link)
	}
}

// TestSearchCapsListings tests that at most 20 listings come back
func TestSearchCapsListings(t *testing.T) {
	var data []map[string]string
	for i := 0; i < 25; i++ {
		data = append(data, map[string]string{
			"job_title":      fmt.Sprintf("Job %d", i),
			"employer_name":  "Acme",
			"job_city":       "Austin",
			"job_state":      "TX",
			"job_apply_link": fmt.Sprintf("https://example.com/%d", i),
		})
	}
	srv := stubServer(t, map[string]interface{}{"data": data})
	defer srv.Close()

	orig := BaseURL
	defer func() { BaseURL = orig }()
	BaseURL = srv.URL
	Configure("test-key")

	listings, err := Search(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Len(t, listings, 20)
}

// TestSearchEmptyData tests that no results is a success, not an error
func TestSearchEmptyData(t *testing.T) {
	srv := stubServer(t, map[string]interface{}{"data": []map[string]string{}})
	defer srv.Close()

	orig := BaseURL
	defer func() { BaseURL = orig }()
	BaseURL = srv.URL
	Configure("test-key")

	listings, err := Search(context.Background(), "obscure role in nowhere")
	assert.NoError(t, err)
	assert.Len(t, listings, 0)
}

// TestSearchUpstreamStatus tests that a non-200 surfaces as an error
func TestSearchUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	orig := BaseURL
	defer func() { BaseURL = orig }()
	BaseURL = srv.URL
	Configure("test-key")

	_, err := Search(context.Background(), "anything")
	assert.Error(t, err)
}
