// Package hh implements a client for the hh.ru-style vacancy search API
// used by the bulk importer.
package hh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jobvault/vacancy-service/internal/apperr"
)

// Vacancy is one record mapped out of a search response, with every field
// already default-filled.
type Vacancy struct {
	Title          string
	Status         string
	CompanyName    string
	CompanyAddress string
	LogoURL        string
	Description    string
}

// Field defaults applied when the upstream record omits a value. Kept in one
// place so the mapping is consulted exactly once per record.
var fieldDefaults = map[string]string{
	"employer": "Not specified",
	"address":  "Not specified",
	"schedule": "Not specified",
}

// Client calls the vacancy search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given API base URL. A nil httpClient
// falls back to a 10-second-timeout default.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// searchResponse mirrors the upstream JSON shape. Pointers distinguish
// omitted objects from empty ones.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Name     string `json:"name"`
	Employer *struct {
		Name     string `json:"name"`
		LogoURLs *struct {
			Original string `json:"original"`
		} `json:"logo_urls"`
	} `json:"employer"`
	Address *struct {
		Raw string `json:"raw"`
	} `json:"address"`
	Schedule *struct {
		Name string `json:"name"`
	} `json:"schedule"`
	Snippet *struct {
		Requirement    string `json:"requirement"`
		Responsibility string `json:"responsibility"`
	} `json:"snippet"`
}

// Search queries vacancies matching text, returning at most limit records.
// A non-200 response or transport failure yields apperr.ErrUpstreamUnavailable;
// individual records without a name are skipped, not fatal.
func (c *Client) Search(ctx context.Context, text string, limit int) ([]Vacancy, error) {
	q := url.Values{}
	q.Set("text", text)
	q.Set("per_page", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/vacancies?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperr.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", apperr.ErrUpstreamUnavailable, err)
	}

	vacancies := make([]Vacancy, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.Name == "" {
			continue
		}
		vacancies = append(vacancies, mapItem(item))
	}
	return vacancies, nil
}

func mapItem(item searchItem) Vacancy {
	v := Vacancy{
		Title:          item.Name,
		Status:         fieldDefaults["schedule"],
		CompanyName:    fieldDefaults["employer"],
		CompanyAddress: fieldDefaults["address"],
	}

	if item.Employer != nil && item.Employer.Name != "" {
		v.CompanyName = item.Employer.Name
	}
	if item.Employer != nil && item.Employer.LogoURLs != nil {
		v.LogoURL = item.Employer.LogoURLs.Original
	}
	if item.Address != nil && item.Address.Raw != "" {
		v.CompanyAddress = item.Address.Raw
	}
	if item.Schedule != nil && item.Schedule.Name != "" {
		v.Status = item.Schedule.Name
	}
	if item.Snippet != nil {
		v.Description = item.Snippet.Requirement
		if v.Description == "" {
			v.Description = item.Snippet.Responsibility
		}
	}
	return v
}
