package servicem8

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.servicem8.com/api_1.0"

// Client is a minimal ServiceM8 REST client. Callers treat every failure as
// best-effort: the local write has already committed, so errors are logged
// and swallowed at the service layer, never surfaced to the HTTP response.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a client authenticating with the given API key. An empty
// baseURL selects the public ServiceM8 endpoint.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// CreateClient creates a company record for a newly registered user.
func (c *Client) CreateClient(data CompanyData) (*Response, error) {
	return c.post("/company.json", data)
}

// CreateJob creates a job record for a newly created booking.
func (c *Client) CreateJob(data JobData) (*Response, error) {
	return c.post("/job.json", data)
}

func (c *Client) post(path string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.New("ServiceM8 API returned non-OK status: " + resp.Status)
	}

	var apiResp Response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	return &apiResp, nil
}
