package reputation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"custodian-hq/custodian/pkg/ratelimit"
)

// DefaultBaseURL is the VirusTotal v3 API base URL.
const DefaultBaseURL = "https://www.virustotal.com/api/v3"

// ErrHashNotFound is returned by Client.Lookup when the hash has never been
// seen by the reputation service. The resolver maps it to VerdictUnknown;
// it is exported so callers that want to distinguish "never seen" from
// transport failure can do so.
var ErrHashNotFound = fmt.Errorf("hash not found")

// ClientConfig configures the VirusTotal client.
type ClientConfig struct {
	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string

	// APIKey is the x-apikey credential.
	APIKey string

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration

	// MaxConcurrent caps in-flight lookups. Defaults to 4.
	MaxConcurrent int

	// RequestsPerMinute paces lookups to stay inside the endpoint's quota.
	// Zero disables pacing.
	RequestsPerMinute int
}

// Client is an HTTP client for the VirusTotal file-report endpoint with
// connection pooling, client-side pacing, and a cap on in-flight requests.
type Client struct {
	config      ClientConfig
	client      *http.Client
	concurrency *ratelimit.ConcurrentLimiter
	pacer       *rate.Limiter
}

// NewClient creates a reputation lookup client.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxConcurrent <= 0 {
		config.MaxConcurrent = 4
	}

	transport := &http.Transport{
		MaxIdleConns:        config.MaxConcurrent,
		MaxIdleConnsPerHost: config.MaxConcurrent,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	pacer := rate.NewLimiter(rate.Inf, 1)
	if config.RequestsPerMinute > 0 {
		pacer = rate.NewLimiter(
			rate.Every(time.Minute/time.Duration(config.RequestsPerMinute)),
			1,
		)
	}

	return &Client{
		config: config,
		client: &http.Client{
			Transport: transport,
			Timeout:   config.Timeout,
		},
		concurrency: ratelimit.NewConcurrentLimiter(config.MaxConcurrent),
		pacer:       pacer,
	}
}

// fileReport is the subset of the VirusTotal v3 file object we consume.
type fileReport struct {
	Data struct {
		Attributes struct {
			LastAnalysisStats struct {
				Malicious int `json:"malicious"`
			} `json:"last_analysis_stats"`
		} `json:"attributes"`
	} `json:"data"`
}

// Lookup fetches the file report for a hex-encoded content hash and maps it
// to a verdict. It returns ErrHashNotFound for a 404 and a wrapped error for
// any other failure; it never retries.
func (c *Client) Lookup(ctx context.Context, hash string) (Result, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return Result{}, err
	}

	if err := c.concurrency.Acquire(ctx); err != nil {
		return Result{}, err
	}
	defer c.concurrency.Release()

	url := fmt.Sprintf("%s/files/%s", c.config.BaseURL, hash)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-apikey", c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Fall through to decode

	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return Result{}, ErrHashNotFound

	default:
		io.Copy(io.Discard, resp.Body)
		return Result{}, fmt.Errorf("lookup returned status %d", resp.StatusCode)
	}

	var report fileReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return Result{}, fmt.Errorf("failed to decode lookup response: %w", err)
	}

	malicious := report.Data.Attributes.LastAnalysisStats.Malicious
	if malicious > 0 {
		return Result{Verdict: VerdictMalicious, MaliciousCount: malicious}, nil
	}
	return Result{Verdict: VerdictClean}, nil
}
