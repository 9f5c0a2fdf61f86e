package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hpc-toolchain/license-manager/pkg/models"
)

// Config configures the ledger client.
type Config struct {
	// BaseURL is the ledger root including the base path, e.g.
	// "http://ledger.internal/lm".
	BaseURL string

	// AuthDomain is the identity provider host, e.g. "tenant.auth0.com".
	// A bare host is reached over https.
	AuthDomain string

	ClientID     string
	ClientSecret string
	Audience     string

	// CacheDir overrides where the access token is cached on disk.
	// Empty means $HOME/.cache/license-manager.
	CacheDir string

	// Timeout bounds each HTTP request. Zero means 30 seconds.
	Timeout time.Duration
}

// Client is an authenticated HTTP client for the ledger API. The access
// token is acquired lazily on the first request and cached in memory and
// on disk.
type Client struct {
	cfg  Config
	http *http.Client

	mu    sync.Mutex
	token string
	cache *TokenCache
}

// NewClient creates a ledger client. No network traffic happens until the
// first request.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	cache, err := NewTokenCache(cfg.CacheDir)
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		cache: cache,
	}, nil
}

// AcquireToken returns a usable access token, fetching a fresh one from
// the identity provider only when neither the in-memory token nor the
// on-disk cache can serve.
func (c *Client) AcquireToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && tokenUsable(c.token) {
		return c.token, nil
	}

	if token := c.cache.Load(); token != "" {
		c.token = token
		return token, nil
	}

	token, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}
	if err := c.cache.Save(token); err != nil {
		slog.Warn("Could not persist access token cache", "error", err)
	}
	c.token = token
	return token, nil
}

type oauthTokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	Audience     string `json:"audience"`
}

type oauthTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// fetchToken runs the client-credentials exchange against the identity
// provider. Caller holds c.mu.
func (c *Client) fetchToken(ctx context.Context) (string, error) {
	body, err := json.Marshal(oauthTokenRequest{
		GrantType:    "client_credentials",
		ClientID:     c.cfg.ClientID,
		ClientSecret: c.cfg.ClientSecret,
		Audience:     c.cfg.Audience,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthToken, err)
	}

	url := c.cfg.AuthDomain
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}
	url += "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthToken, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthToken, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: identity provider answered %d", ErrAuthToken, resp.StatusCode)
	}

	var tokenResp oauthTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthToken, err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: identity provider returned an empty token", ErrAuthToken)
	}
	return tokenResp.AccessToken, nil
}

// do issues one authenticated request against the ledger. in is marshalled
// as the JSON body when non-nil; out, when non-nil, receives the decoded
// response body. Statuses outside 2xx map to ErrBackendConnection.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	token, err := c.AcquireToken(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+"/api/v1"+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendConnection, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s %s answered %d: %s", ErrBackendConnection, method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: bad response body: %v", ErrBackendConnection, err)
		}
	}
	return nil
}

// Get issues an authenticated GET on a /api/v1 path.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues an authenticated POST on a /api/v1 path.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put issues an authenticated PUT on a /api/v1 path.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// Patch issues an authenticated PATCH on a /api/v1 path.
func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPatch, path, in, out)
}

// Delete issues an authenticated DELETE on a /api/v1 path.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// Health probes the ledger's unauthenticated health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendConnection, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: health endpoint answered %d", ErrBackendConnection, resp.StatusCode)
	}
	return nil
}

// Cluster returns the cluster row bound to the client's token, with its
// configurations and jobs.
func (c *Client) Cluster(ctx context.Context) (*models.Cluster, error) {
	var cluster models.Cluster
	if err := c.Get(ctx, "/clusters/by_client_id", &cluster); err != nil {
		return nil, err
	}
	return &cluster, nil
}

// Configurations returns the configurations of the cluster bound to the
// client's token.
func (c *Client) Configurations(ctx context.Context) ([]models.Configuration, error) {
	var configs []models.Configuration
	if err := c.Get(ctx, "/configurations/by_client_id", &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// BookingsForJob returns the bookings a scheduler job holds on the
// client's cluster.
func (c *Client) BookingsForJob(ctx context.Context, slurmJobID int) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.Get(ctx, "/bookings/by_job/"+strconv.Itoa(slurmJobID), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// ReleaseJob removes every booking a scheduler job holds on the client's
// cluster and returns how many were removed.
func (c *Client) ReleaseJob(ctx context.Context, slurmJobID int) (int, error) {
	var deleted models.DeletedByJob
	if err := c.Delete(ctx, "/bookings/by_job/"+strconv.Itoa(slurmJobID), &deleted); err != nil {
		return 0, err
	}
	return deleted.Deleted, nil
}

// Reconcile submits a usage report and returns how many inventories the
// ledger updated.
func (c *Client) Reconcile(ctx context.Context, report []models.ReportItem) (int, error) {
	var resp models.ReconcileResponse
	if err := c.Patch(ctx, "/reconcile", report, &resp); err != nil {
		return 0, err
	}
	return resp.Updated, nil
}
