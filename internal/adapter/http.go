package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/academyhub/academy-client/internal/logger"
	"github.com/academyhub/academy-client/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const refreshPath = "/api/auth/refresh"

// refreshExempt lists paths that must never trigger a transparent token
// refresh: a 401 from these endpoints means the credentials themselves were
// rejected, and refreshing on the refresh endpoint would recurse.
var refreshExempt = map[string]struct{}{
	"/api/auth/login":         {},
	"/api/auth/register":      {},
	"/api/auth/self-register": {},
	refreshPath:               {},
}

// HTTPClientConfig carries the settings needed to construct the HTTP adapter.
type HTTPClientConfig struct {
	// BaseURL is the full API origin. When empty, the origin is resolved
	// from DevHost.
	BaseURL string
	// DevHost is the hostname used for origin resolution when BaseURL is
	// empty.
	DevHost string
	// Timeout bounds every outbound request.
	Timeout time.Duration
	// Log receives transport-level diagnostics. Defaults to a no-op logger.
	Log *logger.Logger
}

type httpAPIClient struct {
	client *resty.Client
	log    *logger.Logger

	mu        sync.RWMutex
	token     string
	onRefresh func(token string)

	// refreshMu serialises concurrent refresh attempts so only one network
	// call is in flight for a given expired token.
	refreshMu sync.Mutex
}

// NewHTTPAPIClient builds the resty-backed [APIClient]. Every request carries
// an X-Request-ID header for server-side correlation.
func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	base := normalizeBaseURL(cfg.BaseURL)
	if base == "" {
		base = resolveOrigin(cfg.DevHost)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}

	cli := resty.New().
		SetBaseURL(base).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-ID", uuid.NewString())
			return nil
		})

	return &httpAPIClient{client: cli, log: log}
}

func (h *httpAPIClient) BaseURL() string {
	return h.client.BaseURL
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) OnTokenRefresh(fn func(token string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRefresh = fn
}

func (h *httpAPIClient) Get(ctx context.Context, path string, query url.Values) (models.Envelope, error) {
	return h.Do(ctx, http.MethodGet, path, query)
}

func (h *httpAPIClient) Post(ctx context.Context, path string, body any) (models.Envelope, error) {
	return h.Do(ctx, http.MethodPost, path, body)
}

func (h *httpAPIClient) Put(ctx context.Context, path string, body any) (models.Envelope, error) {
	return h.Do(ctx, http.MethodPut, path, body)
}

func (h *httpAPIClient) Delete(ctx context.Context, path string) (models.Envelope, error) {
	return h.Do(ctx, http.MethodDelete, path, nil)
}

func (h *httpAPIClient) Do(ctx context.Context, method, path string, data any) (models.Envelope, error) {
	env, err := h.dispatch(ctx, method, path, data)
	if err == nil || !errors.Is(err, ErrUnauthorized) {
		return env, err
	}
	if _, exempt := refreshExempt[path]; exempt || h.Token() == "" {
		return env, err
	}

	if rerr := h.Refresh(ctx); rerr != nil {
		h.log.Debug().Err(rerr).Str("path", path).Msg("token refresh failed, surfacing original error")
		return env, err
	}

	return h.dispatch(ctx, method, path, data)
}

func (h *httpAPIClient) dispatch(ctx context.Context, method, path string, data any) (models.Envelope, error) {
	req := h.authedRequest(ctx)

	switch method {
	case http.MethodGet, http.MethodDelete:
		if data != nil {
			query, ok := data.(url.Values)
			if !ok {
				return models.Envelope{}, fmt.Errorf("%w: %s data must be url.Values, got %T", ErrBadRequest, method, data)
			}
			if len(query) > 0 {
				req.SetQueryParamsFromValues(query)
			}
		}
	default:
		req.SetHeader("Content-Type", "application/json")
		if data != nil {
			req.SetBody(data)
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed before a response arrived")
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return decode(resp)
}

func (h *httpAPIClient) GetRaw(ctx context.Context, path string, query url.Values) ([]byte, string, error) {
	req := h.authedRequest(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

// Refresh posts the current bearer token to the refresh endpoint and swaps
// in the returned access token. Concurrent callers share a single refresh.
func (h *httpAPIClient) Refresh(ctx context.Context) error {
	h.refreshMu.Lock()
	defer h.refreshMu.Unlock()

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		Post(refreshPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err = env.DecodeData(&payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.AccessToken == "" {
		return fmt.Errorf("%w: refresh response missing access token", ErrMalformedResponse)
	}

	h.SetToken(payload.AccessToken)
	h.log.Debug().Msg("access token refreshed")

	h.mu.RLock()
	fn := h.onRefresh
	h.mu.RUnlock()
	if fn != nil {
		fn(payload.AccessToken)
	}

	return nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decode normalizes a completed HTTP response into a [models.Envelope].
// Non-2xx statuses are mapped to sentinel errors first; for those the body is
// still decoded best-effort so callers can surface the server's message.
func decode(resp *resty.Response) (models.Envelope, error) {
	if err := mapHTTPError(resp); err != nil {
		var env models.Envelope
		_ = json.Unmarshal(resp.Body(), &env)
		env.Success = false
		return env, err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return models.Envelope{Success: true}, nil
	}

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return env, nil
}
