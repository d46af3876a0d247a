package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
)

// Client talks to the prediction platform's backend API
type Client struct {
	BaseURL    string
	HTTP       *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
	GetTimeout time.Duration
}

// New creates a client. The http.Client has no overall timeout: submit must run
// until the backend answers, reads get a per-call timeout instead.
func New(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Transport: &http.Transport{
				Proxy:           http.ProxyFromEnvironment,
				IdleConnTimeout: DefaultIdleConnTimeout,
			},
		},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
		GetTimeout: DefaultGetTimeout,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)
	if c.APIKey != "" {
		req.Header.Set(HeaderAPIKey, c.APIKey)
	}
	if token != "" {
		req.Header.Set(HeaderAuthorization, BearerPrefix+token)
	}
	return req, nil
}

// doIdempotent performs a read with retry on transport errors and 5xx
func (c *Client) doIdempotent(ctx context.Context, path, token string) (*http.Response, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.RetryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			log.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := c.newRequest(ctx, http.MethodGet, path, token, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.HTTP.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			log.Warn(LogMsgRequestFailed, "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("%w: %d", domain.ErrUnexpectedStatusCode, resp.StatusCode)
		log.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("%w: max retries exceeded: %w", domain.ErrBackendUnavailable, lastErr)
}

// GetGameweek fetches a gameweek with its matches
func (c *Client) GetGameweek(ctx context.Context, token string, id int64) (*domain.Gameweek, error) {
	if c.GetTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.GetTimeout)
		defer cancel()
	}

	resp, err := c.doIdempotent(ctx, fmt.Sprintf(PathGameweek, id), token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrGameweekNotFound
	case http.StatusUnauthorized:
		return nil, domain.ErrUnauthenticated
	case http.StatusForbidden:
		return nil, domain.ErrForbidden
	default:
		return nil, fmt.Errorf("%w: %d", domain.ErrUnexpectedStatusCode, resp.StatusCode)
	}

	var gw domain.Gameweek
	if err := json.NewDecoder(resp.Body).Decode(&gw); err != nil {
		return nil, fmt.Errorf("failed to decode gameweek: %w", err)
	}
	return &gw, nil
}

// SubmitPredictions sends predictions and the session join in one call.
// It is never retried: the backend debits the buy-in on success.
//
// A response with a structured error body is returned as *domain.APIError,
// whatever its status. Anything else that fails is a plain error the caller
// treats as a network failure.
func (c *Client) SubmitPredictions(ctx context.Context, token string, r *domain.SubmitPredictionsRequest) (*domain.SubmitPredictionsResponse, error) {
	log := logger.FromContext(ctx)

	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, PathSubmitPredictions+"?"+SubmitQuery(r).Encode(), token, body)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return decodeAccepted(ctx, resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading error body: %w", domain.ErrBackendUnavailable, err)
	}

	var apiBody domain.APIErrorBody
	if err := json.Unmarshal(raw, &apiBody); err == nil && (apiBody.Error != "" || apiBody.Message != "") {
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Body: apiBody}
	}

	log.Warn(LogMsgUnstructuredError, "status", resp.StatusCode)
	return nil, fmt.Errorf("%w: %d", domain.ErrUnexpectedStatusCode, resp.StatusCode)
}

// decodeAccepted reads a 2xx submit response. The backend sometimes reports a
// rejection with a success status, so an explicit failure body still wins.
func decodeAccepted(ctx context.Context, resp *http.Response) (*domain.SubmitPredictionsResponse, error) {
	log := logger.FromContext(ctx)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(LogMsgUndecodableOK, "status", resp.StatusCode, "error", err)
		return &domain.SubmitPredictionsResponse{}, nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return &domain.SubmitPredictionsResponse{}, nil
	}

	var apiBody domain.APIErrorBody
	if err := json.Unmarshal(raw, &apiBody); err == nil && !apiBody.Success && apiBody.Error != "" {
		log.Warn(LogMsgErrorWithOKStatus, "status", resp.StatusCode, "code", apiBody.Error)
		return nil, &domain.APIError{StatusCode: resp.StatusCode, Body: apiBody}
	}

	var out domain.SubmitPredictionsResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn(LogMsgUndecodableOK, "status", resp.StatusCode, "error", err)
		return &domain.SubmitPredictionsResponse{}, nil
	}
	return &out, nil
}

// SubmitQuery builds the session query parameters. accessKey is only sent for private sessions.
func SubmitQuery(r *domain.SubmitPredictionsRequest) url.Values {
	params := url.Values{}
	params.Set(domain.QueryParamSessionType, string(r.SessionType))
	params.Set(domain.QueryParamBuyInAmount, r.BuyInAmount.String())
	params.Set(domain.QueryParamIsPrivate, strconv.FormatBool(r.IsPrivate))
	if r.IsPrivate && r.AccessKey != "" {
		params.Set(domain.QueryParamAccessKey, r.AccessKey)
	}
	return params
}
