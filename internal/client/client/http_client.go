package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/crammer/internal/client/models"
	"github.com/dmitrijs2005/crammer/internal/common"
	"github.com/dmitrijs2005/crammer/internal/logging"
)

const DefaultBaseURL = "http://localhost:8000/api/v1"

const (
	signupPath = "/auth/signup"
	loginPath  = "/auth/login"
	mePath     = "/auth/me"
	healthPath = "/health/"
)

// HTTPClient talks to the REST API. Each call makes a single attempt.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds every request. Zero keeps the transport defaults.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func NewHTTPClient(baseURL string, log logging.Logger, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log.With("component", "gateway"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *HTTPClient) Signup(ctx context.Context, req SignupRequest) (*models.AuthPayload, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, signupPath, "", req, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*models.AuthPayload, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, loginPath, "", req, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context, token string) (*models.User, error) {
	var env Envelope[models.User]
	if err := c.do(ctx, http.MethodGet, mePath, token, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Health is the data of the health route.
type Health struct {
	Status string `json:"status"`
}

// Ping checks that the API answers its health route.
func (c *HTTPClient) Ping(ctx context.Context) error {
	var env Envelope[Health]
	return c.do(ctx, http.MethodGet, healthPath, "", nil, &env)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// envelope is implemented by *Envelope[T] so do can check success and data
// without knowing T.
type envelope interface {
	ok() bool
	succeeded() bool
	message() string
	details() json.RawMessage
}

func (e *Envelope[T]) ok() bool                 { return e.Success && e.Data != nil }
func (e *Envelope[T]) succeeded() bool          { return e.Success }
func (e *Envelope[T]) message() string          { return e.Message }
func (e *Envelope[T]) details() json.RawMessage { return e.Details }

// authEnvelope also requires an access token in the payload.
type authEnvelope struct {
	Envelope[models.AuthPayload]
}

func (e *authEnvelope) ok() bool {
	return e.Envelope.ok() && e.Data.Token.AccessToken != ""
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body any, out envelope) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.ContentTypeHeaderName, common.JSONContentType)
	req.Header.Set(common.AcceptHeaderName, common.JSONContentType)
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &APIError{Message: MsgNetworkFailure, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done", "method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Message: MsgNetworkFailure, Err: err}
	}
	decodeErr := json.Unmarshal(raw, out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: MsgRequestFailed}
		if decodeErr == nil {
			if m := out.message(); m != "" {
				apiErr.Message = m
			}
			apiErr.Details = out.details()
		}
		return apiErr
	}

	if decodeErr != nil {
		return &APIError{Status: resp.StatusCode, Message: MsgRequestFailed,
			Err: fmt.Errorf("%w: %v", common.ErrInvalidResponse, decodeErr)}
	}
	if !out.ok() {
		msg := out.message()
		if msg == "" || out.succeeded() {
			msg = MsgRequestFailed
		}
		return &APIError{Status: resp.StatusCode, Message: msg, Details: out.details(), Err: common.ErrInvalidResponse}
	}
	return nil
}
