// Package client is a typed HTTP client for the tweet board API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/tweet-board/internal/logger"
	"github.com/sbilibin2017/tweet-board/internal/models"
	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// Client calls the API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client that authenticates with token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

type errorResponse struct {
	Code   string                 `json:"code"`
	Error  string                 `json:"error"`
	Issues []validation.Violation `json:"issues"`
}

type loginResponse struct {
	Token string             `json:"token"`
	User  models.SessionUser `json:"user"`
}

type registerResponse struct {
	User models.SessionUser `json:"user"`
}

// TweetsAll calls tweets.all.
func (c *Client) TweetsAll(ctx context.Context) ([]models.TweetListItem, error) {
	var out []models.TweetListItem
	if err := c.do(ctx, http.MethodGet, "/rpc/tweets.all", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TweetsOne calls tweets.one.
func (c *Client) TweetsOne(ctx context.Context, id string) (*models.TweetDetail, error) {
	var out models.TweetDetail
	if err := c.do(ctx, http.MethodGet, "/rpc/tweets.one", url.Values{"id": {id}}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TweetsCreate calls tweets.create.
func (c *Client) TweetsCreate(ctx context.Context, title, content string) error {
	body := models.CreateTweetRequest{Title: title, Content: content}
	return c.do(ctx, http.MethodPost, "/rpc/tweets.create", nil, body, nil)
}

// TweetsDelete calls tweets.delete.
func (c *Client) TweetsDelete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/rpc/tweets.delete", nil, models.TweetIDRequest{ID: id}, nil)
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.SessionUser, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out registerResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (string, *models.SessionUser, error) {
	body := map[string]string{"email": email, "password": password}
	var out loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &out); err != nil {
		return "", nil, err
	}
	return out.Token, &out.User, nil
}

// Session returns the session of the client's token, or nil when there is none.
func (c *Client) Session(ctx context.Context) (*models.Session, error) {
	var out *models.Session
	if err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Logout revokes the client's token.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, struct{}{}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return unknownError(0, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return unknownError(0, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("api request failed", "method", method, "path", path, "error", err)
		return unknownError(0, err)
	}
	defer resp.Body.Close()

	logger.Log.Debugw("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return unknownError(resp.StatusCode, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil || er.Code == "" {
		return unknownError(resp.StatusCode, err)
	}
	message := er.Error
	if message == "" {
		message = UnknownErrorMessage
	}
	return &RPCError{
		Code:    er.Code,
		Message: message,
		Status:  resp.StatusCode,
		Issues:  er.Issues,
	}
}

// AsRPCError unwraps err into an *RPCError.
func AsRPCError(err error) (*RPCError, bool) {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}

// IsUnauthorized reports whether err is an UNAUTHORIZED API error.
func IsUnauthorized(err error) bool {
	rpcErr, ok := AsRPCError(err)
	return ok && rpcErr.Code == CodeUnauthorized
}
