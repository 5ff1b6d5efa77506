// Package client is the HTTP implementation of the collection's API,
// speaking the REST surface exposed by internal/server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ryannerby/jobnest/internal/apperror"
	"github.com/ryannerby/jobnest/internal/job"
)

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListJobs(ctx context.Context) ([]job.Job, error) {
	var jobs []job.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, http.StatusOK, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *Client) CreateJob(ctx context.Context, j job.Job) (*job.Job, error) {
	created := &job.Job{}
	if err := c.do(ctx, http.MethodPost, "/api/jobs", j, http.StatusCreated, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateJob(ctx context.Context, j job.Job) (*job.Job, error) {
	updated := &job.Job{}
	path := fmt.Sprintf("/api/jobs/%d", j.ID)
	if err := c.do(ctx, http.MethodPut, path, j, http.StatusOK, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/jobs/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError maps the wire error payload back onto an AppError so callers
// can distinguish validation, stale-view and infrastructure failures.
func decodeError(resp *http.Response) error {
	var payload struct {
		Error    string   `json:"error"`
		Messages []string `json:"messages"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error == "" {
		payload.Error = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest && len(payload.Messages) > 0:
		return apperror.NewValidation(payload.Messages)
	case resp.StatusCode == http.StatusBadRequest:
		return apperror.New(apperror.BadRequest, payload.Error)
	case resp.StatusCode == http.StatusNotFound:
		return apperror.New(apperror.NotFound, payload.Error)
	default:
		return apperror.New(apperror.Internal, payload.Error)
	}
}
