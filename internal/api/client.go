package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wlabs/patient-console/internal/patient"
)

const basePath = "/api/patients"

// Client talks to the remote patient service. Every operation is a single
// request/response exchange; failed operations are terminal and are never
// retried.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

// NewClient builds a client rooted at baseURL (scheme://host, without the
// /api/patients path).
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, logger: logger}
}

func (c *Client) request(ctx context.Context) (*resty.Request, string) {
	rid := uuid.NewString()
	return c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", rid), rid
}

// Search looks patients up by name/email/phone substring.
func (c *Client) Search(ctx context.Context, term string) ([]patient.Patient, error) {
	var results []patient.Patient
	req, rid := c.request(ctx)
	resp, err := req.
		SetQueryParam("term", term).
		SetResult(&results).
		Get(basePath + "/search")
	if err := c.outcome("search", rid, resp, err); err != nil {
		return nil, err
	}
	for i := range results {
		results[i].Normalize()
	}
	return results, nil
}

// Get fetches a single patient by id.
func (c *Client) Get(ctx context.Context, id string) (patient.Patient, error) {
	var result patient.Patient
	req, rid := c.request(ctx)
	resp, err := req.
		SetResult(&result).
		Get(basePath + "/" + id)
	if err := c.outcome("get", rid, resp, err); err != nil {
		return patient.Patient{}, err
	}
	result.Normalize()
	return result, nil
}

// Create persists a new patient and returns it with its assigned id.
func (c *Client) Create(ctx context.Context, p patient.Patient) (patient.Patient, error) {
	var created patient.Patient
	req, rid := c.request(ctx)
	resp, err := req.
		SetBody(p).
		SetResult(&created).
		Post(basePath)
	if err := c.outcome("create", rid, resp, err); err != nil {
		return patient.Patient{}, err
	}
	created.Normalize()
	return created, nil
}

// Update replaces the patient identified by p.ID.
func (c *Client) Update(ctx context.Context, p patient.Patient) (patient.Patient, error) {
	if p.ID == "" {
		return patient.Patient{}, fmt.Errorf("update requires a persisted patient id")
	}
	var updated patient.Patient
	req, rid := c.request(ctx)
	resp, err := req.
		SetBody(p).
		SetResult(&updated).
		Put(basePath + "/" + p.ID)
	if err := c.outcome("update", rid, resp, err); err != nil {
		return patient.Patient{}, err
	}
	updated.Normalize()
	return updated, nil
}

// Delete removes the patient with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	req, rid := c.request(ctx)
	resp, err := req.Delete(basePath + "/" + id)
	return c.outcome("delete", rid, resp, err)
}

// outcome logs the exchange and folds transport and HTTP failures into the
// error taxonomy.
func (c *Client) outcome(op, rid string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error().
			Str("request_id", rid).
			Str("operation", op).
			Err(err).
			Msg("patient service unreachable")
		return &NetworkError{Err: err}
	}

	evt := c.logger.Info()
	if resp.IsError() {
		evt = c.logger.Error()
	}
	evt.
		Str("request_id", rid).
		Str("operation", op).
		Int("status", resp.StatusCode()).
		Dur("latency", resp.Time()).
		Msg("patient service call")

	if resp.IsError() {
		return classifyResponse(resp.StatusCode(), resp.Body())
	}
	return nil
}
