// Package client is a Go client for the Khmer Calendar API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"khmer_calendar/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

// APIError is returned when the service answers with success=false.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("khmer calendar api: %d %s", e.Status, e.Message)
}

type Client struct {
	http       *resty.Client
	maxRetries uint64
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithMaxRetries bounds retries of network errors and 5xx responses.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/json"),
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Holidays(ctx context.Context, year int) ([]model.ResolvedHoliday, error) {
	body, err := c.get(ctx, "/api/holidays", map[string]string{"year": strconv.Itoa(year)})
	if err != nil {
		return nil, err
	}
	return decodeHolidays(body, "data")
}

func (c *Client) HolidaysOnDate(ctx context.Context, date string) ([]model.ResolvedHoliday, error) {
	body, err := c.get(ctx, "/api/holidays/date", map[string]string{"date": date})
	if err != nil {
		return nil, err
	}
	return decodeHolidays(body, "data")
}

func (c *Client) Upcoming(ctx context.Context, limit int) ([]model.ResolvedHoliday, error) {
	body, err := c.get(ctx, "/api/holidays/upcoming", map[string]string{"limit": strconv.Itoa(limit)})
	if err != nil {
		return nil, err
	}
	return decodeHolidays(body, "data")
}

// IsHoliday reports whether date is a holiday, with the matching names.
func (c *Client) IsHoliday(ctx context.Context, date string) (bool, []model.HolidaySummary, error) {
	body, err := c.get(ctx, "/api/holidays/check", map[string]string{"date": date})
	if err != nil {
		return false, nil, err
	}
	var summaries []model.HolidaySummary
	if err := json.Unmarshal([]byte(gjson.GetBytes(body, "holidays").Raw), &summaries); err != nil {
		return false, nil, eris.Wrap(err, "decode holidays")
	}
	return gjson.GetBytes(body, "isHoliday").Bool(), summaries, nil
}

func (c *Client) Convert(ctx context.Context, date string) (*model.ConvertResult, error) {
	body, err := c.get(ctx, "/api/convert", map[string]string{"date": date})
	if err != nil {
		return nil, err
	}
	var result model.ConvertResult
	if err := json.Unmarshal([]byte(gjson.GetBytes(body, "data").Raw), &result); err != nil {
		return nil, eris.Wrap(err, "decode conversion")
	}
	return &result, nil
}

func (c *Client) ToBuddhistEra(ctx context.Context, year int) (int, error) {
	body, err := c.get(ctx, "/api/buddhist-era/"+strconv.Itoa(year), nil)
	if err != nil {
		return 0, err
	}
	be := gjson.GetBytes(body, "data.buddhistEra")
	if !be.Exists() {
		return 0, eris.New("response didn't contain data.buddhistEra")
	}
	return int(be.Int()), nil
}

// get performs a GET and returns the body of a success envelope. Network
// errors and 5xx responses are retried with exponential backoff.
func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	var body []byte
	operation := func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			Get(path)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return eris.Wrapf(err, "GET %s", path)
		}

		body = resp.Body()
		if resp.StatusCode() >= 500 {
			return apiError(resp.StatusCode(), body)
		}
		if !gjson.GetBytes(body, "success").Bool() {
			return backoff.Permanent(apiError(resp.StatusCode(), body))
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 100 * time.Millisecond
	policy.MaxElapsedTime = 10 * time.Second
	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, c.maxRetries), ctx))
	if err != nil {
		return nil, err
	}
	return body, nil
}

func apiError(status int, body []byte) *APIError {
	msg := gjson.GetBytes(body, "error").String()
	if msg == "" {
		msg = "unexpected response"
	}
	return &APIError{Status: status, Message: msg}
}

func decodeHolidays(body []byte, path string) ([]model.ResolvedHoliday, error) {
	raw := gjson.GetBytes(body, path)
	if !raw.Exists() {
		return nil, eris.Errorf("response didn't contain %s", path)
	}
	var holidays []model.ResolvedHoliday
	if err := json.Unmarshal([]byte(raw.Raw), &holidays); err != nil {
		return nil, eris.Wrap(err, "decode holidays")
	}
	return holidays, nil
}
