// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"homework_status_bot/internal/domain/homework"
)

const (
	DefaultEndpoint    = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultHTTPTimeout = 30 * time.Second
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the homework status endpoint.
type Config struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
}

// Client fetches homework statuses. It decodes the body but leaves shape checks to homework.Validate.
type Client struct {
	endpoint   string
	token      string
	httpClient httpDoer
}

func NewClient(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	var doer httpDoer = &http.Client{Timeout: defaultHTTPTimeout}
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	}
	return &Client{
		endpoint:   endpoint,
		token:      cfg.Token,
		httpClient: doer,
	}
}

// FetchStatuses requests homework statuses changed since fromDate (Unix seconds)
// and returns the decoded JSON body.
func (c *Client) FetchStatuses(ctx context.Context, fromDate int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, homework.WrapError(homework.KindInternal, err, "failed to build homework API request")
	}
	q := req.URL.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, homework.WrapError(homework.KindTransport, err, "request to homework API failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, homework.NewError(homework.KindHTTPStatusNotOK, "homework API responded with status %s", statusLine(resp))
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, homework.WrapError(homework.KindDecode, err, "homework API response is not valid JSON")
	}
	return payload, nil
}

// statusLine returns the code and reason phrase as sent by the server,
// e.g. "503 Service Unavailable".
func statusLine(resp *http.Response) string {
	if status := strings.TrimSpace(resp.Status); status != "" {
		return status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
