package housecall

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/correlation"
	"github.com/Johnsonbros/JohnsonBros.com-sub004/pkg/structerr"
)

// Client is the typed HTTP client for the Housecall field-service CRM.
// Every failing call comes back as a classified *structerr.Error; raw
// upstream bodies stay in the logs.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	log        Logger
}

// Logger is the printf-style logger consumed by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient creates a CRM client. The timeout bounds every upstream
// call; a timed-out call surfaces as a NETWORK structured error.
func NewClient(baseURL, apiKey string, timeout time.Duration, pageSize int, log Logger) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiKey:   apiKey,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// do executes one CRM request and decodes the response into out (when
// out is non-nil). Statuses >= 400 are classified; bodies of failed
// responses are logged truncated, never returned to callers.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	corrID := correlation.FromContext(ctx)

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return structerr.New(structerr.TypeUnknown, structerr.CodeUnknown,
				fmt.Sprintf("housecall: marshal %s %s request", method, path), corrID).WithCause(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return structerr.New(structerr.TypeUnknown, structerr.CodeUnknown,
			fmt.Sprintf("housecall: build %s %s request", method, path), corrID).WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("housecall: %s %s transport failure: %v [corr=%s]", method, path, err, corrID)
		return structerr.New(structerr.TypeNetwork, structerr.CodeTransport,
			fmt.Sprintf("housecall: %s %s: transport failure", method, path), corrID).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.Warn("housecall: %s %s returned %d: %s [corr=%s]",
			method, path, resp.StatusCode, strings.TrimSpace(string(raw)), corrID)
		return structerr.FromHTTPStatus(resp.StatusCode,
			fmt.Sprintf("housecall: %s %s returned %d", method, path, resp.StatusCode), corrID)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return structerr.New(structerr.TypeAPIError, structerr.CodeUpstream5xx,
			fmt.Sprintf("housecall: decode %s %s response", method, path), corrID).WithCause(err)
	}
	return nil
}
