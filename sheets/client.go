// Package sheets is a thin client for the spreadsheet append webhook.
// The endpoint URL is the only credential; any non-2xx response is a
// failure with the body captured for diagnostics.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/guemper-znacht/event-registration/registration"
)

var _ registration.SheetAppender = &Client{}

type Client struct {
	httpClient  *http.Client
	endpointURL string
}

func NewClient(httpClient *http.Client, endpointURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient:  httpClient,
		endpointURL: endpointURL,
	}
}

func (c *Client) EndpointURL() string {
	return c.endpointURL
}

type appendEnvelope struct {
	Rows [][]any `json:"rows"`
}

func (c *Client) AppendRows(ctx context.Context, rows []registration.SheetRow) error {
	tuples := make([][]any, 0, len(rows))
	for _, r := range rows {
		tuples = append(tuples, r.Columns())
	}

	body, err := json.Marshal(appendEnvelope{Rows: tuples})
	if err != nil {
		return fmt.Errorf("failed to marshal rows envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build append request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("append request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sheet append returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
