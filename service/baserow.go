package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/arrebolmedia/video-editor/config"
)

// BaserowRow is one CRM row with the fields the sync cares about. Field names
// come back verbatim from the table because requests ask for
// user_field_names=true.
type BaserowRow struct {
	ID        int            `json:"id"`
	Nombre    string         `json:"Nombre"`
	Status    *BaserowSelect `json:"Status"`
	EventDate string         `json:"Fecha del Evento"`
}

// BaserowSelect is a single-select cell.
type BaserowSelect struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

type baserowListResponse struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []BaserowRow `json:"results"`
}

// BaserowClient talks to the Baserow REST API for one table.
type BaserowClient struct {
	baseURL string
	token   string
	tableID int
	client  *http.Client
}

func NewBaserowClient(cfg *config.BaserowConfig) *BaserowClient {
	return &BaserowClient{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		tableID: cfg.TableID,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API token is set. Without one, sync endpoints
// fail fast instead of hammering the API with unauthorized requests.
func (c *BaserowClient) Configured() bool {
	return c.token != ""
}

const baserowPageSize = 200

// ListRows walks the table page by page and returns every row.
func (c *BaserowClient) ListRows(ctx context.Context) ([]BaserowRow, error) {
	var rows []BaserowRow
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/api/database/rows/table/%d/?user_field_names=true&size=%d&page=%d",
			c.baseURL, c.tableID, baserowPageSize, page)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Token "+c.token)

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("baserow list rows: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("baserow list rows: status %d: %s", resp.StatusCode, string(body))
		}

		var out baserowListResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("baserow list rows: decode: %w", err)
		}
		rows = append(rows, out.Results...)
		if out.Next == nil || len(out.Results) == 0 {
			return rows, nil
		}
	}
}

// UpdateRowField patches a single field of a row.
func (c *BaserowClient) UpdateRowField(ctx context.Context, rowID int, field string, value interface{}) error {
	url := fmt.Sprintf("%s/api/database/rows/table/%d/%d/?user_field_names=true",
		c.baseURL, c.tableID, rowID)

	payload, err := json.Marshal(map[string]interface{}{field: value})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("baserow update row %d: %w", rowID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("baserow update row %d: status %d: %s", rowID, resp.StatusCode, string(body))
	}
	return nil
}
