package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const restPathPrefix = "/rest/v1/"

// RESTClient talks to a PostgREST-compatible endpoint, the REST surface of
// the hosted backend.
type RESTClient struct {
	baseURL    *url.URL
	accessKey  string
	httpClient *http.Client
}

// NewRESTClient validates the endpoint and returns a client for it. A nil
// httpClient gets a client with a 30 second timeout.
func NewRESTClient(endpoint, accessKey string, httpClient *http.Client) (*RESTClient, error) {
	u, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint URL %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint URL %q: missing host", endpoint)
	}
	if accessKey == "" {
		return nil, errors.New("access key is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return &RESTClient{baseURL: u, accessKey: accessKey, httpClient: httpClient}, nil
}

// Select fetches rows matching q
func (c *RESTClient) Select(ctx context.Context, q Query) ([]Row, error) {
	req, err := c.newRequest(ctx, http.MethodGet, q.Table, selectParams(q))
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", q.Table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var rows []Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s rows: %w", q.Table, err)
	}
	return rows, nil
}

// Count returns the exact number of rows matching filters
func (c *RESTClient) Count(ctx context.Context, table string, filters []Filter) (int, error) {
	params := url.Values{}
	params.Set("select", "*")
	addFilters(params, filters)

	req, err := c.newRequest(ctx, http.MethodHead, table, params)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, decodeError(resp)
	}
	return parseContentRange(resp.Header.Get("Content-Range"))
}

// Ping selects a single id from table
func (c *RESTClient) Ping(ctx context.Context, table string) error {
	_, err := c.Select(ctx, Query{Table: table, Columns: []string{"id"}, Limit: 1})
	return err
}

func (c *RESTClient) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *RESTClient) newRequest(ctx context.Context, method, table string, params url.Values) (*http.Request, error) {
	if table == "" {
		return nil, errors.New("table name is required")
	}
	u := *c.baseURL
	u.Path = u.Path + restPathPrefix + url.PathEscape(table)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("apikey", c.accessKey)
	req.Header.Set("Authorization", "Bearer "+c.accessKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func selectParams(q Query) url.Values {
	params := url.Values{}
	if len(q.Columns) == 0 {
		params.Set("select", "*")
	} else {
		params.Set("select", strings.Join(q.Columns, ","))
	}
	addFilters(params, q.Filters)

	if len(q.OrderBy) > 0 {
		parts := make([]string, 0, len(q.OrderBy))
		for _, o := range q.OrderBy {
			dir := "asc"
			if o.Descending {
				dir = "desc"
			}
			parts = append(parts, o.Column+"."+dir)
		}
		params.Set("order", strings.Join(parts, ","))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return params
}

func addFilters(params url.Values, filters []Filter) {
	for _, f := range filters {
		switch f.Op {
		case OpEq:
			params.Add(f.Column, fmt.Sprintf("eq.%v", f.Value))
		case OpIsNull, OpNotNull:
			params.Add(f.Column, string(f.Op))
		}
	}
}

// decodeError turns a non-2xx response into *Error, keeping the store's
// own message when the body carries one.
func decodeError(resp *http.Response) error {
	remoteErr := &Error{Status: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(body) > 0 {
		if err := json.Unmarshal(body, remoteErr); err != nil {
			remoteErr.Message = strings.TrimSpace(string(body))
		}
	}
	return remoteErr
}

// parseContentRange reads the total from "0-24/3573" or "*/0"
func parseContentRange(header string) (int, error) {
	idx := strings.LastIndex(header, "/")
	if idx < 0 || idx == len(header)-1 {
		return 0, fmt.Errorf("missing count in Content-Range %q", header)
	}
	total := header[idx+1:]
	if total == "*" {
		return 0, fmt.Errorf("store did not report an exact count in Content-Range %q", header)
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("invalid count in Content-Range %q: %w", header, err)
	}
	return n, nil
}
