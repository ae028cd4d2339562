// Package nocodb talks to a NocoDB base over its record HTTP API. Each
// dashboard table maps to one NocoDB grid; the client owns auth, the list
// envelope and a short-lived read cache.
package nocodb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/vedsagar/educrm/core"
)

var (
	// ErrUnavailable wraps transport failures so handlers can map them to 503.
	ErrUnavailable = errors.New("table store unavailable")
	// ErrNotFound is returned for missing records before the per-domain
	// repositories translate it to their own sentinel.
	ErrNotFound = errors.New("record not found")
)

const defaultTimeout = 30 * time.Second

type Client struct {
	httpc       *http.Client
	baseURL     string
	token       string
	workspaceID string
	baseID      string
	logger      core.Logger
	cache       *tableCache
}

func NewClient(conf *core.Config, logger core.Logger) *Client {
	timeout := conf.NocoDB.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpc:       &http.Client{Timeout: timeout},
		baseURL:     conf.NocoDB.BaseURL,
		token:       conf.NocoDB.APIToken,
		workspaceID: conf.NocoDB.WorkspaceID,
		baseID:      conf.NocoDB.BaseID,
		logger:      logger,
		cache:       newTableCache(conf.NocoDB.CacheTTL),
	}
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/api/v1/db/data/%s/%s/%s", c.baseURL, c.workspaceID, c.baseID, table)
}

func (c *Client) do(ctx context.Context, method, rawurl string, body interface{}) ([]byte, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request")
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawurl, rdr)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("xc-token", c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "%s %s: %v", method, rawurl, err)
	}
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case res.StatusCode >= http.StatusInternalServerError:
		return nil, errors.Wrapf(ErrUnavailable, "%s %s: status %d", method, rawurl, res.StatusCode)
	case res.StatusCode >= http.StatusBadRequest:
		return nil, errors.Errorf("%s %s: status %d: %s", method, rawurl, res.StatusCode, data)
	}
	return data, nil
}

// listEnvelope is NocoDB's list response shape.
type listEnvelope struct {
	List json.RawMessage `json:"list"`
}

// List fetches records into out (a pointer to a slice). Sorted, bounded
// queries go through params; results are cached per table+query for the
// configured TTL.
func (c *Client) List(ctx context.Context, table string, params url.Values, out interface{}) error {
	key := table + "?" + params.Encode()
	if data, ok := c.cache.get(table, key); ok {
		return json.Unmarshal(data, out)
	}

	rawurl := c.tableURL(table)
	if len(params) > 0 {
		rawurl += "?" + params.Encode()
	}
	data, err := c.do(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return err
	}

	var env listEnvelope
	if err = json.Unmarshal(data, &env); err != nil {
		return errors.Wrapf(err, "decoding %s list", table)
	}
	c.cache.put(table, key, env.List)
	return json.Unmarshal(env.List, out)
}

func (c *Client) Get(ctx context.Context, table string, id int, out interface{}) error {
	data, err := c.do(ctx, http.MethodGet, c.tableURL(table)+"/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}
	return errors.Wrapf(json.Unmarshal(data, out), "decoding %s record", table)
}

func (c *Client) Create(ctx context.Context, table string, body, out interface{}) error {
	data, err := c.do(ctx, http.MethodPost, c.tableURL(table), body)
	if err != nil {
		return err
	}
	c.cache.invalidate(table)
	if out == nil {
		return nil
	}
	return errors.Wrapf(json.Unmarshal(data, out), "decoding %s record", table)
}

func (c *Client) Update(ctx context.Context, table string, id int, body interface{}) error {
	_, err := c.do(ctx, http.MethodPatch, c.tableURL(table)+"/"+strconv.Itoa(id), body)
	c.cache.invalidate(table)
	return err
}

func (c *Client) Delete(ctx context.Context, table string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, c.tableURL(table)+"/"+strconv.Itoa(id), nil)
	c.cache.invalidate(table)
	return err
}

// Ping verifies connectivity and credentials with a 1-record list call.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{"limit": []string{"1"}}
	var out []map[string]interface{}
	c.cache.invalidate("categories")
	return c.List(ctx, "categories", params, &out)
}
