package nocodb

import (
	"context"
	"io/ioutil"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedsagar/educrm/core"
	logsvc "github.com/vedsagar/educrm/services/logger"
)

func testClient(t *testing.T, ttl time.Duration, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{}
	conf.NocoDB.BaseURL = srv.URL
	conf.NocoDB.APIToken = "test-token"
	conf.NocoDB.WorkspaceID = "noco"
	conf.NocoDB.BaseID = "educrm"
	conf.NocoDB.CacheTTL = ttl
	return NewClient(conf, logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0))), srv
}

func TestClientAuthAndURL(t *testing.T) {
	var gotPath, gotToken, gotQuery string
	c, _ := testClient(t, 0, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("xc-token")
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"list":[{"id":1,"name":"NEET Preparation"}]}`))
	}))

	var out []map[string]interface{}
	params := url.Values{"limit": []string{"25"}, "sort": []string{"-created_at"}}
	require.NoError(t, c.List(context.Background(), "categories", params, &out))

	assert.Equal(t, "/api/v1/db/data/noco/educrm/categories", gotPath)
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, "limit=25&sort=-created_at", gotQuery)
	require.Len(t, out, 1)
	assert.Equal(t, "NEET Preparation", out[0]["name"])
}

func TestClientGetNotFound(t *testing.T) {
	c, _ := testClient(t, 0, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	var out map[string]interface{}
	err := c.Get(context.Background(), "students", 42, &out)
	assert.Equal(t, ErrNotFound, errors.Cause(err))
}

func TestClientServerErrorIsUnavailable(t *testing.T) {
	c, _ := testClient(t, 0, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	var out []map[string]interface{}
	err := c.List(context.Background(), "students", nil, &out)
	assert.Equal(t, ErrUnavailable, errors.Cause(err))
}

func TestClientListCache(t *testing.T) {
	var hits int
	c, _ := testClient(t, time.Minute, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			hits++
		}
		w.Write([]byte(`{"list":[{"id":1}]}`))
	}))
	ctx := context.Background()

	var out []map[string]interface{}
	require.NoError(t, c.List(ctx, "students", nil, &out))
	require.NoError(t, c.List(ctx, "students", nil, &out))
	assert.Equal(t, 1, hits, "second list should be served from cache")

	// a write to the table drops its cached queries
	require.NoError(t, c.Create(ctx, "students", map[string]string{"full_name": "Priya"}, nil))
	require.NoError(t, c.List(ctx, "students", nil, &out))
	assert.Equal(t, 2, hits)

	// distinct queries cache separately
	require.NoError(t, c.List(ctx, "students", url.Values{"limit": []string{"5"}}, &out))
	assert.Equal(t, 3, hits)
}

func TestClientCacheDisabled(t *testing.T) {
	var hits int
	c, _ := testClient(t, 0, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(`{"list":[]}`))
	}))
	ctx := context.Background()

	var out []map[string]interface{}
	require.NoError(t, c.List(ctx, "students", nil, &out))
	require.NoError(t, c.List(ctx, "students", nil, &out))
	assert.Equal(t, 2, hits)
}

func TestClientUpdateAndDelete(t *testing.T) {
	var methods []string
	var paths []string
	c, _ := testClient(t, 0, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	ctx := context.Background()

	require.NoError(t, c.Update(ctx, "students", 7, map[string]string{"batch": "NEET Morning Batch"}))
	require.NoError(t, c.Delete(ctx, "students", 7))

	assert.Equal(t, []string{http.MethodPatch, http.MethodDelete}, methods)
	assert.Equal(t, []string{
		"/api/v1/db/data/noco/educrm/students/7",
		"/api/v1/db/data/noco/educrm/students/7",
	}, paths)
}

func TestClientPing(t *testing.T) {
	c, _ := testClient(t, 0, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"list":[]}`))
	}))
	assert.NoError(t, c.Ping(context.Background()))

	down, _ := testClient(t, 0, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	assert.Error(t, down.Ping(context.Background()))
}
