package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogcms/internal/common"
)

const testAPIKey = "test-api-key"

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func testConfig() *Config {
	return &Config{
		Port:        "0",
		Environment: "testing",
		Version:     "1.0.0",
		APIKey:      testAPIKey,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB(t)

	return newApplication(testConfig(), testLogger(), db), db
}

type testResponse struct {
	status int
	header http.Header
	body   []byte
}

// envelope decodes a JSON object body.
func (res testResponse) envelope(t *testing.T) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(res.body, &env), string(res.body))
	return env
}

func (res testResponse) decode(t *testing.T, dst any) {
	require.NoError(t, json.Unmarshal(res.body, dst), string(res.body))
}

// do sends the request, attaching apiKey as X-API-Key when it is not empty.
func (ts *testServer) do(t *testing.T, method, path string, payload any, apiKey string) testResponse {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	res, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return testResponse{status: res.StatusCode, header: res.Header, body: responseBody}
}

func (ts *testServer) get(t *testing.T, path string) testResponse {
	return ts.do(t, http.MethodGet, path, nil, testAPIKey)
}

func (ts *testServer) post(t *testing.T, path string, payload any) testResponse {
	return ts.do(t, http.MethodPost, path, payload, testAPIKey)
}

func (ts *testServer) put(t *testing.T, path string, payload any) testResponse {
	return ts.do(t, http.MethodPut, path, payload, testAPIKey)
}

func (ts *testServer) delete(t *testing.T, path string) testResponse {
	return ts.do(t, http.MethodDelete, path, nil, testAPIKey)
}
