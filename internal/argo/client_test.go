package argo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListWorkflows(t *testing.T) {
	var gotAuth, gotAccept, gotEncoding, gotSelector, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotEncoding = r.Header.Get("Accept-Encoding")
		gotSelector = r.URL.Query().Get("listOptions.labelSelector")
		gotLimit = r.URL.Query().Get("listOptions.limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [
			{"metadata": {"name": "etl-daily-x7k2p"}, "status": {"phase": "Succeeded", "startedAt": "2026-03-14T06:00:00Z", "finishedAt": "2026-03-14T06:01:40Z"}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-token", testLogger())
	runs, err := client.ListWorkflows(context.Background(), PhaseSucceeded, 500)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, gotEncoding, "gzip", "transport negotiates compression on our behalf")
	assert.Equal(t, "workflows.argoproj.io/phase=Succeeded", gotSelector)
	assert.Equal(t, "500", gotLimit)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())
	runs, err := client.ListWorkflows(context.Background(), PhaseSucceeded, 10)
	require.NoError(t, err)
	assert.Empty(t, runs, "empty result set yields zero runs, not an error")
	assert.False(t, sawAuth)
}

func TestClientHTTPStatusFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())
	_, err := client.ListWorkflows(context.Background(), PhaseFailed, 10)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusForbidden, fetchErr.StatusCode)
	assert.Contains(t, fetchErr.Error(), "HTTP status 403")
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, "", testLogger())
	_, err := client.ListWorkflows(context.Background(), PhaseSucceeded, 10)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.NotNil(t, fetchErr.Cause)
}

func TestClientMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", testLogger())
	_, err := client.ListWorkflows(context.Background(), PhaseSucceeded, 10)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "decode")
}
