package directory

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Idle keep-alive connections shut down asynchronously after server.Close.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).writeLoop"),
	)
}

const sampleBody = `{
  "users": [
    {"id": 1, "firstName": "Emily", "lastName": "Johnson", "email": "emily.johnson@x.dummyjson.com",
     "image": "https://dummyjson.com/icon/emilys/128",
     "company": {"name": "Dooley, Kozey and Cronin", "title": "Sales Manager"},
     "address": {"city": "Phoenix", "state": "Mississippi"}, "age": 28},
    {"id": 2, "firstName": "Michael", "lastName": "Williams", "email": "michael.williams@x.dummyjson.com",
     "image": "https://dummyjson.com/icon/michaelw/128",
     "company": {"name": "Spinka - Dickinson"},
     "address": {"city": "Houston", "state": "Alabama"}}
  ],
  "total": 208, "skip": 0, "limit": 2
}`

func TestParseEndpoint_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseEndpoint("")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.String() != DefaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", u.String(), DefaultEndpoint)
	}

	u, err = parseEndpoint("example.com/api/users?limit=0#frag")
	if err != nil {
		t.Fatalf("parseEndpoint returned error: %v", err)
	}
	if u.Scheme != "https" || u.Path != "/api/users" || u.RawQuery != "limit=0" || u.Fragment != "" {
		t.Fatalf("endpoint not normalized: %q", u.String())
	}
}

func TestParseEndpoint_RejectsUnsupportedScheme(t *testing.T) {
	if _, err := parseEndpoint("ftp://example.com/users"); err == nil {
		t.Fatalf("parseEndpoint returned nil error, want scheme error")
	}
	if _, err := parseEndpoint("http://"); err == nil {
		t.Fatalf("parseEndpoint returned nil error, want missing host error")
	}
}

func TestClient_FetchAllProjectsUsers(t *testing.T) {
	t.Parallel()

	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		if r.Method != http.MethodGet || r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/users", nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	users, err := c.FetchAll(ctx)
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("FetchAll returned %d users, want 2", len(users))
	}
	want := User{
		FirstName:   "Emily",
		LastName:    "Johnson",
		Email:       "emily.johnson@x.dummyjson.com",
		ImageURL:    "https://dummyjson.com/icon/emilys/128",
		CompanyName: "Dooley, Kozey and Cronin",
		City:        "Phoenix",
		State:       "Mississippi",
	}
	if users[0] != want {
		t.Fatalf("users[0] = %#v, want %#v", users[0], want)
	}
	if users[1].DisplayName() != "Michael Williams" {
		t.Fatalf("users[1].DisplayName() = %q, want Michael Williams", users[1].DisplayName())
	}
	if !strings.HasPrefix(gotUserAgent, "roster/") {
		t.Fatalf("User-Agent = %q, want roster/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FetchAllFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/malformed":
			_, _ = w.Write([]byte("{not-json"))
		case "/status":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/no-content":
			w.WriteHeader(http.StatusNoContent)
		case "/missing":
			_, _ = w.Write([]byte(`{"total": 0}`))
		case "/empty":
			_, _ = w.Write([]byte(`{"users": []}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	cases := []struct {
		path    string
		wantErr string
	}{
		{"/malformed", "decode response"},
		{"/status", "returned status 500"},
		{"/no-content", "decode response"},
		{"/missing", "no users array"},
		{"/unknown", "returned status 404"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			c, err := NewClient(server.URL+tc.path, nil)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			users, err := c.FetchAll(context.Background())
			if err == nil {
				t.Fatalf("FetchAll returned nil error, want %q", tc.wantErr)
			}
			if !errors.Is(err, ErrFetchFailed) {
				t.Fatalf("FetchAll error = %v, want it to wrap ErrFetchFailed", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("FetchAll error = %q, want it to mention %q", err.Error(), tc.wantErr)
			}
			if users != nil {
				t.Fatalf("FetchAll users = %#v, want nil on failure", users)
			}
		})
	}

	c, err := NewClient(server.URL+"/empty", nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	users, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll on empty array returned error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("FetchAll on empty array = %#v, want empty non-nil slice", users)
	}
}

func TestClient_FetchAllNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL + "/users"
	server.Close()

	c, err := NewClient(endpoint, nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchAll(context.Background())
	if !errors.Is(err, ErrFetchFailed) || !strings.Contains(err.Error(), "execute request") {
		t.Fatalf("FetchAll error = %v, want wrapped execute request error", err)
	}
}

func TestClient_FetchAllHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := NewClient("http://127.0.0.1:1/users", nil)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchAll(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("FetchAll error = %v, want context.Canceled", err)
	}
}

func TestClient_LogsFetchOutcome(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleBody))
	}))
	t.Cleanup(server.Close)

	core, logs := observer.New(zapcore.InfoLevel)
	c, err := NewClient(server.URL, zap.New(core))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchAll(context.Background()); err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}

	entries := logs.FilterMessage("fetched users").All()
	if len(entries) != 1 {
		t.Fatalf("got %d 'fetched users' entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["count"] != int64(2) || fields["total"] != int64(208) {
		t.Fatalf("log fields = %v, want count=2 total=208", fields)
	}
	if entries[0].LoggerName != "directory" {
		t.Fatalf("logger name = %q, want directory", entries[0].LoggerName)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchAll(context.Background()); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("FetchAll on nil client = %v, want ErrFetchFailed", err)
	}
	if c.Endpoint() != "" {
		t.Fatalf("Endpoint on nil client = %q, want empty", c.Endpoint())
	}
}
