package practicum

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homework_status_bot/internal/domain/homework"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestFetchStatusesSendsAuthAndFromDate(t *testing.T) {
	var gotAuth, gotFromDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFromDate = r.URL.Query().Get("from_date")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1000}`))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, Token: "secret"})
	raw, err := c.FetchStatuses(context.Background(), 1700000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "OAuth secret" {
		t.Fatalf("expected OAuth header, got %q", gotAuth)
	}
	if gotFromDate != "1700000000" {
		t.Fatalf("expected from_date=1700000000, got %q", gotFromDate)
	}

	payload, ok := raw.(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %T", raw)
	}
	if _, ok := payload["homeworks"].([]any); !ok {
		t.Fatalf("expected homeworks list, got %T", payload["homeworks"])
	}
}

func TestFetchStatusesNonOKStatus(t *testing.T) {
	tests := []struct {
		code int
		body string
	}{
		{http.StatusInternalServerError, `{}`},
		{http.StatusUnauthorized, `{"code":"not_authenticated","message":"credentials were not provided","source":"__response__"}`},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.code)
			_, _ = w.Write([]byte(tt.body))
		}))

		_, err := NewClient(Config{Endpoint: srv.URL}).FetchStatuses(context.Background(), 0)
		srv.Close()

		if homework.KindOf(err) != homework.KindHTTPStatusNotOK {
			t.Fatalf("status %d: expected http status kind, got %v", tt.code, err)
		}
		if !strings.Contains(err.Error(), http.StatusText(tt.code)) {
			t.Fatalf("status %d: expected reason in %q", tt.code, err.Error())
		}
	}
}

func TestFetchStatusesTransportFailure(t *testing.T) {
	cause := errors.New("connection refused")
	c := NewClient(Config{
		Endpoint: "http://homework.invalid/",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, cause
		})},
	})

	_, err := c.FetchStatuses(context.Background(), 0)
	if homework.KindOf(err) != homework.KindTransport {
		t.Fatalf("expected transport kind, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}
}

func TestFetchStatusesUndecodableBody(t *testing.T) {
	c := NewClient(Config{
		Endpoint: "http://homework.invalid/",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader("<html>maintenance</html>")),
				Header:     make(http.Header),
			}, nil
		})},
	})

	_, err := c.FetchStatuses(context.Background(), 0)
	if homework.KindOf(err) != homework.KindDecode {
		t.Fatalf("expected decode kind, got %v", err)
	}
}

func TestNewClientDefaultsEndpoint(t *testing.T) {
	c := NewClient(Config{})
	if c.endpoint != DefaultEndpoint {
		t.Fatalf("expected default endpoint, got %q", c.endpoint)
	}
}

func TestFetchStatusesUsesServerReasonPhrase(t *testing.T) {
	c := NewClient(Config{
		Endpoint: "http://homework.invalid/",
		HTTPClient: &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusServiceUnavailable,
				Status:     "503 Scheduled Maintenance",
				Body:       io.NopCloser(strings.NewReader("")),
				Header:     make(http.Header),
			}, nil
		})},
	})

	_, err := c.FetchStatuses(context.Background(), 0)
	if homework.KindOf(err) != homework.KindHTTPStatusNotOK {
		t.Fatalf("expected http status kind, got %v", err)
	}
	if err.Error() != "homework API responded with status 503 Scheduled Maintenance" {
		t.Fatalf("expected server status line in %q", err.Error())
	}
}
