package submit_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formctl/pkg/model"
	"github.com/goliatone/go-formctl/pkg/submit"
)

type recorded struct {
	method      string
	contentType string
	userAgent   string
	body        map[string]string
}

func newServer(t *testing.T, status int, reply string, calls *int32, rec *recorded) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		if rec != nil {
			rec.method = r.Method
			rec.contentType = r.Header.Get("Content-Type")
			rec.userAgent = r.Header.Get("User-Agent")
			if err := json.Unmarshal(raw, &rec.body); err != nil {
				t.Errorf("decode body %q: %v", raw, err)
			}
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSubmit_Success(t *testing.T) {
	var calls int32
	var rec recorded
	server := newServer(t, http.StatusOK, `{"status":"success"}`, &calls, &rec)

	client, err := submit.New(server.URL, submit.WithHTTPClient(server.Client()), submit.WithUserAgent("formctl-test"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	payload := model.Payload{"name": "Ada", "email": "ada@example.com"}
	resp, err := client.Submit(context.Background(), payload)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !resp.Succeeded() || resp.Err() != nil {
		t.Fatalf("expected success, got %+v", resp)
	}
	if resp.HTTPStatus != http.StatusOK {
		t.Fatalf("unexpected http status %d", resp.HTTPStatus)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
	if rec.method != http.MethodPost {
		t.Fatalf("expected POST, got %s", rec.method)
	}
	if rec.contentType != submit.DefaultContentType {
		t.Fatalf("unexpected content type %q", rec.contentType)
	}
	if rec.userAgent != "formctl-test" {
		t.Fatalf("unexpected user agent %q", rec.userAgent)
	}
	if diff := cmp.Diff(map[string]string(payload), rec.body); diff != "" {
		t.Fatalf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmit_RejectedStatus(t *testing.T) {
	var calls int32
	server := newServer(t, http.StatusOK, `{"status":"error","message":"<b>Quota</b> exceeded"}`, &calls, nil)
	client, err := submit.New(server.URL, submit.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	resp, err := client.Submit(context.Background(), model.Payload{"name": "Ada"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.Succeeded() {
		t.Fatalf("expected rejection, got %+v", resp)
	}
	if resp.Message != "Quota exceeded" {
		t.Fatalf("expected markup to be stripped, got %q", resp.Message)
	}
	var rejected *submit.RejectedError
	if !errors.As(resp.Err(), &rejected) || rejected.Status != "error" {
		t.Fatalf("expected RejectedError, got %v", resp.Err())
	}
}

func TestSubmit_DecodesBodyRegardlessOfHTTPStatus(t *testing.T) {
	var calls int32
	server := newServer(t, http.StatusInternalServerError, `{"status":"success"}`, &calls, nil)
	client, err := submit.New(server.URL, submit.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	resp, err := client.Submit(context.Background(), model.Payload{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !resp.Succeeded() || resp.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unexpected response %+v", resp)
	}
	if calls != 1 {
		t.Fatalf("expected no retries, got %d calls", calls)
	}
}

func TestSubmit_MalformedResponse(t *testing.T) {
	var calls int32
	server := newServer(t, http.StatusBadGateway, `<html>bad gateway</html>`, &calls, nil)
	client, err := submit.New(server.URL, submit.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = client.Submit(context.Background(), model.Payload{})
	if !errors.Is(err, submit.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
}

func TestSubmit_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client, err := submit.New(url)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Submit(context.Background(), model.Payload{}); err == nil {
		t.Fatalf("expected transport error")
	}
}

func TestSubmit_CanceledContext(t *testing.T) {
	var calls int32
	server := newServer(t, http.StatusOK, `{"status":"success"}`, &calls, nil)
	client, err := submit.New(server.URL, submit.WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Submit(ctx, model.Payload{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected no request, got %d", calls)
	}
}

func TestSubmit_ContentTypeOverride(t *testing.T) {
	var calls int32
	var rec recorded
	server := newServer(t, http.StatusOK, `{"status":"success"}`, &calls, &rec)
	client, err := submit.New(server.URL,
		submit.WithHTTPClient(server.Client()),
		submit.WithContentType("text/plain;charset=utf-8"),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.Submit(context.Background(), model.Payload{"a": "b"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rec.contentType != "text/plain;charset=utf-8" {
		t.Fatalf("unexpected content type %q", rec.contentType)
	}
	if rec.body["a"] != "b" {
		t.Fatalf("expected JSON body regardless of content type, got %v", rec.body)
	}
}

func TestNew_RejectsBadEndpoints(t *testing.T) {
	if _, err := submit.New("  "); !errors.Is(err, submit.ErrEndpointRequired) {
		t.Fatalf("expected ErrEndpointRequired, got %v", err)
	}
	for _, endpoint := range []string{"/relative", "ftp://example.com/x", "https://"} {
		if _, err := submit.New(endpoint); err == nil {
			t.Fatalf("expected %q to be rejected", endpoint)
		}
	}
}

func TestRejectedError_DefaultMessage(t *testing.T) {
	err := submit.Response{Status: "error"}.Err()
	want := `submit: Submission failed (status "error")`
	if err == nil || err.Error() != want {
		t.Fatalf("got %v, want %q", err, want)
	}
}
