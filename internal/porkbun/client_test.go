package porkbun

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"maps"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wjwat/porkpy/internal/credentials"

	"github.com/google/go-cmp/cmp"
)

// --- Test helpers ---

var testCreds = credentials.Credentials{APIKey: "ak_1", SecretAPIKey: "sk_1"}

// newTestClient creates a Client pointed at the given test server.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	c := NewClient(testCreds)
	c.baseURL = serverURL
	return c
}

// apiSuccess returns a minimal success response body.
func apiSuccess(extra map[string]any) map[string]any {
	m := map[string]any{"status": "SUCCESS"}
	maps.Copy(m, extra)
	return m
}

// apiError returns an error response body.
func apiError(message string) map[string]any {
	return map[string]any{
		"status":  "ERROR",
		"message": message,
	}
}

// newStaticServer creates an httptest.Server that always returns the given JSON.
func newStaticServer(t *testing.T, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Fatalf("failed to encode test response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// captureServer records the request path and body of every call.
type captureServer struct {
	srv   *httptest.Server
	calls int
	path  string
	body  []byte
}

func newCaptureServer(t *testing.T, response any) *captureServer {
	t.Helper()
	cs := &captureServer{}
	cs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.calls++
		cs.path = r.URL.Path
		cs.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(cs.srv.Close)
	return cs
}

// bodyJSON decodes the captured request body into a map for comparison.
func (cs *captureServer) bodyJSON(t *testing.T) map[string]any {
	t.Helper()
	if len(cs.body) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(cs.body, &m); err != nil {
		t.Fatalf("captured body is not valid JSON: %v", err)
	}
	return m
}

func credsBody() map[string]any {
	return map[string]any{"apikey": "ak_1", "secretapikey": "sk_1"}
}

// --- Ping ---

func TestPing_Success(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(map[string]any{"yourIp": "203.0.113.5"}))
	c := newTestClient(t, cs.srv.URL)

	ok, raw, err := c.Ping(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !ok {
		t.Error("expected ok = true")
	}
	if cs.path != "/ping" {
		t.Errorf("expected path /ping, got %s", cs.path)
	}
	if diff := cmp.Diff(credsBody(), cs.bodyJSON(t)); diff != "" {
		t.Errorf("ping payload mismatch (-want +got):\n%s", diff)
	}

	var resp map[string]any
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("raw response is not valid JSON: %v", err)
	}
	if resp["yourIp"] != "203.0.113.5" {
		t.Errorf("expected raw response to pass through yourIp, got %v", resp)
	}
}

func TestPing_BadCredentials(t *testing.T) {
	srv := newStaticServer(t, apiError("Invalid API key. (002)"))
	c := newTestClient(t, srv.URL)

	ok, raw, err := c.Ping(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ok {
		t.Error("expected ok = false")
	}
	// The upstream error payload passes through unmodified.
	var resp map[string]any
	json.Unmarshal(raw, &resp)
	if resp["message"] != "Invalid API key. (002)" {
		t.Errorf("expected upstream message to pass through, got %v", resp)
	}
}

// --- Retrieve ---

func TestRetrieve_AllRecords(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(map[string]any{"records": []any{}}))
	c := newTestClient(t, cs.srv.URL)

	_, err := c.Retrieve(context.Background(), "example.com", RetrieveOpts{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cs.path != "/dns/retrieve/example.com" {
		t.Errorf("expected path /dns/retrieve/example.com, got %s", cs.path)
	}
	if diff := cmp.Diff(credsBody(), cs.bodyJSON(t)); diff != "" {
		t.Errorf("retrieve payload mismatch (-want +got):\n%s", diff)
	}
}

func TestRetrieve_ByNameType(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(map[string]any{"records": []any{}}))
	c := newTestClient(t, cs.srv.URL)

	_, err := c.Retrieve(context.Background(), "example.com", RetrieveOpts{
		Type: RecordTypeA,
		Name: "www",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cs.path != "/dns/retrieveByNameType/example.com/A/www" {
		t.Errorf("unexpected path %s", cs.path)
	}
}

func TestRetrieve_SSL(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(map[string]any{"certificatechain": "..."}))
	c := newTestClient(t, cs.srv.URL)

	_, err := c.Retrieve(context.Background(), "example.com", RetrieveOpts{SSL: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cs.path != "/ssl/retrieve/example.com" {
		t.Errorf("unexpected path %s", cs.path)
	}
}

func TestRetrieve_InvalidCombinations(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(nil))
	c := newTestClient(t, cs.srv.URL)

	tests := map[string]RetrieveOpts{
		"type without name": {Type: RecordTypeA},
		"name without type": {Name: "www"},
		"ssl with type":     {SSL: true, Type: RecordTypeA, Name: "www"},
		"ssl with name":     {SSL: true, Name: "www"},
		"unsupported type":  {Type: "BOGUS", Name: "www"},
	}

	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.Retrieve(context.Background(), "example.com", opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("expected ErrInvalidOptions, got: %v", err)
			}
		})
	}

	if cs.calls != 0 {
		t.Errorf("expected no API calls for invalid options, got %d", cs.calls)
	}
}

func TestRetrieve_UpstreamError(t *testing.T) {
	srv := newStaticServer(t, apiError("Domain is not opted in to API access."))
	c := newTestClient(t, srv.URL)

	raw, err := c.Retrieve(context.Background(), "example.com", RetrieveOpts{})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got: %v", err)
	}
	if raw == nil {
		t.Error("expected raw error payload to be returned for pass-through")
	}
}

// --- CreateRecord ---

func TestCreateRecord_MinimalPayload(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(map[string]any{"id": float64(106926659)}))
	c := newTestClient(t, cs.srv.URL)

	_, err := c.CreateRecord(context.Background(), "example.com", CreateOpts{
		Type:    RecordTypeA,
		Content: "1.2.3.4",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cs.path != "/dns/create/example.com" {
		t.Errorf("unexpected path %s", cs.path)
	}

	// Absent optional fields must be omitted entirely, never sent empty.
	want := map[string]any{
		"apikey":       "ak_1",
		"secretapikey": "sk_1",
		"type":         "A",
		"content":      "1.2.3.4",
	}
	if diff := cmp.Diff(want, cs.bodyJSON(t)); diff != "" {
		t.Errorf("create payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateRecord_FullPayload(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(map[string]any{"id": float64(1)}))
	c := newTestClient(t, cs.srv.URL)

	_, err := c.CreateRecord(context.Background(), "example.com", CreateOpts{
		Type:     RecordTypeMX,
		Content:  "mail.example.com",
		Name:     "*",
		TTL:      "600",
		Priority: "10",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := map[string]any{
		"apikey":       "ak_1",
		"secretapikey": "sk_1",
		"type":         "MX",
		"content":      "mail.example.com",
		"name":         "*",
		"ttl":          "600",
		"prio":         "10",
	}
	if diff := cmp.Diff(want, cs.bodyJSON(t)); diff != "" {
		t.Errorf("create payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateRecord_Validation(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(nil))
	c := newTestClient(t, cs.srv.URL)

	tests := map[string]CreateOpts{
		"missing type":     {Content: "1.2.3.4"},
		"missing content":  {Type: RecordTypeA},
		"unsupported type": {Type: "HTTPS", Content: "1.2.3.4"},
	}

	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.CreateRecord(context.Background(), "example.com", opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("expected ErrInvalidOptions, got: %v", err)
			}
		})
	}

	if cs.calls != 0 {
		t.Errorf("expected no API calls for invalid opts, got %d", cs.calls)
	}
}

// --- DeleteRecord ---

func TestDeleteRecord_HappyPath(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(nil))
	c := newTestClient(t, cs.srv.URL)

	_, err := c.DeleteRecord(context.Background(), "example.com", "106926659", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cs.path != "/dns/delete/example.com/106926659" {
		t.Errorf("unexpected path %s", cs.path)
	}
	if diff := cmp.Diff(credsBody(), cs.bodyJSON(t)); diff != "" {
		t.Errorf("delete payload mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteRecord_RequiresIDAndConfirm(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(nil))
	c := newTestClient(t, cs.srv.URL)

	tests := map[string]struct {
		id      string
		confirm bool
	}{
		"missing id":    {id: "", confirm: true},
		"not confirmed": {id: "101", confirm: false},
		"neither":       {id: "", confirm: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := c.DeleteRecord(context.Background(), "example.com", tc.id, tc.confirm)
			if !errors.Is(err, ErrMissingConfirmation) {
				t.Errorf("expected ErrMissingConfirmation, got: %v", err)
			}
		})
	}

	if cs.calls != 0 {
		t.Errorf("expected no API calls before id/confirm validation, got %d", cs.calls)
	}
}

// --- EditRecord ---

func TestEditRecord_AdvisoryWithoutNetwork(t *testing.T) {
	cs := newCaptureServer(t, apiSuccess(nil))
	c := newTestClient(t, cs.srv.URL)

	got := c.EditRecord()
	if got != EditAdvisory {
		t.Errorf("EditRecord() = %q, want the fixed advisory", got)
	}
	if cs.calls != 0 {
		t.Errorf("expected no API calls for edit, got %d", cs.calls)
	}
}

// --- Pricing ---

func TestPricing_NoFilterPassesThrough(t *testing.T) {
	body := apiSuccess(map[string]any{
		"pricing": map[string]any{
			"com": map[string]any{"registration": "9.68", "renewal": "9.68"},
			"net": map[string]any{"registration": "10.72", "renewal": "10.72"},
		},
	})
	cs := newCaptureServer(t, body)
	c := newTestClient(t, cs.srv.URL)

	raw, err := c.Pricing(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cs.path != "/pricing/get" {
		t.Errorf("unexpected path %s", cs.path)
	}
	if len(cs.body) != 0 {
		t.Errorf("expected empty request body, got %s", cs.body)
	}

	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(body, got); diff != "" {
		t.Errorf("full payload should pass through unmodified (-want +got):\n%s", diff)
	}
}

func TestPricing_FilterDropsUnknownTLDs(t *testing.T) {
	srv := newStaticServer(t, apiSuccess(map[string]any{
		"pricing": map[string]any{
			"com": map[string]any{"registration": "9.68"},
		},
	}))
	c := newTestClient(t, srv.URL)

	raw, err := c.Pricing(context.Background(), []string{"com", "net"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got struct {
		Status  string         `json:"status"`
		Pricing map[string]any `json:"pricing"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if got.Status != "SUCCESS" {
		t.Errorf("status = %q, want SUCCESS", got.Status)
	}
	if len(got.Pricing) != 1 {
		t.Fatalf("expected 1 pricing entry, got %d", len(got.Pricing))
	}
	if _, ok := got.Pricing["com"]; !ok {
		t.Error("expected pricing entry for com")
	}
}

func TestPricing_UpstreamError(t *testing.T) {
	srv := newStaticServer(t, apiError("Something went wrong."))
	c := newTestClient(t, srv.URL)

	raw, err := c.Pricing(context.Background(), nil)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got: %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("expected empty result, got %s", raw)
	}
}

// --- Transport failures ---

func TestPost_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	c.client.Timeout = 50 * time.Millisecond

	_, _, err := c.Ping(context.Background())
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got: %v", err)
	}
}

func TestPost_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	t.Cleanup(srv.Close)

	c := newTestClient(t, srv.URL)
	_, err := c.Retrieve(context.Background(), "example.com", RetrieveOpts{})
	if err == nil {
		t.Fatal("expected error for non-JSON response, got nil")
	}
}
