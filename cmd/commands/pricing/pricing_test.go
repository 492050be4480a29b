package pricing

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wjwat/porkpy/internal/porkbun"
)

func newPricingServer(t *testing.T, response string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pricing/get" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if len(body) != 0 {
			t.Errorf("expected empty request body, got %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execPricing(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPricing_FullListPassesThrough(t *testing.T) {
	response := `{"status":"SUCCESS","pricing":{"com":{"registration":"9.68"},"net":{"registration":"10.72"}}}`
	srv := newPricingServer(t, response)
	t.Setenv(porkbun.EnvEndpoint, srv.URL)

	out, err := execPricing(t)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.TrimSpace(out) != response {
		t.Errorf("output = %q, want the raw response", out)
	}
}

func TestPricing_FilterDropsUnknownTLDs(t *testing.T) {
	srv := newPricingServer(t, `{"status":"SUCCESS","pricing":{"com":{"registration":"9.68"}}}`)
	t.Setenv(porkbun.EnvEndpoint, srv.URL)

	out, err := execPricing(t, "--tld", "com", "--tld", "notarealtld")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var got struct {
		Pricing map[string]any `json:"pricing"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got.Pricing) != 1 {
		t.Fatalf("expected 1 pricing entry, got %d", len(got.Pricing))
	}
	if _, ok := got.Pricing["com"]; !ok {
		t.Error("expected pricing entry for com")
	}
}

func TestPricing_UpstreamFailurePrintsEmptyObject(t *testing.T) {
	srv := newPricingServer(t, `{"status":"ERROR","message":"Something went wrong."}`)
	t.Setenv(porkbun.EnvEndpoint, srv.URL)

	out, err := execPricing(t)
	if !errors.Is(err, porkbun.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got: %v", err)
	}
	if strings.TrimSpace(out) != "{}" {
		t.Errorf("output = %q, want {}", out)
	}
}
