// Package porkbun is a thin client for the Porkbun REST API v3.
//
// Every operation is a single JSON POST, and responses are returned as
// raw JSON for the caller to print verbatim. The client is a
// translation layer, not a semantic API: upstream payloads, error
// vocabulary included, pass through unmodified.
package porkbun

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/wjwat/porkpy/internal/credentials"
	"github.com/wjwat/porkpy/internal/util"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.porkbun.com/api/json/v3"

	// ipv4Host forces requests over IPv4; useful when checking which
	// address the API sees for DDNS-style setups.
	ipv4Host = "api-ipv4.porkbun.com"

	// EnvEndpoint overrides the base URL when set. Used by tests.
	EnvEndpoint = "PORKPY_ENDPOINT"

	requestTimeout = 30 * time.Second
)

// EditAdvisory is returned by EditRecord in place of an API call. The
// provider's edit endpoint proved unreliable, so edit is permanently
// disabled rather than half-working.
const EditAdvisory = "Edit routes currently not working. To edit please pull down the pre-existing record, delete it, then create it with modified values."

// Client issues authenticated requests against the Porkbun API.
// Credentials are fixed at construction and never mutated.
type Client struct {
	creds   credentials.Credentials
	baseURL string
	client  *http.Client
}

// NewClient returns a Client using the given credential pair.
func NewClient(creds credentials.Credentials) *Client {
	base := DefaultBaseURL
	if v := os.Getenv(EnvEndpoint); v != "" {
		base = v
	}
	return &Client{
		creds:   creds,
		baseURL: base,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Credentials returns the credential pair the client was built with.
func (c *Client) Credentials() credentials.Credentials {
	return c.creds
}

// apiStatus is the base response shape shared by all API calls.
type apiStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// post sends a JSON POST to the given path and returns the raw
// response body. A nil body sends an empty request body.
func (c *Client) post(ctx context.Context, baseURL, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("porkbun: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("porkbun: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %v", ErrTimeout, requestTimeout, err)
		}
		return nil, fmt.Errorf("porkbun: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("porkbun: failed to read response: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("porkbun: response is not valid JSON (HTTP %d)", resp.StatusCode)
	}
	return raw, nil
}

// checkStatus returns ErrUpstream carrying the provider's own message
// when the response status is not SUCCESS.
func checkStatus(raw json.RawMessage) error {
	var st apiStatus
	if err := json.Unmarshal(raw, &st); err != nil {
		return fmt.Errorf("porkbun: failed to decode response: %w", err)
	}
	if st.Status != "SUCCESS" {
		msg := st.Message
		if msg == "" {
			msg = "status " + st.Status
		}
		return fmt.Errorf("%w: %s", ErrUpstream, msg)
	}
	return nil
}

// Ping checks the credential pair against /ping. The boolean reports
// whether the API answered SUCCESS; the raw response is returned
// either way so the caller can print it verbatim.
func (c *Client) Ping(ctx context.Context) (bool, json.RawMessage, error) {
	return c.ping(ctx, c.baseURL)
}

// PingIPv4 is Ping over the provider's IPv4-only host, so the echoed
// IP is always an IPv4 address.
func (c *Client) PingIPv4(ctx context.Context) (bool, json.RawMessage, error) {
	return c.ping(ctx, strings.Replace(c.baseURL, "api.porkbun.com", ipv4Host, 1))
}

func (c *Client) ping(ctx context.Context, baseURL string) (bool, json.RawMessage, error) {
	raw, err := c.post(ctx, baseURL, "/ping", c.creds)
	if err != nil {
		return false, nil, err
	}
	var st apiStatus
	if err := json.Unmarshal(raw, &st); err != nil {
		return false, raw, fmt.Errorf("porkbun: failed to decode response: %w", err)
	}
	return st.Status == "SUCCESS", raw, nil
}

// RetrieveOpts selects what a Retrieve call fetches.
type RetrieveOpts struct {
	// Type and Name select a single name/type pair. Both or neither
	// must be set.
	Type RecordType
	Name string

	// SSL fetches the SSL certificate bundle instead of DNS records.
	// Mutually exclusive with Type/Name.
	SSL bool
}

// validate enforces the option combinations before any network I/O.
func (o RetrieveOpts) validate() error {
	byNameType := o.Type != "" || o.Name != ""
	if o.SSL && byNameType {
		return fmt.Errorf("%w: ssl retrieval cannot be combined with type/name", ErrInvalidOptions)
	}
	if (o.Type != "") != (o.Name != "") {
		missing := "name"
		if o.Type == "" {
			missing = "type"
		}
		return fmt.Errorf("%w: both type and name must be provided, missing %s", ErrInvalidOptions, missing)
	}
	if o.Type != "" {
		return ValidateRecordType(o.Type)
	}
	return nil
}

// Retrieve fetches DNS records (or the SSL bundle) for the domain and
// returns the raw response.
func (c *Client) Retrieve(ctx context.Context, domain string, opts RetrieveOpts) (json.RawMessage, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	path := "/dns/retrieve/" + domain
	switch {
	case opts.SSL:
		path = "/ssl/retrieve/" + domain
	case opts.Type != "":
		path = "/dns/retrieveByNameType/" + domain + "/" + string(opts.Type) + "/" + opts.Name
	}

	raw, err := c.post(ctx, c.baseURL, path, c.creds)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %q: %w", domain, err)
	}
	if err := checkStatus(raw); err != nil {
		return raw, fmt.Errorf("failed to retrieve %q: %w", domain, err)
	}
	return raw, nil
}

// CreateOpts holds the fields for a new DNS record. Optional fields
// left empty are omitted from the payload entirely, never sent as
// empty strings; defaults are the CLI layer's concern.
type CreateOpts struct {
	// Type is the record type. Required.
	Type RecordType

	// Content is the answer content. Required.
	Content string

	// Name is the subdomain, not including the root domain. Empty for
	// a root record, "*" for a wildcard.
	Name string

	// TTL is the time-to-live in seconds. The API minimum is 300.
	TTL string

	// Priority applies to types that support it; sent as "prio".
	Priority string
}

// CreateRecord creates a DNS record for the domain and returns the raw
// response.
func (c *Client) CreateRecord(ctx context.Context, domain string, opts CreateOpts) (json.RawMessage, error) {
	if opts.Type == "" {
		return nil, fmt.Errorf("%w: record type is required", ErrInvalidOptions)
	}
	if err := ValidateRecordType(opts.Type); err != nil {
		return nil, err
	}
	if opts.Content == "" {
		return nil, fmt.Errorf("%w: record content is required", ErrInvalidOptions)
	}

	type payload struct {
		credentials.Credentials
		Type    string `json:"type"`
		Content string `json:"content"`
		Name    string `json:"name,omitempty"`
		TTL     string `json:"ttl,omitempty"`
		Prio    string `json:"prio,omitempty"`
	}

	body := payload{
		Credentials: c.creds,
		Type:        string(opts.Type),
		Content:     opts.Content,
		Name:        opts.Name,
		TTL:         opts.TTL,
		Prio:        opts.Priority,
	}

	raw, err := c.post(ctx, c.baseURL, "/dns/create/"+domain, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create record for %q: %w", domain, err)
	}
	if err := checkStatus(raw); err != nil {
		return raw, fmt.Errorf("failed to create record for %q: %w", domain, err)
	}
	return raw, nil
}

// DeleteRecord deletes the record with the given id. The id is checked
// first, then the confirm flag; both gate the network call.
func (c *Client) DeleteRecord(ctx context.Context, domain string, id string, confirm bool) (json.RawMessage, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: record id is required", ErrMissingConfirmation)
	}
	if !confirm {
		return nil, fmt.Errorf("%w: pass --confirm to delete record %s", ErrMissingConfirmation, id)
	}

	raw, err := c.post(ctx, c.baseURL, "/dns/delete/"+domain+"/"+id, c.creds)
	if err != nil {
		return nil, fmt.Errorf("failed to delete record %q for %q: %w", id, domain, err)
	}
	if err := checkStatus(raw); err != nil {
		return raw, fmt.Errorf("failed to delete record %q for %q: %w", id, domain, err)
	}
	return raw, nil
}

// EditRecord is permanently disabled: the provider's edit endpoint was
// unreliable, so callers are told to delete and recreate instead. It
// performs no network call.
func (c *Client) EditRecord() string {
	return EditAdvisory
}

// Pricing fetches TLD pricing. An empty filter returns the full
// upstream payload unmodified. With a filter, the result contains only
// the TLDs present in both the filter and the response; requested TLDs
// the API does not price are silently dropped.
func (c *Client) Pricing(ctx context.Context, tlds []string) (json.RawMessage, error) {
	raw, err := c.post(ctx, c.baseURL, "/pricing/get", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pricing: %w", err)
	}

	var body struct {
		apiStatus
		Pricing map[string]json.RawMessage `json:"pricing"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("porkbun: failed to decode pricing response: %w", err)
	}
	if body.Status != "SUCCESS" {
		msg := body.Message
		if msg == "" {
			msg = "status " + body.Status
		}
		return json.RawMessage("{}"), fmt.Errorf("failed to fetch pricing: %w: %s", ErrUpstream, msg)
	}

	if len(tlds) == 0 {
		return raw, nil
	}

	filtered := struct {
		Status  string                     `json:"status"`
		Pricing map[string]json.RawMessage `json:"pricing"`
	}{
		Status:  body.Status,
		Pricing: make(map[string]json.RawMessage, len(tlds)),
	}
	for _, tld := range tlds {
		key := util.NormalizeKey(tld)
		if entry, ok := body.Pricing[key]; ok {
			filtered.Pricing[key] = entry
		}
	}

	out, err := json.Marshal(filtered)
	if err != nil {
		return nil, fmt.Errorf("porkbun: failed to encode filtered pricing: %w", err)
	}
	return out, nil
}
