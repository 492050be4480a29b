// Package credentials resolves the Porkbun API key pair for a single
// invocation.
//
// Sources are consulted in a fixed, total order: an explicit
// "key:secret" string, then a JSON credentials file, then the
// PORKPY_API / PORKPY_SECRET environment variables, then (when a
// store is supplied) the OS keychain. Partial credentials are never
// merged across sources, and the resolved pair is immutable after
// construction.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/wjwat/porkpy/internal/auth"
)

// DefaultFile is the credentials file consulted when --file is not given.
const DefaultFile = "porkpy.json"

// Environment variable fallbacks for the key pair.
const (
	EnvAPIKey    = "PORKPY_API"
	EnvSecretKey = "PORKPY_SECRET"
)

var (
	// ErrMalformedSecret indicates an explicit secret string without a colon separator.
	ErrMalformedSecret = errors.New("malformed secret string")

	// ErrCredentialsFile indicates a missing, unreadable, or invalid credentials file.
	ErrCredentialsFile = errors.New("invalid credentials file")
)

// Credentials holds the resolved Porkbun API key pair.
// Either field may be empty; authentication failures are left to the
// server rather than validated locally.
type Credentials struct {
	APIKey       string `json:"apikey"`
	SecretAPIKey string `json:"secretapikey"`
}

// String returns the credential pair as the JSON auth payload sent to
// the API. Used by "auth check --auth-string".
func (c Credentials) String() string {
	data, _ := json.Marshal(c)
	return string(data)
}

// Options selects the credential sources for a single resolution.
type Options struct {
	// SecretString is an explicit "key:secret" pair. Highest precedence.
	SecretString string

	// FilePath is the credentials file path. Empty means DefaultFile.
	FilePath string

	// FileExplicit marks FilePath as user-supplied. An explicit file
	// must exist; the default file is skipped when absent.
	FileExplicit bool

	// Store is an optional keychain consulted only after the
	// environment variables come up empty.
	Store auth.Store
}

// Resolve produces the credential pair for this invocation.
func Resolve(opts Options) (Credentials, error) {
	if opts.SecretString != "" {
		return fromSecretString(opts.SecretString)
	}

	path := opts.FilePath
	if path == "" {
		path = DefaultFile
	}
	if opts.FileExplicit {
		return fromFile(path)
	}
	if _, err := os.Stat(path); err == nil {
		return fromFile(path)
	}

	creds := Credentials{
		APIKey:       os.Getenv(EnvAPIKey),
		SecretAPIKey: os.Getenv(EnvSecretKey),
	}
	if creds.APIKey != "" || creds.SecretAPIKey != "" {
		return creds, nil
	}

	if opts.Store != nil {
		return fromStore(opts.Store), nil
	}
	return creds, nil
}

// fromSecretString splits "key:secret" on the first colon only, so
// secrets containing colons survive intact.
func fromSecretString(s string) (Credentials, error) {
	key, secret, found := strings.Cut(s, ":")
	if !found {
		return Credentials{}, fmt.Errorf("%w: expected \"key:secret\", got %q", ErrMalformedSecret, s)
	}
	return Credentials{APIKey: key, SecretAPIKey: secret}, nil
}

func fromFile(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, fmt.Errorf("%w: %s does not exist", ErrCredentialsFile, path)
		}
		return Credentials{}, fmt.Errorf("%w: failed to read %s: %v", ErrCredentialsFile, path, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return Credentials{}, fmt.Errorf("%w: failed to parse %s: %v", ErrCredentialsFile, path, err)
	}

	apiKey, ok := raw["apikey"]
	if !ok {
		return Credentials{}, fmt.Errorf("%w: %s is missing required key %q", ErrCredentialsFile, path, "apikey")
	}
	secretKey, ok := raw["secretapikey"]
	if !ok {
		return Credentials{}, fmt.Errorf("%w: %s is missing required key %q", ErrCredentialsFile, path, "secretapikey")
	}

	return Credentials{APIKey: apiKey, SecretAPIKey: secretKey}, nil
}

// fromStore reads the key pair from the keychain. Missing entries are
// left empty; the server rejects the request downstream.
func fromStore(store auth.Store) Credentials {
	var creds Credentials
	if v, err := store.GetToken(auth.KeyAPI); err == nil {
		creds.APIKey = v
	}
	if v, err := store.GetToken(auth.KeySecret); err == nil {
		creds.SecretAPIKey = v
	}
	return creds
}
