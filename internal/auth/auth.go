package auth

import (
	"errors"

	"github.com/wjwat/porkpy/internal/util"
)

const ServiceName = "porkpy"

// Keychain entry names for the Porkbun credential pair.
const (
	KeyAPI    = "porkbun-apikey"
	KeySecret = "porkbun-secretapikey"
)

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(key string, token string) error
	GetToken(key string) (string, error)
	DeleteToken(key string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeKey normalizes a credential key for consistent keychain lookup.
func NormalizeKey(key string) string {
	return util.NormalizeKey(key)
}
