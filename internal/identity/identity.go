// Package identity abstracts the hosted identity provider. The application
// never stores credentials; it only needs to know who the caller is.
package identity

import (
	"net/http"
)

// Identity is the authenticated caller as reported by the provider:
// the provider's stable subject id plus the primary email at sign-in.
type Identity struct {
	ExternalID string
	Email      string
}

// Provider resolves the caller of an HTTP request. A nil Identity with a
// nil error means the request is anonymous; it is not an error by itself.
type Provider interface {
	Caller(r *http.Request) (*Identity, error)
}
