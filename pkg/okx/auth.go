// Package okx holds the parts of the OKX REST API that are shared by every
// version of the exchange's API surface: signing credentials, the
// canonical-message HMAC signature scheme, timestamp normalization helpers,
// and the enumerated domains (instrument types, margin modes, order states,
// bill types, candlestick bars) referenced by the endpoint wrappers in the
// version-specific client packages.
//
// The auth.go file specifically contains the Credentials struct and the
// Sign function which produces the value for the OK-ACCESS-SIGN header.
package okx

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Credentials holds one OKX API identity. All three values are issued
// together when an API key is created on the exchange. A zero Credentials
// value is usable for public (unsigned) endpoints only.
//
// Credentials are stored verbatim and must never be written to any log or
// error message.
type Credentials struct {
	APIKey     string
	SecretKey  string
	Passphrase string
}

// HasSecret returns true if a secret key is present. Signing with an empty
// secret still produces a (useless) signature; callers who want to fail
// fast on missing credentials can check this first.
func (c Credentials) HasSecret() bool {
	return c.SecretKey != ""
}

// Sign computes the OK-ACCESS-SIGN header value for one request. The
// canonical message is the concatenation of the timestamp string (exactly
// as it will be sent in OK-ACCESS-TIMESTAMP), the uppercase HTTP method,
// and the request path including any query string in its final encoded
// form. The message is MACed with HMAC-SHA256 keyed by the secret, and the
// raw digest is standard (padded, non-URL-safe) base64 encoded.
//
// Sign is a pure function; the same inputs always produce the same
// signature. Note a signature is only valid for the exact tuple it was
// computed over, so the requestPath passed here must be byte-identical to
// the one sent on the wire.
func Sign(secret, timestamp, method, requestPath string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte(method))
	mac.Write([]byte(requestPath))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
