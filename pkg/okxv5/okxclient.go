// Package okxv5 is a client for the OKX v5 REST API. It wraps the public
// market-data, public-data and system endpoints, and the private account,
// trade and asset endpoints, signing private requests with the scheme in
// the shared okx package.
//
// The okxclient.go file specifically contains the client struct
// declaration, the client constructor with its functional options, and the
// error-logger setter.
package okxv5

import (
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

var sharedClient = &http.Client{
	Timeout: time.Second * 10, // Set a 10-second timeout for requests
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 5 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

type OkxClient struct {
	Credentials okx.Credentials
	BaseUrl     string
	Client      *http.Client
	ErrorLogger *log.Logger

	// timestampSource supplies the OK-ACCESS-TIMESTAMP value for private
	// calls. Defaults to a per-call fetch of the exchange's server time.
	timestampSource func() (string, error)
}

// ClientOption configures an OkxClient at construction time. The client is
// immutable once built apart from SetErrorLogger.
type ClientOption func(oc *OkxClient)

// WithBaseUrl overrides the production base URL. Useful for the demo
// trading environment and for tests against a local server.
func WithBaseUrl(baseUrl string) ClientOption {
	return func(oc *OkxClient) {
		oc.BaseUrl = baseUrl
	}
}

// WithHTTPClient overrides the shared http.Client. The client passed in is
// used as-is; transport reuse and concurrency safety are its concern.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(oc *OkxClient) {
		oc.Client = client
	}
}

// WithTimestampSource installs a caller-supplied timestamp source for
// private calls. When set, no server-time fetch occurs; the returned
// string is signed over and sent verbatim in OK-ACCESS-TIMESTAMP, so it
// must already be in the exchange's ISO-8601 millisecond format.
func WithTimestampSource(source func() (string, error)) ClientOption {
	return func(oc *OkxClient) {
		oc.timestampSource = source
	}
}

// NewOkxClient creates a client for the OKX v5 REST API with the keys
// passed to args 'apiKey', 'secretKey' and 'passphrase'. All three may be
// empty for a client that only calls public endpoints. Environment
// variable lookup is deliberately not done here; compose it at the call
// site (see examples/envclient).
//
// # Example Usage:
//
//	oc := okxv5.NewOkxClient(apiKey, secretKey, passphrase)
//	balance, err := oc.GetBalance()
func NewOkxClient(apiKey, secretKey, passphrase string, options ...ClientOption) *OkxClient {
	oc := &OkxClient{
		Credentials: okx.Credentials{
			APIKey:     apiKey,
			SecretKey:  secretKey,
			Passphrase: passphrase,
		},
		BaseUrl:     baseUrl,
		Client:      sharedClient,
		ErrorLogger: log.New(os.Stderr, "", log.LstdFlags),
	}
	for _, option := range options {
		option(oc)
	}
	if oc.timestampSource == nil {
		oc.timestampSource = oc.serverTimestamp
	}
	return oc
}

// SetErrorLogger creates a new custom error logger for the client logging
// to the provided 'output' io.Writer, sets it on the client, and returns
// it.
func (oc *OkxClient) SetErrorLogger(output io.Writer) *log.Logger {
	logger := log.New(output, "", log.LstdFlags)
	oc.ErrorLogger = logger
	return logger
}
