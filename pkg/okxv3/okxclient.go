// Package okxv3 is a client for the older, versioned path-prefixed OKX
// REST API (the "/api/.../v3/" surface). It covers the general, spot and
// account endpoint groups and signs private requests with the scheme in
// the shared okx package. The v5 surface lives in the sibling okxv5
// package.
package okxv3

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
	Timeout: time.Second * 10,
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

	timestampSource func() (string, error)
}

type ClientOption func(oc *OkxClient)

func WithBaseUrl(baseUrl string) ClientOption {
	return func(oc *OkxClient) {
		oc.BaseUrl = baseUrl
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(oc *OkxClient) {
		oc.Client = client
	}
}

// WithTimestampSource installs a caller-supplied timestamp source for
// private calls; when set, no server-time fetch occurs. The returned
// string is signed over and sent verbatim in OK-ACCESS-TIMESTAMP.
func WithTimestampSource(source func() (string, error)) ClientOption {
	return func(oc *OkxClient) {
		oc.timestampSource = source
	}
}

// NewOkxClient creates a client for the older OKX REST API with the keys
// passed to args 'apiKey', 'secretKey' and 'passphrase'. All three may be
// empty for a client that only calls public endpoints.
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
