package okxv3

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

const (
	testAPIKey     = "test-api-key"
	testSecret     = "secret-foo"
	testPassphrase = "test-passphrase"
	testTimestamp  = "2022-02-07T21:37:33.383Z"
)

// newTestClient points a client with fixed credentials and a fixed
// timestamp at a local test server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *OkxClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOkxClient(testAPIKey, testSecret, testPassphrase,
		WithBaseUrl(server.URL),
		WithHTTPClient(server.Client()),
		WithTimestampSource(func() (string, error) { return testTimestamp, nil }),
	)
}

func TestPrivateRequestHeaders(t *testing.T) {
	var gotReq *http.Request
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		fmt.Fprint(w, `[]`)
	})

	_, err := oc.GetWallet()
	if err != nil {
		t.Fatalf("GetWallet() returned err | got: %v, want: nil", err)
	}
	if gotReq == nil {
		t.Fatal("server received no request")
	}
	if got := gotReq.Header.Get("OK-ACCESS-KEY"); got != testAPIKey {
		t.Errorf("OK-ACCESS-KEY header | got: %v, want: %v", got, testAPIKey)
	}
	if got := gotReq.Header.Get("OK-ACCESS-TIMESTAMP"); got != testTimestamp {
		t.Errorf("OK-ACCESS-TIMESTAMP header | got: %v, want: %v", got, testTimestamp)
	}
	if got := gotReq.Header.Get("OK-ACCESS-PASSPHRASE"); got != testPassphrase {
		t.Errorf("OK-ACCESS-PASSPHRASE header | got: %v, want: %v", got, testPassphrase)
	}
	if got := gotReq.Header.Get("User-Agent"); got != userAgent {
		t.Errorf("User-Agent header | got: %v, want: %v", got, userAgent)
	}
	want := okx.Sign(testSecret, testTimestamp, http.MethodGet, gotReq.URL.RequestURI())
	if got := gotReq.Header.Get("OK-ACCESS-SIGN"); got != want {
		t.Errorf("OK-ACCESS-SIGN header | got: %v, want: %v", got, want)
	}
}

func TestServerTimestampFlow(t *testing.T) {
	// No WithTimestampSource: the private call must fetch server time
	// first and sign with the ISO timestamp derived from the fractional
	// epoch string
	var signedTimestamp string
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		if r.URL.Path == "/api/general/v3/time" {
			fmt.Fprint(w, `{"iso":"2022-02-07T21:40:25.791Z","epoch":"1644270025.791"}`)
			return
		}
		signedTimestamp = r.Header.Get("OK-ACCESS-TIMESTAMP")
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	oc := NewOkxClient(testAPIKey, testSecret, testPassphrase,
		WithBaseUrl(server.URL),
		WithHTTPClient(server.Client()),
	)
	_, err := oc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts() returned err | got: %v, want: nil", err)
	}
	if len(calls) != 2 || calls[0] != "/api/general/v3/time" {
		t.Errorf("expected time fetch then signed call | got: %v", calls)
	}
	if signedTimestamp != "2022-02-07T21:40:25.791Z" {
		t.Errorf("derived timestamp | got: %v, want: %v", signedTimestamp, "2022-02-07T21:40:25.791Z")
	}
}

func TestPathParameterIsSigned(t *testing.T) {
	// Identifiers travel in the path on this API version; the signature
	// must cover them
	var gotReq *http.Request
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		fmt.Fprint(w, `{}`)
	})

	_, err := oc.GetOrder("BTC-USDT", "312269865356374016", "")
	if err != nil {
		t.Fatalf("GetOrder() returned err | got: %v, want: nil", err)
	}
	wantURI := "/api/spot/v3/orders/312269865356374016?instrument_id=BTC-USDT"
	if got := gotReq.URL.RequestURI(); got != wantURI {
		t.Errorf("request URI | got: %v, want: %v", got, wantURI)
	}
	want := okx.Sign(testSecret, testTimestamp, http.MethodGet, wantURI)
	if got := gotReq.Header.Get("OK-ACCESS-SIGN"); got != want {
		t.Errorf("OK-ACCESS-SIGN header | got: %v, want: %v", got, want)
	}
}

func TestGetOrderIdentifierValidation(t *testing.T) {
	var invocations atomic.Int32
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		invocations.Add(1)
		fmt.Fprint(w, `{}`)
	})

	t.Run("neither identifier", func(t *testing.T) {
		_, err := oc.GetOrder("BTC-USDT", "", "")
		if !errors.Is(err, okx.ErrMissingArg) {
			t.Errorf("GetOrder() err | got: %v, want: %v", err, okx.ErrMissingArg)
		}
	})
	t.Run("both identifiers", func(t *testing.T) {
		_, err := oc.GetOrder("BTC-USDT", "312269865356374016", "client-oid-7")
		if !errors.Is(err, okx.ErrConflictingArgs) {
			t.Errorf("GetOrder() err | got: %v, want: %v", err, okx.ErrConflictingArgs)
		}
	})
	if n := invocations.Load(); n != 0 {
		t.Errorf("transport invocations | got: %v, want: 0", n)
	}
}

func TestEnumValidationBeforeNetwork(t *testing.T) {
	var invocations atomic.Int32
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		invocations.Add(1)
		fmt.Fprint(w, `[]`)
	})

	t.Run("order state", func(t *testing.T) {
		_, err := oc.GetOrders("BTC-USDT", OrderState("99"))
		if !errors.Is(err, okx.ErrInvalidArg) {
			t.Errorf("GetOrders() err | got: %v, want: %v", err, okx.ErrInvalidArg)
		}
	})
	t.Run("ledger type", func(t *testing.T) {
		_, err := oc.GetLedger(LedgerWithType(LedgerType("99")))
		if !errors.Is(err, okx.ErrInvalidArg) {
			t.Errorf("GetLedger() err | got: %v, want: %v", err, okx.ErrInvalidArg)
		}
	})
	if n := invocations.Load(); n != 0 {
		t.Errorf("transport invocations | got: %v, want: 0", n)
	}
}

func TestOmittedParametersAbsentFromQuery(t *testing.T) {
	var gotQueries []string
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQueries = append(gotQueries, r.URL.RawQuery)
		fmt.Fprint(w, `[]`)
	})

	if _, err := oc.GetLedger(); err != nil {
		t.Fatalf("GetLedger() returned err | got: %v, want: nil", err)
	}
	if _, err := oc.GetLedger(LedgerWithLimit(50)); err != nil {
		t.Fatalf("GetLedger() returned err | got: %v, want: nil", err)
	}
	if gotQueries[0] != "" {
		t.Errorf("query with no options | got: %q, want: empty", gotQueries[0])
	}
	if gotQueries[1] != "limit=50" {
		t.Errorf("query with limit | got: %q, want: %q", gotQueries[1], "limit=50")
	}
}

func TestNotSupportedEndpoint(t *testing.T) {
	var invocations atomic.Int32
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		invocations.Add(1)
	})

	err := oc.GetMarginAccounts()
	if !errors.Is(err, okx.ErrNotSupported) {
		t.Errorf("GetMarginAccounts() err | got: %v, want: %v", err, okx.ErrNotSupported)
	}
	if n := invocations.Load(); n != 0 {
		t.Errorf("transport invocations | got: %v, want: 0", n)
	}
}

func TestTransportFailureIsLogged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := server.Client()
	server.Close()

	oc := NewOkxClient("", "", "",
		WithBaseUrl(server.URL),
		WithHTTPClient(client),
		WithTimestampSource(func() (string, error) { return testTimestamp, nil }),
	)
	buf := new(bytes.Buffer)
	oc.SetErrorLogger(buf)

	if _, err := oc.GetServerTime(); err == nil {
		t.Error("GetServerTime() against closed server | got: nil, want: error")
	}
	if _, err := oc.GetWallet(); err == nil {
		t.Error("GetWallet() against closed server | got: nil, want: error")
	}
	if !strings.Contains(buf.String(), "error sending request") {
		t.Errorf("transport failure not written to ErrorLogger | got: %q", buf.String())
	}
}

func TestNonOKStatusIsError(t *testing.T) {
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"code":30006,"message":"invalid OK-ACCESS-KEY"}`)
	})

	_, err := oc.GetWallet()
	if err == nil {
		t.Fatal("GetWallet() on 401 | got: nil, want: error")
	}
}
