package okxv5

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func okBody(w http.ResponseWriter) {
	fmt.Fprint(w, `{"code":"0","msg":"","data":[]}`)
}

func TestPrivateRequestHeaders(t *testing.T) {
	var gotReq *http.Request
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		okBody(w)
	})

	_, err := oc.GetBalance()
	if err != nil {
		t.Fatalf("GetBalance() returned err | got: %v, want: nil", err)
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
	// The server-side recomputation over the received request URI must
	// reproduce the transmitted signature exactly
	want := okx.Sign(testSecret, testTimestamp, http.MethodGet, gotReq.URL.RequestURI())
	if got := gotReq.Header.Get("OK-ACCESS-SIGN"); got != want {
		t.Errorf("OK-ACCESS-SIGN header | got: %v, want: %v", got, want)
	}
}

func TestPublicRequestHasNoAuthHeaders(t *testing.T) {
	var gotReq *http.Request
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(r.Context())
		okBody(w)
	})

	_, err := oc.GetTickers(okx.InstTypeSpot)
	if err != nil {
		t.Fatalf("GetTickers() returned err | got: %v, want: nil", err)
	}
	if gotReq.Header.Get("OK-ACCESS-KEY") != "" || gotReq.Header.Get("OK-ACCESS-SIGN") != "" {
		t.Error("public request carried authentication headers")
	}
	if gotReq.Header.Get("User-Agent") != userAgent {
		t.Error("public request missing User-Agent header")
	}
}

func TestServerTimestampFlow(t *testing.T) {
	// No WithTimestampSource: the private call must fetch server time
	// first and sign with the derived ISO timestamp
	var signedTimestamp string
	var calls []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.URL.Path)
		if r.URL.Path == "/api/v5/public/time" {
			fmt.Fprint(w, `{"code":"0","msg":"","data":[{"ts":"1644499170774"}]}`)
			return
		}
		signedTimestamp = r.Header.Get("OK-ACCESS-TIMESTAMP")
		okBody(w)
	}))
	defer server.Close()

	oc := NewOkxClient(testAPIKey, testSecret, testPassphrase,
		WithBaseUrl(server.URL),
		WithHTTPClient(server.Client()),
	)
	_, err := oc.GetAccountConfig()
	if err != nil {
		t.Fatalf("GetAccountConfig() returned err | got: %v, want: nil", err)
	}
	if len(calls) != 2 || calls[0] != "/api/v5/public/time" {
		t.Errorf("expected time fetch then signed call | got: %v", calls)
	}
	if signedTimestamp != "2022-02-10T13:19:30.774Z" {
		t.Errorf("derived timestamp | got: %v, want: %v", signedTimestamp, "2022-02-10T13:19:30.774Z")
	}
}

func TestEitherOrValidation(t *testing.T) {
	var invocations atomic.Int32
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		invocations.Add(1)
		okBody(w)
	})

	t.Run("GetOrder neither provided", func(t *testing.T) {
		_, err := oc.GetOrder("BTC-USDT", "", "")
		if !errors.Is(err, okx.ErrMissingArg) {
			t.Errorf("GetOrder() err | got: %v, want: %v", err, okx.ErrMissingArg)
		}
	})

	t.Run("GetOrder both provided", func(t *testing.T) {
		_, err := oc.GetOrder("BTC-USDT", "312269865356374016", "b15")
		if !errors.Is(err, okx.ErrConflictingArgs) {
			t.Errorf("GetOrder() err | got: %v, want: %v", err, okx.ErrConflictingArgs)
		}
	})

	t.Run("GetAlgoOrdersHistory neither provided", func(t *testing.T) {
		_, err := oc.GetAlgoOrdersHistory(okx.AlgoConditional, "", "")
		if !errors.Is(err, okx.ErrMissingArg) {
			t.Errorf("GetAlgoOrdersHistory() err | got: %v, want: %v", err, okx.ErrMissingArg)
		}
	})

	t.Run("GetAlgoOrdersHistory both provided", func(t *testing.T) {
		_, err := oc.GetAlgoOrdersHistory(okx.AlgoConditional, okx.AlgoEffective, "1234")
		if !errors.Is(err, okx.ErrConflictingArgs) {
			t.Errorf("GetAlgoOrdersHistory() err | got: %v, want: %v", err, okx.ErrConflictingArgs)
		}
	})

	if got := invocations.Load(); got != 0 {
		t.Errorf("validation errors reached the transport | got: %v invocations, want: 0", got)
	}
}

func TestEnumValidationBeforeNetwork(t *testing.T) {
	var invocations atomic.Int32
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		invocations.Add(1)
		okBody(w)
	})

	if _, err := oc.GetTickers(okx.InstrumentType("BONDS")); !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetTickers() err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}
	if _, err := oc.GetBills(BillsWithType(okx.BillType("99"))); !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetBills() err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}
	if _, err := oc.GetLeverageInfo("BTC-USDT-SWAP", okx.MarginMode("crossed")); !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetLeverageInfo() err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}
	if _, err := oc.GetMaxSize("BTC-USDT", okx.TradeMode("margin")); !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetMaxSize() err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}
	if got := invocations.Load(); got != 0 {
		t.Errorf("validation errors reached the transport | got: %v invocations, want: 0", got)
	}
}

func TestOmittedParametersAbsentFromQuery(t *testing.T) {
	var rawQuery string
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		okBody(w)
	})

	t.Run("no options means no query string", func(t *testing.T) {
		_, err := oc.GetBills()
		if err != nil {
			t.Fatalf("GetBills() returned err | got: %v, want: nil", err)
		}
		if rawQuery != "" {
			t.Errorf("query string not empty | got: %q, want: \"\"", rawQuery)
		}
	})

	t.Run("only supplied options appear", func(t *testing.T) {
		_, err := oc.GetBills(BillsWithLimit(50))
		if err != nil {
			t.Fatalf("GetBills() returned err | got: %v, want: nil", err)
		}
		if rawQuery != "limit=50" {
			t.Errorf("query string | got: %q, want: %q", rawQuery, "limit=50")
		}
	})
}

func TestNotSupportedEndpoints(t *testing.T) {
	var invocations atomic.Int32
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		invocations.Add(1)
		okBody(w)
	})

	if _, err := oc.GetLightningDeposits("BTC", "0.001"); !errors.Is(err, okx.ErrNotSupported) {
		t.Errorf("GetLightningDeposits() err | got: %v, want: %v", err, okx.ErrNotSupported)
	}
	if _, err := oc.GetLightningWithdrawals("BTC", "lnbc..."); !errors.Is(err, okx.ErrNotSupported) {
		t.Errorf("GetLightningWithdrawals() err | got: %v, want: %v", err, okx.ErrNotSupported)
	}
	if _, err := oc.GetSubaccountList(); !errors.Is(err, okx.ErrNotSupported) {
		t.Errorf("GetSubaccountList() err | got: %v, want: %v", err, okx.ErrNotSupported)
	}
	if got := invocations.Load(); got != 0 {
		t.Errorf("stub endpoints reached the transport | got: %v invocations, want: 0", got)
	}
}

func TestExchangeErrorCodePassedThrough(t *testing.T) {
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code":"50113","msg":"Invalid Sign","data":[]}`)
	})

	balance, err := oc.GetBalance()
	if err != nil {
		t.Fatalf("GetBalance() returned err for exchange-level error | got: %v, want: nil", err)
	}
	if balance.Code != "50113" || balance.Msg != "Invalid Sign" {
		t.Errorf("exchange code/msg not passed through | got: %v %q", balance.Code, balance.Msg)
	}
}

func TestNonOKStatusIsError(t *testing.T) {
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	})

	_, err := oc.GetBalance()
	if err == nil {
		t.Error("GetBalance() on 502 response | got: nil, want: non-nil")
	}
}

func TestOrderQueryUsesExactlyOneIdentifier(t *testing.T) {
	var rawQuery string
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		okBody(w)
	})

	_, err := oc.GetOrder("BTC-USDT", "", "client-oid-7")
	if err != nil {
		t.Fatalf("GetOrder() returned err | got: %v, want: nil", err)
	}
	if rawQuery != "clOrdId=client-oid-7&instId=BTC-USDT" {
		t.Errorf("query string | got: %q, want: %q", rawQuery, "clOrdId=client-oid-7&instId=BTC-USDT")
	}
}
