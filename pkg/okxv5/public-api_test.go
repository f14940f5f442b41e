package okxv5

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

func TestGetServerTime(t *testing.T) {
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v5/public/time" {
			t.Errorf("request path | got: %v, want: %v", r.URL.Path, "/api/v5/public/time")
		}
		fmt.Fprint(w, `{"code":"0","msg":"","data":[{"ts":"1644499170774"}]}`)
	})

	serverTime, err := oc.GetServerTime()
	if err != nil {
		t.Fatalf("GetServerTime() returned err | got: %v, want: nil", err)
	}
	if len(serverTime.Times) != 1 || serverTime.Times[0].Ts != "1644499170774" {
		t.Errorf("GetServerTime() decoded incorrectly | got: %+v", serverTime.Times)
	}
}

func TestGetTickerRequiredArg(t *testing.T) {
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation error reached the transport")
	})
	_, err := oc.GetTicker("")
	if !errors.Is(err, okx.ErrMissingArg) {
		t.Errorf("GetTicker(\"\") err | got: %v, want: %v", err, okx.ErrMissingArg)
	}
}

func TestGetIndexTickersRequiresOne(t *testing.T) {
	var rawQuery string
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		okBody(w)
	})

	_, err := oc.GetIndexTickers("", "")
	if !errors.Is(err, okx.ErrMissingArg) {
		t.Errorf("GetIndexTickers(\"\",\"\") err | got: %v, want: %v", err, okx.ErrMissingArg)
	}

	// Both together is documented as accepted for this endpoint; instId
	// takes precedence server-side
	_, err = oc.GetIndexTickers("USDT", "BTC-USDT")
	if err != nil {
		t.Errorf("GetIndexTickers() with both returned err | got: %v, want: nil", err)
	}
	if rawQuery != "instId=BTC-USDT&quoteCcy=USDT" {
		t.Errorf("query string | got: %q, want: %q", rawQuery, "instId=BTC-USDT&quoteCcy=USDT")
	}
}

func TestGetCandlesQuery(t *testing.T) {
	var rawQuery string
	var path string
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		rawQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"code":"0","msg":"","data":[["1644499170774","41006.8","41012.9","40996.2","41002.7","1.2","49218.6"]]}`)
	})

	candles, err := oc.GetCandles("BTC-USDT", CandlesWithBar(okx.Bar15m), CandlesWithLimit(2))
	if err != nil {
		t.Fatalf("GetCandles() returned err | got: %v, want: nil", err)
	}
	if path != "/api/v5/market/candles" {
		t.Errorf("request path | got: %v, want: %v", path, "/api/v5/market/candles")
	}
	if rawQuery != "bar=15m&instId=BTC-USDT&limit=2" {
		t.Errorf("query string | got: %q, want: %q", rawQuery, "bar=15m&instId=BTC-USDT&limit=2")
	}
	if len(candles.Candles) != 1 {
		t.Fatalf("GetCandles() decoded %v candles, want 1", len(candles.Candles))
	}
	if candles.Candles[0].Open.String() != "41006.8" {
		t.Errorf("candle open | got: %v, want: %v", candles.Candles[0].Open, "41006.8")
	}

	_, err = oc.GetCandles("BTC-USDT", CandlesWithBar(okx.Bar("7m")))
	if !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetCandles() with bad bar err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}
}

func TestInstrumentTypeSubsets(t *testing.T) {
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		okBody(w)
	})

	// delivery-exercise-history is only defined for FUTURES and OPTION
	_, err := oc.GetDeliveryExerciseHistory(okx.InstTypeSpot, "BTC-USD")
	if !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetDeliveryExerciseHistory(SPOT) err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}

	// underlying is only defined for derivatives
	_, err = oc.GetUnderlying(okx.InstTypeSpot)
	if !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetUnderlying(SPOT) err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}

	// mark-price excludes SPOT
	_, err = oc.GetMarkPrice(okx.InstTypeSpot)
	if !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetMarkPrice(SPOT) err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}

	_, err = oc.GetUnderlying(okx.InstTypeSwap)
	if err != nil {
		t.Errorf("GetUnderlying(SWAP) returned err | got: %v, want: nil", err)
	}
}

func TestGetSystemStatusStateEnum(t *testing.T) {
	oc := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		okBody(w)
	})
	_, err := oc.GetSystemStatus(StatusWithState("paused"))
	if !errors.Is(err, okx.ErrInvalidArg) {
		t.Errorf("GetSystemStatus() with bad state err | got: %v, want: %v", err, okx.ErrInvalidArg)
	}
	_, err = oc.GetSystemStatus(StatusWithState("ongoing"))
	if err != nil {
		t.Errorf("GetSystemStatus() returned err | got: %v, want: nil", err)
	}
}
