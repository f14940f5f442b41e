package okxv3

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
	"github.com/shopspring/decimal"
)

func TestCandleUnmarshalJSON(t *testing.T) {
	t.Run("valid candle", func(t *testing.T) {
		input := `["2022-02-07T21:40:00.000Z","43521.5","43580.0","43500.1","43566.2","12.48271"]`
		var c Candle
		if err := json.Unmarshal([]byte(input), &c); err != nil {
			t.Fatalf("Unmarshal returned err | got: %v, want: nil", err)
		}
		if c.Time != "2022-02-07T21:40:00.000Z" {
			t.Errorf("time | got: %v, want: %v", c.Time, "2022-02-07T21:40:00.000Z")
		}
		if want := decimal.RequireFromString("43580.0"); !c.High.Equal(want) {
			t.Errorf("high | got: %v, want: %v", c.High, want)
		}
		if c.Volume != "12.48271" {
			t.Errorf("volume | got: %v, want: %v", c.Volume, "12.48271")
		}
	})
	t.Run("wrong length", func(t *testing.T) {
		var c Candle
		err := json.Unmarshal([]byte(`["2022-02-07T21:40:00.000Z","43521.5"]`), &c)
		if !errors.Is(err, okx.ErrUnexpectedJSONInput) {
			t.Errorf("err | got: %v, want: %v", err, okx.ErrUnexpectedJSONInput)
		}
	})
	t.Run("non numeric price", func(t *testing.T) {
		var c Candle
		err := json.Unmarshal([]byte(`["2022-02-07T21:40:00.000Z","oops","1","1","1","1"]`), &c)
		if !errors.Is(err, okx.ErrUnexpectedJSONInput) {
			t.Errorf("err | got: %v, want: %v", err, okx.ErrUnexpectedJSONInput)
		}
	})
}

func TestBookLevelUnmarshalJSON(t *testing.T) {
	input := `{"asks":[["43566.2","0.5","3"]],"bids":[["43566.1","1.2","7"]],"timestamp":"2022-02-07T21:40:25.791Z"}`
	var book OrderBook
	if err := json.Unmarshal([]byte(input), &book); err != nil {
		t.Fatalf("Unmarshal returned err | got: %v, want: nil", err)
	}
	if book.Asks[0].Price != "43566.2" || book.Asks[0].NumOrders != "3" {
		t.Errorf("ask level | got: %+v", book.Asks[0])
	}
	if book.Bids[0].Size != "1.2" {
		t.Errorf("bid size | got: %v, want: %v", book.Bids[0].Size, "1.2")
	}

	var bl BookLevel
	err := json.Unmarshal([]byte(`["43566.2","0.5"]`), &bl)
	if !errors.Is(err, okx.ErrUnexpectedJSONInput) {
		t.Errorf("short level err | got: %v, want: %v", err, okx.ErrUnexpectedJSONInput)
	}
}

func TestWalletBalanceDecimals(t *testing.T) {
	input := `{"currency":"USDT","balance":"100.5","hold":"25.25","available":"75.25"}`
	var wb WalletBalance
	if err := json.Unmarshal([]byte(input), &wb); err != nil {
		t.Fatalf("Unmarshal returned err | got: %v, want: nil", err)
	}
	if !wb.Hold.Add(wb.Available).Equal(wb.Balance) {
		t.Errorf("hold + available != balance | got: %v + %v vs %v", wb.Hold, wb.Available, wb.Balance)
	}
}
