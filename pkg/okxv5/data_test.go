package okxv5

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

func TestCandle_UnmarshalJSON(t *testing.T) {
	var err error

	t.Run("valid input with volume columns", func(t *testing.T) {
		validInput := `["1644499170774","41006.8","41012.9","40996.2","41002.7","1.2","49218.6"]`
		var candle Candle
		err = json.Unmarshal([]byte(validInput), &candle)
		if err != nil {
			t.Errorf("UnmarshalJSON() returned err | got: %v, want: nil", err)
		}
		if candle.Ts != "1644499170774" {
			t.Errorf("UnmarshalJSON() didn't store correct Ts | got: %v, want: %v", candle.Ts, "1644499170774")
		}
		if candle.High.String() != "41012.9" {
			t.Errorf("UnmarshalJSON() didn't store correct High | got: %v, want: %v", candle.High, "41012.9")
		}
		if candle.Vol != "1.2" || candle.VolCcy != "49218.6" {
			t.Errorf("UnmarshalJSON() didn't store volume columns | got: %v, %v", candle.Vol, candle.VolCcy)
		}
	})

	t.Run("valid input without volume columns", func(t *testing.T) {
		// index and mark-price candles omit the volume columns
		validInput := `["1644499170774","41006.8","41012.9","40996.2","41002.7"]`
		var candle Candle
		err = json.Unmarshal([]byte(validInput), &candle)
		if err != nil {
			t.Errorf("UnmarshalJSON() returned err | got: %v, want: nil", err)
		}
		if candle.Vol != "" {
			t.Errorf("UnmarshalJSON() invented a volume | got: %v, want: \"\"", candle.Vol)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		invalidLength := `["1644499170774","41006.8"]`
		var candle Candle
		err = json.Unmarshal([]byte(invalidLength), &candle)
		if !errors.Is(err, okx.ErrUnexpectedJSONInput) {
			t.Errorf("UnmarshalJSON() err did not contain expected error | got: %v, want: %v", err, okx.ErrUnexpectedJSONInput)
		}
	})

	t.Run("non-numeric price", func(t *testing.T) {
		invalidField := `["1644499170774","not-a-price","41012.9","40996.2","41002.7"]`
		var candle Candle
		err = json.Unmarshal([]byte(invalidField), &candle)
		if !errors.Is(err, okx.ErrUnexpectedJSONInput) {
			t.Errorf("UnmarshalJSON() err did not contain expected error | got: %v, want: %v", err, okx.ErrUnexpectedJSONInput)
		}
	})

	t.Run("not an array", func(t *testing.T) {
		invalidInput := `{"ts":"1644499170774"}`
		var candle Candle
		err = json.Unmarshal([]byte(invalidInput), &candle)
		if err == nil {
			t.Error("UnmarshalJSON() didn't return error for invalid input | got: nil, want: non-nil")
		}
	})
}

func TestBookLevel_UnmarshalJSON(t *testing.T) {
	var err error

	t.Run("valid input", func(t *testing.T) {
		validInput := `["41006.8","0.60038921","0","1"]`
		var level BookLevel
		err = json.Unmarshal([]byte(validInput), &level)
		if err != nil {
			t.Errorf("UnmarshalJSON() returned err | got: %v, want: nil", err)
		}
		if level.Price != "41006.8" || level.Size != "0.60038921" || level.NumOrders != "1" {
			t.Errorf("UnmarshalJSON() didn't store fields correctly | got: %+v", level)
		}
	})

	t.Run("wrong length", func(t *testing.T) {
		invalidLength := `["41006.8","0.60038921"]`
		var level BookLevel
		err = json.Unmarshal([]byte(invalidLength), &level)
		if !errors.Is(err, okx.ErrUnexpectedJSONInput) {
			t.Errorf("UnmarshalJSON() err did not contain expected error | got: %v, want: %v", err, okx.ErrUnexpectedJSONInput)
		}
	})

	t.Run("invalid field type", func(t *testing.T) {
		invalidFieldType := `[41006.8, 0.6, 0, 1]`
		var level BookLevel
		err = json.Unmarshal([]byte(invalidFieldType), &level)
		if err == nil {
			t.Error("UnmarshalJSON() didn't return error for invalid field type | got: nil, want: non-nil")
		}
	})
}

func TestAssetBalanceDecodesDecimals(t *testing.T) {
	input := `{"code":"0","msg":"","data":[{"ccy":"BTC","bal":"0.30103","frozenBal":"0.1","availBal":"0.20103"}]}`
	var resp AssetBalancesResp
	err := json.Unmarshal([]byte(input), &resp)
	if err != nil {
		t.Fatalf("Unmarshal returned err | got: %v, want: nil", err)
	}
	if len(resp.Balances) != 1 {
		t.Fatalf("decoded %v balances, want 1", len(resp.Balances))
	}
	bal := resp.Balances[0]
	if !bal.Bal.Equal(bal.FrozenBal.Add(bal.AvailBal)) {
		t.Errorf("balance arithmetic | got: %v != %v + %v", bal.Bal, bal.FrozenBal, bal.AvailBal)
	}
}
