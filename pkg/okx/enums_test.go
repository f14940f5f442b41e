package okx

import "testing"

func TestEnumValidity(t *testing.T) {
	t.Run("instrument types", func(t *testing.T) {
		for _, it := range []InstrumentType{InstTypeSpot, InstTypeMargin, InstTypeSwap, InstTypeFutures, InstTypeOption} {
			if !it.Valid() {
				t.Errorf("InstrumentType.Valid() for %q | got: false, want: true", it)
			}
		}
		if InstrumentType("spot").Valid() {
			t.Error("InstrumentType.Valid() is case sensitive, lowercase accepted | got: true, want: false")
		}
		if InstrumentType("").Valid() {
			t.Error("InstrumentType.Valid() for empty string | got: true, want: false")
		}
	})

	t.Run("margin modes", func(t *testing.T) {
		if !MarginCross.Valid() || !MarginIsolated.Valid() {
			t.Error("MarginMode.Valid() rejected a defined mode")
		}
		if MarginMode("crossed").Valid() {
			t.Error("MarginMode.Valid() for undefined mode | got: true, want: false")
		}
	})

	t.Run("order states", func(t *testing.T) {
		for _, s := range []OrderState{OrderLive, OrderPartiallyFilled, OrderFilled, OrderCanceled} {
			if !s.Valid() {
				t.Errorf("OrderState.Valid() for %q | got: false, want: true", s)
			}
		}
		if OrderState("open").Valid() {
			t.Error("OrderState.Valid() for undefined state | got: true, want: false")
		}
	})

	t.Run("bill types", func(t *testing.T) {
		if !BillFundingFee.Valid() || !BillTrade.Valid() {
			t.Error("BillType.Valid() rejected a defined code")
		}
		if BillType("99").Valid() {
			t.Error("BillType.Valid() for undefined code | got: true, want: false")
		}
	})

	t.Run("bars", func(t *testing.T) {
		if !Bar1m.Valid() || !Bar1D.Valid() || !Bar1Y.Valid() {
			t.Error("Bar.Valid() rejected a defined granularity")
		}
		if Bar("7m").Valid() {
			t.Error("Bar.Valid() for undefined granularity | got: true, want: false")
		}
	})
}
