// The data.go file contains the data structure declarations for incoming
// JSON messages on the older API surface. Unlike v5 there is no response
// envelope; successful bodies are bare objects or arrays, and error bodies
// arrive with a non-2xx status.
package okxv3

import (
	"encoding/json"
	"fmt"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
	"github.com/shopspring/decimal"
)

type ServerTime struct {
	Iso   string `json:"iso"`
	Epoch string `json:"epoch"`
}

type Instrument struct {
	InstrumentId  string `json:"instrument_id"`
	BaseCurrency  string `json:"base_currency"`
	QuoteCurrency string `json:"quote_currency"`
	MinSize       string `json:"min_size"`
	SizeIncrement string `json:"size_increment"`
	TickSize      string `json:"tick_size"`
}

// BookLevel is one price level of an order book, sent as a positional
// array ["price", "size", "num_orders"].
type BookLevel struct {
	Price     string
	Size      string
	NumOrders string
}

func (bl *BookLevel) UnmarshalJSON(data []byte) error {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	if len(v) != 3 {
		return fmt.Errorf("%w | incorrect length", okx.ErrUnexpectedJSONInput)
	}
	bl.Price = v[0]
	bl.Size = v[1]
	bl.NumOrders = v[2]
	return nil
}

type OrderBook struct {
	Asks      []BookLevel `json:"asks"`
	Bids      []BookLevel `json:"bids"`
	Timestamp string      `json:"timestamp"`
}

type Ticker struct {
	InstrumentId   string `json:"instrument_id"`
	Last           string `json:"last"`
	BestAsk        string `json:"best_ask"`
	BestBid        string `json:"best_bid"`
	Open24h        string `json:"open_24h"`
	High24h        string `json:"high_24h"`
	Low24h         string `json:"low_24h"`
	BaseVolume24h  string `json:"base_volume_24h"`
	QuoteVolume24h string `json:"quote_volume_24h"`
	Timestamp      string `json:"timestamp"`
}

type Trade struct {
	TradeId   string `json:"trade_id"`
	Price     string `json:"price"`
	Size      string `json:"size"`
	Side      string `json:"side"`
	Timestamp string `json:"timestamp"`
}

// Candle is one candlestick, sent as a positional array whose first
// element is an ISO timestamp: ["time", "open", "high", "low", "close",
// "volume"].
type Candle struct {
	Time   string
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume string
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	if len(v) != 6 {
		return fmt.Errorf("%w | incorrect length", okx.ErrUnexpectedJSONInput)
	}
	c.Time = v[0]
	var err error
	if c.Open, err = decimal.NewFromString(v[1]); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	if c.High, err = decimal.NewFromString(v[2]); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	if c.Low, err = decimal.NewFromString(v[3]); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	if c.Close, err = decimal.NewFromString(v[4]); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	c.Volume = v[5]
	return nil
}

// WalletBalance is a funding account balance. The fields are always
// numeric on the wire so they decode straight into decimals.
type WalletBalance struct {
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Hold      decimal.Decimal `json:"hold"`
	Available decimal.Decimal `json:"available"`
}

type LedgerEntry struct {
	LedgerId  string `json:"ledger_id"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	Amount    string `json:"amount"`
	Typename  string `json:"typename"`
	Fee       string `json:"fee"`
	Timestamp string `json:"timestamp"`
}

type Currency struct {
	Currency      string `json:"currency"`
	Name          string `json:"name"`
	CanDeposit    string `json:"can_deposit"`
	CanWithdraw   string `json:"can_withdraw"`
	MinWithdrawal string `json:"min_withdrawal"`
}

type WithdrawalFee struct {
	Currency string `json:"currency"`
	MinFee   string `json:"min_fee"`
	MaxFee   string `json:"max_fee"`
}

type SpotAccount struct {
	Id        string `json:"id"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	Hold      string `json:"hold"`
	Available string `json:"available"`
}

type Order struct {
	OrderId        string `json:"order_id"`
	ClientOid      string `json:"client_oid"`
	InstrumentId   string `json:"instrument_id"`
	Price          string `json:"price"`
	Size           string `json:"size"`
	Notional       string `json:"notional"`
	Side           string `json:"side"`
	Type           string `json:"type"`
	State          string `json:"state"`
	FilledSize     string `json:"filled_size"`
	FilledNotional string `json:"filled_notional"`
	PriceAvg       string `json:"price_avg"`
	Timestamp      string `json:"timestamp"`
}

type Fill struct {
	LedgerId     string `json:"ledger_id"`
	TradeId      string `json:"trade_id"`
	OrderId      string `json:"order_id"`
	InstrumentId string `json:"instrument_id"`
	Price        string `json:"price"`
	Size         string `json:"size"`
	Fee          string `json:"fee"`
	Currency     string `json:"currency"`
	Side         string `json:"side"`
	Liquidity    string `json:"liquidity"`
	ExecType     string `json:"exec_type"`
	Timestamp    string `json:"timestamp"`
}
