package okxv3

import (
	"fmt"
	"net/url"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

// Options write their query parameter only when called, so parameters
// that are not supplied never appear in the query string. Enum-valued
// options validate and return an error wrapping okx.ErrInvalidArg before
// any network call is made.

// For *OkxClient method GetOrderBook()
type GetOrderBookOption func(query url.Values) error

// Number of results per side, maximum 200. Defaults to full depth if not
// called
func BookWithSize(size int) GetOrderBookOption {
	return func(query url.Values) error {
		query.Add("size", fmt.Sprintf("%v", size))
		return nil
	}
}

// Aggregate the book by rounding prices to the given increment. Defaults
// to no aggregation if not called
func BookWithDepth(depth string) GetOrderBookOption {
	return func(query url.Values) error {
		query.Add("depth", depth)
		return nil
	}
}

// For *OkxClient method GetTrades()
type GetTradesOption func(query url.Values) error

// Number of results per request, maximum 100. Defaults to 100 if not called
func TradesWithLimit(limit int) GetTradesOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient method GetCandles()
type GetCandlesOption func(query url.Values) error

// Start of the window as an ISO-8601 timestamp
func CandlesWithStart(start string) GetCandlesOption {
	return func(query url.Values) error {
		query.Add("start", start)
		return nil
	}
}

// End of the window as an ISO-8601 timestamp
func CandlesWithEnd(end string) GetCandlesOption {
	return func(query url.Values) error {
		query.Add("end", end)
		return nil
	}
}

// Candle interval in seconds. Defaults to 60 if not called
//
// # Enum:
//
// 'granularity': 60, 180, 300, 900, 1800, 3600, 7200, 14400, 21600,
// 43200, 86400, 604800
func CandlesWithGranularity(granularity Granularity) GetCandlesOption {
	return func(query url.Values) error {
		if !granularity.Valid() {
			return fmt.Errorf("%w | unknown granularity %v", okx.ErrInvalidArg, granularity)
		}
		query.Add("granularity", fmt.Sprintf("%v", int(granularity)))
		return nil
	}
}

// For *OkxClient method GetLedger()
type GetLedgerOption func(query url.Values) error

// Restrict results to one ledger entry type. Defaults to all types if
// not called
func LedgerWithType(ledgerType LedgerType) GetLedgerOption {
	return func(query url.Values) error {
		if !ledgerType.Valid() {
			return fmt.Errorf("%w | unknown ledger type %q", okx.ErrInvalidArg, ledgerType)
		}
		query.Add("type", string(ledgerType))
		return nil
	}
}

// Pagination: request entries older than the given ledger ID
func LedgerWithAfter(after string) GetLedgerOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request entries newer than the given ledger ID
func LedgerWithBefore(before string) GetLedgerOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func LedgerWithLimit(limit int) GetLedgerOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient method GetWithdrawalFee()
type GetWithdrawalFeeOption func(query url.Values) error

// Restrict results to one currency. Defaults to all currencies if not
// called
func FeeWithCurrency(currency string) GetWithdrawalFeeOption {
	return func(query url.Values) error {
		query.Add("currency", currency)
		return nil
	}
}

// For *OkxClient methods GetAccountLedger(), GetOrders(),
// GetPendingOrders(), and GetFills()
type PageOption func(query url.Values) error

// Pagination: request records older than the given ID
func PageWithAfter(after string) PageOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request records newer than the given ID
func PageWithBefore(before string) PageOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func PageWithLimit(limit int) PageOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient method GetFills()
type GetFillsOption func(query url.Values) error

// Restrict results to fills of one order
func FillsWithOrderId(orderId string) GetFillsOption {
	return func(query url.Values) error {
		query.Add("order_id", orderId)
		return nil
	}
}

// Pagination: request fills older than the given fill ID
func FillsWithAfter(after string) GetFillsOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request fills newer than the given fill ID
func FillsWithBefore(before string) GetFillsOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func FillsWithLimit(limit int) GetFillsOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}
