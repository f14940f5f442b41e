package okxv5

import (
	"fmt"
	"net/url"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

// Every option writes its query parameter only when called, so parameters
// that are not supplied never appear in the query string (not even as
// "key="). Options carrying an enum-valued parameter validate it and
// return an error wrapping okx.ErrInvalidArg before any network call is
// made.

// For *OkxClient method GetTickers()
type GetTickersOption func(query url.Values) error

// Restrict results to instruments under the given underlying, e.g.
// "BTC-USD". Defaults to all underlyings if not called
func TickersWithUly(uly string) GetTickersOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

// For *OkxClient method GetOrderBook()
type GetOrderBookOption func(query url.Values) error

// Order book depth per side, maximum 400. Defaults to 1 if not called
func BookWithDepth(sz int) GetOrderBookOption {
	return func(query url.Values) error {
		query.Add("sz", fmt.Sprintf("%v", sz))
		return nil
	}
}

// For *OkxClient methods GetCandles(), GetHistoryCandles(),
// GetIndexCandles(), and GetMarkPriceCandles()
type GetCandlesOption func(query url.Values) error

// Candlestick granularity. Defaults to "1m" if not called
//
// # Enum:
//
// 'bar': "1m", "3m", "5m", "15m", "30m", "1H", "2H", "4H", "6H", "12H",
// "1D", "2D", "3D", "1W", "1M", "3M", "6M", "1Y"
func CandlesWithBar(bar okx.Bar) GetCandlesOption {
	return func(query url.Values) error {
		if !bar.Valid() {
			return fmt.Errorf("%w | unknown bar %q", okx.ErrInvalidArg, bar)
		}
		query.Add("bar", string(bar))
		return nil
	}
}

// Pagination: request records older than the given timestamp. Defaults to
// most recent records if not called
func CandlesWithAfter(after string) GetCandlesOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request records newer than the given timestamp
func CandlesWithBefore(before string) GetCandlesOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 300. Defaults to 100 if not called
func CandlesWithLimit(limit int) GetCandlesOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient method GetTrades()
type GetTradesOption func(query url.Values) error

// Number of results per request, maximum 500. Defaults to 100 if not called
func TradesWithLimit(limit int) GetTradesOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient method GetInstruments()
type GetInstrumentsOption func(query url.Values) error

// Underlying, required for the OPTION instrument type. Defaults to all
// underlyings if not called
func InstrumentsWithUly(uly string) GetInstrumentsOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

// Restrict results to one instrument ID
func InstrumentsWithInstId(instId string) GetInstrumentsOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

// For *OkxClient methods GetDeliveryExerciseHistory() and
// GetFundingRateHistory()
type GetHistoryOption func(query url.Values) error

// Pagination: request records older than the given timestamp
func HistoryWithAfter(after string) GetHistoryOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request records newer than the given timestamp
func HistoryWithBefore(before string) GetHistoryOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func HistoryWithLimit(limit int) GetHistoryOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient method GetOpenInterest()
type GetOpenInterestOption func(query url.Values) error

// Underlying, e.g. "BTC-USD". Required when instType is OPTION
func OIWithUly(uly string) GetOpenInterestOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

// Restrict results to one instrument ID
func OIWithInstId(instId string) GetOpenInterestOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

// For *OkxClient method GetOptionSummary()
type GetOptionSummaryOption func(query url.Values) error

// Contract expiry date in "YYMMDD" format. Defaults to all expiries if
// not called
func OptSummaryWithExpTime(expTime string) GetOptionSummaryOption {
	return func(query url.Values) error {
		query.Add("expTime", expTime)
		return nil
	}
}

// For *OkxClient method GetDiscountRateQuota()
type GetDiscountRateOption func(query url.Values) error

// Restrict results to one currency
func DiscountWithCcy(ccy string) GetDiscountRateOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// Discount level, 1-5. Defaults to all levels if not called
func DiscountWithLv(discountLv int) GetDiscountRateOption {
	return func(query url.Values) error {
		query.Add("discountLv", fmt.Sprintf("%v", discountLv))
		return nil
	}
}

// For *OkxClient method GetMarkPrice()
type GetMarkPriceOption func(query url.Values) error

func MarkPriceWithUly(uly string) GetMarkPriceOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

func MarkPriceWithInstId(instId string) GetMarkPriceOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

// For *OkxClient method GetPositionTiers()
type GetPositionTiersOption func(query url.Values) error

// Underlying, required for SWAP/FUTURES/OPTION instrument types
func TiersWithUly(uly string) GetPositionTiersOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

// Margin currency, only applicable to cross MARGIN
func TiersWithCcy(ccy string) GetPositionTiersOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// Restrict results to one instrument ID, only applicable to MARGIN
func TiersWithInstId(instId string) GetPositionTiersOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

// Restrict results to one tier
func TiersWithTier(tier int) GetPositionTiersOption {
	return func(query url.Values) error {
		query.Add("tier", fmt.Sprintf("%v", tier))
		return nil
	}
}

// For *OkxClient method GetInsuranceFund()
type GetInsuranceFundOption func(query url.Values) error

// Fund flow type. Defaults to all types if not called
//
// # Enum:
//
// 'fundType': "liquidation_balance_deposit", "bankruptcy_loss",
// "platform_revenue"
func InsuranceWithType(fundType string) GetInsuranceFundOption {
	return func(query url.Values) error {
		validArgs := map[string]bool{
			"liquidation_balance_deposit": true,
			"bankruptcy_loss":             true,
			"platform_revenue":            true,
		}
		if !validArgs[fundType] {
			return fmt.Errorf("%w | unknown insurance fund type %q", okx.ErrInvalidArg, fundType)
		}
		query.Add("type", fundType)
		return nil
	}
}

func InsuranceWithUly(uly string) GetInsuranceFundOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

func InsuranceWithCcy(ccy string) GetInsuranceFundOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// For *OkxClient method GetSystemStatus()
type GetSystemStatusOption func(query url.Values) error

// Restrict results to maintenance windows in the given state. Defaults to
// all states if not called
//
// # Enum:
//
// 'state': "scheduled", "ongoing", "completed", "canceled"
func StatusWithState(state string) GetSystemStatusOption {
	return func(query url.Values) error {
		validArgs := map[string]bool{
			"scheduled": true,
			"ongoing":   true,
			"completed": true,
			"canceled":  true,
		}
		if !validArgs[state] {
			return fmt.Errorf("%w | unknown maintenance state %q", okx.ErrInvalidArg, state)
		}
		query.Add("state", state)
		return nil
	}
}

// For *OkxClient method GetBalance()
type GetBalanceOption func(query url.Values) error

// Restrict results to one or more currencies, comma-separated, e.g.
// "BTC,ETH". Defaults to all currencies if not called
func BalanceWithCcy(ccy string) GetBalanceOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// For *OkxClient method GetPositions()
type GetPositionsOption func(query url.Values) error

// Restrict results to one instrument type
func PositionsWithInstType(instType okx.InstrumentType) GetPositionsOption {
	return func(query url.Values) error {
		if !instType.Valid() {
			return fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
		}
		query.Add("instType", string(instType))
		return nil
	}
}

// Restrict results to one or more instrument IDs, comma-separated
func PositionsWithInstId(instId string) GetPositionsOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

// Restrict results to one or more position IDs, comma-separated
func PositionsWithPosId(posId string) GetPositionsOption {
	return func(query url.Values) error {
		query.Add("posId", posId)
		return nil
	}
}

// For *OkxClient method GetAccountPositionRisk()
type GetPositionRiskOption func(query url.Values) error

func RiskWithInstType(instType okx.InstrumentType) GetPositionRiskOption {
	return func(query url.Values) error {
		if !instType.Valid() {
			return fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
		}
		query.Add("instType", string(instType))
		return nil
	}
}

// For *OkxClient methods GetBills() and GetBillsArchive()
type GetBillsOption func(query url.Values) error

func BillsWithInstType(instType okx.InstrumentType) GetBillsOption {
	return func(query url.Values) error {
		if !instType.Valid() {
			return fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
		}
		query.Add("instType", string(instType))
		return nil
	}
}

func BillsWithCcy(ccy string) GetBillsOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// Restrict results to one margin mode
//
// # Enum:
//
// 'mgnMode': "cross", "isolated"
func BillsWithMgnMode(mgnMode okx.MarginMode) GetBillsOption {
	return func(query url.Values) error {
		if !mgnMode.Valid() {
			return fmt.Errorf("%w | unknown mgnMode %q", okx.ErrInvalidArg, mgnMode)
		}
		query.Add("mgnMode", string(mgnMode))
		return nil
	}
}

// Restrict results to one bill type code. Defaults to all types if not
// called
//
// # Enum:
//
// 'billType': "1" transfer, "2" trade, "3" delivery, "4" auto token
// conversion, "5" liquidation, "6" margin transfer, "7" interest
// deduction, "8" funding fee, "9" ADL, "10" clawback, "11" system token
// conversion, "12" strategy transfer, "13" ddh
func BillsWithType(billType okx.BillType) GetBillsOption {
	return func(query url.Values) error {
		if !billType.Valid() {
			return fmt.Errorf("%w | unknown bill type %q", okx.ErrInvalidArg, billType)
		}
		query.Add("type", string(billType))
		return nil
	}
}

// Pagination: request bills older than the given bill ID
func BillsWithAfter(after string) GetBillsOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request bills newer than the given bill ID
func BillsWithBefore(before string) GetBillsOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func BillsWithLimit(limit int) GetBillsOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient methods GetMaxSize() and GetMaxAvailSize()
type GetMaxSizeOption func(query url.Values) error

// Margin currency, required in single-currency margin mode
func MaxSizeWithCcy(ccy string) GetMaxSizeOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// Price used in the max size calculation. Defaults to the current price
// if not called
func MaxSizeWithPx(px string) GetMaxSizeOption {
	return func(query url.Values) error {
		query.Add("px", px)
		return nil
	}
}

// Whether to treat the amount as reducing an existing position. Defaults
// to false if not called
func MaxSizeWithReduceOnly(reduceOnly bool) GetMaxSizeOption {
	return func(query url.Values) error {
		query.Add("reduceOnly", fmt.Sprintf("%v", reduceOnly))
		return nil
	}
}

// For *OkxClient method GetMaxLoan()
type GetMaxLoanOption func(query url.Values) error

// Margin currency, required for cross MARGIN in single-currency margin
// mode
func MaxLoanWithMgnCcy(mgnCcy string) GetMaxLoanOption {
	return func(query url.Values) error {
		query.Add("mgnCcy", mgnCcy)
		return nil
	}
}

// For *OkxClient method GetTradeFee()
type GetTradeFeeOption func(query url.Values) error

func TradeFeeWithInstId(instId string) GetTradeFeeOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

func TradeFeeWithUly(uly string) GetTradeFeeOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

// For *OkxClient method GetInterestAccrued()
type GetInterestAccruedOption func(query url.Values) error

func InterestWithInstId(instId string) GetInterestAccruedOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

func InterestWithCcy(ccy string) GetInterestAccruedOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// Restrict results to one margin mode
//
// # Enum:
//
// 'mgnMode': "cross", "isolated"
func InterestWithMgnMode(mgnMode okx.MarginMode) GetInterestAccruedOption {
	return func(query url.Values) error {
		if !mgnMode.Valid() {
			return fmt.Errorf("%w | unknown mgnMode %q", okx.ErrInvalidArg, mgnMode)
		}
		query.Add("mgnMode", string(mgnMode))
		return nil
	}
}

// Pagination: request records older than the given timestamp
func InterestWithAfter(after string) GetInterestAccruedOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request records newer than the given timestamp
func InterestWithBefore(before string) GetInterestAccruedOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func InterestWithLimit(limit int) GetInterestAccruedOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient methods GetInterestRate(), GetMaxWithdrawal(),
// GetAssetBalances(), and GetAssetValuation()
type GetCcyOption func(query url.Values) error

// Restrict results to one currency. Defaults to all currencies if not
// called
func WithCcy(ccy string) GetCcyOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// For *OkxClient methods GetPendingOrders(), GetOrderHistory(), and
// GetOrderHistoryArchive()
type GetOrderListOption func(query url.Values) error

func OrdersWithInstType(instType okx.InstrumentType) GetOrderListOption {
	return func(query url.Values) error {
		if !instType.Valid() {
			return fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
		}
		query.Add("instType", string(instType))
		return nil
	}
}

func OrdersWithUly(uly string) GetOrderListOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

func OrdersWithInstId(instId string) GetOrderListOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

// Restrict results to one order type, e.g. "limit" or "post_only"
func OrdersWithOrdType(ordType string) GetOrderListOption {
	return func(query url.Values) error {
		query.Add("ordType", ordType)
		return nil
	}
}

// Restrict results to one order state
//
// # Enum:
//
// 'state': "live", "partially_filled", "filled", "canceled"
func OrdersWithState(state okx.OrderState) GetOrderListOption {
	return func(query url.Values) error {
		if !state.Valid() {
			return fmt.Errorf("%w | unknown order state %q", okx.ErrInvalidArg, state)
		}
		query.Add("state", string(state))
		return nil
	}
}

// Pagination: request orders older than the given order ID
func OrdersWithAfter(after string) GetOrderListOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request orders newer than the given order ID
func OrdersWithBefore(before string) GetOrderListOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func OrdersWithLimit(limit int) GetOrderListOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient methods GetFills() and GetFillsHistory()
type GetFillsOption func(query url.Values) error

func FillsWithInstType(instType okx.InstrumentType) GetFillsOption {
	return func(query url.Values) error {
		if !instType.Valid() {
			return fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
		}
		query.Add("instType", string(instType))
		return nil
	}
}

func FillsWithUly(uly string) GetFillsOption {
	return func(query url.Values) error {
		query.Add("uly", uly)
		return nil
	}
}

func FillsWithInstId(instId string) GetFillsOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

func FillsWithOrdId(ordId string) GetFillsOption {
	return func(query url.Values) error {
		query.Add("ordId", ordId)
		return nil
	}
}

// Pagination: request fills older than the given bill ID
func FillsWithAfter(after string) GetFillsOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request fills newer than the given bill ID
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

// For *OkxClient methods GetAlgoOrdersPending() and GetAlgoOrdersHistory()
type GetAlgoOrdersOption func(query url.Values) error

func AlgoWithInstType(instType okx.InstrumentType) GetAlgoOrdersOption {
	return func(query url.Values) error {
		if !instType.Valid() {
			return fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
		}
		query.Add("instType", string(instType))
		return nil
	}
}

func AlgoWithInstId(instId string) GetAlgoOrdersOption {
	return func(query url.Values) error {
		query.Add("instId", instId)
		return nil
	}
}

// Pagination: request orders older than the given algo ID
func AlgoWithAfter(after string) GetAlgoOrdersOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request orders newer than the given algo ID
func AlgoWithBefore(before string) GetAlgoOrdersOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func AlgoWithLimit(limit int) GetAlgoOrdersOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient method GetTransferState()
type GetTransferStateOption func(query url.Values) error

// Transfer type. Defaults to "0" (transfer within account) if not called
//
// # Enum:
//
// 'transferType': "0" within account, "1" master to sub, "2" sub to master
func TransferWithType(transferType string) GetTransferStateOption {
	return func(query url.Values) error {
		validArgs := map[string]bool{
			"0": true,
			"1": true,
			"2": true,
		}
		if !validArgs[transferType] {
			return fmt.Errorf("%w | unknown transfer type %q", okx.ErrInvalidArg, transferType)
		}
		query.Add("type", transferType)
		return nil
	}
}

// For *OkxClient method GetAssetBills()
type GetAssetBillsOption func(query url.Values) error

func AssetBillsWithCcy(ccy string) GetAssetBillsOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

// Restrict results to one funding bill type code, e.g. "1" deposit, "2"
// withdrawal. The funding bill code list is large and grows with new
// products, so it is passed through unvalidated
func AssetBillsWithType(billType string) GetAssetBillsOption {
	return func(query url.Values) error {
		query.Add("type", billType)
		return nil
	}
}

// Pagination: request bills older than the given timestamp
func AssetBillsWithAfter(after string) GetAssetBillsOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request bills newer than the given timestamp
func AssetBillsWithBefore(before string) GetAssetBillsOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func AssetBillsWithLimit(limit int) GetAssetBillsOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}

// For *OkxClient methods GetDepositHistory() and GetWithdrawalHistory()
type GetTransferHistoryOption func(query url.Values) error

func TransferHistoryWithCcy(ccy string) GetTransferHistoryOption {
	return func(query url.Values) error {
		query.Add("ccy", ccy)
		return nil
	}
}

func TransferHistoryWithTxId(txId string) GetTransferHistoryOption {
	return func(query url.Values) error {
		query.Add("txId", txId)
		return nil
	}
}

// Restrict results to one record state. State codes differ between the
// deposit and withdrawal endpoints, so the value is passed through
// unvalidated
func TransferHistoryWithState(state string) GetTransferHistoryOption {
	return func(query url.Values) error {
		query.Add("state", state)
		return nil
	}
}

// Pagination: request records older than the given timestamp
func TransferHistoryWithAfter(after string) GetTransferHistoryOption {
	return func(query url.Values) error {
		query.Add("after", after)
		return nil
	}
}

// Pagination: request records newer than the given timestamp
func TransferHistoryWithBefore(before string) GetTransferHistoryOption {
	return func(query url.Values) error {
		query.Add("before", before)
		return nil
	}
}

// Number of results per request, maximum 100. Defaults to 100 if not called
func TransferHistoryWithLimit(limit int) GetTransferHistoryOption {
	return func(query url.Values) error {
		query.Add("limit", fmt.Sprintf("%v", limit))
		return nil
	}
}
