package okxv5

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

// #region Account endpoints

// Calls OKX v5 private "account/balance" endpoint. Gets the trading
// account balance, optionally filtered to one or more currencies.
//
// # Example Usage:
//
//	balance, err := oc.GetBalance(okxv5.BalanceWithCcy("BTC"))
func (oc *OkxClient) GetBalance(options ...GetBalanceOption) (*BalanceResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	// Send request
	res, err := oc.doPrivateRequest(accountPrefix+"balance", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	// Process API response
	var balance BalanceResp
	err = processAPIResponse(res, &balance)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &balance, nil
}

// Calls OKX v5 private "account/positions" endpoint.
func (oc *OkxClient) GetPositions(options ...GetPositionsOption) (*PositionsResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"positions", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var positions PositionsResp
	err = processAPIResponse(res, &positions)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &positions, nil
}

// Calls OKX v5 private "account/account-position-risk" endpoint. Gets
// account balance and open positions at the same atomic timestamp.
func (oc *OkxClient) GetAccountPositionRisk(options ...GetPositionRiskOption) (*PositionRiskResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"account-position-risk", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var risk PositionRiskResp
	err = processAPIResponse(res, &risk)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &risk, nil
}

// Calls OKX v5 private "account/bills" endpoint. Gets bills for the last
// 7 days, newest first.
func (oc *OkxClient) GetBills(options ...GetBillsOption) (*BillsResp, error) {
	return oc.getBills(accountPrefix+"bills", options...)
}

// Calls OKX v5 private "account/bills-archive" endpoint. Gets bills for
// the last 3 months. Takes the same options as GetBills().
func (oc *OkxClient) GetBillsArchive(options ...GetBillsOption) (*BillsResp, error) {
	return oc.getBills(accountPrefix+"bills-archive", options...)
}

func (oc *OkxClient) getBills(endpoint string, options ...GetBillsOption) (*BillsResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var bills BillsResp
	err = processAPIResponse(res, &bills)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &bills, nil
}

// Calls OKX v5 private "account/config" endpoint.
func (oc *OkxClient) GetAccountConfig() (*AccountConfigResp, error) {
	res, err := oc.doPrivateRequest(accountPrefix+"config", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var config AccountConfigResp
	err = processAPIResponse(res, &config)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &config, nil
}

// Calls OKX v5 private "account/max-size" endpoint. Gets the maximum
// buy/sell size for one or more instruments (comma-separated).
//
// # Enum:
//
// 'tdMode': "cross", "isolated", "cash"
func (oc *OkxClient) GetMaxSize(instId string, tdMode okx.TradeMode, options ...GetMaxSizeOption) (*MaxSizeResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	if !tdMode.Valid() {
		return nil, fmt.Errorf("%w | unknown tdMode %q", okx.ErrInvalidArg, tdMode)
	}
	query := url.Values{}
	query.Add("instId", instId)
	query.Add("tdMode", string(tdMode))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"max-size", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var size MaxSizeResp
	err = processAPIResponse(res, &size)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &size, nil
}

// Calls OKX v5 private "account/max-avail-size" endpoint.
//
// # Enum:
//
// 'tdMode': "cross", "isolated", "cash"
func (oc *OkxClient) GetMaxAvailSize(instId string, tdMode okx.TradeMode, options ...GetMaxSizeOption) (*MaxAvailSizeResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	if !tdMode.Valid() {
		return nil, fmt.Errorf("%w | unknown tdMode %q", okx.ErrInvalidArg, tdMode)
	}
	query := url.Values{}
	query.Add("instId", instId)
	query.Add("tdMode", string(tdMode))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"max-avail-size", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var size MaxAvailSizeResp
	err = processAPIResponse(res, &size)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &size, nil
}

// Calls OKX v5 private "account/leverage-info" endpoint.
//
// # Enum:
//
// 'mgnMode': "cross", "isolated"
func (oc *OkxClient) GetLeverageInfo(instId string, mgnMode okx.MarginMode) (*LeverageResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	if !mgnMode.Valid() {
		return nil, fmt.Errorf("%w | unknown mgnMode %q", okx.ErrInvalidArg, mgnMode)
	}
	query := url.Values{}
	query.Add("instId", instId)
	query.Add("mgnMode", string(mgnMode))

	res, err := oc.doPrivateRequest(accountPrefix+"leverage-info", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var leverage LeverageResp
	err = processAPIResponse(res, &leverage)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &leverage, nil
}

// Calls OKX v5 private "account/max-loan" endpoint.
//
// # Enum:
//
// 'mgnMode': "cross", "isolated"
func (oc *OkxClient) GetMaxLoan(instId string, mgnMode okx.MarginMode, options ...GetMaxLoanOption) (*MaxLoanResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	if !mgnMode.Valid() {
		return nil, fmt.Errorf("%w | unknown mgnMode %q", okx.ErrInvalidArg, mgnMode)
	}
	query := url.Values{}
	query.Add("instId", instId)
	query.Add("mgnMode", string(mgnMode))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"max-loan", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var loan MaxLoanResp
	err = processAPIResponse(res, &loan)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &loan, nil
}

// Calls OKX v5 private "account/trade-fee" endpoint. Gets the account's
// fee rates for the given instrument type.
func (oc *OkxClient) GetTradeFee(instType okx.InstrumentType, options ...GetTradeFeeOption) (*TradeFeeResp, error) {
	if !instType.Valid() {
		return nil, fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
	}
	query := url.Values{}
	query.Add("instType", string(instType))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"trade-fee", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var fee TradeFeeResp
	err = processAPIResponse(res, &fee)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &fee, nil
}

// Calls OKX v5 private "account/interest-accrued" endpoint.
func (oc *OkxClient) GetInterestAccrued(options ...GetInterestAccruedOption) (*InterestAccruedResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"interest-accrued", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var accrued InterestAccruedResp
	err = processAPIResponse(res, &accrued)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &accrued, nil
}

// Calls OKX v5 private "account/interest-rate" endpoint. Gets the user's
// current loan interest rate, optionally for one currency.
func (oc *OkxClient) GetInterestRate(options ...GetCcyOption) (*InterestRateResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"interest-rate", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var rate InterestRateResp
	err = processAPIResponse(res, &rate)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &rate, nil
}

// Calls OKX v5 private "account/max-withdrawal" endpoint.
func (oc *OkxClient) GetMaxWithdrawal(options ...GetCcyOption) (*MaxWithdrawalResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"max-withdrawal", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var withdrawal MaxWithdrawalResp
	err = processAPIResponse(res, &withdrawal)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &withdrawal, nil
}

// #endregion

// #region Trade endpoints

// Calls OKX v5 private "trade/order" endpoint. Gets the details of one
// order. Exactly one of 'ordId' or 'clOrdId' must be non-empty; providing
// both or neither is a validation error raised before any network call.
//
// # Example Usage:
//
//	order, err := oc.GetOrder("BTC-USDT", "312269865356374016", "")
func (oc *OkxClient) GetOrder(instId, ordId, clOrdId string) (*OrdersResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	if ordId == "" && clOrdId == "" {
		return nil, fmt.Errorf("%w | provide ordId or clOrdId", okx.ErrMissingArg)
	}
	if ordId != "" && clOrdId != "" {
		return nil, fmt.Errorf("%w | ordId and clOrdId", okx.ErrConflictingArgs)
	}
	query := url.Values{}
	query.Add("instId", instId)
	if ordId != "" {
		query.Add("ordId", ordId)
	} else {
		query.Add("clOrdId", clOrdId)
	}

	res, err := oc.doPrivateRequest(tradePrefix+"order", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var order OrdersResp
	err = processAPIResponse(res, &order)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &order, nil
}

// Calls OKX v5 private "trade/orders-pending" endpoint. Gets all
// incomplete orders under the account.
func (oc *OkxClient) GetPendingOrders(options ...GetOrderListOption) (*OrdersResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(tradePrefix+"orders-pending", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var orders OrdersResp
	err = processAPIResponse(res, &orders)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &orders, nil
}

// Calls OKX v5 private "trade/orders-history" endpoint. Gets completed
// orders from the last 7 days.
func (oc *OkxClient) GetOrderHistory(instType okx.InstrumentType, options ...GetOrderListOption) (*OrdersResp, error) {
	return oc.getOrderHistory(tradePrefix+"orders-history", instType, options...)
}

// Calls OKX v5 private "trade/orders-history-archive" endpoint. Gets
// completed orders from the last 3 months. Takes the same options as
// GetOrderHistory().
func (oc *OkxClient) GetOrderHistoryArchive(instType okx.InstrumentType, options ...GetOrderListOption) (*OrdersResp, error) {
	return oc.getOrderHistory(tradePrefix+"orders-history-archive", instType, options...)
}

func (oc *OkxClient) getOrderHistory(endpoint string, instType okx.InstrumentType, options ...GetOrderListOption) (*OrdersResp, error) {
	if !instType.Valid() {
		return nil, fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
	}
	query := url.Values{}
	query.Add("instType", string(instType))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var orders OrdersResp
	err = processAPIResponse(res, &orders)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &orders, nil
}

// Calls OKX v5 private "trade/fills" endpoint. Gets execution details from
// the last 3 days.
func (oc *OkxClient) GetFills(options ...GetFillsOption) (*FillsResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(tradePrefix+"fills", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var fills FillsResp
	err = processAPIResponse(res, &fills)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &fills, nil
}

// Calls OKX v5 private "trade/fills-history" endpoint. Gets execution
// details from the last 3 months.
func (oc *OkxClient) GetFillsHistory(instType okx.InstrumentType, options ...GetFillsOption) (*FillsResp, error) {
	if !instType.Valid() {
		return nil, fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
	}
	query := url.Values{}
	query.Add("instType", string(instType))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(tradePrefix+"fills-history", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var fills FillsResp
	err = processAPIResponse(res, &fills)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &fills, nil
}

// Calls OKX v5 private "trade/orders-algo-pending" endpoint.
//
// # Enum:
//
// 'ordType': "conditional", "oco", "trigger", "move_order_stop",
// "iceberg", "twap"
func (oc *OkxClient) GetAlgoOrdersPending(ordType okx.AlgoOrderType, options ...GetAlgoOrdersOption) (*AlgoOrdersResp, error) {
	if !ordType.Valid() {
		return nil, fmt.Errorf("%w | unknown ordType %q", okx.ErrInvalidArg, ordType)
	}
	query := url.Values{}
	query.Add("ordType", string(ordType))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(tradePrefix+"orders-algo-pending", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var orders AlgoOrdersResp
	err = processAPIResponse(res, &orders)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &orders, nil
}

// Calls OKX v5 private "trade/orders-algo-history" endpoint. The exchange
// requires exactly one of a final 'state' or an 'algoId'; providing both
// or neither is a validation error raised before any network call. Pass
// the zero value ("") for the one not used.
//
// # Enum:
//
// 'ordType': "conditional", "oco", "trigger", "move_order_stop",
// "iceberg", "twap"
//
// 'state': "effective", "canceled", "order_failed"
func (oc *OkxClient) GetAlgoOrdersHistory(ordType okx.AlgoOrderType, state okx.AlgoOrderState, algoId string, options ...GetAlgoOrdersOption) (*AlgoOrdersResp, error) {
	if !ordType.Valid() {
		return nil, fmt.Errorf("%w | unknown ordType %q", okx.ErrInvalidArg, ordType)
	}
	if state == "" && algoId == "" {
		return nil, fmt.Errorf("%w | provide state or algoId", okx.ErrMissingArg)
	}
	if state != "" && algoId != "" {
		return nil, fmt.Errorf("%w | state and algoId", okx.ErrConflictingArgs)
	}
	if state != "" && !state.Valid() {
		return nil, fmt.Errorf("%w | unknown state %q", okx.ErrInvalidArg, state)
	}
	query := url.Values{}
	query.Add("ordType", string(ordType))
	if state != "" {
		query.Add("state", string(state))
	} else {
		query.Add("algoId", algoId)
	}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(tradePrefix+"orders-algo-history", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var orders AlgoOrdersResp
	err = processAPIResponse(res, &orders)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &orders, nil
}

// #endregion

// #region Asset endpoints

// Calls OKX v5 private "asset/currencies" endpoint. Gets every currency
// available to the account with deposit/withdrawal capability flags.
func (oc *OkxClient) GetCurrencies() (*CurrenciesResp, error) {
	res, err := oc.doPrivateRequest(assetPrefix+"currencies", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var currencies CurrenciesResp
	err = processAPIResponse(res, &currencies)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &currencies, nil
}

// Calls OKX v5 private "asset/balances" endpoint. Gets funding account
// balances.
func (oc *OkxClient) GetAssetBalances(options ...GetCcyOption) (*AssetBalancesResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(assetPrefix+"balances", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var balances AssetBalancesResp
	err = processAPIResponse(res, &balances)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &balances, nil
}

// Calls OKX v5 private "asset/asset-valuation" endpoint. Gets the total
// account valuation denominated in 'ccy' (defaults to BTC).
func (oc *OkxClient) GetAssetValuation(options ...GetCcyOption) (*AssetValuationResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(assetPrefix+"asset-valuation", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var valuation AssetValuationResp
	err = processAPIResponse(res, &valuation)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &valuation, nil
}

// Calls OKX v5 private "asset/transfer-state" endpoint. Gets the state of
// one funds transfer by its transfer ID.
func (oc *OkxClient) GetTransferState(transId string, options ...GetTransferStateOption) (*TransferStateResp, error) {
	if transId == "" {
		return nil, fmt.Errorf("%w | transId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("transId", transId)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(assetPrefix+"transfer-state", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var state TransferStateResp
	err = processAPIResponse(res, &state)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &state, nil
}

// Calls OKX v5 private "asset/bills" endpoint. Gets funding account flow,
// newest first.
func (oc *OkxClient) GetAssetBills(options ...GetAssetBillsOption) (*AssetBillsResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(assetPrefix+"bills", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var bills AssetBillsResp
	err = processAPIResponse(res, &bills)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &bills, nil
}

// Calls OKX v5 private "asset/deposit-address" endpoint.
func (oc *OkxClient) GetDepositAddress(ccy string) (*DepositAddressResp, error) {
	if ccy == "" {
		return nil, fmt.Errorf("%w | ccy", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("ccy", ccy)

	res, err := oc.doPrivateRequest(assetPrefix+"deposit-address", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var address DepositAddressResp
	err = processAPIResponse(res, &address)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &address, nil
}

// Calls OKX v5 private "asset/deposit-history" endpoint.
func (oc *OkxClient) GetDepositHistory(options ...GetTransferHistoryOption) (*DepositHistoryResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(assetPrefix+"deposit-history", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var deposits DepositHistoryResp
	err = processAPIResponse(res, &deposits)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &deposits, nil
}

// Calls OKX v5 private "asset/withdrawal-history" endpoint. Takes the
// same options as GetDepositHistory().
func (oc *OkxClient) GetWithdrawalHistory(options ...GetTransferHistoryOption) (*WithdrawalHistoryResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(assetPrefix+"withdrawal-history", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var withdrawals WithdrawalHistoryResp
	err = processAPIResponse(res, &withdrawals)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &withdrawals, nil
}

// GetLightningDeposits corresponds to OKX v5 "asset/deposit-lightning".
// Not yet supported; always returns okx.ErrNotSupported without touching
// the network.
func (oc *OkxClient) GetLightningDeposits(ccy, amt string) (*DepositHistoryResp, error) {
	return nil, fmt.Errorf("asset/deposit-lightning | %w", okx.ErrNotSupported)
}

// GetLightningWithdrawals corresponds to OKX v5 "asset/withdrawal-lightning".
// Not yet supported; always returns okx.ErrNotSupported without touching
// the network.
func (oc *OkxClient) GetLightningWithdrawals(ccy, invoice string) (*WithdrawalHistoryResp, error) {
	return nil, fmt.Errorf("asset/withdrawal-lightning | %w", okx.ErrNotSupported)
}

// GetSubaccountList corresponds to OKX v5 "users/subaccount/list". Not yet
// supported; always returns okx.ErrNotSupported without touching the
// network.
func (oc *OkxClient) GetSubaccountList() (*AccountConfigResp, error) {
	return nil, fmt.Errorf("users/subaccount/list | %w", okx.ErrNotSupported)
}

// #endregion

// #region Dispatch

// serverTimestamp is the default timestamp source for private calls. It
// fetches the exchange's server time and renders it in the ISO-8601
// millisecond format the signature is computed over. One fetch per private
// call; results are never cached.
func (oc *OkxClient) serverTimestamp() (string, error) {
	serverTime, err := oc.GetServerTime()
	if err != nil {
		return "", fmt.Errorf("error calling GetServerTime() | %w", err)
	}
	if len(serverTime.Times) == 0 {
		return "", fmt.Errorf("%w | server time data empty", okx.ErrUnexpectedJSONInput)
	}
	millis, err := okx.MillisFromString(serverTime.Times[0].Ts)
	if err != nil {
		return "", fmt.Errorf("error parsing server time | %w", err)
	}
	return okx.FormatTimestamp(millis), nil
}

// doPublicRequest sends an unsigned GET request and returns the raw
// response.
func (oc *OkxClient) doPublicRequest(endpoint string, query url.Values) (*http.Response, error) {
	requestPath := endpoint
	if encoded := query.Encode(); encoded != "" {
		requestPath += "?" + encoded
	}
	req, err := http.NewRequest(http.MethodGet, oc.BaseUrl+requestPath, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling http.NewRequest() | %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	httpResp, err := oc.Client.Do(req)
	if err != nil {
		oc.ErrorLogger.Println("error sending request to", endpoint, "|", err)
		return nil, fmt.Errorf("error calling http.Client.Do() | %w", err)
	}
	return httpResp, nil
}

// doPrivateRequest obtains a timestamp, signs the request path with it,
// and sends a GET request with the four authentication headers attached.
// The signature is computed over exactly the timestamp and request path
// transmitted, so the timestamp fetch and the signed call cannot be
// reordered.
func (oc *OkxClient) doPrivateRequest(endpoint string, query url.Values) (*http.Response, error) {
	requestPath := endpoint
	if encoded := query.Encode(); encoded != "" {
		requestPath += "?" + encoded
	}
	timestamp, err := oc.timestampSource()
	if err != nil {
		return nil, fmt.Errorf("error getting timestamp | %w", err)
	}
	signature := okx.Sign(oc.Credentials.SecretKey, timestamp, http.MethodGet, requestPath)

	req, err := http.NewRequest(http.MethodGet, oc.BaseUrl+requestPath, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling http.NewRequest() | %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("OK-ACCESS-KEY", oc.Credentials.APIKey)
	req.Header.Set("OK-ACCESS-SIGN", signature)
	req.Header.Set("OK-ACCESS-TIMESTAMP", timestamp)
	req.Header.Set("OK-ACCESS-PASSPHRASE", oc.Credentials.Passphrase)
	httpResp, err := oc.Client.Do(req)
	if err != nil {
		oc.ErrorLogger.Println("error sending request to", endpoint, "|", err)
		return nil, fmt.Errorf("error calling http.Client.Do() | %w", err)
	}
	return httpResp, nil
}

// processAPIResponse decodes a response body into 'target'. A non-OK
// status is returned as an error carrying the status code and body;
// exchange-level code/msg fields inside an OK body are decoded into the
// target untouched.
func processAPIResponse(res *http.Response, target interface{}) error {
	msg, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("error calling io.ReadAll() | %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("http status code not OK; status code %v | body: %s", res.StatusCode, msg)
	}
	err = json.Unmarshal(msg, target)
	if err != nil {
		return fmt.Errorf("error unmarshalling msg to target | %w", err)
	}
	return nil
}

// #endregion
