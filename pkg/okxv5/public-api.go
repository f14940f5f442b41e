package okxv5

import (
	"fmt"
	"net/url"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

// #region Market Data endpoints

// Calls OKX v5 market data "tickers" endpoint. Gets the latest price
// snapshot, best bid/ask and 24h volume for every instrument of the given
// type.
//
// # Enum:
//
// 'instType': "SPOT", "MARGIN", "SWAP", "FUTURES", "OPTION"
func (oc *OkxClient) GetTickers(instType okx.InstrumentType, options ...GetTickersOption) (*TickersResp, error) {
	if !instType.Valid() {
		return nil, fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
	}

	// Build query
	query := url.Values{}
	query.Add("instType", string(instType))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	// Send request
	res, err := oc.doPublicRequest(marketPrefix+"tickers", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	// Process API response
	var tickers TickersResp
	err = processAPIResponse(res, &tickers)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &tickers, nil
}

// Calls OKX v5 market data "ticker" endpoint. Gets the latest price
// snapshot for one instrument.
//
// # Example Usage:
//
//	ticker, err := oc.GetTicker("BTC-USDT")
func (oc *OkxClient) GetTicker(instId string) (*TickersResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)

	res, err := oc.doPublicRequest(marketPrefix+"ticker", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var ticker TickersResp
	err = processAPIResponse(res, &ticker)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &ticker, nil
}

// Calls OKX v5 market data "index-tickers" endpoint. At least one of
// 'quoteCcy' or 'instId' is required; when both are provided the exchange
// documents that 'instId' takes precedence, so both together is accepted
// here. Pass "" for the one not used.
func (oc *OkxClient) GetIndexTickers(quoteCcy, instId string) (*IndexTickersResp, error) {
	if quoteCcy == "" && instId == "" {
		return nil, fmt.Errorf("%w | provide quoteCcy or instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	if quoteCcy != "" {
		query.Add("quoteCcy", quoteCcy)
	}
	if instId != "" {
		query.Add("instId", instId)
	}

	res, err := oc.doPublicRequest(marketPrefix+"index-tickers", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var tickers IndexTickersResp
	err = processAPIResponse(res, &tickers)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &tickers, nil
}

// Calls OKX v5 market data "books" endpoint. Gets the order book for one
// instrument. Depth defaults to 1 level if BookWithDepth is not passed.
func (oc *OkxClient) GetOrderBook(instId string, options ...GetOrderBookOption) (*OrderBookResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(marketPrefix+"books", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var book OrderBookResp
	err = processAPIResponse(res, &book)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &book, nil
}

// Calls OKX v5 market data "candles" endpoint. Gets recent candlesticks
// for one instrument, newest first. Granularity defaults to 1m if
// CandlesWithBar is not passed.
func (oc *OkxClient) GetCandles(instId string, options ...GetCandlesOption) (*CandlesResp, error) {
	return oc.getCandles(marketPrefix+"candles", instId, options...)
}

// Calls OKX v5 market data "history-candles" endpoint. Gets older
// candlestick history for one instrument. Takes the same options as
// GetCandles().
func (oc *OkxClient) GetHistoryCandles(instId string, options ...GetCandlesOption) (*CandlesResp, error) {
	return oc.getCandles(marketPrefix+"history-candles", instId, options...)
}

// Calls OKX v5 market data "index-candles" endpoint. Index candles carry
// no volume columns.
func (oc *OkxClient) GetIndexCandles(instId string, options ...GetCandlesOption) (*CandlesResp, error) {
	return oc.getCandles(marketPrefix+"index-candles", instId, options...)
}

// Calls OKX v5 market data "mark-price-candles" endpoint. Mark price
// candles carry no volume columns.
func (oc *OkxClient) GetMarkPriceCandles(instId string, options ...GetCandlesOption) (*CandlesResp, error) {
	return oc.getCandles(marketPrefix+"mark-price-candles", instId, options...)
}

func (oc *OkxClient) getCandles(endpoint, instId string, options ...GetCandlesOption) (*CandlesResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(endpoint, query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var candles CandlesResp
	err = processAPIResponse(res, &candles)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &candles, nil
}

// Calls OKX v5 market data "trades" endpoint. Gets recent public trades
// for one instrument, newest first.
func (oc *OkxClient) GetTrades(instId string, options ...GetTradesOption) (*TradesResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(marketPrefix+"trades", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var trades TradesResp
	err = processAPIResponse(res, &trades)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &trades, nil
}

// Calls OKX v5 market data "exchange-rate" endpoint. Gets the exchange's
// 2-week average USD/CNY rate.
func (oc *OkxClient) GetExchangeRate() (*ExchangeRateResp, error) {
	res, err := oc.doPublicRequest(marketPrefix+"exchange-rate", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var rate ExchangeRateResp
	err = processAPIResponse(res, &rate)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &rate, nil
}

// Calls OKX v5 market data "index-components" endpoint. Gets the
// constituents and weights of one index, e.g. "BTC-USDT".
func (oc *OkxClient) GetIndexComponents(index string) (*IndexComponentsResp, error) {
	if index == "" {
		return nil, fmt.Errorf("%w | index", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("index", index)

	res, err := oc.doPublicRequest(marketPrefix+"index-components", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var components IndexComponentsResp
	err = processAPIResponse(res, &components)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &components, nil
}

// #endregion

// #region Public Data endpoints

// Calls OKX v5 public data "instruments" endpoint. Gets the listed
// instruments of the given type with their trading rules.
//
// # Enum:
//
// 'instType': "SPOT", "MARGIN", "SWAP", "FUTURES", "OPTION"
func (oc *OkxClient) GetInstruments(instType okx.InstrumentType, options ...GetInstrumentsOption) (*InstrumentsResp, error) {
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

	res, err := oc.doPublicRequest(publicPrefix+"instruments", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var instruments InstrumentsResp
	err = processAPIResponse(res, &instruments)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &instruments, nil
}

// Calls OKX v5 public data "delivery-exercise-history" endpoint. Only
// defined for futures and options.
//
// # Enum:
//
// 'instType': "FUTURES", "OPTION"
func (oc *OkxClient) GetDeliveryExerciseHistory(instType okx.InstrumentType, uly string, options ...GetHistoryOption) (*DeliveryExerciseHistoryResp, error) {
	if instType != okx.InstTypeFutures && instType != okx.InstTypeOption {
		return nil, fmt.Errorf("%w | instType %q not in [FUTURES, OPTION]", okx.ErrInvalidArg, instType)
	}
	if uly == "" {
		return nil, fmt.Errorf("%w | uly", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instType", string(instType))
	query.Add("uly", uly)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(publicPrefix+"delivery-exercise-history", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var history DeliveryExerciseHistoryResp
	err = processAPIResponse(res, &history)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &history, nil
}

// Calls OKX v5 public data "open-interest" endpoint.
//
// # Enum:
//
// 'instType': "SWAP", "FUTURES", "OPTION"
func (oc *OkxClient) GetOpenInterest(instType okx.InstrumentType, options ...GetOpenInterestOption) (*OpenInterestResp, error) {
	if instType != okx.InstTypeSwap && instType != okx.InstTypeFutures && instType != okx.InstTypeOption {
		return nil, fmt.Errorf("%w | instType %q not in [SWAP, FUTURES, OPTION]", okx.ErrInvalidArg, instType)
	}
	query := url.Values{}
	query.Add("instType", string(instType))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(publicPrefix+"open-interest", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var oi OpenInterestResp
	err = processAPIResponse(res, &oi)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &oi, nil
}

// Calls OKX v5 public data "funding-rate" endpoint. Gets the current and
// next funding rate of a swap.
func (oc *OkxClient) GetFundingRate(instId string) (*FundingRateResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)

	res, err := oc.doPublicRequest(publicPrefix+"funding-rate", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var rate FundingRateResp
	err = processAPIResponse(res, &rate)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &rate, nil
}

// Calls OKX v5 public data "funding-rate-history" endpoint.
func (oc *OkxClient) GetFundingRateHistory(instId string, options ...GetHistoryOption) (*FundingRateResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(publicPrefix+"funding-rate-history", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var rates FundingRateResp
	err = processAPIResponse(res, &rates)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &rates, nil
}

// Calls OKX v5 public data "price-limit" endpoint. Gets the highest buy
// and lowest sell limit for one instrument.
func (oc *OkxClient) GetPriceLimit(instId string) (*PriceLimitResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)

	res, err := oc.doPublicRequest(publicPrefix+"price-limit", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var limit PriceLimitResp
	err = processAPIResponse(res, &limit)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &limit, nil
}

// Calls OKX v5 public data "opt-summary" endpoint. Gets greeks and vols
// for every option under one underlying.
func (oc *OkxClient) GetOptionSummary(uly string, options ...GetOptionSummaryOption) (*OptionSummaryResp, error) {
	if uly == "" {
		return nil, fmt.Errorf("%w | uly", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("uly", uly)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(publicPrefix+"opt-summary", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var summary OptionSummaryResp
	err = processAPIResponse(res, &summary)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &summary, nil
}

// Calls OKX v5 public data "estimated-price" endpoint. Gets the estimated
// delivery/exercise price of an expiring futures contract or option.
func (oc *OkxClient) GetEstimatedPrice(instId string) (*EstimatedPriceResp, error) {
	if instId == "" {
		return nil, fmt.Errorf("%w | instId", okx.ErrMissingArg)
	}
	query := url.Values{}
	query.Add("instId", instId)

	res, err := oc.doPublicRequest(publicPrefix+"estimated-price", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var price EstimatedPriceResp
	err = processAPIResponse(res, &price)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &price, nil
}

// Calls OKX v5 public data "discount-rate-interest-free-quota" endpoint.
func (oc *OkxClient) GetDiscountRateQuota(options ...GetDiscountRateOption) (*DiscountRateResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(publicPrefix+"discount-rate-interest-free-quota", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var rates DiscountRateResp
	err = processAPIResponse(res, &rates)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &rates, nil
}

// Calls OKX v5 public data "time" endpoint. Gets the server's time as a
// millisecond epoch string. Private calls derive their OK-ACCESS-TIMESTAMP
// from this value so the signed timestamp stays inside the exchange's
// clock-skew tolerance regardless of local clock drift.
func (oc *OkxClient) GetServerTime() (*ServerTimeResp, error) {
	res, err := oc.doPublicRequest(publicPrefix+"time", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var serverTime ServerTimeResp
	err = processAPIResponse(res, &serverTime)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &serverTime, nil
}

// Calls OKX v5 public data "mark-price" endpoint.
//
// # Enum:
//
// 'instType': "MARGIN", "SWAP", "FUTURES", "OPTION"
func (oc *OkxClient) GetMarkPrice(instType okx.InstrumentType, options ...GetMarkPriceOption) (*MarkPriceResp, error) {
	if !instType.Valid() || instType == okx.InstTypeSpot {
		return nil, fmt.Errorf("%w | instType %q not in [MARGIN, SWAP, FUTURES, OPTION]", okx.ErrInvalidArg, instType)
	}
	query := url.Values{}
	query.Add("instType", string(instType))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(publicPrefix+"mark-price", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var price MarkPriceResp
	err = processAPIResponse(res, &price)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &price, nil
}

// Calls OKX v5 public data "position-tiers" endpoint. Gets margin
// requirement tiers by position size.
func (oc *OkxClient) GetPositionTiers(instType okx.InstrumentType, tdMode okx.TradeMode, options ...GetPositionTiersOption) (*PositionTiersResp, error) {
	if !instType.Valid() {
		return nil, fmt.Errorf("%w | unknown instType %q", okx.ErrInvalidArg, instType)
	}
	if !tdMode.Valid() {
		return nil, fmt.Errorf("%w | unknown tdMode %q", okx.ErrInvalidArg, tdMode)
	}
	query := url.Values{}
	query.Add("instType", string(instType))
	query.Add("tdMode", string(tdMode))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(publicPrefix+"position-tiers", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var tiers PositionTiersResp
	err = processAPIResponse(res, &tiers)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &tiers, nil
}

// Calls OKX v5 public data "interest-rate-loan-quota" endpoint.
func (oc *OkxClient) GetInterestRateLoanQuota() (*InterestRateLoanQuotaResp, error) {
	res, err := oc.doPublicRequest(publicPrefix+"interest-rate-loan-quota", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var quota InterestRateLoanQuotaResp
	err = processAPIResponse(res, &quota)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &quota, nil
}

// Calls OKX v5 public data "underlying" endpoint. Gets every underlying
// listed for the given derivative type.
//
// # Enum:
//
// 'instType': "SWAP", "FUTURES", "OPTION"
func (oc *OkxClient) GetUnderlying(instType okx.InstrumentType) (*UnderlyingResp, error) {
	if instType != okx.InstTypeSwap && instType != okx.InstTypeFutures && instType != okx.InstTypeOption {
		return nil, fmt.Errorf("%w | instType %q not in [SWAP, FUTURES, OPTION]", okx.ErrInvalidArg, instType)
	}
	query := url.Values{}
	query.Add("instType", string(instType))

	res, err := oc.doPublicRequest(publicPrefix+"underlying", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var underlying UnderlyingResp
	err = processAPIResponse(res, &underlying)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &underlying, nil
}

// Calls OKX v5 public data "insurance-fund" endpoint.
func (oc *OkxClient) GetInsuranceFund(instType okx.InstrumentType, options ...GetInsuranceFundOption) (*InsuranceFundResp, error) {
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

	res, err := oc.doPublicRequest(publicPrefix+"insurance-fund", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var fund InsuranceFundResp
	err = processAPIResponse(res, &fund)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &fund, nil
}

// Calls OKX v5 "system/status" endpoint. Gets current and scheduled
// maintenance windows.
func (oc *OkxClient) GetSystemStatus(options ...GetSystemStatusOption) (*SystemStatusResp, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(systemPrefix+"status", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var status SystemStatusResp
	err = processAPIResponse(res, &status)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &status, nil
}

// #endregion
