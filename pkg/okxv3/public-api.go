package okxv3

import (
	"fmt"
	"net/url"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

// #region Public endpoints

// Calls OKX v3 general "time" endpoint. Gets the exchange server time as
// an ISO timestamp and a fractional epoch-seconds string.
func (oc *OkxClient) GetServerTime() (*ServerTime, error) {
	res, err := oc.doPublicRequest(generalPrefix+"time", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var serverTime ServerTime
	err = processAPIResponse(res, &serverTime)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &serverTime, nil
}

// Calls OKX v3 spot "instruments" endpoint. Gets trading pair metadata
// for every listed spot instrument.
func (oc *OkxClient) GetInstruments() ([]Instrument, error) {
	res, err := oc.doPublicRequest(spotPrefix+"instruments", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var instruments []Instrument
	err = processAPIResponse(res, &instruments)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return instruments, nil
}

// Calls OKX v3 spot "book" endpoint. Gets the order book for one
// instrument. The instrument ID is part of the request path on this API
// version.
//
// # Example Usage:
//
//	book, err := oc.GetOrderBook("BTC-USDT", okxv3.BookWithSize(10))
func (oc *OkxClient) GetOrderBook(instrumentId string, options ...GetOrderBookOption) (*OrderBook, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}

	// Build query
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	// Send request
	res, err := oc.doPublicRequest(spotPrefix+"instruments/"+instrumentId+"/book", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	// Process API response
	var book OrderBook
	err = processAPIResponse(res, &book)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &book, nil
}

// Calls OKX v3 spot "ticker" endpoint for all instruments at once.
func (oc *OkxClient) GetAllTickers() ([]Ticker, error) {
	res, err := oc.doPublicRequest(spotPrefix+"instruments/ticker", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var tickers []Ticker
	err = processAPIResponse(res, &tickers)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return tickers, nil
}

// Calls OKX v3 spot "ticker" endpoint for one instrument.
func (oc *OkxClient) GetTicker(instrumentId string) (*Ticker, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}

	res, err := oc.doPublicRequest(spotPrefix+"instruments/"+instrumentId+"/ticker", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var ticker Ticker
	err = processAPIResponse(res, &ticker)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &ticker, nil
}

// Calls OKX v3 spot "trades" endpoint. Gets recent public trades for one
// instrument, newest first.
func (oc *OkxClient) GetTrades(instrumentId string, options ...GetTradesOption) ([]Trade, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}

	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(spotPrefix+"instruments/"+instrumentId+"/trades", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var trades []Trade
	err = processAPIResponse(res, &trades)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return trades, nil
}

// Calls OKX v3 spot "candles" endpoint. Gets candlestick history for one
// instrument. Interval defaults to 60 seconds if CandlesWithGranularity
// is not passed.
//
// # Example Usage:
//
//	candles, err := oc.GetCandles("BTC-USDT", okxv3.CandlesWithGranularity(900))
func (oc *OkxClient) GetCandles(instrumentId string, options ...GetCandlesOption) ([]Candle, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}

	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPublicRequest(spotPrefix+"instruments/"+instrumentId+"/candles", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var candles []Candle
	err = processAPIResponse(res, &candles)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return candles, nil
}

// #endregion
