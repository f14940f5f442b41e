package okxv3

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
)

// #region Funding account endpoints

// Calls OKX v3 account "wallet" endpoint. Gets the funding account
// balance for every currency held.
func (oc *OkxClient) GetWallet() ([]WalletBalance, error) {
	res, err := oc.doPrivateRequest(accountPrefix+"wallet", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var wallet []WalletBalance
	err = processAPIResponse(res, &wallet)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return wallet, nil
}

// Calls OKX v3 account "wallet" endpoint for a single currency. The
// currency is part of the request path on this API version.
func (oc *OkxClient) GetWalletCurrency(currency string) ([]WalletBalance, error) {
	if currency == "" {
		return nil, fmt.Errorf("%w | currency", okx.ErrMissingArg)
	}

	res, err := oc.doPrivateRequest(accountPrefix+"wallet/"+currency, nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var wallet []WalletBalance
	err = processAPIResponse(res, &wallet)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return wallet, nil
}

// Calls OKX v3 account "ledger" endpoint. Gets funding account ledger
// entries, newest first.
//
// # Example Usage:
//
//	ledger, err := oc.GetLedger(okxv3.LedgerWithType(okxv3.LedgerDeposit))
func (oc *OkxClient) GetLedger(options ...GetLedgerOption) ([]LedgerEntry, error) {
	// Build query
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	// Send request
	res, err := oc.doPrivateRequest(accountPrefix+"ledger", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	// Process API response
	var ledger []LedgerEntry
	err = processAPIResponse(res, &ledger)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return ledger, nil
}

// Calls OKX v3 account "currencies" endpoint. Gets deposit and withdrawal
// availability for every currency.
func (oc *OkxClient) GetCurrencies() ([]Currency, error) {
	res, err := oc.doPrivateRequest(accountPrefix+"currencies", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var currencies []Currency
	err = processAPIResponse(res, &currencies)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return currencies, nil
}

// Calls OKX v3 account "withdrawal/fee" endpoint.
func (oc *OkxClient) GetWithdrawalFee(options ...GetWithdrawalFeeOption) ([]WithdrawalFee, error) {
	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(accountPrefix+"withdrawal/fee", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var fees []WithdrawalFee
	err = processAPIResponse(res, &fees)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return fees, nil
}

// #endregion

// #region Spot account endpoints

// Calls OKX v3 spot "accounts" endpoint. Gets the spot trading account
// balance for every currency held.
func (oc *OkxClient) GetAccounts() ([]SpotAccount, error) {
	res, err := oc.doPrivateRequest(spotPrefix+"accounts", nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var accounts []SpotAccount
	err = processAPIResponse(res, &accounts)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return accounts, nil
}

// Calls OKX v3 spot "accounts" endpoint for a single currency.
func (oc *OkxClient) GetAccount(currency string) (*SpotAccount, error) {
	if currency == "" {
		return nil, fmt.Errorf("%w | currency", okx.ErrMissingArg)
	}

	res, err := oc.doPrivateRequest(spotPrefix+"accounts/"+currency, nil)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var account SpotAccount
	err = processAPIResponse(res, &account)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &account, nil
}

// Calls OKX v3 spot "ledger" endpoint for a single currency's spot
// trading account.
func (oc *OkxClient) GetAccountLedger(currency string, options ...PageOption) ([]LedgerEntry, error) {
	if currency == "" {
		return nil, fmt.Errorf("%w | currency", okx.ErrMissingArg)
	}

	query := url.Values{}
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(spotPrefix+"accounts/"+currency+"/ledger", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var ledger []LedgerEntry
	err = processAPIResponse(res, &ledger)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return ledger, nil
}

// #endregion

// #region Spot order endpoints

// Calls OKX v3 spot "orders" endpoint. Gets the order history for one
// instrument filtered by lifecycle state. Both args are required on this
// API version.
//
// # Enum:
//
// 'state': "-2" failed, "-1" canceled, "0" open, "1" partially filled,
// "2" fully filled, "3" submitting, "4" canceling, "6" incomplete, "7"
// complete
//
// # Example Usage:
//
//	orders, err := oc.GetOrders("BTC-USDT", okxv3.OrderFilled)
func (oc *OkxClient) GetOrders(instrumentId string, state OrderState, options ...PageOption) ([]Order, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}
	if !state.Valid() {
		return nil, fmt.Errorf("%w | unknown state %q", okx.ErrInvalidArg, state)
	}

	// Build query
	query := url.Values{}
	query.Add("instrument_id", instrumentId)
	query.Add("state", string(state))
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	// Send request
	res, err := oc.doPrivateRequest(spotPrefix+"orders", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	// Process API response
	var orders []Order
	err = processAPIResponse(res, &orders)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return orders, nil
}

// Calls OKX v3 spot "orders_pending" endpoint. Gets all open and
// partially filled orders for one instrument.
func (oc *OkxClient) GetPendingOrders(instrumentId string, options ...PageOption) ([]Order, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}

	query := url.Values{}
	query.Add("instrument_id", instrumentId)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(spotPrefix+"orders_pending", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var orders []Order
	err = processAPIResponse(res, &orders)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return orders, nil
}

// Calls OKX v3 spot "orders" endpoint for a single order. Exactly one of
// 'orderId' or 'clientOid' is required; pass "" for the one not used. The
// identifier is part of the request path on this API version.
//
// # Example Usage:
//
//	order, err := oc.GetOrder("BTC-USDT", "312269865356374016", "")
func (oc *OkxClient) GetOrder(instrumentId, orderId, clientOid string) (*Order, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}
	if orderId == "" && clientOid == "" {
		return nil, fmt.Errorf("%w | provide orderId or clientOid", okx.ErrMissingArg)
	}
	if orderId != "" && clientOid != "" {
		return nil, fmt.Errorf("%w | provide only one of orderId and clientOid", okx.ErrConflictingArgs)
	}

	id := orderId
	if id == "" {
		id = clientOid
	}
	query := url.Values{}
	query.Add("instrument_id", instrumentId)

	res, err := oc.doPrivateRequest(spotPrefix+"orders/"+id, query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var order Order
	err = processAPIResponse(res, &order)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return &order, nil
}

// Calls OKX v3 spot "fills" endpoint. Gets recent trade fills for one
// instrument.
func (oc *OkxClient) GetFills(instrumentId string, options ...GetFillsOption) ([]Fill, error) {
	if instrumentId == "" {
		return nil, fmt.Errorf("%w | instrumentId", okx.ErrMissingArg)
	}

	query := url.Values{}
	query.Add("instrument_id", instrumentId)
	for _, option := range options {
		if err := option(query); err != nil {
			return nil, err
		}
	}

	res, err := oc.doPrivateRequest(spotPrefix+"fills", query)
	if err != nil {
		return nil, fmt.Errorf("error sending request to server | %w", err)
	}
	defer res.Body.Close()

	var fills []Fill
	err = processAPIResponse(res, &fills)
	if err != nil {
		return nil, fmt.Errorf("error calling processAPIResponse() | %w", err)
	}
	return fills, nil
}

// GetMarginAccounts is not implemented for the older API surface; the
// margin endpoint group was retired before this client was written. It
// always returns okx.ErrNotSupported without touching the network.
func (oc *OkxClient) GetMarginAccounts() error {
	return fmt.Errorf("margin endpoints not supported on this API version | %w", okx.ErrNotSupported)
}

// #endregion

// #region Dispatch

// serverTimestamp is the default timestamp source for private calls. The
// older time endpoint reports fractional epoch seconds; the fraction is
// kept to millisecond precision and rendered in the ISO-8601 format the
// signature is computed over. One fetch per private call; results are
// never cached.
func (oc *OkxClient) serverTimestamp() (string, error) {
	serverTime, err := oc.GetServerTime()
	if err != nil {
		return "", fmt.Errorf("error calling GetServerTime() | %w", err)
	}
	millis, err := okx.MillisFromEpochSeconds(serverTime.Epoch)
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
// transmitted, path parameters included.
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

// processAPIResponse decodes a response body into 'target'. The older API
// has no response envelope; errors arrive as a non-2xx status, returned
// here as an error carrying the status code and body.
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
