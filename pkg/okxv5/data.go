// Package okxv5 is a client for the OKX v5 REST API. It wraps the public
// market-data, public-data and system endpoints, and the private account,
// trade and asset endpoints, signing private requests with the scheme in
// the shared okx package.
//
// The data.go file specifically contains the data structure declarations
// for incoming OKX v5 REST API JSON messages, including the response
// envelope carried by every endpoint and custom json.Unmarshal functions
// where the exchange returns positional arrays.
package okxv5

import (
	"encoding/json"
	"fmt"

	"github.com/cryptoliqd/okx-exchange-library-go/pkg/okx"
	"github.com/shopspring/decimal"
)

// Every v5 response carries the same envelope: a string code ("0" on
// success), a message, and a data array. The code and message are returned
// to the caller undisturbed; this layer never branches on them. Callers
// should treat a non-"0" code as an exchange-level error (e.g. code
// "50113" "Invalid Sign").

// #region Public Market Data structs

type Ticker struct {
	InstType  string `json:"instType"`
	InstId    string `json:"instId"`
	Last      string `json:"last"`
	LastSz    string `json:"lastSz"`
	AskPx     string `json:"askPx"`
	AskSz     string `json:"askSz"`
	BidPx     string `json:"bidPx"`
	BidSz     string `json:"bidSz"`
	Open24h   string `json:"open24h"`
	High24h   string `json:"high24h"`
	Low24h    string `json:"low24h"`
	VolCcy24h string `json:"volCcy24h"`
	Vol24h    string `json:"vol24h"`
	Ts        string `json:"ts"`
}

type TickersResp struct {
	Code    string   `json:"code"`
	Msg     string   `json:"msg"`
	Tickers []Ticker `json:"data"`
}

type IndexTicker struct {
	InstId  string `json:"instId"`
	IdxPx   string `json:"idxPx"`
	High24h string `json:"high24h"`
	Low24h  string `json:"low24h"`
	Open24h string `json:"open24h"`
	SodUtc0 string `json:"sodUtc0"`
	SodUtc8 string `json:"sodUtc8"`
	Ts      string `json:"ts"`
}

type IndexTickersResp struct {
	Code    string        `json:"code"`
	Msg     string        `json:"msg"`
	Tickers []IndexTicker `json:"data"`
}

// BookLevel is one price level of an order book. The exchange sends each
// level as a positional array ["price", "size", "liquidated orders",
// "order count"].
type BookLevel struct {
	Price     string
	Size      string
	LiqOrders string
	NumOrders string
}

func (bl *BookLevel) UnmarshalJSON(data []byte) error {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	if len(v) != 4 {
		return fmt.Errorf("%w | incorrect length", okx.ErrUnexpectedJSONInput)
	}
	bl.Price = v[0]
	bl.Size = v[1]
	bl.LiqOrders = v[2]
	bl.NumOrders = v[3]
	return nil
}

type OrderBook struct {
	Asks []BookLevel `json:"asks"`
	Bids []BookLevel `json:"bids"`
	Ts   string      `json:"ts"`
}

type OrderBookResp struct {
	Code  string      `json:"code"`
	Msg   string      `json:"msg"`
	Books []OrderBook `json:"data"`
}

// Candle is one candlestick. The exchange sends candles as positional
// arrays ["ts", "o", "h", "l", "c", ...]; index and mark-price candles
// omit the volume columns, so only the first five elements are required.
type Candle struct {
	Ts     string
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Vol    string
	VolCcy string
}

func (c *Candle) UnmarshalJSON(data []byte) error {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", okx.ErrUnexpectedJSONInput, err)
	}
	if len(v) < 5 {
		return fmt.Errorf("%w | incorrect length", okx.ErrUnexpectedJSONInput)
	}
	c.Ts = v[0]
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
	if len(v) > 5 {
		c.Vol = v[5]
	}
	if len(v) > 6 {
		c.VolCcy = v[6]
	}
	return nil
}

type CandlesResp struct {
	Code    string   `json:"code"`
	Msg     string   `json:"msg"`
	Candles []Candle `json:"data"`
}

type Trade struct {
	InstId  string `json:"instId"`
	TradeId string `json:"tradeId"`
	Px      string `json:"px"`
	Sz      string `json:"sz"`
	Side    string `json:"side"`
	Ts      string `json:"ts"`
}

type TradesResp struct {
	Code   string  `json:"code"`
	Msg    string  `json:"msg"`
	Trades []Trade `json:"data"`
}

type ExchangeRate struct {
	UsdCny string `json:"usdCny"`
}

type ExchangeRateResp struct {
	Code  string         `json:"code"`
	Msg   string         `json:"msg"`
	Rates []ExchangeRate `json:"data"`
}

type IndexComponent struct {
	Exch   string `json:"exch"`
	Symbol string `json:"symbol"`
	SymPx  string `json:"symPx"`
	Wgt    string `json:"wgt"`
	CnvPx  string `json:"cnvPx"`
}

type IndexComponents struct {
	Index      string           `json:"index"`
	Last       string           `json:"last"`
	Ts         string           `json:"ts"`
	Components []IndexComponent `json:"components"`
}

// The index-components endpoint is the one market endpoint whose data
// field is an object rather than an array.
type IndexComponentsResp struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data IndexComponents `json:"data"`
}

// #endregion

// #region Public Data structs

type Instrument struct {
	InstType  string `json:"instType"`
	InstId    string `json:"instId"`
	Uly       string `json:"uly"`
	BaseCcy   string `json:"baseCcy"`
	QuoteCcy  string `json:"quoteCcy"`
	SettleCcy string `json:"settleCcy"`
	CtVal     string `json:"ctVal"`
	CtMult    string `json:"ctMult"`
	CtValCcy  string `json:"ctValCcy"`
	ListTime  string `json:"listTime"`
	ExpTime   string `json:"expTime"`
	Lever     string `json:"lever"`
	TickSz    string `json:"tickSz"`
	LotSz     string `json:"lotSz"`
	MinSz     string `json:"minSz"`
	State     string `json:"state"`
}

type InstrumentsResp struct {
	Code        string       `json:"code"`
	Msg         string       `json:"msg"`
	Instruments []Instrument `json:"data"`
}

type DeliveryExerciseDetail struct {
	InsId string `json:"insId"`
	Px    string `json:"px"`
	Type  string `json:"type"`
}

type DeliveryExerciseHistory struct {
	Ts      string                   `json:"ts"`
	Details []DeliveryExerciseDetail `json:"details"`
}

type DeliveryExerciseHistoryResp struct {
	Code    string                    `json:"code"`
	Msg     string                    `json:"msg"`
	History []DeliveryExerciseHistory `json:"data"`
}

type OpenInterest struct {
	InstType string `json:"instType"`
	InstId   string `json:"instId"`
	Oi       string `json:"oi"`
	OiCcy    string `json:"oiCcy"`
	Ts       string `json:"ts"`
}

type OpenInterestResp struct {
	Code         string         `json:"code"`
	Msg          string         `json:"msg"`
	OpenInterest []OpenInterest `json:"data"`
}

type FundingRate struct {
	InstType        string `json:"instType"`
	InstId          string `json:"instId"`
	FundingRate     string `json:"fundingRate"`
	NextFundingRate string `json:"nextFundingRate"`
	FundingTime     string `json:"fundingTime"`
	RealizedRate    string `json:"realizedRate"`
}

type FundingRateResp struct {
	Code  string        `json:"code"`
	Msg   string        `json:"msg"`
	Rates []FundingRate `json:"data"`
}

type PriceLimit struct {
	InstType string `json:"instType"`
	InstId   string `json:"instId"`
	BuyLmt   string `json:"buyLmt"`
	SellLmt  string `json:"sellLmt"`
	Ts       string `json:"ts"`
}

type PriceLimitResp struct {
	Code   string       `json:"code"`
	Msg    string       `json:"msg"`
	Limits []PriceLimit `json:"data"`
}

type OptionSummary struct {
	InstType   string `json:"instType"`
	InstId     string `json:"instId"`
	Uly        string `json:"uly"`
	Delta      string `json:"delta"`
	Gamma      string `json:"gamma"`
	Theta      string `json:"theta"`
	Vega       string `json:"vega"`
	MarkVol    string `json:"markVol"`
	BidVol     string `json:"bidVol"`
	AskVol     string `json:"askVol"`
	RealVol    string `json:"realVol"`
	Ts         string `json:"ts"`
}

type OptionSummaryResp struct {
	Code      string          `json:"code"`
	Msg       string          `json:"msg"`
	Summaries []OptionSummary `json:"data"`
}

type EstimatedPrice struct {
	InstType string `json:"instType"`
	InstId   string `json:"instId"`
	SettlePx string `json:"settlePx"`
	Ts       string `json:"ts"`
}

type EstimatedPriceResp struct {
	Code   string           `json:"code"`
	Msg    string           `json:"msg"`
	Prices []EstimatedPrice `json:"data"`
}

type DiscountRateDetail struct {
	DiscountRate string `json:"discountRate"`
	MaxAmt       string `json:"maxAmt"`
	MinAmt       string `json:"minAmt"`
}

type DiscountRate struct {
	Ccy          string               `json:"ccy"`
	Amt          string               `json:"amt"`
	DiscountLv   string               `json:"discountLv"`
	DiscountInfo []DiscountRateDetail `json:"discountInfo"`
}

type DiscountRateResp struct {
	Code  string         `json:"code"`
	Msg   string         `json:"msg"`
	Rates []DiscountRate `json:"data"`
}

type ServerTime struct {
	Ts string `json:"ts"`
}

type ServerTimeResp struct {
	Code  string       `json:"code"`
	Msg   string       `json:"msg"`
	Times []ServerTime `json:"data"`
}

type MarkPrice struct {
	InstType string `json:"instType"`
	InstId   string `json:"instId"`
	MarkPx   string `json:"markPx"`
	Ts       string `json:"ts"`
}

type MarkPriceResp struct {
	Code   string      `json:"code"`
	Msg    string      `json:"msg"`
	Prices []MarkPrice `json:"data"`
}

type PositionTier struct {
	InstType     string `json:"instType"`
	InstId       string `json:"instId"`
	Uly          string `json:"uly"`
	Tier         string `json:"tier"`
	MinSz        string `json:"minSz"`
	MaxSz        string `json:"maxSz"`
	Mmr          string `json:"mmr"`
	Imr          string `json:"imr"`
	MaxLever     string `json:"maxLever"`
	OptMgnFactor string `json:"optMgnFactor"`
	QuoteMaxLoan string `json:"quoteMaxLoan"`
	BaseMaxLoan  string `json:"baseMaxLoan"`
}

type PositionTiersResp struct {
	Code  string         `json:"code"`
	Msg   string         `json:"msg"`
	Tiers []PositionTier `json:"data"`
}

type InterestRateLoanQuotaBasic struct {
	Ccy   string `json:"ccy"`
	Rate  string `json:"rate"`
	Quota string `json:"quota"`
}

type InterestRateLoanQuotaLevel struct {
	Level     string `json:"level"`
	IrDiscount string `json:"irDiscount"`
	LoanQuotaCoef string `json:"loanQuotaCoef"`
}

type InterestRateLoanQuota struct {
	Basic   []InterestRateLoanQuotaBasic `json:"basic"`
	Vip     []InterestRateLoanQuotaLevel `json:"vip"`
	Regular []InterestRateLoanQuotaLevel `json:"regular"`
}

type InterestRateLoanQuotaResp struct {
	Code   string                  `json:"code"`
	Msg    string                  `json:"msg"`
	Quotas []InterestRateLoanQuota `json:"data"`
}

// The underlying endpoint returns its data as a single nested array of
// underlying names.
type UnderlyingResp struct {
	Code        string     `json:"code"`
	Msg         string     `json:"msg"`
	Underlyings [][]string `json:"data"`
}

type InsuranceFundDetail struct {
	Balance string `json:"balance"`
	Amt     string `json:"amt"`
	Ccy     string `json:"ccy"`
	Type    string `json:"type"`
	Ts      string `json:"ts"`
}

type InsuranceFund struct {
	Total   string                `json:"total"`
	InstType string               `json:"instType"`
	Details []InsuranceFundDetail `json:"details"`
}

type InsuranceFundResp struct {
	Code  string          `json:"code"`
	Msg   string          `json:"msg"`
	Funds []InsuranceFund `json:"data"`
}

type SystemStatus struct {
	Title       string `json:"title"`
	State       string `json:"state"`
	Begin       string `json:"begin"`
	End         string `json:"end"`
	Href        string `json:"href"`
	ServiceType string `json:"serviceType"`
	System      string `json:"system"`
	ScheDesc    string `json:"scheDesc"`
}

type SystemStatusResp struct {
	Code     string         `json:"code"`
	Msg      string         `json:"msg"`
	Statuses []SystemStatus `json:"data"`
}

// #endregion

// #region Private Account structs

type BalanceDetail struct {
	Ccy       string `json:"ccy"`
	Eq        string `json:"eq"`
	CashBal   string `json:"cashBal"`
	AvailBal  string `json:"availBal"`
	AvailEq   string `json:"availEq"`
	FrozenBal string `json:"frozenBal"`
	OrdFrozen string `json:"ordFrozen"`
	Liab      string `json:"liab"`
	Upl       string `json:"upl"`
	UTime     string `json:"uTime"`
}

type Balance struct {
	TotalEq     string          `json:"totalEq"`
	IsoEq       string          `json:"isoEq"`
	AdjEq       string          `json:"adjEq"`
	OrdFroz     string          `json:"ordFroz"`
	Imr         string          `json:"imr"`
	Mmr         string          `json:"mmr"`
	MgnRatio    string          `json:"mgnRatio"`
	UTime       string          `json:"uTime"`
	Details     []BalanceDetail `json:"details"`
}

type BalanceResp struct {
	Code     string    `json:"code"`
	Msg      string    `json:"msg"`
	Balances []Balance `json:"data"`
}

type Position struct {
	InstType string `json:"instType"`
	InstId   string `json:"instId"`
	MgnMode  string `json:"mgnMode"`
	PosId    string `json:"posId"`
	PosSide  string `json:"posSide"`
	Pos      string `json:"pos"`
	PosCcy   string `json:"posCcy"`
	AvailPos string `json:"availPos"`
	AvgPx    string `json:"avgPx"`
	Upl      string `json:"upl"`
	UplRatio string `json:"uplRatio"`
	Lever    string `json:"lever"`
	LiqPx    string `json:"liqPx"`
	Margin   string `json:"margin"`
	CTime    string `json:"cTime"`
	UTime    string `json:"uTime"`
}

type PositionsResp struct {
	Code      string     `json:"code"`
	Msg       string     `json:"msg"`
	Positions []Position `json:"data"`
}

type PositionRiskBalData struct {
	Ccy   string `json:"ccy"`
	Eq    string `json:"eq"`
	DisEq string `json:"disEq"`
}

type PositionRiskPosData struct {
	InstType string `json:"instType"`
	InstId   string `json:"instId"`
	MgnMode  string `json:"mgnMode"`
	PosId    string `json:"posId"`
	Pos      string `json:"pos"`
	PosSide  string `json:"posSide"`
	PosCcy   string `json:"posCcy"`
	Ccy      string `json:"ccy"`
	NotionalCcy string `json:"notionalCcy"`
	NotionalUsd string `json:"notionalUsd"`
}

type PositionRisk struct {
	AdjEq   string                `json:"adjEq"`
	Ts      string                `json:"ts"`
	BalData []PositionRiskBalData `json:"balData"`
	PosData []PositionRiskPosData `json:"posData"`
}

type PositionRiskResp struct {
	Code  string         `json:"code"`
	Msg   string         `json:"msg"`
	Risks []PositionRisk `json:"data"`
}

type Bill struct {
	InstType  string `json:"instType"`
	BillId    string `json:"billId"`
	Type      string `json:"type"`
	SubType   string `json:"subType"`
	Ts        string `json:"ts"`
	BalChg    string `json:"balChg"`
	PosBalChg string `json:"posBalChg"`
	Bal       string `json:"bal"`
	PosBal    string `json:"posBal"`
	Sz        string `json:"sz"`
	Ccy       string `json:"ccy"`
	Pnl       string `json:"pnl"`
	Fee       string `json:"fee"`
	MgnMode   string `json:"mgnMode"`
	InstId    string `json:"instId"`
	OrdId     string `json:"ordId"`
}

type BillsResp struct {
	Code  string `json:"code"`
	Msg   string `json:"msg"`
	Bills []Bill `json:"data"`
}

type AccountConfig struct {
	Uid        string `json:"uid"`
	AcctLv     string `json:"acctLv"`
	PosMode    string `json:"posMode"`
	AutoLoan   bool   `json:"autoLoan"`
	GreeksType string `json:"greeksType"`
	Level      string `json:"level"`
	LevelTmp   string `json:"levelTmp"`
}

type AccountConfigResp struct {
	Code    string          `json:"code"`
	Msg     string          `json:"msg"`
	Configs []AccountConfig `json:"data"`
}

type MaxSize struct {
	InstId  string `json:"instId"`
	Ccy     string `json:"ccy"`
	MaxBuy  string `json:"maxBuy"`
	MaxSell string `json:"maxSell"`
}

type MaxSizeResp struct {
	Code  string    `json:"code"`
	Msg   string    `json:"msg"`
	Sizes []MaxSize `json:"data"`
}

type MaxAvailSize struct {
	InstId    string `json:"instId"`
	AvailBuy  string `json:"availBuy"`
	AvailSell string `json:"availSell"`
}

type MaxAvailSizeResp struct {
	Code  string         `json:"code"`
	Msg   string         `json:"msg"`
	Sizes []MaxAvailSize `json:"data"`
}

type LeverageInfo struct {
	InstId  string `json:"instId"`
	MgnMode string `json:"mgnMode"`
	PosSide string `json:"posSide"`
	Lever   string `json:"lever"`
}

type LeverageResp struct {
	Code  string         `json:"code"`
	Msg   string         `json:"msg"`
	Infos []LeverageInfo `json:"data"`
}

type MaxLoan struct {
	InstId  string `json:"instId"`
	MgnMode string `json:"mgnMode"`
	MgnCcy  string `json:"mgnCcy"`
	MaxLoan string `json:"maxLoan"`
	Ccy     string `json:"ccy"`
	Side    string `json:"side"`
}

type MaxLoanResp struct {
	Code  string    `json:"code"`
	Msg   string    `json:"msg"`
	Loans []MaxLoan `json:"data"`
}

type TradeFee struct {
	Category string `json:"category"`
	Taker    string `json:"taker"`
	Maker    string `json:"maker"`
	TakerU   string `json:"takerU"`
	MakerU   string `json:"makerU"`
	Delivery string `json:"delivery"`
	Exercise string `json:"exercise"`
	InstType string `json:"instType"`
	Level    string `json:"level"`
	Ts       string `json:"ts"`
}

type TradeFeeResp struct {
	Code string     `json:"code"`
	Msg  string     `json:"msg"`
	Fees []TradeFee `json:"data"`
}

type InterestAccrued struct {
	InstId       string `json:"instId"`
	Ccy          string `json:"ccy"`
	MgnMode      string `json:"mgnMode"`
	Interest     string `json:"interest"`
	InterestRate string `json:"interestRate"`
	Liab         string `json:"liab"`
	Ts           string `json:"ts"`
}

type InterestAccruedResp struct {
	Code     string            `json:"code"`
	Msg      string            `json:"msg"`
	Accruals []InterestAccrued `json:"data"`
}

type InterestRate struct {
	Ccy          string `json:"ccy"`
	InterestRate string `json:"interestRate"`
}

type InterestRateResp struct {
	Code  string         `json:"code"`
	Msg   string         `json:"msg"`
	Rates []InterestRate `json:"data"`
}

type MaxWithdrawal struct {
	Ccy   string `json:"ccy"`
	MaxWd string `json:"maxWd"`
}

type MaxWithdrawalResp struct {
	Code        string          `json:"code"`
	Msg         string          `json:"msg"`
	Withdrawals []MaxWithdrawal `json:"data"`
}

// #endregion

// #region Private Trade structs

type Order struct {
	InstType  string `json:"instType"`
	InstId    string `json:"instId"`
	Ccy       string `json:"ccy"`
	OrdId     string `json:"ordId"`
	ClOrdId   string `json:"clOrdId"`
	Tag       string `json:"tag"`
	Px        string `json:"px"`
	Sz        string `json:"sz"`
	OrdType   string `json:"ordType"`
	Side      string `json:"side"`
	PosSide   string `json:"posSide"`
	TdMode    string `json:"tdMode"`
	FillPx    string `json:"fillPx"`
	FillSz    string `json:"fillSz"`
	AccFillSz string `json:"accFillSz"`
	AvgPx     string `json:"avgPx"`
	State     string `json:"state"`
	Lever     string `json:"lever"`
	Fee       string `json:"fee"`
	FeeCcy    string `json:"feeCcy"`
	Pnl       string `json:"pnl"`
	CTime     string `json:"cTime"`
	UTime     string `json:"uTime"`
}

type OrdersResp struct {
	Code   string  `json:"code"`
	Msg    string  `json:"msg"`
	Orders []Order `json:"data"`
}

type Fill struct {
	InstType string `json:"instType"`
	InstId   string `json:"instId"`
	TradeId  string `json:"tradeId"`
	OrdId    string `json:"ordId"`
	ClOrdId  string `json:"clOrdId"`
	BillId   string `json:"billId"`
	FillPx   string `json:"fillPx"`
	FillSz   string `json:"fillSz"`
	Side     string `json:"side"`
	PosSide  string `json:"posSide"`
	ExecType string `json:"execType"`
	FeeCcy   string `json:"feeCcy"`
	Fee      string `json:"fee"`
	Ts       string `json:"ts"`
}

type FillsResp struct {
	Code  string `json:"code"`
	Msg   string `json:"msg"`
	Fills []Fill `json:"data"`
}

type AlgoOrder struct {
	InstType     string `json:"instType"`
	InstId       string `json:"instId"`
	AlgoId       string `json:"algoId"`
	ClOrdId      string `json:"clOrdId"`
	Sz           string `json:"sz"`
	OrdType      string `json:"ordType"`
	Side         string `json:"side"`
	PosSide      string `json:"posSide"`
	TdMode       string `json:"tdMode"`
	State        string `json:"state"`
	TpTriggerPx  string `json:"tpTriggerPx"`
	TpOrdPx     string `json:"tpOrdPx"`
	SlTriggerPx  string `json:"slTriggerPx"`
	SlOrdPx     string `json:"slOrdPx"`
	TriggerPx    string `json:"triggerPx"`
	TriggerTime  string `json:"triggerTime"`
	CTime        string `json:"cTime"`
}

type AlgoOrdersResp struct {
	Code   string      `json:"code"`
	Msg    string      `json:"msg"`
	Orders []AlgoOrder `json:"data"`
}

// #endregion

// #region Private Asset structs

type Currency struct {
	Ccy         string `json:"ccy"`
	Name        string `json:"name"`
	Chain       string `json:"chain"`
	CanDep      bool   `json:"canDep"`
	CanWd       bool   `json:"canWd"`
	CanInternal bool   `json:"canInternal"`
	MinWd       string `json:"minWd"`
	MaxFee      string `json:"maxFee"`
	MinFee      string `json:"minFee"`
}

type CurrenciesResp struct {
	Code       string     `json:"code"`
	Msg        string     `json:"msg"`
	Currencies []Currency `json:"data"`
}

// AssetBalance is a funding-account balance. These fields are always
// numeric on the wire so they decode straight into decimals.
type AssetBalance struct {
	Ccy       string          `json:"ccy"`
	Bal       decimal.Decimal `json:"bal"`
	FrozenBal decimal.Decimal `json:"frozenBal"`
	AvailBal  decimal.Decimal `json:"availBal"`
}

type AssetBalancesResp struct {
	Code     string         `json:"code"`
	Msg      string         `json:"msg"`
	Balances []AssetBalance `json:"data"`
}

type AssetValuation struct {
	TotalBal string `json:"totalBal"`
	Ts       string `json:"ts"`
}

type AssetValuationResp struct {
	Code       string           `json:"code"`
	Msg        string           `json:"msg"`
	Valuations []AssetValuation `json:"data"`
}

type TransferState struct {
	TransId  string `json:"transId"`
	Ccy      string `json:"ccy"`
	Amt      string `json:"amt"`
	Type     string `json:"type"`
	From     string `json:"from"`
	To       string `json:"to"`
	State    string `json:"state"`
	SubAcct  string `json:"subAcct"`
}

type TransferStateResp struct {
	Code   string          `json:"code"`
	Msg    string          `json:"msg"`
	States []TransferState `json:"data"`
}

type AssetBill struct {
	BillId string `json:"billId"`
	Ccy    string `json:"ccy"`
	BalChg string `json:"balChg"`
	Bal    string `json:"bal"`
	Type   string `json:"type"`
	Ts     string `json:"ts"`
}

type AssetBillsResp struct {
	Code  string      `json:"code"`
	Msg   string      `json:"msg"`
	Bills []AssetBill `json:"data"`
}

type DepositAddress struct {
	Ccy      string `json:"ccy"`
	Chain    string `json:"chain"`
	Addr     string `json:"addr"`
	Tag      string `json:"tag"`
	Memo     string `json:"memo"`
	PmtId    string `json:"pmtId"`
	To       string `json:"to"`
	Selected bool   `json:"selected"`
}

type DepositAddressResp struct {
	Code      string           `json:"code"`
	Msg       string           `json:"msg"`
	Addresses []DepositAddress `json:"data"`
}

type DepositRecord struct {
	Ccy   string `json:"ccy"`
	Chain string `json:"chain"`
	Amt   string `json:"amt"`
	From  string `json:"from"`
	To    string `json:"to"`
	TxId  string `json:"txId"`
	Ts    string `json:"ts"`
	State string `json:"state"`
	DepId string `json:"depId"`
}

type DepositHistoryResp struct {
	Code     string          `json:"code"`
	Msg      string          `json:"msg"`
	Deposits []DepositRecord `json:"data"`
}

type WithdrawalRecord struct {
	Ccy   string `json:"ccy"`
	Chain string `json:"chain"`
	Amt   string `json:"amt"`
	Ts    string `json:"ts"`
	From  string `json:"from"`
	To    string `json:"to"`
	Tag   string `json:"tag"`
	TxId  string `json:"txId"`
	Fee   string `json:"fee"`
	State string `json:"state"`
	WdId  string `json:"wdId"`
}

type WithdrawalHistoryResp struct {
	Code        string             `json:"code"`
	Msg         string             `json:"msg"`
	Withdrawals []WithdrawalRecord `json:"data"`
}

// #endregion
