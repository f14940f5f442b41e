package okx

// The enums.go file collects the enumerated domains shared by endpoint
// wrappers across API versions. Each domain concept gets one type here so
// every endpoint validates against the same value set instead of carrying
// its own literal list.

// InstrumentType classifies an OKX instrument.
//
// # Enum:
//
// "SPOT", "MARGIN", "SWAP", "FUTURES", "OPTION"
type InstrumentType string

const (
	InstTypeSpot    InstrumentType = "SPOT"
	InstTypeMargin  InstrumentType = "MARGIN"
	InstTypeSwap    InstrumentType = "SWAP"
	InstTypeFutures InstrumentType = "FUTURES"
	InstTypeOption  InstrumentType = "OPTION"
)

var validInstrumentTypes = map[InstrumentType]bool{
	InstTypeSpot:    true,
	InstTypeMargin:  true,
	InstTypeSwap:    true,
	InstTypeFutures: true,
	InstTypeOption:  true,
}

func (t InstrumentType) Valid() bool {
	return validInstrumentTypes[t]
}

// MarginMode selects cross or isolated margin.
//
// # Enum:
//
// "cross", "isolated"
type MarginMode string

const (
	MarginCross    MarginMode = "cross"
	MarginIsolated MarginMode = "isolated"
)

var validMarginModes = map[MarginMode]bool{
	MarginCross:    true,
	MarginIsolated: true,
}

func (m MarginMode) Valid() bool {
	return validMarginModes[m]
}

// TradeMode selects how a trade is margined. "cash" applies to spot
// trades in non-margin accounts.
//
// # Enum:
//
// "cross", "isolated", "cash"
type TradeMode string

const (
	TradeModeCross    TradeMode = "cross"
	TradeModeIsolated TradeMode = "isolated"
	TradeModeCash     TradeMode = "cash"
)

var validTradeModes = map[TradeMode]bool{
	TradeModeCross:    true,
	TradeModeIsolated: true,
	TradeModeCash:     true,
}

func (m TradeMode) Valid() bool {
	return validTradeModes[m]
}

// AlgoOrderType classifies an algo order.
//
// # Enum:
//
// "conditional", "oco", "trigger", "move_order_stop", "iceberg", "twap"
type AlgoOrderType string

const (
	AlgoConditional   AlgoOrderType = "conditional"
	AlgoOCO           AlgoOrderType = "oco"
	AlgoTrigger       AlgoOrderType = "trigger"
	AlgoMoveOrderStop AlgoOrderType = "move_order_stop"
	AlgoIceberg       AlgoOrderType = "iceberg"
	AlgoTWAP          AlgoOrderType = "twap"
)

var validAlgoOrderTypes = map[AlgoOrderType]bool{
	AlgoConditional:   true,
	AlgoOCO:           true,
	AlgoTrigger:       true,
	AlgoMoveOrderStop: true,
	AlgoIceberg:       true,
	AlgoTWAP:          true,
}

func (t AlgoOrderType) Valid() bool {
	return validAlgoOrderTypes[t]
}

// OrderState is the lifecycle state of a regular order on the v5 API.
//
// # Enum:
//
// "live", "partially_filled", "filled", "canceled"
type OrderState string

const (
	OrderLive            OrderState = "live"
	OrderPartiallyFilled OrderState = "partially_filled"
	OrderFilled          OrderState = "filled"
	OrderCanceled        OrderState = "canceled"
)

var validOrderStates = map[OrderState]bool{
	OrderLive:            true,
	OrderPartiallyFilled: true,
	OrderFilled:          true,
	OrderCanceled:        true,
}

func (s OrderState) Valid() bool {
	return validOrderStates[s]
}

// AlgoOrderState is the lifecycle state of an algo order.
//
// # Enum:
//
// "effective", "canceled", "order_failed"
type AlgoOrderState string

const (
	AlgoEffective   AlgoOrderState = "effective"
	AlgoCanceled    AlgoOrderState = "canceled"
	AlgoOrderFailed AlgoOrderState = "order_failed"
)

var validAlgoOrderStates = map[AlgoOrderState]bool{
	AlgoEffective:   true,
	AlgoCanceled:    true,
	AlgoOrderFailed: true,
}

func (s AlgoOrderState) Valid() bool {
	return validAlgoOrderStates[s]
}

// BillType is the numeric code classifying an account bill on the v5 API.
//
// # Enum:
//
// "1" transfer, "2" trade, "3" delivery, "4" auto token conversion,
// "5" liquidation, "6" margin transfer, "7" interest deduction,
// "8" funding fee, "9" ADL, "10" clawback, "11" system token conversion,
// "12" strategy transfer, "13" ddh
type BillType string

const (
	BillTransfer         BillType = "1"
	BillTrade            BillType = "2"
	BillDelivery         BillType = "3"
	BillAutoConversion   BillType = "4"
	BillLiquidation      BillType = "5"
	BillMarginTransfer   BillType = "6"
	BillInterest         BillType = "7"
	BillFundingFee       BillType = "8"
	BillADL              BillType = "9"
	BillClawback         BillType = "10"
	BillSystemConversion BillType = "11"
	BillStrategyTransfer BillType = "12"
	BillDDH              BillType = "13"
)

var validBillTypes = map[BillType]bool{
	BillTransfer:         true,
	BillTrade:            true,
	BillDelivery:         true,
	BillAutoConversion:   true,
	BillLiquidation:      true,
	BillMarginTransfer:   true,
	BillInterest:         true,
	BillFundingFee:       true,
	BillADL:              true,
	BillClawback:         true,
	BillSystemConversion: true,
	BillStrategyTransfer: true,
	BillDDH:              true,
}

func (b BillType) Valid() bool {
	return validBillTypes[b]
}

// Bar is a candlestick granularity on the v5 API.
//
// # Enum:
//
// "1m", "3m", "5m", "15m", "30m", "1H", "2H", "4H", "6H", "12H", "1D",
// "2D", "3D", "1W", "1M", "3M", "6M", "1Y"
type Bar string

const (
	Bar1m  Bar = "1m"
	Bar3m  Bar = "3m"
	Bar5m  Bar = "5m"
	Bar15m Bar = "15m"
	Bar30m Bar = "30m"
	Bar1H  Bar = "1H"
	Bar2H  Bar = "2H"
	Bar4H  Bar = "4H"
	Bar6H  Bar = "6H"
	Bar12H Bar = "12H"
	Bar1D  Bar = "1D"
	Bar2D  Bar = "2D"
	Bar3D  Bar = "3D"
	Bar1W  Bar = "1W"
	Bar1M  Bar = "1M"
	Bar3M  Bar = "3M"
	Bar6M  Bar = "6M"
	Bar1Y  Bar = "1Y"
)

var validBars = map[Bar]bool{
	Bar1m: true, Bar3m: true, Bar5m: true, Bar15m: true, Bar30m: true,
	Bar1H: true, Bar2H: true, Bar4H: true, Bar6H: true, Bar12H: true,
	Bar1D: true, Bar2D: true, Bar3D: true, Bar1W: true, Bar1M: true,
	Bar3M: true, Bar6M: true, Bar1Y: true,
}

func (b Bar) Valid() bool {
	return validBars[b]
}
