package okxv3

const baseUrl = "https://www.okx.com"

const (
	generalPrefix = "/api/general/v3/"
	spotPrefix    = "/api/spot/v3/"
	accountPrefix = "/api/account/v3/"
)

const userAgent = "okx-exchange-library-go/1.0"

// OrderState is an order lifecycle state on the older API, encoded as the
// numeric string codes the v3 surface uses.
//
// # Enum:
//
// "-2" failed, "-1" canceled, "0" open, "1" partially filled, "2" fully
// filled, "3" submitting, "4" canceling, "6" incomplete (open + partially
// filled), "7" complete (canceled + fully filled)
type OrderState string

const (
	OrderFailed     OrderState = "-2"
	OrderCanceled   OrderState = "-1"
	OrderOpen       OrderState = "0"
	OrderPartFilled OrderState = "1"
	OrderFilled     OrderState = "2"
	OrderSubmitting OrderState = "3"
	OrderCanceling  OrderState = "4"
	OrderIncomplete OrderState = "6"
	OrderComplete   OrderState = "7"
)

var validOrderStates = map[OrderState]bool{
	OrderFailed:     true,
	OrderCanceled:   true,
	OrderOpen:       true,
	OrderPartFilled: true,
	OrderFilled:     true,
	OrderSubmitting: true,
	OrderCanceling:  true,
	OrderIncomplete: true,
	OrderComplete:   true,
}

func (s OrderState) Valid() bool {
	return validOrderStates[s]
}

// LedgerType classifies a funding account ledger entry on the older API.
//
// # Enum:
//
// "1" deposit, "2" withdrawal, "13" canceled withdrawal, "18" into
// futures account, "19" out of futures account, "20" into sub account,
// "21" out of sub account, "28" claim, "29" into ETT account, "30" out of
// ETT account, "31" into C2C account, "32" out of C2C account, "33" into
// margin account, "34" out of margin account, "37" into spot account,
// "38" out of spot account
type LedgerType string

const (
	LedgerDeposit            LedgerType = "1"
	LedgerWithdrawal         LedgerType = "2"
	LedgerCanceledWithdrawal LedgerType = "13"
	LedgerIntoFutures        LedgerType = "18"
	LedgerOutOfFutures       LedgerType = "19"
	LedgerIntoSubAccount     LedgerType = "20"
	LedgerOutOfSubAccount    LedgerType = "21"
	LedgerClaim              LedgerType = "28"
	LedgerIntoETT            LedgerType = "29"
	LedgerOutOfETT           LedgerType = "30"
	LedgerIntoC2C            LedgerType = "31"
	LedgerOutOfC2C           LedgerType = "32"
	LedgerIntoMargin         LedgerType = "33"
	LedgerOutOfMargin        LedgerType = "34"
	LedgerIntoSpot           LedgerType = "37"
	LedgerOutOfSpot          LedgerType = "38"
)

var validLedgerTypes = map[LedgerType]bool{
	LedgerDeposit: true, LedgerWithdrawal: true, LedgerCanceledWithdrawal: true,
	LedgerIntoFutures: true, LedgerOutOfFutures: true, LedgerIntoSubAccount: true,
	LedgerOutOfSubAccount: true, LedgerClaim: true, LedgerIntoETT: true,
	LedgerOutOfETT: true, LedgerIntoC2C: true, LedgerOutOfC2C: true,
	LedgerIntoMargin: true, LedgerOutOfMargin: true, LedgerIntoSpot: true,
	LedgerOutOfSpot: true,
}

func (lt LedgerType) Valid() bool {
	return validLedgerTypes[lt]
}

// Granularity is a candle interval in seconds on the older API.
//
// # Enum:
//
// 60, 180, 300, 900, 1800, 3600, 7200, 14400, 21600, 43200, 86400, 604800
type Granularity int

var validGranularities = map[Granularity]bool{
	60: true, 180: true, 300: true, 900: true, 1800: true, 3600: true,
	7200: true, 14400: true, 21600: true, 43200: true, 86400: true,
	604800: true,
}

func (g Granularity) Valid() bool {
	return validGranularities[g]
}
