package okxv5

const baseUrl = "https://www.okx.com"

const (
	marketPrefix  = "/api/v5/market/"
	publicPrefix  = "/api/v5/public/"
	systemPrefix  = "/api/v5/system/"
	accountPrefix = "/api/v5/account/"
	tradePrefix   = "/api/v5/trade/"
	assetPrefix   = "/api/v5/asset/"
)

const userAgent = "okx-exchange-library-go/1.0"
