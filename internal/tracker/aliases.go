package tracker

import "strings"

// assetAliases maps common symbols to canonical asset ids so users can type
// "btc" instead of "bitcoin". Lookups are case-insensitive; ids not in the
// table pass through lowercased and the API has the final word.
var assetAliases = map[string]string{
	"btc":   "bitcoin",
	"xbt":   "bitcoin",
	"eth":   "ethereum",
	"usdt":  "tether",
	"bnb":   "binancecoin",
	"sol":   "solana",
	"xrp":   "ripple",
	"usdc":  "usd-coin",
	"ada":   "cardano",
	"doge":  "dogecoin",
	"trx":   "tron",
	"avax":  "avalanche-2",
	"dot":   "polkadot",
	"matic": "matic-network",
	"ltc":   "litecoin",
	"link":  "chainlink",
	"shib":  "shiba-inu",
	"uni":   "uniswap",
	"atom":  "cosmos",
	"xlm":   "stellar",
	"xmr":   "monero",
	"etc":   "ethereum-classic",
	"bch":   "bitcoin-cash",
	"near":  "near",
	"apt":   "aptos",
}

// ResolveAssetID normalizes a free-text asset identifier to a canonical id.
func ResolveAssetID(input string) string {
	id := strings.ToLower(strings.TrimSpace(input))
	if canonical, ok := assetAliases[id]; ok {
		return canonical
	}
	return id
}
