/**
 * @description
 * Response types for the Birdeye price API.
 */

package birdeye

// PriceResponse is the envelope returned by /defi/price
type PriceResponse struct {
	Success bool       `json:"success"`
	Data    *PriceData `json:"data"`
}

// PriceData carries the actual price value
type PriceData struct {
	Value           *float64 `json:"value"`
	UpdateUnixTime  int64    `json:"updateUnixTime"`
	UpdateHumanTime string   `json:"updateHumanTime"`
}
