/**
 * @description
 * Response types for the Magic Eden collection stats API.
 */

package magiceden

// CollectionStats is the payload of /v2/collections/{symbol}/stats.
// floorPrice is denominated in lamports (1e9 lamports = 1 SOL).
type CollectionStats struct {
	Symbol       string  `json:"symbol"`
	FloorPrice   float64 `json:"floorPrice"`
	ListedCount  int     `json:"listedCount"`
	AvgPrice24hr float64 `json:"avgPrice24hr"`
	VolumeAll    float64 `json:"volumeAll"`
}
