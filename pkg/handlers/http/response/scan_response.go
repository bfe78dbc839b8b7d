package response

import "github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/types"

type ScanResponse struct {
	ScanID  string             `json:"scan_id"`
	Count   int                `json:"count"`
	Results []types.ScanResult `json:"results"`
}
