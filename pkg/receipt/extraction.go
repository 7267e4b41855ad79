package receipt

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobcost-backend/domain"
)

type (
	extractedItem struct {
		ItemName     string   `json:"item_name"`
		Quantity     *float64 `json:"quantity"`
		UnitPrice    *float64 `json:"unit_price"`
		TotalPrice   *float64 `json:"total_price"`
		ItemCategory *string  `json:"item_category"`
		Notes        *string  `json:"notes"`
	}

	extractedReceipt struct {
		ReceiptItems []extractedItem `json:"receipt_items"`
		ReceiptTotal *float64        `json:"receipt_total"`
		ReceiptDate  *string         `json:"receipt_date"`
		VendorName   *string         `json:"vendor_name"`
	}
)

// parseExtractedReceipt parses the model's text output. Models wrap JSON in
// markdown fences or commentary often enough that the object boundaries are
// located explicitly before unmarshaling.
func parseExtractedReceipt(text string) (*extractedReceipt, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		return nil, fmt.Errorf("%w: no JSON object found in response", domain.ErrParseInferenceResponse)
	}
	text = text[startIdx : endIdx+1]

	var parsed extractedReceipt
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParseInferenceResponse, err)
	}

	if parsed.ReceiptItems == nil {
		return nil, fmt.Errorf("%w: missing receipt_items array", domain.ErrParseInferenceResponse)
	}

	return &parsed, nil
}
