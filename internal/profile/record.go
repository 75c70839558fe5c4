package profile

import (
	"encoding/json"
	"fmt"
	"time"

	"advent/internal/catalog"
)

// RecordVersion tags scannable redemption payloads.
const RecordVersion = "1.0"

// RedemptionRecord is the display-only payload encoded into the scannable
// code for a redeemed coupon. It is a convenience export, never an
// authoritative source: the ledger remains the single source of truth.
type RedemptionRecord struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ValidUntil  string `json:"validUntil"`
	Emoji       string `json:"emoji"`
	Category    string `json:"category"`
	RedeemedAt  string `json:"redeemedAt"`
	Version     string `json:"version"`
}

// NewRedemptionRecord builds the record for a redeemed coupon.
func NewRedemptionRecord(cp catalog.Coupon, redeemedAt time.Time) RedemptionRecord {
	return RedemptionRecord{
		ID:          cp.ID,
		Title:       cp.Title,
		Description: cp.Description,
		ValidUntil:  cp.ValidUntil,
		Emoji:       cp.Emoji,
		Category:    string(cp.Category),
		RedeemedAt:  redeemedAt.Format(time.RFC3339),
		Version:     RecordVersion,
	}
}

// Encode renders the record as the JSON payload fed to the code renderer.
func (r RedemptionRecord) Encode() ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode redemption record: %w", err)
	}
	return b, nil
}
