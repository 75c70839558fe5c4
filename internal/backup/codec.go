// Package backup implements lossless export and validated import of ledger
// state as a portable versioned JSON document, plus the confirmed full reset.
// It is the one component that returns explicit failure results: a restore
// that silently did nothing would be unacceptably surprising.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"advent/internal/ledger"
)

// Version is the current backup document version.
const Version = "1.0.0"

// MaxImportSize bounds import payloads. Real backups are a few hundred bytes.
const MaxImportSize = 1 << 20

var (
	ErrInvalidFormat  = errors.New("invalid backup format")
	ErrFileTooLarge   = errors.New("backup file too large")
	ErrWrongExtension = errors.New("backup file must be .json")
	ErrNotConfirmed   = errors.New("reset requires confirmation")
)

// Document is the portable representation of ledger state. Individual
// redemption timestamps are out of scope; only the redeemed set and a single
// export-level timestamp travel.
type Document struct {
	RedeemedCoupons []int  `json:"redeemedCoupons"`
	ExportDate      string `json:"exportDate"`
	Version         string `json:"version"`
}

// ImportResult reports a successful import.
type ImportResult struct {
	Imported        int
	VersionMismatch bool
	DocumentVersion string
}

type Codec struct {
	ledger *ledger.Ledger
	now    func() time.Time
}

func NewCodec(led *ledger.Ledger, now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{ledger: led, now: now}
}

// Export produces a document reflecting the ledger's redeemed set exactly.
func (c *Codec) Export() Document {
	return Document{
		RedeemedCoupons: c.ledger.RedeemedIDs(),
		ExportDate:      c.now().Format(time.RFC3339),
		Version:         Version,
	}
}

// ExportJSON renders the export document as indented JSON.
func (c *Codec) ExportJSON() ([]byte, error) {
	b, err := json.MarshalIndent(c.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return b, nil
}

// CheckFile rejects files that cannot be backups before any bytes are parsed.
// Wrong extension and oversize are distinct rejection reasons.
func CheckFile(name string, size int64) error {
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return ErrWrongExtension
	}
	if size > MaxImportSize {
		return ErrFileTooLarge
	}
	return nil
}

// Import validates raw and, on success, replaces the ledger's redeemed set
// entirely (restore semantics: replace, not merge) and re-hydrates in place.
// On any validation failure the ledger is left untouched.
func (c *Codec) Import(ctx context.Context, raw []byte) (*ImportResult, error) {
	if int64(len(raw)) > MaxImportSize {
		return nil, ErrFileTooLarge
	}

	doc, err := validate(raw)
	if err != nil {
		return nil, err
	}

	res := &ImportResult{
		Imported:        len(doc.RedeemedCoupons),
		DocumentVersion: doc.Version,
	}
	if doc.Version != Version {
		// Non-fatal: older/newer documents share the same core shape.
		res.VersionMismatch = true
	}

	c.ledger.Replace(ctx, doc.RedeemedCoupons, c.now())
	c.ledger.Hydrate(ctx)
	return res, nil
}

// validate parses raw and enforces the structural contract: a JSON object with
// redeemedCoupons as a collection of integers and exportDate as a string.
func validate(raw []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidFormat)
	}

	rawIDs, ok := top["redeemedCoupons"]
	if !ok {
		return nil, fmt.Errorf("%w: missing redeemedCoupons", ErrInvalidFormat)
	}
	// JSON null decodes into a nil slice without error; it must not read as an
	// empty redeemed set, because import is a destructive replace.
	if isNull(rawIDs) {
		return nil, fmt.Errorf("%w: redeemedCoupons must be an array of integers", ErrInvalidFormat)
	}
	var idVals []json.Number
	dec := json.NewDecoder(strings.NewReader(string(rawIDs)))
	dec.UseNumber()
	if err := dec.Decode(&idVals); err != nil {
		return nil, fmt.Errorf("%w: redeemedCoupons must be an array of integers", ErrInvalidFormat)
	}
	ids := make([]int, 0, len(idVals))
	for _, n := range idVals {
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) {
			return nil, fmt.Errorf("%w: redeemedCoupons must be an array of integers", ErrInvalidFormat)
		}
		ids = append(ids, int(f))
	}

	rawDate, ok := top["exportDate"]
	if !ok || isNull(rawDate) {
		return nil, fmt.Errorf("%w: missing exportDate", ErrInvalidFormat)
	}
	var exportDate string
	if err := json.Unmarshal(rawDate, &exportDate); err != nil {
		return nil, fmt.Errorf("%w: exportDate must be a string", ErrInvalidFormat)
	}

	doc := &Document{RedeemedCoupons: ids, ExportDate: exportDate}
	if rawVer, ok := top["version"]; ok {
		// Version is advisory; a non-string version reads as empty.
		_ = json.Unmarshal(rawVer, &doc.Version)
	}
	return doc, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// Reset clears the ledger. It refuses to act without explicit confirmation
// because the operation is irreversible.
func (c *Codec) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	c.ledger.Reset(ctx)
	return nil
}
