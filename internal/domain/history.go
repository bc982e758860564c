package domain

import (
	"strconv"
	"strings"
	"time"
)

// HistoryRecord is a row of the external tool's `responses` table.
type HistoryRecord struct {
	Prompt       string
	Response     string
	TokenDetails string
	Model        string
	Timestamp    time.Time
}

// Cost returns the USD cost embedded in TokenDetails, or zero.
func (r HistoryRecord) Cost() float64 {
	return ExtractCost(r.TokenDetails)
}

const costKey = `"cost":`

// ExtractCost reads the number that follows "cost": in a metrics blob, up to the
// next comma or closing brace. Missing or unparsable values yield 0.
func ExtractCost(tokenDetails string) float64 {
	start := strings.Index(tokenDetails, costKey)
	if start < 0 {
		return 0
	}
	rest := tokenDetails[start+len(costKey):]
	if end := strings.IndexAny(rest, ",}"); end >= 0 {
		rest = rest[:end]
	}
	cost, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return 0
	}
	return cost
}

// StoreStatus summarises a log store file.
type StoreStatus struct {
	Path          string
	Conversations int64
	Responses     int64
	SizeBytes     int64
}

// SizeKB returns the file size in kilobytes.
func (s StoreStatus) SizeKB() float64 {
	return float64(s.SizeBytes) / 1024.0
}
