package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is the flat, display-formatted view of an entity handed to callers.
type Record map[string]any

func timestamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func money(d decimal.Decimal) float64 { return d.InexactFloat64() }

// FormatCPF renders 11 digits as 000.000.000-00.
func FormatCPF(s string) string {
	if len(s) != 11 {
		return s
	}
	return s[:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:]
}

// FormatCNPJ renders 14 digits as 00.000.000/0000-00.
func FormatCNPJ(s string) string {
	if len(s) != 14 {
		return s
	}
	return s[:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:]
}

// FormatZIP renders 8 digits as 00000-000.
func FormatZIP(s string) string {
	if len(s) != 8 {
		return s
	}
	return s[:5] + "-" + s[5:]
}

// FormatPhone renders 11 digits as (00) 00000-0000.
func FormatPhone(s string) string {
	if len(s) != 11 {
		return s
	}
	return "(" + s[:2] + ") " + s[2:7] + "-" + s[7:]
}

// Recorder is implemented by every entity.
type Recorder interface {
	Record() Record
}
