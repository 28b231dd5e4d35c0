package storage

import (
	"strings"
	"testing"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

func TestFormatCSV_HeaderAndRow(t *testing.T) {
	result := domain.PricingResult{
		Params: domain.SimulationParameters{
			NumPaths: 1000,
			S:        100,
			K:        100,
			R:        0.5,
			V:        0.2,
			T:        1.0,
		},
		CallPrice: 43.75,
		PutPrice:  0.125,
	}

	payload := FormatCSV(result)
	lines := strings.Split(strings.TrimRight(payload, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one data row, got %d lines", len(lines))
	}
	// 表头与历史交付格式逐字一致
	if lines[0] != "No of paths, Underlying, Strike, RiskFree Rate, Volatility, Maturity, Call Price, Put Price" {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	if lines[1] != "1000,100,100,0.5,0.2,1,43.75,0.125" {
		t.Fatalf("data row mismatch: %q", lines[1])
	}
}
