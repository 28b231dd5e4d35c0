package storage

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

// csvHeader 与历史交付格式保持逐字一致
const csvHeader = "No of paths, Underlying, Strike, RiskFree Rate, Volatility, Maturity, Call Price, Put Price"

// FormatCSV 将定价结果渲染为单行 CSV 载荷
func FormatCSV(r domain.PricingResult) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%d,%s,%s,%s,%s,%s,%s,%s\n",
		r.Params.NumPaths,
		formatFloat(r.Params.S),
		formatFloat(r.Params.K),
		formatFloat(r.Params.R),
		formatFloat(r.Params.V),
		formatFloat(r.Params.T),
		formatFloat(r.CallPrice),
		formatFloat(r.PutPrice),
	)
	return b.String()
}

// formatFloat 用 decimal 规整浮点输出，避免科学计数法进入报表
func formatFloat(v float64) string {
	return decimal.NewFromFloat(v).String()
}
