// Package fees computes the all-in transaction cost for an SGX cash equity
// trade under a fixed retail fee schedule.
package fees

import "github.com/shopspring/decimal"

var (
	commissionRate = decimal.NewFromFloat(0.0003)
	minCommission  = decimal.NewFromFloat(0.99)
	exchangeRate   = decimal.NewFromFloat(0.0004)
	settlementFee  = decimal.NewFromFloat(0.35)
	taxMultiplier  = decimal.NewFromFloat(1.09)
)

// Calculate returns the total fees for a trade value: broker commission
// (0.03%, min 0.99), exchange fee (0.04%), flat settlement fee, all times the
// 9% tax. A zero-value trade incurs no commission, only the settlement fee.
// The result is rounded to cents, half away from zero. Negative input is
// undefined by the schedule; the function still returns a numeric result.
func Calculate(tradeValue float64) float64 {
	v := decimal.NewFromFloat(tradeValue)

	commission := v.Mul(commissionRate)
	if v.IsPositive() && commission.LessThan(minCommission) {
		commission = minCommission
	}
	exchange := v.Mul(exchangeRate)

	total := commission.Add(exchange).Add(settlementFee).Mul(taxMultiplier)
	f, _ := total.Round(2).Float64()
	return f
}
