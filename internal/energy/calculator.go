// Package energy holds the equipment energy calculator and the aggregation
// engine behind project summaries, charts and report totals.
package energy

import "fmt"

// DaysPerMonth is the fixed month length used for monthly consumption.
const DaysPerMonth = 30

// MonthlyMode selects how kWh/day is scaled to kWh/month.
type MonthlyMode string

const (
	// MonthlyFixed30 multiplies kWh/day by 30 regardless of days per week.
	MonthlyFixed30 MonthlyMode = "fixed30"
	// MonthlyWeekly multiplies kWh/day by days_per_week * 30/7.
	MonthlyWeekly MonthlyMode = "weekly"
)

func ParseMonthlyMode(s string) (MonthlyMode, error) {
	switch MonthlyMode(s) {
	case "", MonthlyFixed30:
		return MonthlyFixed30, nil
	case MonthlyWeekly:
		return MonthlyWeekly, nil
	}
	return "", fmt.Errorf("unknown monthly mode %q", s)
}

type Metrics struct {
	KWhPerDay   float64 `json:"kwh_per_day"`
	KWhPerMonth float64 `json:"kwh_per_month"`
}

// ComputeEquipmentMetrics derives daily and monthly consumption for
// quantity units drawing wattageW watts for hoursPerDay hours.
func ComputeEquipmentMetrics(quantity int, wattageW, hoursPerDay float64) Metrics {
	perDay := float64(quantity) * wattageW * hoursPerDay / 1000
	return Metrics{KWhPerDay: perDay, KWhPerMonth: perDay * DaysPerMonth}
}

// MonthlyCost prices a monthly consumption at tariff currency units per kWh.
func MonthlyCost(kwhPerMonth, tariff float64) float64 {
	return kwhPerMonth * tariff
}

// Calculator applies a configured MonthlyMode. The zero value behaves like
// ComputeEquipmentMetrics.
type Calculator struct {
	Mode MonthlyMode
}

func NewCalculator(mode MonthlyMode) *Calculator {
	return &Calculator{Mode: mode}
}

func (c *Calculator) Compute(quantity int, wattageW, hoursPerDay float64, daysPerWeek int) Metrics {
	m := ComputeEquipmentMetrics(quantity, wattageW, hoursPerDay)
	if c != nil && c.Mode == MonthlyWeekly {
		m.KWhPerMonth = m.KWhPerDay * float64(daysPerWeek) * DaysPerMonth / 7
	}
	return m
}
