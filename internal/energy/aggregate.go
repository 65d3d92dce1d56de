package energy

import (
	"sort"
	"time"

	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/aggregator"
	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/converter"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
)

type CategorySummary struct {
	Category  string  `json:"category"`
	TotalKWh  float64 `json:"total_kwh"`
	TotalCost float64 `json:"total_cost"`
	Count     int     `json:"count"`
}

type AreaSummary struct {
	AreaID    string  `json:"area_id"`
	AreaName  string  `json:"area_name"`
	TotalKWh  float64 `json:"total_kwh"`
	TotalCost float64 `json:"total_cost"`
	Count     int     `json:"count"`
}

type Totals struct {
	TotalKWh  float64 `json:"total_kwh"`
	TotalCost float64 `json:"total_cost"`
	ItemCount int     `json:"item_count"`
	AnnualMWh float64 `json:"annual_mwh"`
}

// AggregateByCategory sums monthly consumption per category present in
// equipment, largest consumer first. Ties keep discovery order.
func AggregateByCategory(equipment []domain.Equipment, tariff float64) []CategorySummary {
	out := make([]CategorySummary, 0)
	index := make(map[string]int)
	for _, eq := range equipment {
		i, ok := index[eq.Category]
		if !ok {
			i = len(out)
			index[eq.Category] = i
			out = append(out, CategorySummary{Category: eq.Category})
		}
		out[i].TotalKWh += eq.KWhPerMonth
		out[i].Count++
	}
	for i := range out {
		out[i].TotalCost = MonthlyCost(out[i].TotalKWh, tariff)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].TotalKWh > out[b].TotalKWh })
	return out
}

// AggregateByArea sums monthly consumption per area in discovery order.
// Equipment referencing an area missing from areas is skipped.
func AggregateByArea(equipment []domain.Equipment, areas []domain.Area, tariff float64) []AreaSummary {
	names := make(map[string]string, len(areas))
	for _, a := range areas {
		names[a.ID] = a.Name
	}
	out := make([]AreaSummary, 0)
	index := make(map[string]int)
	for _, eq := range equipment {
		name, known := names[eq.AreaID]
		if !known {
			continue
		}
		i, ok := index[eq.AreaID]
		if !ok {
			i = len(out)
			index[eq.AreaID] = i
			out = append(out, AreaSummary{AreaID: eq.AreaID, AreaName: name})
		}
		out[i].TotalKWh += eq.KWhPerMonth
		out[i].Count++
	}
	for i := range out {
		out[i].TotalCost = MonthlyCost(out[i].TotalKWh, tariff)
	}
	return out
}

// ComputeTotals returns the project-wide monthly consumption and cost.
func ComputeTotals(equipment []domain.Equipment, tariff float64) Totals {
	if len(equipment) == 0 {
		return Totals{}
	}
	points := make([]aggregator.Point, len(equipment))
	for i, eq := range equipment {
		points[i] = aggregator.Point{Value: eq.KWhPerMonth, Timestamp: eq.CreatedAt}
		if points[i].Timestamp.IsZero() {
			points[i].Timestamp = time.Unix(0, 0)
		}
	}
	total := aggregator.Sum(points)
	conv := &converter.EnergyConverter{}
	return Totals{
		TotalKWh:  total,
		TotalCost: MonthlyCost(total, tariff),
		ItemCount: len(equipment),
		AnnualMWh: conv.KWhToMWh(total * 12),
	}
}

// Summary bundles everything the project summary and chart views need.
type Summary struct {
	ProjectID  string            `json:"project_id"`
	Tariff     float64           `json:"tariff_ghs_per_kwh"`
	Totals     Totals            `json:"totals"`
	Categories []CategorySummary `json:"categories"`
	Areas      []AreaSummary     `json:"areas"`
}

func Summarize(projectID string, equipment []domain.Equipment, areas []domain.Area, tariff float64) Summary {
	return Summary{
		ProjectID:  projectID,
		Tariff:     tariff,
		Totals:     ComputeTotals(equipment, tariff),
		Categories: AggregateByCategory(equipment, tariff),
		Areas:      AggregateByArea(equipment, areas, tariff),
	}
}
