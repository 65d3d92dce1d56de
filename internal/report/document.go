// Package report renders an audit project into the exported report formats.
package report

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
)

const (
	Title          = "ENERGY AUDIT REPORT"
	DefaultLayout  = "1/2/2006"
	fileNamePrefix = "Energy_Audit_Report_"
)

// Document is everything a report is rendered from.
type Document struct {
	Project         domain.Project
	Equipment       []domain.EquipmentWithArea
	Observations    *domain.Observations
	Recommendations []domain.Recommendation
	// DateLayout formats the audit date; DefaultLayout when empty.
	DateLayout string
}

// Fixed is a number rendered with a fixed count of decimal places.
type Fixed struct {
	Value  float64
	Places int32
}

// dec rounds half up on the exact binary value, so 1.005 becomes 1.00.
func (f Fixed) dec() decimal.Decimal {
	return decimal.NewFromFloatWithExponent(f.Value, -f.Places)
}

func (f Fixed) String() string { return f.dec().StringFixed(f.Places) }

func (f Fixed) Rounded() float64 {
	v, _ := f.dec().Float64()
	return v
}

var EquipmentHeader = []string{
	"Area",
	"Category",
	"Description",
	"Quantity",
	"Wattage (W)",
	"Hours/Day",
	"Days/Week",
	"kWh/Day",
	"kWh/Month",
	"Cost/Month (GHS)",
	"Condition",
	"Notes",
}

var RecommendationHeader = []string{
	"Recommendation",
	"Explanation",
	"Est. Savings (kWh/month)",
	"Est. Savings (GHS/month)",
}

const (
	sectionProject         = "PROJECT INFORMATION"
	sectionEquipment       = "EQUIPMENT INVENTORY"
	sectionObservations    = "OBSERVATIONS"
	sectionRecommendations = "ENERGY SAVING RECOMMENDATIONS"
)

// row kinds let renderers style section titles and table headers.
type rowKind int

const (
	rowData rowKind = iota
	rowBlank
	rowTitle
	rowSection
	rowHeader
)

type row struct {
	kind   rowKind
	fields []any
}

func strs(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// rows lays the document out section by section. Field values are string,
// int, float64, Fixed or nil.
func (d Document) rows() []row {
	p := d.Project
	layout := d.DateLayout
	if layout == "" {
		layout = DefaultLayout
	}

	rs := []row{
		{kind: rowTitle, fields: []any{Title}},
		{kind: rowBlank},
		{kind: rowSection, fields: []any{sectionProject}},
		{fields: []any{"Client Name", p.ClientName}},
		{fields: []any{"Site Address", p.SiteAddress}},
		{fields: []any{"Contact Person", p.ContactPerson}},
		{fields: []any{"Building Type", p.BuildingType}},
		{fields: []any{"Audit Date", p.AuditDate.Format(layout)}},
		{fields: []any{"Auditors", strings.Join(p.AuditorNames, ", ")}},
		{fields: []any{"Tariff (GHS/kWh)", p.TariffGHSPerKWh}},
		{kind: rowBlank},
		{kind: rowSection, fields: []any{sectionEquipment}},
		{kind: rowHeader, fields: strs(EquipmentHeader)},
	}

	plain := make([]domain.Equipment, len(d.Equipment))
	for i, eq := range d.Equipment {
		plain[i] = eq.Equipment
		rs = append(rs, row{fields: []any{
			eq.AreaName,
			eq.Category,
			eq.Description,
			eq.Quantity,
			eq.WattageW,
			eq.HoursPerDay,
			eq.DaysPerWeek,
			Fixed{eq.KWhPerDay, 4},
			Fixed{eq.KWhPerMonth, 2},
			Fixed{energy.MonthlyCost(eq.KWhPerMonth, p.TariffGHSPerKWh), 2},
			eq.Condition,
			deref(eq.Notes),
		}})
	}
	totals := energy.ComputeTotals(plain, p.TariffGHSPerKWh)

	rs = append(rs,
		row{kind: rowBlank},
		row{kind: rowSection, fields: []any{"TOTAL MONTHLY CONSUMPTION", Fixed{totals.TotalKWh, 2}, "kWh"}},
		row{kind: rowSection, fields: []any{"TOTAL ESTIMATED MONTHLY COST", Fixed{totals.TotalCost, 2}, "GHS"}},
		row{kind: rowBlank},
	)

	if o := d.Observations; o != nil {
		rs = append(rs, row{kind: rowSection, fields: []any{sectionObservations}}, row{kind: rowBlank})
		for _, f := range observationFields(o) {
			if f.value == "" {
				continue
			}
			rs = append(rs,
				row{kind: rowHeader, fields: []any{f.label}},
				row{fields: []any{f.value}},
				row{kind: rowBlank},
			)
		}
	}

	if len(d.Recommendations) > 0 {
		rs = append(rs,
			row{kind: rowSection, fields: []any{sectionRecommendations}},
			row{kind: rowHeader, fields: strs(RecommendationHeader)},
		)
		for _, rec := range d.Recommendations {
			rs = append(rs, row{fields: []any{
				rec.Description,
				deref(rec.Explanation),
				optionalFixed(rec.EstimatedSavingsKWhMonth),
				optionalFixed(rec.EstimatedSavingsGHSMonth),
			}})
		}
	}
	return rs
}

func optionalFixed(v *float64) any {
	if v == nil {
		return nil
	}
	return Fixed{*v, 2}
}

type labelled struct {
	label string
	value string
}

func observationFields(o *domain.Observations) []labelled {
	return []labelled{
		{"Ventilation Condition", deref(o.VentilationCondition)},
		{"Comfort Levels", deref(o.ComfortLevels)},
		{"Lighting Adequacy", deref(o.LightingAdequacy)},
		{"Signs of Energy Waste", deref(o.SignsOfWaste)},
		{"Maintenance Issues", deref(o.MaintenanceIssues)},
		{"Safety Concerns", deref(o.SafetyConcerns)},
	}
}

// text renders a field value the way it appears in delimited output.
func text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case Fixed:
		return x.String()
	}
	return ""
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName names an export after the client and the export date, e.g.
// Energy_Audit_Report_Acme_Ltd_2024-03-01.csv.
func FileName(clientName string, now time.Time, ext string) string {
	return fileNamePrefix + whitespace.ReplaceAllString(clientName, "_") + "_" + now.Format("2006-01-02") + "." + ext
}
