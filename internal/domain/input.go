package domain

import (
	"fmt"
	"strings"
	"time"
)

var Conditions = []string{"Working", "Not Working", "Needs Service"}

// DefaultCategories is the equipment catalog used when none is configured.
var DefaultCategories = []string{
	"Lighting",
	"Fans",
	"Air Conditioning",
	"Refrigeration",
	"ICT Equipment",
	"Motors",
	"Pumps",
	"Water Heaters",
	"Kitchen Equipment",
	"Other",
}

// ValidationError reports one rejected form field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string { return e.Field + ": " + e.Message }

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationErrors) add(field, format string, args ...any) {
	*v = append(*v, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type ProjectInput struct {
	ClientName      string        `json:"client_name"`
	SiteAddress     string        `json:"site_address"`
	ContactPerson   string        `json:"contact_person"`
	BuildingType    string        `json:"building_type"`
	AuditDate       string        `json:"audit_date"`
	AuditorNames    []string      `json:"auditor_names"`
	TariffGHSPerKWh *float64      `json:"tariff_ghs_per_kwh"`
	Status          ProjectStatus `json:"status"`
}

const DefaultTariff = 1.0

// Validate checks required fields and returns the parsed audit date.
func (in *ProjectInput) Validate() (time.Time, error) {
	var errs ValidationErrors
	if strings.TrimSpace(in.ClientName) == "" {
		errs.add("client_name", "is required")
	}
	if strings.TrimSpace(in.SiteAddress) == "" {
		errs.add("site_address", "is required")
	}
	if strings.TrimSpace(in.ContactPerson) == "" {
		errs.add("contact_person", "is required")
	}
	if strings.TrimSpace(in.BuildingType) == "" {
		errs.add("building_type", "is required")
	}
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if in.AuditDate != "" {
		d, err := time.Parse("2006-01-02", in.AuditDate)
		if err != nil {
			errs.add("audit_date", "must be a date in YYYY-MM-DD form")
		} else {
			date = d
		}
	}
	if in.TariffGHSPerKWh != nil && *in.TariffGHSPerKWh < 0 {
		errs.add("tariff_ghs_per_kwh", "must not be negative")
	}
	switch in.Status {
	case "", StatusDraft, StatusInProgress, StatusCompleted:
	default:
		errs.add("status", "must be one of draft, in_progress, completed")
	}
	return date, errs.orNil()
}

// CleanAuditorNames trims names and drops empty entries.
func CleanAuditorNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

type AreaInput struct {
	Name string `json:"name"`
}

func (in *AreaInput) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(in.Name) == "" {
		errs.add("name", "is required")
	}
	return errs.orNil()
}

// EquipmentInput holds the user-editable equipment attributes.
type EquipmentInput struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	WattageW    float64 `json:"wattage_w"`
	HoursPerDay float64 `json:"hours_per_day"`
	DaysPerWeek int     `json:"days_per_week"`
	Condition   string  `json:"condition"`
	Notes       string  `json:"notes"`
}

// Validate rejects input outside the calculator's domain. categories is the
// configured catalog; an empty catalog accepts any non-empty category.
func (in *EquipmentInput) Validate(categories []string) error {
	var errs ValidationErrors
	if in.Category == "" {
		errs.add("category", "is required")
	} else if len(categories) > 0 && !contains(categories, in.Category) {
		errs.add("category", "unknown category %q", in.Category)
	}
	if strings.TrimSpace(in.Description) == "" {
		errs.add("description", "is required")
	}
	if in.Quantity < 1 {
		errs.add("quantity", "must be at least 1")
	}
	if in.WattageW < 0 {
		errs.add("wattage_w", "must not be negative")
	}
	if in.HoursPerDay < 0 || in.HoursPerDay > 24 {
		errs.add("hours_per_day", "must be between 0 and 24")
	}
	if in.DaysPerWeek < 1 || in.DaysPerWeek > 7 {
		errs.add("days_per_week", "must be between 1 and 7")
	}
	if in.Condition == "" {
		in.Condition = Conditions[0]
	} else if !contains(Conditions, in.Condition) {
		errs.add("condition", "must be one of %s", strings.Join(Conditions, ", "))
	}
	return errs.orNil()
}

type ObservationsInput struct {
	VentilationCondition *string `json:"ventilation_condition"`
	ComfortLevels        *string `json:"comfort_levels"`
	LightingAdequacy     *string `json:"lighting_adequacy"`
	SignsOfWaste         *string `json:"signs_of_waste"`
	MaintenanceIssues    *string `json:"maintenance_issues"`
	SafetyConcerns       *string `json:"safety_concerns"`
}

type RecommendationInput struct {
	Description              string   `json:"description"`
	Explanation              string   `json:"explanation"`
	EstimatedSavingsKWhMonth *float64 `json:"estimated_savings_kwh_month"`
	EstimatedSavingsGHSMonth *float64 `json:"estimated_savings_ghs_month"`
}

func (in *RecommendationInput) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(in.Description) == "" {
		errs.add("description", "is required")
	}
	if in.EstimatedSavingsKWhMonth != nil && *in.EstimatedSavingsKWhMonth < 0 {
		errs.add("estimated_savings_kwh_month", "must not be negative")
	}
	if in.EstimatedSavingsGHSMonth != nil && *in.EstimatedSavingsGHSMonth < 0 {
		errs.add("estimated_savings_ghs_month", "must not be negative")
	}
	return errs.orNil()
}

// CalcInput is a stateless consumption estimate request.
type CalcInput struct {
	Quantity        int      `json:"quantity"`
	WattageW        float64  `json:"wattage_w"`
	HoursPerDay     float64  `json:"hours_per_day"`
	DaysPerWeek     int      `json:"days_per_week"`
	TariffGHSPerKWh *float64 `json:"tariff_ghs_per_kwh"`
}

func (in *CalcInput) Validate() error {
	var errs ValidationErrors
	if in.Quantity < 1 {
		errs.add("quantity", "must be at least 1")
	}
	if in.WattageW < 0 {
		errs.add("wattage_w", "must not be negative")
	}
	if in.HoursPerDay < 0 || in.HoursPerDay > 24 {
		errs.add("hours_per_day", "must be between 0 and 24")
	}
	if in.DaysPerWeek == 0 {
		in.DaysPerWeek = 7
	} else if in.DaysPerWeek < 1 || in.DaysPerWeek > 7 {
		errs.add("days_per_week", "must be between 1 and 7")
	}
	if in.TariffGHSPerKWh != nil && *in.TariffGHSPerKWh < 0 {
		errs.add("tariff_ghs_per_kwh", "must not be negative")
	}
	return errs.orNil()
}
