package domain

import (
	"time"

	"github.com/lib/pq"
)

type ProjectStatus string

const (
	StatusDraft      ProjectStatus = "draft"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
)

type Project struct {
	ID              string         `db:"id" json:"id"`
	UserID          string         `db:"user_id" json:"user_id"`
	ClientName      string         `db:"client_name" json:"client_name"`
	SiteAddress     string         `db:"site_address" json:"site_address"`
	ContactPerson   string         `db:"contact_person" json:"contact_person"`
	BuildingType    string         `db:"building_type" json:"building_type"`
	AuditDate       time.Time      `db:"audit_date" json:"audit_date"`
	AuditorNames    pq.StringArray `db:"auditor_names" json:"auditor_names"`
	TariffGHSPerKWh float64        `db:"tariff_ghs_per_kwh" json:"tariff_ghs_per_kwh"`
	Status          ProjectStatus  `db:"status" json:"status"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

type Area struct {
	ID        string    `db:"id" json:"id"`
	ProjectID string    `db:"project_id" json:"project_id"`
	Name      string    `db:"name" json:"name"`
	PhotoURL  *string   `db:"photo_url" json:"photo_url,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Equipment is one recorded item (or group of identical items) inside an area.
// KWhPerDay and KWhPerMonth are derived; only the energy calculator sets them.
type Equipment struct {
	ID          string    `db:"id" json:"id"`
	AreaID      string    `db:"area_id" json:"area_id"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Quantity    int       `db:"quantity" json:"quantity"`
	WattageW    float64   `db:"wattage_w" json:"wattage_w"`
	HoursPerDay float64   `db:"hours_per_day" json:"hours_per_day"`
	DaysPerWeek int       `db:"days_per_week" json:"days_per_week"`
	KWhPerDay   float64   `db:"kwh_per_day" json:"kwh_per_day"`
	KWhPerMonth float64   `db:"kwh_per_month" json:"kwh_per_month"`
	Condition   string    `db:"condition" json:"condition"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	PhotoURL    *string   `db:"photo_url" json:"photo_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EquipmentWithArea carries the owning area's name for reports and galleries.
type EquipmentWithArea struct {
	Equipment
	AreaName string `db:"area_name" json:"area_name"`
}

type Observations struct {
	ID                   string    `db:"id" json:"id"`
	ProjectID            string    `db:"project_id" json:"project_id"`
	VentilationCondition *string   `db:"ventilation_condition" json:"ventilation_condition,omitempty"`
	ComfortLevels        *string   `db:"comfort_levels" json:"comfort_levels,omitempty"`
	LightingAdequacy     *string   `db:"lighting_adequacy" json:"lighting_adequacy,omitempty"`
	SignsOfWaste         *string   `db:"signs_of_waste" json:"signs_of_waste,omitempty"`
	MaintenanceIssues    *string   `db:"maintenance_issues" json:"maintenance_issues,omitempty"`
	SafetyConcerns       *string   `db:"safety_concerns" json:"safety_concerns,omitempty"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

type Recommendation struct {
	ID                       string    `db:"id" json:"id"`
	ProjectID                string    `db:"project_id" json:"project_id"`
	Description              string    `db:"description" json:"description"`
	Explanation              *string   `db:"explanation" json:"explanation,omitempty"`
	EstimatedSavingsKWhMonth *float64  `db:"estimated_savings_kwh_month" json:"estimated_savings_kwh_month,omitempty"`
	EstimatedSavingsGHSMonth *float64  `db:"estimated_savings_ghs_month" json:"estimated_savings_ghs_month,omitempty"`
	CreatedAt                time.Time `db:"created_at" json:"created_at"`
}

// Photo is a gallery entry for equipment that has a stored image.
type Photo struct {
	EquipmentID string `db:"id" json:"id"`
	PhotoURL    string `db:"photo_url" json:"photo_url"`
	Description string `db:"description" json:"description"`
	Category    string `db:"category" json:"category"`
	AreaName    string `db:"area_name" json:"area_name"`
}

// ReportExport records one archived report file.
type ReportExport struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	UserID     string    `json:"user_id"`
	ClientName string    `json:"client_name"`
	Format     string    `json:"format"`
	FileName   string    `json:"file_name"`
	ObjectKey  string    `json:"object_key"`
	URL        string    `json:"url"`
	SizeBytes  int       `json:"size_bytes"`
	TotalKWh   float64   `json:"total_kwh"`
	TotalCost  float64   `json:"total_cost"`
	CreatedAt  time.Time `json:"created_at"`
}
