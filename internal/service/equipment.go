package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/energy"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/metrics"
)

const (
	SourceAPI  = "api"
	SourceMQTT = "mqtt"
)

type EquipmentService struct {
	store      Store
	own        *owner
	photos     *PhotoService
	calc       *energy.Calculator
	categories []string
	newID      func() string
}

// fill copies the editable attributes and recomputes the derived
// consumption fields.
func (s *EquipmentService) fill(e *domain.Equipment, in domain.EquipmentInput) {
	e.Category = in.Category
	e.Description = strings.TrimSpace(in.Description)
	e.Quantity = in.Quantity
	e.WattageW = in.WattageW
	e.HoursPerDay = in.HoursPerDay
	e.DaysPerWeek = in.DaysPerWeek
	e.Condition = in.Condition
	e.Notes = optional(strings.TrimSpace(in.Notes))
	m := s.calc.Compute(in.Quantity, in.WattageW, in.HoursPerDay, in.DaysPerWeek)
	e.KWhPerDay = m.KWhPerDay
	e.KWhPerMonth = m.KWhPerMonth
}

// Create records new equipment in an area. With a photo, the image is stored
// first and removed again if the record cannot be written.
func (s *EquipmentService) Create(ctx context.Context, userID, areaID string, in domain.EquipmentInput, photo *PhotoUpload) (*domain.Equipment, error) {
	return s.create(ctx, userID, areaID, in, photo, SourceAPI)
}

func (s *EquipmentService) create(ctx context.Context, userID, areaID string, in domain.EquipmentInput, photo *PhotoUpload, source string) (*domain.Equipment, error) {
	if err := in.Validate(s.categories); err != nil {
		return nil, err
	}
	_, p, err := s.own.area(ctx, userID, areaID)
	if err != nil {
		return nil, err
	}
	e := &domain.Equipment{ID: s.newID(), AreaID: areaID}
	s.fill(e, in)

	if photo != nil {
		_, err = s.photos.attach(ctx, "equipment", p.UserID, e.ID, *photo, func(url string) error {
			e.PhotoURL = &url
			return s.store.CreateEquipment(ctx, e)
		})
	} else if err = s.store.CreateEquipment(ctx, e); err != nil {
		err = wrap(OpSave, "equipment", err)
	}
	if err != nil {
		return nil, err
	}
	metrics.EquipmentSaved.WithLabelValues(source).Inc()
	log.Info().Str("equipment_id", e.ID).Str("area_id", areaID).Str("source", source).
		Float64("kwh_per_month", e.KWhPerMonth).Msg("equipment recorded")
	return e, nil
}

// List returns an area's equipment in creation order.
func (s *EquipmentService) List(ctx context.Context, userID, areaID string) ([]domain.Equipment, error) {
	if _, _, err := s.own.area(ctx, userID, areaID); err != nil {
		return nil, err
	}
	items, err := s.store.ListEquipmentByArea(ctx, areaID)
	if err != nil {
		return nil, wrap(OpLoad, "equipment", err)
	}
	return items, nil
}

func (s *EquipmentService) Update(ctx context.Context, userID, id string, in domain.EquipmentInput) (*domain.Equipment, error) {
	if err := in.Validate(s.categories); err != nil {
		return nil, err
	}
	e, _, err := s.own.equipment(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	s.fill(e, in)
	if err := s.store.UpdateEquipment(ctx, e); err != nil {
		return nil, wrap(OpSave, "equipment", err)
	}
	metrics.EquipmentSaved.WithLabelValues(SourceAPI).Inc()
	return e, nil
}

func (s *EquipmentService) Delete(ctx context.Context, userID, id string) error {
	e, _, err := s.own.equipment(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteEquipment(ctx, id); err != nil {
		return wrap(OpDelete, "equipment", err)
	}
	if e.PhotoURL != nil {
		s.photos.remove(ctx, *e.PhotoURL)
	}
	return nil
}

// SetPhoto replaces the equipment photo. The previous object is deleted once
// the new URL is stored.
func (s *EquipmentService) SetPhoto(ctx context.Context, userID, id string, up PhotoUpload) (*domain.Equipment, error) {
	e, _, err := s.own.equipment(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	old := e.PhotoURL
	url, err := s.photos.attach(ctx, "equipment", userID, e.ID, up, func(url string) error {
		return s.store.SetEquipmentPhoto(ctx, e.ID, &url)
	})
	if err != nil {
		return nil, err
	}
	if old != nil {
		s.photos.remove(ctx, *old)
	}
	e.PhotoURL = &url
	return e, nil
}

// Capture is an equipment record synced from a field device.
type Capture struct {
	UserID    string                `json:"user_id"`
	AreaID    string                `json:"area_id"`
	Equipment domain.EquipmentInput `json:"equipment"`
}

// FromMQTT records a field capture published on the equipment topic.
func (s *EquipmentService) FromMQTT(ctx context.Context, topic string, payload []byte) (*domain.Equipment, error) {
	var c Capture
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("failed to decode capture on %s: %w", topic, err)
	}
	if c.UserID == "" || c.AreaID == "" {
		return nil, fmt.Errorf("capture on %s is missing user_id or area_id", topic)
	}
	return s.create(ctx, c.UserID, c.AreaID, c.Equipment, nil, SourceMQTT)
}
