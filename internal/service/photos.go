package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/energy-audit-field/internal/domain"
	"github.com/ANIKETSHETTY47/energy-audit-field/internal/metrics"
)

// PhotoUpload is an image file attached to an area or equipment record.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

func (u PhotoUpload) ext() string {
	if e := strings.TrimPrefix(strings.ToLower(path.Ext(u.FileName)), "."); e != "" {
		return e
	}
	switch u.ContentType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	}
	return "jpg"
}

func (u PhotoUpload) contentType() string {
	if u.ContentType != "" {
		return u.ContentType
	}
	return "image/jpeg"
}

type PhotoService struct {
	store      Store
	own        *owner
	objects    ObjectStore
	compensate bool
	now        func() time.Time
}

// PhotoKey is the object path for an owner's photo: <user>/<owner>-<unix ms>.<ext>.
func PhotoKey(userID, ownerID string, at time.Time, ext string) string {
	return fmt.Sprintf("%s/%s-%d.%s", userID, ownerID, at.UnixMilli(), ext)
}

// Gallery lists the project's equipment photos, newest first.
func (s *PhotoService) Gallery(ctx context.Context, userID, projectID string) ([]domain.Photo, error) {
	if _, err := s.own.project(ctx, userID, projectID); err != nil {
		return nil, err
	}
	items, err := s.store.ListPhotos(ctx, projectID)
	if err != nil {
		return nil, wrap(OpLoad, "photos", err)
	}
	return items, nil
}

func (s *PhotoService) upload(ctx context.Context, userID, ownerID string, up PhotoUpload) (url, key string, err error) {
	if s.objects == nil {
		return "", "", ErrPhotosDisabled
	}
	key = PhotoKey(userID, ownerID, s.now(), up.ext())
	url, err = s.objects.Upload(ctx, key, up.Data, up.contentType())
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}

// attach uploads the photo, then runs write with its URL. When write fails the
// uploaded object is deleted if compensation is on; a failed delete is logged
// and the write error is returned.
func (s *PhotoService) attach(ctx context.Context, entity, userID, ownerID string, up PhotoUpload, write func(url string) error) (string, error) {
	url, key, err := s.upload(ctx, userID, ownerID, up)
	if err != nil {
		return "", wrap(OpSave, entity, err)
	}
	if err := write(url); err != nil {
		s.discard(ctx, key)
		return "", wrap(OpSave, entity, err)
	}
	return url, nil
}

func (s *PhotoService) discard(ctx context.Context, key string) {
	if !s.compensate {
		log.Warn().Str("key", key).Msg("photo left without a record")
		return
	}
	if err := s.objects.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to remove orphaned photo")
		return
	}
	metrics.PhotoOrphansRemoved.Inc()
}

// remove deletes the object behind a stored photo URL. Failures are logged.
func (s *PhotoService) remove(ctx context.Context, url string) {
	if s.objects == nil || url == "" {
		return
	}
	key, ok := s.objects.KeyFromURL(url)
	if !ok {
		log.Warn().Str("url", url).Msg("photo url does not map to a stored object")
		return
	}
	if err := s.objects.Delete(ctx, key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete photo")
	}
}
