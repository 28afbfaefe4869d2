package services

import (
	"context"
	"errors"

	"stridewear/internal/apperr"
	"stridewear/internal/domain"
)

type SettingsStore interface {
	Get(ctx context.Context) (map[string]any, error)
	Put(ctx context.Context, fields map[string]any) error
}

// SettingsService resolves the singleton settings document. A missing
// document yields Defaults without persisting anything; a partial
// document is overlaid on Defaults so earlier merge-writes keep the
// untouched fields at their default values.
type SettingsService struct {
	Store    SettingsStore
	Defaults domain.Settings
}

func NewSettingsService(store SettingsStore, defaults domain.Settings) *SettingsService {
	return &SettingsService{Store: store, Defaults: defaults}
}

func (s *SettingsService) Get(ctx context.Context) (map[string]any, error) {
	out := s.Defaults.Map()
	stored, err := s.Store.Get(ctx)
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Kind == apperr.NotFound {
			return out, nil
		}
		return nil, err
	}
	for k, v := range stored {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	return out, nil
}

func (s *SettingsService) Put(ctx context.Context, fields map[string]any) error {
	return s.Store.Put(ctx, fields)
}
