package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fitness-catalog/internal/models"
)

// MaxStatusChecks acota el tamaño de la respuesta del listado
const MaxStatusChecks = 1000

type StatusStore interface {
	Create(ctx context.Context, check *models.StatusCheck) error
	List(ctx context.Context, limit int64) ([]models.StatusCheck, error)
}

type StatusService struct {
	store StatusStore
	now   func() time.Time
}

func NewStatusService(store StatusStore) *StatusService {
	return &StatusService{store: store, now: now}
}

func (s *StatusService) Create(ctx context.Context, in models.StatusCheckCreate) (*models.StatusCheck, error) {
	check := &models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: in.ClientName,
		Timestamp:  s.now(),
	}

	if err := s.store.Create(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]models.StatusCheck, error) {
	return s.store.List(ctx, MaxStatusChecks)
}
