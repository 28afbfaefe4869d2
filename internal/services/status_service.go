package services

import "context"

type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusService answers the health probe by pinging the store.
type StatusService struct {
	DB Pinger
}

func NewStatusService(db Pinger) *StatusService {
	return &StatusService{DB: db}
}

func (s *StatusService) Check(ctx context.Context) error {
	return s.DB.Ping(ctx)
}
