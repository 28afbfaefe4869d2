package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stridewear/internal/domain"
)

type MessageStore interface {
	Insert(ctx context.Context, m domain.Message) (domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type InboxService struct {
	Messages MessageStore
}

func NewInboxService(messages MessageStore) *InboxService {
	return &InboxService{Messages: messages}
}

// Submit stores a contact-form message; read always starts false.
func (s *InboxService) Submit(ctx context.Context, m domain.Message) (domain.Message, error) {
	m.Read = false
	m.CreatedAt = time.Now().UTC()
	return s.Messages.Insert(ctx, m)
}

func (s *InboxService) List(ctx context.Context) ([]domain.Message, error) {
	return s.Messages.List(ctx)
}

func (s *InboxService) MarkRead(ctx context.Context, id primitive.ObjectID) error {
	return s.Messages.MarkRead(ctx, id)
}

func (s *InboxService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.Messages.Delete(ctx, id)
}
