package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/CoachLinkServices/coach-scheduler/internal/models"
	"github.com/CoachLinkServices/coach-scheduler/internal/outbox"
)

// OutboxGormStore appends events as rows on whatever *gorm.DB it wraps.
// Built over a transaction handle it inherits that transaction, which is
// how the unit of work keeps event writes atomic with the state change.
type OutboxGormStore struct {
	db *gorm.DB
}

func NewOutboxGormStore(db *gorm.DB) *OutboxGormStore {
	return &OutboxGormStore{db: db}
}

func (s *OutboxGormStore) Append(
	ctx context.Context,
	ev outbox.Event,
) error {

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return err
	}

	msg := models.OutboxMessage{
		EventID:   uuid.NewString(),
		EventType: ev.Type,
		Payload:   string(payload),
	}

	return s.db.WithContext(ctx).Create(&msg).Error
}

// Compile-time check
var _ outbox.Appender = (*OutboxGormStore)(nil)
