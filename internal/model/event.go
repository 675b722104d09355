package model

import (
	"time"

	"github.com/google/uuid"
)

type ProductUpdated struct {
	EventID    uuid.UUID
	ProductID  int64
	OccurredAt time.Time
}
