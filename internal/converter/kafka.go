package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/storefront/internal/model"
)

type productUpdatedRecord struct {
	EventUUID  string    `json:"eventUuid"`
	ProductID  int64     `json:"productId"`
	OccurredAt time.Time `json:"occurredAt"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) ProductUpdatedToModel(data []byte) (model.ProductUpdated, error) {
	var rec productUpdatedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.ProductUpdated{}, fmt.Errorf("%w: unmarshal product updated record: %v", model.ErrInvalidEvent, err)
	}

	eventID, err := uuid.Parse(rec.EventUUID)
	if err != nil {
		return model.ProductUpdated{}, fmt.Errorf("%w: event uuid %q: %v", model.ErrInvalidEvent, rec.EventUUID, err)
	}
	if rec.ProductID <= 0 {
		return model.ProductUpdated{}, fmt.Errorf("%w: product id %d", model.ErrInvalidEvent, rec.ProductID)
	}

	return model.ProductUpdated{
		EventID:    eventID,
		ProductID:  rec.ProductID,
		OccurredAt: rec.OccurredAt,
	}, nil
}

func (c *kafkaConverter) ProductUpdatedToPayload(m model.ProductUpdated) ([]byte, error) {
	payload, err := json.Marshal(productUpdatedRecord{
		EventUUID:  m.EventID.String(),
		ProductID:  m.ProductID,
		OccurredAt: m.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal product updated record: %w", err)
	}

	return payload, nil
}
