package handler

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/review-dashboard/gateway/internal/model"
	"github.com/Astemirdum/review-dashboard/pkg/kafka"
)

const (
	auditUserCreated     = "user.created"
	auditReviewSubmitted = "review.submitted"
)

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer degrades to a no-op when no producer is available: audit
// publishing must never block serving requests.
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	return &enqueuerImpl{
		producer: producer,
	}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(string, any) error { return nil }

// audit publishes a best-effort event after a successful write. Failures
// are logged and never surface to the caller.
func (h *Handler) audit(kind, entityID, userID string) {
	ev := model.AuditEvent{
		EventID:    uuid.NewString(),
		Kind:       kind,
		EntityID:   entityID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
	if err := h.enqueuer.Enqueue(kafka.AuditTopic, ev); err != nil {
		h.log.Warn("audit enqueue", zap.String("kind", kind), zap.Error(err))
	}
}
