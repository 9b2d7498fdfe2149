package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/ada-checkout/internal/converter"
	"github.com/sbilibin2017/ada-checkout/internal/logger"
	"github.com/sbilibin2017/ada-checkout/internal/models"
)

// publishPreview publishes a payment preview decision to Kafka.
func (s *CheckoutService) publishPreview(ctx context.Context, id uuid.UUID, state models.State, decision string) {
	ada := converter.AdaAmount(state.BillAmount, state.ConversionRate)
	event := models.PaymentPreview{
		EventID:      uuid.NewString(),
		SessionID:    id.String(),
		Timestamp:    time.Now().Unix(),
		Decision:     decision,
		BillUSD:      state.BillAmount,
		AdaAmount:    ada,
		TotalPayable: converter.TotalPayable(ada),
		Rate:         state.ConversionRate,
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping preview event", "event_id", event.EventID, "decision", decision)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal preview event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish preview event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Preview event published", "event_id", event.EventID, "decision", decision, "total_payable", event.TotalPayable)
}
