package order_completed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"candydelivery/internal/dto"
	orderservice "candydelivery/internal/service/order"
	"candydelivery/pkg/logger"
)

// completedEvent — событие завершения заказа из внешнего трекинга курьеров.
type completedEvent struct {
	CourierID    int64  `json:"courier_id"`
	OrderID      int64  `json:"order_id"`
	CompleteTime string `json:"complete_time"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.completed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event completedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("courier", event.CourierID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.completed processing")

	completeTime, err := dto.ParseTime(event.CompleteTime)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Error("order.completed handler bad complete_time")
		sess.MarkMessage(message, "")
		return false
	}

	orderID, err := h.orderService.CompleteOrder(ctx, event.CourierID, event.OrderID, completeTime)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler order is not assigned to courier")

		case errors.Is(err, orderservice.ErrInvalidCourierID),
			errors.Is(err, orderservice.ErrInvalidOrderID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler invalid identifiers in event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler failed to complete order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("completed_order", orderID),
	).Info("order.completed: processed")

	sess.MarkMessage(message, "")
	return false
}
