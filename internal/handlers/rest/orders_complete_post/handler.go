package orders_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"candydelivery/internal/dto"
	"candydelivery/internal/pkg/validate"
	"candydelivery/internal/service/order"
	"candydelivery/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var request dto.CompleteOrderRequest
	if err := decoder.Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Get().Struct(request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	completeTime, err := dto.ParseTime(request.CompleteTime)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderID, err := h.service.CompleteOrder(r.Context(), request.CourierID, request.OrderID, completeTime)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidCourierID),
			errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(logger.NewField("error", err)).Error("complete order")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CompleteOrderResponse{OrderID: orderID}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
