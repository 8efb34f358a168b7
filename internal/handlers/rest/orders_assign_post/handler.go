package orders_assign_post

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

	var request dto.AssignOrdersRequest
	if err := decoder.Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := validate.Get().Struct(request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignment, err := h.service.AssignOrders(r.Context(), request.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(logger.NewField("error", err)).Error("assign orders")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AssignOrdersResponse{
		Orders: make([]dto.OrderIDItem, len(assignment.OrderIDs)),
	}
	for i, id := range assignment.OrderIDs {
		response.Orders[i] = dto.OrderIDItem{ID: id}
	}
	if assignment.AssignedAt != nil {
		assignTime := dto.FormatTime(*assignment.AssignedAt)
		response.AssignTime = &assignTime
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
