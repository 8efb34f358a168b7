package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"candydelivery/internal/dto"
	"candydelivery/internal/entities"
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

	var request dto.CreateOrdersRequest
	if err := decoder.Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(request.Data) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orders := make([]entities.Order, 0, len(request.Data))
	badIDs := make([]dto.OrderIDItem, 0)
	for _, item := range request.Data {
		if err := validate.Get().Struct(item); err != nil {
			badIDs = append(badIDs, dto.OrderIDItem{ID: item.OrderID})
			continue
		}

		windows, err := dto.ToWindows(item.DeliveryHours)
		if err != nil {
			badIDs = append(badIDs, dto.OrderIDItem{ID: item.OrderID})
			continue
		}

		orders = append(orders, entities.Order{
			ID:            item.OrderID,
			Weight:        item.Weight,
			Region:        item.Region,
			DeliveryHours: windows,
		})
	}

	// один невалидный элемент отклоняет всю пачку
	if len(badIDs) > 0 {
		h.writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
			ValidationError: dto.ValidationError{Orders: badIDs},
		})
		return
	}

	ids, err := h.service.RegisterOrders(r.Context(), orders)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNoOrders),
			errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidWeight),
			errors.Is(err, order.ErrInvalidRegion),
			errors.Is(err, order.ErrInvalidDeliveryHours):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(logger.NewField("error", err)).Error("register orders")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateOrdersResponse{
		Orders: make([]dto.OrderIDItem, len(ids)),
	}
	for i, id := range ids {
		response.Orders[i] = dto.OrderIDItem{ID: id}
	}

	h.writeJSON(w, http.StatusCreated, response)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
