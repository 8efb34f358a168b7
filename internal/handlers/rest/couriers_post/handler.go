package couriers_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"candydelivery/internal/dto"
	"candydelivery/internal/entities"
	"candydelivery/internal/pkg/validate"
	"candydelivery/internal/service/courier"
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

	var request dto.CreateCouriersRequest
	if err := decoder.Decode(&request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(request.Data) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	couriers := make([]entities.Courier, 0, len(request.Data))
	badIDs := make([]dto.CourierIDItem, 0)
	for _, item := range request.Data {
		if err := validate.Get().Struct(item); err != nil {
			badIDs = append(badIDs, dto.CourierIDItem{ID: item.CourierID})
			continue
		}

		windows, err := dto.ToWindows(item.WorkingHours)
		if err != nil {
			badIDs = append(badIDs, dto.CourierIDItem{ID: item.CourierID})
			continue
		}

		couriers = append(couriers, entities.Courier{
			ID:           item.CourierID,
			Type:         entities.CourierType(item.CourierType),
			Regions:      item.Regions,
			WorkingHours: windows,
		})
	}

	// один невалидный элемент отклоняет всю пачку
	if len(badIDs) > 0 {
		h.writeJSON(w, http.StatusBadRequest, dto.ValidationErrorResponse{
			ValidationError: dto.ValidationError{Couriers: badIDs},
		})
		return
	}

	ids, err := h.service.RegisterCouriers(r.Context(), couriers)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrNoCouriers),
			errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCourierType),
			errors.Is(err, courier.ErrInvalidRegions),
			errors.Is(err, courier.ErrInvalidWorkingHours):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			h.log.With(logger.NewField("error", err)).Error("register couriers")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CreateCouriersResponse{
		Couriers: make([]dto.CourierIDItem, len(ids)),
	}
	for i, id := range ids {
		response.Couriers[i] = dto.CourierIDItem{ID: id}
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
