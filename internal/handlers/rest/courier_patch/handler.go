package courier_patch

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	// пустое тело эквивалентно пустому обновлению
	var request dto.UpdateCourierRequest
	if err := decoder.Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := validate.Get().Struct(request); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModify := entities.CourierModify{
		ID:      id,
		Regions: request.Regions,
	}
	if request.CourierType != nil {
		courierType := entities.CourierType(*request.CourierType)
		courierModify.Type = &courierType
	}
	if len(request.WorkingHours) > 0 {
		windows, err := dto.ToWindows(request.WorkingHours)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		courierModify.WorkingHours = windows
	}

	updated, err := h.service.UpdateCourier(r.Context(), courierModify)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCourierType),
			errors.Is(err, courier.ErrInvalidRegions),
			errors.Is(err, courier.ErrInvalidWorkingHours):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(logger.NewField("error", err)).Error("update courier")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Courier{
		CourierID:    updated.ID,
		CourierType:  updated.Type.String(),
		Regions:      updated.Regions,
		WorkingHours: dto.FromWindows(updated.WorkingHours),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
