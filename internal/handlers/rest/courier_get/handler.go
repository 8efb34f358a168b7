package courier_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"candydelivery/internal/dto"
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

	stats, err := h.service.GetCourierStats(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(logger.NewField("error", err)).Error("get courier stats")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CourierStats{
		Courier: dto.Courier{
			CourierID:    stats.ID,
			CourierType:  stats.Type.String(),
			Regions:      stats.Regions,
			WorkingHours: dto.FromWindows(stats.WorkingHours),
		},
		Rating:   stats.Rating,
		Earnings: stats.Earnings,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
