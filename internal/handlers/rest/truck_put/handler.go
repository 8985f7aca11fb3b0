package truck_put

import (
	"net/http"

	"freight/internal/handlers/rest/dto"
	"freight/internal/handlers/rest/request"
	"freight/internal/handlers/rest/response"
	"freight/internal/pkg/middlewares/auth"
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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Status(w, h.log, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	truckID, err := request.PathID(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	var truckDTO dto.TruckUpdate
	if err := request.DecodeJSON(r, &truckDTO); err != nil {
		response.Error(w, h.log, err)
		return
	}

	if _, err := h.service.UpdateTruck(r.Context(), truckID, actor.ID, truckDTO.Name); err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Status(w, h.log, http.StatusOK, "Truck updated successfully")
}
