package truck_assign_patch

import (
	"net/http"

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

	if err := h.service.AssignTruck(r.Context(), truckID, actor.ID); err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.Status(w, h.log, http.StatusOK, "Truck assigned successfully")
}
