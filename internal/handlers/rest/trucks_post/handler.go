package trucks_post

import (
	"net/http"

	"freight/internal/entities"
	"freight/internal/handlers/rest/dto"
	"freight/internal/handlers/rest/request"
	"freight/internal/handlers/rest/response"
	"freight/internal/pkg/middlewares/auth"
	"freight/pkg/logger"
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

	var truckDTO dto.TruckCreate
	if err := request.DecodeJSON(r, &truckDTO); err != nil {
		response.Error(w, h.log, err)
		return
	}

	truck, err := h.service.CreateTruck(r.Context(), actor.ID, truckDTO.Name, entities.TruckType(truckDTO.Type))
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("truck created",
		logger.NewField("truck_id", truck.ID),
		logger.NewField("driver_id", actor.ID),
	)
	response.JSON(w, h.log, http.StatusCreated, dto.CreatedResponse{
		Status: "Truck created successfully",
		ID:     truck.ID.String(),
	})
}
