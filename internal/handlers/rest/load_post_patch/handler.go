package load_post_patch

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

// ServeHTTP публикует груз. Отсутствие подходящей машины - не ошибка,
// клиент получает 200 с "No drivers found", груз остается в NEW.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Status(w, h.log, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	loadID, err := request.PathID(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	assignment, err := h.service.PostLoad(r.Context(), loadID, actor.ID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	switch assignment.Outcome {
	case entities.OutcomeAssigned:
		driverID := assignment.DriverID.String()
		h.log.Info("load assigned",
			logger.NewField("load_id", assignment.LoadID),
			logger.NewField("driver_id", driverID),
			logger.NewField("truck_id", assignment.TruckID.String()),
		)
		response.JSON(w, h.log, http.StatusOK, dto.LoadPostResponse{
			Status:     "Load posted successfully",
			AssignedTo: &driverID,
		})
	default:
		h.log.Info("no truck available", logger.NewField("load_id", assignment.LoadID))
		response.JSON(w, h.log, http.StatusOK, dto.LoadPostResponse{
			Status: "No drivers found",
		})
	}
}
