package load_state_patch

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

	loadID, err := request.PathID(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	transition, err := h.service.AdvanceState(r.Context(), loadID, actor.ID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if transition.AlreadyArrived {
		response.JSON(w, h.log, http.StatusOK, dto.LoadStateResponse{
			Status: "Load is already arrived to delivery",
		})
		return
	}

	state := transition.To.String()
	response.JSON(w, h.log, http.StatusOK, dto.LoadStateResponse{
		Status: "Load status changed successfully",
		State:  &state,
	})
}
