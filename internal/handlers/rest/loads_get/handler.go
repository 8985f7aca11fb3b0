package loads_get

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

// ServeHTTP поддерживает ?status=&limit=&offset=.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		response.Status(w, h.log, http.StatusUnauthorized, response.MsgUnauthorized)
		return
	}

	filter, err := request.LoadFilter(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	loads, err := h.service.GetLoads(r.Context(), actor.ID, filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.LoadsResponse{
		Status: response.MsgSuccess,
		Loads:  dto.FromLoadList(loads),
	})
}
