package loads_post

import (
	"net/http"

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

	var loadDTO dto.LoadCreate
	if err := request.DecodeJSON(r, &loadDTO); err != nil {
		response.Error(w, h.log, err)
		return
	}

	load, err := h.service.CreateLoad(r.Context(), actor.ID, loadDTO.ToModify())
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("load created",
		logger.NewField("load_id", load.ID),
		logger.NewField("shipper_id", actor.ID),
	)
	response.JSON(w, h.log, http.StatusCreated, dto.CreatedResponse{
		Status: "Load created successfully",
		ID:     load.ID.String(),
	})
}
