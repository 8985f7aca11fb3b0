package healthcheck_head

import (
	"net/http"
	"sync/atomic"

	"freight/pkg/logger"
)

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	db             Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, db Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		isShuttingDown: isShuttingDown,
		db:             db,
	}
}

// ServeHTTP отвечает 204, пока сервис принимает запросы и база доступна.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("database is unreachable")
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
