package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"drmind/internal/usecases"
)

// AITestHandler is a diagnostic endpoint that round-trips the chat
// client without touching the journal.
type AITestHandler struct {
	client usecases.Completer
	log    *zap.SugaredLogger
}

func NewAITestHandler(client usecases.Completer, log *zap.SugaredLogger) *AITestHandler {
	return &AITestHandler{client: client, log: log}
}

func (th *AITestHandler) HandleAITest(w http.ResponseWriter, r *http.Request) {
	op := "handlers.HandleAITest"

	reply, err := th.client.Complete(r.Context(), "Say hello from Dr. Mind!")

	w.Header().Set("Content-Type", "application/json")

	if err != nil {
		th.log.Warnw("AI test failed", "op", op, "error", err)
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "error",
			"error":  err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"reply":  reply,
	})
}
