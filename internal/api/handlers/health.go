package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/baharkarakas/expense-tracker/internal/api/httpx"
)

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health is a static liveness probe; it never touches the store.
func Health(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, healthResp{Status: "OK", Message: "Expense Tracker API is running"})
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Ready reports 503 while the store cannot be reached.
func Ready(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, healthResp{Status: "UNAVAILABLE", Message: "Database is unreachable"})
			return
		}
		httpx.WriteJSON(w, http.StatusOK, healthResp{Status: "OK", Message: "Database is reachable"})
	}
}
