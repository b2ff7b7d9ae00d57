package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/baharkarakas/expense-tracker/internal/api/httpx"
	"github.com/baharkarakas/expense-tracker/internal/middleware"
	"github.com/baharkarakas/expense-tracker/internal/services"
)

type ExpenseHandler struct {
	Svc *services.ExpenseService
}

func NewExpenseHandler(svc *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Svc: svc}
}

type expenseReq struct {
	ItemName string          `json:"item_name"`
	Amount   json.RawMessage `json:"amount"`
}

type messageResp struct {
	Message string `json:"message"`
}

// params turns the body into service input. amount may arrive as a JSON
// number or a numeric string; null or absent means missing.
func (b expenseReq) params() services.ExpenseParams {
	return services.ExpenseParams{ItemName: b.ItemName, Amount: rawText(b.Amount)}
}

func rawText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return s
}

// expenseID parses the {id} URL param. Anything that is not a positive
// integer cannot name a row, so it is reported as not found.
func expenseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *ExpenseHandler) writeErr(w http.ResponseWriter, r *http.Request, err error, failMsg string) {
	var ve *services.ValidationError
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &ve):
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation, ve.Msg, ve.Fields)
	case errors.As(err, &nf):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, services.MsgNotFound, nil)
	default:
		slog.ErrorContext(r.Context(), failMsg,
			"err", err,
			"request_id", middleware.RequestIDFrom(r.Context()),
		)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, failMsg, nil)
	}
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		h.writeErr(w, r, err, "Failed to fetch expenses")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, list)
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid request body", nil)
		return
	}
	e, err := h.Svc.Create(r.Context(), req.params())
	if err != nil {
		h.writeErr(w, r, err, "Failed to create expense")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, e)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req expenseReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeBadRequest, "Invalid request body", nil)
		return
	}
	p := req.params()
	id, ok := expenseID(r)
	if !ok {
		// keep validation ahead of lookup, as for a well-formed id
		if _, err := p.Normalize(); err != nil {
			h.writeErr(w, r, err, "Failed to update expense")
			return
		}
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, services.MsgNotFound, nil)
		return
	}
	e, err := h.Svc.Update(r.Context(), id, p)
	if err != nil {
		h.writeErr(w, r, err, "Failed to update expense")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, e)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := expenseID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound, services.MsgNotFound, nil)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		h.writeErr(w, r, err, "Failed to delete expense")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, messageResp{Message: "Expense deleted successfully"})
}
