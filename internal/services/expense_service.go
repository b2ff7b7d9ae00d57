package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/baharkarakas/expense-tracker/internal/api/validate"
	"github.com/baharkarakas/expense-tracker/internal/metrics"
	"github.com/baharkarakas/expense-tracker/internal/models"
	repo "github.com/baharkarakas/expense-tracker/internal/repository"
)

// ExpenseParams is the raw create/update input. Amount is kept as text so
// that JSON numbers, numeric strings and form values share one parser.
type ExpenseParams struct {
	ItemName string
	Amount   string
}

type ExpenseService struct{ r repo.Expenses }

func NewExpenseService(r repo.Expenses) *ExpenseService { return &ExpenseService{r: r} }

// ----------------- Helpers -----------------

func observe(op string, err error) {
	result := "ok"
	var ve *ValidationError
	switch {
	case err == nil:
	case errors.As(err, &ve):
		result = "invalid"
	case errors.Is(err, repo.ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.ExpenseOperations.WithLabelValues(op, result).Inc()
}

func notFound(id int64, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return &NotFoundError{ID: id, Err: err}
	}
	return err
}

// Normalize validates p and returns the trimmed, rounded input.
func (p ExpenseParams) Normalize() (models.ExpenseInput, error) {
	name := strings.TrimSpace(p.ItemName)

	if errs := validate.Collect(
		validate.Required("item_name", name),
		validate.Required("amount", p.Amount),
	); len(errs) > 0 {
		return models.ExpenseInput{}, &ValidationError{Msg: MsgRequired, Fields: errs}
	}

	amount, err := models.ParseAmount(p.Amount)
	switch {
	case errors.Is(err, models.ErrAmountTooLarge):
		return models.ExpenseInput{}, &ValidationError{Msg: MsgAmountTooLarge, Fields: validate.Errs{{Field: "amount", Msg: "must be <= " + models.MaxAmount.String()}}}
	case err != nil:
		return models.ExpenseInput{}, &ValidationError{Msg: MsgAmountPositive, Fields: validate.Errs{{Field: "amount", Msg: "must be a number"}}}
	}
	if ferr := validate.Positive("amount", amount.Decimal); ferr != nil {
		return models.ExpenseInput{}, &ValidationError{Msg: MsgAmountPositive, Fields: validate.Errs{*ferr}}
	}
	if ferr := validate.MaxDecimal("amount", amount.Decimal, models.MaxAmount); ferr != nil {
		return models.ExpenseInput{}, &ValidationError{Msg: MsgAmountTooLarge, Fields: validate.Errs{*ferr}}
	}
	if ferr := validate.MaxLen("item_name", name, models.MaxItemNameLen); ferr != nil {
		return models.ExpenseInput{}, &ValidationError{Msg: MsgNameTooLong, Fields: validate.Errs{*ferr}}
	}

	return models.ExpenseInput{ItemName: name, Amount: amount}, nil
}

// ----------------- Operations -----------------

func (s *ExpenseService) List(ctx context.Context) (out []models.Expense, err error) {
	defer func() { observe("list", err) }()
	out, err = s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return out, nil
}

func (s *ExpenseService) Create(ctx context.Context, p ExpenseParams) (e models.Expense, err error) {
	defer func() { observe("create", err) }()
	in, err := p.Normalize()
	if err != nil {
		return models.Expense{}, err
	}
	return s.r.Create(ctx, in)
}

// Update validates the body before looking up id, so a bad body on an
// unknown id reports the validation error.
func (s *ExpenseService) Update(ctx context.Context, id int64, p ExpenseParams) (e models.Expense, err error) {
	defer func() { observe("update", err) }()
	in, err := p.Normalize()
	if err != nil {
		return models.Expense{}, err
	}
	e, err = s.r.Update(ctx, id, in)
	if err != nil {
		return models.Expense{}, notFound(id, err)
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) (err error) {
	defer func() { observe("delete", err) }()
	return notFound(id, s.r.Delete(ctx, id))
}

// Ping reports whether the backing store is reachable.
func (s *ExpenseService) Ping(ctx context.Context) error { return s.r.Ping(ctx) }
