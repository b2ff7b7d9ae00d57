package services

import (
	"fmt"

	"github.com/baharkarakas/expense-tracker/internal/api/validate"
)

const (
	MsgRequired       = "Item name and amount are required"
	MsgAmountPositive = "Amount must be a positive number"
	MsgNameTooLong    = "Item name is too long"
	MsgAmountTooLarge = "Amount is too large"
	MsgNotFound       = "Expense not found"
)

// ValidationError reports client input that failed a required-field or
// numeric-range check. Msg is safe to show to the caller.
type ValidationError struct {
	Msg    string
	Fields validate.Errs
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	return e.Msg + " (" + e.Fields.Error() + ")"
}

// NotFoundError reports that no expense row matches ID.
type NotFoundError struct {
	ID  int64
	Err error
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("expense %d not found", e.ID) }
func (e *NotFoundError) Unwrap() error { return e.Err }
