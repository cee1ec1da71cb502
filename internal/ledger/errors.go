package ledger

import "errors"

var (
	// ErrMissingOperand indicates "+=" or "-=" was used without a digit.
	ErrMissingOperand = errors.New("operand required for += and -=")
	// ErrUnknownOp indicates an operator token outside ++ -- += -=.
	ErrUnknownOp = errors.New("unknown operator")
)
