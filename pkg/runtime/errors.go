package runtime

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes an evaluation failure.
type ErrorCode string

const (
	CodeUnboundVariable ErrorCode = "UnboundVariable"
	CodeDivisionByZero  ErrorCode = "DivisionByZero"
	CodeNotCallable     ErrorCode = "NotCallable"
	CodeUnknownOperator ErrorCode = "UnknownOperator"
	CodeArityMismatch   ErrorCode = "ArityMismatch"
	CodeTypeMismatch    ErrorCode = "TypeMismatch"
)

// EvalError is the structured failure every evaluation path may return.
// Composite forms short-circuit on the first failing sub-evaluation and
// propagate it unchanged; nothing catches an EvalError implicitly.
type EvalError struct {
	Code ErrorCode
	// Name holds the offending identifier or operator symbol, when one
	// is relevant to the failure.
	Name string
	Msg  string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// NewUnboundVariable reports a lookup that failed at the environment root.
func NewUnboundVariable(name string) *EvalError {
	return &EvalError{
		Code: CodeUnboundVariable,
		Name: name,
		Msg:  fmt.Sprintf("unbound variable '%s'", name),
	}
}

// NewDivisionByZero reports a division whose right operand is zero.
func NewDivisionByZero() *EvalError {
	return &EvalError{Code: CodeDivisionByZero, Msg: "division by zero"}
}

// NewNotCallable reports an application whose callee is not a closure.
func NewNotCallable(kind string) *EvalError {
	return &EvalError{
		Code: CodeNotCallable,
		Msg:  fmt.Sprintf("cannot call a value of kind %s", kind),
	}
}

// NewUnknownOperator reports an operator tag outside the recognized sets;
// it indicates a malformed tree from the producer.
func NewUnknownOperator(symbol string) *EvalError {
	return &EvalError{
		Code: CodeUnknownOperator,
		Name: symbol,
		Msg:  fmt.Sprintf("unknown operator '%s'", symbol),
	}
}

// NewArityMismatch reports an application whose argument count differs
// from the closure's parameter count. Arguments are never silently
// truncated.
func NewArityMismatch(want, got int) *EvalError {
	return &EvalError{
		Code: CodeArityMismatch,
		Msg:  fmt.Sprintf("function expects %d arguments, got %d", want, got),
	}
}

// NewTypeMismatch reports an operand of the wrong kind reaching an
// arithmetic operator.
func NewTypeMismatch(operator, kind string) *EvalError {
	return &EvalError{
		Code: CodeTypeMismatch,
		Name: operator,
		Msg:  fmt.Sprintf("operator '%s' requires numbers, got %s", operator, kind),
	}
}

// AsEvalError unwraps err into an EvalError when possible.
func AsEvalError(err error) (*EvalError, bool) {
	var evalErr *EvalError
	if errors.As(err, &evalErr) {
		return evalErr, true
	}
	return nil, false
}
