package runtime

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorCodesAndMessages(t *testing.T) {
	cases := []struct {
		err  *EvalError
		code ErrorCode
		want string
	}{
		{NewUnboundVariable("x"), CodeUnboundVariable, "[UnboundVariable] unbound variable 'x'"},
		{NewDivisionByZero(), CodeDivisionByZero, "[DivisionByZero] division by zero"},
		{NewNotCallable("number"), CodeNotCallable, "[NotCallable] cannot call a value of kind number"},
		{NewUnknownOperator("%"), CodeUnknownOperator, "[UnknownOperator] unknown operator '%'"},
		{NewArityMismatch(2, 3), CodeArityMismatch, "[ArityMismatch] function expects 2 arguments, got 3"},
		{NewTypeMismatch("+", "string"), CodeTypeMismatch, "[TypeMismatch] operator '+' requires numbers, got string"},
	}
	for _, tc := range cases {
		if tc.err.Code != tc.code {
			t.Fatalf("expected code %s, got %s", tc.code, tc.err.Code)
		}
		if tc.err.Error() != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, tc.err.Error())
		}
	}
}

func TestAsEvalErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("evaluate program: %w", NewUnboundVariable("x"))
	evalErr, ok := AsEvalError(wrapped)
	if !ok {
		t.Fatalf("expected to unwrap an EvalError")
	}
	if evalErr.Code != CodeUnboundVariable || evalErr.Name != "x" {
		t.Fatalf("unexpected error %#v", evalErr)
	}
}

func TestAsEvalErrorRejectsOtherErrors(t *testing.T) {
	if _, ok := AsEvalError(fmt.Errorf("plain failure")); ok {
		t.Fatalf("plain errors must not unwrap")
	}
	if _, ok := AsEvalError(nil); ok {
		t.Fatalf("nil must not unwrap")
	}
}

func TestEvalErrorNameField(t *testing.T) {
	err := NewUnknownOperator("frobnicate")
	if err.Name != "frobnicate" {
		t.Fatalf("expected offending symbol in Name, got %q", err.Name)
	}
	if !strings.Contains(err.Msg, "frobnicate") {
		t.Fatalf("expected symbol in message, got %q", err.Msg)
	}
}
