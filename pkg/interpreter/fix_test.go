package interpreter

import (
	"io"
	"testing"

	"lyre/interpreter-go/pkg/ast"
)

// factorialFunc builds f => n => if n = 0 then 1 else n * f(n - 1).
func factorialFunc() ast.Expression {
	return ast.Lam([]string{"f"},
		ast.Lam([]string{"n"},
			ast.If(
				ast.Bin(ast.OpEq, ast.ID("n"), ast.Num(0)),
				ast.Num(1),
				ast.Bin(ast.OpMul, ast.ID("n"),
					ast.Call(ast.ID("f"), ast.Bin(ast.OpSub, ast.ID("n"), ast.Num(1)))))))
}

func TestFixFactorial(t *testing.T) {
	interp := NewWithSay(io.Discard)
	val, err := interp.Evaluate(ast.Call(ast.Fix(factorialFunc()), ast.Num(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNumber(t, val, 120)
}

func TestFixBaseCase(t *testing.T) {
	interp := NewWithSay(io.Discard)
	val, err := interp.Evaluate(ast.Call(ast.Fix(factorialFunc()), ast.Num(0)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNumber(t, val, 1)
}

func TestFixFibonacci(t *testing.T) {
	fib := ast.Lam([]string{"f"},
		ast.Lam([]string{"n"},
			ast.If(
				ast.Un(ast.OpIsZero, ast.ID("n")),
				ast.Num(0),
				ast.If(
					ast.Bin(ast.OpEq, ast.ID("n"), ast.Num(1)),
					ast.Num(1),
					ast.Bin(ast.OpAdd,
						ast.Call(ast.ID("f"), ast.Bin(ast.OpSub, ast.ID("n"), ast.Num(1))),
						ast.Call(ast.ID("f"), ast.Bin(ast.OpSub, ast.ID("n"), ast.Num(2))))))))
	interp := NewWithSay(io.Discard)
	val, err := interp.Evaluate(ast.Call(ast.Fix(fib), ast.Num(10)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNumber(t, val, 55)
}

// Multi-argument recursion must curry: pow = base => exp => ...
func TestFixCurriedPower(t *testing.T) {
	pow := ast.Lam([]string{"f"},
		ast.Lam([]string{"base"},
			ast.Lam([]string{"exp"},
				ast.If(
					ast.Un(ast.OpIsZero, ast.ID("exp")),
					ast.Num(1),
					ast.Bin(ast.OpMul, ast.ID("base"),
						ast.Call(
							ast.Call(ast.ID("f"), ast.ID("base")),
							ast.Bin(ast.OpSub, ast.ID("exp"), ast.Num(1))))))))
	interp := NewWithSay(io.Discard)
	val, err := interp.Evaluate(
		ast.Call(ast.Call(ast.Fix(pow), ast.Num(2)), ast.Num(8)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectNumber(t, val, 256)
}

func TestFixErrorPropagatesFromBody(t *testing.T) {
	// A failing body surfaces the structured error unchanged.
	bad := ast.Lam([]string{"f"},
		ast.Lam([]string{"n"},
			ast.Bin(ast.OpDiv, ast.ID("n"), ast.Num(0))))
	interp := NewWithSay(io.Discard)
	_, err := interp.Evaluate(ast.Call(ast.Fix(bad), ast.Num(1)))
	if err == nil {
		t.Fatalf("expected division failure")
	}
}
