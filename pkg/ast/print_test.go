package ast

import "testing"

func TestPrintRendersSurfaceNotation(t *testing.T) {
	cases := []struct {
		expr Expression
		want string
	}{
		{ID("x"), "x"},
		{Num(42), "42"},
		{Num(2.5), "2.5"},
		{Bool(false), "false"},
		{Str("hi"), `"hi"`},
		{Bin(OpAdd, Num(1), Num(2)), "(+ 1 2)"},
		{Un(OpIsZero, ID("n")), "(zero? n)"},
		{Un(OpSay, Str("dbg")), `(say "dbg")`},
		{If(Bool(true), Num(1), Num(2)), "(if true 1 2)"},
		{Lam([]string{"a", "b"}, ID("a")), "(lambda (a b) a)"},
		{Lam(nil, Num(1)), "(lambda () 1)"},
		{Call(ID("f"), Num(1), Num(2)), "(f 1 2)"},
		{Call(ID("thunk")), "(thunk)"},
		{
			Let([]*LetBinding{Bind("x", Num(1)), Bind("y", Num(2))}, ID("x")),
			"(let ((x 1) (y 2)) x)",
		},
		{Begin(Num(1), Num(2)), "(begin 1 2)"},
		{Fix(ID("f")), "(fix f)"},
	}
	for _, tc := range cases {
		if got := Print(tc.expr); got != tc.want {
			t.Fatalf("Print = %q, want %q", got, tc.want)
		}
	}
}

func TestPrintNestedProgram(t *testing.T) {
	expr := Let(
		[]*LetBinding{Bind("fact", Fix(Lam([]string{"f"},
			Lam([]string{"n"},
				If(Bin(OpEq, ID("n"), Num(0)),
					Num(1),
					Bin(OpMul, ID("n"), Call(ID("f"), Bin(OpSub, ID("n"), Num(1)))))))))},
		Call(ID("fact"), Num(5)))
	want := "(let ((fact (fix (lambda (f) (lambda (n) (if (= n 0) 1 (* n (f (- n 1))))))))) (fact 5))"
	if got := Print(expr); got != want {
		t.Fatalf("Print = %q, want %q", got, want)
	}
}
