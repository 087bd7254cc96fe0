package ast

import "testing"

func TestNodeTypes(t *testing.T) {
	cases := []struct {
		node Node
		want NodeType
	}{
		{ID("x"), NodeIdentifier},
		{Bool(true), NodeBooleanLiteral},
		{Num(1), NodeNumberLiteral},
		{Str("s"), NodeStringLiteral},
		{Bin(OpAdd, Num(1), Num(2)), NodeBinaryExpression},
		{Un(OpSay, Num(1)), NodeUnaryExpression},
		{If(Bool(true), Num(1), Num(2)), NodeIfExpression},
		{Lam([]string{"x"}, ID("x")), NodeLambdaExpression},
		{Call(ID("f"), Num(1)), NodeCallExpression},
		{Bind("x", Num(1)), NodeLetBinding},
		{Let([]*LetBinding{Bind("x", Num(1))}, ID("x")), NodeLetExpression},
		{Begin(Num(1)), NodeBeginExpression},
		{Fix(ID("f")), NodeFixExpression},
	}
	for _, tc := range cases {
		if got := tc.node.NodeType(); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}
}

func TestEmptyBeginPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero-length begin")
		}
	}()
	NewBeginExpression(nil)
}

func TestLamBuildsIdentifierParams(t *testing.T) {
	lam := Lam([]string{"a", "b"}, ID("a"))
	if len(lam.Params) != 2 || lam.Params[0].Name != "a" || lam.Params[1].Name != "b" {
		t.Fatalf("unexpected params %#v", lam.Params)
	}
}
