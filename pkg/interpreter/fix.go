package interpreter

import "lyre/interpreter-go/pkg/ast"

// rewriteFix expands fix(f) into an application of the applicative-order
// fixed-point combinator
//
//	Z = lambda f. (lambda x. f (lambda v. ((x x) v)))
//	               (lambda x. f (lambda v. ((x x) v)))
//
// expressed over the ordinary expression forms, so recursion needs no
// mutable bindings. Only unary recursion is direct; multi-argument
// recursive functions curry.
func rewriteFix(expr *ast.FixExpression) ast.Expression {
	wrap := ast.Lam([]string{"x"},
		ast.Call(ast.ID("f"),
			ast.Lam([]string{"v"},
				ast.Call(ast.Call(ast.ID("x"), ast.ID("x")), ast.ID("v")))))
	combinator := ast.Lam([]string{"f"}, ast.Call(wrap, wrap))
	return ast.Call(combinator, expr.Func)
}
