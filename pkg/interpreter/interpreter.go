package interpreter

import (
	"fmt"
	"io"
	"os"

	"lyre/interpreter-go/pkg/ast"
	"lyre/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of Lyre expression trees. Evaluation is
// single-threaded and purely functional: it never mutates an expression,
// an environment, or a previously produced value, so independent
// expressions may be evaluated from separate goroutines without
// coordination.
type Interpreter struct {
	global *runtime.Environment
	say    io.Writer
}

// New returns an interpreter with an empty root environment whose say
// diagnostics go to stderr.
func New() *Interpreter {
	return NewWithSay(os.Stderr)
}

// NewWithSay returns an interpreter emitting say diagnostics to w.
func NewWithSay(w io.Writer) *Interpreter {
	return &Interpreter{
		global: runtime.NewEnvironment(nil, nil),
		say:    w,
	}
}

// GlobalEnvironment returns the interpreter's root environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Evaluate evaluates an expression in the root environment.
func (i *Interpreter) Evaluate(expr ast.Expression) (runtime.Value, error) {
	return i.EvaluateExpression(expr, i.global)
}

// EvaluateExpression evaluates expr in env, producing either a value or a
// structured *runtime.EvalError. Recursion depth tracks expression
// nesting plus the call chain, bounded only by the host stack; deep
// fix-driven recursion can exhaust it.
func (i *Interpreter) EvaluateExpression(expr ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := expr.(type) {
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.Identifier:
		return env.Get(n.Name)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.IfExpression:
		return i.evaluateIfExpression(n, env)
	case *ast.LambdaExpression:
		return i.evaluateLambdaExpression(n, env)
	case *ast.CallExpression:
		return i.evaluateCallExpression(n, env)
	case *ast.LetExpression:
		return i.evaluateLetExpression(n, env)
	case *ast.BeginExpression:
		return i.evaluateBeginExpression(n, env)
	case *ast.FixExpression:
		return i.EvaluateExpression(rewriteFix(n), env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", expr.NodeType())
	}
}

func (i *Interpreter) evaluateIfExpression(expr *ast.IfExpression, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.EvaluateExpression(expr.Condition, env)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return i.EvaluateExpression(expr.Then, env)
	}
	return i.EvaluateExpression(expr.Else, env)
}

// evaluateLambdaExpression captures the defining environment; the body is
// not evaluated until application.
func (i *Interpreter) evaluateLambdaExpression(expr *ast.LambdaExpression, env *runtime.Environment) (runtime.Value, error) {
	params := make([]string, 0, len(expr.Params))
	for _, p := range expr.Params {
		params = append(params, p.Name)
	}
	return &runtime.ClosureValue{Params: params, Body: expr.Body, Env: env}, nil
}

func (i *Interpreter) evaluateCallExpression(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	calleeVal, err := i.EvaluateExpression(call.Callee, env)
	if err != nil {
		return nil, err
	}
	closure, ok := calleeVal.(*runtime.ClosureValue)
	if !ok {
		return nil, runtime.NewNotCallable(calleeVal.Kind().String())
	}
	args, err := i.evaluateExpressions(call.Arguments, env)
	if err != nil {
		return nil, err
	}
	if len(args) != len(closure.Params) {
		return nil, runtime.NewArityMismatch(len(closure.Params), len(args))
	}
	// A duplicated parameter name binds its rightmost argument.
	bindings := make(map[string]runtime.Value, len(args))
	for idx, param := range closure.Params {
		bindings[param] = args[idx]
	}
	// The body runs in the closure's captured environment, never the
	// caller's.
	frame := closure.Env.Extend(bindings)
	return i.EvaluateExpression(closure.Body, frame)
}

// evaluateLetExpression evaluates every binding in the enclosing scope,
// then extends it once with the accumulated set. Duplicate names resolve
// to the later binding.
func (i *Interpreter) evaluateLetExpression(expr *ast.LetExpression, env *runtime.Environment) (runtime.Value, error) {
	bindings := make(map[string]runtime.Value, len(expr.Bindings))
	for _, binding := range expr.Bindings {
		val, err := i.EvaluateExpression(binding.Value, env)
		if err != nil {
			return nil, err
		}
		bindings[binding.Name.Name] = val
	}
	return i.EvaluateExpression(expr.Body, env.Extend(bindings))
}

// evaluateBeginExpression evaluates each expression in the same frame,
// yielding the last result and stopping on the first failure.
func (i *Interpreter) evaluateBeginExpression(expr *ast.BeginExpression, env *runtime.Environment) (runtime.Value, error) {
	last := len(expr.Exprs) - 1
	for _, e := range expr.Exprs[:last] {
		if _, err := i.EvaluateExpression(e, env); err != nil {
			return nil, err
		}
	}
	return i.EvaluateExpression(expr.Exprs[last], env)
}

// evaluateExpressions evaluates a list of expressions against one
// environment, producing either every value in order or the first error.
func (i *Interpreter) evaluateExpressions(exprs []ast.Expression, env *runtime.Environment) ([]runtime.Value, error) {
	values := make([]runtime.Value, 0, len(exprs))
	for _, e := range exprs {
		val, err := i.EvaluateExpression(e, env)
		if err != nil {
			return nil, err
		}
		values = append(values, val)
	}
	return values, nil
}
