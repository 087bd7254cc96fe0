package interpreter

import (
	"fmt"

	"lyre/interpreter-go/pkg/ast"
	"lyre/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.EvaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.EvaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv:
		return applyArithmetic(expr.Operator, left, right)
	case ast.OpEq:
		return runtime.BoolValue{Val: runtime.Equals(left, right)}, nil
	default:
		return nil, runtime.NewUnknownOperator(string(expr.Operator))
	}
}

func applyArithmetic(op ast.BinaryOperator, left, right runtime.Value) (runtime.Value, error) {
	ln, ok := left.(runtime.NumberValue)
	if !ok {
		return nil, runtime.NewTypeMismatch(string(op), left.Kind().String())
	}
	rn, ok := right.(runtime.NumberValue)
	if !ok {
		return nil, runtime.NewTypeMismatch(string(op), right.Kind().String())
	}
	switch op {
	case ast.OpAdd:
		return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
	case ast.OpSub:
		return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
	case ast.OpMul:
		return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
	case ast.OpDiv:
		if rn.Val == 0 {
			return nil, runtime.NewDivisionByZero()
		}
		return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
	default:
		return nil, runtime.NewUnknownOperator(string(op))
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	switch expr.Operator {
	case ast.OpNot:
		operand, err := i.EvaluateExpression(expr.Operand, env)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: !isTruthy(operand)}, nil
	case ast.OpIsZero:
		operand, err := i.EvaluateExpression(expr.Operand, env)
		if err != nil {
			return nil, err
		}
		num, ok := operand.(runtime.NumberValue)
		return runtime.BoolValue{Val: ok && num.Val == 0}, nil
	case ast.OpSay:
		// say is a debugging hook: the operand is emitted and returned
		// unevaluated.
		if i.say != nil {
			fmt.Fprintln(i.say, ast.Print(expr.Operand))
		}
		return runtime.QuotedValue{Expr: expr.Operand}, nil
	default:
		return nil, runtime.NewUnknownOperator(string(expr.Operator))
	}
}

// isTruthy: only boolean true selects the then branch; every other value
// is treated as false context.
func isTruthy(v runtime.Value) bool {
	b, ok := v.(runtime.BoolValue)
	return ok && b.Val
}
