package ast

// Compact constructors for building expression trees in hosts and tests.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Bin(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Un(operator UnaryOperator, operand Expression) *UnaryExpression {
	return NewUnaryExpression(operator, operand)
}

func Say(operand Expression) *UnaryExpression {
	return Un(OpSay, operand)
}

func If(condition, then, els Expression) *IfExpression {
	return NewIfExpression(condition, then, els)
}

func Lam(params []string, body Expression) *LambdaExpression {
	ids := make([]*Identifier, 0, len(params))
	for _, p := range params {
		ids = append(ids, ID(p))
	}
	return NewLambdaExpression(ids, body)
}

func Call(callee Expression, args ...Expression) *CallExpression {
	return NewCallExpression(callee, args)
}

func Bind(name string, value Expression) *LetBinding {
	return NewLetBinding(ID(name), value)
}

func Let(bindings []*LetBinding, body Expression) *LetExpression {
	return NewLetExpression(bindings, body)
}

func Begin(exprs ...Expression) *BeginExpression {
	return NewBeginExpression(exprs)
}

func Fix(fn Expression) *FixExpression {
	return NewFixExpression(fn)
}
