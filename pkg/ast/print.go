package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders an expression in the surface notation the front end
// consumes. The say side channel and CLI diagnostics use this rendering.
func Print(expr Expression) string {
	var b strings.Builder
	printExpression(&b, expr)
	return b.String()
}

func printExpression(b *strings.Builder, expr Expression) {
	switch n := expr.(type) {
	case *Identifier:
		b.WriteString(n.Name)
	case *BooleanLiteral:
		b.WriteString(strconv.FormatBool(n.Value))
	case *NumberLiteral:
		b.WriteString(FormatNumber(n.Value))
	case *StringLiteral:
		b.WriteString(strconv.Quote(n.Value))
	case *BinaryExpression:
		b.WriteByte('(')
		b.WriteString(string(n.Operator))
		b.WriteByte(' ')
		printExpression(b, n.Left)
		b.WriteByte(' ')
		printExpression(b, n.Right)
		b.WriteByte(')')
	case *UnaryExpression:
		b.WriteByte('(')
		b.WriteString(string(n.Operator))
		b.WriteByte(' ')
		printExpression(b, n.Operand)
		b.WriteByte(')')
	case *IfExpression:
		b.WriteString("(if ")
		printExpression(b, n.Condition)
		b.WriteByte(' ')
		printExpression(b, n.Then)
		b.WriteByte(' ')
		printExpression(b, n.Else)
		b.WriteByte(')')
	case *LambdaExpression:
		b.WriteString("(lambda (")
		for idx, param := range n.Params {
			if idx > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(param.Name)
		}
		b.WriteString(") ")
		printExpression(b, n.Body)
		b.WriteByte(')')
	case *CallExpression:
		b.WriteByte('(')
		printExpression(b, n.Callee)
		for _, arg := range n.Arguments {
			b.WriteByte(' ')
			printExpression(b, arg)
		}
		b.WriteByte(')')
	case *LetExpression:
		b.WriteString("(let (")
		for idx, binding := range n.Bindings {
			if idx > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('(')
			b.WriteString(binding.Name.Name)
			b.WriteByte(' ')
			printExpression(b, binding.Value)
			b.WriteByte(')')
		}
		b.WriteString(") ")
		printExpression(b, n.Body)
		b.WriteByte(')')
	case *BeginExpression:
		b.WriteString("(begin")
		for _, e := range n.Exprs {
			b.WriteByte(' ')
			printExpression(b, e)
		}
		b.WriteByte(')')
	case *FixExpression:
		b.WriteString("(fix ")
		printExpression(b, n.Func)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "#<%s>", expr.NodeType())
	}
}

// FormatNumber renders a number without a trailing fractional part when
// the value is integral, matching the surface syntax for numerals.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
