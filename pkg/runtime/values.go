package runtime

import (
	"fmt"

	"lyre/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindBool Kind = iota
	KindNumber
	KindString
	KindClosure
	KindQuoted
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindClosure:
		return "closure"
	case KindQuoted:
		return "quoted"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// NumberValue holds both integer and floating-point numbers; the language
// has a single numeric type.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

//-----------------------------------------------------------------------------
// Closures
//-----------------------------------------------------------------------------

// ClosureValue pairs a parameter list with a body expression and the
// environment that was current when the lambda was evaluated. The body is
// shared with the originating tree, never copied, and the closure is never
// mutated after creation.
type ClosureValue struct {
	Params []string
	Body   ast.Expression
	Env    *Environment
}

func (v *ClosureValue) Kind() Kind { return KindClosure }

//-----------------------------------------------------------------------------
// Quoted expressions
//-----------------------------------------------------------------------------

// QuotedValue carries an unevaluated expression. Only the say form
// produces it: say surfaces its operand expression as both the side-channel
// payload and its own result.
type QuotedValue struct {
	Expr ast.Expression
}

func (v QuotedValue) Kind() Kind { return KindQuoted }

//-----------------------------------------------------------------------------
// Helpers
//-----------------------------------------------------------------------------

// Equals reports value equality. Comparing values of different kinds is
// false, never an error; closures compare by identity.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av.Val == bv.Val
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Val == bv.Val
	case *ClosureValue:
		bv, ok := b.(*ClosureValue)
		return ok && av == bv
	case QuotedValue:
		bv, ok := b.(QuotedValue)
		return ok && av.Expr == bv.Expr
	default:
		return false
	}
}

// Render produces the human-readable form of a value for hosts and REPLs.
func Render(v Value) string {
	switch val := v.(type) {
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case NumberValue:
		return ast.FormatNumber(val.Val)
	case StringValue:
		return val.Val
	case *ClosureValue:
		return fmt.Sprintf("#<closure/%d>", len(val.Params))
	case QuotedValue:
		return ast.Print(val.Expr)
	default:
		return fmt.Sprintf("#<%s>", v.Kind())
	}
}
