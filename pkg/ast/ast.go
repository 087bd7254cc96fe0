package ast

type NodeType string

const (
	NodeIdentifier       NodeType = "Identifier"
	NodeBooleanLiteral   NodeType = "BooleanLiteral"
	NodeNumberLiteral    NodeType = "NumberLiteral"
	NodeStringLiteral    NodeType = "StringLiteral"
	NodeBinaryExpression NodeType = "BinaryExpression"
	NodeUnaryExpression  NodeType = "UnaryExpression"
	NodeIfExpression     NodeType = "IfExpression"
	NodeLambdaExpression NodeType = "LambdaExpression"
	NodeCallExpression   NodeType = "CallExpression"
	NodeLetBinding       NodeType = "LetBinding"
	NodeLetExpression    NodeType = "LetExpression"
	NodeBeginExpression  NodeType = "BeginExpression"
	NodeFixExpression    NodeType = "FixExpression"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Expression is the closed set of evaluable forms. Trees are immutable
// once constructed; evaluation never rewrites a node in place.
type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Operators

type BinaryOperator string

const (
	OpAdd BinaryOperator = "+"
	OpSub BinaryOperator = "-"
	OpMul BinaryOperator = "*"
	OpDiv BinaryOperator = "/"
	OpEq  BinaryOperator = "="
)

type UnaryOperator string

const (
	OpNot    UnaryOperator = "not"
	OpIsZero UnaryOperator = "zero?"
	OpSay    UnaryOperator = "say"
)

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// NumberLiteral covers both integer and floating-point literals; the
// front end does not distinguish them.
type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

// Operator applications

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

// IfExpression always carries exactly three sub-expressions.
type IfExpression struct {
	nodeImpl
	expressionMarker

	Condition Expression `json:"condition"`
	Then      Expression `json:"then"`
	Else      Expression `json:"else"`
}

func NewIfExpression(condition, then, els Expression) *IfExpression {
	return &IfExpression{nodeImpl: newNodeImpl(NodeIfExpression), Condition: condition, Then: then, Else: els}
}

// Functions

type LambdaExpression struct {
	nodeImpl
	expressionMarker

	Params []*Identifier `json:"params"`
	Body   Expression    `json:"body"`
}

func NewLambdaExpression(params []*Identifier, body Expression) *LambdaExpression {
	return &LambdaExpression{nodeImpl: newNodeImpl(NodeLambdaExpression), Params: params, Body: body}
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee Expression, arguments []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: arguments}
}

// Local binding

type LetBinding struct {
	nodeImpl

	Name  *Identifier `json:"name"`
	Value Expression  `json:"value"`
}

func NewLetBinding(name *Identifier, value Expression) *LetBinding {
	return &LetBinding{nodeImpl: newNodeImpl(NodeLetBinding), Name: name, Value: value}
}

// LetExpression binds in parallel: every binding value is evaluated in
// the enclosing scope, so bindings never see each other or themselves.
type LetExpression struct {
	nodeImpl
	expressionMarker

	Bindings []*LetBinding `json:"bindings"`
	Body     Expression    `json:"body"`
}

func NewLetExpression(bindings []*LetBinding, body Expression) *LetExpression {
	return &LetExpression{nodeImpl: newNodeImpl(NodeLetExpression), Bindings: bindings, Body: body}
}

// Sequencing

type BeginExpression struct {
	nodeImpl
	expressionMarker

	Exprs []Expression `json:"exprs"`
}

// NewBeginExpression panics on an empty sequence: producing a zero-length
// begin is a construction-time error, not a runtime condition.
func NewBeginExpression(exprs []Expression) *BeginExpression {
	if len(exprs) == 0 {
		panic("ast: begin requires at least one expression")
	}
	return &BeginExpression{nodeImpl: newNodeImpl(NodeBeginExpression), Exprs: exprs}
}

// Recursion

// FixExpression is the language's only recursion primitive: fix(f)
// behaves as a value g such that g(n) == f(g)(n) for every n.
type FixExpression struct {
	nodeImpl
	expressionMarker

	Func Expression `json:"func"`
}

func NewFixExpression(fn Expression) *FixExpression {
	return &FixExpression{nodeImpl: newNodeImpl(NodeFixExpression), Func: fn}
}
