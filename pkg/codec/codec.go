// Package codec (de)serializes Lyre expression trees. The external front
// end hands programs to the evaluator as JSON documents whose objects
// carry a "type" discriminator matching the ast node names; arity and
// field order of every variant are preserved exactly.
package codec

import (
	"encoding/json"
	"fmt"

	"lyre/interpreter-go/pkg/ast"
)

// Decode parses a JSON document into an expression tree.
func Decode(data []byte) (ast.Expression, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	return decodeExpression(raw)
}

// Encode renders an expression tree as a JSON document Decode accepts.
func Encode(expr ast.Expression) ([]byte, error) {
	return json.Marshal(expr)
}

func decodeExpression(node map[string]any) (ast.Expression, error) {
	typ, _ := node["type"].(string)
	switch ast.NodeType(typ) {
	case ast.NodeIdentifier:
		name, ok := node["name"].(string)
		if !ok {
			return nil, fmt.Errorf("codec: identifier requires a name")
		}
		return ast.NewIdentifier(name), nil
	case ast.NodeBooleanLiteral:
		val, ok := node["value"].(bool)
		if !ok {
			return nil, fmt.Errorf("codec: boolean literal requires a bool value")
		}
		return ast.NewBooleanLiteral(val), nil
	case ast.NodeNumberLiteral:
		val, ok := node["value"].(float64)
		if !ok {
			return nil, fmt.Errorf("codec: number literal requires a numeric value")
		}
		return ast.NewNumberLiteral(val), nil
	case ast.NodeStringLiteral:
		val, ok := node["value"].(string)
		if !ok {
			return nil, fmt.Errorf("codec: string literal requires a string value")
		}
		return ast.NewStringLiteral(val), nil
	case ast.NodeBinaryExpression:
		operator, _ := node["operator"].(string)
		left, err := decodeChild(node, "left", typ)
		if err != nil {
			return nil, err
		}
		right, err := decodeChild(node, "right", typ)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(ast.BinaryOperator(operator), left, right), nil
	case ast.NodeUnaryExpression:
		operator, _ := node["operator"].(string)
		operand, err := decodeChild(node, "operand", typ)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.UnaryOperator(operator), operand), nil
	case ast.NodeIfExpression:
		condition, err := decodeChild(node, "condition", typ)
		if err != nil {
			return nil, err
		}
		then, err := decodeChild(node, "then", typ)
		if err != nil {
			return nil, err
		}
		els, err := decodeChild(node, "else", typ)
		if err != nil {
			return nil, err
		}
		return ast.NewIfExpression(condition, then, els), nil
	case ast.NodeLambdaExpression:
		paramsVal, _ := node["params"].([]any)
		params := make([]*ast.Identifier, 0, len(paramsVal))
		for _, raw := range paramsVal {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("codec: invalid lambda parameter %T", raw)
			}
			decoded, err := decodeExpression(child)
			if err != nil {
				return nil, err
			}
			id, ok := decoded.(*ast.Identifier)
			if !ok {
				return nil, fmt.Errorf("codec: lambda parameter must be an identifier, got %s", decoded.NodeType())
			}
			params = append(params, id)
		}
		body, err := decodeChild(node, "body", typ)
		if err != nil {
			return nil, err
		}
		return ast.NewLambdaExpression(params, body), nil
	case ast.NodeCallExpression:
		callee, err := decodeChild(node, "callee", typ)
		if err != nil {
			return nil, err
		}
		argsVal, _ := node["arguments"].([]any)
		args := make([]ast.Expression, 0, len(argsVal))
		for _, raw := range argsVal {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("codec: invalid call argument %T", raw)
			}
			arg, err := decodeExpression(child)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return ast.NewCallExpression(callee, args), nil
	case ast.NodeLetExpression:
		bindingsVal, _ := node["bindings"].([]any)
		bindings := make([]*ast.LetBinding, 0, len(bindingsVal))
		for _, raw := range bindingsVal {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("codec: invalid let binding %T", raw)
			}
			binding, err := decodeLetBinding(child)
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, binding)
		}
		body, err := decodeChild(node, "body", typ)
		if err != nil {
			return nil, err
		}
		return ast.NewLetExpression(bindings, body), nil
	case ast.NodeBeginExpression:
		exprsVal, _ := node["exprs"].([]any)
		if len(exprsVal) == 0 {
			return nil, fmt.Errorf("codec: begin requires at least one expression")
		}
		exprs := make([]ast.Expression, 0, len(exprsVal))
		for _, raw := range exprsVal {
			child, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("codec: invalid begin entry %T", raw)
			}
			expr, err := decodeExpression(child)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		}
		return ast.NewBeginExpression(exprs), nil
	case ast.NodeFixExpression:
		fn, err := decodeChild(node, "func", typ)
		if err != nil {
			return nil, err
		}
		return ast.NewFixExpression(fn), nil
	default:
		return nil, fmt.Errorf("codec: unknown node type %q", typ)
	}
}

func decodeLetBinding(node map[string]any) (*ast.LetBinding, error) {
	nameVal, ok := node["name"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("codec: let binding requires a name")
	}
	decoded, err := decodeExpression(nameVal)
	if err != nil {
		return nil, err
	}
	id, ok := decoded.(*ast.Identifier)
	if !ok {
		return nil, fmt.Errorf("codec: let binding name must be an identifier, got %s", decoded.NodeType())
	}
	value, err := decodeChild(node, "value", string(ast.NodeLetBinding))
	if err != nil {
		return nil, err
	}
	return ast.NewLetBinding(id, value), nil
}

func decodeChild(node map[string]any, field, parent string) (ast.Expression, error) {
	raw, ok := node[field].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("codec: %s requires field %q", parent, field)
	}
	return decodeExpression(raw)
}
