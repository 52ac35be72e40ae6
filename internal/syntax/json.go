package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

type object = map[string]interface{}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return object{
			"type": "Program",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
			"body": toJSON(n.Body),
		}

	case *VarDecl:
		m := object{
			"type":    "VarDecl",
			"pos":     n.pos.String(),
			"names":   mapSlice(n.Names, func(x *Name) interface{} { return x.Value }),
			"vartype": n.Type.Name,
		}
		if n.Value != nil {
			m["value"] = toJSON(n.Value)
		}
		return m

	case *FuncDecl:
		m := object{
			"type": "FuncDecl",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
			"params": mapSlice(n.Params, func(prm *Param) interface{} {
				return object{"name": prm.Name.Value, "paramtype": prm.Type.Name}
			}),
			"body": toJSON(n.Body),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *Block:
		return object{
			"type":  "Block",
			"pos":   n.pos.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) }),
		}

	case *IfStmt:
		m := object{
			"type": "IfStmt",
			"pos":  n.pos.String(),
			"clauses": mapSlice(n.Clauses, func(c *CondClause) interface{} {
				return object{"cond": toJSON(c.Cond), "body": toJSON(c.Body)}
			}),
		}
		if n.Else != nil {
			m["else"] = toJSON(n.Else)
		}
		return m

	case *ForStmt:
		return object{
			"type": "ForStmt",
			"pos":  n.pos.String(),
			"init": toJSON(n.Init),
			"cond": toJSON(n.Cond),
			"post": toJSON(n.Post),
			"body": toJSON(n.Body),
		}

	case *ReturnStmt:
		m := object{
			"type": "ReturnStmt",
			"pos":  n.pos.String(),
		}
		if n.Result != nil {
			m["result"] = toJSON(n.Result)
		}
		return m

	case *BreakStmt:
		return object{"type": "BreakStmt", "pos": n.pos.String()}

	case *EmptyStmt:
		return object{"type": "EmptyStmt", "pos": n.pos.String()}

	case *AssignStmt:
		return object{
			"type":  "AssignStmt",
			"pos":   n.pos.String(),
			"name":  n.Name.Value,
			"value": toJSON(n.Value),
		}

	case *CallStmt:
		return object{
			"type": "CallStmt",
			"pos":  n.pos.String(),
			"call": toJSON(n.Call),
		}

	case *Name:
		return object{"type": "Name", "pos": n.pos.String(), "value": n.Value}

	case *NumLit:
		return object{"type": "NumLit", "pos": n.pos.String(), "kind": n.Kind.String(), "value": n.Text}

	case *StrLit:
		return object{"type": "StrLit", "pos": n.pos.String(), "value": n.Value}

	case *BoolLit:
		return object{"type": "BoolLit", "pos": n.pos.String(), "value": n.Value}

	case *UnaryExpr:
		return object{"type": "UnaryExpr", "pos": n.pos.String(), "op": n.Op.String(), "x": toJSON(n.X)}

	case *NotExpr:
		return object{"type": "NotExpr", "pos": n.pos.String(), "x": toJSON(n.X)}

	case *BinaryExpr:
		return binaryJSON("BinaryExpr", n.pos, n.Op, n.X, n.Y)

	case *ConcatExpr:
		return binaryJSON("ConcatExpr", n.pos, n.Op, n.X, n.Y)

	case *BoolExpr:
		return binaryJSON("BoolExpr", n.pos, n.Op, n.X, n.Y)

	case *CallExpr:
		return object{
			"type": "CallExpr",
			"pos":  n.pos.String(),
			"name": n.Name.Value,
			"args": mapSlice(n.Args, func(a Expr) interface{} { return toJSON(a) }),
		}

	default:
		return object{
			"type": "Unknown",
		}
	}
}

func binaryJSON(kind string, pos Pos, op Token, x, y Expr) object {
	return object{
		"type": kind,
		"pos":  pos.String(),
		"op":   op.String(),
		"x":    toJSON(x),
		"y":    toJSON(y),
	}
}

// Helper functions to map slices

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
