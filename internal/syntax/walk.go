package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		Walk(n.Name, v)
		Walk(n.Body, v)

	case *VarDecl:
		for _, name := range n.Names {
			Walk(name, v)
		}
		Walk(n.Type, v)
		if n.Value != nil {
			Walk(n.Value, v)
		}

	case *FuncDecl:
		Walk(n.Name, v)
		for _, prm := range n.Params {
			Walk(prm, v)
		}
		Walk(n.Body, v)
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *Param:
		Walk(n.Name, v)
		Walk(n.Type, v)

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *AssignStmt:
		Walk(n.Name, v)
		Walk(n.Value, v)

	case *CallStmt:
		Walk(n.Call, v)

	case *IfStmt:
		for _, c := range n.Clauses {
			Walk(c, v)
		}
		if n.Else != nil {
			Walk(n.Else, v)
		}

	case *CondClause:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		if n.Post != nil {
			Walk(n.Post, v)
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, v)
		}

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *ConcatExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *BoolExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *NotExpr:
		Walk(n.X, v)

	case *CallExpr:
		Walk(n.Name, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	// Leaf nodes: Name, NumLit, StrLit, BoolLit, TypeSpec, EmptyStmt, BreakStmt
	// No children to visit
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
