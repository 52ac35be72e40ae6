package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// section prints a labelled child node one level deeper.
func (p *printer) section(label string, n Node) {
	p.printf("%s:\n", label)
	p.indent++
	p.print(n)
	p.indent--
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s %q\n", n.pos, n.Name.Value)
		p.indent++
		p.print(n.Body)
		p.indent--

	case *VarDecl:
		names := make([]string, len(n.Names))
		for i, name := range n.Names {
			names[i] = name.Value
		}
		p.printf("VarDecl %s %s : %s\n", n.pos, strings.Join(names, ", "), n.Type.Name)
		if n.Value != nil {
			p.indent++
			p.section("Value", n.Value)
			p.indent--
		}

	case *FuncDecl:
		p.printf("FuncDecl %s %q\n", n.pos, n.Name.Value)
		p.indent++
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, prm := range n.Params {
				p.printf("%s : %s\n", prm.Name.Value, prm.Type.Name)
			}
			p.indent--
		}
		p.section("Body", n.Body)
		if n.Result != nil {
			p.section("Result", n.Result)
		}
		p.indent--

	case *Block:
		p.printf("Block %s\n", n.pos)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *IfStmt:
		p.printf("IfStmt %s\n", n.pos)
		p.indent++
		for i, c := range n.Clauses {
			label := "If"
			if i > 0 {
				label = "Elif"
			}
			p.section(label, c.Cond)
			p.section("Then", c.Body)
		}
		if n.Else != nil {
			p.section("Else", n.Else)
		}
		p.indent--

	case *ForStmt:
		p.printf("ForStmt %s\n", n.pos)
		p.indent++
		p.section("Init", n.Init)
		p.section("Cond", n.Cond)
		p.section("Post", n.Post)
		p.section("Body", n.Body)
		p.indent--

	case *ReturnStmt:
		p.printf("ReturnStmt %s\n", n.pos)
		if n.Result != nil {
			p.indent++
			p.print(n.Result)
			p.indent--
		}

	case *BreakStmt:
		p.printf("BreakStmt %s\n", n.pos)

	case *AssignStmt:
		p.printf("AssignStmt %s %q\n", n.pos, n.Name.Value)
		p.indent++
		p.print(n.Value)
		p.indent--

	case *CallStmt:
		p.printf("CallStmt %s\n", n.pos)
		p.indent++
		p.print(n.Call)
		p.indent--

	case *EmptyStmt:
		p.printf("EmptyStmt %s\n", n.pos)

	case *Name:
		p.printf("Name %s %q\n", n.pos, n.Value)

	case *NumLit:
		p.printf("NumLit %s %s %s\n", n.pos, n.Kind, n.Text)

	case *StrLit:
		p.printf("StrLit %s %q\n", n.pos, n.Value)

	case *BoolLit:
		p.printf("BoolLit %s %s\n", n.pos, n.Value)

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.pos, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *NotExpr:
		p.printf("NotExpr %s\n", n.pos)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.binary("BinaryExpr", n.pos, n.Op, n.X, n.Y)

	case *ConcatExpr:
		p.binary("ConcatExpr", n.pos, n.Op, n.X, n.Y)

	case *BoolExpr:
		p.binary("BoolExpr", n.pos, n.Op, n.X, n.Y)

	case *CallExpr:
		p.printf("CallExpr %s %q\n", n.pos, n.Name.Value)
		if len(n.Args) > 0 {
			p.indent++
			p.printf("Args:\n")
			p.indent++
			for _, a := range n.Args {
				p.print(a)
			}
			p.indent -= 2
		}

	default:
		p.printf("<%T>\n", node)
	}
}

func (p *printer) binary(kind string, pos Pos, op Token, x, y Expr) {
	p.printf("%s %s %s\n", kind, pos, op)
	p.indent++
	p.section("X", x)
	p.section("Y", y)
	p.indent--
}
