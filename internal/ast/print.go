package ast

import "fmt"

// PrintDecl renders d as source text. It is the xfunctionalizer's only
// way to turn a synthesized declaration back into an edit: full printing
// and pretty-layout live with the parser (an external collaborator,
// §6); this renders exactly the surface the xfunctionalizer itself ever
// synthesizes, one declaration per line with cases joined by ", ".
func PrintDecl(d Decl) string {
	switch decl := d.(type) {
	case *Data:
		return printData(decl)
	case *Codata:
		return printCodata(decl)
	case *Def:
		return printDef(decl)
	case *Codef:
		return printCodef(decl)
	default:
		return fmt.Sprintf("<unprintable decl %T>", d)
	}
}

func printData(d *Data) string {
	s := "data " + d.Name + " { "
	for i, c := range d.Ctors {
		if i > 0 {
			s += ", "
		}
		s += printXtorSig(c.Name, c.Arity)
	}
	return s + " }"
}

func printCodata(d *Codata) string {
	s := "codata " + d.Name + " { "
	for i, dt := range d.Dtors {
		if i > 0 {
			s += ", "
		}
		s += printXtorSig(dt.Name, dt.Arity)
	}
	return s + " }"
}

func printXtorSig(name string, arity int) string {
	s := name + "("
	for i := 0; i < arity; i++ {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("x%d", i)
	}
	return s + ")"
}

func printDef(d *Def) string {
	return fmt.Sprintf("def %s%s { %s }", d.Name, argsPlaceholder(d.NArgs), d.Body)
}

func printCodef(d *Codef) string {
	return fmt.Sprintf("codef %s%s { %s }", d.Name, argsPlaceholder(d.NArgs), d.Body)
}

func argsPlaceholder(n int) string {
	if n == 0 {
		return "()"
	}
	s := "("
	for i := 0; i < n; i++ {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("x%d", i)
	}
	return s + ")"
}
