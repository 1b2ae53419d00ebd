package ast

import (
	"fmt"
	"strings"
)

func (r *RegisterSrc) String() string  { return fmt.Sprintf("v%x", r.Index) }
func (c *ConstSrc) String() string     { return fmt.Sprintf("%d", c.Value) }
func (r *RandomSrc) String() string    { return fmt.Sprintf("random %s", formatHex(r.Mask)) }
func (s *SymbolSrc) String() string    { return s.Name }
func (r *RegisterDest) String() string { return fmt.Sprintf("v%x", r.Index) }
func (*IndexDest) String() string      { return "i" }
func (s *SymbolDest) String() string   { return s.Name }

func (a *Store) String() string       { return binary(a.Dest, ":=", a.Src) }
func (a *StoreRandom) String() string { return fmt.Sprintf("%s := random %s", a.Dest, formatHex(a.Mask)) }
func (a *StoreHex) String() string    { return fmt.Sprintf("%s := hex %s", a.Dest, a.Src) }
func (a *Add) String() string         { return binary(a.Dest, "+=", a.Src) }
func (a *Sub) String() string         { return binary(a.Dest, "-=", a.Src) }
func (a *Or) String() string          { return binary(a.Dest, "|=", a.Src) }
func (a *And) String() string         { return binary(a.Dest, "&=", a.Src) }
func (a *Xor) String() string         { return binary(a.Dest, "^=", a.Src) }
func (a *Shr) String() string         { return binary(a.Dest, ">>=", a.Src) }
func (a *Shl) String() string         { return binary(a.Dest, "<<=", a.Src) }

func binary(dest Dest, op string, src Src) string {
	return fmt.Sprintf("%s %s %s", dest, op, src)
}

func (c *CondEq) String() string     { return fmt.Sprintf("%s == %s", c.Left, c.Right) }
func (c *CondNotEq) String() string  { return fmt.Sprintf("%s != %s", c.Left, c.Right) }
func (c *CondKey) String() string    { return fmt.Sprintf("%s key", c.Key) }
func (c *CondNotKey) String() string { return fmt.Sprintf("%s -key", c.Key) }

func (s *Sprite) String() string {
	return fmt.Sprintf("sprite %s %s %s", s.X, s.Y, s.Height)
}

func (*Loop) String() string          { return "loop" }
func (*Again) String() string         { return "again" }
func (*Return) String() string        { return "return" }
func (i *If) String() string          { return fmt.Sprintf("if %s then", i.Cond) }
func (a *AssignStmt) String() string  { return a.Assignment.String() }
func (c *Comment) String() string     { return "#" + c.Text }
func (a *Alias) String() string       { return fmt.Sprintf(":alias %s v%x", a.Name, a.Register) }
func (c *Const) String() string       { return fmt.Sprintf(":const %s %d", c.Name, c.Value) }
func (l *Label) String() string       { return ": " + l.Name }
func (l *Literal) String() string     { return formatHex(l.Value) }
func (c *Call) String() string        { return c.Target.String() }
func (s *StatementFragment) String() string {
	return s.Statement.String()
}

// formatHex renders byte-sized data the way Octo listings do and falls back
// to decimal for anything else.
func formatHex(v int) string {
	if v >= 0 && v <= 0xFF {
		return fmt.Sprintf("0x%02X", v)
	}
	return fmt.Sprintf("%d", v)
}

// Listing renders fragments one per line, prefixed with their source line and
// kind, for inspection output.
func Listing(fragments []Fragment) string {
	var b strings.Builder

	width := 3
	if n := len(fragments); n > 0 {
		if w := len(fmt.Sprintf("%d", fragments[n-1].Line())); w > width {
			width = w
		}
	}

	for _, f := range fragments {
		b.WriteString(fmt.Sprintf("%*d  %-9s %s\n", width, f.Line(), strings.ToLower(f.NodeType().String()), f.String()))
	}

	return b.String()
}

// Source renders fragments back to Octo source, keeping each fragment on the
// line it came from.
func Source(fragments []Fragment) string {
	var b strings.Builder

	line := 1
	first := true
	for _, f := range fragments {
		for line < f.Line() {
			b.WriteString("\n")
			line++
			first = true
		}
		if !first {
			b.WriteString(" ")
		}
		b.WriteString(f.String())
		first = false
	}

	if len(fragments) > 0 {
		b.WriteString("\n")
	}

	return b.String()
}
