package ast

// Assignment is one of the register/index update forms.
// Example: "v0 := 5", "i += v9", "vf := random 0xFF"
type Assignment interface {
	Node
	// Target returns the operand being written.
	Target() Dest
	assignmentNode()
}

// Store copies Src into Dest (":=").
type Store struct {
	Dest Dest
	Src  Src
}

// StoreRandom stores a random byte masked with Mask (":= random N").
type StoreRandom struct {
	Dest Dest
	Mask int
}

// StoreHex points Dest at the built-in hex glyph for Src (":= hex vX").
type StoreHex struct {
	Dest Dest
	Src  Src
}

type Add struct {
	Dest Dest
	Src  Src
}

type Sub struct {
	Dest Dest
	Src  Src
}

type Or struct {
	Dest Dest
	Src  Src
}

type And struct {
	Dest Dest
	Src  Src
}

type Xor struct {
	Dest Dest
	Src  Src
}

type Shr struct {
	Dest Dest
	Src  Src
}

type Shl struct {
	Dest Dest
	Src  Src
}

func (a *Store) Target() Dest       { return a.Dest }
func (a *StoreRandom) Target() Dest { return a.Dest }
func (a *StoreHex) Target() Dest    { return a.Dest }
func (a *Add) Target() Dest         { return a.Dest }
func (a *Sub) Target() Dest         { return a.Dest }
func (a *Or) Target() Dest          { return a.Dest }
func (a *And) Target() Dest         { return a.Dest }
func (a *Xor) Target() Dest         { return a.Dest }
func (a *Shr) Target() Dest         { return a.Dest }
func (a *Shl) Target() Dest         { return a.Dest }

func (*Store) assignmentNode()       {}
func (*StoreRandom) assignmentNode() {}
func (*StoreHex) assignmentNode()    {}
func (*Add) assignmentNode()         {}
func (*Sub) assignmentNode()         {}
func (*Or) assignmentNode()          {}
func (*And) assignmentNode()         {}
func (*Xor) assignmentNode()         {}
func (*Shr) assignmentNode()         {}
func (*Shl) assignmentNode()         {}

// ConditionalExpr is the test between "if" and "then".
type ConditionalExpr interface {
	Node
	conditionNode()
}

type CondEq struct {
	Left  Src
	Right Src
}

type CondNotEq struct {
	Left  Src
	Right Src
}

// CondKey holds when the key named by Key is down.
type CondKey struct {
	Key Src
}

// CondNotKey holds when the key named by Key is up.
type CondNotKey struct {
	Key Src
}

func (*CondEq) conditionNode()     {}
func (*CondNotEq) conditionNode()  {}
func (*CondKey) conditionNode()    {}
func (*CondNotKey) conditionNode() {}

// Statement is a control or drawing instruction.
type Statement interface {
	Node
	statementNode()
}

// Sprite draws Height rows of sprite data at (X, Y).
type Sprite struct {
	X      Src
	Y      Src
	Height Src
}

// Loop opens a loop body; the matching Again is a later fragment.
type Loop struct{}

// Again closes the innermost open Loop.
type Again struct{}

// Return ends the current routine ("return" or ";").
type Return struct{}

// If guards the fragment that follows it in the stream.
type If struct {
	Cond ConditionalExpr
}

// AssignStmt wraps an Assignment so it can appear as a Statement.
type AssignStmt struct {
	Assignment Assignment
}

func (*Sprite) statementNode()     {}
func (*Loop) statementNode()       {}
func (*Again) statementNode()      {}
func (*Return) statementNode()     {}
func (*If) statementNode()         {}
func (*AssignStmt) statementNode() {}
