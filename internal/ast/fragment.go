package ast

// Position tracks location information for error reporting and tooling.
// Offset is 0-based; Line and Column are 1-based.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Fragment is one top-level unit of Octo source.
type Fragment interface {
	Node
	NodePos() Position
	// Line is the 1-based source line the fragment begins on.
	Line() int
	fragmentNode()
}

// Comment represents a "#" comment; Text excludes the "#".
// Example: "# draw the background:"
type Comment struct {
	Pos  Position
	Text string
}

// Alias binds Name to register Register.
// Example: ":alias px v3"
type Alias struct {
	Pos      Position
	Register int
	Name     string
}

// Const binds Name to an immediate value.
// Example: ":const SPEED 4"
type Const struct {
	Pos   Position
	Value int
	Name  string
}

// Label defines Name at the current address.
// Example: ": main"
type Label struct {
	Pos  Position
	Name string
}

// Literal is a raw data byte or word emitted in place.
// Example: "0x70"
type Literal struct {
	Pos   Position
	Value int
}

// StatementFragment holds a single statement.
// Example: "sprite v0 v1 8"
type StatementFragment struct {
	Pos       Position
	Statement Statement
}

// Call is a bare name, an implicit call of the routine it labels.
// Example: "draw-texture"
type Call struct {
	Pos    Position
	Target Dest
}

func (*Comment) fragmentNode()           {}
func (*Alias) fragmentNode()             {}
func (*Const) fragmentNode()             {}
func (*Label) fragmentNode()             {}
func (*Literal) fragmentNode()           {}
func (*StatementFragment) fragmentNode() {}
func (*Call) fragmentNode()              {}
