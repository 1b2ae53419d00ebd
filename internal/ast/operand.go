package ast

// Src is the operand an instruction reads from.
// Example: "v3", "0x1F", "random 0b0111", "delay"
type Src interface {
	Node
	srcNode()
}

// Dest is the operand an instruction writes to.
// Example: "v3", "i", "delay"
type Dest interface {
	Node
	destNode()
}

// RegisterSrc reads one of the sixteen general purpose registers.
type RegisterSrc struct {
	Index int
}

// ConstSrc is an immediate value. The recognizer accepts any numeral the
// parser allows; narrowing to 8 bits is left to the emitter.
type ConstSrc struct {
	Value int
}

// RandomSrc requests a random byte masked with Mask.
type RandomSrc struct {
	Mask int
}

// SymbolSrc is an unresolved name (alias, constant, label or timer).
type SymbolSrc struct {
	Name string
}

// RegisterDest writes one of the sixteen general purpose registers.
type RegisterDest struct {
	Index int
}

// IndexDest is the memory index register "i".
type IndexDest struct{}

// SymbolDest is an unresolved name used in a destination or call position.
type SymbolDest struct {
	Name string
}

func (*RegisterSrc) srcNode() {}
func (*ConstSrc) srcNode()    {}
func (*RandomSrc) srcNode()   {}
func (*SymbolSrc) srcNode()   {}

func (*RegisterDest) destNode() {}
func (*IndexDest) destNode()    {}
func (*SymbolDest) destNode()   {}
