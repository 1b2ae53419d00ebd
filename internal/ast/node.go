package ast

type Node interface {
	NodeType() NodeType
	String() string
}

func (*RegisterSrc) NodeType() NodeType  { return REGISTER_SRC }
func (*ConstSrc) NodeType() NodeType     { return CONST_SRC }
func (*RandomSrc) NodeType() NodeType    { return RANDOM_SRC }
func (*SymbolSrc) NodeType() NodeType    { return SYMBOL_SRC }
func (*RegisterDest) NodeType() NodeType { return REGISTER_DEST }
func (*IndexDest) NodeType() NodeType    { return INDEX_DEST }
func (*SymbolDest) NodeType() NodeType   { return SYMBOL_DEST }

func (*Store) NodeType() NodeType       { return STORE }
func (*StoreRandom) NodeType() NodeType { return STORE_RANDOM }
func (*StoreHex) NodeType() NodeType    { return STORE_HEX }
func (*Add) NodeType() NodeType         { return ADD }
func (*Sub) NodeType() NodeType         { return SUB }
func (*Or) NodeType() NodeType          { return OR }
func (*And) NodeType() NodeType         { return AND }
func (*Xor) NodeType() NodeType         { return XOR }
func (*Shr) NodeType() NodeType         { return SHR }
func (*Shl) NodeType() NodeType         { return SHL }

func (*CondEq) NodeType() NodeType     { return COND_EQ }
func (*CondNotEq) NodeType() NodeType  { return COND_NOT_EQ }
func (*CondKey) NodeType() NodeType    { return COND_KEY }
func (*CondNotKey) NodeType() NodeType { return COND_NOT_KEY }

func (*Sprite) NodeType() NodeType     { return SPRITE }
func (*Loop) NodeType() NodeType       { return LOOP }
func (*Again) NodeType() NodeType      { return AGAIN }
func (*Return) NodeType() NodeType     { return RETURN }
func (*If) NodeType() NodeType         { return IF }
func (*AssignStmt) NodeType() NodeType { return ASSIGN_STMT }

func (c *Comment) NodePos() Position { return c.Pos }
func (c *Comment) Line() int         { return c.Pos.Line }
func (*Comment) NodeType() NodeType  { return COMMENT }

func (a *Alias) NodePos() Position { return a.Pos }
func (a *Alias) Line() int         { return a.Pos.Line }
func (*Alias) NodeType() NodeType  { return ALIAS }

func (c *Const) NodePos() Position { return c.Pos }
func (c *Const) Line() int         { return c.Pos.Line }
func (*Const) NodeType() NodeType  { return CONST }

func (l *Label) NodePos() Position { return l.Pos }
func (l *Label) Line() int         { return l.Pos.Line }
func (*Label) NodeType() NodeType  { return LABEL }

func (l *Literal) NodePos() Position { return l.Pos }
func (l *Literal) Line() int         { return l.Pos.Line }
func (*Literal) NodeType() NodeType  { return LITERAL }

func (s *StatementFragment) NodePos() Position { return s.Pos }
func (s *StatementFragment) Line() int         { return s.Pos.Line }
func (*StatementFragment) NodeType() NodeType  { return STATEMENT }

func (c *Call) NodePos() Position { return c.Pos }
func (c *Call) Line() int         { return c.Pos.Line }
func (*Call) NodeType() NodeType  { return CALL }
