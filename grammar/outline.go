package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/jdeeny/rocto/token"
)

// Outline is a line-tolerant view of a document: it records comments,
// directives and labels and swallows everything else as plain words, so it
// can be built for sources that do not parse.
type Outline struct {
	Entries []*Entry `parser:"( @@ | Newline )*"`
}

type Entry struct {
	Pos lexer.Position

	Comment   *string        `parser:"  @Comment"`
	Directive *DirectiveDecl `parser:"| @@"`
	Label     *LabelDecl     `parser:"| @@"`
	Word      *string        `parser:"| @(Ident | Number | Operator | Semicolon | Bad)"`
}

// DirectiveDecl is ":alias NAME vX", ":const NAME VALUE" or an unknown
// colon word. Operands are optional and never cross a line.
type DirectiveDecl struct {
	Pos lexer.Position

	Keyword string `parser:"@Directive"`
	Name    string `parser:"@Ident?"`
	Value   string `parser:"@(Ident | Number)?"`
}

type LabelDecl struct {
	Pos lexer.Position

	Name string `parser:"Colon @Ident?"`
}

// Declaration is one named definition found in an outline.
type Declaration struct {
	Kind   string // "alias", "const" or "label"
	Name   string
	Detail string
	Pos    lexer.Position
}

// Declarations lists labels, aliases and constants in source order. Entries
// without a name are skipped.
func (o *Outline) Declarations() []Declaration {
	var decls []Declaration

	for _, e := range o.Entries {
		switch {
		case e.Label != nil && e.Label.Name != "":
			decls = append(decls, Declaration{Kind: "label", Name: e.Label.Name, Pos: e.Label.Pos})

		case e.Directive != nil && e.Directive.Name != "":
			switch strings.ToLower(e.Directive.Keyword) {
			case token.ALIAS:
				decls = append(decls, Declaration{Kind: "alias", Name: e.Directive.Name, Detail: e.Directive.Value, Pos: e.Directive.Pos})
			case token.CONST:
				decls = append(decls, Declaration{Kind: "const", Name: e.Directive.Name, Detail: e.Directive.Value, Pos: e.Directive.Pos})
			}
		}
	}

	return decls
}
