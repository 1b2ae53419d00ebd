package parser

import (
	"github.com/jdeeny/rocto/internal/ast"
	"github.com/jdeeny/rocto/token"
)

// register matches "v" followed by exactly one hex digit and nothing that
// would continue the word, so "va" is a register and "vault" is not.
func (p *Parser) register() (int, error) {
	if err := p.literalFold("v"); err != nil {
		return 0, err
	}
	c := p.peek()
	if !token.IsHexDigit(c) {
		return 0, errNoMatch
	}
	p.current++
	if token.IsWordChar(p.peek()) {
		return 0, errNoMatch
	}

	switch {
	case c <= '9':
		return int(c - '0'), nil
	case c >= 'a':
		return int(c-'a') + 10, nil
	default:
		return int(c-'A') + 10, nil
	}
}

func (p *Parser) parseRegisterDest() (ast.Dest, error) {
	index, err := p.register()
	if err != nil {
		return nil, err
	}
	return &ast.RegisterDest{Index: index}, nil
}

func (p *Parser) parseIndexDest() (ast.Dest, error) {
	if err := p.keyword("i"); err != nil {
		return nil, err
	}
	return &ast.IndexDest{}, nil
}

func (p *Parser) parseSymbolDest() (ast.Dest, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	return &ast.SymbolDest{Name: name}, nil
}

// parseDest tries register, then index register, then a bare symbol.
func (p *Parser) parseDest() (ast.Dest, error) {
	return alt(p, p.parseRegisterDest, p.parseIndexDest, p.parseSymbolDest)
}

func (p *Parser) parseRegisterSrc() (ast.Src, error) {
	index, err := p.register()
	if err != nil {
		return nil, err
	}
	return &ast.RegisterSrc{Index: index}, nil
}

func (p *Parser) parseConstSrc() (ast.Src, error) {
	v, err := p.numeral()
	if err != nil {
		return nil, err
	}
	return &ast.ConstSrc{Value: v}, nil
}

// randomMask matches "random", at least one whitespace or newline, and the
// mask numeral.
func (p *Parser) randomMask() (int, error) {
	if err := p.keyword("random"); err != nil {
		return 0, err
	}
	if err := p.separator(); err != nil {
		return 0, err
	}
	return p.numeral()
}

func (p *Parser) parseRandomSrc() (ast.Src, error) {
	mask, err := p.randomMask()
	if err != nil {
		return nil, err
	}
	return &ast.RandomSrc{Mask: mask}, nil
}

func (p *Parser) parseSymbolSrc() (ast.Src, error) {
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	return &ast.SymbolSrc{Name: name}, nil
}

// parseSrc tries register, numeral, random and finally a bare symbol.
func (p *Parser) parseSrc() (ast.Src, error) {
	return alt(p, p.parseRegisterSrc, p.parseConstSrc, p.parseRandomSrc, p.parseSymbolSrc)
}

// parseLocation is the register-or-symbol operand used by sprite coordinates
// and the left side of conditions.
func (p *Parser) parseLocation() (ast.Src, error) {
	return alt(p, p.parseRegisterSrc, p.parseSymbolSrc)
}

// parseComparand is the right side of == and !=.
func (p *Parser) parseComparand() (ast.Src, error) {
	return alt(p, p.parseRegisterSrc, p.parseConstSrc, p.parseSymbolSrc)
}
