package parser

import (
	"github.com/jdeeny/rocto/internal/ast"
	"github.com/jdeeny/rocto/token"
)

// parseComment matches "#" and the rest of the line. A "#" directly before a
// newline or the end of input is an empty comment.
func (p *Parser) parseComment() (ast.Fragment, error) {
	start := p.current
	if err := p.literal("#"); err != nil {
		return nil, err
	}

	bodyStart := p.current
	for !p.isAtEnd() && p.peek() != '\n' {
		p.current++
	}

	return &ast.Comment{Pos: p.position(start), Text: p.source[bodyStart:p.current]}, nil
}

// parseAlias matches ":alias NAME vX". Once ":alias" is seen the directive is
// committed and anything malformed after it is a syntax error.
func (p *Parser) parseAlias() (ast.Fragment, error) {
	const context = "alias directive"

	start := p.current
	if err := p.keyword(token.ALIAS); err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, p.commit(err, context, "alias name")
	}
	name, err := p.identifier()
	if err != nil {
		return nil, p.commit(err, context, "alias name")
	}
	if err := p.whitespace(); err != nil {
		return nil, p.commit(err, context, "register")
	}
	reg, err := attempt(p, p.register)
	if err != nil {
		return nil, p.commit(err, context, "register")
	}

	return &ast.Alias{Pos: p.position(start), Register: reg, Name: name}, nil
}

// parseConst matches ":const NAME value".
func (p *Parser) parseConst() (ast.Fragment, error) {
	const context = "const directive"

	start := p.current
	if err := p.keyword(token.CONST); err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, p.commit(err, context, "constant name")
	}
	name, err := p.identifier()
	if err != nil {
		return nil, p.commit(err, context, "constant name")
	}
	if err := p.whitespace(); err != nil {
		return nil, p.commit(err, context, "numeral")
	}
	value, err := p.numeral()
	if err != nil {
		return nil, p.commit(err, context, "numeral")
	}

	return &ast.Const{Pos: p.position(start), Value: value, Name: name}, nil
}

// parseLabel matches ": NAME". The whitespace after the colon is what tells a
// label apart from ":alias" and ":const".
func (p *Parser) parseLabel() (ast.Fragment, error) {
	start := p.current
	if err := p.literal(token.COLON); err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, err
	}
	name, err := p.identifier()
	if err != nil {
		return nil, p.commit(err, "label", "label name")
	}

	return &ast.Label{Pos: p.position(start), Name: name}, nil
}

// parseAssignment matches "DEST OP SRC" for every assignment operator.
func (p *Parser) parseAssignment() (ast.Fragment, error) {
	start := p.current
	dest, err := p.parseDest()
	if err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, err
	}
	op, err := p.assignmentOperator()
	if err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, err
	}

	var assignment ast.Assignment
	if op == token.STORE {
		assignment, err = alt(p,
			func() (ast.Assignment, error) { return p.storeRandom(dest) },
			func() (ast.Assignment, error) { return p.storeHex(dest) },
			func() (ast.Assignment, error) { return p.binaryAssignment(dest, op) },
		)
	} else {
		assignment, err = p.binaryAssignment(dest, op)
	}
	if err != nil {
		return nil, err
	}

	return &ast.StatementFragment{
		Pos:       p.position(start),
		Statement: &ast.AssignStmt{Assignment: assignment},
	}, nil
}

func (p *Parser) assignmentOperator() (token.TokenType, error) {
	for _, op := range token.Operators {
		if p.literal(string(op)) == nil {
			return op, nil
		}
	}
	return "", errNoMatch
}

func (p *Parser) storeRandom(dest ast.Dest) (ast.Assignment, error) {
	mask, err := p.randomMask()
	if err != nil {
		return nil, err
	}
	return &ast.StoreRandom{Dest: dest, Mask: mask}, nil
}

func (p *Parser) storeHex(dest ast.Dest) (ast.Assignment, error) {
	if err := p.keyword("hex"); err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, err
	}
	src, err := p.parseSrc()
	if err != nil {
		return nil, err
	}
	return &ast.StoreHex{Dest: dest, Src: src}, nil
}

func (p *Parser) binaryAssignment(dest ast.Dest, op token.TokenType) (ast.Assignment, error) {
	src, err := p.parseSrc()
	if err != nil {
		return nil, err
	}

	switch op {
	case token.STORE:
		return &ast.Store{Dest: dest, Src: src}, nil
	case token.ADD:
		return &ast.Add{Dest: dest, Src: src}, nil
	case token.SUB:
		return &ast.Sub{Dest: dest, Src: src}, nil
	case token.OR:
		return &ast.Or{Dest: dest, Src: src}, nil
	case token.AND:
		return &ast.And{Dest: dest, Src: src}, nil
	case token.XOR:
		return &ast.Xor{Dest: dest, Src: src}, nil
	case token.SHR:
		return &ast.Shr{Dest: dest, Src: src}, nil
	case token.SHL:
		return &ast.Shl{Dest: dest, Src: src}, nil
	}
	return nil, errNoMatch
}

// parseStatement dispatches on the statement keywords.
func (p *Parser) parseStatement() (ast.Fragment, error) {
	start := p.current
	stmt, err := alt(p, p.parseSprite, p.parseIf, p.parseLoop, p.parseAgain, p.parseReturn)
	if err != nil {
		return nil, err
	}
	return &ast.StatementFragment{Pos: p.position(start), Statement: stmt}, nil
}

// parseSprite matches "sprite X Y N" with X and Y a register or symbol and N
// a numeral.
func (p *Parser) parseSprite() (ast.Statement, error) {
	const context = "sprite statement"

	if err := p.keyword("sprite"); err != nil {
		return nil, err
	}

	var operands [2]ast.Src
	for i := range operands {
		if err := p.whitespace(); err != nil {
			return nil, p.commit(err, context, "register", "symbol")
		}
		src, err := p.parseLocation()
		if err != nil {
			return nil, p.commit(err, context, "register", "symbol")
		}
		operands[i] = src
	}

	if err := p.whitespace(); err != nil {
		return nil, p.commit(err, context, "numeral")
	}
	height, err := p.parseConstSrc()
	if err != nil {
		return nil, p.commit(err, context, "numeral")
	}

	return &ast.Sprite{X: operands[0], Y: operands[1], Height: height}, nil
}

// parseIf matches "if COND then". The guarded statement is the next fragment.
func (p *Parser) parseIf() (ast.Statement, error) {
	const context = "if statement"

	if err := p.keyword("if"); err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, p.commit(err, context, "condition")
	}
	cond, err := p.parseConditional()
	if err != nil {
		return nil, p.commit(err, context, "condition")
	}
	if err := p.whitespace(); err != nil {
		return nil, p.commit(err, context, "then")
	}
	if err := p.keyword("then"); err != nil {
		return nil, p.commit(err, context, "then")
	}

	return &ast.If{Cond: cond}, nil
}

func (p *Parser) parseLoop() (ast.Statement, error) {
	if err := p.keyword("loop"); err != nil {
		return nil, err
	}
	return &ast.Loop{}, nil
}

func (p *Parser) parseAgain() (ast.Statement, error) {
	if err := p.keyword("again"); err != nil {
		return nil, err
	}
	return &ast.Again{}, nil
}

// parseReturn matches "return" or ";".
func (p *Parser) parseReturn() (ast.Statement, error) {
	if p.keyword("return") == nil || p.literal(token.SEMICOLON) == nil {
		return &ast.Return{}, nil
	}
	return nil, errNoMatch
}

// parseConditional tries ==, !=, key and -key in that order. "-key" is a
// single token and never the start of a negative numeral.
func (p *Parser) parseConditional() (ast.ConditionalExpr, error) {
	return alt(p, p.parseCondEq, p.parseCondNotEq, p.parseCondKey, p.parseCondNotKey)
}

func (p *Parser) comparison(op string) (ast.Src, ast.Src, error) {
	left, err := p.parseLocation()
	if err != nil {
		return nil, nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, nil, err
	}
	if err := p.literal(op); err != nil {
		return nil, nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, nil, err
	}
	right, err := p.parseComparand()
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (p *Parser) parseCondEq() (ast.ConditionalExpr, error) {
	left, right, err := p.comparison(token.EQ)
	if err != nil {
		return nil, err
	}
	return &ast.CondEq{Left: left, Right: right}, nil
}

func (p *Parser) parseCondNotEq() (ast.ConditionalExpr, error) {
	left, right, err := p.comparison(token.NOT_EQ)
	if err != nil {
		return nil, err
	}
	return &ast.CondNotEq{Left: left, Right: right}, nil
}

func (p *Parser) keyTest(suffix string) (ast.Src, error) {
	key, err := p.parseLocation()
	if err != nil {
		return nil, err
	}
	if err := p.whitespace(); err != nil {
		return nil, err
	}
	if err := p.keyword(suffix); err != nil {
		return nil, err
	}
	return key, nil
}

func (p *Parser) parseCondKey() (ast.ConditionalExpr, error) {
	key, err := p.keyTest("key")
	if err != nil {
		return nil, err
	}
	return &ast.CondKey{Key: key}, nil
}

func (p *Parser) parseCondNotKey() (ast.ConditionalExpr, error) {
	key, err := p.keyTest(token.NOT_KEY)
	if err != nil {
		return nil, err
	}
	return &ast.CondNotKey{Key: key}, nil
}

// parseLiteral turns a bare numeral into a raw data fragment.
func (p *Parser) parseLiteral() (ast.Fragment, error) {
	start := p.current
	v, err := p.numeral()
	if err != nil {
		return nil, err
	}
	return &ast.Literal{Pos: p.position(start), Value: v}, nil
}

// parseCall turns a bare name into an implicit call.
func (p *Parser) parseCall() (ast.Fragment, error) {
	start := p.current
	dest, err := p.parseSymbolDest()
	if err != nil {
		return nil, err
	}
	return &ast.Call{Pos: p.position(start), Target: dest}, nil
}
