// Package token classifies Octo words for the parser and the editor tooling.
package token

import "strings"

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT    = "IDENT"    // main, comp-LT, draw_texture ...
	NUMBER   = "NUMBER"   // 0x1F 0b0011 -7 42
	REGISTER = "REGISTER" // v0 .. vF
	INDEX    = "INDEX"    // i

	// Operators
	STORE   = ":="
	ADD     = "+="
	SUB     = "-="
	OR      = "|="
	AND     = "&="
	XOR     = "^="
	SHR     = ">>="
	SHL     = "<<="
	EQ      = "=="
	NOT_EQ  = "!="
	NOT_KEY = "-key"

	// Delimiters
	COLON     = ":"
	SEMICOLON = ";"

	COMMENT = "COMMENT"

	// Directives
	ALIAS = ":alias"
	CONST = ":const"

	// Keywords
	SPRITE = "SPRITE"
	LOOP   = "LOOP"
	AGAIN  = "AGAIN"
	RETURN = "RETURN"
	IF     = "IF"
	THEN   = "THEN"
	KEY    = "KEY"
	RANDOM = "RANDOM"
	HEX    = "HEX"
)

// Keywords are matched case-insensitively, the way Octo treats them.
var keywords = map[string]TokenType{
	"sprite": SPRITE,
	"loop":   LOOP,
	"again":  AGAIN,
	"return": RETURN,
	"if":     IF,
	"then":   THEN,
	"key":    KEY,
	"random": RANDOM,
	"hex":    HEX,
}

// Operators lists the assignment operators longest first.
var Operators = []TokenType{SHR, SHL, STORE, ADD, SUB, OR, AND, XOR}

// LookupIdent classifies a word made of identifier characters.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	if IsRegister(ident) {
		return REGISTER
	}
	if ident == "i" || ident == "I" {
		return INDEX
	}
	if strings.EqualFold(ident, NOT_KEY) {
		return NOT_KEY
	}
	return IDENT
}

// IsKeyword reports whether word is reserved.
func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToLower(word)]
	return ok
}

// Keywords returns the reserved words in lower case.
func Keywords() []string {
	return []string{"sprite", "loop", "again", "return", "if", "then", "key", "random", "hex"}
}

// IsRegister reports whether word is exactly v0..vF in either case.
func IsRegister(word string) bool {
	return len(word) == 2 && (word[0] == 'v' || word[0] == 'V') && IsHexDigit(word[1])
}

// IsIdentChar reports whether c may appear in a bare symbol name.
func IsIdentChar(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_' || c == '-'
}

// IsWordChar reports whether c would continue a word; keywords and registers
// must not be followed by one.
func IsWordChar(c byte) bool {
	return IsIdentChar(c) || IsDigit(c)
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func IsHexDigit(c byte) bool {
	return IsDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func IsBinDigit(c byte) bool {
	return c == '0' || c == '1'
}
