package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		word string
		want TokenType
	}{
		{"sprite", SPRITE},
		{"LOOP", LOOP},
		{"Again", AGAIN},
		{"return", RETURN},
		{"if", IF},
		{"then", THEN},
		{"key", KEY},
		{"-key", NOT_KEY},
		{"-KEY", NOT_KEY},
		{"random", RANDOM},
		{"hex", HEX},
		{"v0", REGISTER},
		{"VF", REGISTER},
		{"va", REGISTER},
		{"vg", IDENT},
		{"vab", IDENT},
		{"i", INDEX},
		{"I", INDEX},
		{"main", IDENT},
		{"comp-LT", IDENT},
		{"loopy", IDENT},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LookupIdent(tt.word), "word %q", tt.word)
	}
}

func TestKeywordsAreReserved(t *testing.T) {
	for _, kw := range Keywords() {
		assert.True(t, IsKeyword(kw), kw)
	}
	assert.False(t, IsKeyword("main"))
}

func TestCharacterClasses(t *testing.T) {
	assert.True(t, IsIdentChar('-'))
	assert.True(t, IsIdentChar('_'))
	assert.False(t, IsIdentChar('3'))
	assert.False(t, IsIdentChar(':'))
	assert.True(t, IsWordChar('3'))
	assert.True(t, IsHexDigit('F'))
	assert.False(t, IsHexDigit('g'))
	assert.True(t, IsBinDigit('1'))
	assert.False(t, IsBinDigit('2'))
}

func TestOperatorsLongestFirst(t *testing.T) {
	for i := 1; i < len(Operators); i++ {
		assert.GreaterOrEqual(t, len(Operators[i-1]), len(Operators[i]))
	}
}
