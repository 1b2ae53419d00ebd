package ast

import "fmt"

type NodeType int

const (
	// Special / error
	ILLEGAL NodeType = iota

	// Operands
	REGISTER_SRC
	CONST_SRC
	RANDOM_SRC
	SYMBOL_SRC
	REGISTER_DEST
	INDEX_DEST
	SYMBOL_DEST

	// Assignments
	STORE
	STORE_RANDOM
	STORE_HEX
	ADD
	SUB
	OR
	AND
	XOR
	SHR
	SHL

	// Conditions
	COND_EQ
	COND_NOT_EQ
	COND_KEY
	COND_NOT_KEY

	// Statements
	SPRITE
	LOOP
	AGAIN
	RETURN
	IF
	ASSIGN_STMT

	// Fragments
	COMMENT
	ALIAS
	CONST
	LABEL
	LITERAL
	STATEMENT
	CALL
)

var nodeTypeNames = map[NodeType]string{
	ILLEGAL:       "ILLEGAL",
	REGISTER_SRC:  "REGISTER_SRC",
	CONST_SRC:     "CONST_SRC",
	RANDOM_SRC:    "RANDOM_SRC",
	SYMBOL_SRC:    "SYMBOL_SRC",
	REGISTER_DEST: "REGISTER_DEST",
	INDEX_DEST:    "INDEX_DEST",
	SYMBOL_DEST:   "SYMBOL_DEST",
	STORE:         "STORE",
	STORE_RANDOM:  "STORE_RANDOM",
	STORE_HEX:     "STORE_HEX",
	ADD:           "ADD",
	SUB:           "SUB",
	OR:            "OR",
	AND:           "AND",
	XOR:           "XOR",
	SHR:           "SHR",
	SHL:           "SHL",
	COND_EQ:       "COND_EQ",
	COND_NOT_EQ:   "COND_NOT_EQ",
	COND_KEY:      "COND_KEY",
	COND_NOT_KEY:  "COND_NOT_KEY",
	SPRITE:        "SPRITE",
	LOOP:          "LOOP",
	AGAIN:         "AGAIN",
	RETURN:        "RETURN",
	IF:            "IF",
	ASSIGN_STMT:   "ASSIGN_STMT",
	COMMENT:       "COMMENT",
	ALIAS:         "ALIAS",
	CONST:         "CONST",
	LABEL:         "LABEL",
	LITERAL:       "LITERAL",
	STATEMENT:     "STATEMENT",
	CALL:          "CALL",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}
