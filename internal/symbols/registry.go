package symbols

import (
	"sort"

	"github.com/jdeeny/rocto/internal/ast"
)

type Kind int

const (
	KindAlias Kind = iota
	KindLabel
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindLabel:
		return "label"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Symbol is one registry entry together with the directive that defined it.
type Symbol struct {
	Name     string
	Kind     Kind
	Position ast.Position
}

// Registry holds the three compile-time tables filled in by directives.
// Names are kept byte-exact; a later definition of the same name in the same
// table replaces the earlier one, duplicate detection is left to the
// resolution pass.
type Registry struct {
	aliases   map[string]int
	labels    map[string]*int
	constants map[string]int
	defs      map[Kind]map[string]Symbol
}

func NewRegistry() *Registry {
	return &Registry{
		aliases:   make(map[string]int),
		labels:    make(map[string]*int),
		constants: make(map[string]int),
		defs: map[Kind]map[string]Symbol{
			KindAlias:    {},
			KindLabel:    {},
			KindConstant: {},
		},
	}
}

// DefineAlias maps name to general purpose register reg.
func (r *Registry) DefineAlias(name string, reg int, pos ast.Position) {
	r.aliases[name] = reg
	r.record(name, KindAlias, pos)
}

// DefineLabel adds name with no resolved address.
func (r *Registry) DefineLabel(name string, pos ast.Position) {
	r.labels[name] = nil
	r.record(name, KindLabel, pos)
}

// DefineConstant maps name to an immediate value.
func (r *Registry) DefineConstant(name string, value int, pos ast.Position) {
	r.constants[name] = value
	r.record(name, KindConstant, pos)
}

func (r *Registry) record(name string, kind Kind, pos ast.Position) {
	r.defs[kind][name] = Symbol{Name: name, Kind: kind, Position: pos}
}

// Define inserts the table entry a directive fragment implies. Fragments that
// are not directives are ignored.
func (r *Registry) Define(f ast.Fragment) {
	switch d := f.(type) {
	case *ast.Alias:
		r.DefineAlias(d.Name, d.Register, d.Pos)
	case *ast.Label:
		r.DefineLabel(d.Name, d.Pos)
	case *ast.Const:
		r.DefineConstant(d.Name, d.Value, d.Pos)
	}
}

// Aliases returns a copy of the alias table.
func (r *Registry) Aliases() map[string]int {
	out := make(map[string]int, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// Labels returns a copy of the label table.
func (r *Registry) Labels() map[string]*int {
	out := make(map[string]*int, len(r.labels))
	for k, v := range r.labels {
		out[k] = v
	}
	return out
}

// Constants returns a copy of the constant table.
func (r *Registry) Constants() map[string]int {
	out := make(map[string]int, len(r.constants))
	for k, v := range r.constants {
		out[k] = v
	}
	return out
}

// Symbols returns every definition of the given kind ordered by name.
func (r *Registry) Symbols(kind Kind) []Symbol {
	defs := r.defs[kind]
	out := make([]Symbol, 0, len(defs))
	for _, s := range defs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len is the total number of entries across all three tables.
func (r *Registry) Len() int {
	return len(r.aliases) + len(r.labels) + len(r.constants)
}

// Merge copies every entry of other into r, other winning on conflicts.
func (r *Registry) Merge(other *Registry) {
	if other == nil {
		return
	}
	for name, reg := range other.aliases {
		r.DefineAlias(name, reg, other.defs[KindAlias][name].Position)
	}
	for name := range other.labels {
		r.DefineLabel(name, other.defs[KindLabel][name].Position)
		r.labels[name] = other.labels[name]
	}
	for name, v := range other.constants {
		r.DefineConstant(name, v, other.defs[KindConstant][name].Position)
	}
}
