package types

import "github.com/boc-lang/boc/internal/diag"

// VariableId is a stable index into a VariableTable.
type VariableId int

// Variable is immutable once declared: {type_id, name, declaration
// span, owner scope}.
type Variable struct {
	TypeID          TypeId
	Name            string
	DeclarationSpan diag.Span
	OwnerScope      ScopeId
}

// VariableTable is a flat, append-only store; the index is the
// VariableId.
type VariableTable struct {
	vars []Variable
}

// Define appends a new variable and returns its id.
func (t *VariableTable) Define(typeID TypeId, name string, span diag.Span, owner ScopeId) VariableId {
	t.vars = append(t.vars, Variable{TypeID: typeID, Name: name, DeclarationSpan: span, OwnerScope: owner})
	return VariableId(len(t.vars) - 1)
}

// Get returns the Variable stored at id.
func (t *VariableTable) Get(id VariableId) Variable { return t.vars[id] }

// DefinedInScope reports whether a variable named name is owned
// exactly by scope (not an ancestor) — used to reject a duplicate
// declaration in the same scope.
func (t *VariableTable) DefinedInScope(name string, scope ScopeId) bool {
	for _, v := range t.vars {
		if v.OwnerScope == scope && v.Name == name {
			return true
		}
	}
	return false
}

// Find walks scope and its ancestors, nearest first, for a variable
// named name, per the scope table's parent chain.
func (t *VariableTable) Find(name string, scope ScopeId, scopes *ScopeTable) (VariableId, bool) {
	for {
		for id := len(t.vars) - 1; id >= 0; id-- {
			if t.vars[id].OwnerScope == scope && t.vars[id].Name == name {
				return VariableId(id), true
			}
		}
		parent, ok := scopes.Parent(scope)
		if !ok {
			return 0, false
		}
		scope = parent
	}
}
