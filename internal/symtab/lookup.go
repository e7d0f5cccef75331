package symtab

// CheckUpwardsForDeclaration implements spec's check_upwards_for_declaration:
// search scope's own rows, then ascend to the parent scope via the anchor
// row that introduced the current scope, repeating until a match is found
// or the top scope is exhausted. Returns the closest (innermost) match.
func CheckUpwardsForDeclaration(scope *Scope, name string) *Row {
	for s := scope; s != nil; s = parentOf(s) {
		for i := len(s.Rows) - 1; i >= 0; i-- {
			if s.Rows[i].Name == name && s.Rows[i].Kind != Pseudo {
				return s.Rows[i]
			}
		}
	}
	return nil
}

// CheckForFunctionDeclaration searches only the top scope, matching spec's
// check_for_function_declaration used for call-identifier resolution.
func CheckForFunctionDeclaration(table *Table, name string) *Row {
	for _, r := range table.Top.Rows {
		if r.Kind == Function && r.Name == name {
			return r
		}
	}
	return nil
}

func parentOf(s *Scope) *Scope {
	if s.Anchor == nil {
		return nil
	}
	return s.Anchor.Owner
}
