package emitter

// scope is one set of names bound in a lexical scope.
type scope map[string]struct{}

// pushScope opens a fresh scope and returns the matching close function, so
// call sites can pair entry and exit with defer.
func (e *Emitter) pushScope() func() {
	e.scopes = append(e.scopes, scope{})
	return e.popScope
}

func (e *Emitter) popScope() {
	if len(e.scopes) > 1 {
		e.scopes = e.scopes[:len(e.scopes)-1]
	}
}

// declare records a name as bound in the innermost scope.
func (e *Emitter) declare(name string) {
	e.scopes[len(e.scopes)-1][name] = struct{}{}
}

// isDeclared reports whether name is bound in any active scope. The whole
// stack is searched, not just the innermost scope: re-declaring a name that
// is visible anywhere is treated as reassignment, matching the source
// language's single-pass re-binding semantics.
func (e *Emitter) isDeclared(name string) bool {
	for _, s := range e.scopes {
		if _, ok := s[name]; ok {
			return true
		}
	}
	return false
}
