package layout

// Edges holds one Value per addressable edge, indexed by Edge.
type Edges [EdgeCount]Value

// UndefinedEdges returns Edges with every entry unset.
func UndefinedEdges() Edges {
	var e Edges
	for i := range e {
		e[i] = UndefinedValue()
	}
	return e
}

// Computed resolves the value for edge, falling back from the exact edge
// to the vertical/horizontal shorthand and then to EdgeAll. Start and End
// never fall back to def: they override left/right only when set.
func (e *Edges) Computed(edge Edge, def Value) Value {
	if e[edge].IsDefined() {
		return e[edge]
	}

	if (edge == EdgeTop || edge == EdgeBottom) && e[EdgeVertical].IsDefined() {
		return e[EdgeVertical]
	}

	if (edge == EdgeLeft || edge == EdgeRight || edge == EdgeStart || edge == EdgeEnd) &&
		e[EdgeHorizontal].IsDefined() {
		return e[EdgeHorizontal]
	}

	if e[EdgeAll].IsDefined() {
		return e[EdgeAll]
	}

	if edge == EdgeStart || edge == EdgeEnd {
		return UndefinedValue()
	}

	return def
}

// Equal compares every entry with Value.Equal.
func (e *Edges) Equal(o *Edges) bool {
	for i := range e {
		if !e[i].Equal(o[i]) {
			return false
		}
	}
	return true
}
