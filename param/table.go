package param

// A Table is an insertion-ordered mapping from parameter name to
// Parameter.
type Table struct {
	names  []string
	index  map[string]int
	params []*Parameter
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		index: make(map[string]int),
	}
}

// Add declares a parameter under the given name. It panics if the name
// is already declared.
func (t *Table) Add(name string, p *Parameter) {
	if _, ok := t.index[name]; ok {
		panic("parameter " + name + " already declared")
	}

	t.names = append(t.names, name)
	t.params = append(t.params, p)
	t.index[name] = len(t.params) - 1
}

// Get returns the parameter declared under the given name.
func (t *Table) Get(name string) (*Parameter, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}

	return t.params[i], true
}

// Names returns the parameter names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)

	return names
}

// Len returns the number of declared parameters.
func (t *Table) Len() int {
	return len(t.params)
}

// Clone returns a Table with independent copies of every parameter, in
// the same order.
func (t *Table) Clone() *Table {
	c := NewTable()
	for i, name := range t.names {
		c.Add(name, t.params[i].Clone())
	}

	return c
}
