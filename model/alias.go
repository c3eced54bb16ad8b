package model

// An aliasTable is an insertion-ordered mapping from alternate parameter
// name to canonical parameter name. It is consulted exactly once per
// lookup; an alias pointing at another alias does not resolve further.
type aliasTable struct {
	aliases []string
	targets map[string]string
}

func newAliasTable() *aliasTable {
	return &aliasTable{
		targets: make(map[string]string),
	}
}

func (t *aliasTable) add(alias, target string) {
	if _, ok := t.targets[alias]; ok {
		panic("alias " + alias + " already declared")
	}

	t.aliases = append(t.aliases, alias)
	t.targets[alias] = target
}

func (t *aliasTable) resolve(name string) (string, bool) {
	target, ok := t.targets[name]
	return target, ok
}

func (t *aliasTable) names() []string {
	names := make([]string, len(t.aliases))
	copy(names, t.aliases)

	return names
}
