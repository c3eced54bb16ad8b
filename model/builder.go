package model

import (
	"fmt"
	"reflect"

	"github.com/rs/xid"

	"github.com/statforge/parametric/param"
)

// Builder can help building models.
type Builder struct {
	name       string
	cacher     Cacher
	paramNames []string
	params     []*param.Parameter
	aliases    []aliasDecl
	inits      []initialValue
}

type aliasDecl struct {
	alias  string
	target string
}

type initialValue struct {
	name  string
	value any
}

// MakeBuilder creates a Builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithName sets the name of the model. When no name is given, the model
// is named after the concrete type of its Cacher.
func (b Builder) WithName(name string) Builder {
	b.name = name
	return b
}

// WithCacher attaches the Cacher invoked after every parameter update.
func (b Builder) WithCacher(c Cacher) Builder {
	b.cacher = c
	return b
}

// WithParam declares a parameter. Declaration order is preserved. The
// parameter is copied, so each built model owns its values.
func (b Builder) WithParam(name string, p *param.Parameter) Builder {
	b.paramNames = append(b.paramNames, name)
	b.params = append(b.params, p)

	return b
}

// WithAlias declares an alternate name for a declared parameter. The
// target must be a parameter name, not another alias.
func (b Builder) WithAlias(alias, target string) Builder {
	b.aliases = append(b.aliases, aliasDecl{alias: alias, target: target})
	return b
}

// WithInitialValue assigns a value to a parameter at build time. The
// name may be an alias. Initial values are applied in declaration order
// through Set, so bounds are checked and the Cacher is invoked.
func (b Builder) WithInitialValue(name string, value any) Builder {
	b.inits = append(b.inits, initialValue{name: name, value: value})
	return b
}

// Build creates the model. It fails if an alias target is not a declared
// parameter or if an initial value's name does not resolve; initial
// values before the failing one have already been assigned.
func (b Builder) Build() (*Base, error) {
	m := &Base{
		id:      xid.New().String(),
		name:    b.modelName(),
		params:  param.NewTable(),
		aliases: newAliasTable(),
		cacher:  b.cacher,
	}

	for i, name := range b.paramNames {
		m.params.Add(name, b.params[i].Clone())
	}

	for _, a := range b.aliases {
		if _, ok := m.params.Get(a.target); !ok {
			return nil, fmt.Errorf("%w: alias %s -> %s",
				ErrNoSuchParam, a.alias, a.target)
		}

		m.aliases.add(a.alias, a.target)
	}

	for _, init := range b.inits {
		if err := m.Set(init.name, init.value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (b Builder) modelName() string {
	if b.name != "" {
		return b.name
	}

	if b.cacher != nil {
		t := reflect.TypeOf(b.cacher)
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}

		// Anonymous types have no name.
		if name := t.Name(); name != "" {
			return name
		}
	}

	return "Model"
}
