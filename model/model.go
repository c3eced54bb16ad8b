// Package model provides a base for scientific models whose parameters
// are named, bounds-checked, and exposed through key-based accessors.
package model

import (
	"fmt"
	"strings"

	"github.com/statforge/parametric/hooking"
	"github.com/statforge/parametric/param"
)

// HookPosParamSet marks when a parameter has been assigned a new value.
// The hook context carries the canonical parameter name as Item and the
// assigned value as Detail.
var HookPosParamSet = &hooking.HookPos{Name: "ParamSet"}

// A Model is a named collection of parameters. Parameter names and alias
// names resolve through Get and Set; reads return the parameter's current
// value, writes validate bounds and trigger the model's Cacher.
type Model interface {
	hooking.Hookable
	fmt.Stringer

	// Name returns the name of the model.
	Name() string

	// ID returns the unique instance id of the model.
	ID() string

	// Get returns the current value of the named parameter.
	Get(name string) (float64, error)

	// Set assigns a new value to the named parameter.
	Set(name string, value any) error

	// Param returns the named Parameter object, permitting direct
	// inspection of bounds.
	Param(name string) (*param.Parameter, error)

	// Params returns the full ordered parameter table.
	Params() *param.Table
}

// A Cacher recomputes derived, expensive quantities after a parameter
// update. It is invoked exactly once per successful assignment with the
// canonical name of the just-updated parameter, or with an empty name
// when everything should be recomputed.
//
// This is the primary extension point. Implementations should decide
// which cached quantities actually depend on the changed parameter so
// that per-parameter recomputation stays cheap.
type Cacher interface {
	Cache(name string)
}

// Base implements Model. Concrete models embed a *Base built with a
// Builder.
type Base struct {
	hooking.HookableBase

	name    string
	id      string
	params  *param.Table
	aliases *aliasTable
	cacher  Cacher
}

// Name returns the name of the model.
func (b *Base) Name() string {
	return b.name
}

// ID returns the unique instance id of the model.
func (b *Base) ID() string {
	return b.id
}

// Get returns the current value of the named parameter. The name may be
// an alias.
func (b *Base) Get(name string) (float64, error) {
	p, err := b.Param(name)
	if err != nil {
		return 0, err
	}

	return p.Value(), nil
}

// Param returns the named Parameter object. The name may be an alias.
func (b *Base) Param(name string) (*param.Parameter, error) {
	p, ok := b.params.Get(b.resolve(name))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchParam, name)
	}

	return p, nil
}

// Params returns the full ordered mapping from parameter name to
// Parameter object.
func (b *Base) Params() *param.Table {
	return b.params
}

// Aliases returns the alias names in declaration order.
func (b *Base) Aliases() []string {
	return b.aliases.names()
}

// Set assigns a new value to the named parameter, validating it against
// the parameter's bounds. The name may be an alias. After a successful
// assignment the Cacher is invoked with the canonical parameter name,
// and hooks fire at HookPosParamSet.
func (b *Base) Set(name string, value any) error {
	canonical := b.resolve(name)

	p, ok := b.params.Get(canonical)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchParam, name)
	}

	if err := p.SetValue(value); err != nil {
		return err
	}

	if b.cacher != nil {
		b.cacher.Cache(canonical)
	}

	if b.NumHooks() > 0 {
		b.InvokeHook(hooking.HookCtx{
			Domain: b,
			Pos:    HookPosParamSet,
			Item:   canonical,
			Detail: value,
		})
	}

	return nil
}

// resolve consults the alias table once before the parameter lookup.
func (b *Base) resolve(name string) string {
	if target, ok := b.aliases.resolve(name); ok {
		return target
	}

	return name
}

// String lists the model name and one aligned row per parameter in
// declaration order.
func (b *Base) String() string {
	var sb strings.Builder

	sb.WriteString(b.name)
	sb.WriteString(":\n  Parameters:")

	names := b.params.Names()
	if len(names) == 0 {
		sb.WriteString("\n")
		return sb.String()
	}

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	for _, name := range names {
		p, _ := b.params.Get(name)
		fmt.Fprintf(&sb, "\n    %-*s : %s", width, name, p)
	}

	return sb.String()
}
