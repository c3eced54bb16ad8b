package model

import "fmt"

// Serialize returns the current parameter values as a plain map, keyed
// by canonical parameter name. Integral parameters serialize as int64.
func (b *Base) Serialize() (map[string]any, error) {
	data := make(map[string]any, b.params.Len())

	for _, name := range b.params.Names() {
		p, _ := b.params.Get(name)
		if p.Integral() {
			data[name] = p.Int()
		} else {
			data[name] = p.Value()
		}
	}

	return data, nil
}

// Deserialize assigns the values in data to the named parameters through
// Set, so bounds are validated and the Cacher is invoked per parameter.
// Keys may be aliases. A key that does not resolve fails the whole call;
// keys before it have already been assigned.
func (b *Base) Deserialize(data map[string]any) error {
	// Apply declared names first, in declaration order, so repeated
	// round trips behave deterministically.
	applied := make(map[string]bool, len(data))

	for _, name := range b.params.Names() {
		v, ok := data[name]
		if !ok {
			continue
		}

		if err := b.Set(name, v); err != nil {
			return err
		}

		applied[name] = true
	}

	for _, alias := range b.aliases.names() {
		v, ok := data[alias]
		if !ok {
			continue
		}

		if err := b.Set(alias, v); err != nil {
			return err
		}

		applied[alias] = true
	}

	for key := range data {
		if !applied[key] {
			return fmt.Errorf("%w: %s", ErrNoSuchParam, key)
		}
	}

	return nil
}
