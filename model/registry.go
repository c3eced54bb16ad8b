package model

// A Registry collects the models of a program and indexes them by name.
type Registry struct {
	models    []Model
	nameIndex map[string]int
}

// NewRegistry creates a new Registry.
func NewRegistry() *Registry {
	return &Registry{
		nameIndex: make(map[string]int),
	}
}

// Register registers a model with the registry. It panics if a model
// with the same name is already registered.
func (r *Registry) Register(m Model) {
	name := m.Name()
	if _, ok := r.nameIndex[name]; ok {
		panic("model " + name + " already registered")
	}

	r.models = append(r.models, m)
	r.nameIndex[name] = len(r.models) - 1
}

// ModelByName returns the model with the given name, or nil if no such
// model is registered.
func (r *Registry) ModelByName(name string) Model {
	i, ok := r.nameIndex[name]
	if !ok {
		return nil
	}

	return r.models[i]
}

// Models returns the registered models in registration order.
func (r *Registry) Models() []Model {
	models := make([]Model, len(r.models))
	copy(models, r.models)

	return models
}
