package subst

import "os"

// VariableProvider resolves a variable name outside the properties store.
type VariableProvider interface {
	LookupVar(name string) (string, bool)
}

// Lookup is the read view of a properties store used for shadowing.
type Lookup interface {
	Get(key string) string
}

type environment struct{}

// Environment returns a VariableProvider backed by the process environment.
func Environment() VariableProvider {
	return environment{}
}

func (environment) LookupVar(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapProvider serves variables from a fixed map.
type MapProvider map[string]string

// LookupVar implements VariableProvider.
func (m MapProvider) LookupVar(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
