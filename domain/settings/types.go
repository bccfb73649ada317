package settings

import "errors"

const (
	SchemaID      = "org.x.clicky"
	KeyPreferDark = "prefer-dark-mode"
	memoryBackend = "memory"
	sqliteBackend = "sqlite"
)

// ErrUnknownKey is returned for keys the schema does not declare.
var ErrUnknownKey = errors.New("settings: unknown key")

// Backend is a persisted key-value store for application settings.
type Backend interface {
	Bool(key string) (bool, error)
	SetBool(key string, v bool) error
}

// Schema names a settings namespace and the defaults of its keys.
type Schema struct {
	ID       string
	Defaults map[string]bool
}

// ClickySchema is the application's only schema.
func ClickySchema() Schema {
	return Schema{ID: SchemaID, Defaults: map[string]bool{KeyPreferDark: false}}
}

func (s Schema) lookup(key string) (bool, error) {
	def, ok := s.Defaults[key]
	if !ok {
		return false, ErrUnknownKey
	}
	return def, nil
}
