package urlparser

import (
	"errors"
	"maps"
	"slices"
)

// ParametersMap holds the typed values extracted from a path, keyed by parameter name.
// It is filled by Template.Match and read through the typed getters.
// A ParametersMap is not safe for concurrent use.
type ParametersMap struct {
	params map[string]ParameterValue
}

// NewParametersMap creates an empty map.
func NewParametersMap() *ParametersMap {
	return &ParametersMap{params: make(map[string]ParameterValue, 4)}
}

// AddParameter coerces raw to typ and stores it under name, replacing any earlier value.
// Nothing is stored when coercion fails.
func (pm *ParametersMap) AddParameter(name string, typ ParameterType, raw string) error {
	v, err := Coerce(typ, raw)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Name = name
		}
		return err
	}

	if pm.params == nil {
		pm.params = make(map[string]ParameterValue, 4)
	}
	pm.params[name] = v
	return nil
}

// AddParameterNamed is like AddParameter with the type given by its template name, e.g. "INT".
func (pm *ParametersMap) AddParameterNamed(name string, typeName string, raw string) error {
	typ, err := ParseParameterType(typeName)
	if err != nil {
		return err
	}
	return pm.AddParameter(name, typ, raw)
}

// ParameterExists reports whether name was matched, whatever its type.
func (pm *ParametersMap) ParameterExists(name string) bool {
	_, ok := pm.params[name]
	return ok
}

// Get returns the stored value for name.
func (pm *ParametersMap) Get(name string) (ParameterValue, bool) {
	v, ok := pm.params[name]
	return v, ok
}

// Len returns the number of stored parameters.
func (pm *ParametersMap) Len() int {
	return len(pm.params)
}

// Names returns the stored parameter names in sorted order.
func (pm *ParametersMap) Names() []string {
	return slices.Sorted(maps.Keys(pm.params))
}

// GetString returns the value of a STRING parameter.
func (pm *ParametersMap) GetString(name string) (string, error) {
	v, err := pm.lookup(name, TypeString)
	if err != nil {
		return "", err
	}
	return v.str, nil
}

// GetInt returns the value of an INT parameter.
func (pm *ParametersMap) GetInt(name string) (int, error) {
	v, err := pm.lookup(name, TypeInt)
	if err != nil {
		return 0, err
	}
	return v.num, nil
}

// GetBoolean returns the value of a BOOLEAN parameter.
func (pm *ParametersMap) GetBoolean(name string) (bool, error) {
	v, err := pm.lookup(name, TypeBoolean)
	if err != nil {
		return false, err
	}
	return v.flag, nil
}

// lookup checks presence first, then the stored type. Values are never converted at read time.
func (pm *ParametersMap) lookup(name string, want ParameterType) (ParameterValue, error) {
	v, ok := pm.params[name]
	if !ok {
		return ParameterValue{}, &Error{Kind: KindNotProvided, Name: name, Expected: want}
	}

	if v.typ != want {
		return ParameterValue{}, &Error{Kind: KindIncompatibleType, Name: name, Expected: want, Actual: v.typ}
	}

	return v, nil
}
