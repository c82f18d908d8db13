package list

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes l as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.nonNilSlice())
}

// UnmarshalJSON replaces the elements of l with those of a JSON array. A JSON
// null decodes to an empty list.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	l.Replace(FromSlice(s))
	return nil
}

// MarshalYAML encodes l as a YAML sequence.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.nonNilSlice(), nil
}

// UnmarshalYAML replaces the elements of l with those of a YAML sequence.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var s []T
	if err := value.Decode(&s); err != nil {
		return err
	}
	l.Replace(FromSlice(s))
	return nil
}

// nonNilSlice is like Slice, but returns an empty slice instead of nil so
// that an empty list is encoded as an empty sequence.
func (l *List[T]) nonNilSlice() []T {
	if s := l.Slice(); s != nil {
		return s
	}
	return []T{}
}
