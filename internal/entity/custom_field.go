package entity

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldTextarea FieldType = "textarea"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldNumber, FieldSelect, FieldTextarea:
		return true
	}
	return false
}

// FieldDefinition declara o formato permitido de um campo personalizado do lead.
type FieldDefinition struct {
	Key      string    `json:"key" validate:"required,max=64"`
	Label    string    `json:"label" validate:"required,max=120"`
	Type     FieldType `json:"type" validate:"required,oneof=text number select textarea"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
	Position int       `json:"position"`
}

// CustomFields é o mapa nome-do-campo -> valor, validado contra as definições.
type CustomFields map[string]any

func (cf CustomFields) Value() (driver.Value, error) {
	if cf == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(cf)
}

func (cf *CustomFields) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*cf = CustomFields{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("custom_fields: unsupported type %T", src)
	}
	out := CustomFields{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*cf = out
	return nil
}

func ValidateFieldDefinitions(defs []FieldDefinition) error {
	var errs FieldErrors
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		key := strings.TrimSpace(d.Key)
		if key == "" {
			errs = append(errs, FieldError{"key", "is required"})
			continue
		}
		if seen[key] {
			errs = append(errs, FieldError{key, "is duplicated"})
		}
		seen[key] = true
		if !d.Type.Valid() {
			errs = append(errs, FieldError{key, "has invalid type"})
		}
		if d.Type == FieldSelect && len(d.Options) == 0 {
			errs = append(errs, FieldError{key, "select needs at least one option"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateCustomFields confere cada valor contra a definição do campo.
// Chaves desconhecidas são rejeitadas.
func ValidateCustomFields(defs []FieldDefinition, values CustomFields) error {
	byKey := make(map[string]FieldDefinition, len(defs))
	for _, d := range defs {
		byKey[d.Key] = d
	}

	var errs FieldErrors
	for key, v := range values {
		def, ok := byKey[key]
		if !ok {
			errs = append(errs, FieldError{key, "is not a known field"})
			continue
		}
		if v == nil {
			continue
		}
		switch def.Type {
		case FieldNumber:
			if !isNumber(v) {
				errs = append(errs, FieldError{key, "must be a number"})
			}
		case FieldText, FieldTextarea:
			if _, ok := v.(string); !ok {
				errs = append(errs, FieldError{key, "must be a string"})
			}
		case FieldSelect:
			s, ok := v.(string)
			if !ok || !contains(def.Options, s) {
				errs = append(errs, FieldError{key, "must be one of " + strings.Join(def.Options, ", ")})
			}
		}
	}

	for _, d := range defs {
		if !d.Required {
			continue
		}
		v, ok := values[d.Key]
		if !ok || v == nil {
			errs = append(errs, FieldError{d.Key, "is required"})
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			errs = append(errs, FieldError{d.Key, "is required"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func isNumber(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, json.Number:
		return true
	}
	return false
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// IsFieldErrors extrai a lista de erros de campo, se houver.
func IsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

type FieldDefinitionRepositoryInterface interface {
	List(ctx context.Context, ownerID string) ([]FieldDefinition, error)
	Replace(ctx context.Context, ownerID string, defs []FieldDefinition) error
}
