package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefs = []FieldDefinition{
	{Key: "employees", Label: "Funcionários", Type: FieldNumber},
	{Key: "site", Label: "Site", Type: FieldText, Required: true},
	{Key: "plan", Label: "Plano", Type: FieldSelect, Options: []string{"basic", "pro"}},
	{Key: "notes", Label: "Notas", Type: FieldTextarea},
}

func TestValidateCustomFieldsAccepts(t *testing.T) {
	var values CustomFields
	require.NoError(t, json.Unmarshal([]byte(`{"employees": 12, "site": "acme.com", "plan": "pro", "notes": "ok"}`), &values))
	assert.NoError(t, ValidateCustomFields(testDefs, values))
}

func TestValidateCustomFieldsRejects(t *testing.T) {
	values := CustomFields{
		"employees": "twelve",
		"plan":      "enterprise",
		"unknown":   "x",
	}
	err := ValidateCustomFields(testDefs, values)
	fe, ok := IsFieldErrors(err)
	require.True(t, ok)

	byField := map[string]string{}
	for _, e := range fe {
		byField[e.Field] = e.Message
	}
	assert.Equal(t, "must be a number", byField["employees"])
	assert.Contains(t, byField["plan"], "must be one of")
	assert.Equal(t, "is not a known field", byField["unknown"])
	assert.Equal(t, "is required", byField["site"])
}

func TestValidateFieldDefinitions(t *testing.T) {
	assert.NoError(t, ValidateFieldDefinitions(testDefs))

	err := ValidateFieldDefinitions([]FieldDefinition{
		{Key: "a", Type: FieldText},
		{Key: "a", Type: FieldText},
		{Key: "b", Type: FieldSelect},
		{Key: "c", Type: "date"},
	})
	fe, ok := IsFieldErrors(err)
	require.True(t, ok)
	assert.Len(t, fe, 3)
}

func TestCustomFieldsScanValue(t *testing.T) {
	cf := CustomFields{"site": "acme.com"}
	v, err := cf.Value()
	require.NoError(t, err)

	var back CustomFields
	require.NoError(t, back.Scan(v))
	assert.Equal(t, "acme.com", back["site"])

	require.NoError(t, back.Scan(nil))
	assert.Empty(t, back)
}
