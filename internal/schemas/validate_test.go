package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["title", "company"],
	"properties": {
		"title": { "type": "string", "minLength": 1 },
		"company": { "type": "string", "minLength": 1 },
		"description": { "type": "string" }
	},
	"additionalProperties": false
}`

func TestValidateJSONString_Valid(t *testing.T) {
	doc := `{"title": "Senior Frontend Developer", "company": "Acme Corp", "description": "React work"}`

	err := ValidateJSONString(testSchema, doc)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	doc := `{"description": "no title, no company"}`

	err := ValidateJSONString(testSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	doc := `{"title": 42, "company": "Acme Corp"}`

	err := ValidateJSONString(testSchema, doc)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "title", validationErr.Errors[0].Field)
}

func TestValidateJSONString_UnknownField(t *testing.T) {
	doc := `{"title": "x", "company": "y", "salary": 100}`

	err := ValidateJSONString(testSchema, doc)
	require.Error(t, err)
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(testSchema, "{ not json }")
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSON_Files(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	validDoc := filepath.Join(tmpDir, "valid.json")
	require.NoError(t, os.WriteFile(validDoc, []byte(`{"title": "a", "company": "b"}`), 0644))
	assert.NoError(t, ValidateJSON(schemaPath, validDoc))

	invalidDoc := filepath.Join(tmpDir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidDoc, []byte(`{}`), 0644))

	err := ValidateJSON(schemaPath, invalidDoc)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0644))

	err := ValidateJSON("does-not-exist.json", filepath.Join(tmpDir, "also-missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, "does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath(t *testing.T) {
	// The real schemas live two levels up from this package.
	resolved := ResolveSchemaPath(filepath.Join("schemas", "resume.schema.json"))
	require.NotEmpty(t, resolved)
	assert.True(t, filepath.IsAbs(resolved))

	assert.Empty(t, ResolveSchemaPath("schemas/no-such.schema.json"))
}
