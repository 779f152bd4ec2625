package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"snake case", "user_profile", "UserProfile"},
		{"kebab case", "api-client", "ApiClient"},
		{"dotted package name", "models.User", "ModelsUser"},
		{"slash separated", "pkg/models", "PkgModels"},
		{"already pascal", "UserProfile", "UserProfile"},
		{"single letter", "a", "A"},
		{"spaced words", "pet store", "PetStore"},
		{"acronym preserved", "api_URL", "ApiURL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"snake case", "user_profile", "userProfile"},
		{"pascal case", "UserProfile", "userProfile"},
		{"dotted package name", "models.User", "modelsUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCamelCase(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"pascal case", "UserProfile", "user_profile"},
		{"dotted package name", "models.User", "models_user"},
		{"kebab case", "api-client", "api_client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSnakeCase(tt.input))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Pet Store", Title("pet store"))
	assert.Equal(t, "API", Title("API"), "existing uppercase is preserved")
	assert.Equal(t, "", Title(""))
}
