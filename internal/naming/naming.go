// Package naming provides shared case conversion utilities used when
// deriving component schema names from Go types.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser is reused across calls; cases.Title is not cheap to construct.
var titleCaser = cases.Title(language.English, cases.NoLower)

// ToPascalCase converts a string to PascalCase. The input is split on
// separators (underscore, hyphen, dot, slash, whitespace) and each
// word is title-cased.
// Example: "user_profile" -> "UserProfile"
// Example: "models.User" -> "ModelsUser"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for _, word := range strings.FieldsFunc(s, isSeparator) {
		result.WriteString(Title(word))
	}
	return result.String()
}

// isSeparator reports whether a rune splits words for case conversion.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || r == '/' || unicode.IsSpace(r)
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// ToSnakeCase converts a string to snake_case.
// Uppercase letters are prefixed with underscore and lowercased.
// Existing separators (hyphen, dot, slash) are converted to underscores.
// Example: "models.UserProfile" -> "models_user_profile"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// Title converts the first letter of each word to uppercase using
// proper Unicode title casing (strings.Title is deprecated).
// Example: "pet store" -> "Pet Store"
func Title(s string) string {
	return titleCaser.String(s)
}
