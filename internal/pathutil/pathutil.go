// Package pathutil provides path template helpers shared by the
// builder package.
package pathutil

import "regexp"

// paramRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var paramRegex = regexp.MustCompile(`\{([^}]+)\}`)

// Placeholders returns the {name} placeholders of a path template in
// order of appearance. Duplicates are preserved as encountered.
func Placeholders(path string) []string {
	matches := paramRegex.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
