// Package shared provides common utility functions used across multiple
// packages in the osgi-mock codebase.
package shared

import "strings"

// NormalizeNames trims every value, drops blanks and duplicates, and keeps
// first-seen order.
func NormalizeNames(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

// ClassNameFromDescriptor returns the class name encoded in a descriptor
// file name such as "com.acme.Foo.xml", or "" when name is not one.
func ClassNameFromDescriptor(name string) string {
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".xml") {
		return ""
	}
	return strings.TrimSuffix(name, ".xml")
}
