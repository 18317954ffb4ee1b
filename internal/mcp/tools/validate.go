package tools

import (
	"slices"
	"sort"
)

// Validate checks a tool call against the catalog without contacting the
// upstream. It applies the same argument rules as the handlers, so a call that
// passes here only fails later for upstream or transport reasons.
func Validate(name string, args map[string]any) error {
	n, err := ParseName(name)
	if err != nil {
		return err
	}
	for _, tool := range Catalog() {
		if tool.Name != string(n) {
			continue
		}
		required := tool.InputSchema.Required
		for _, key := range required {
			if _, err := requireString(n, args, key); err != nil {
				return err
			}
		}

		optional := make([]string, 0, len(tool.InputSchema.Properties))
		for key := range tool.InputSchema.Properties {
			if !slices.Contains(required, key) {
				optional = append(optional, key)
			}
		}
		sort.Strings(optional)
		for _, key := range optional {
			if _, err := optionalString(n, args, key); err != nil {
				return err
			}
		}
		return nil
	}
	return &UnknownToolError{Name: name}
}
