// Package validation holds value checks shared by configuration loaders.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ColorField names one color setting for error reporting.
type ColorField struct {
	Name  string
	Value string
}

// ValidateHexColors returns one message per field that is not a #RRGGBB
// color, each prefixed with prefix.
func ValidateHexColors(prefix string, fields ...ColorField) []string {
	var errs []string
	for _, f := range fields {
		if !IsHexColor(f.Value) {
			errs = append(errs, prefix+"."+f.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
