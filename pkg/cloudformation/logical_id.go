package cloudformation

import (
	"strings"
	"unicode"
)

// LogicalID converts a name into a string usable as a CloudFormation
// logical id. Every character that is not a letter or a digit is deleted
// and the character following an interior deletion is upper-cased.
//
//	my_subnet_in_eu-west-1a! -> mySubnetInEuWest1a
func LogicalID(name string) string {
	var b strings.Builder

	upper := false

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = b.Len() > 0
			continue
		}

		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}

		b.WriteRune(r)
	}

	return b.String()
}
