package parser

import (
	"regexp"
	"sort"
	"strings"
)

// ParsedAttributes holds widget attributes parsed from a host string.
type ParsedAttributes struct {
	Values map[string]string // attribute name -> normalized reference
	Text   string            // everything that was not an attribute
	Errors []string
}

var attrRegex = regexp.MustCompile(`\b([a-zA-Z][a-zA-Z0-9]*)=(\S+)`)

// ParseAttributes extracts resource attributes from a widget definition
// Syntax: "Label text textColor=@color/brand background=@3"
func ParseAttributes(input string) ParsedAttributes {
	result := ParsedAttributes{
		Values: map[string]string{},
		Errors: []string{},
	}

	for _, match := range attrRegex.FindAllStringSubmatch(input, -1) {
		name, value := match[1], match[2]
		normalized, err := NormalizeRef(value)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid value for "+name+": "+err.Error())
			continue
		}
		if _, dup := result.Values[name]; dup {
			result.Errors = append(result.Errors, "Duplicate attribute "+name)
			continue
		}
		result.Values[name] = normalized
	}
	// Remove from text
	input = attrRegex.ReplaceAllString(input, "")

	// Clean up the text (remove extra spaces)
	result.Text = strings.Join(strings.Fields(input), " ")
	return result
}

// Names returns the parsed attribute names in sorted order.
func (p ParsedAttributes) Names() []string {
	names := make([]string, 0, len(p.Values))
	for name := range p.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
