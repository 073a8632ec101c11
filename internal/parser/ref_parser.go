package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	refNameRegex = regexp.MustCompile(`^@color/([a-z][a-z0-9_]*)$`)
	refIDRegex   = regexp.MustCompile(`^@(\d+)$`)
)

// Ref is a resource reference found in a widget attribute. Exactly one of ID
// and Name is set.
type Ref struct {
	ID   int
	Name string
}

// ByName reports whether the reference names a resource rather than giving
// its numeric ID.
func (r Ref) ByName() bool { return r.Name != "" }

func (r Ref) String() string {
	if r.ByName() {
		return "@color/" + r.Name
	}
	return "@" + strconv.Itoa(r.ID)
}

// NormalizeRef normalizes resource references to lowercase form
// Accepts formats like:
// - "@color/Brand", "@COLOR/brand" -> "@color/brand"
// - "@12" -> "@12"
// Returns error if format is invalid
func NormalizeRef(ref string) (string, error) {
	r, err := ParseRef(ref)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// ParseRef parses "@color/<name>" or "@<id>".
func ParseRef(ref string) (Ref, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))

	if m := refIDRegex.FindStringSubmatch(ref); m != nil {
		id, err := strconv.Atoi(m[1])
		if err != nil || id <= 0 {
			return Ref{}, fmt.Errorf("invalid resource id %q", ref)
		}
		return Ref{ID: id}, nil
	}
	if m := refNameRegex.FindStringSubmatch(ref); m != nil {
		return Ref{Name: m[1]}, nil
	}
	return Ref{}, fmt.Errorf("invalid resource reference %q. Use: @color/name or @123", ref)
}

// NormalizeName lowercases and validates a resource name.
func NormalizeName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !refNameRegex.MatchString("@color/" + name) {
		return "", fmt.Errorf("invalid resource name %q. Use letters, digits and underscores, starting with a letter", name)
	}
	return name, nil
}

// IsValidRef checks if a string matches a resource reference format
func IsValidRef(ref string) bool {
	_, err := ParseRef(ref)
	return err == nil
}
