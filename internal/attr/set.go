package attr

// Property names recognized in host attributes.
const (
	TextColor     = "textColor"
	TextColorHint = "textColorHint"
	Background    = "background"
)

// Set holds a widget's overrides by property name. It is filled once at
// construction and read-only afterwards.
type Set map[string]Override

// Get returns the override for property, Unset if none.
func (s Set) Get(property string) Override {
	if s == nil {
		return Unset
	}
	return s[property]
}

// RefLookup maps a resource reference found in host attributes to its
// identifier.
type RefLookup func(ref string) (int, error)

// Extract builds a Set from raw host attributes. Only names listed in
// properties are considered; values are resolved through lookup. Attributes
// that fail to resolve are returned as errors and left unset.
func Extract(raw map[string]string, lookup RefLookup, properties ...string) (Set, []error) {
	set := make(Set, len(properties))
	var errs []error
	for _, name := range properties {
		ref, ok := raw[name]
		if !ok || ref == "" {
			continue
		}
		id, err := lookup(ref)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set[name] = Explicit(id)
	}
	return set, errs
}
