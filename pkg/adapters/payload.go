package adapters

// Payload field lookup helpers. Raw input is decoded as generic JSON values;
// these helpers chain optional field access without ever panicking on
// absent keys, nulls, or mistyped intermediate nodes.

// LookupMap walks nested objects along path and returns the object at the
// end, or false when any step is absent or not an object.
func LookupMap(payload map[string]any, path ...string) (map[string]any, bool) {
	current := payload
	for _, key := range path {
		if current == nil {
			return nil, false
		}
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

// LookupValue returns the raw value at path, or false when any intermediate
// node is absent or not an object.
func LookupValue(payload map[string]any, path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	parent, ok := LookupMap(payload, path[:len(path)-1]...)
	if !ok {
		return nil, false
	}
	value, ok := parent[path[len(path)-1]]
	return value, ok
}

// LookupString returns the string at path, or false when it is absent or
// not a string.
func LookupString(payload map[string]any, path ...string) (string, bool) {
	value, ok := LookupValue(payload, path...)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	return s, ok
}

// LookupStringPtr returns a pointer to the string at path, or nil when it
// is absent, null, or not a string.
func LookupStringPtr(payload map[string]any, path ...string) *string {
	s, ok := LookupString(payload, path...)
	if !ok {
		return nil
	}
	return &s
}

// LookupStrings returns the list of strings at path. Absent or mistyped
// values yield an empty list; non-string elements are skipped.
func LookupStrings(payload map[string]any, path ...string) []string {
	value, ok := LookupValue(payload, path...)
	if !ok {
		return []string{}
	}
	raw, ok := value.([]any)
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(raw))
	for _, elem := range raw {
		if s, ok := elem.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// StringOr returns the string at path or fallback when absent or mistyped.
func StringOr(payload map[string]any, fallback string, path ...string) string {
	if s, ok := LookupString(payload, path...); ok {
		return s
	}
	return fallback
}
