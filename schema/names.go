package schema

import "strings"

// JSONName converts a snake_case field name to lowerCamelCase, the default
// JSON name of a field.
func JSONName(s string) string {
	if s == "" {
		return s
	}
	// Fast path: no underscore
	if strings.IndexByte(s, '_') < 0 {
		if s[0] >= 'A' && s[0] <= 'Z' {
			return string(s[0]-'A'+'a') + s[1:]
		}
		return s
	}
	out := make([]byte, 0, len(s))
	upperNext := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			upperNext = true
			continue
		}
		if len(out) == 0 {
			// first rune lowercased
			if c >= 'A' && c <= 'Z' {
				c = c - 'A' + 'a'
			}
			out = append(out, c)
			upperNext = false
			continue
		}
		if upperNext {
			if c >= 'a' && c <= 'z' {
				c = c - 'a' + 'A'
			}
			upperNext = false
		}
		out = append(out, c)
	}
	return string(out)
}

func joinName(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "." + name
}

/*
resolveTypeName returns the fully-qualified name a type reference points to,
trying in order: a leading-dot fully-qualified name, an exact match, then the
scope and each enclosing scope up to the package root.
Ref - https://github.com/protocolbuffers/protobuf/blob/b7a5772caf08d62a20fd1bca258f501fa4db022c/src/google/protobuf/descriptor.proto#L186-L191
*/
func resolveTypeName(typeName, scope string, symbols map[string]any) (string, bool) {
	if strings.HasPrefix(typeName, ".") {
		full := strings.TrimPrefix(typeName, ".")
		_, ok := symbols[full]
		return full, ok
	}
	if full, ok := splitNameAndCheck(typeName, scope, symbols); ok {
		return full, true
	}
	// check if the entity is referenced to other packages via packageName
	if _, ok := symbols[typeName]; ok {
		return typeName, true
	}
	return "", false
}

// splitNameAndCheck appends typeName to the scope and to each outer scope in
// turn, innermost first.
func splitNameAndCheck(typeName, scope string, symbols map[string]any) (string, bool) {
	parts := strings.Split(scope, ".")
	for len(parts) > 0 && parts[0] != "" {
		candidate := strings.Join(parts, ".") + "." + typeName
		if _, ok := symbols[candidate]; ok {
			return candidate, true
		}
		// Omit the last element in each iteration as we go level above to outer entity
		parts = parts[:len(parts)-1]
	}
	return "", false
}
