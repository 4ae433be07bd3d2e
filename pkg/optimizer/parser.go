package optimizer

import "strings"

// parseLine converts one trimmed import line into a declaration. The boolean result is false
// when the line is not a recognizable `import ... from '...'` statement.
func (o *Optimizer) parseLine(text string, index int) (Declaration, bool) {
	fromIdx := indexWord(text, keywordFrom)
	if fromIdx < 0 {
		o.logger.Debug("rejecting import line", "line", index+1, "reason", "missing from")
		return Declaration{}, false
	}

	clause := strings.TrimSpace(text[len(keywordImport):fromIdx])
	source := extractSource(strings.TrimSpace(text[fromIdx+len(keywordFrom):]))
	if source == "" {
		o.logger.Debug("rejecting import line", "line", index+1, "reason", "empty module source")
		return Declaration{}, false
	}

	decl, ok := parseClause(clause)
	if !ok {
		o.logger.Debug("rejecting import line", "line", index+1, "reason", "unrecognized clause", "clause", clause)
		return Declaration{}, false
	}
	decl.OriginalText = text
	decl.LineIndex = index
	decl.Source = source

	o.logger.Debug("parsed import line",
		"line", index+1,
		"source", decl.Source,
		"default", decl.Default,
		"namespace", decl.Namespace,
		"named", len(decl.Named),
	)
	return decl, true
}

// extractSource extracts the module source from the text following `from`
func extractSource(region string) string {
	start := strings.IndexAny(region, `'"`)
	end := strings.LastIndexAny(region, `'"`)
	if start >= 0 && end >= 0 && start < end {
		return region[start+1 : end]
	}

	// No quote pair, fall back to stripping quotes and the terminating semicolon
	trimmed := strings.TrimFunc(region, func(r rune) bool {
		return r == '\'' || r == '"' || r == ';' || isSpace(r)
	})
	if semi := strings.IndexByte(trimmed, ';'); semi >= 0 {
		return strings.TrimSpace(trimmed[:semi])
	}
	return trimmed
}

// parseClause classifies the text between `import` and `from`. Only the binding fields of the
// returned declaration are set.
func parseClause(clause string) (Declaration, bool) {
	var decl Declaration

	if clause == "" {
		return decl, false
	}

	if namespace, def, named, ok := splitNamespace(clause); ok {
		decl.Namespace = namespace
		decl.Default = def
		switch {
		case named == "":
		case strings.HasPrefix(named, "{") && strings.HasSuffix(named, "}"):
			decl.Named = parseNamed(named[1 : len(named)-1])
		case !strings.ContainsAny(named, "{}*,"):
			// A lone binding is written without braces
			decl.Named = parseNamed(named)
		default:
			return Declaration{}, false
		}
		return decl, true
	}

	switch {
	case strings.HasPrefix(clause, "{") && strings.HasSuffix(clause, "}"):
		decl.Named = parseNamed(clause[1 : len(clause)-1])
		return decl, true

	case strings.Contains(clause, "{") && strings.Contains(clause, "}"):
		// Default import followed by a brace group: React, { useState }
		open := strings.IndexByte(clause, '{')
		closing := strings.LastIndexByte(clause, '}')
		if closing < open {
			return decl, false
		}
		decl.Default = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(clause[:open]), ","))
		decl.Named = parseNamed(clause[open+1 : closing])
		return decl, true

	case !strings.ContainsAny(clause, "{}*"):
		decl.Default = clause
		return decl, true
	}

	return decl, false
}

// splitNamespace cuts a `* as NS` binding out of clause. It accepts an optional default
// binding before it (`D, * as NS`) and returns whatever follows the alias as named. ok is
// false when clause holds no well-formed namespace binding.
func splitNamespace(clause string) (namespace, def, named string, ok bool) {
	star := strings.IndexByte(clause, '*')
	if star < 0 {
		return "", "", "", false
	}

	if before := strings.TrimSpace(clause[:star]); before != "" {
		if !strings.HasSuffix(before, ",") {
			return "", "", "", false
		}
		def = strings.TrimSpace(strings.TrimSuffix(before, ","))
		if def == "" || strings.ContainsAny(def, "{},") {
			return "", "", "", false
		}
	}

	after := strings.TrimSpace(clause[star+1:])
	if !hasWordAt(after, 0, keywordAs) {
		return "", "", "", false
	}
	namespace = strings.TrimSpace(after[len(keywordAs):])
	if comma := strings.IndexByte(namespace, ','); comma >= 0 {
		named = strings.TrimSpace(namespace[comma+1:])
		namespace = strings.TrimSpace(namespace[:comma])
		if named == "" {
			return "", "", "", false
		}
	}
	if namespace == "" || strings.ContainsAny(namespace, "{}*") {
		return "", "", "", false
	}

	return namespace, def, named, true
}

// parseNamed parses the interior of a brace group into bindings. Later entries repeating a
// name already seen in the same group are ignored.
func parseNamed(inner string) []NamedBinding {
	var named []NamedBinding
	seen := make(map[string]bool)

	for _, item := range strings.Split(inner, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		binding := NamedBinding{Name: item}
		if asIdx := indexWordFrom(item, keywordAs, 1); asIdx >= 0 {
			binding.Name = strings.TrimSpace(item[:asIdx])
			binding.Alias = strings.TrimSpace(item[asIdx+len(keywordAs):])
		}
		if binding.Name == "" || seen[binding.Name] {
			continue
		}
		seen[binding.Name] = true
		named = append(named, binding)
	}

	return named
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}
