package optimizer

import (
	"fmt"
	"strings"
)

// formatGroups renders one import statement per group, skipping groups without bindings
func formatGroups(groups []Group) []string {
	lines := make([]string, 0, len(groups))
	for _, group := range groups {
		clause := formatClause(group)
		if clause == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("import %s from '%s';", clause, group.Source))
	}
	return lines
}

// formatClause renders the bindings of a group: default, namespace, then named imports
func formatClause(group Group) string {
	var parts []string

	if group.Default != "" {
		parts = append(parts, group.Default)
	}

	if group.Namespace != "" {
		parts = append(parts, "* as "+group.Namespace)
	}

	if len(group.Named) > 0 {
		named := make([]string, 0, len(group.Named))
		for _, binding := range group.Named {
			named = append(named, formatBinding(binding))
		}
		if len(named) == 1 {
			parts = append(parts, named[0])
		} else {
			parts = append(parts, "{ "+strings.Join(named, ", ")+" }")
		}
	}

	return strings.Join(parts, ", ")
}

// formatBinding renders `name` or `name as alias`
func formatBinding(binding NamedBinding) string {
	if binding.Alias == "" {
		return binding.Name
	}
	return binding.Name + " as " + binding.Alias
}

// assemble joins the import lines and the trailing body with a single blank line between them
func assemble(imports, body []string) string {
	var buf strings.Builder

	buf.WriteString(strings.Join(imports, "\n"))

	if len(body) > 0 {
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(strings.Join(body, "\n"))
	}

	return buf.String()
}
