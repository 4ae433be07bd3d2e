package optimizer

import (
	"sort"
)

// merge combines declarations sharing a module source into one group per source. Groups keep
// the order in which their source was first seen unless sortImports is set.
func (o *Optimizer) merge(decls []Declaration, sortImports bool) []Group {
	var groups []Group
	index := make(map[string]int) // source -> position in groups

	for _, decl := range decls {
		pos, ok := index[decl.Source]
		if !ok {
			pos = len(groups)
			index[decl.Source] = pos
			groups = append(groups, Group{Source: decl.Source})
		}
		group := &groups[pos]

		// First default and namespace win
		if decl.Default != "" {
			if group.Default == "" {
				group.Default = decl.Default
			} else if group.Default != decl.Default {
				o.logger.Debug("discarding conflicting default import",
					"source", decl.Source, "kept", group.Default, "discarded", decl.Default)
			}
		}
		if decl.Namespace != "" {
			if group.Namespace == "" {
				group.Namespace = decl.Namespace
			} else if group.Namespace != decl.Namespace {
				o.logger.Debug("discarding conflicting namespace import",
					"source", decl.Source, "kept", group.Namespace, "discarded", decl.Namespace)
			}
		}

		for _, binding := range decl.Named {
			if hasBinding(group.Named, binding.Name) {
				continue
			}
			group.Named = append(group.Named, binding)
		}
	}

	if sortImports {
		sortGroups(groups)
		for i := range groups {
			sortBindings(groups[i].Named)
		}
	}

	o.logger.Debug("merged imports", "declarations", len(decls), "groups", len(groups))
	return groups
}

// hasBinding checks if a binding with the given name is already present
func hasBinding(named []NamedBinding, name string) bool {
	for _, binding := range named {
		if binding.Name == name {
			return true
		}
	}
	return false
}

// sortGroups orders groups by module source
func sortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Source < groups[j].Source
	})
}

// sortBindings orders bindings by exported name
func sortBindings(named []NamedBinding) {
	sort.SliceStable(named, func(i, j int) bool {
		return named[i].Name < named[j].Name
	})
}
