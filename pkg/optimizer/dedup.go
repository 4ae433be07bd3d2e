package optimizer

import "sort"

// dedupe keeps declarations as separate statements, optionally dropping repeated lines and
// ordering by module source
func (o *Optimizer) dedupe(decls []Declaration, removeDuplicates, sortImports bool) []Group {
	kept := make([]Declaration, 0, len(decls))
	seen := make(map[string]bool) // Track which lines we've seen

	for _, decl := range decls {
		if removeDuplicates {
			if seen[decl.OriginalText] {
				o.logger.Debug("removing duplicate import", "line", decl.LineIndex+1, "source", decl.Source)
				continue
			}
			seen[decl.OriginalText] = true
		}
		kept = append(kept, decl)
	}

	if sortImports {
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Source < kept[j].Source
		})
	}

	groups := make([]Group, 0, len(kept))
	for _, decl := range kept {
		groups = append(groups, decl.toGroup())
	}
	return groups
}
