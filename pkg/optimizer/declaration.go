package optimizer

// NamedBinding represents a single `name` or `name as alias` entry of a brace group
type NamedBinding struct {
	Name  string // exported name
	Alias string // local alias, empty if no alias
}

// Declaration represents a single recognized import line
type Declaration struct {
	OriginalText string // verbatim trimmed line, used for duplicate detection
	LineIndex    int    // position of the line in the source
	Source       string // module source, never empty
	Default      string // default binding, empty if none
	Named        []NamedBinding
	Namespace    string // alias of a `* as X` clause, empty if none
}

// Group represents the declarations of one module source rendered as a single statement
type Group struct {
	Source    string
	Default   string
	Named     []NamedBinding
	Namespace string
}

// toGroup converts a declaration into a group without any merging
func (d Declaration) toGroup() Group {
	return Group{
		Source:    d.Source,
		Default:   d.Default,
		Named:     append([]NamedBinding(nil), d.Named...),
		Namespace: d.Namespace,
	}
}

// Rules holds the optimization rules applied by Optimize
type Rules struct {
	SortImports      bool // order statements by module source
	RemoveDuplicates bool // drop repeated identical import lines
	MergeImports     bool // combine statements sharing a module source
	KeepMalformed    bool // emit unparseable import lines verbatim instead of dropping them
}
