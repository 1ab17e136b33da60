package dispatchers

// CommandSpec describes the root of a command tree.
type CommandSpec struct {
	// Name is the word that invokes the command, e.g. "/set".
	Name string
	// Aliases are alternative names.
	Aliases []string
	// CaseSensitive makes the name and aliases match exactly. By default
	// case is ignored.
	CaseSensitive bool
	Summary       string
	Category      CommandCategory
}

// Names returns the name followed by the aliases.
func (s CommandSpec) Names() []string {
	names := make([]string, 0, len(s.Aliases)+1)
	names = append(names, s.Name)
	return append(names, s.Aliases...)
}
