package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategorySettings                      // Session settings: /set
	CategoryCompute                       // Arithmetic and number helpers
	CategoryText                          // Echo, grep and other text helpers
	CategoryConfig                        // Persistent configuration
	CategorySession                       // History, help, quit
)

func (c CommandCategory) String() string {
	switch c {
	case CategorySettings:
		return "session settings"
	case CategoryCompute:
		return "numbers"
	case CategoryText:
		return "text"
	case CategoryConfig:
		return "configure twig"
	case CategorySession:
		return "console"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategorySettings,
	CategoryCompute,
	CategoryText,
	CategoryConfig,
	CategorySession,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
