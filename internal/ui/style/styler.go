package style

// Styler exposes the package functions as methods, for code that takes
// its styling as a dependency.
type Styler struct{}

// NewStyler creates a new Styler instance.
func NewStyler() *Styler {
	return &Styler{}
}

func (s *Styler) Enabled() bool               { return Enabled() }
func (s *Styler) Success(text string) string  { return Success(text) }
func (s *Styler) Warning(text string) string  { return Warning(text) }
func (s *Styler) Error(text string) string    { return Error(text) }
func (s *Styler) Info(text string) string     { return Info(text) }
func (s *Styler) Muted(text string) string    { return Muted(text) }
func (s *Styler) Header(text string) string   { return Header(text) }
func (s *Styler) Hint(text string) string     { return Hint(text) }

// NopStyler is a no-op styler that returns text unchanged.
// Useful for testing or when styling is disabled.
type NopStyler struct{}

func (NopStyler) Enabled() bool              { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }
func (NopStyler) Hint(text string) string    { return text }
