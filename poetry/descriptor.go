package poetry

// DefaultPlaceholder is shown in an empty block when no placeholder is
// configured.
const DefaultPlaceholder = "Enter some poetry"

// Toolbox is how a tool presents itself in the host's block picker.
type Toolbox struct {
	Icon  string
	Title string
}

// PasteConfig lists the pasted element tags a tool claims.
type PasteConfig struct {
	Tags []string
}

// Descriptor is the static metadata of a block tool.
type Descriptor struct {
	Toolbox            Toolbox
	ReadOnlySupported  bool
	EnableLineBreaks   bool
	PasteConfig        PasteConfig
	Sanitize           map[string]bool
	DefaultPlaceholder string
}

const icon = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" fill="none" viewBox="0 0 24 24"><rect width="12" height="6" x="6" y="13" stroke="currentColor" stroke-width="2" rx="2"/><line x1="12" x2="12" y1="9" y2="19" stroke="currentColor" stroke-width="2"/><path stroke="currentColor" stroke-width="2" d="M5 11C5 9.89543 5.89543 9 7 9H17C18.1046 9 19 9.89543 19 11V11C19 12.1046 18.1046 13 17 13H7C5.89543 13 5 12.1046 5 11V11Z"/><path stroke="currentColor" stroke-width="2" d="M16 9C16 7.89543 16 6 14 6C12 6 12 7.89543 12 9C12 7.89543 12 6 10 6C8 6 8 7.89543 8 9"/></svg>`

// Describe returns the poetry tool descriptor. Each call returns fresh
// slices and maps, so callers may not alter the shared metadata.
func Describe() Descriptor {
	return Descriptor{
		Toolbox:           Toolbox{Icon: icon, Title: "poetry"},
		ReadOnlySupported: true,
		EnableLineBreaks:  true,
		PasteConfig:       PasteConfig{Tags: []string{"pre"}},
		// Keep inline HTML in the poetry field.
		Sanitize:           map[string]bool{"poetry": true},
		DefaultPlaceholder: DefaultPlaceholder,
	}
}
