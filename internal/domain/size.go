package domain

import "strings"

// Size is a panel variant.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// ParseSize maps s to a panel size. Unknown values select the medium
// variant, which is what the widget host shows by default.
func ParseSize(s string) Size {
	switch Size(strings.ToLower(strings.TrimSpace(s))) {
	case SizeSmall:
		return SizeSmall
	case SizeLarge:
		return SizeLarge
	default:
		return SizeMedium
	}
}

func (s Size) String() string {
	return string(s)
}
