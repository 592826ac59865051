// Package theme holds the color palette shared by all board components.
package theme

// Palette hex values. Cards and columns read these through the styles in
// the components package.
const (
	Highlight      = "#7D56F4"
	Subtle         = "#6C6C6C"
	Normal         = "#FAFAFA"
	Create         = "#04B575"
	SelectedBorder = "#AD58B4"
	Receptive      = "#04B575"
	CardBg         = "#2D2D2D"
	SelectedBg     = "#3C3C54"
	AlertBorder    = "#ED567A"
)
