package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	PreviewFg   tcell.Color
	CommandFg   tcell.Color
	SuggestFg   tcell.Color
	StatusFg    tcell.Color
	ErrorBg     tcell.Color
	ErrorFg     tcell.Color

	// Pager classification colors
	AdditionFg tcell.Color
	DeletionFg tcell.Color
	HunkFg     tcell.Color
	DimFg      tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderBg:    tcell.ColorDefault,
		HeaderFg:    tcell.ColorDefault,
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		PreviewFg:   tcell.ColorDefault,
		CommandFg:   tcell.ColorDefault,
		SuggestFg:   tcell.ColorLightSlateGray,
		StatusFg:    tcell.ColorDefault,
		ErrorBg:     tcell.ColorDarkRed,
		ErrorFg:     tcell.ColorWhite,
		AdditionFg:  tcell.ColorGreen,
		DeletionFg:  tcell.ColorRed,
		HunkFg:      tcell.Color51,
		DimFg:       tcell.ColorLightSlateGray,
	}
}
