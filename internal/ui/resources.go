package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "library-catalog.png"
)

// LoadIconResource loads the window icon from file path
func LoadIconResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
