package platform

import (
	"os"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSAndroid = "android"
	OSIOS     = "ios"
)

// Environment variables announcing a display server
var (
	DisplayEnvVars = []string{"DISPLAY", "WAYLAND_DISPLAY"}
)

// HasDisplay reports whether a graphical display is likely available
func HasDisplay() bool {
	return hasDisplay(runtime.GOOS, os.Getenv)
}

func hasDisplay(goos string, getenv func(string) string) bool {
	switch goos {
	case OSDarwin, OSWindows, OSAndroid, OSIOS:
		return true
	default:
		// X11 or Wayland is required on linux and the BSDs
		for _, key := range DisplayEnvVars {
			if getenv(key) != "" {
				return true
			}
		}
		return false
	}
}
