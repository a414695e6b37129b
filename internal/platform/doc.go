package platform

// Package platform contains OS/platform integration: detecting whether a
// graphical display is available to the process.
