package ui

// Package ui contains the Fyne-based desktop user interface for the catalog.
// A single form wires the action selector and the ID, Title and Author fields
// to the catalog store, renders listings into an output area, and reports
// results and errors in dialogs. All UI strings are localized via locale.
