package model

// Package model defines domain data structures used across the app: the book
// record and its two-state checkout status. Structures are plain values so the
// catalog can hand out copies to the CLI and the UI.
