package catalog

// Package catalog implements the in-memory book store. It is the sole owner of
// book records: it enforces identifier uniqueness, keeps insertion order for
// listing, and gates the Available/CheckedOut transitions. Successful
// mutations are propagated to the UI through an update callback.
