// Package models defines the listing data model of the browse feature.
//
// An Entry is either a directory (a common sub-prefix) or a file (a stored object
// with a size and an upload instant). Entries are ordered by Compare, whose policy
// is explicit: directories before files, directories by key, files by
// (size, uploaded) and then key.
package models
