package models

// Listing is the request-scoped input of the page renderer.
type Listing struct {
	// Prefix is the query prefix every entry key starts with. Empty at the root.
	Prefix string
	// DisplayPrefix is the heading text: the prefix itself, or "/" at the root.
	DisplayPrefix string
	// Entries are sorted by Compare.
	Entries []Entry
}

// NewListing sorts entries and returns the listing for prefix.
func NewListing(prefix, displayPrefix string, entries []Entry) *Listing {
	Sort(entries)
	return &Listing{
		Prefix:        prefix,
		DisplayPrefix: displayPrefix,
		Entries:       entries,
	}
}

// IsRoot reports whether the listing is the bucket root.
func (l *Listing) IsRoot() bool {
	return l.Prefix == ""
}
