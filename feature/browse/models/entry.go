package models

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrPrefixMismatch is returned when an entry key does not extend the listing prefix.
// It signals a storage contract breach, never a client error.
var ErrPrefixMismatch = errors.New("key does not extend listing prefix")

// Kind distinguishes sub-prefixes from stored objects.
type Kind int

const (
	// KindDirectory is a common sub-prefix. It carries no size or timestamp.
	KindDirectory Kind = iota
	// KindFile is a single stored object.
	KindFile
)

// Rank is the listing position of a kind. Directories are listed before files.
func (k Kind) Rank() int {
	switch k {
	case KindDirectory:
		return 0
	default:
		return 1
	}
}

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry is one row of a listing.
type Entry struct {
	// Key is the full storage key, or the sub-prefix (ending with "/") for directories.
	Key  string
	Kind Kind
	// Size and Uploaded are set for files only.
	Size     int64
	Uploaded time.Time
}

// Directory returns a directory entry for a sub-prefix.
func Directory(prefix string) Entry {
	return Entry{Key: prefix, Kind: KindDirectory}
}

// File returns a file entry for an object.
func File(key string, size int64, uploaded time.Time) Entry {
	return Entry{Key: key, Kind: KindFile, Size: size, Uploaded: uploaded}
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Compare orders entries by kind rank first. Directories then order by key.
// Files order by (size, uploaded) with the key as the final tiebreak, so two
// distinct entries never compare equal.
func Compare(a, b Entry) int {
	if c := cmp.Compare(a.Kind.Rank(), b.Kind.Rank()); c != 0 {
		return c
	}
	if a.Kind == KindFile {
		if c := cmp.Compare(a.Size, b.Size); c != 0 {
			return c
		}
		if c := a.Uploaded.Compare(b.Uploaded); c != 0 {
			return c
		}
	}
	return strings.Compare(a.Key, b.Key)
}

// Sort sorts entries in place by Compare.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, Compare)
}

// DisplayName strips the literal prefix from key.
func DisplayName(prefix, key string) (string, error) {
	name, ok := strings.CutPrefix(key, prefix)
	if !ok || name == "" {
		return "", fmt.Errorf("%w: key %q, prefix %q", ErrPrefixMismatch, key, prefix)
	}
	return name, nil
}
