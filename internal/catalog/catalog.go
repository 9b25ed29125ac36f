// Package catalog holds the immutable code→phrase mappings the
// interpreter matches against. Declaration order matters: it is the
// documented priority order for fuzzy tie-breaking, so a Catalog keeps
// its entries as an ordered slice rather than a bare map.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Entry is one catalog row: a short code and its canonical phrase.
type Entry struct {
	Code   string `yaml:"code" json:"code"`
	Phrase string `yaml:"phrase" json:"phrase"`
}

// Catalog is an insertion-ordered mapping of code → phrase. It is
// immutable after construction and safe to share across concurrent
// interpretations.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries. Codes must be unique and non-empty.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Code == "" {
			return nil, fmt.Errorf("catalog entry with empty code (phrase %q)", e.Phrase)
		}
		if _, dup := c.index[e.Code]; dup {
			return nil, fmt.Errorf("duplicate catalog code %q", e.Code)
		}
		c.index[e.Code] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is New for static catalogs that cannot fail.
func MustNew(entries ...Entry) *Catalog {
	c, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in declaration order. The returned slice
// is a copy; the catalog stays immutable.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the codes in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Code
	}
	return keys
}

// Phrase looks up the canonical phrase for a code.
func (c *Catalog) Phrase(code string) (string, bool) {
	i, ok := c.index[code]
	if !ok {
		return "", false
	}
	return c.entries[i].Phrase, true
}

// JoinedPhrases concatenates every phrase value, lower-cased, with no
// separator. The vocabulary validator uses it as a containment haystack
// for tokens the annotator does not know.
func (c *Catalog) JoinedPhrases() string {
	var b strings.Builder
	for _, e := range c.entries {
		b.WriteString(strings.ToLower(e.Phrase))
	}
	return b.String()
}

// Fingerprint is a stable digest of the catalog contents, used to
// namespace cached interpretation results.
func (c *Catalog) Fingerprint() string {
	h := sha256.New()
	for _, e := range c.entries {
		h.Write([]byte(e.Code))
		h.Write([]byte{0})
		h.Write([]byte(e.Phrase))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
