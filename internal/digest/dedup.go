package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Deduplicator collapses items that are the same story. Identity is an exact
// hash of the normalized title and URL; near-duplicate titles from different
// sources are deliberately not merged.
type Deduplicator struct{}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{}
}

// Run returns items in their original order, keeping only the first
// occurrence of each identity hash. Running it on its own output is a no-op.
func (d *Deduplicator) Run(items []Item) []Item {
	seen := make(map[string]struct{}, len(items))
	unique := make([]Item, 0, len(items))
	for _, item := range items {
		key := itemKey(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

// itemKey hashes lowercased, trimmed title+url so the same story picked up
// from two feeds (or with different letter case) collapses to one.
func itemKey(item Item) string {
	raw := strings.ToLower(strings.TrimSpace(item.Title)) + strings.ToLower(strings.TrimSpace(item.URL))
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
