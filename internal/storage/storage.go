// Package storage implements the abbreviation dictionary: an in-memory map
// from abbreviation to entry with put, get, modify and delete operations,
// and its persistence as a single JSON document.
package storage

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

// Storage maps each upper-cased abbreviation to the entry holding its
// meanings. Keys always equal the contained entry's Acronym and no entry is
// ever left without items.
//
// Storage is not safe for concurrent use; a CLI invocation loads it, applies
// one operation and writes it back.
type Storage struct {
	data map[string]*types.Entry
}

// New returns an empty dictionary.
func New() *Storage {
	return &Storage{data: make(map[string]*types.Entry)}
}

// Put records name as a meaning of abbr. A new entry is created when abbr is
// unknown; otherwise the item is appended. Returns ErrDuplicateEntry, leaving
// the dictionary untouched, when the entry already holds an item with the
// same name. An empty description is stored as absent.
func (s *Storage) Put(abbr, name, description string) error {
	key := types.NormalizeAbbreviation(abbr)
	if key == "" {
		return types.ErrEmptyAbbreviation
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return types.ErrEmptyName
	}

	entry, ok := s.data[key]
	if !ok {
		s.data[key] = &types.Entry{
			Acronym: key,
			Items:   []types.Item{types.NewItem(name, description)},
		}
		return nil
	}
	if entry.IndexOf(name) >= 0 {
		return fmt.Errorf("%s %q: %w", key, name, types.ErrDuplicateEntry)
	}
	entry.Items = append(entry.Items, types.NewItem(name, description))
	return nil
}

// Get returns a copy of the entry stored under abbr. An unknown abbreviation
// yields an entry with no items; Get never fails.
func (s *Storage) Get(abbr string) types.Entry {
	key := types.NormalizeAbbreviation(abbr)
	entry, ok := s.data[key]
	if !ok {
		return types.Entry{Acronym: key}
	}
	return entry.Clone()
}

// Has reports whether abbr has at least one stored meaning.
func (s *Storage) Has(abbr string) bool {
	_, ok := s.data[types.NormalizeAbbreviation(abbr)]
	return ok
}

// Modify applies mod to the item it targets. Only the fields set on mod are
// changed; a modification that sets nothing only checks that the target
// exists. See resolve for how the target item is chosen.
func (s *Storage) Modify(mod *types.Modification) error {
	key := types.NormalizeAbbreviation(mod.Abbreviation())
	entry, ok := s.data[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, types.ErrNoSuchItem)
	}
	i, explicit := mod.Index()
	idx, err := resolve(entry, i, explicit)
	if err != nil || mod.IsEmpty() {
		return err
	}

	updated := entry.Items[idx].Clone()
	if name, ok := mod.Name(); ok {
		updated.Name = strings.TrimSpace(name)
		if updated.Name == "" {
			return types.ErrEmptyName
		}
		if other := entry.IndexOf(updated.Name); other >= 0 && other != idx {
			return fmt.Errorf("%s %q: %w", key, updated.Name, types.ErrDuplicateEntry)
		}
	}
	if desc, ok := mod.Description(); ok {
		updated.Description = nil
		if desc != nil {
			updated.Description = types.NewItem(updated.Name, *desc).Description
		}
	}
	entry.Items[idx] = updated
	return nil
}

// Delete removes the only item stored under abbr. Returns ErrAmbiguousItem
// when the entry holds more than one item.
func (s *Storage) Delete(abbr string) error {
	return s.delete(abbr, 0, false)
}

// DeleteAt removes the item at zero-based position i of the entry stored
// under abbr.
func (s *Storage) DeleteAt(abbr string, i int) error {
	return s.delete(abbr, i, true)
}

func (s *Storage) delete(abbr string, i int, explicit bool) error {
	key := types.NormalizeAbbreviation(abbr)
	entry, ok := s.data[key]
	if !ok {
		return fmt.Errorf("%s: %w", key, types.ErrNoSuchItem)
	}
	idx, err := resolve(entry, i, explicit)
	if err != nil {
		return err
	}

	entry.Items = append(entry.Items[:idx], entry.Items[idx+1:]...)
	if entry.IsEmpty() {
		delete(s.data, key)
	}
	return nil
}

// resolve picks the target item of entry. An explicit zero-based index is
// used as is and must be in range. Without one the entry must hold exactly
// one item.
func resolve(entry *types.Entry, i int, explicit bool) (int, error) {
	if explicit {
		if i < 0 || i >= len(entry.Items) {
			return 0, fmt.Errorf("%s id %d: %w", entry.Acronym, i+1, types.ErrNoSuchItem)
		}
		return i, nil
	}
	switch len(entry.Items) {
	case 1:
		return 0, nil
	case 0:
		return 0, fmt.Errorf("%s: %w", entry.Acronym, types.ErrNoSuchItem)
	default:
		return 0, fmt.Errorf("%s has %d meanings: %w", entry.Acronym, len(entry.Items), types.ErrAmbiguousItem)
	}
}

// Abbreviations returns every stored abbreviation in sorted order.
func (s *Storage) Abbreviations() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns copies of all entries ordered by abbreviation.
func (s *Storage) Entries() []types.Entry {
	keys := s.Abbreviations()
	out := make([]types.Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.data[k].Clone())
	}
	return out
}

// Len returns the total number of stored items.
func (s *Storage) Len() int {
	n := 0
	for _, e := range s.data {
		n += len(e.Items)
	}
	return n
}
