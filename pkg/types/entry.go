package types

import (
	"fmt"
	"strings"
)

// Entry holds every meaning recorded for one abbreviation. Item order is
// insertion order and is the order ids refer to.
type Entry struct {
	Acronym string `json:"acronym"`
	Items   []Item `json:"items"`
}

// Len returns the number of items in the entry.
func (e Entry) Len() int {
	return len(e.Items)
}

// IsEmpty reports whether the entry has no items.
func (e Entry) IsEmpty() bool {
	return len(e.Items) == 0
}

// IndexOf returns the position of the item named name, or -1.
func (e Entry) IndexOf(name string) int {
	for i, it := range e.Items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	c := Entry{Acronym: e.Acronym, Items: make([]Item, len(e.Items))}
	for i, it := range e.Items {
		c.Items[i] = it.Clone()
	}
	return c
}

// String renders the entry for display. Items are numbered from 1.
//
//	CPU has no matches
//
//	CPU:
//	 1) Central Processing Unit
//
//	CPU is one of the following:
//	 1) Central Processing Unit
//	 2) Critical Path Update
//	    scheduling term
func (e Entry) String() string {
	var b strings.Builder
	switch len(e.Items) {
	case 0:
		fmt.Fprintf(&b, "%s has no matches", e.Acronym)
		return b.String()
	case 1:
		fmt.Fprintf(&b, "%s:", e.Acronym)
	default:
		fmt.Fprintf(&b, "%s is one of the following:", e.Acronym)
	}
	for i, it := range e.Items {
		fmt.Fprintf(&b, "\n %d) %s", i+1, it.Name)
		if it.Description != nil {
			fmt.Fprintf(&b, "\n    %s", *it.Description)
		}
	}
	return b.String()
}
