package types

import "strings"

// Item is one stored meaning of an abbreviation.
type Item struct {
	Name        string  `json:"name"`        // Long form (required, non-empty).
	Description *string `json:"description"` // Optional note; null when absent.
}

// NewItem returns an Item for name. An empty or whitespace-only description
// is treated as absent.
func NewItem(name, description string) Item {
	it := Item{Name: name}
	if strings.TrimSpace(description) != "" {
		d := description
		it.Description = &d
	}
	return it
}

// HasDescription reports whether the item carries a description.
func (it Item) HasDescription() bool {
	return it.Description != nil
}

// DescriptionOr returns the description, or fallback when there is none.
func (it Item) DescriptionOr(fallback string) string {
	if it.Description == nil {
		return fallback
	}
	return *it.Description
}

// Clone returns a copy that shares no memory with it.
func (it Item) Clone() Item {
	c := Item{Name: it.Name}
	if it.Description != nil {
		d := *it.Description
		c.Description = &d
	}
	return c
}
