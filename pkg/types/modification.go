package types

// Modification describes a partial update of one item. It is built by the
// caller, consumed once by Storage.Modify and then discarded. Fields that
// were never set are left untouched on the target item.
type Modification struct {
	abbreviation string
	index        *int

	name *string

	descriptionSet bool
	description    *string
}

// NewModification starts a modification of an item stored under abbr.
func NewModification(abbr string) *Modification {
	return &Modification{abbreviation: abbr}
}

// WithIndex targets the item at the zero-based position i. Without it the
// entry must hold exactly one item.
func (m *Modification) WithIndex(i int) *Modification {
	m.index = &i
	return m
}

// WithName replaces the item's meaning.
func (m *Modification) WithName(name string) *Modification {
	m.name = &name
	return m
}

// WithDescription replaces the item's description. A blank description
// clears it.
func (m *Modification) WithDescription(desc string) *Modification {
	m.descriptionSet = true
	m.description = &desc
	return m
}

// ClearDescription removes the item's description.
func (m *Modification) ClearDescription() *Modification {
	m.descriptionSet = true
	m.description = nil
	return m
}

// Abbreviation returns the targeted abbreviation as given by the caller.
func (m *Modification) Abbreviation() string {
	return m.abbreviation
}

// Index returns the zero-based target position and whether one was given.
func (m *Modification) Index() (int, bool) {
	if m.index == nil {
		return 0, false
	}
	return *m.index, true
}

// Name returns the replacement meaning and whether one was given.
func (m *Modification) Name() (string, bool) {
	if m.name == nil {
		return "", false
	}
	return *m.name, true
}

// Description returns the replacement description and whether the
// description is to be changed at all. A nil value with ok set means clear.
func (m *Modification) Description() (desc *string, ok bool) {
	return m.description, m.descriptionSet
}

// IsEmpty reports whether the modification changes nothing.
func (m *Modification) IsEmpty() bool {
	return m.name == nil && !m.descriptionSet
}
