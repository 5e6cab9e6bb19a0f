package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/abbr/pkg/types"
)

// newStorage returns a dictionary populated through Put.
func newStorage(t *testing.T, pairs ...[2]string) *Storage {
	t.Helper()
	st := New()
	for _, p := range pairs {
		require.NoError(t, st.Put(p[0], p[1], ""))
	}
	return st
}

func TestPutCreatesEntry(t *testing.T) {
	st := New()
	require.NoError(t, st.Put("CPU", "Central Processing Unit", ""))

	e := st.Get("CPU")
	assert.Equal(t, "CPU:\n 1) Central Processing Unit", e.String())
	assert.Equal(t, 1, st.Len())
}

func TestPutAppendsInInsertionOrder(t *testing.T) {
	st := newStorage(t,
		[2]string{"CPU", "Central Processing Unit"},
		[2]string{"CPU", "Critical Path Update"},
	)

	e := st.Get("CPU")
	require.Len(t, e.Items, 2)
	assert.Equal(t, "Central Processing Unit", e.Items[0].Name)
	assert.Equal(t, "Critical Path Update", e.Items[1].Name)
	assert.Equal(t, "CPU is one of the following:\n 1) Central Processing Unit\n 2) Critical Path Update", e.String())
}

func TestPutRejectsDuplicate(t *testing.T) {
	st := New()
	require.NoError(t, st.Put("CPU", "Central Processing Unit", ""))

	err := st.Put("CPU", "Central Processing Unit", "second time")
	assert.ErrorIs(t, err, types.ErrDuplicateEntry)

	e := st.Get("CPU")
	require.Len(t, e.Items, 1)
	assert.False(t, e.Items[0].HasDescription(), "rejected put must not change the stored item")
}

func TestPutNormalizesAbbreviation(t *testing.T) {
	st := New()
	require.NoError(t, st.Put("cpu", "Central Processing Unit", ""))
	assert.ErrorIs(t, st.Put(" Cpu ", "Central Processing Unit", ""), types.ErrDuplicateEntry)

	assert.Equal(t, []string{"CPU"}, st.Abbreviations())
	assert.Equal(t, "CPU", st.Get("cPu").Acronym)
	assert.True(t, st.Has("cpu"))
}

func TestPutValidation(t *testing.T) {
	st := New()
	assert.ErrorIs(t, st.Put("  ", "x", ""), types.ErrEmptyAbbreviation)
	assert.ErrorIs(t, st.Put("X", "  ", ""), types.ErrEmptyName)
	assert.Empty(t, st.Abbreviations())
}

func TestPutStoresDescription(t *testing.T) {
	st := New()
	require.NoError(t, st.Put("GPU", "Graphics Processing Unit", "renders things"))

	e := st.Get("GPU")
	require.Len(t, e.Items, 1)
	assert.Equal(t, "renders things", e.Items[0].DescriptionOr(""))
}

func TestGetAbsentIsEmpty(t *testing.T) {
	st := New()
	e := st.Get("nope")
	assert.Equal(t, "NOPE", e.Acronym)
	assert.True(t, e.IsEmpty())
	assert.Equal(t, "NOPE has no matches", e.String())
	assert.False(t, st.Has("nope"))
}

func TestGetReturnsCopy(t *testing.T) {
	st := newStorage(t, [2]string{"CPU", "Central Processing Unit"})

	e := st.Get("CPU")
	e.Items[0].Name = "mutated"
	e.Items = append(e.Items, types.Item{Name: "extra"})

	assert.Equal(t, "Central Processing Unit", st.Get("CPU").Items[0].Name)
	assert.Equal(t, 1, st.Len())
}

func TestModify(t *testing.T) {
	tests := []struct {
		name     string
		pairs    [][2]string
		mod      *types.Modification
		wantErr  error
		wantName []string
	}{
		{
			name:     "single item targeted implicitly",
			pairs:    [][2]string{{"CPU", "Central Processing Unit"}},
			mod:      types.NewModification("cpu").WithName("Central Processor"),
			wantName: []string{"Central Processor"},
		},
		{
			name:    "several items without id are ambiguous",
			pairs:   [][2]string{{"CPU", "a"}, {"CPU", "b"}},
			mod:     types.NewModification("CPU").WithName("c"),
			wantErr: types.ErrAmbiguousItem,
		},
		{
			name:     "explicit id targets that item",
			pairs:    [][2]string{{"CPU", "a"}, {"CPU", "b"}},
			mod:      types.NewModification("CPU").WithIndex(1).WithName("c"),
			wantName: []string{"a", "c"},
		},
		{
			name:    "id out of range",
			pairs:   [][2]string{{"CPU", "a"}},
			mod:     types.NewModification("CPU").WithIndex(1).WithName("c"),
			wantErr: types.ErrNoSuchItem,
		},
		{
			name:    "negative id",
			pairs:   [][2]string{{"CPU", "a"}},
			mod:     types.NewModification("CPU").WithIndex(-1).WithName("c"),
			wantErr: types.ErrNoSuchItem,
		},
		{
			name:    "unknown abbreviation",
			pairs:   [][2]string{{"CPU", "a"}},
			mod:     types.NewModification("GPU").WithName("c"),
			wantErr: types.ErrNoSuchItem,
		},
		{
			name:    "rename onto a sibling is a duplicate",
			pairs:   [][2]string{{"CPU", "a"}, {"CPU", "b"}},
			mod:     types.NewModification("CPU").WithIndex(0).WithName("b"),
			wantErr: types.ErrDuplicateEntry,
		},
		{
			name:     "rename to the same name is allowed",
			pairs:    [][2]string{{"CPU", "a"}},
			mod:      types.NewModification("CPU").WithName("a"),
			wantName: []string{"a"},
		},
		{
			name:    "blank name rejected",
			pairs:   [][2]string{{"CPU", "a"}},
			mod:     types.NewModification("CPU").WithName(" "),
			wantErr: types.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newStorage(t, tt.pairs...)
			before := st.Entries()

			err := st.Modify(tt.mod)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, st.Entries(), "failed modify must not change storage")
				return
			}
			require.NoError(t, err)

			var got []string
			for _, it := range st.Get(tt.mod.Abbreviation()).Items {
				got = append(got, it.Name)
			}
			assert.Equal(t, tt.wantName, got)
		})
	}
}

func TestModifyDescription(t *testing.T) {
	st := New()
	require.NoError(t, st.Put("CPU", "Central Processing Unit", "old"))

	require.NoError(t, st.Modify(types.NewModification("CPU").WithName("Central Processor")))
	assert.Equal(t, "old", st.Get("CPU").Items[0].DescriptionOr(""), "omitted description is untouched")

	require.NoError(t, st.Modify(types.NewModification("CPU").WithDescription("new")))
	assert.Equal(t, "new", st.Get("CPU").Items[0].DescriptionOr(""))
	assert.Equal(t, "Central Processor", st.Get("CPU").Items[0].Name, "omitted name is untouched")

	require.NoError(t, st.Modify(types.NewModification("CPU").ClearDescription()))
	assert.False(t, st.Get("CPU").Items[0].HasDescription())
}

func TestModifyFields(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		mod      *types.Modification
		wantName string
		wantDesc string
		wantHas  bool
	}{
		{
			name:     "blank description clears",
			desc:     "old",
			mod:      types.NewModification("CPU").WithDescription("  "),
			wantName: "Central Processing Unit",
		},
		{
			name:     "name is trimmed",
			desc:     "old",
			mod:      types.NewModification("CPU").WithName("  Central Processor "),
			wantName: "Central Processor",
			wantDesc: "old",
			wantHas:  true,
		},
		{
			name:     "name and description together",
			mod:      types.NewModification("CPU").WithName("Central Processor").WithDescription("the brain"),
			wantName: "Central Processor",
			wantDesc: "the brain",
			wantHas:  true,
		},
		{
			name:     "empty modification changes nothing",
			desc:     "old",
			mod:      types.NewModification("CPU"),
			wantName: "Central Processing Unit",
			wantDesc: "old",
			wantHas:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := New()
			require.NoError(t, st.Put("CPU", "Central Processing Unit", tt.desc))

			require.NoError(t, st.Modify(tt.mod))
			it := st.Get("CPU").Items[0]
			assert.Equal(t, tt.wantName, it.Name)
			assert.Equal(t, tt.wantHas, it.HasDescription())
			assert.Equal(t, tt.wantDesc, it.DescriptionOr(""))
		})
	}
}

func TestModifyEmptyStillResolvesTarget(t *testing.T) {
	st := newStorage(t, [2]string{"CPU", "a"}, [2]string{"CPU", "b"})

	assert.ErrorIs(t, st.Modify(types.NewModification("CPU")), types.ErrAmbiguousItem)
	assert.ErrorIs(t, st.Modify(types.NewModification("GPU")), types.ErrNoSuchItem)
	assert.ErrorIs(t, st.Modify(types.NewModification("CPU").WithIndex(5)), types.ErrNoSuchItem)
}

func TestDeleteOnlyItemRemovesEntry(t *testing.T) {
	st := newStorage(t, [2]string{"CPU", "Central Processing Unit"}, [2]string{"GPU", "Graphics Processing Unit"})

	require.NoError(t, st.Delete("cpu"))
	assert.False(t, st.Has("CPU"))
	assert.Equal(t, []string{"GPU"}, st.Abbreviations())
}

func TestDeleteAmbiguous(t *testing.T) {
	st := newStorage(t, [2]string{"CPU", "a"}, [2]string{"CPU", "b"})

	assert.ErrorIs(t, st.Delete("CPU"), types.ErrAmbiguousItem)
	assert.Equal(t, 2, st.Len())
}

func TestDeleteAt(t *testing.T) {
	st := newStorage(t, [2]string{"CPU", "a"}, [2]string{"CPU", "b"}, [2]string{"CPU", "c"})

	require.NoError(t, st.DeleteAt("CPU", 1))
	e := st.Get("CPU")
	require.Len(t, e.Items, 2)
	assert.Equal(t, "a", e.Items[0].Name)
	assert.Equal(t, "c", e.Items[1].Name, "later items shift down")

	assert.ErrorIs(t, st.DeleteAt("CPU", 2), types.ErrNoSuchItem)
	assert.ErrorIs(t, st.DeleteAt("CPU", -1), types.ErrNoSuchItem)

	require.NoError(t, st.DeleteAt("CPU", 0))
	require.NoError(t, st.Delete("CPU"))
	assert.False(t, st.Has("CPU"))
}

func TestDeleteUnknown(t *testing.T) {
	st := New()
	assert.ErrorIs(t, st.Delete("CPU"), types.ErrNoSuchItem)
	assert.ErrorIs(t, st.DeleteAt("CPU", 0), types.ErrNoSuchItem)
}

func TestEntriesSorted(t *testing.T) {
	st := newStorage(t, [2]string{"ram", "Random Access Memory"}, [2]string{"CPU", "Central Processing Unit"})

	entries := st.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "CPU", entries[0].Acronym)
	assert.Equal(t, "RAM", entries[1].Acronym)
}
