package listing

import (
	"testing"

	"github.com/edulog/etugon/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Defaults(t *testing.T) {
	sel := DefaultSelection()

	assert.Equal(t, KeyDate, sel.ActiveKey)
	assert.False(t, sel.HasStatusFilter())
	assert.Equal(t, "All", sel.Label(KeyProgress))
	assert.Equal(t, "Newest to Oldest", sel.Label(KeyDate))
	assert.Equal(t, "A to Z", sel.Label(KeyName))
	assert.Equal(t, "Most to Least", sel.Label(KeyUpvotes))
}

func TestSelection_SelectOptionActivatesSection(t *testing.T) {
	tests := []struct {
		key   SortKey
		label string
	}{
		{KeyProgress, "Completed"},
		{KeyDate, "Oldest to Newest"},
		{KeyName, "Z to A"},
		{KeyUpvotes, "Least to Most"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			sel := DefaultSelection()
			require.NoError(t, sel.SelectOption(tt.key, tt.label))
			assert.Equal(t, tt.key, sel.ActiveKey)
			assert.Equal(t, tt.label, sel.Label(tt.key))
		})
	}
}

func TestSelection_InactiveDirectionsAreRetained(t *testing.T) {
	sel := DefaultSelection()
	require.NoError(t, sel.SelectOption(KeyDate, "Oldest to Newest"))
	require.NoError(t, sel.SelectOption(KeyName, "Z to A"))

	assert.Equal(t, KeyName, sel.ActiveKey)
	assert.Equal(t, Oldest, sel.Date)
}

func TestSelection_SelectOptionRejectsUnknownLabels(t *testing.T) {
	sel := DefaultSelection()
	assert.Error(t, sel.SelectOption(KeyDate, "Sideways"))
	assert.Error(t, sel.SelectOption(KeyProgress, "pending"))
	assert.Error(t, sel.SelectOption("colour", "Red"))
	assert.Equal(t, DefaultSelection(), sel)
}

func TestSelection_AllClearsStatusFilter(t *testing.T) {
	sel := DefaultSelection()
	require.NoError(t, sel.SelectOption(KeyProgress, "Pending"))
	assert.Equal(t, model.StatusPending, sel.StatusFilter)

	require.NoError(t, sel.SelectOption(KeyProgress, "All"))
	assert.False(t, sel.HasStatusFilter())
}

func TestSelection_CycleOption(t *testing.T) {
	sel := DefaultSelection()

	sel.CycleOption(KeyProgress, 1)
	assert.Equal(t, model.StatusPending, sel.StatusFilter)
	sel.CycleOption(KeyProgress, -2)
	assert.Equal(t, model.StatusCompleted, sel.StatusFilter)
	sel.CycleOption(KeyProgress, 1)
	assert.False(t, sel.HasStatusFilter())

	sel.CycleOption(KeyDate, 1)
	assert.Equal(t, Oldest, sel.Date)
	assert.Equal(t, KeyDate, sel.ActiveKey)
}

func TestSelection_SetOrder(t *testing.T) {
	sel := DefaultSelection()

	require.NoError(t, sel.SetOrder(KeyUpvotes, "least"))
	assert.Equal(t, LeastUpvotes, sel.Upvotes)
	assert.Equal(t, KeyUpvotes, sel.ActiveKey)

	assert.Error(t, sel.SetOrder(KeyName, "newest"))
	assert.Error(t, sel.SetOrder(KeyProgress, "most"))
	assert.NoError(t, sel.SetOrder(KeyProgress, ""))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("upvotes")
	require.NoError(t, err)
	assert.Equal(t, KeyUpvotes, k)

	_, err = ParseSortKey("Upvotes")
	assert.Error(t, err)
}
