package listing

import (
	"math"
	"slices"
	"testing"

	"github.com/edulog/etugon/internal/ledger"
	"github.com/edulog/etugon/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureReports() []model.Report {
	return []model.Report{
		{ID: 1, Title: "Broken Street Light", Upvotes: 3, Date: "2025-05-15", Status: model.StatusInProgress, UserID: 1},
		{ID: 2, Title: "Flooded Road", Upvotes: 5, Date: "2025-06-20", Status: model.StatusCompleted, UserID: 1},
		{ID: 3, Title: "Overflowing Garbage", Upvotes: 12, Date: "2025-04-10", Status: model.StatusPending, UserID: 2},
		{ID: 4, Title: "Damaged Pavement", Upvotes: 8, Date: "2025-07-05", Status: model.StatusInProgress, UserID: 3},
	}
}

func ids(reports []model.Report) []int {
	out := make([]int, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}

func TestApply_StatusFilterWithDateSort(t *testing.T) {
	reports := []model.Report{
		{ID: 1, Status: model.StatusPending, Date: "2025-04-10"},
		{ID: 2, Status: model.StatusCompleted, Date: "2025-07-05"},
	}
	sel := DefaultSelection()
	sel.StatusFilter = model.StatusPending

	got := Apply(reports, sel, nil)
	assert.Equal(t, []int{1}, ids(got))
}

func TestApply_FilterKeepsExactlyMatchingStatus(t *testing.T) {
	for _, st := range model.Statuses {
		t.Run(string(st), func(t *testing.T) {
			sel := DefaultSelection()
			sel.StatusFilter = st

			got := Apply(fixtureReports(), sel, nil)
			for _, r := range got {
				assert.Equal(t, st, r.Status)
			}

			want := 0
			for _, r := range fixtureReports() {
				if r.Status == st {
					want++
				}
			}
			assert.Len(t, got, want)
		})
	}
}

func TestApply_DateSort(t *testing.T) {
	sel := DefaultSelection()

	newest := Apply(fixtureReports(), sel, nil)
	assert.Equal(t, []int{4, 2, 1, 3}, ids(newest))

	sel.Date = Oldest
	oldest := Apply(fixtureReports(), sel, nil)
	assert.Equal(t, []int{3, 1, 2, 4}, ids(oldest))

	reversed := ids(newest)
	slices.Reverse(reversed)
	assert.Equal(t, reversed, ids(oldest))
}

func TestApply_UnparseableDatesSortLast(t *testing.T) {
	reports := []model.Report{
		{ID: 1, Date: "not a date"},
		{ID: 2, Date: "2025-01-01"},
		{ID: 3, Date: ""},
		{ID: 4, Date: "May 16, 2025"},
	}

	sel := DefaultSelection()
	assert.Equal(t, []int{4, 2, 1, 3}, ids(Apply(reports, sel, nil)))

	sel.Date = Oldest
	assert.Equal(t, []int{2, 4, 1, 3}, ids(Apply(reports, sel, nil)))
}

func TestApply_NameSortIsCaseInsensitive(t *testing.T) {
	reports := []model.Report{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "apple"},
		{ID: 4, Title: "Cherry"},
	}

	sel := DefaultSelection()
	require.NoError(t, sel.SelectOption(KeyName, "A to Z"))
	// Equal titles keep their input order.
	assert.Equal(t, []int{2, 3, 1, 4}, ids(Apply(reports, sel, nil)))

	require.NoError(t, sel.SelectOption(KeyName, "Z to A"))
	assert.Equal(t, []int{4, 1, 2, 3}, ids(Apply(reports, sel, nil)))
}

func TestApply_UpvotesUseDisplayedCount(t *testing.T) {
	votes := ledger.New()
	sel := DefaultSelection()
	require.NoError(t, sel.SelectOption(KeyUpvotes, "Most to Least"))

	assert.Equal(t, []int{3, 4, 2, 1}, ids(Apply(fixtureReports(), sel, votes)))

	// A tie is broken by the local vote.
	reports := []model.Report{
		{ID: 10, Upvotes: 5},
		{ID: 11, Upvotes: 5},
	}
	votes.Toggle(11)
	assert.Equal(t, []int{11, 10}, ids(Apply(reports, sel, votes)))

	require.NoError(t, sel.SelectOption(KeyUpvotes, "Least to Most"))
	assert.Equal(t, []int{10, 11}, ids(Apply(reports, sel, votes)))
}

func TestApply_UpvotesAtIntLimits(t *testing.T) {
	votes := ledger.New()
	votes.Toggle(1)
	reports := []model.Report{
		{ID: 1, Upvotes: math.MaxInt},
		{ID: 2, Upvotes: 0},
		{ID: 3, Upvotes: 5},
	}

	sel := DefaultSelection()
	require.NoError(t, sel.SelectOption(KeyUpvotes, "Most to Least"))
	assert.Equal(t, []int{1, 3, 2}, ids(Apply(reports, sel, votes)))

	require.NoError(t, sel.SelectOption(KeyUpvotes, "Least to Most"))
	assert.Equal(t, []int{2, 3, 1}, ids(Apply(reports, sel, votes)))
}

func TestApply_StatusFilterMakesProgressActive(t *testing.T) {
	reports := []model.Report{
		{ID: 1, Status: model.StatusPending, Date: "2025-04-10"},
		{ID: 2, Status: model.StatusPending, Date: "2025-07-05"},
		{ID: 3, Status: model.StatusCompleted, Date: "2025-06-01"},
	}
	sel := DefaultSelection()

	require.NoError(t, sel.SelectOption(KeyProgress, "Pending"))
	assert.Equal(t, KeyProgress, sel.ActiveKey)
	assert.Equal(t, []int{1, 2}, ids(Apply(reports, sel, nil)))

	// Choosing a date order keeps the filter and sorts by date again.
	require.NoError(t, sel.SelectOption(KeyDate, "Newest to Oldest"))
	assert.Equal(t, model.StatusPending, sel.StatusFilter)
	assert.Equal(t, []int{2, 1}, ids(Apply(reports, sel, nil)))
}

func TestApply_ProgressKeepsInputOrder(t *testing.T) {
	sel := DefaultSelection()
	require.NoError(t, sel.SelectOption(KeyProgress, "In Progress"))

	got := Apply(fixtureReports(), sel, nil)
	assert.Equal(t, []int{1, 4}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	reports := fixtureReports()
	before := ids(reports)

	sel := DefaultSelection()
	require.NoError(t, sel.SelectOption(KeyName, "Z to A"))
	got := Apply(reports, sel, nil)

	assert.Equal(t, before, ids(reports))
	got[0].Title = "changed"
	assert.NotEqual(t, "changed", reports[0].Title)
}

func TestApply_EmptyResult(t *testing.T) {
	sel := DefaultSelection()
	sel.StatusFilter = model.StatusCompleted

	got := Apply(fixtureReports()[:1], sel, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, Apply(nil, DefaultSelection(), nil))
}

func TestPartition(t *testing.T) {
	mine, public := Partition(fixtureReports(), 1)
	assert.Equal(t, []int{1, 2}, ids(mine))
	assert.Equal(t, []int{3, 4}, ids(public))

	mine, public = Partition(fixtureReports(), 0)
	assert.Empty(t, mine)
	assert.Len(t, public, 4)
}
