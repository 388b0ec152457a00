package themes

import (
	"testing"

	"github.com/edulog/etugon/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, Default.Pending, Default.StatusColor(model.StatusPending))
	assert.Equal(t, Default.InProgress, Default.StatusColor(model.StatusInProgress))
	assert.Equal(t, Default.Completed, Default.StatusColor(model.StatusCompleted))
	assert.Equal(t, Default.Muted, Default.StatusColor(model.Status("Archived")))

	assert.Equal(t, "#ff4d4d", string(Default.Pending))
	assert.Equal(t, "#ff9800", string(Default.InProgress))
	assert.Equal(t, "#4cd137", string(Default.Completed))
}

func TestStepColor(t *testing.T) {
	assert.Equal(t, Default.Completed, Default.StepColor(model.StepCompleted))
	assert.Equal(t, Default.InProgress, Default.StepColor(model.StepCurrent))
	assert.Equal(t, Default.Muted, Default.StepColor(model.StepPending))
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
}

func TestGetCategoryIcon(t *testing.T) {
	for _, c := range model.Categories {
		assert.NotEmpty(t, GetCategoryIcon(c))
	}
	assert.Equal(t, "📌", GetCategoryIcon("Potholes"))
}

func TestStatusBadge(t *testing.T) {
	assert.Contains(t, Default.StatusBadge(model.StatusInProgress), "In Progress")
}
