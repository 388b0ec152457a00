// Package sample holds the built-in demo reports used when no backend is
// available and by tests across the module.
package sample

import (
	"github.com/edulog/etugon/internal/model"
)

// OwnerID is the user id that owns the "my reports" half of the sample data.
const OwnerID = 1

const pendingTime, pendingDate = "--:--", "Pending"

// Reports returns a fresh copy of the four sample reports with their timelines.
func Reports() []model.Report {
	out := make([]model.Report, len(reports))
	for i, r := range reports {
		r.Timeline = timelines[r.ID]
		out[i] = r.Clone()
	}
	return out
}

// Find returns the sample report with the given id.
func Find(id int) (model.Report, bool) {
	for _, r := range Reports() {
		if r.ID == id {
			return r, true
		}
	}
	return model.Report{}, false
}

var reports = []model.Report{
	{
		ID:          1,
		UserID:      OwnerID,
		Title:       "Broken Street Light",
		Description: "Street light near Barangay Hall is broken.",
		Category:    model.CategoryTrafficInfra,
		Barangay:    "Bacsil",
		Location:    "Near the Barangay Hall, Bacsil",
		Reporter:    "Juan Dela Cruz",
		Date:        "2025-05-15",
		Status:      model.StatusInProgress,
		Upvotes:     3,
		Comments:    1,
	},
	{
		ID:          2,
		UserID:      OwnerID,
		Title:       "Flooded Road",
		Description: "Road near the river floods during heavy rain.",
		Category:    model.CategoryTrafficInfra,
		Barangay:    "Bacsil",
		Location:    "River road, Bacsil",
		Reporter:    "Maria Santos",
		Date:        "2025-06-20",
		Status:      model.StatusCompleted,
		Upvotes:     5,
		Comments:    2,
	},
	{
		ID:          3,
		UserID:      3,
		Title:       "Overflowing Garbage",
		Description: "Garbage bins near market overflow every week.",
		Category:    model.CategoryHealthSanitation,
		Barangay:    "Bacsil",
		Location:    "Public market, Bacsil",
		Reporter:    "Carlos Reyes",
		Date:        "2025-04-10",
		Status:      model.StatusPending,
		Upvotes:     12,
		Comments:    5,
	},
	{
		ID:          4,
		UserID:      4,
		Title:       "Damaged Pavement",
		Description: "Pavement cracked near the school entrance.",
		Category:    model.CategoryTrafficInfra,
		Barangay:    "Bacsil",
		Location:    "School entrance, Bacsil",
		Reporter:    "Liza Ramos",
		Date:        "2025-07-05",
		Status:      model.StatusInProgress,
		Upvotes:     8,
		Comments:    2,
	},
}

var timelines = map[int][]model.TimelineStep{
	1: {
		{Time: "04:22pm", Date: "May 15, 2025", Title: "Issue reported", Status: model.StepCompleted},
		{Time: "01:15am", Date: "May 16, 2025", Title: "Issue assigned to Maintenance team", Description: "John Webster - Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt.", Status: model.StepCompleted},
		{Time: "03:05pm", Date: "May 16, 2025", Title: "Maintenance in progress", Description: "Technician dispatched to location for assessment and repair.", Status: model.StepCurrent},
		{Time: "04:00pm", Date: "May 16, 2025", Title: "Repair completed", Description: "Issue closed. Street light is now functioning properly.", Status: model.StepPending},
	},
	2: {
		{Time: "09:15am", Date: "June 20, 2025", Title: "Issue reported", Status: model.StepCompleted},
		{Time: "02:30pm", Date: "June 20, 2025", Title: "Issue assigned to Public Works team", Description: "Engineer Rodriguez - Initial assessment shows need for drainage improvement and road elevation in affected area.", Status: model.StepCompleted},
		{Time: "10:45am", Date: "June 21, 2025", Title: "Maintenance in progress", Description: "Drainage cleaning and temporary solutions implemented. Planning for permanent solution underway.", Status: model.StepCompleted},
		{Time: "03:20pm", Date: "June 22, 2025", Title: "Repair completed", Description: "Drainage system improved and road elevation work completed. Area now passable during moderate rainfall.", Status: model.StepCompleted},
	},
	3: {
		{Time: "08:30am", Date: "April 10, 2025", Title: "Issue reported", Status: model.StepCompleted},
		{Time: pendingTime, Date: pendingDate, Title: "Awaiting assignment", Description: "Report is in queue for review and assignment to appropriate team.", Status: model.StepPending},
		{Time: pendingTime, Date: pendingDate, Title: "Maintenance pending", Description: "Action will be scheduled once assigned to maintenance team.", Status: model.StepPending},
		{Time: pendingTime, Date: pendingDate, Title: "Resolution pending", Description: "Issue will be resolved after maintenance work is completed.", Status: model.StepPending},
	},
	4: {
		{Time: "10:20am", Date: "July 5, 2025", Title: "Issue reported", Status: model.StepCompleted},
		{Time: "02:45pm", Date: "July 5, 2025", Title: "Issue assigned to Repair team", Description: "Engineer Santos - Assessment shows need for pavement repair and leveling.", Status: model.StepCompleted},
		{Time: "09:30am", Date: "July 6, 2025", Title: "Repair in progress", Description: "Team dispatched to site. Materials delivered. Work underway to fix damaged pavement.", Status: model.StepCurrent},
		{Time: pendingTime, Date: pendingDate, Title: "Repair completion", Description: "Work will be completed after current repairs are finished.", Status: model.StepPending},
	},
}
