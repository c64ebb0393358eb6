package domain

// SeedGrievances returns the demo collection every session starts from.
// Each call builds fresh values, so callers may hold on to them freely.
func SeedGrievances() []*Grievance {
	img := func(s string) *string { return &s }

	return []*Grievance{
		{
			ID:            "GR-2023-8891",
			Title:         "Pothole on Main Market Road",
			Description:   "A large pothole has developed near the vegetable market entrance, causing traffic jams.",
			Category:      CategoryRoads,
			Location:      "Guwahati, Market Road",
			Status:        StatusInReview,
			DateSubmitted: "2023-10-25",
			ImageURL:      img("https://picsum.photos/seed/road/400/300"),
			IsAnonymous:   false,
			Updates: []GrievanceUpdate{
				{Date: "2023-10-25", Title: "Grievance Submitted", Description: "Your grievance has been received.", Author: "System"},
				{Date: "2023-10-26", Title: "Under Review", Description: "Assigned to Municipal Corp reviewer.", Author: "Admin"},
			},
		},
		{
			ID:            "GR-2023-8902",
			Title:         "Irregular Water Supply",
			Description:   "No water supply in Sector 4 for the last 3 days.",
			Category:      CategoryWater,
			Location:      "Jorhat, Sector 4",
			Status:        StatusAssigned,
			DateSubmitted: "2023-10-20",
			ImageURL:      img("https://picsum.photos/seed/water/400/300"),
			IsAnonymous:   true,
			Updates: []GrievanceUpdate{
				{Date: "2023-10-20", Title: "Submitted", Description: "Received anonymously.", Author: "System"},
				{Date: "2023-10-21", Title: "Assigned", Description: "Assigned to Water Works Dept.", Author: "System"},
				{Date: "2023-10-22", Title: "Technician Dispatched", Description: "Team is checking the main valve.", Author: "Junior Engineer"},
			},
		},
		{
			ID:            "GR-2023-7721",
			Title:         "Street Light Broken",
			Description:   "Street light pole #45 is flickering and dangerous.",
			Category:      CategoryElectricity,
			Location:      "Dispur, Lane 2",
			Status:        StatusResolved,
			DateSubmitted: "2023-09-15",
			ImageURL:      img("https://picsum.photos/seed/light/400/300"),
			IsAnonymous:   false,
			Updates: []GrievanceUpdate{
				{Date: "2023-09-15", Title: "Submitted", Description: "Reported via Nadi App.", Author: "User"},
				{Date: "2023-09-18", Title: "Resolved", Description: "Bulb replaced and wiring fixed.", Author: "Line Man"},
			},
		},
	}
}
