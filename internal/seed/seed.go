// Package seed holds the bundled baseline dataset: the user directory,
// the department table, and five meetings present on every load. Seed
// meetings are expressed as raw records so they flow through the same
// normalization path as user-persisted records; no downstream component
// branches on origin.
package seed

import "github.com/clovehq/momtrack/internal/model"

func fs(v string) *model.FlexString {
	f := model.FlexString(v)
	return &f
}

// Departments returns the static department table.
func Departments() []model.Department {
	return []model.Department{
		{ID: "1", Name: "PMC", Color: "hsl(168 60% 38%)"},
		{ID: "2", Name: "Design", Color: "hsl(280 65% 50%)"},
		{ID: "3", Name: "Assistance Engineering", Color: "hsl(38 92% 50%)"},
		{ID: "4", Name: "Deputy Engineerin", Color: "hsl(199 89% 48%)"},
		{ID: "5", Name: "Contractor", Color: "hsl(340 65% 50%)"},
	}
}

// Users returns the read-only user directory.
func Users() []model.User {
	return []model.User{
		{ID: "1", Name: "Sarah Chen", Email: "sarah@clove.com", Role: "admin", Department: "Engineering", IsApproved: true},
		{ID: "2", Name: "Marcus Johnson", Email: "marcus@clove.com", Role: "user", Department: "Engineering", IsApproved: true},
		{ID: "3", Name: "Emily Rodriguez", Email: "emily@clove.com", Role: "user", Department: "Design", IsApproved: true},
		{ID: "4", Name: "David Kim", Email: "david@clove.com", Role: "user", Department: "Marketing", IsApproved: true},
		{ID: "5", Name: "Lisa Thompson", Email: "lisa@clove.com", Role: "user", Department: "Sales", IsApproved: true},
		{ID: "6", Name: "James Wilson", Email: "james@clove.com", Role: "user", Department: "HR", IsApproved: false},
	}
}

func attendee(u model.User) model.RawAttendee {
	return model.RawAttendee{
		ID:         model.FlexString(u.ID),
		Name:       model.FlexString(u.Name),
		Department: model.FlexString(u.Department),
	}
}

func person(u model.User) *model.RawPerson {
	return &model.RawPerson{ID: model.FlexString(u.ID), Name: model.FlexString(u.Name)}
}

func creator(u model.User) *model.RawCreator {
	return &model.RawCreator{Name: model.FlexString(u.Name), Email: model.FlexString(u.Email)}
}

func item(id, description, dueDate, responsibleID, followUpID, status, priority string) model.RawActionItem {
	users := Users()
	var resp, follow *model.RawPerson
	for i := range users {
		if users[i].ID == responsibleID {
			resp = person(users[i])
		}
		if users[i].ID == followUpID {
			follow = person(users[i])
		}
	}
	fid := model.FlexString(id)
	return model.RawActionItem{
		ID:                &fid,
		Description:       model.FlexString(description),
		DueDate:           model.FlexString(dueDate),
		Status:            model.FlexString(status),
		Priority:          model.FlexString(priority),
		ResponsiblePerson: resp,
		FollowUpPerson:    follow,
	}
}

// Meetings returns the baseline meeting collection. Identifiers are the
// short sequential strings "1".."5"; user-created records use the
// "local-{timestamp}" scheme so the two ranges never collide in practice.
func Meetings() []model.RawMeeting {
	users := Users()
	return []model.RawMeeting{
		{
			ID:          "1",
			Title:       fs("Q4 Sprint Planning"),
			Description: fs("Plan the upcoming sprint goals and assign tasks for the engineering team."),
			Date:        fs("2024-12-15"),
			Time:        fs("10:00"),
			Department:  fs("Engineering"),
			Attendees:   model.AttendeeList{attendee(users[0]), attendee(users[1])},
			SummaryPoints: model.StringList{
				"Reviewed Q3 deliverables and identified areas for improvement",
				"Discussed new feature priorities based on customer feedback",
				"Allocated resources for critical bug fixes",
			},
			KeyPoints: model.StringList{
				"Focus on performance optimization for the main dashboard",
				"New authentication flow to be implemented by end of sprint",
				"Technical debt reduction allocated 20% of sprint capacity",
			},
			ActionItems: model.RawActionItemList{
				item("1", "Create technical spec for new auth flow", "2024-12-18", "2", "1", "in-progress", "high"),
				item("2", "Review and merge pending PRs", "2024-12-16", "1", "2", "pending", "medium"),
				item("3", "Update documentation for API changes", "2024-12-20", "2", "1", "pending", "low"),
			},
			CreatedBy:  creator(users[0]),
			IsApproved: true,
			CreatedAt:  fs("2024-12-10T09:00:00Z"),
		},
		{
			ID:          "2",
			Title:       fs("Design System Review"),
			Description: fs("Review and update the design system components for consistency across products."),
			Date:        fs("2024-12-16"),
			Time:        fs("14:00"),
			Department:  fs("Design"),
			Attendees:   model.AttendeeList{attendee(users[2]), attendee(users[0])},
			SummaryPoints: model.StringList{
				"Audited existing components for accessibility compliance",
				"Identified 12 components needing updates",
				"Agreed on new color palette for dark mode",
			},
			KeyPoints: model.StringList{
				"All buttons to be updated with new hover states",
				"Typography scale to be simplified",
				"New icon set to be implemented across all products",
			},
			ActionItems: model.RawActionItemList{
				item("4", "Update button component variants", "2024-12-19", "3", "1", "pending", "high"),
				item("5", "Create dark mode color tokens", "2024-12-22", "3", "1", "pending", "medium"),
			},
			CreatedBy:  creator(users[2]),
			IsApproved: true,
			CreatedAt:  fs("2024-12-11T14:00:00Z"),
		},
		{
			ID:          "3",
			Title:       fs("Marketing Campaign Kickoff"),
			Description: fs("Launch planning for the new year marketing campaign."),
			Date:        fs("2024-12-17"),
			Time:        fs("09:00"),
			Department:  fs("Marketing"),
			Attendees:   model.AttendeeList{attendee(users[3]), attendee(users[4])},
			SummaryPoints: model.StringList{
				"Defined target audience segments",
				"Set campaign budget and timeline",
				"Outlined content strategy for Q1",
			},
			KeyPoints: model.StringList{
				"Focus on social media engagement",
				"Partner with 3 influencers",
				"Launch email nurture sequence by Jan 15",
			},
			ActionItems: model.RawActionItemList{
				item("6", "Draft campaign brief", "2024-12-20", "4", "5", "in-progress", "high"),
				item("7", "Research influencer partnerships", "2024-12-25", "4", "5", "pending", "medium"),
			},
			CreatedBy:  creator(users[3]),
			IsApproved: true,
			CreatedAt:  fs("2024-12-12T09:00:00Z"),
		},
		{
			ID:          "4",
			Title:       fs("Weekly Team Standup"),
			Description: fs("Regular weekly standup to sync on progress and blockers."),
			Date:        fs("2024-12-11"),
			Time:        fs("09:30"),
			Department:  fs("Engineering"),
			Attendees:   model.AttendeeList{attendee(users[0]), attendee(users[1])},
			SummaryPoints: model.StringList{
				"All team members on track with sprint goals",
				"One blocker identified with third-party API",
				"Code review backlog cleared",
			},
			KeyPoints: model.StringList{
				"API issue escalated to vendor",
				"New hire onboarding scheduled for next week",
			},
			ActionItems: model.RawActionItemList{
				item("8", "Follow up with API vendor", "2024-12-12", "1", "2", "completed", "high"),
				item("9", "Prepare onboarding materials", "2024-12-13", "2", "1", "completed", "medium"),
			},
			CreatedBy:  creator(users[0]),
			IsApproved: true,
			CreatedAt:  fs("2024-12-11T09:30:00Z"),
		},
		{
			ID:          "5",
			Title:       fs("Sales Pipeline Review"),
			Description: fs("Monthly review of sales pipeline and forecast."),
			Date:        fs("2024-12-18"),
			Time:        fs("11:00"),
			Department:  fs("Sales"),
			Attendees:   model.AttendeeList{attendee(users[4]), attendee(users[0])},
			SummaryPoints: model.StringList{
				"Q4 target at 85% completion",
				"Three enterprise deals in final negotiation",
				"New lead generation strategy showing results",
			},
			KeyPoints: model.StringList{
				"Close Enterprise Deal A by Dec 20",
				"Increase demo bookings by 15%",
				"Launch referral program in January",
			},
			ActionItems: model.RawActionItemList{
				item("10", "Prepare enterprise proposal", "2024-12-19", "5", "1", "in-progress", "high"),
				item("11", "Update sales playbook", "2024-12-28", "5", "1", "pending", "low"),
			},
			CreatedBy:  creator(users[4]),
			IsApproved: true,
			CreatedAt:  fs("2024-12-13T11:00:00Z"),
		},
	}
}
