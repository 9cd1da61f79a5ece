package mockdata

import (
	"time"

	"liyu1981.xyz/solar-dashboard-service/pkg/models"
)

func avatar(photo string) string {
	return "https://images.unsplash.com/photo-" + photo + "?w=150&h=150&fit=crop&crop=face"
}

func joined(date string) time.Time {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	permsAdmin    = []string{"dashboard", "analytics", "devices", "users", "settings"}
	permsAnalysis = []string{"dashboard", "analytics"}
)

// Users returns the eight user accounts. Login and activity times are
// relative to the source clock.
func (s *Source) Users() []models.User {
	now := s.now()
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	users := []models.User{
		{ID: "1", Name: "John Solar", Email: "john@solarfarm.com", Role: "admin", Avatar: avatar("1507003211169-0a1dd7228f2d"),
			LastLogin: ago(2 * time.Hour), Status: models.UserStatusActive, Phone: "+1 (555) 123-4567", Location: "Solar Farm, CA",
			Department: "Management", JoinDate: joined("2023-01-15"), Permissions: permsAdmin, LoginCount: 156, LastActivity: ago(30 * time.Minute)},
		{ID: "2", Name: "Sarah Technician", Email: "sarah.tech@solarfarm.com", Role: "technician", Avatar: avatar("1494790108755-2616b612b786"),
			LastLogin: ago(4 * time.Hour), Status: models.UserStatusActive, Phone: "+1 (555) 234-5678", Location: "Maintenance Hub",
			Department: "Maintenance", JoinDate: joined("2023-03-20"), Permissions: []string{"dashboard", "devices", "battery"}, LoginCount: 89, LastActivity: ago(2 * time.Hour)},
		{ID: "3", Name: "Mike Operator", Email: "mike.op@solarfarm.com", Role: "operator", Avatar: avatar("1472099645785-5658abf4ff4e"),
			LastLogin: ago(1 * time.Hour), Status: models.UserStatusActive, Phone: "+1 (555) 345-6789", Location: "Control Room",
			Department: "Operations", JoinDate: joined("2023-02-10"), Permissions: []string{"dashboard", "analytics", "devices"}, LoginCount: 234, LastActivity: ago(45 * time.Minute)},
		{ID: "4", Name: "Lisa Analyst", Email: "lisa.analyst@solarfarm.com", Role: "analyst", Avatar: avatar("1438761681033-6461ffad8d80"),
			LastLogin: ago(6 * time.Hour), Status: models.UserStatusInactive, Phone: "+1 (555) 456-7890", Location: "Data Center",
			Department: "Analytics", JoinDate: joined("2023-04-05"), Permissions: permsAnalysis, LoginCount: 67, LastActivity: ago(8 * time.Hour)},
		{ID: "5", Name: "David Engineer", Email: "david.eng@solarfarm.com", Role: "technician", Avatar: avatar("1500648767791-00dcc994a43e"),
			LastLogin: ago(12 * time.Hour), Status: models.UserStatusActive, Phone: "+1 (555) 567-8901", Location: "Engineering Lab",
			Department: "Engineering", JoinDate: joined("2023-05-12"), Permissions: []string{"dashboard", "devices", "solar-panels"}, LoginCount: 123, LastActivity: ago(3 * time.Hour)},
		{ID: "6", Name: "Emma Manager", Email: "emma.manager@solarfarm.com", Role: "admin", Avatar: avatar("1544005313-94ddf0286df2"),
			LastLogin: ago(30 * time.Minute), Status: models.UserStatusActive, Phone: "+1 (555) 678-9012", Location: "Headquarters",
			Department: "Management", JoinDate: joined("2022-11-08"), Permissions: permsAdmin, LoginCount: 298, LastActivity: ago(15 * time.Minute)},
		{ID: "7", Name: "Alex Monitor", Email: "alex.monitor@solarfarm.com", Role: "operator", Avatar: avatar("1506794778202-cad84cf45f1d"),
			LastLogin: ago(3 * time.Hour), Status: models.UserStatusActive, Phone: "+1 (555) 789-0123", Location: "Monitoring Station",
			Department: "Operations", JoinDate: joined("2023-06-18"), Permissions: permsAnalysis, LoginCount: 78, LastActivity: ago(1 * time.Hour)},
		{ID: "8", Name: "Rachel Support", Email: "rachel.support@solarfarm.com", Role: "analyst", Avatar: avatar("1534528741775-53994a69daeb"),
			LastLogin: ago(24 * time.Hour), Status: models.UserStatusInactive, Phone: "+1 (555) 890-1234", Location: "Support Center",
			Department: "Support", JoinDate: joined("2023-07-22"), Permissions: []string{"dashboard"}, LoginCount: 45, LastActivity: ago(24 * time.Hour)},
	}

	// shared permission slices must not leak between calls
	for i := range users {
		users[i].Permissions = append([]string(nil), users[i].Permissions...)
	}
	return users
}
