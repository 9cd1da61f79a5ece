package dashboard

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"liyu1981.xyz/solar-dashboard-service/pkg/common"
	"liyu1981.xyz/solar-dashboard-service/pkg/metrics"
	"liyu1981.xyz/solar-dashboard-service/pkg/models"
	"liyu1981.xyz/solar-dashboard-service/pkg/observability"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"

	newUserWindow = 30 * 24 * time.Hour
)

// UserSortFields lists the columns the users table can be sorted by.
var UserSortFields = []string{"name", "email", "role", "department", "status", "lastLogin", "joinDate", "loginCount"}

type UserQuery struct {
	Search    string
	Role      string
	Status    string
	Sort      string
	Direction string
	Page      int
}

type UsersView struct {
	Users      []models.User `json:"users"`
	Pagination PageInfo      `json:"pagination"`
	Sort       string        `json:"sort"`
	Direction  string        `json:"direction"`

	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	Admins      int `json:"admins"`
	NewUsers    int `json:"newUsers"`
}

// compareUsers orders by one column. Strings compare case-insensitively.
func compareUsers(field string) func(a, b models.User) int {
	fold := func(get func(models.User) string) func(a, b models.User) int {
		return func(a, b models.User) int {
			return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
		}
	}
	switch field {
	case "email":
		return fold(func(u models.User) string { return u.Email })
	case "role":
		return fold(func(u models.User) string { return u.Role })
	case "department":
		return fold(func(u models.User) string { return u.Department })
	case "status":
		return fold(func(u models.User) string { return string(u.Status) })
	case "lastLogin":
		return func(a, b models.User) int { return a.LastLogin.Compare(b.LastLogin) }
	case "joinDate":
		return func(a, b models.User) int { return a.JoinDate.Compare(b.JoinDate) }
	case "loginCount":
		return func(a, b models.User) int { return cmp.Compare(a.LoginCount, b.LoginCount) }
	default:
		return fold(func(u models.User) string { return u.Name })
	}
}

func (d *Dashboard) listUsers(q UserQuery) (view *UsersView, err error) {
	start := time.Now()
	defer func() { observability.ObserveView(common.LoggerCategoryUsers, start, err) }()

	logger := common.GetCoreLogger(common.LoggerCategoryUsers)

	users := d.Source.Users()
	now := d.Source.Now()

	filtered := common.Filter(users, func(u models.User) bool {
		if q.Search != "" && !common.ContainsFold(u.Name, q.Search) &&
			!common.ContainsFold(u.Email, q.Search) && !common.ContainsFold(u.Department, q.Search) {
			return false
		}
		if q.Role != "" && q.Role != FilterAll && u.Role != q.Role {
			return false
		}
		if q.Status != "" && q.Status != FilterAll && string(u.Status) != q.Status {
			return false
		}
		return true
	})

	sortField := q.Sort
	if !slices.Contains(UserSortFields, sortField) {
		sortField = "name"
	}
	direction := SortAsc
	if q.Direction == SortDesc {
		direction = SortDesc
	}
	compare := compareUsers(sortField)
	slices.SortStableFunc(filtered, func(a, b models.User) int {
		if direction == SortDesc {
			return compare(b, a)
		}
		return compare(a, b)
	})

	page := Paginate(len(filtered), UsersPerPage, q.Page)
	view = &UsersView{
		Users:       pageOf(filtered, page),
		Pagination:  page,
		Sort:        sortField,
		Direction:   direction,
		TotalUsers:  len(users),
		ActiveUsers: metrics.CountBy(users, func(u models.User) bool { return u.Status == models.UserStatusActive }),
		Admins:      metrics.CountBy(users, func(u models.User) bool { return u.Role == "admin" }),
		NewUsers:    metrics.CountBy(users, func(u models.User) bool { return u.JoinDate.After(now.Add(-newUserWindow)) }),
	}

	logger.Debug("Listed users",
		zap.Int("filtered", len(filtered)),
		zap.String("sort", sortField),
		zap.String("direction", direction))

	return view, nil
}

type IUsersImpl struct {
	dashboard *Dashboard
}

func (iu *IUsersImpl) ListUsers(q UserQuery) (*UsersView, error) {
	return iu.dashboard.listUsers(q)
}

func (d *Dashboard) GetIUsers() IUsers {
	return &IUsersImpl{dashboard: d}
}
