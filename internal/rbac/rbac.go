// Package rbac holds the single authorization policy of the application.
// Route guards and menu filtering both read from it.
package rbac

import (
	"financeapp/internal/auth"
	"financeapp/internal/models"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allow Decision = iota
	Unauthorized
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Authorize decides whether session may proceed. A nil session is always
// Unauthorized. An empty required set admits any authenticated user.
func Authorize(session *auth.Session, required ...models.Role) Decision {
	if session == nil {
		return Unauthorized
	}
	if len(required) == 0 {
		return Allow
	}
	for _, r := range required {
		if session.User.Role == r {
			return Allow
		}
	}
	return Forbidden
}

// Permission names a guarded capability.
type Permission string

const (
	ViewDashboard  Permission = "dashboard:view"
	ViewMovements  Permission = "movements:view"
	CreateMovement Permission = "movements:create"
	ManageUsers    Permission = "users:manage"
	ViewReports    Permission = "reports:view"
)

var adminOnly = []models.Role{models.RoleAdmin}

var policy = map[Permission][]models.Role{
	ViewDashboard:  nil,
	ViewMovements:  nil,
	CreateMovement: adminOnly,
	ManageUsers:    adminOnly,
	ViewReports:    adminOnly,
}

// Roles returns the roles granted p. Unknown permissions are admin-only.
func Roles(p Permission) []models.Role {
	roles, ok := policy[p]
	if !ok {
		return adminOnly
	}
	return roles
}

// Check authorizes session for p.
func Check(session *auth.Session, p Permission) Decision {
	return Authorize(session, Roles(p)...)
}

// Route is a navigable area of the application.
type Route struct {
	Path       string
	Label      string
	Icon       string
	Permission Permission
}

// Routes lists the navigable areas in menu order.
var Routes = []Route{
	{Path: "/", Label: "Dashboard", Icon: "layout-dashboard", Permission: ViewDashboard},
	{Path: "/movements", Label: "Movimientos", Icon: "arrow-down-up", Permission: ViewMovements},
	{Path: "/users", Label: "Usuarios", Icon: "users", Permission: ManageUsers},
	{Path: "/reports", Label: "Reportes", Icon: "bar-chart-3", Permission: ViewReports},
}

// NavItem is a menu entry visible to the current user.
type NavItem struct {
	Path  string `json:"href"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Navigation returns the menu entries session may open.
func Navigation(session *auth.Session) []NavItem {
	items := make([]NavItem, 0, len(Routes))
	for _, r := range Routes {
		if Check(session, r.Permission) == Allow {
			items = append(items, NavItem{Path: r.Path, Label: r.Label, Icon: r.Icon})
		}
	}
	return items
}

// CanVisit reports the decision for a navigable path. Unknown paths are
// open to any authenticated user.
func CanVisit(session *auth.Session, path string) Decision {
	for _, r := range Routes {
		if r.Path == path {
			return Check(session, r.Permission)
		}
	}
	return Authorize(session)
}
