package auth

// Dashboard route names.
const (
	RouteLogin          = "login"
	RouteDashboard      = "dashboard"
	RouteMembers        = "members"
	RouteStaff          = "staff"
	RouteTrainers       = "trainers"
	RoutePackages       = "packages"
	RouteMemberships    = "memberships"
	RoutePayments       = "payments"
	RouteReports        = "reports"
	RouteCheckIns       = "checkins"
	RouteClassSchedules = "class-schedules"
	RouteActivityLog    = "activity-log"
)

type RouteMeta struct {
	RequiresAuth bool
	AdminOnly    bool
}

// Routes lists every dashboard screen. Names missing from the table are
// treated as requiring authentication.
var Routes = map[string]RouteMeta{
	RouteLogin:          {RequiresAuth: false},
	RouteDashboard:      {RequiresAuth: true},
	RouteMembers:        {RequiresAuth: true},
	RouteStaff:          {RequiresAuth: true, AdminOnly: true},
	RouteTrainers:       {RequiresAuth: true},
	RoutePackages:       {RequiresAuth: true},
	RouteMemberships:    {RequiresAuth: true},
	RoutePayments:       {RequiresAuth: true},
	RouteReports:        {RequiresAuth: true},
	RouteCheckIns:       {RequiresAuth: true},
	RouteClassSchedules: {RequiresAuth: true},
	RouteActivityLog:    {RequiresAuth: true, AdminOnly: true},
}

// Session is the part of the gate the guard reads.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Decision is the outcome of a navigation. Redirect is empty when the
// navigation may proceed.
type Decision struct {
	Allow    bool   `json:"allow"`
	Redirect string `json:"redirect,omitempty"`
}

func allow() Decision { return Decision{Allow: true} }

func redirect(to string) Decision { return Decision{Redirect: to} }

// Guard decides whether the session may open the named route. Signed-out
// visitors go to login, signed-in users never see login again, and
// non-admins are sent back to the dashboard from admin screens.
func Guard(route string, s Session) Decision {
	meta, ok := Routes[route]
	if !ok {
		meta = RouteMeta{RequiresAuth: true}
	}

	switch {
	case meta.RequiresAuth && !s.IsAuthenticated():
		return redirect(RouteLogin)
	case route == RouteLogin && s.IsAuthenticated():
		return redirect(RouteDashboard)
	case meta.AdminOnly && !s.IsAdmin():
		return redirect(RouteDashboard)
	}
	return allow()
}
