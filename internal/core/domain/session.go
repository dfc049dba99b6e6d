package domain

// Session is the authenticated identity of one client together with its resolved role.
type Session struct {
	User User `json:"user"`
	Role Role `json:"role"`
}
