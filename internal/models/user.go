package models

// User is a collaborator record as returned by the API.
// TeamID is 0 when the user is not assigned to any team (the backend
// sends null, which decodes to the zero value).
type User struct {
	ID         int        `json:"id_user"`
	Name       string     `json:"name_user"`
	Email      string     `json:"user_email"`
	Role       string     `json:"role_user"`
	Permission Permission `json:"permission_user"`
	TeamID     int        `json:"id_team_user"`
	CreatedAt  string     `json:"created_at_user"`
}

// HasTeam reports whether the user is assigned to a team.
func (u User) HasTeam() bool {
	return u.TeamID != 0
}

// JoinedDate returns the date portion of the account creation timestamp,
// which the collaborators view shows in place of a deadline.
func (u User) JoinedDate() string {
	return DatePortion(u.CreatedAt)
}
