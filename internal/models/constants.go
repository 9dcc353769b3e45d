package models

// Status is the lifecycle state of a task. The backend stores it as a
// plain string; the set below is what the create form offers.
type Status string

const (
	StatusOngoing    Status = "Ongoing"
	StatusLate       Status = "Late"
	StatusProgrammed Status = "Programmed"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// Statuses lists every task status in form/display order.
func Statuses() []Status {
	return []Status{
		StatusOngoing,
		StatusLate,
		StatusProgrammed,
		StatusDelivered,
		StatusCancelled,
	}
}

// Permission is the client-side action gate carried by each user.
//
// This gate only decides which actions the UI exposes. It is not a
// security control: the backend must enforce authorization on every
// mutation regardless of what the client shows.
type Permission string

const (
	PermissionNone    Permission = "None"
	PermissionManager Permission = "Manager"
	PermissionAdmin   Permission = "Admin"
)

// Permissions lists every permission level in form/display order.
func Permissions() []Permission {
	return []Permission{
		PermissionNone,
		PermissionManager,
		PermissionAdmin,
	}
}

// CanCreate reports whether creation actions (user, team, task) are
// exposed. Admin only.
func (p Permission) CanCreate() bool {
	return p == PermissionAdmin
}

// CanManage reports whether assignment actions are exposed. Admin or
// Manager.
func (p Permission) CanManage() bool {
	return p == PermissionAdmin || p == PermissionManager
}
