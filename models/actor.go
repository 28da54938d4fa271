package models

// Actor — кто выполняет операцию. Собирается из клеймов токена в middleware
// и передается явно во все проверки воркфлоу, без глобального состояния.
type Actor struct {
	UserID      string       `json:"user_id"`
	Role        UserRole     `json:"role"`
	OrgName     string       `json:"org_name"`
	OrgType     OrgType      `json:"org_type"`
	Permissions []Permission `json:"permissions"`
}

func (a Actor) HasPermission(code Permission) bool {
	for _, p := range a.Permissions {
		if p == code {
			return true
		}
	}
	return false
}
