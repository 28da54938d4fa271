package models

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleHRAdmin    UserRole = "HR_ADMIN"
	UserRoleTA         UserRole = "TA"
	UserRoleEmployee   UserRole = "EMPLOYEE"
	UserRoleVendor     UserRole = "VENDOR"
)

var roleHumanName = map[UserRole]string{
	UserRoleSuperAdmin: "Суперадмин системы",
	UserRoleHRAdmin:    "Администратор HR",
	UserRoleTA:         "Рекрутер",
	UserRoleEmployee:   "Сотрудник",
	UserRoleVendor:     "Вендор",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// IsInternal — роль штатной команды подбора
func (r UserRole) IsInternal() bool {
	return r == UserRoleSuperAdmin || r == UserRoleHRAdmin || r == UserRoleTA
}

func (r UserRole) Validate() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "Система"

type OrgType string

const (
	OrgTypeSolventek OrgType = "SOLVENTEK"
	OrgTypeVendor    OrgType = "VENDOR"
)

func (t OrgType) Validate() bool {
	return t == OrgTypeSolventek || t == OrgTypeVendor
}
