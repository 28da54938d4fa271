package models

type RbacFunc func(orgID, userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule        Module = "USERS"
	JobModule          Module = "JOB"
	ApplicationModule  Module = "APPLICATION"
	OrganizationModule Module = "ORGANIZATION"
	NotificationModule Module = "NOTIFICATION"
	ProfileModule      Module = "PROFILE"
)

type Permission string

const (
	ViewPermission   Permission = "VIEW"
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ManagePermission Permission = "MANAGE"

	// права переходов воркфлоу, попадают в perms токена
	JobVerifyPermission  Permission = "JOB_VERIFY"
	JobEnrichPermission  Permission = "JOB_ENRICH"
	JobApprovePermission Permission = "JOB_APPROVE"
	JobPublishPermission Permission = "JOB_PUBLISH"
)

// RoleFlowPermissions — какие права воркфлоу выдаются роли при выпуске токена
var RoleFlowPermissions = map[UserRole][]Permission{
	UserRoleSuperAdmin: {JobVerifyPermission, JobEnrichPermission, JobApprovePermission, JobPublishPermission},
	UserRoleHRAdmin:    {JobVerifyPermission, JobApprovePermission, JobPublishPermission},
	UserRoleTA:         {JobEnrichPermission},
	UserRoleEmployee:   {},
	UserRoleVendor:     {},
}
