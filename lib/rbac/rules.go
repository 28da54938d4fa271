package rbac

import (
	"solventek-backend/models"
)

var (
	AdminRoleSet    = []models.UserRole{models.UserRoleSuperAdmin, models.UserRoleHRAdmin}
	InternalRoleSet = []models.UserRole{models.UserRoleSuperAdmin, models.UserRoleHRAdmin, models.UserRoleTA}
	// все роли штатной организации, включая заказчика-сотрудника
	StaffRoleSet   = []models.UserRole{models.UserRoleSuperAdmin, models.UserRoleHRAdmin, models.UserRoleTA, models.UserRoleEmployee}
	CreatorRoleSet = []models.UserRole{models.UserRoleSuperAdmin, models.UserRoleHRAdmin, models.UserRoleTA, models.UserRoleVendor}
	AllRoles       = []models.UserRole{models.UserRoleSuperAdmin, models.UserRoleHRAdmin, models.UserRoleTA, models.UserRoleEmployee, models.UserRoleVendor}
)

func (i *impl) initRules() {
	i.job()
	i.application()
	i.organization()
	i.notification()
	i.profile()
}

func (i *impl) job() {
	// VIEW
	i.RegisterRule(models.JobModule, models.ViewPermission, AllRoles, "/api/v1/job/list [post]", nil)
	i.RegisterRule(models.JobModule, models.ViewPermission, AllRoles, "/api/v1/job/{id} [get]", nil)
	i.RegisterRule(models.JobModule, models.ViewPermission, AllRoles, "/api/v1/job/{id}/transitions [get]", nil)
	i.RegisterRule(models.JobModule, models.ViewPermission, InternalRoleSet, "/api/v1/job/export [post]", nil)
	// CREATE/EDIT
	i.RegisterRule(models.JobModule, models.CreatePermission, CreatorRoleSet, "/api/v1/job [post]", nil)
	i.RegisterRule(models.JobModule, models.EditPermission, CreatorRoleSet, "/api/v1/job/{id} [put]", nil)
	i.RegisterRule(models.JobModule, models.EditPermission, CreatorRoleSet, "/api/v1/job/{id} [delete]", nil)
	// переходы воркфлоу, детальный гард внутри машины статусов
	i.RegisterRule(models.JobModule, models.ManagePermission, AllRoles, "/api/v1/job/{id}/transition/{name} [put]", nil)
}

func (i *impl) application() {
	// VIEW
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, AllRoles, "/api/v1/application/list [post]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, AllRoles, "/api/v1/application/{id} [get]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, AllRoles, "/api/v1/application/{id}/timeline [post]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, AllRoles, "/api/v1/application/{id}/doc/{fileId} [get]", nil)
	i.RegisterRule(models.ApplicationModule, models.ViewPermission, InternalRoleSet, "/api/v1/application/export [post]", nil)
	// CREATE/EDIT
	i.RegisterRule(models.ApplicationModule, models.CreatePermission, CreatorRoleSet, "/api/v1/application [post]", nil)
	i.RegisterRule(models.ApplicationModule, models.EditPermission, CreatorRoleSet, "/api/v1/application/{id}/status [put]", nil)
	i.RegisterRule(models.ApplicationModule, models.EditPermission, AllRoles, "/api/v1/application/{id}/note [put]", nil)
	i.RegisterRule(models.ApplicationModule, models.EditPermission, CreatorRoleSet, "/api/v1/application/{id}/upload-doc [post]", nil)
	// решение по кандидату принимает заказчик, вендору оно недоступно
	i.RegisterRule(models.ApplicationModule, models.ManagePermission, StaffRoleSet, "/api/v1/application/{id}/decision [put]", nil)
}

func (i *impl) organization() {
	// VIEW
	i.RegisterRule(models.OrganizationModule, models.ViewPermission, AllRoles, "/api/v1/org/list [post]", nil)
	i.RegisterRule(models.OrganizationModule, models.ViewPermission, AllRoles, "/api/v1/org/{id} [get]", nil)
	// MANAGE
	i.RegisterRule(models.OrganizationModule, models.ManagePermission, AdminRoleSet, "/api/v1/org/{id}/approve [put]", nil)
	i.RegisterRule(models.OrganizationModule, models.ManagePermission, AdminRoleSet, "/api/v1/org/{id}/reject [put]", nil)
	i.RegisterRule(models.OrganizationModule, models.ManagePermission, []models.UserRole{models.UserRoleSuperAdmin}, "/api/v1/org/{id}/change_status [put]", nil)
}

func (i *impl) notification() {
	i.RegisterRule(models.NotificationModule, models.ViewPermission, AllRoles, "/api/v1/notification/unread [get]", nil)
	i.RegisterRule(models.NotificationModule, models.EditPermission, AllRoles, "/api/v1/notification/mark_read [put]", nil)
}

func (i *impl) profile() {
	i.RegisterRule(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/user_profile [get]", nil)
}
