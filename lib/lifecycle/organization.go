package lifecycle

import (
	"solventek-backend/models"
)

const (
	OrgTransitionApprove    TransitionName = "approve"
	OrgTransitionReject     TransitionName = "reject"
	OrgTransitionActivate   TransitionName = "activate"
	OrgTransitionDeactivate TransitionName = "deactivate"
)

func adminRoles(actor models.Actor, _ Subject[models.OrganizationStatus]) bool {
	return actor.Role == models.UserRoleSuperAdmin || actor.Role == models.UserRoleHRAdmin
}

func superAdminOnly(actor models.Actor, _ Subject[models.OrganizationStatus]) bool {
	return actor.Role == models.UserRoleSuperAdmin
}

// Organization — воркфлоу вендора. Из REJECTED переходов нет: отклоненный
// вендор заводится заново, а не реанимируется.
var Organization = Machine[models.OrganizationStatus]{
	States: []models.OrganizationStatus{
		models.OrganizationStatusPendingVerification,
		models.OrganizationStatusApproved,
		models.OrganizationStatusRejected,
		models.OrganizationStatusActive,
		models.OrganizationStatusInactive,
	},
	Transitions: []Transition[models.OrganizationStatus]{
		{
			Name:  OrgTransitionApprove,
			From:  []models.OrganizationStatus{models.OrganizationStatusPendingVerification},
			To:    models.OrganizationStatusApproved,
			Allow: adminRoles,
		},
		{
			Name:  OrgTransitionReject,
			From:  []models.OrganizationStatus{models.OrganizationStatusPendingVerification},
			To:    models.OrganizationStatusRejected,
			Allow: adminRoles,
		},
		{
			Name:  OrgTransitionActivate,
			From:  []models.OrganizationStatus{models.OrganizationStatusApproved, models.OrganizationStatusInactive},
			To:    models.OrganizationStatusActive,
			Allow: superAdminOnly,
		},
		{
			Name:  OrgTransitionDeactivate,
			From:  []models.OrganizationStatus{models.OrganizationStatusApproved, models.OrganizationStatusActive},
			To:    models.OrganizationStatusInactive,
			Allow: superAdminOnly,
		},
	},
}
