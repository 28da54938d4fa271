package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"solventek-backend/models"
)

func orgSubject(state models.OrganizationStatus) Subject[models.OrganizationStatus] {
	return Subject[models.OrganizationStatus]{ID: "o1", State: state, OrgName: "VendorOrg"}
}

func TestOrganizationLifecycle(t *testing.T) {
	superAdmin := models.Actor{UserID: "u1", Role: models.UserRoleSuperAdmin, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
	hrAdmin := models.Actor{UserID: "u2", Role: models.UserRoleHRAdmin, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
	ta := models.Actor{UserID: "u3", Role: models.UserRoleTA, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
	vendor := models.Actor{UserID: "u4", Role: models.UserRoleVendor, OrgName: "VendorOrg", OrgType: models.OrgTypeVendor}

	t.Run(`approve и reject доступны админским ролям`, func(t *testing.T) {
		subj := orgSubject(models.OrganizationStatusPendingVerification)
		for _, actor := range []models.Actor{superAdmin, hrAdmin} {
			require.True(t, Organization.CanTransition(actor, subj, OrgTransitionApprove))
			require.True(t, Organization.CanTransition(actor, subj, OrgTransitionReject))
		}
		for _, actor := range []models.Actor{ta, vendor} {
			require.False(t, Organization.CanTransition(actor, subj, OrgTransitionApprove))
			require.False(t, Organization.CanTransition(actor, subj, OrgTransitionReject))
		}
	})

	t.Run(`activate/deactivate только суперадмину`, func(t *testing.T) {
		subj := orgSubject(models.OrganizationStatusApproved)
		require.True(t, Organization.CanTransition(superAdmin, subj, OrgTransitionActivate))
		require.False(t, Organization.CanTransition(hrAdmin, subj, OrgTransitionActivate))

		subj = orgSubject(models.OrganizationStatusActive)
		require.True(t, Organization.CanTransition(superAdmin, subj, OrgTransitionDeactivate))
		require.False(t, Organization.CanTransition(hrAdmin, subj, OrgTransitionDeactivate))
	})

	t.Run(`из REJECTED нет ни одного перехода`, func(t *testing.T) {
		subj := orgSubject(models.OrganizationStatusRejected)
		require.Empty(t, Organization.AvailableTransitions(superAdmin, subj))
	})

	t.Run(`INACTIVE возвращается в ACTIVE`, func(t *testing.T) {
		newState, ok := Organization.Apply(models.OrganizationStatusInactive, OrgTransitionActivate)
		require.True(t, ok)
		require.Equal(t, models.OrganizationStatusActive, newState)
	})
}
