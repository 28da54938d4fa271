package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"solventek-backend/models"
)

func appSubject(state models.ApplicationStatus, org string) Subject[models.ApplicationStatus] {
	return Subject[models.ApplicationStatus]{ID: "a1", State: state, OrgName: org}
}

func TestApplicationLifecycle(t *testing.T) {
	ta := models.Actor{UserID: "u1", Role: models.UserRoleTA, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
	employee := models.Actor{UserID: "u2", Role: models.UserRoleEmployee, OrgName: "Solventek", OrgType: models.OrgTypeSolventek}
	vendor := models.Actor{UserID: "u3", Role: models.UserRoleVendor, OrgName: "VendorOrg", OrgType: models.OrgTypeVendor}

	t.Run(`внутренняя роль меняет статус свободно`, func(t *testing.T) {
		subj := appSubject(models.ApplicationStatusDropped, "VendorOrg")
		// возврат снятого кандидата в работу — легальное нелинейное исключение
		require.True(t, CanUpdateApplicationStatus(ta, subj, models.ApplicationStatusShortlisted))
	})

	t.Run(`неизвестный статус запрещен`, func(t *testing.T) {
		subj := appSubject(models.ApplicationStatusApplied, "VendorOrg")
		require.False(t, CanUpdateApplicationStatus(ta, subj, models.ApplicationStatus("UNKNOWN")))
	})

	t.Run(`вендор может только отозвать свою подачу`, func(t *testing.T) {
		subj := appSubject(models.ApplicationStatusApplied, "VendorOrg")
		require.True(t, CanUpdateApplicationStatus(vendor, subj, models.ApplicationStatusDropped))
		require.False(t, CanUpdateApplicationStatus(vendor, subj, models.ApplicationStatusShortlisted))

		foreign := appSubject(models.ApplicationStatusApplied, "OtherVendor")
		require.False(t, CanUpdateApplicationStatus(vendor, foreign, models.ApplicationStatusDropped))
	})

	t.Run(`роль EMPLOYEE не меняет статусы`, func(t *testing.T) {
		subj := appSubject(models.ApplicationStatusApplied, "VendorOrg")
		require.False(t, CanUpdateApplicationStatus(employee, subj, models.ApplicationStatusShortlisted))
	})

	t.Run(`решение заказчика`, func(t *testing.T) {
		subj := appSubject(models.ApplicationStatusInterviewPassed, "VendorOrg")
		require.True(t, CanMakeDecision(employee, subj))
		require.True(t, CanMakeDecision(ta, subj))
		require.False(t, CanMakeDecision(vendor, subj))

		early := appSubject(models.ApplicationStatusApplied, "VendorOrg")
		require.False(t, CanMakeDecision(employee, early))

		require.Equal(t, models.ApplicationStatusOffered, DecisionStatus(true))
		require.Equal(t, models.ApplicationStatusRejected, DecisionStatus(false))
	})
}
