package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"solventek-backend/models"
)

func hrAdmin(org string, perms ...models.Permission) models.Actor {
	return models.Actor{
		UserID:      "u1",
		Role:        models.UserRoleHRAdmin,
		OrgName:     org,
		OrgType:     models.OrgTypeSolventek,
		Permissions: perms,
	}
}

func taUser(org string, perms ...models.Permission) models.Actor {
	return models.Actor{
		UserID:      "u2",
		Role:        models.UserRoleTA,
		OrgName:     org,
		OrgType:     models.OrgTypeSolventek,
		Permissions: perms,
	}
}

func jobSubject(state models.JobStatus, org string) Subject[models.JobStatus] {
	return Subject[models.JobStatus]{ID: "j1", State: state, OrgName: org}
}

func TestJobLifecycle(t *testing.T) {
	t.Run(`verify из SUBMITTED с правом JOB_VERIFY`, func(t *testing.T) {
		actor := hrAdmin("Acme", models.JobVerifyPermission)
		subj := jobSubject(models.JobStatusSubmitted, "Acme")
		require.True(t, Job.CanTransition(actor, subj, JobTransitionVerify))

		newState, ok := Job.Apply(subj.State, JobTransitionVerify)
		require.True(t, ok)
		require.Equal(t, models.JobStatusAdminVerified, newState)
	})

	t.Run(`verify из SUBMITTED доступен чужой организации`, func(t *testing.T) {
		actor := hrAdmin("Solventek", models.JobVerifyPermission)
		subj := jobSubject(models.JobStatusSubmitted, "Acme")
		require.True(t, Job.CanTransition(actor, subj, JobTransitionVerify))
	})

	t.Run(`самопроверка DRAFT своей организацией без права`, func(t *testing.T) {
		actor := hrAdmin("Acme")
		subj := jobSubject(models.JobStatusDraft, "Acme")
		require.True(t, Job.CanTransition(actor, subj, JobTransitionVerify))
	})

	t.Run(`самопроверка DRAFT чужой организацией запрещена`, func(t *testing.T) {
		actor := hrAdmin("OtherOrg")
		subj := jobSubject(models.JobStatusDraft, "Acme")
		require.False(t, Job.CanTransition(actor, subj, JobTransitionVerify))
	})

	t.Run(`нелегальность состояния побеждает права`, func(t *testing.T) {
		actor := hrAdmin("Acme",
			models.JobVerifyPermission, models.JobEnrichPermission,
			models.JobApprovePermission, models.JobPublishPermission)
		for _, state := range []models.JobStatus{
			models.JobStatusPublished, models.JobStatusClosed, models.JobStatusTAEnriched,
		} {
			subj := jobSubject(state, "Acme")
			require.False(t, Job.CanTransition(actor, subj, JobTransitionVerify),
				"verify из %v должен быть запрещен", state)
		}
	})

	t.Run(`enrich запрещен при несовпадении организации`, func(t *testing.T) {
		actor := taUser("OtherOrg", models.JobEnrichPermission)
		subj := jobSubject(models.JobStatusAdminVerified, "Acme")
		require.False(t, Job.CanTransition(actor, subj, JobTransitionEnrich))
	})

	t.Run(`enrich доступен своей организации с правом`, func(t *testing.T) {
		actor := taUser("Acme", models.JobEnrichPermission)
		subj := jobSubject(models.JobStatusAdminVerified, "Acme")
		require.True(t, Job.CanTransition(actor, subj, JobTransitionEnrich))
	})

	t.Run(`enrich без права запрещен даже своей организации`, func(t *testing.T) {
		actor := taUser("Acme")
		subj := jobSubject(models.JobStatusAdminVerified, "Acme")
		require.False(t, Job.CanTransition(actor, subj, JobTransitionEnrich))
	})

	t.Run(`из PUBLISHED доступны только pause и close`, func(t *testing.T) {
		actor := hrAdmin("Acme",
			models.JobVerifyPermission, models.JobEnrichPermission,
			models.JobApprovePermission, models.JobPublishPermission)
		subj := jobSubject(models.JobStatusPublished, "Acme")
		available := Job.AvailableTransitions(actor, subj)
		require.ElementsMatch(t,
			[]TransitionName{JobTransitionPause, JobTransitionClose},
			available)
	})

	t.Run(`PAUSED возвращается в PUBLISHED`, func(t *testing.T) {
		actor := hrAdmin("Acme", models.JobPublishPermission)
		subj := jobSubject(models.JobStatusPaused, "Acme")
		available := Job.AvailableTransitions(actor, subj)
		require.ElementsMatch(t,
			[]TransitionName{JobTransitionResume, JobTransitionClose},
			available)
	})

	t.Run(`CLOSED терминален`, func(t *testing.T) {
		actor := hrAdmin("Acme",
			models.JobVerifyPermission, models.JobEnrichPermission,
			models.JobApprovePermission, models.JobPublishPermission)
		subj := jobSubject(models.JobStatusClosed, "Acme")
		require.Empty(t, Job.AvailableTransitions(actor, subj))
	})

	t.Run(`submit доступен своей организации и внутренним ролям`, func(t *testing.T) {
		subj := jobSubject(models.JobStatusDraft, "Acme")
		vendor := models.Actor{UserID: "v1", Role: models.UserRoleVendor, OrgName: "Acme", OrgType: models.OrgTypeVendor}
		foreignVendor := models.Actor{UserID: "v2", Role: models.UserRoleVendor, OrgName: "OtherOrg", OrgType: models.OrgTypeVendor}
		require.True(t, Job.CanTransition(vendor, subj, JobTransitionSubmit))
		require.False(t, Job.CanTransition(foreignVendor, subj, JobTransitionSubmit))
		require.True(t, Job.CanTransition(taUser("Solventek"), subj, JobTransitionSubmit))
	})

	t.Run(`полный счастливый путь`, func(t *testing.T) {
		state := models.JobStatusSubmitted
		steps := []struct {
			name TransitionName
			want models.JobStatus
		}{
			{JobTransitionVerify, models.JobStatusAdminVerified},
			{JobTransitionEnrich, models.JobStatusTAEnriched},
			{JobTransitionFinalVerify, models.JobStatusAdminFinalVerified},
			{JobTransitionPublish, models.JobStatusPublished},
		}
		for _, step := range steps {
			next, ok := Job.Apply(state, step.name)
			require.True(t, ok, "переход %v из %v", step.name, state)
			require.Equal(t, step.want, next)
			state = next
		}
	})

	t.Run(`все целевые состояния валидны`, func(t *testing.T) {
		for _, tr := range Job.Transitions {
			require.True(t, Job.IsValidState(tr.To), "переход %v ведет в неизвестное состояние", tr.Name)
			for _, from := range tr.From {
				require.True(t, Job.IsValidState(from))
			}
		}
	})
}
