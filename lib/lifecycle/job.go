package lifecycle

import (
	"solventek-backend/models"
)

const (
	JobTransitionSubmit      TransitionName = "submit"
	JobTransitionVerify      TransitionName = "verify"
	JobTransitionEnrich      TransitionName = "enrich"
	JobTransitionFinalVerify TransitionName = "finalVerify"
	JobTransitionPublish     TransitionName = "publish"
	JobTransitionPause       TransitionName = "pause"
	JobTransitionResume      TransitionName = "resume"
	JobTransitionClose       TransitionName = "close"
)

// Job — воркфлоу позиции:
// DRAFT → SUBMITTED → ADMIN_VERIFIED → TA_ENRICHED → ADMIN_FINAL_VERIFIED → PUBLISHED,
// далее PUBLISHED ⇄ PAUSED, PUBLISHED/PAUSED → CLOSED (терминальное).
var Job = Machine[models.JobStatus]{
	States: []models.JobStatus{
		models.JobStatusDraft,
		models.JobStatusSubmitted,
		models.JobStatusAdminVerified,
		models.JobStatusTAEnriched,
		models.JobStatusAdminFinalVerified,
		models.JobStatusPublished,
		models.JobStatusPaused,
		models.JobStatusClosed,
	},
	Transitions: []Transition[models.JobStatus]{
		{
			// отправка черновика на проверку: своя организация либо внутренняя роль
			Name: JobTransitionSubmit,
			From: []models.JobStatus{models.JobStatusDraft},
			To:   models.JobStatusSubmitted,
			Allow: func(actor models.Actor, subj Subject[models.JobStatus]) bool {
				return actor.Role.IsInternal() || (subj.OrgName != "" && actor.OrgName == subj.OrgName)
			},
		},
		{
			Name:       JobTransitionVerify,
			From:       []models.JobStatus{models.JobStatusSubmitted},
			To:         models.JobStatusAdminVerified,
			Permission: models.JobVerifyPermission,
		},
		{
			// самопроверка: DRAFT может верифицировать его собственная
			// организация без права JOB_VERIFY. Это именно ИЛИ к строке выше.
			Name:      JobTransitionVerify,
			From:      []models.JobStatus{models.JobStatusDraft},
			To:        models.JobStatusAdminVerified,
			OrgScoped: true,
		},
		{
			Name:       JobTransitionEnrich,
			From:       []models.JobStatus{models.JobStatusAdminVerified},
			To:         models.JobStatusTAEnriched,
			Permission: models.JobEnrichPermission,
			OrgScoped:  true,
		},
		{
			Name:       JobTransitionFinalVerify,
			From:       []models.JobStatus{models.JobStatusTAEnriched},
			To:         models.JobStatusAdminFinalVerified,
			Permission: models.JobApprovePermission,
			OrgScoped:  true,
		},
		{
			Name:       JobTransitionPublish,
			From:       []models.JobStatus{models.JobStatusAdminFinalVerified},
			To:         models.JobStatusPublished,
			Permission: models.JobPublishPermission,
			OrgScoped:  true,
		},
		{
			Name:       JobTransitionPause,
			From:       []models.JobStatus{models.JobStatusPublished},
			To:         models.JobStatusPaused,
			Permission: models.JobPublishPermission,
			OrgScoped:  true,
		},
		{
			Name:       JobTransitionResume,
			From:       []models.JobStatus{models.JobStatusPaused},
			To:         models.JobStatusPublished,
			Permission: models.JobPublishPermission,
			OrgScoped:  true,
		},
		{
			Name:       JobTransitionClose,
			From:       []models.JobStatus{models.JobStatusPublished, models.JobStatusPaused},
			To:         models.JobStatusClosed,
			Permission: models.JobPublishPermission,
			OrgScoped:  true,
		},
	},
}
