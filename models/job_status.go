package models

type JobStatus string

const (
	JobStatusDraft              JobStatus = "DRAFT"
	JobStatusSubmitted          JobStatus = "SUBMITTED"
	JobStatusAdminVerified      JobStatus = "ADMIN_VERIFIED"
	JobStatusTAEnriched         JobStatus = "TA_ENRICHED"
	JobStatusAdminFinalVerified JobStatus = "ADMIN_FINAL_VERIFIED"
	JobStatusPublished          JobStatus = "PUBLISHED"
	JobStatusPaused             JobStatus = "PAUSED"
	JobStatusClosed             JobStatus = "CLOSED"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusDraft:              "Черновик",
	JobStatusSubmitted:          "Отправлена на проверку",
	JobStatusAdminVerified:      "Проверена администратором",
	JobStatusTAEnriched:         "Дополнена рекрутером",
	JobStatusAdminFinalVerified: "Финальная проверка пройдена",
	JobStatusPublished:          "Опубликована",
	JobStatusPaused:             "Приостановлена",
	JobStatusClosed:             "Закрыта",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s JobStatus) Validate() bool {
	_, exist := jobStatusHumanName[s]
	return exist
}
