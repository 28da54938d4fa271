package models

type ApplicationStatus string

const (
	ApplicationStatusApplied             ApplicationStatus = "APPLIED"
	ApplicationStatusShortlisted         ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewScheduled  ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationStatusInterviewPassed     ApplicationStatus = "INTERVIEW_PASSED"
	ApplicationStatusInterviewFailed     ApplicationStatus = "INTERVIEW_FAILED"
	ApplicationStatusOffered             ApplicationStatus = "OFFERED"
	ApplicationStatusOnboardingInProcess ApplicationStatus = "ONBOARDING_IN_PROGRESS"
	ApplicationStatusOnboarded           ApplicationStatus = "ONBOARDED"
	ApplicationStatusConvertedToFTE      ApplicationStatus = "CONVERTED_TO_FTE"
	ApplicationStatusRejected            ApplicationStatus = "REJECTED"
	ApplicationStatusDropped             ApplicationStatus = "DROPPED"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:             "Отклик получен",
	ApplicationStatusShortlisted:         "В шортлисте",
	ApplicationStatusInterviewScheduled:  "Интервью назначено",
	ApplicationStatusInterviewPassed:     "Интервью пройдено",
	ApplicationStatusInterviewFailed:     "Интервью не пройдено",
	ApplicationStatusOffered:             "Оффер",
	ApplicationStatusOnboardingInProcess: "Оформление",
	ApplicationStatusOnboarded:           "Оформлен",
	ApplicationStatusConvertedToFTE:      "Переведен в штат",
	ApplicationStatusRejected:            "Отклонен",
	ApplicationStatusDropped:             "Снят с рассмотрения",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) Validate() bool {
	_, exist := applicationStatusHumanName[s]
	return exist
}
