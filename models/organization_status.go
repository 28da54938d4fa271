package models

type OrganizationStatus string

const (
	OrganizationStatusPendingVerification OrganizationStatus = "PENDING_VERIFICATION"
	OrganizationStatusApproved            OrganizationStatus = "APPROVED"
	OrganizationStatusRejected            OrganizationStatus = "REJECTED"
	OrganizationStatusActive              OrganizationStatus = "ACTIVE"
	OrganizationStatusInactive            OrganizationStatus = "INACTIVE"
)

var organizationStatusHumanName = map[OrganizationStatus]string{
	OrganizationStatusPendingVerification: "Ожидает проверки",
	OrganizationStatusApproved:            "Подтвержден",
	OrganizationStatusRejected:            "Отклонен",
	OrganizationStatusActive:              "Активен",
	OrganizationStatusInactive:            "Неактивен",
}

func (s OrganizationStatus) ToHuman() string {
	if human, exist := organizationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s OrganizationStatus) Validate() bool {
	_, exist := organizationStatusHumanName[s]
	return exist
}
