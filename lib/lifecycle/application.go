package lifecycle

import (
	"solventek-backend/models"
)

// Воркфлоу кандидата намеренно мягче позиции: статусы меняются одной общей
// операцией updateStatus, любой статус достижим прямым действием админа.
// В пайплайне подбора легальны нелинейные исключения, например возврат
// снятого кандидата в работу.

var ApplicationStates = []models.ApplicationStatus{
	models.ApplicationStatusApplied,
	models.ApplicationStatusShortlisted,
	models.ApplicationStatusInterviewScheduled,
	models.ApplicationStatusInterviewPassed,
	models.ApplicationStatusInterviewFailed,
	models.ApplicationStatusOffered,
	models.ApplicationStatusOnboardingInProcess,
	models.ApplicationStatusOnboarded,
	models.ApplicationStatusConvertedToFTE,
	models.ApplicationStatusRejected,
	models.ApplicationStatusDropped,
}

// CanUpdateApplicationStatus — гард общей смены статуса кандидата.
// Внутренние роли меняют статус свободно; вендор может только отозвать
// собственную подачу (перевод в DROPPED, отдельного статуса withdraw нет).
func CanUpdateApplicationStatus(actor models.Actor, subj Subject[models.ApplicationStatus], newStatus models.ApplicationStatus) bool {
	if !newStatus.Validate() {
		return false
	}
	if actor.Role.IsInternal() {
		return true
	}
	if actor.Role == models.UserRoleVendor {
		return newStatus == models.ApplicationStatusDropped &&
			subj.OrgName != "" && actor.OrgName == subj.OrgName
	}
	return false
}

// CanMakeDecision — гард решения заказчика. Решение записывается как
// метаданные к смене статуса на OFFERED или REJECTED.
func CanMakeDecision(actor models.Actor, subj Subject[models.ApplicationStatus]) bool {
	if actor.Role == models.UserRoleVendor {
		return false
	}
	// решение принимается по кандидату, прошедшему интервью
	return subj.State == models.ApplicationStatusInterviewPassed ||
		subj.State == models.ApplicationStatusOffered
}

// DecisionStatus — целевой статус по решению заказчика
func DecisionStatus(approved bool) models.ApplicationStatus {
	if approved {
		return models.ApplicationStatusOffered
	}
	return models.ApplicationStatusRejected
}
