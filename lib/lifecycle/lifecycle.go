package lifecycle

import (
	"slices"

	"solventek-backend/models"
)

// Пакет реализует машины состояний воркфлоу: позиции, кандидаты, организации.
// Таблицы переходов — неизменяемые package-level значения, безопасны для
// конкурентного чтения. Проверка гарда — тотальный предикат без побочных
// эффектов: она решает только, предлагать ли действие; сервер при мутации
// проверяет гард повторно.

type TransitionName string

// Subject — сущность с точки зрения машины состояний
type Subject[S ~string] struct {
	ID      string
	State   S
	OrgName string // владеющая организация, пусто для внутренних сущностей
}

// Transition — один разрешенный переход. Несколько строк с одним именем
// означают ИЛИ: переход доступен, если проходит хотя бы одна строка.
type Transition[S ~string] struct {
	Name TransitionName
	From []S // пустой список = из любого состояния
	To   S
	// требуемое право из клеймов токена, пусто = не требуется
	Permission models.Permission
	// переход доступен только владеющей организации
	OrgScoped bool
	// дополнительное условие поверх стандартных проверок
	Allow func(actor models.Actor, subj Subject[S]) bool
}

func (t Transition[S]) allows(actor models.Actor, subj Subject[S]) bool {
	// нелегальность состояния всегда побеждает права
	if len(t.From) > 0 && !slices.Contains(t.From, subj.State) {
		return false
	}
	if t.Permission != "" && !actor.HasPermission(t.Permission) {
		return false
	}
	if t.OrgScoped {
		if subj.OrgName == "" || actor.OrgName != subj.OrgName {
			return false
		}
	}
	if t.Allow != nil && !t.Allow(actor, subj) {
		return false
	}
	return true
}

type Machine[S ~string] struct {
	States      []S
	Transitions []Transition[S]
}

func (m Machine[S]) IsValidState(s S) bool {
	return slices.Contains(m.States, s)
}

// CanTransition — можно ли актору выполнить переход сейчас. Никогда не
// возвращает ошибку: отказ гарда — штатное состояние, а не исключение.
func (m Machine[S]) CanTransition(actor models.Actor, subj Subject[S], name TransitionName) bool {
	for _, t := range m.Transitions {
		if t.Name != name {
			continue
		}
		if t.allows(actor, subj) {
			return true
		}
	}
	return false
}

// AvailableTransitions — имена переходов, доступных актору для сущности.
// Порядок следования таблицы сохраняется, дубликаты имен схлопываются.
func (m Machine[S]) AvailableTransitions(actor models.Actor, subj Subject[S]) []TransitionName {
	result := make([]TransitionName, 0, len(m.Transitions))
	for _, t := range m.Transitions {
		if slices.Contains(result, t.Name) {
			continue
		}
		if t.allows(actor, subj) {
			result = append(result, t.Name)
		}
	}
	return result
}

// Apply — целевое состояние перехода из текущего состояния
func (m Machine[S]) Apply(state S, name TransitionName) (S, bool) {
	for _, t := range m.Transitions {
		if t.Name != name {
			continue
		}
		if len(t.From) == 0 || slices.Contains(t.From, state) {
			return t.To, true
		}
	}
	var zero S
	return zero, false
}

func TransitionNames(list []TransitionName) []string {
	result := make([]string, 0, len(list))
	for _, name := range list {
		result = append(result, string(name))
	}
	return result
}
