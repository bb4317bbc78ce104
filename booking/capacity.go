package booking

import "fmt"

// MaxGroupsPerProgram — потолок групп на студента в рамках одной пары
// (дисциплина, программа).
const MaxGroupsPerProgram = 2

// Decision — результат проверки вместимости перед созданием брони.
type Decision struct {
	Allowed         bool   `json:"allowed"`
	CurrentGroups   int    `json:"current_groups"`
	AvailableGroups int    `json:"available_groups"`
	Reason          string `json:"reason,omitempty"`
}

// Evaluate проверяет, можно ли добавить requestedGroups групп при уже занятых
// currentGroups в той же (дисциплина, программа). Вместимость всегда
// вычисляется из строк броней, счётчики нигде не хранятся.
func Evaluate(currentGroups, requestedGroups int) Decision {
	available := MaxGroupsPerProgram - currentGroups
	if available < 0 {
		available = 0
	}
	if currentGroups+requestedGroups > MaxGroupsPerProgram {
		return Decision{
			CurrentGroups:   currentGroups,
			AvailableGroups: available,
			Reason:          capacityReason(currentGroups, available),
		}
	}
	return Decision{Allowed: true, CurrentGroups: currentGroups, AvailableGroups: available}
}

// capacityReason — текст отказа с правильным склонением: 1 «группа», иначе «группы».
func capacityReason(current, available int) string {
	word := "группы"
	if available == 1 {
		word = "группа"
	}
	return fmt.Sprintf("Студент уже имеет %d групп для данной дисциплины и программы. Доступно для бронирования: %d %s", current, available, word)
}

// CapacityError — отказ по вместимости; контроллер транслирует его в 400.
type CapacityError struct {
	Decision Decision
}

func (e *CapacityError) Error() string {
	return e.Decision.Reason
}
