package booking

// Глобальный порог видимости в поиске: студент скрывается, когда занял
// больше двух программ или все четыре группы.
const (
	maxPrograms    = 2
	maxTotalGroups = 4
)

// EligibleForSearch решает, показывать ли студента в общей выдаче поиска.
// Студент без активных броней (load == nil) всегда доступен с полной
// вместимостью. Состояние не меняется — фильтр влияет только на выдачу.
func EligibleForSearch(load *StudentLoad) bool {
	if load == nil {
		return true
	}
	return load.ProgramCount <= maxPrograms && load.TotalGroups < maxTotalGroups
}

// ProgramAvailability — точечная доступность студента для конкретной
// программы (окно бронирования): сколько групп ещё можно выбрать и какие
// программы предложить взамен, если целевая недоступна.
type ProgramAvailability struct {
	Program         string   `json:"program"`
	RemainingGroups int      `json:"remaining_groups"`
	Alternatives    []string `json:"alternatives,omitempty"`
}

// ProgramOptions считает доступность студента для целевой программы.
// Если студент уже занят в двух различных программах и целевая не из их
// числа — бронирование невозможно, возвращаем программы, где ещё есть
// место (groups < 2). Иначе остаток = 2 минус занятые группы по программе.
func ProgramOptions(load *StudentLoad, program string) ProgramAvailability {
	if load == nil {
		return ProgramAvailability{Program: program, RemainingGroups: MaxGroupsPerProgram}
	}

	if !load.HasProgram(program) && load.ProgramCount >= maxPrograms {
		var alternatives []string
		for _, p := range load.ProgramDetails {
			if p.Groups < MaxGroupsPerProgram {
				alternatives = append(alternatives, p.Program)
			}
		}
		return ProgramAvailability{Program: program, Alternatives: alternatives}
	}

	remaining := MaxGroupsPerProgram - load.GroupsFor(program)
	if remaining < 0 {
		remaining = 0
	}
	return ProgramAvailability{Program: program, RemainingGroups: remaining}
}
