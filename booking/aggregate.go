package booking

import (
	"sort"

	"assistant-booking/models"
)

// ActiveRow — минимальная проекция активной брони, нужная агрегатору.
type ActiveRow struct {
	StudentID   int    `db:"student_id"`
	Program     string `db:"program"`
	GroupsCount int    `db:"groups_count"`
}

// StudentLoad — загрузка студента по активным броням: занятые программы,
// число различных программ и суммарное число групп.
type StudentLoad struct {
	ProgramDetails []models.ProgramLoad `json:"program_details"`
	ProgramCount   int                  `json:"program_count"`
	TotalGroups    int                  `json:"total_groups"`
}

// Aggregate сворачивает активные брони в загрузку по каждому студенту:
// сначала суммируем groups_count по (студент, программа), затем считаем
// число программ и общий итог. Пересчитывается на каждый запрос, кэша нет.
func Aggregate(rows []ActiveRow) map[int]*StudentLoad {
	perProgram := make(map[int]map[string]int)
	for _, r := range rows {
		if perProgram[r.StudentID] == nil {
			perProgram[r.StudentID] = make(map[string]int)
		}
		perProgram[r.StudentID][r.Program] += r.GroupsCount
	}

	loads := make(map[int]*StudentLoad, len(perProgram))
	for studentID, programs := range perProgram {
		load := &StudentLoad{}
		for program, groups := range programs {
			load.ProgramDetails = append(load.ProgramDetails, models.ProgramLoad{Program: program, Groups: groups})
			load.TotalGroups += groups
		}
		load.ProgramCount = len(programs)
		sort.Slice(load.ProgramDetails, func(i, j int) bool {
			return load.ProgramDetails[i].Program < load.ProgramDetails[j].Program
		})
		loads[studentID] = load
	}
	return loads
}

// GroupsFor возвращает занятые группы по конкретной программе (0, если программа новая).
func (l *StudentLoad) GroupsFor(program string) int {
	if l == nil {
		return 0
	}
	for _, p := range l.ProgramDetails {
		if p.Program == program {
			return p.Groups
		}
	}
	return 0
}

// HasProgram — есть ли у студента активные брони по этой программе.
func (l *StudentLoad) HasProgram(program string) bool {
	if l == nil {
		return false
	}
	for _, p := range l.ProgramDetails {
		if p.Program == program {
			return true
		}
	}
	return false
}
