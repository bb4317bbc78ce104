package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-booking/models"
)

func TestAggregate(t *testing.T) {
	rows := []ActiveRow{
		{StudentID: 1, Program: "B", GroupsCount: 1},
		{StudentID: 1, Program: "A", GroupsCount: 2},
		{StudentID: 1, Program: "B", GroupsCount: 1},
		{StudentID: 2, Program: "A", GroupsCount: 1},
	}

	loads := Aggregate(rows)
	require.Len(t, loads, 2)

	first := loads[1]
	require.NotNil(t, first)
	assert.Equal(t, 2, first.ProgramCount)
	assert.Equal(t, 4, first.TotalGroups)
	// Детали отсортированы по имени программы, суммы свёрнуты.
	assert.Equal(t, []models.ProgramLoad{
		{Program: "A", Groups: 2},
		{Program: "B", Groups: 2},
	}, first.ProgramDetails)

	second := loads[2]
	require.NotNil(t, second)
	assert.Equal(t, 1, second.ProgramCount)
	assert.Equal(t, 1, second.TotalGroups)
}

func TestAggregateEmpty(t *testing.T) {
	loads := Aggregate(nil)
	assert.Empty(t, loads)
	// Студент без броней отсутствует в карте — его загрузка nil,
	// что трактуется как полная вместимость.
	assert.True(t, EligibleForSearch(loads[42]))
}

// Отмена брони (исключение строки из активных) возвращает вместимость:
// агрегат пересчитывается заново на каждый запрос.
func TestAggregateAfterCancel(t *testing.T) {
	active := []ActiveRow{
		{StudentID: 1, Program: "X", GroupsCount: 2},
		{StudentID: 1, Program: "Y", GroupsCount: 2},
	}
	load := Aggregate(active)[1]
	require.NotNil(t, load)
	assert.False(t, EligibleForSearch(load))
	assert.False(t, Evaluate(load.GroupsFor("X"), 1).Allowed)

	// Мягкое удаление брони по X.
	remaining := active[1:]
	load = Aggregate(remaining)[1]
	require.NotNil(t, load)
	assert.Equal(t, 1, load.ProgramCount)
	assert.Equal(t, 0, load.GroupsFor("X"))
	d := Evaluate(load.GroupsFor("X"), 2)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.AvailableGroups)

	// Удаление всех броней полностью восстанавливает доступность.
	loads := Aggregate(nil)
	assert.Nil(t, loads[1])
	assert.True(t, EligibleForSearch(loads[1]))
}

func TestStudentLoadHelpers(t *testing.T) {
	var empty *StudentLoad
	assert.Equal(t, 0, empty.GroupsFor("X"))
	assert.False(t, empty.HasProgram("X"))

	load := &StudentLoad{ProgramDetails: []models.ProgramLoad{{Program: "X", Groups: 1}}}
	assert.Equal(t, 1, load.GroupsFor("X"))
	assert.Equal(t, 0, load.GroupsFor("Y"))
	assert.True(t, load.HasProgram("X"))
	assert.False(t, load.HasProgram("Y"))
}
