package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name      string
		current   int
		requested int
		allowed   bool
		available int
	}{
		{"свободный студент, две группы", 0, 2, true, 2},
		{"свободный студент, одна группа", 0, 1, true, 2},
		{"одна занята, одна свободна", 1, 1, true, 1},
		{"потолок достигнут", 2, 1, false, 0},
		{"одна занята, просят две", 1, 2, false, 1},
		{"потолок достигнут, просят две", 2, 2, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Evaluate(tc.current, tc.requested)
			assert.Equal(t, tc.allowed, d.Allowed)
			assert.Equal(t, tc.current, d.CurrentGroups)
			assert.Equal(t, tc.available, d.AvailableGroups)
			if tc.allowed {
				assert.Empty(t, d.Reason)
			} else {
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestEvaluateReasonPluralization(t *testing.T) {
	// При одной доступной группе — единственное число.
	d := Evaluate(1, 2)
	require.False(t, d.Allowed)
	assert.Equal(t, "Студент уже имеет 1 групп для данной дисциплины и программы. Доступно для бронирования: 1 группа", d.Reason)

	// При нуле — множественное.
	d = Evaluate(2, 1)
	require.False(t, d.Allowed)
	assert.Equal(t, "Студент уже имеет 2 групп для данной дисциплины и программы. Доступно для бронирования: 0 группы", d.Reason)
}

func TestCapacityError(t *testing.T) {
	d := Evaluate(2, 2)
	err := &CapacityError{Decision: d}
	assert.Equal(t, d.Reason, err.Error())
}

// Сквозной сценарий: бронь на одну группу, затем попытка добрать две
// в той же дисциплине и программе.
func TestBookThenOverbook(t *testing.T) {
	rows := []ActiveRow{
		{StudentID: 7, Program: "X", GroupsCount: 1},
	}
	load := Aggregate(rows)[7]
	require.NotNil(t, load)
	assert.Equal(t, []string{"X"}, programNames(load))
	assert.Equal(t, 1, load.GroupsFor("X"))

	d := Evaluate(load.GroupsFor("X"), 2)
	require.False(t, d.Allowed)
	assert.Equal(t, 1, d.AvailableGroups)
	assert.Contains(t, d.Reason, "1 группа")
}

func programNames(load *StudentLoad) []string {
	names := make([]string, 0, len(load.ProgramDetails))
	for _, p := range load.ProgramDetails {
		names = append(names, p.Program)
	}
	return names
}
