package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant-booking/models"
)

func TestEligibleForSearch(t *testing.T) {
	cases := []struct {
		name     string
		load     *StudentLoad
		eligible bool
	}{
		{"без броней", nil, true},
		{"одна программа, одна группа", &StudentLoad{ProgramCount: 1, TotalGroups: 1}, true},
		{"две программы, по одной группе", &StudentLoad{ProgramCount: 2, TotalGroups: 2}, true},
		{"две программы, три группы", &StudentLoad{ProgramCount: 2, TotalGroups: 3}, true},
		{"две программы, все четыре группы", &StudentLoad{ProgramCount: 2, TotalGroups: 4}, false},
		{"три программы", &StudentLoad{ProgramCount: 3, TotalGroups: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.eligible, EligibleForSearch(tc.load))
		})
	}
}

func TestProgramOptionsFreshStudent(t *testing.T) {
	opts := ProgramOptions(nil, "X")
	assert.Equal(t, "X", opts.Program)
	assert.Equal(t, 2, opts.RemainingGroups)
	assert.Empty(t, opts.Alternatives)
}

func TestProgramOptionsKnownProgram(t *testing.T) {
	load := &StudentLoad{
		ProgramDetails: []models.ProgramLoad{{Program: "X", Groups: 1}},
		ProgramCount:   1,
		TotalGroups:    1,
	}
	opts := ProgramOptions(load, "X")
	assert.Equal(t, 1, opts.RemainingGroups)

	load.ProgramDetails[0].Groups = 2
	opts = ProgramOptions(load, "X")
	assert.Equal(t, 0, opts.RemainingGroups)
	assert.Empty(t, opts.Alternatives)
}

// Студент на двух программах недоступен для третьей, но выдача подсказывает
// программы, где ещё есть место.
func TestProgramOptionsThirdProgram(t *testing.T) {
	load := &StudentLoad{
		ProgramDetails: []models.ProgramLoad{
			{Program: "A", Groups: 2},
			{Program: "B", Groups: 1},
		},
		ProgramCount: 2,
		TotalGroups:  3,
	}
	require.True(t, EligibleForSearch(load))

	opts := ProgramOptions(load, "C")
	assert.Equal(t, 0, opts.RemainingGroups)
	assert.Equal(t, []string{"B"}, opts.Alternatives)
}

func TestProgramOptionsThirdProgramNoRoom(t *testing.T) {
	load := &StudentLoad{
		ProgramDetails: []models.ProgramLoad{
			{Program: "A", Groups: 2},
			{Program: "B", Groups: 2},
		},
		ProgramCount: 2,
		TotalGroups:  4,
	}
	opts := ProgramOptions(load, "C")
	assert.Equal(t, 0, opts.RemainingGroups)
	assert.Empty(t, opts.Alternatives)
}

// Студент на одной программе может взять и новую вторую.
func TestProgramOptionsSecondProgram(t *testing.T) {
	load := &StudentLoad{
		ProgramDetails: []models.ProgramLoad{{Program: "A", Groups: 2}},
		ProgramCount:   1,
		TotalGroups:    2,
	}
	opts := ProgramOptions(load, "B")
	assert.Equal(t, 2, opts.RemainingGroups)
}
