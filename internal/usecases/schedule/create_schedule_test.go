package schedule

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infrarepos "github.com/chronos-app/chronos/internal/infrastructure/repositories"
	"github.com/chronos-app/chronos/pkg/schedule"
)

func testCreateUseCase() (*CreateScheduleUseCase, *infrarepos.MemoryScheduleRepository) {
	repo := infrarepos.NewMemoryScheduleRepository()
	gen := schedule.NewGeneratorWithSource(rand.New(rand.NewSource(1)))
	return NewCreateScheduleUseCase(repo, gen), repo
}

func TestCreateScheduleRoundTrip(t *testing.T) {
	uc, repo := testCreateUseCase()

	created, err := uc.Execute(context.Background(), &CreateScheduleRequest{
		Name:      "Exam prep",
		Subjects:  []string{"math", "physics"},
		StartDate: "2024-06-03",
		EndDate:   "2024-06-14",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, created.Tasks, 10)

	found, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Subjects, found.Subjects)
	assert.Equal(t, created.Tasks, found.Tasks)
	assert.True(t, created.CreatedAt.Equal(found.CreatedAt))
}

func TestCreateSchedulePreservesPreviewedTasks(t *testing.T) {
	uc, _ := testCreateUseCase()

	preview := []schedule.Task{
		{Date: "2024-06-03", Subject: "math"},
		{Date: "2024-06-04", Subject: "physics"},
	}
	created, err := uc.Execute(context.Background(), &CreateScheduleRequest{
		Name:      "Previewed",
		Subjects:  []string{"math", "physics"},
		StartDate: "2024-06-03",
		EndDate:   "2024-06-04",
		Tasks:     preview,
	})
	require.NoError(t, err)
	assert.Equal(t, preview, created.Tasks)
}

func TestCreateScheduleValidation(t *testing.T) {
	uc, _ := testCreateUseCase()

	tests := []struct {
		name string
		req  CreateScheduleRequest
	}{
		{"missing name", CreateScheduleRequest{Subjects: []string{"math"}, StartDate: "2024-06-03", EndDate: "2024-06-04"}},
		{"no subjects", CreateScheduleRequest{Name: "x", StartDate: "2024-06-03", EndDate: "2024-06-04"}},
		{"blank subject", CreateScheduleRequest{Name: "x", Subjects: []string{"math", "  "}, StartDate: "2024-06-03", EndDate: "2024-06-04"}},
		{"duplicate subject", CreateScheduleRequest{Name: "x", Subjects: []string{"math", "math"}, StartDate: "2024-06-03", EndDate: "2024-06-04"}},
		{"bad start date", CreateScheduleRequest{Name: "x", Subjects: []string{"math"}, StartDate: "June 3", EndDate: "2024-06-04"}},
		{"bad end date", CreateScheduleRequest{Name: "x", Subjects: []string{"math"}, StartDate: "2024-06-03", EndDate: ""}},
		{"reversed range", CreateScheduleRequest{Name: "x", Subjects: []string{"math"}, StartDate: "2024-06-04", EndDate: "2024-06-03"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.Error(t, err)
		})
	}
}

func TestCreateScheduleCaseSensitiveSubjects(t *testing.T) {
	uc, _ := testCreateUseCase()

	// "Math" and "math" are distinct subjects; only exact matches collide.
	_, err := uc.Execute(context.Background(), &CreateScheduleRequest{
		Name:      "Case test",
		Subjects:  []string{"Math", "math"},
		StartDate: "2024-06-03",
		EndDate:   "2024-06-04",
	})
	assert.NoError(t, err)
}

func TestCreateScheduleSingleWeekday(t *testing.T) {
	uc, _ := testCreateUseCase()

	created, err := uc.Execute(context.Background(), &CreateScheduleRequest{
		Name:      "One day",
		Subjects:  []string{"math"},
		StartDate: "2024-06-05",
		EndDate:   "2024-06-05",
	})
	require.NoError(t, err)
	require.Len(t, created.Tasks, 1)
	assert.Equal(t, "2024-06-05", created.Tasks[0].Date)
}
