package schedule

import (
	"math/rand"
	"time"

	"github.com/chronos-app/chronos/pkg/dateutil"
)

// Generator produces weekday-only task plans. The random source is
// injectable so tests can seed it; production generators draw from a
// time-seeded source and are intentionally non-reproducible, which is
// what makes "shuffle" (regenerate with the same inputs) useful.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator with a time-seeded random source.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorWithSource creates a Generator using the given random source.
func NewGeneratorWithSource(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate walks every calendar day from start to end inclusive, skips
// Saturdays and Sundays, and assigns each remaining day one subject picked
// uniformly at random. An empty subject list or a reversed range yields an
// empty plan rather than an error; input validation is the caller's job.
func (g *Generator) Generate(subjects []string, start, end time.Time) []Task {
	if len(subjects) == 0 {
		return []Task{}
	}

	from := dateutil.Normalize(start)
	to := dateutil.Normalize(end)

	tasks := []Task{}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if dateutil.IsWeekend(day) {
			continue
		}
		tasks = append(tasks, Task{
			Date:    dateutil.Format(day),
			Subject: subjects[g.rng.Intn(len(subjects))],
		})
	}

	return tasks
}
