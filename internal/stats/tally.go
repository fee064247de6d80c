package stats

import (
	"github.com/google/uuid"

	"samplehub/internal/domains"
)

type OptionTally struct {
	TotalAnswered int
	Averages      []domains.OptionAverage
}

// ComputeOptionAverages turns per-option response counts into shares of all
// responses to the question. Output keeps the order of options.
func ComputeOptionAverages(options []domains.Option, counts map[uuid.UUID]int) OptionTally {
	tally := OptionTally{Averages: make([]domains.OptionAverage, 0, len(options))}

	for _, option := range options {
		count := max(0, counts[option.ID])
		tally.TotalAnswered += count
		tally.Averages = append(tally.Averages, domains.OptionAverage{
			OptionID: option.ID,
			Label:    option.Label,
			Count:    count,
		})
	}

	for i := range tally.Averages {
		tally.Averages[i].Percentage = Percentage(tally.Averages[i].Count, tally.TotalAnswered)
	}

	return tally
}
