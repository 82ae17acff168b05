package detect

import (
	"math"
	"sort"
)

// SelectEvents deduplicates scored candidates into a final event list. It is
// the single selection algorithm shared by the beat, cue, and phrase paths:
//
//  1. Candidates are ranked by score descending; ties keep generation order.
//  2. A candidate is accepted only if it lies at least minDistance seconds
//     from every previously accepted candidate, regardless of type.
//  3. Acceptance stops at maxCount events (maxCount <= 0 means no cap).
//  4. Accepted events are re-sorted chronologically and numbered in that
//     final order, which is the order consumers must see.
//
// Running SelectEvents on its own output (via CandidatesFromEvents) with the
// same thresholds returns the identical sequence.
func SelectEvents(candidates []Candidate, minDistance float64, maxCount int) []Event {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	var accepted []Candidate
	for _, c := range ranked {
		if maxCount > 0 && len(accepted) >= maxCount {
			break
		}

		covered := false
		for _, a := range accepted {
			if math.Abs(a.Time-c.Time) < minDistance {
				covered = true
				break
			}
		}
		if !covered {
			accepted = append(accepted, c)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Time < accepted[j].Time
	})

	events := make([]Event, len(accepted))
	for i, c := range accepted {
		events[i] = Event{
			Index:      i + 1,
			Time:       c.Time,
			Type:       c.Type,
			Confidence: math.Min(1.0, c.Score),
			Name:       c.Label,
		}
	}

	return events
}

// CandidatesFromEvents converts finalized events back into candidates, with
// confidence standing in for the score.
func CandidatesFromEvents(events []Event) []Candidate {
	candidates := make([]Candidate, len(events))
	for i, ev := range events {
		candidates[i] = Candidate{
			Time:  ev.Time,
			Type:  ev.Type,
			Score: ev.Confidence,
			Label: ev.Name,
		}
	}
	return candidates
}
