// Package detect turns per-frame signal curves into discrete, timestamped,
// labeled musical events: beats with a tempo estimate, cue points, and
// fallback phrase boundaries. All entry points are pure functions over the
// curves they receive; nothing here decodes audio or runs model inference.
package detect

// CueType labels the musical role of a detected event.
type CueType string

const (
	CueIntro     CueType = "intro"
	CueDrop      CueType = "drop"
	CueBreakdown CueType = "breakdown"
	CueSection   CueType = "section"
	CueOutro     CueType = "outro"

	// Fallback phrase labels
	CueVerse  CueType = "verse"
	CueChorus CueType = "chorus"
	CueBridge CueType = "bridge"
)

// Candidate is a scored, typed event location produced by a generator.
// Candidates are not yet deduplicated; several may share a time window.
type Candidate struct {
	Time  float64 `json:"time"`  // seconds
	Type  CueType `json:"type"`  // musical role
	Score float64 `json:"score"` // non-negative; higher means stronger evidence
	Label string  `json:"label"` // display name
}

// Event is a finalized candidate after selection: events are ordered by time
// and any two are separated by at least the configured minimum distance.
type Event struct {
	Index      int     `json:"index"`      // 1-based position in chronological order
	Time       float64 `json:"time"`       // seconds
	Type       CueType `json:"type"`       // musical role
	Confidence float64 `json:"confidence"` // score clamped to [0, 1]
	Name       string  `json:"name"`       // display name
}

// BeatSet holds detected beat timestamps with the derived tempo estimate.
type BeatSet struct {
	BPM   float64   `json:"bpm"`
	Beats []float64 `json:"beats"` // seconds, ascending
	Bars  float64   `json:"bars"`  // beat count / 4, for presentation
}

// Phrase is a structural segment from the fallback segmentation path.
type Phrase struct {
	Time     float64 `json:"time"`     // segment start in seconds
	Label    string  `json:"label"`    // verse, chorus, bridge, intro, outro
	Duration float64 `json:"duration"` // seconds until the next phrase or track end
}
