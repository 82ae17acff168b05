// Package config holds the tunable parameters for event detection.
//
// The heuristic thresholds below (peak heights, prominence, energy bands)
// are empirically chosen defaults, not derived constants. Treat them as
// tunable starting points.
package config

import (
	"fmt"
)

// BeatConfig configures beat detection over a model activation curve.
type BeatConfig struct {
	SampleRate        int     `json:"sample_rate"`         // Hz of the audio the model consumed
	HopSize           int     `json:"hop_size"`            // samples per activation frame
	Height            float64 `json:"height"`              // minimum activation for a beat peak
	MinDistanceFrames int     `json:"min_distance_frames"` // minimum frames between beats
	Prominence        float64 `json:"prominence"`          // minimum peak prominence
}

// DefaultBeatConfig returns defaults for a 10ms-hop activation curve at
// 44.1kHz. 40 frames = 400ms, allowing tempos up to 150 BPM.
func DefaultBeatConfig() BeatConfig {
	return BeatConfig{
		SampleRate:        44100,
		HopSize:           441,
		Height:            0.1,
		MinDistanceFrames: 40,
		Prominence:        0.05,
	}
}

// Validate rejects unusable parameters before any curve processing starts
func (c BeatConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.HopSize <= 0 {
		return fmt.Errorf("hop size must be positive, got %d", c.HopSize)
	}
	if c.MinDistanceFrames < 0 {
		return fmt.Errorf("minimum distance must not be negative, got %d", c.MinDistanceFrames)
	}
	if c.Prominence < 0 {
		return fmt.Errorf("prominence must not be negative, got %f", c.Prominence)
	}
	return nil
}

// CueConfig configures cue point detection over aligned energy and novelty curves.
type CueConfig struct {
	HopSeconds     float64 `json:"hop_seconds"`     // seconds between curve frames
	MaxCues        int     `json:"max_cues"`        // cap on returned cue points
	MinDistance    float64 `json:"min_distance"`    // minimum seconds between cue points
	IntroEnergy    float64 `json:"intro_energy"`    // first energy above this marks the intro
	LowEnergy      float64 `json:"low_energy"`      // "quiet" band edge for drop/breakdown rules
	HighEnergy     float64 `json:"high_energy"`     // "loud" band edge for drop/breakdown rules
	TrailingFrames int     `json:"trailing_frames"` // frames of trailing context for drop/breakdown
	PeakHeight     float64 `json:"peak_height"`     // minimum drop/breakdown score peak
	SectionNovelty float64 `json:"section_novelty"` // minimum novelty for a section boundary
	OutroEnergy    float64 `json:"outro_energy"`    // remaining-energy ceiling for the outro
	OutroRise      float64 `json:"outro_rise"`      // energy the preceding frame must exceed
}

// DefaultCueConfig returns the default cue detection parameters
func DefaultCueConfig() CueConfig {
	return CueConfig{
		HopSeconds:     0.5,
		MaxCues:        8,
		MinDistance:    8.0,
		IntroEnergy:    0.1,
		LowEnergy:      0.3,
		HighEnergy:     0.5,
		TrailingFrames: 5,
		PeakHeight:     0.1,
		SectionNovelty: 0.5,
		OutroEnergy:    0.2,
		OutroRise:      0.3,
	}
}

// Validate rejects unusable parameters before any curve processing starts
func (c CueConfig) Validate() error {
	if c.HopSeconds <= 0 {
		return fmt.Errorf("hop seconds must be positive, got %f", c.HopSeconds)
	}
	if c.MinDistance < 0 {
		return fmt.Errorf("minimum distance must not be negative, got %f", c.MinDistance)
	}
	if c.MaxCues < 0 {
		return fmt.Errorf("max cues must not be negative, got %d", c.MaxCues)
	}
	if c.TrailingFrames <= 0 {
		return fmt.Errorf("trailing frames must be positive, got %d", c.TrailingFrames)
	}
	return nil
}

// PhraseConfig configures fallback phrase segmentation over an energy curve.
type PhraseConfig struct {
	MinDistance float64 `json:"min_distance"` // minimum seconds between phrases
	MaxPhrases  int     `json:"max_phrases"`  // cap on returned phrases; 0 means no cap
	EdgeHeight  float64 `json:"edge_height"`  // minimum energy-derivative peak
	HighEnergy  float64 `json:"high_energy"`  // rising edge above this is a chorus
	LowEnergy   float64 `json:"low_energy"`   // falling edge below this is a bridge
	IntroEnergy float64 `json:"intro_energy"` // first energy above this marks the intro
	OutroEnergy float64 `json:"outro_energy"` // remaining-energy ceiling for the outro
	OutroRise   float64 `json:"outro_rise"`   // energy the preceding frame must exceed
}

// DefaultPhraseConfig returns the default phrase segmentation parameters
func DefaultPhraseConfig() PhraseConfig {
	return PhraseConfig{
		MinDistance: 8.0,
		MaxPhrases:  0,
		EdgeHeight:  0.05,
		HighEnergy:  0.5,
		LowEnergy:   0.3,
		IntroEnergy: 0.1,
		OutroEnergy: 0.2,
		OutroRise:   0.3,
	}
}

// Validate rejects unusable parameters before any curve processing starts
func (c PhraseConfig) Validate() error {
	if c.MinDistance < 0 {
		return fmt.Errorf("minimum distance must not be negative, got %f", c.MinDistance)
	}
	if c.MaxPhrases < 0 {
		return fmt.Errorf("max phrases must not be negative, got %d", c.MaxPhrases)
	}
	if c.EdgeHeight < 0 {
		return fmt.Errorf("edge height must not be negative, got %f", c.EdgeHeight)
	}
	return nil
}
