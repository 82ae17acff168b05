// CLI for curve-based beat, cue point, and phrase detection. Curves come from
// JSON sidecar files produced by external decoding/inference tooling; this
// binary only renders what the detect package finds.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mixcue/mixcue/detect"
	"github.com/mixcue/mixcue/detect/config"
	"github.com/mixcue/mixcue/logging"
)

var rootCmd = &cobra.Command{
	Use:   "mixcue",
	Short: "Musical event detection from per-frame signal curves",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogrusLogger()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logger.SetLevel(logging.DebugLevel)
		}
		logging.SetGlobalLogger(logger)

		if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		}
		return nil
	},
}

var beatsCmd = &cobra.Command{
	Use:   "beats <curves.json>",
	Short: "Detect beats and tempo from an activation curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBeats(cmd, args[0])
	},
}

var cuesCmd = &cobra.Command{
	Use:   "cues <curves.json>",
	Short: "Detect cue points from energy and feature curves",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCues(cmd, args[0])
	},
}

var phrasesCmd = &cobra.Command{
	Use:   "phrases <curves.json>",
	Short: "Segment a track into phrases from its energy curve",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPhrases(cmd, args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	beatsCmd.Flags().Float64("height", 0.1, "Minimum activation for a beat peak")
	beatsCmd.Flags().Int("min-distance-frames", 40, "Minimum frames between beats")
	beatsCmd.Flags().Float64("prominence", 0.05, "Minimum peak prominence")
	cobra.CheckErr(viper.BindPFlag("beat.height", beatsCmd.Flags().Lookup("height")))
	cobra.CheckErr(viper.BindPFlag("beat.min_distance_frames", beatsCmd.Flags().Lookup("min-distance-frames")))
	cobra.CheckErr(viper.BindPFlag("beat.prominence", beatsCmd.Flags().Lookup("prominence")))

	cuesCmd.Flags().Int("max-cues", 8, "Maximum cue points")
	cuesCmd.Flags().Float64("min-distance", 8.0, "Minimum seconds between cue points")
	cobra.CheckErr(viper.BindPFlag("cue.max_cues", cuesCmd.Flags().Lookup("max-cues")))
	cobra.CheckErr(viper.BindPFlag("cue.min_distance", cuesCmd.Flags().Lookup("min-distance")))

	phrasesCmd.Flags().Float64("min-distance", 8.0, "Minimum seconds between phrases")
	phrasesCmd.Flags().Int("max-phrases", 0, "Maximum phrases (0 = no cap)")
	cobra.CheckErr(viper.BindPFlag("phrase.min_distance", phrasesCmd.Flags().Lookup("min-distance")))
	cobra.CheckErr(viper.BindPFlag("phrase.max_phrases", phrasesCmd.Flags().Lookup("max-phrases")))

	viper.SetDefault("energy.window_seconds", 1.0)
	viper.SetDefault("energy.hop_seconds", 0.5)
	viper.SetDefault("onset.window_size", 1024)

	rootCmd.AddCommand(beatsCmd)
	rootCmd.AddCommand(cuesCmd)
	rootCmd.AddCommand(phrasesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBeats(cmd *cobra.Command, path string) error {
	curves, err := loadCurves(path)
	if err != nil {
		return err
	}

	cfg := config.DefaultBeatConfig()
	if curves.SampleRate > 0 {
		cfg.SampleRate = curves.SampleRate
	}
	cfg.Height = viper.GetFloat64("beat.height")
	cfg.MinDistanceFrames = viper.GetInt("beat.min_distance_frames")
	cfg.Prominence = viper.GetFloat64("beat.prominence")

	activation, err := curves.activationCurve(cfg.HopSize)
	if err != nil {
		return err
	}

	result, err := detect.DetectBeats(activation, cfg)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return renderJSON(result)
	}

	fmt.Printf("BPM: %.2f\n", result.BPM)
	fmt.Printf("Beats: %d\n", len(result.Beats))
	fmt.Printf("Bars: %.1f\n", result.Bars)
	if len(result.Beats) > 5 {
		fmt.Print("First 5 beats:")
		for _, b := range result.Beats[:5] {
			fmt.Printf(" %.3f", b)
		}
		fmt.Println()
	}
	return nil
}

func runCues(cmd *cobra.Command, path string) error {
	curves, err := loadCurves(path)
	if err != nil {
		return err
	}

	cfg := config.DefaultCueConfig()
	cfg.MaxCues = viper.GetInt("cue.max_cues")
	cfg.MinDistance = viper.GetFloat64("cue.min_distance")

	energyTimes, energy, err := curves.energyCurve()
	if err != nil {
		return err
	}

	events, err := detect.DetectCues(energyTimes, energy, curves.FeatureTimes, curves.Features, cfg)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return renderJSON(map[string]any{"cue_points": events})
	}

	fmt.Printf("Detected %d cue points:\n\n", len(events))
	for _, ev := range events {
		minutes := int(ev.Time) / 60
		seconds := ev.Time - float64(minutes*60)
		fmt.Printf("  %d. [%-10s] %d:%05.2f  %s (conf: %.2f)\n",
			ev.Index, ev.Type, minutes, seconds, ev.Name, ev.Confidence)
	}
	return nil
}

func runPhrases(cmd *cobra.Command, path string) error {
	curves, err := loadCurves(path)
	if err != nil {
		return err
	}

	cfg := config.DefaultPhraseConfig()
	cfg.MinDistance = viper.GetFloat64("phrase.min_distance")
	cfg.MaxPhrases = viper.GetInt("phrase.max_phrases")

	energyTimes, energy, err := curves.energyCurve()
	if err != nil {
		return err
	}

	phrases, err := detect.DetectPhrases(energyTimes, energy, curves.Duration, cfg)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return renderJSON(map[string]any{"phrases": phrases})
	}

	fmt.Printf("Detected %d phrases:\n\n", len(phrases))
	for _, p := range phrases {
		fmt.Printf("  %8.2fs  %-8s (%.1fs)\n", p.Time, p.Label, p.Duration)
	}
	return nil
}

func renderJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
