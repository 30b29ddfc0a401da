package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/analysis"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/audio"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/config"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/exercises"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/llm"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/observability"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <recording> [recording...]",
	Short: "Analyze one or more vocal recordings",
	Long: `Runs the full assessment pipeline per recording: resolve audio -> transcribe -> scored analysis -> decode.

Recording references are paths relative to the recordings root (or absolute paths). Multiple recordings are analyzed concurrently; each recording's two capability calls remain strictly sequential.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath     string
	analyzeRecordingsRoot string
	analyzeLibraryPath    string
	analyzeOutputDir      string
	analyzeTranscription  string
	analyzeAnalysisModel  string
	analyzeAPIKey         string
	analyzeConcurrency    int
	analyzePerformance    bool
	analyzeMatch          bool
	analyzeVerbose        bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeRecordingsRoot, "recordings-root", "r", "", "Directory that recording references resolve under (default: current directory)")
	analyzeCommand.Flags().StringVarP(&analyzeLibraryPath, "library", "l", "", "Path to an exercise library JSON file (default: built-in library)")
	analyzeCommand.Flags().StringVarP(&analyzeOutputDir, "output", "o", "", "Directory to write assessment JSON artifacts to (omit to skip writing)")
	analyzeCommand.Flags().StringVar(&analyzeTranscription, "transcription-model", "", "Model for the audio-to-text stage")
	analyzeCommand.Flags().StringVar(&analyzeAnalysisModel, "analysis-model", "", "Model for the scored analysis stage")
	analyzeCommand.Flags().IntVar(&analyzeConcurrency, "concurrency", 0, "Max recordings analyzed at once (default 2)")
	analyzeCommand.Flags().BoolVarP(&analyzePerformance, "performance", "p", false, "Score as a finished performance rather than a practice take")
	analyzeCommand.Flags().BoolVarP(&analyzeMatch, "match", "m", false, "Resolve recommended exercise names against the library")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(analyzeCommand)
}

// assessmentArtifact is the JSON document written per analyzed recording.
type assessmentArtifact struct {
	ID          string                `json:"id"`
	Recording   string                `json:"recording"`
	Performance bool                  `json:"performance"`
	CreatedAt   time.Time             `json:"created_at"`
	Result      *types.AnalysisResult `json:"result"`
	Transcript  string                `json:"transcript"`
	Matched     []types.Exercise      `json:"matched_exercises,omitempty"`
}

func runAnalyzeCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	overrides := config.Config{
		RecordingsRoot:     analyzeRecordingsRoot,
		Library:            analyzeLibraryPath,
		Output:             analyzeOutputDir,
		TranscriptionModel: analyzeTranscription,
		AnalysisModel:      analyzeAnalysisModel,
		APIKey:             analyzeAPIKey,
		Concurrency:        analyzeConcurrency,
	}
	verbose := analyzeVerbose || cfg.Verbose
	cfg = overrides.MergeWithDefaults(cfg)

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("no API key provided: use --api-key or set GEMINI_API_KEY")
	}

	// Step 3: Build the model configuration and the two capability clients
	llmConfig := llm.DefaultConfig()
	if cfg.TranscriptionModel != "" {
		llmConfig = llmConfig.WithModel(llm.PurposeTranscription, cfg.TranscriptionModel)
	}
	if cfg.AnalysisModel != "" {
		llmConfig = llmConfig.WithModel(llm.PurposeAnalysis, cfg.AnalysisModel)
	}

	transcriber, err := llm.NewClient(ctx, llmConfig, llm.PurposeTranscription, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create transcription client: %w", err)
	}
	defer func() { _ = transcriber.Close() }()

	analyst, err := llm.NewClient(ctx, llmConfig, llm.PurposeAnalysis, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create analysis client: %w", err)
	}
	defer func() { _ = analyst.Close() }()

	// Step 4: Resolve the exercise library
	library := exercises.DefaultLibrary()
	if cfg.Library != "" {
		library, err = exercises.Load(cfg.Library)
		if err != nil {
			return err
		}
	}

	root := cfg.RecordingsRoot
	if root == "" {
		root, _ = os.Getwd()
	}
	analyzer := analysis.New(transcriber, analyst, audio.NewResolver(root))
	printer := observability.NewPrinter(os.Stdout)

	// Step 5: Fan out over the recordings. Each Analyze call is internally
	// sequential; only distinct recordings run concurrently.
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)

	for _, reference := range args {
		reference := reference
		g.Go(func() error {
			fmt.Printf("Analyzing %s...\n", reference)

			result, transcript, err := analyzer.Analyze(gCtx, reference, analyzePerformance)
			if err != nil {
				return fmt.Errorf("analysis of %s failed: %w", reference, err)
			}

			var matched []types.Exercise
			if analyzeMatch {
				matched = exercises.Match(result.RecommendedExerciseNames, library)
			}

			printer.PrintAnalysisResult(result)
			if verbose {
				printer.PrintTranscript(transcript)
			}
			if analyzeMatch {
				printer.PrintExercises(matched)
			}

			if cfg.Output != "" {
				path, err := writeArtifact(cfg.Output, reference, analyzePerformance, result, transcript, matched)
				if err != nil {
					return err
				}
				fmt.Printf("Assessment for %s written to %s\n", reference, path)
			}
			return nil
		})
	}

	return g.Wait()
}

// writeArtifact stores one assessment as a JSON file named by a fresh
// assessment id and returns the written path.
func writeArtifact(dir, reference string, performance bool, result *types.AnalysisResult, transcript string, matched []types.Exercise) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	artifact := assessmentArtifact{
		ID:          uuid.NewString(),
		Recording:   reference,
		Performance: performance,
		CreatedAt:   time.Now().UTC(),
		Result:      result,
		Transcript:  transcript,
		Matched:     matched,
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode assessment: %w", err)
	}

	path := filepath.Join(dir, artifact.ID+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write assessment %s: %w", path, err)
	}
	return path, nil
}
