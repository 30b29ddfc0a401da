package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/exercises"
	"github.com/jrgrafton-openclaw/SingCoach-sub001/internal/observability"
)

var exercisesCommand = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise library or preview name resolution",
	Long: `Without flags, lists every exercise in the library.

With --resolve, treats the arguments as recommended exercise names (the freeform strings the analysis model produces) and shows which library entries they resolve to.`,
	RunE: runExercisesCmd,
}

var (
	exercisesLibraryPath string
	exercisesResolve     bool
)

func init() {
	exercisesCommand.Flags().StringVarP(&exercisesLibraryPath, "library", "l", "", "Path to an exercise library JSON file (default: built-in library)")
	exercisesCommand.Flags().BoolVar(&exercisesResolve, "resolve", false, "Resolve the arguments as recommended names against the library")

	rootCmd.AddCommand(exercisesCommand)
}

func runExercisesCmd(_ *cobra.Command, args []string) error {
	library := exercises.DefaultLibrary()
	if exercisesLibraryPath != "" {
		loaded, err := exercises.Load(exercisesLibraryPath)
		if err != nil {
			return err
		}
		library = loaded
	}

	if exercisesResolve {
		if len(args) == 0 {
			return fmt.Errorf("--resolve requires at least one name argument")
		}
		matched := exercises.Match(args, library)
		observability.NewPrinter(os.Stdout).PrintExercises(matched)
		fmt.Printf("%d of %d names resolved.\n", len(matched), len(args))
		return nil
	}

	for _, exercise := range library {
		fmt.Printf("%-28s %-10s %s\n", exercise.Name, exercise.Category, exercise.FocusArea)
	}
	fmt.Printf("%d exercises.\n", len(library))
	return nil
}
