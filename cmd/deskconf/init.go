package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/superdesk/deskconf"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a configuration document",
	Long: `Write a new configuration document.

You will be prompted for:
  - Default route
  - Default planning view
  - Profile languages

Use --yes to write the built-in values without prompting. The format is
chosen from the output file extension. Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initOutput string
	initYes    bool

	// appFs is the filesystem scaffolds are written to.
	appFs = afero.NewOsFs()
)

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", deskconf.DefaultFileName, "document path to write")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "write defaults without prompting")

	rootCmd.AddCommand(initCmd)
}

// scaffoldAnswers holds the values a new document is seeded with.
type scaffoldAnswers struct {
	DefaultRoute string
	View         deskconf.PlanningView
	Languages    []string
}

func defaultAnswers() scaffoldAnswers {
	defaults := deskconf.DefaultDocument()
	answers := scaffoldAnswers{
		DefaultRoute: "/workspace/personal",
		View:         deskconf.ViewPlanning,
		Languages:    []string{"en"},
	}
	if route, ok := defaults[deskconf.KeyDefaultRoute].(string); ok {
		answers.DefaultRoute = route
	}
	if view, ok := defaults[deskconf.KeyPlanningDefaultView].(string); ok {
		answers.View = deskconf.PlanningView(view)
	}
	if langs, ok := defaults[deskconf.KeyProfileLanguages].([]any); ok {
		answers.Languages = answers.Languages[:0]
		for _, l := range langs {
			if s, ok := l.(string); ok {
				answers.Languages = append(answers.Languages, s)
			}
		}
	}
	return answers
}

// scaffoldDocument builds the document written by init.
func scaffoldDocument(a scaffoldAnswers) deskconf.Document {
	langs := make([]any, len(a.Languages))
	for i, l := range a.Languages {
		langs[i] = l
	}
	return deskconf.Document{
		deskconf.KeyDefaultRoute:        a.DefaultRoute,
		deskconf.KeyPlanningDefaultView: string(a.View),
		deskconf.KeyProfileLanguages:    langs,
	}
}

// writeScaffold validates doc and writes it to path, refusing to replace
// an existing file.
func writeScaffold(fsys afero.Fs, path string, doc deskconf.Document) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}
	if exists {
		return fmt.Errorf("refusing to overwrite existing file %s", path)
	}

	p, err := deskconf.NewProvider(deskconf.WithFs(fsys))
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}
	if _, err = p.ResolveDocument(doc, deskconf.Source{Origin: deskconf.OriginExplicit, Path: path}); err != nil {
		return err
	}

	data, err := deskconf.Encode(doc, deskconf.FormatFromPath(path))
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err = afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func runInit(cmd *cobra.Command, _ []string) error {
	if exists, _ := afero.Exists(appFs, initOutput); exists {
		return fmt.Errorf("refusing to overwrite existing file %s", initOutput)
	}

	answers := defaultAnswers()
	if !initYes {
		var err error
		answers, err = promptAnswers(answers)
		if err != nil {
			return handlePromptError(err)
		}
	}

	if err := writeScaffold(appFs, initOutput, scaffoldDocument(answers)); err != nil {
		return err
	}

	if !quiet {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", initOutput)
	}
	return nil
}

func promptAnswers(defaults scaffoldAnswers) (scaffoldAnswers, error) {
	routePrompt := promptui.Prompt{
		Label:   "Default route",
		Default: defaults.DefaultRoute,
		Validate: func(input string) error {
			if !strings.HasPrefix(input, "/") {
				return errors.New("route must start with /")
			}
			return nil
		},
	}
	route, err := routePrompt.Run()
	if err != nil {
		return scaffoldAnswers{}, err
	}

	views := deskconf.PlanningViews()
	viewSelect := promptui.Select{
		Label:     "Default planning view",
		Items:     views,
		CursorPos: max(0, slices.Index(views, defaults.View)),
	}
	idx, _, err := viewSelect.Run()
	if err != nil {
		return scaffoldAnswers{}, err
	}

	langPrompt := promptui.Prompt{
		Label:    "Profile languages (comma separated)",
		Default:  strings.Join(defaults.Languages, ","),
		Validate: validateLanguages,
	}
	langs, err := langPrompt.Run()
	if err != nil {
		return scaffoldAnswers{}, err
	}

	return scaffoldAnswers{
		DefaultRoute: route,
		View:         views[idx],
		Languages:    splitLanguages(langs),
	}, nil
}

func validateLanguages(input string) error {
	langs := splitLanguages(input)
	if len(langs) == 0 {
		return errors.New("at least one language is required")
	}
	for _, l := range langs {
		if !deskconf.IsValidLocale(l) {
			return fmt.Errorf("invalid locale %q (expected ll or ll_CC)", l)
		}
	}
	return nil
}

func splitLanguages(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// handlePromptError handles promptui errors.
func handlePromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) {
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}
	if errors.Is(err, promptui.ErrAbort) {
		fmt.Println("Cancelled.")
		return nil
	}
	return err
}
