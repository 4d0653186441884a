package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/adanyl0v/checklist/internal/config"
	"github.com/adanyl0v/checklist/internal/questionnaire"
	"github.com/adanyl0v/checklist/internal/rules"
	"github.com/adanyl0v/checklist/internal/services"
)

var errVocabularyMismatch = errors.New("rule tables reference unknown questionnaire options")

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "checklist",
		Short:         "Personalized planning checklist service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			InitDefaultLogger()
		},
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		previewCmd(),
		rulesCmd(),
	)

	return root
}

func loadEnv() {
	MustReadEnv()
	MustInitApplicationLogger()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the checklist HTTP API",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			loadEnv()

			MustOpenStore(config.Global().AutoMigrate)
			defer CloseStore()

			MustListenAndServeHTTP()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		Run: func(*cobra.Command, []string) {
			loadEnv()

			MustOpenStore(true)
			CloseStore()
		},
	}
}

func previewCmd() *cobra.Command {
	var answersPath, flow string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the tasks a questionnaire submission would generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, closeIn, err := openInput(cmd, answersPath)
			if err != nil {
				return err
			}
			defer closeIn()
			return runPreview(in, cmd.OutOrStdout(), flow)
		},
	}
	cmd.Flags().StringVarP(&answersPath, "answers", "a", "-", "path to a JSON answers object, - for stdin")
	cmd.Flags().StringVarP(&flow, "flow", "f", "", "flow type: recent_loss or planning_ahead")

	return cmd
}

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the built-in rule tables",
	}

	var vocabularyPath string
	check := &cobra.Command{
		Use:   "check",
		Short: "Report rule predicates that reference unknown questionnaire options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vocabulary := rules.BuiltinVocabulary()
			if vocabularyPath != "" {
				in, closeIn, err := openInput(cmd, vocabularyPath)
				if err != nil {
					return err
				}
				defer closeIn()

				vocabulary = rules.Vocabulary{}
				err = json.NewDecoder(in).Decode(&vocabulary)
				if err != nil {
					return fmt.Errorf("failed to decode vocabulary: %w", err)
				}
			}
			return runRulesCheck(cmd.OutOrStdout(), vocabulary)
		},
	}
	check.Flags().StringVarP(&vocabularyPath, "vocabulary", "v", "", "path to a JSON object of question keys to options")

	cmd.AddCommand(check)
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

type previewOutput struct {
	Flow         questionnaire.FlowType `json:"flow"`
	MatchedRules []string               `json:"matched_rules"`
	Tasks        []rules.TaskStub       `json:"tasks"`
}

func runPreview(in io.Reader, out io.Writer, flow string) error {
	var flowType questionnaire.FlowType
	if flow != "" {
		var ok bool
		flowType, ok = questionnaire.ParseFlowType(flow)
		if !ok {
			return fmt.Errorf("unknown flow type: %q", flow)
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read answers: %w", err)
	}
	answers := questionnaire.NormalizeJSON(data)
	if answers.Len() == 0 {
		globalLogger.Warn().Msg("no usable answers, previewing the anchor tasks only")
	}

	generation := services.NewGenerationService(globalLogger, rules.Default(), nil, nil, 0)
	preview := generation.Preview(services.PreviewParams{
		FlowType: flowType,
		Answers:  answers,
	})

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(previewOutput{
		Flow:         preview.Flow,
		MatchedRules: preview.MatchedRules,
		Tasks:        preview.Tasks,
	})
}

func runRulesCheck(out io.Writer, vocabulary rules.Vocabulary) error {
	evaluator := rules.Default()

	mismatches := []rules.Mismatch{}
	for _, flow := range []questionnaire.FlowType{questionnaire.FlowRecentLoss, questionnaire.FlowPlanningAhead} {
		table, ok := evaluator.Table(flow)
		if !ok {
			continue
		}
		mismatches = append(mismatches, rules.CheckVocabulary(table, vocabulary)...)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	err := enc.Encode(mismatches)
	if err != nil {
		return err
	}

	if len(mismatches) > 0 {
		globalLogger.Warn().
			Int("mismatches", len(mismatches)).
			Msg("vocabulary check failed")
		return errVocabularyMismatch
	}
	return nil
}
