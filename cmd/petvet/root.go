package main

import (
	"fmt"

	"github.com/linnemanlabs/go-core/log"
	v "github.com/linnemanlabs/go-core/version"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	vc "github.com/Hellboy28D/Petvet-Assist/internal/cfg"
	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
	"github.com/Hellboy28D/Petvet-Assist/internal/triage"
)

// newRootCmd builds the petvet command tree. The bare command runs the
// built-in self-checks and the fixed demo consultations.
func newRootCmd(L log.Logger) *cobra.Command {
	appCfg := &vc.Config{}

	vi := v.Get()

	root := &cobra.Command{
		Use:   "petvet",
		Short: "Pet symptom triage assistant",
		Long: `Petvet Assist extracts symptom keywords from a free-text description,
scores an urgency level (LOW/MEDIUM/HIGH), and returns canned,
non-diagnostic guidance: a care tier, ordered actions, and a disclaimer.

Run without a subcommand to execute the built-in self-checks and the
fixed demo consultations.`,
		Version:       fmt.Sprintf("%s (commit=%s, go=%s)", vi.Version, vi.Commit, vi.GoVersion),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := appCfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd, L, appCfg)
			if err != nil {
				return err
			}
			if err := runSelftest(cmd, svc); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return runDemo(cmd, svc, appCfg.Species)
		},
	}

	appCfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTriageCmd(L, appCfg),
		newDemoCmd(L, appCfg),
		newSelftestCmd(L, appCfg),
		newRulesCmd(L, appCfg),
	)

	return root
}

// buildService loads the ruleset (built-in unless overridden), compiles the
// engine, and wires logging and metrics hooks.
func buildService(cmd *cobra.Command, L log.Logger, appCfg *vc.Config) (*triage.Service, error) {
	ctx := cmd.Context()

	rs := rules.Default()
	if appCfg.RulesFile != "" {
		loaded, err := rules.Load(appCfg.RulesFile)
		if err != nil {
			return nil, err
		}
		rs = loaded
		L.Info(ctx, "loaded ruleset override", "path", appCfg.RulesFile, "symptoms", len(rs.Symptoms))
	}

	engine, err := triage.NewEngine(rs)
	if err != nil {
		return nil, err
	}

	metrics := triage.NewMetrics(prometheus.NewRegistry())

	return triage.NewService(engine, triage.NewPlanner(rs), L, metrics.Hooks()), nil
}
