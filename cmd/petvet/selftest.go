package main

import (
	"fmt"

	"github.com/linnemanlabs/go-core/log"
	"github.com/spf13/cobra"

	vc "github.com/Hellboy28D/Petvet-Assist/internal/cfg"
	"github.com/Hellboy28D/Petvet-Assist/internal/selfcheck"
	"github.com/Hellboy28D/Petvet-Assist/internal/triage"
)

func newSelftestCmd(L log.Logger, appCfg *vc.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in validation scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd, L, appCfg)
			if err != nil {
				return err
			}
			return runSelftest(cmd, svc)
		},
	}
}

func runSelftest(cmd *cobra.Command, svc *triage.Service) error {
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "Running built-in self-checks")

	report := selfcheck.Run(cmd.Context(), svc)
	for _, f := range report.Failures {
		fmt.Fprintf(w, "  FAIL %q: urgency %s (want %s), care %s (want %s)\n",
			f.Description, f.GotUrgency, f.WantUrgency, f.GotVetType, f.WantVetType)
	}
	fmt.Fprintf(w, "  %d/%d scenarios passed\n", report.Passed, report.Passed+report.Failed)

	if !report.OK() {
		return fmt.Errorf("selftest: %d of %d scenarios failed", report.Failed, report.Passed+report.Failed)
	}
	return nil
}
