package main

import (
	"fmt"

	"github.com/linnemanlabs/go-core/log"
	"github.com/spf13/cobra"

	vc "github.com/Hellboy28D/Petvet-Assist/internal/cfg"
	"github.com/Hellboy28D/Petvet-Assist/internal/rules"
)

func newRulesCmd(L log.Logger, appCfg *vc.Config) *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect triage rule tables",
	}

	rulesCmd.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Load and validate a ruleset file (or the built-in tables)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := appCfg.RulesFile
			if len(args) == 1 {
				path = args[0]
			}

			var (
				rs  *rules.Ruleset
				err error
			)
			if path == "" {
				rs = rules.Default()
				fmt.Fprintln(cmd.OutOrStdout(), "built-in ruleset: OK")
			} else {
				rs, err = rules.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %d symptoms, %d duration phrases, %d wellness species\n",
				len(rs.Symptoms), len(rs.DurationPhrases), len(rs.Wellness.BySpecies))
			return nil
		},
	})

	return rulesCmd
}
