package main

import (
	"fmt"

	"github.com/linnemanlabs/go-core/log"
	"github.com/spf13/cobra"

	vc "github.com/Hellboy28D/Petvet-Assist/internal/cfg"
	"github.com/Hellboy28D/Petvet-Assist/internal/triage"
)

// demoDescriptions are the fixed example inputs run by demo mode.
var demoDescriptions = []string{
	"My dog has been vomiting and has diarrhea for 2 days",
	"Emergency! My cat was hit by a car and is bleeding",
	"My rabbit hasn't eaten in 24 hours and seems lethargic",
}

func newDemoCmd(L log.Logger, appCfg *vc.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the fixed demo consultations",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd, L, appCfg)
			if err != nil {
				return err
			}
			return runDemo(cmd, svc, appCfg.Species)
		},
	}
}

func runDemo(cmd *cobra.Command, svc *triage.Service, species string) error {
	w := cmd.OutOrStdout()

	for i, description := range demoDescriptions {
		if i > 0 {
			fmt.Fprintln(w)
		}
		result := svc.Triage(cmd.Context(), description)
		printConsultation(w, description, result)
	}

	fmt.Fprintf(w, "\nDaily wellness tasks (%s):\n", species)
	for _, task := range svc.DailyTasks(species) {
		fmt.Fprintf(w, "  - %s (%s)\n", task.Task, task.Duration)
	}

	return nil
}
