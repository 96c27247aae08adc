package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/linnemanlabs/go-core/log"
	"github.com/spf13/cobra"

	vc "github.com/Hellboy28D/Petvet-Assist/internal/cfg"
	"github.com/Hellboy28D/Petvet-Assist/internal/triage"
)

func newTriageCmd(L log.Logger, appCfg *vc.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "triage [description...]",
		Short: "Triage a free-text symptom description",
		Example: `  petvet triage "my dog has been vomiting for 2 days"
  petvet triage --json "my cat is bleeding"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(cmd, L, appCfg)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			result := svc.Triage(cmd.Context(), text)

			if appCfg.JSONOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			printConsultation(cmd.OutOrStdout(), text, result)
			return nil
		},
	}
}

// printConsultation renders a triage result the way the demo consultations do.
func printConsultation(w io.Writer, description string, r *triage.Result) {
	fmt.Fprintln(w, "PetVet Assist Consultation")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "Description: %s\n", description)
	if len(r.Symptoms) > 0 {
		names := make([]string, 0, len(r.Symptoms))
		for _, s := range r.Symptoms {
			names = append(names, string(s))
		}
		fmt.Fprintf(w, "Symptoms found: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(w, "Urgency level: %s\n", r.Urgency)
	fmt.Fprintf(w, "Recommended care: %s\n", r.VetType)
	fmt.Fprintln(w, "Recommended actions:")
	for _, a := range r.Actions {
		fmt.Fprintf(w, "  - %s\n", a)
	}
	fmt.Fprintf(w, "\n%s\n", r.Disclaimer)
}
