package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ansel1/merry"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"diveplan/model"
	"diveplan/planner"
	"diveplan/store"
)

var (
	saveName string
	storedID string
	asJSON   bool
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [file.yaml]",
		Short: "Calculate gas consumption of a plan",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlan,
	}
	cmd.Flags().StringVarP(&saveName, "save", "s", "", "Save the plan into library under the name")
	cmd.Flags().StringVar(&storedID, "id", "", "Calculate plan from library instead of file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print result as JSON")
	return cmd
}

func plansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List saved plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s *store.Store) error {
				plans, err := s.List()
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTANKS\tCREATED")
				for _, p := range plans {
					fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", p.ID, p.Name, len(p.Plan.Tanks), humanize.Time(p.Created))
				}
				return w.Flush()
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s *store.Store) error {
				return s.Delete(args[0])
			})
		},
	})
	return cmd
}

func withStore(work func(s *store.Store) error) error {
	s, err := store.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	defer s.Close()
	return work(s)
}

func runPlan(cmd *cobra.Command, args []string) error {
	request, err := readRequest(args)
	if err != nil {
		return err
	}

	plan, err := request.ToPlan(cfg.Options, cfg.Diver)
	if err != nil {
		return merry.Prepend(err, "invalid plan")
	}
	result, err := planner.New().Calculate(plan)
	if err != nil {
		return err
	}

	if saveName != "" {
		err = withStore(func(s *store.Store) error {
			id, err := s.Save(saveName, request)
			if err == nil {
				fmt.Fprintf(os.Stderr, "saved as %s\n", id)
			}
			return err
		})
		if err != nil {
			return err
		}
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(model.FromResult(result))
	}
	return printResult(os.Stdout, model.FromResult(result))
}

func readRequest(args []string) (model.PlanRequest, error) {
	if storedID != "" {
		var stored model.StoredPlan
		err := withStore(func(s *store.Store) error {
			var err error
			stored, err = s.Load(storedID)
			return err
		})
		return stored.Plan, err
	}

	if len(args) == 0 {
		return model.PlanRequest{}, merry.New("plan file or --id is required")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return model.PlanRequest{}, merry.Wrap(err)
	}
	return model.ParsePlanRequest(data)
}

func printResult(out io.Writer, result model.PlanResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TANK\tVOLUME l\tEND bar\tCONSUMED bar\tRESERVE bar\tREMAINING\t")
	for _, t := range result.Tanks {
		reserve := humanize.Ftoa(t.Reserve)
		if !t.HasReserve {
			reserve += " !"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d %%\t\n", t.Label,
			humanize.Comma(int64(t.Size*t.StartPressure)),
			humanize.Ftoa(t.EndPressure), humanize.Ftoa(t.Consumed), reserve, t.PercentsRemaining)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nduration %s min, average depth %s m\n", humanize.Ftoa(result.Duration), humanize.Ftoa(result.AverageDepth))
	fmt.Fprintf(out, "max bottom time %d min, time to surface %d min\n", result.MaxTime, result.TimeToSurface)
	for _, e := range result.Events {
		fmt.Fprintf(out, "%6.1f min %5.1f m  %s: %s\n", e.Time, e.Depth, e.Type, e.Message)
	}
	return nil
}
