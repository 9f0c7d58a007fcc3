package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/readingschedule/core/location"
	"github.com/kilianp07/readingschedule/core/model"
)

var locateCmd = &cobra.Command{
	Use:     "locate <day> <time>",
	Short:   "Print the location open at a slot",
	Example: "  readingschedule locate Wednesday 5:00 pm",
	Args:    cobra.MinimumNArgs(2),
	RunE:    runLocate,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the location rules",
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(locateCmd, rulesCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	d, ok := model.ParseWeekday(args[0])
	if !ok {
		return fmt.Errorf("invalid day %q", args[0])
	}
	label := strings.Join(args[1:], " ")
	t, ok := location.ParseLabel(label)
	if !ok {
		return fmt.Errorf("invalid time %q, expected e.g. \"5:00 pm\"", label)
	}
	loc := location.Resolve(d, t)
	if loc == model.LocationNone {
		fmt.Fprintln(cmd.OutOrStdout(), "none")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), loc)
	return nil
}

func runRules(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, l := range location.Legend() {
		fmt.Fprintln(out, l)
	}
	fmt.Fprintln(out)
	for _, r := range location.Rules {
		fmt.Fprintf(out, "%-9s %s - %s  %s\n", r.Day, model.TimeOfDay{Hour: r.FromHour}, ruleEnd(r.ToHour), r.Location)
	}
	return nil
}

// ruleEnd labels the exclusive end hour of a rule; 24 closes the day.
func ruleEnd(hour int) string {
	if hour >= 24 {
		return "midnight"
	}
	return model.TimeOfDay{Hour: hour}.String()
}
