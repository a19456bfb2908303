package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexshd/infoecon"
)

const strategyAdvisor = "advisor"

func newRunCmd(a *app) *cobra.Command {
	var (
		strategy string
		turns    int
		asYAML   bool
	)

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Play a scripted or advised sequence of turns without the TUI",
		Long: `Plays turns headlessly and prints one row per turn.

The script is a sequence of actions: letters ("rrrp") or words
("research,produce"), separated by commas or spaces. With --strategy advisor
the advisor picks every move for --turns turns instead.`,
		Example: `  infoecon run rrrrrp
  infoecon run --strategy advisor --turns 200 --yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			econ, err := a.newEconomy(cmd)
			if err != nil {
				return err
			}

			var traj infoecon.Trajectory
			switch {
			case strategy == strategyAdvisor:
				if len(args) > 0 {
					return errors.New("a script and --strategy advisor are mutually exclusive")
				}
				traj, err = econ.PlayAdvised(turns)
			case strategy != "":
				return fmt.Errorf("unknown strategy %q (want %q)", strategy, strategyAdvisor)
			case len(args) == 1:
				var actions []infoecon.Action
				if actions, err = infoecon.ParseActions(args[0]); err != nil {
					return err
				}
				traj, err = econ.Play(actions)
			default:
				return errors.New("nothing to play: pass a script or --strategy advisor")
			}
			if err != nil {
				return err
			}

			final := traj.Final()
			slog.Info("run finished", "turns", final.Turn, "money", final.Money, "entropy", final.Metrics.Entropy)

			if asYAML {
				return writeYAML(cmd.OutOrStdout(), traj)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderTrajectory(traj))
			return err
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", `let a strategy choose the moves ("advisor")`)
	cmd.Flags().IntVar(&turns, "turns", 100, "turns to play with --strategy")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the trajectory as YAML")
	return cmd
}

func renderTrajectory(traj infoecon.Trajectory) string {
	rows := make([][]string, 0, len(traj.Steps))
	for _, s := range traj.Steps {
		action := string(s.Action)
		if action == "" {
			action = "start"
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Turn),
			action,
			f3(s.Metrics.Entropy),
			f3(s.Metrics.Knowledge),
			f3(s.Metrics.TFP),
			f3(s.Metrics.RealWage),
			f3(s.Metrics.TimePrice),
			f3(s.Metrics.Output),
			fmt.Sprintf("%.2f", s.Money),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Turn", "Action", "H(p)", "K(t)", "A(t)", "w_r(t)", "π_g(t)", "Y(t)", "Money").
		Rows(rows...).
		String()
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func f3(x float64) string { return fmt.Sprintf("%.3f", x) }

func newParamsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective model parameters as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadParams(cmd, &a.opts, a.environ)
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), p)
		},
	}
}
