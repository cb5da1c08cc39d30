package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/aretw0/prettifier/pkg/domain"
)

var renderersCmd = &cobra.Command{
	Use:   "renderers",
	Short: "List renderers found on this host and the chain tried for each kind",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		caps := a.svc.Capabilities()

		tw := table.NewWriter()
		tw.SetOutputMirror(cmd.OutOrStdout())
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Renderer", "Available", "Command", "Timeout"})
		for _, name := range caps.Names() {
			d := caps[name]
			cmdText, timeout := d.Command, d.Timeout.String()
			if d.InProcess {
				cmdText, timeout = "(in-process)", "-"
			}
			tw.AppendRow(table.Row{name, yesNo(d.Available), cmdText, timeout})
		}
		tw.Render()

		fmt.Fprintln(cmd.OutOrStdout())
		chains := table.NewWriter()
		chains.SetOutputMirror(cmd.OutOrStdout())
		chains.SetStyle(table.StyleRounded)
		chains.AppendHeader(table.Row{"Operation", "Chain"})
		for _, op := range a.svc.Operations() {
			if op.Kind == domain.KindRaw {
				chains.AppendRow(table.Row{op.Name, "detect, then the detected kind"})
				continue
			}
			chains.AppendRow(table.Row{op.Name, strings.Join(a.svc.Chain(op.Kind), " → ")})
		}
		chains.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderersCmd)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
