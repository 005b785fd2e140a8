package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boxel-tui/boxel/pkg/buildinfo"
	"github.com/boxel-tui/boxel/pkg/config"
	"github.com/boxel-tui/boxel/pkg/store"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check layout files for errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var errs []error
			for _, path := range args {
				l, err := config.Load(path)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d panels\n", path, countPanels(l.Panels))
			}
			return errors.Join(errs...)
		},
	}
}

func countPanels(panels []*config.Panel) int {
	n := len(panels)
	for _, p := range panels {
		n += countPanels(p.Children)
	}
	return n
}

func newStateCmd(f *rootFlags) *cobra.Command {
	var del []string
	cmd := &cobra.Command{
		Use:   "state",
		Short: "List or delete the saved view states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.state == "" {
				return errors.New("--state is required")
			}
			st, err := store.Open(f.state)
			if err != nil {
				return fmt.Errorf("open state: %w", err)
			}
			defer st.Close()

			for _, name := range del {
				if err := st.DeleteViewState(name); err != nil {
					return err
				}
			}
			names, err := st.Names()
			if err != nil {
				return err
			}
			for _, name := range names {
				vs, err := st.ViewState(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tscroll %v\t%s\n", name, vs.Scroll, vs.Direction)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&del, "delete", nil, "Delete the view state of these panels first")
	return cmd
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !asJSON {
				fmt.Fprintln(out, "Version:", buildinfo.Value.Version)
				fmt.Fprintln(out, "Go version:", buildinfo.Value.GoVersion)
				return nil
			}
			data, err := json.Marshal(buildinfo.Value)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
