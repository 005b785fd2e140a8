package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/boxel-tui/boxel/pkg/config"
	"github.com/boxel-tui/boxel/pkg/demo"
	"github.com/boxel-tui/boxel/pkg/logutil"
	"github.com/boxel-tui/boxel/pkg/store"
	"github.com/boxel-tui/boxel/pkg/sys"
	"github.com/boxel-tui/boxel/pkg/term"
)

var logger = logutil.GetLogger("[boxel] ")

type rootFlags struct {
	config  string
	state   string
	log     string
	backend string
	focus   string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "boxel",
		Short: "Draw a layout of text panels on the terminal",
		Long: `Draw a layout of bordered, scrollable text panels on the terminal.

The layout is read from a YAML file given with --config; without it, the
built-in demo layout is shown. Up and Down scroll the focused panel, Left and
Right change its scroll direction, and Ctrl-C or Ctrl-D quit.

Examples:
  boxel                                  # Built-in demo
  boxel --config layout.yaml --focus log # Custom layout
  boxel --state ~/.boxel.db              # Remember the scroll position`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd.Context(), &f)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.state, "state", "", "Database file keeping the view state across runs")
	flags.StringVar(&f.log, "log", "", "File to write debug logs to")
	cmd.Flags().StringVar(&f.config, "config", "", "Layout file (defaults to the built-in demo)")
	cmd.Flags().StringVar(&f.backend, "backend", "sys", "Terminal backend (sys, tcell)")
	cmd.Flags().StringVar(&f.focus, "focus", "", "Name of the panel scrolled by the arrow keys")
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return logutil.SetOutputFile(f.log)
	}

	cmd.AddCommand(newCheckCmd(), newStateCmd(&f), newVersionCmd())
	return cmd
}

func runRoot(ctx context.Context, f *rootFlags) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Println("panic:", r)
			logger.Print(sys.DumpStack())
			panic(r)
		}
	}()

	opts := demo.Options{Focus: f.focus}
	if f.config != "" {
		if opts.Layout, err = config.Load(f.config); err != nil {
			return err
		}
	}
	if f.state != "" {
		st, err := store.Open(f.state)
		if err != nil {
			return fmt.Errorf("open state: %w", err)
		}
		defer st.Close()
		opts.Store = st
	}

	port, err := openPort(f.backend)
	if err != nil {
		return err
	}
	defer port.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return demo.Run(ctx, term.New(port), opts)
}

func openPort(backend string) (term.Port, error) {
	switch backend {
	case "sys":
		return term.NewFilePort(os.Stdin, os.Stdout)
	case "tcell":
		return term.NewTtyPort()
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}
