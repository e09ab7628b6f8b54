package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/sharecart/pkg"
	"github.com/provide-io/sharecart/pkg/cart"
	"github.com/provide-io/sharecart/pkg/config"
	"github.com/provide-io/sharecart/pkg/script"
)

type app struct {
	cartPath string
	logLevel string

	store  *cart.Store
	logger hclog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "sharecart",
		Short:         "Inspect and edit a ShareCart save file",
		Long:          `Inspect and edit the shared o_o.ini cart that games read and write.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.cartPath, "path", "", "Cart file path (overrides SHARECART_PATH)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the cart file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.store.Path())
				return err
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print every cart field",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.show(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one cart field",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.store.Get(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store one cart field",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.store.Set(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Overwrite the cart with the default record",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.store.ResetToDefaults()
			},
		},
		&cobra.Command{
			Use:   "verify",
			Short: "Check every cart field for corruption",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := pkg.VerifyCartWithLogger(a.store, a.logger); err != nil {
					return err
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return err
			},
		},
		&cobra.Command{
			Use:   "run <script|->",
			Short: "Apply a command script (set/get/reset/verify per line)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(args[0], cmd.InOrStdin(), cmd.OutOrStdout())
			},
		},
	)
	return rootCmd
}

func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.cartPath != "" {
		cfg.Path = a.cartPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	a.store, a.logger, err = pkg.OpenWithConfig(cfg, "sharecart")
	return err
}

func (a *app) show(out io.Writer) error {
	var firstErr error
	for _, key := range cart.Keys() {
		v, err := a.store.Get(key)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(out, "%s = <invalid: %v>\n", key, err)
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", key, script.Quote(v))
	}
	return firstErr
}

func (a *app) run(source string, stdin io.Reader, out io.Writer) error {
	in := stdin
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return script.Run(in, a.store, out)
}
