package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clusterlens/esadmin"
)

var (
	uriFlag  string
	userFlag string
	passFlag string
	yesFlag  bool

	logger  zerolog.Logger
	store   *esadmin.ConnectionStore
	invoker *esadmin.Invoker
	runner  *esadmin.Runner

	rootCmd = &cobra.Command{
		Use:               "esadmin",
		Short:             "Administer a search cluster from the terminal",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&uriFlag, "uri", "c", "", "Cluster base URI (overrides ESADMIN_CLUSTER_URI)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "Basic auth username")
	rootCmd.PersistentFlags().StringVarP(&passFlag, "password", "p", "", "Basic auth password")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// setup builds the connection store, verifies the cluster is reachable and
// wires the invoker/runner pair every subcommand shares.
func setup(cmd *cobra.Command, _ []string) error {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if uriFlag != "" {
		store = esadmin.NewConnectionStore(logger)
		opts := []esadmin.AdapterOption{esadmin.WithAdapterLogger(logger)}
		if userFlag != "" {
			opts = append(opts, esadmin.WithBasicAuth(userFlag, passFlag))
		}
		if err := store.Add("default", uriFlag, opts...); err != nil {
			return err
		}
		if err := store.Select("default"); err != nil {
			return err
		}
	} else {
		s, err := esadmin.ConnectionStoreFromEnv(logger)
		if err != nil {
			return err
		}
		store = s
	}

	if name, ok := store.ActiveName(); ok {
		if err := store.Connect(cmd.Context(), name); err != nil {
			return err
		}
	}

	invoker = esadmin.NewInvoker(store, esadmin.WithInvokerLogger(logger))
	runner = esadmin.NewRunner(invoker, &stdinConfirmer{in: os.Stdin, out: os.Stderr}, logNotifier{log: logger}, nil)
	return nil
}

// runRead loads a read-only operation and prints its body as JSON.
func runRead(ctx context.Context, op esadmin.Operation) error {
	ld := esadmin.NewLoader(invoker, op)
	ld.Load(ctx)
	data := ld.Data()
	if data == nil {
		st := invoker.State()
		return fmt.Errorf("%s failed: %s (status %d)", op.Name(), st.APIErrorMessage, st.Status)
	}
	return printJSON(os.Stdout, data)
}

// runMutation routes a mutating operation through the shared Runner.
func runMutation(ctx context.Context, op esadmin.Operation, confirmMsg, successTitle string) error {
	if yesFlag {
		confirmMsg = ""
	}
	ok := runner.Run(ctx, esadmin.RunRequest{
		Op:         op,
		ConfirmMsg: confirmMsg,
		Snackbar:   &esadmin.Snackbar{Title: successTitle},
	})
	if !ok {
		return fmt.Errorf("%s was not applied", op.Name())
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
