package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deepval/cmd/deepval/config"
)

// app carries the state shared by every subcommand.
type app struct {
	log        *logrus.Logger
	profile    *config.Profile
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New(), profile: &config.Profile{}}

	root := &cobra.Command{
		Use:   "deepval",
		Short: "Deep emptiness, flattening and digit formatting for structured documents",
		Long: `deepval inspects YAML or JSON documents: it reports whether everything
inside a document is empty, lists every terminal value, and formats digits.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML profile with default switches")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	root.AddCommand(a.newEmptyCmd(), a.newFlattenCmd(), a.newDigitsCmd())

	return root
}

// setup configures logging and loads the profile before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	a.log.SetLevel(logrus.WarnLevel)
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	}

	p, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.profile = p
	if a.configPath != "" {
		a.log.WithField("config", a.configPath).Debug("profile loaded")
	}

	return nil
}

// readDocument decodes the document named by args (stdin for none or "-").
// It returns the decoded value and a label for the source.
func readDocument(cmd *cobra.Command, args []string) (any, string, error) {
	src := "stdin"
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, args[0], fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r, src = f, args[0]
	}

	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, src, fmt.Errorf("failed to parse %s: %w", src, err)
	}

	return doc, src, nil
}

// overrideBool copies flag name into dst when it was set on the command line.
func overrideBool(flags *pflag.FlagSet, name string, dst *bool) {
	if !flags.Changed(name) {
		return
	}
	if v, err := flags.GetBool(name); err == nil {
		*dst = v
	}
}
