package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepval/emptiness"
)

func (a *app) newEmptyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empty [file]",
		Short: "Print whether a document is deeply empty",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runEmpty,
	}
	defaults := emptiness.DefaultOptions()
	f := cmd.Flags()
	f.Bool("empty-string-is-empty", defaults.EmptyStringIsEmpty, "treat \"\" as empty")
	f.Bool("whitespace-is-empty", defaults.WhitespaceIsEmpty, "trim whitespace before the empty string check")
	f.Bool("zero-is-empty", defaults.ZeroIsEmpty, "treat numeric zero as empty")
	f.Bool("false-is-empty", defaults.FalseIsEmpty, "treat false as empty")
	f.Bool("treat-maps-as-objects", defaults.TreatMapsAsObjects, "ignore map keys")

	return cmd
}

func (a *app) runEmpty(cmd *cobra.Command, args []string) error {
	opts := a.profile.Empty.Options()
	f := cmd.Flags()
	overrideBool(f, "empty-string-is-empty", &opts.EmptyStringIsEmpty)
	overrideBool(f, "whitespace-is-empty", &opts.WhitespaceIsEmpty)
	overrideBool(f, "zero-is-empty", &opts.ZeroIsEmpty)
	overrideBool(f, "false-is-empty", &opts.FalseIsEmpty)
	overrideBool(f, "treat-maps-as-objects", &opts.TreatMapsAsObjects)

	doc, src, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	empty := emptiness.IsEmpty(doc, emptiness.WithOptions(opts))
	a.log.WithFields(logrus.Fields{
		"source":  src,
		"options": fmt.Sprintf("%+v", opts),
		"empty":   empty,
	}).Debug("document evaluated")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), empty)

	return err
}
