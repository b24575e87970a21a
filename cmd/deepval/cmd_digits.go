package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepval/digits"
)

func (a *app) newDigitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digits <input> <format>",
		Short: "Lay the digits of input into a format of '#' placeholders",
		Example: `  deepval digits "1s23se4567yj-8?90" "(###) ###-####"
  deepval digits 00120 "#####" --trim leading`,
		Args: cobra.ExactArgs(2),
		RunE: a.runDigits,
	}
	defaults := digits.DefaultOptions()
	f := cmd.Flags()
	f.String("failed-output", defaults.FailedOutput.String(), "output on failure: empty, original or digits")
	f.Bool("incomplete-format", defaults.IncompleteFormat, "format even when there are fewer digits than placeholders")
	f.Bool("last-digit-ends", defaults.LastDigitEnds, "stop right after the last digit")
	f.Bool("expand", defaults.Expand, "append surplus digits after the format")
	f.String("trim", defaults.Trim.String(), "strip zeros: none, leading, trailing or both")

	return cmd
}

func (a *app) runDigits(cmd *cobra.Command, args []string) error {
	opts, err := a.profile.Digits.Options()
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("failed-output") {
		s, _ := f.GetString("failed-output")
		if opts.FailedOutput, err = digits.ParseFailedOutput(s); err != nil {
			return err
		}
	}
	if f.Changed("trim") {
		s, _ := f.GetString("trim")
		if opts.Trim, err = digits.ParseTrim(s); err != nil {
			return err
		}
	}
	overrideBool(f, "incomplete-format", &opts.IncompleteFormat)
	overrideBool(f, "last-digit-ends", &opts.LastDigitEnds)
	overrideBool(f, "expand", &opts.Expand)

	formatted := digits.Format(args[0], args[1], digits.WithOptions(opts))
	a.log.WithFields(logrus.Fields{
		"format":        args[1],
		"failed_output": opts.FailedOutput,
		"trim":          opts.Trim,
	}).Debug("digits formatted")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), formatted)

	return err
}
