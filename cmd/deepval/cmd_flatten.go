package main

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deepval/flatten"
)

func (a *app) newFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Print every terminal value of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runFlatten,
	}
	defaults := flatten.DefaultOptions()
	f := cmd.Flags()
	f.Bool("unique", defaults.ReturnUnique, "drop repeated values")
	f.Bool("drop-empty", defaults.DropEmpty, "omit empty containers instead of printing them")
	f.Int("max-depth", defaults.MaxDepth, "expand at most this many container levels (-1: no limit)")
	f.Bool("json", false, "print a JSON array instead of a YAML sequence (NaN and infinities print as strings)")

	return cmd
}

func (a *app) runFlatten(cmd *cobra.Command, args []string) error {
	opts := a.profile.Flatten.Options()
	f := cmd.Flags()
	overrideBool(f, "unique", &opts.ReturnUnique)
	overrideBool(f, "drop-empty", &opts.DropEmpty)
	if f.Changed("max-depth") {
		if depth, err := f.GetInt("max-depth"); err == nil {
			opts.MaxDepth = depth
		}
	}
	asJSON, _ := f.GetBool("json")

	doc, src, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	values := flatten.Values(doc, flatten.WithOptions(opts))
	a.log.WithFields(logrus.Fields{
		"source": src,
		"count":  len(values),
		"unique": opts.ReturnUnique,
	}).Debug("document flattened")

	out := cmd.OutOrStdout()
	if asJSON {
		if err = json.NewEncoder(out).Encode(jsonValue(values)); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err = enc.Encode(values); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return enc.Close()
}

// jsonValue rewrites v into a form encoding/json accepts. Non-finite floats
// become their strconv text and maps with non-string keys get fmt.Sprint keys.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = jsonValue(e)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = jsonValue(e)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = jsonValue(e)
		}

		return out
	}

	return v
}
