package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deepval/digits"
	"github.com/katalvlaran/deepval/emptiness"
	"github.com/katalvlaran/deepval/flatten"
)

// Load reads the profile at path. An empty path yields an empty Profile.
func Load(path string) (*Profile, error) {
	if path == "" {
		return &Profile{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	return p, nil
}

// Parse decodes a profile document, rejecting unknown fields and invalid modes.
func Parse(data []byte) (*Profile, error) {
	p := &Profile{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if _, err := p.Digits.Options(); err != nil {
		return nil, err
	}

	return p, nil
}

// Options overlays the set fields of p onto emptiness.DefaultOptions.
func (p EmptyProfile) Options() emptiness.Options {
	o := emptiness.DefaultOptions()
	overlay(&o.EmptyStringIsEmpty, p.EmptyStringIsEmpty)
	overlay(&o.WhitespaceIsEmpty, p.WhitespaceIsEmpty)
	overlay(&o.ZeroIsEmpty, p.ZeroIsEmpty)
	overlay(&o.FalseIsEmpty, p.FalseIsEmpty)
	overlay(&o.TreatMapsAsObjects, p.TreatMapsAsObjects)

	return o
}

// Options overlays the set fields of p onto flatten.DefaultOptions.
func (p FlattenProfile) Options() flatten.Options {
	o := flatten.DefaultOptions()
	overlay(&o.ReturnUnique, p.ReturnUnique)
	overlay(&o.DropEmpty, p.DropEmpty)
	overlay(&o.MaxDepth, p.MaxDepth)

	return o
}

// Options overlays the set fields of p onto digits.DefaultOptions.
// It fails when a mode string is not recognised.
func (p DigitsProfile) Options() (digits.Options, error) {
	o := digits.DefaultOptions()
	var err error
	if p.FailedOutput != "" {
		if o.FailedOutput, err = digits.ParseFailedOutput(p.FailedOutput); err != nil {
			return o, fmt.Errorf("digits.failed_output: %w", err)
		}
	}
	if p.Trim != "" {
		if o.Trim, err = digits.ParseTrim(p.Trim); err != nil {
			return o, fmt.Errorf("digits.trim: %w", err)
		}
	}
	overlay(&o.IncompleteFormat, p.IncompleteFormat)
	overlay(&o.LastDigitEnds, p.LastDigitEnds)
	overlay(&o.Expand, p.Expand)

	return o, nil
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
