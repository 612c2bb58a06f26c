// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

// Package config loads the YAML pipeline files run by the meshedit command.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hajimehoshi/go-meshedit"
)

// Config is a pipeline: the passes to run over a mesh, in order.
type Config struct {
	// Steps are run in order.
	Steps []Step `yaml:"steps"`

	// ValidateEachStep checks the mesh after every iteration.
	ValidateEachStep bool `yaml:"validate_each_step"`

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// FlipOrientation is copied onto the mesh before the pipeline runs.
	FlipOrientation bool `yaml:"flip_orientation"`
}

// Step is one pass of the pipeline.
type Step struct {
	Op         string `yaml:"op"`
	Iterations int    `yaml:"iterations"`
}

// Default returns a pipeline that only validates the mesh.
func Default() Config {
	return Config{
		ValidateEachStep: true,
		LogLevel:         "info",
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid field of c.
func (c Config) Validate() error {
	var errs []error
	for i, s := range c.Steps {
		if _, err := meshedit.ParsePass(s.Op); err != nil {
			errs = append(errs, fmt.Errorf("steps[%d]: %w", i, err))
		}
		if s.Iterations < 0 {
			errs = append(errs, fmt.Errorf("steps[%d]: negative iterations %d", i, s.Iterations))
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

// Pipeline converts the steps of c for meshedit.Mesh.Run. c must be valid.
func (c Config) Pipeline() []meshedit.Step {
	steps := make([]meshedit.Step, 0, len(c.Steps))
	for _, s := range c.Steps {
		p, err := meshedit.ParsePass(s.Op)
		if err != nil {
			continue
		}
		steps = append(steps, meshedit.Step{Pass: p, Iterations: s.Iterations})
	}
	return steps
}
