// Package render implements program subcommands working on stylesheet
// documents.
package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"mixt/config"
	"mixt/css"
	"mixt/loader"
	"mixt/state"
)

// Run renders a YAML stylesheet document to CSS.
func Run(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no source has been specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src := cmd.Args().Get(0)
	dst := cmd.Args().Get(1)

	mode := env.Cfg.Rendering.Mode
	if cmd.IsSet("mode") {
		m, err := config.ParseRenderMode(cmd.String("mode"))
		if err != nil {
			return err
		}
		mode = m
	}

	doc, err := loader.LoadFile(src)
	if err != nil {
		return fmt.Errorf("unable to load stylesheet document: %w", err)
	}

	out, err := css.Render(doc, mode.Mode())
	if err != nil {
		return fmt.Errorf("unable to render '%s': %w", src, err)
	}

	if cmd.Bool("check") || env.Cfg.Rendering.Check {
		if err := css.NewChecker(env.Log).CheckString(out); err != nil {
			return fmt.Errorf("rendered output of '%s' did not pass syntax check: %w", src, err)
		}
	}

	fname, err := prepareDestination(src, dst, env.Overwrite)
	if err != nil {
		return err
	}

	w := os.Stdout
	if len(fname) > 0 {
		if w, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer w.Close()
	}
	if _, err := w.WriteString(out); err != nil {
		return fmt.Errorf("unable to write rendered stylesheet: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Stylesheet rendered",
		zap.String("source", src),
		zap.String("destination", fname),
		zap.Stringer("mode", mode),
		zap.Int("bytes", len(out)),
		zap.Duration("elapsed", env.Uptime()))
	return nil
}

// prepareDestination resolves where rendered output goes: empty for STDOUT,
// inside dst when it is a directory, dst itself otherwise.
func prepareDestination(src, dst string, overwrite bool) (string, error) {
	if len(dst) == 0 {
		return "", nil
	}
	fname := dst
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		base := filepath.Base(src)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		fname = filepath.Join(dst, config.CleanFileName(base)+".css")
	}
	if _, err := os.Stat(fname); err == nil && !overwrite {
		return "", fmt.Errorf("destination file already exists: '%s'", fname)
	}
	return fname, nil
}

// Check parses CSS file(s) and reports syntax problems.
func Check(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no source has been specified")
	}

	checker := css.NewChecker(env.Log)

	var result error
	for _, src := range cmd.Args().Slice() {
		data, err := os.ReadFile(src)
		if err != nil {
			result = multierr.Append(result, fmt.Errorf("unable to read '%s': %w", src, err))
			continue
		}
		if err := checker.Check(data); err != nil {
			result = multierr.Append(result, fmt.Errorf("%s: %w", src, err))
			continue
		}
		env.Log.Info("Stylesheet is well formed", zap.String("source", src), zap.Int("bytes", len(data)))
	}
	return result
}
