package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/recipe"
	"cssel/selector"
	"cssel/state"
)

func runBuild(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no recipe file specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	src := cmd.Args().Get(0)
	dest := cmd.Args().Get(1)

	env.Check = env.Cfg.Build.Check || cmd.Bool("check")
	env.Overwrite = cmd.Bool("overwrite")

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read recipe file '%s': %w", src, err)
	}
	r, err := recipe.Load(data)
	if err != nil {
		return fmt.Errorf("unable to load recipe '%s': %w", src, err)
	}

	out := os.Stdout
	if len(dest) > 0 {
		if _, err := os.Stat(dest); err == nil && !env.Overwrite {
			return fmt.Errorf("destination file '%s' exists, use --overwrite", dest)
		}
		out, err = os.Create(dest)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dest, err)
		}
		defer out.Close()
	}

	rendered, buildErr := recipe.NewBuilder(env.Log).Build(r)
	for _, rend := range rendered {
		if env.Check {
			for _, finding := range selector.Lint(rend.Selector) {
				env.Log.Warn("Lint finding", zap.String("name", rend.Name), zap.String("selector", rend.Selector), zap.String("finding", finding))
			}
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", rend.Name, rend.Selector); err != nil {
			return fmt.Errorf("unable to write selector: %w", err)
		}
	}

	env.Log.Info("Recipe processed", zap.String("recipe", src), zap.Int("selectors", len(rendered)), zap.Int("failed", len(multierr.Errors(buildErr))))
	return buildErr
}

func runLint(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no selectors specified")
	}

	var err error
	for _, s := range cmd.Args().Slice() {
		findings := selector.Lint(s)
		for _, finding := range findings {
			env.Log.Warn("Lint finding", zap.String("selector", s), zap.String("finding", finding))
		}
		if len(findings) > 0 {
			err = multierr.Append(err, fmt.Errorf("selector %q has %d finding(s)", s, len(findings)))
		} else {
			env.Log.Info("Selector is clean", zap.String("selector", s))
		}
	}
	return err
}
