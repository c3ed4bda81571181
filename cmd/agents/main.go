package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/szymon-polaczy/Agents/install"
	"github.com/urfave/cli/v3"
)

func main() {
	app := rootCommand()
	if err := app.Run(context.Background(), os.Args); err != nil {
		writeError(err)
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:      "agents",
		Usage:     "install agent instruction files into tool-specific layouts",
		ArgsUsage: "<cursor|claude|opencode|all>",
		Description: "Locate the nearest payload (AGENTS.md plus a commands directory) and\n" +
			"copy it into the directory layout one of the supported tools expects.\n\n" +
			"Examples:\n" +
			"  agents opencode              # build dist/opencode next to the payload\n" +
			"  agents claude --out ~/proj   # build straight into a project\n" +
			"  agents all --force           # rebuild every layout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Usage:   "directory to start payload resolution from",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory override",
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "replace an existing output directory",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print results as JSON",
			},
		},
		Action: runInstall,
	}
}

func runInstall(_ context.Context, cmd *cli.Command) error {
	cfg, err := install.ConfigFromEnv()
	if err != nil {
		return err
	}

	selector := cmd.Args().First()
	if selector == "" {
		return errors.New("missing target argument (expected cursor, claude, opencode, or all)")
	}
	target, err := install.ParseTarget(selector)
	if err != nil {
		return err
	}

	source := cmd.String("source")
	if source == "" {
		source = cfg.Source
	}

	outDir := cmd.String("out")
	if cmd.IsSet("out") && strings.TrimSpace(outDir) == "" {
		return errors.New("--out requires a non-empty path")
	}
	if outDir == "" {
		outDir = cfg.Dist
	}
	force := cmd.Bool("force") || cfg.Force

	payload, err := install.Resolve(source)
	if err != nil {
		return err
	}

	if target == install.TargetAll {
		results, buildErr := install.BuildAll(payload, outDir, force)
		return errors.Join(buildErr, report(os.Stdout, results, cmd.Bool("json")))
	}

	res, err := install.Build(payload, install.BuildRequest{
		Target: target,
		OutDir: outDir,
		Force:  force,
	})
	if err != nil {
		return err
	}
	return report(os.Stdout, []*install.Result{res}, cmd.Bool("json"))
}

func report(w io.Writer, results []*install.Result, asJSON bool) error {
	if asJSON {
		return writeJSON(w, results)
	}
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "installed %s -> %s (%d files)\n", res.Target, res.Path, res.Files); err != nil {
			return err
		}
	}
	return nil
}

// JSON output helpers
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeError(err error) {
	enc := json.NewEncoder(os.Stderr)
	enc.Encode(map[string]string{
		"error": err.Error(),
	})
}
