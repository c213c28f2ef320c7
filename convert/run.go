package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"odfc/config"
	"odfc/state"
)

var errNotDocument = errors.New("not an OpenDocument container")

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst != stdoutName {
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if err := applyFlags(cmd, &env.Cfg.Document); err != nil {
		return err
	}
	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	mode := env.Cfg.Document.Mode()
	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("mode", mode))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)),
			zap.Int("converted", env.Stats.Converted), zap.Int("failed", env.Stats.Failed), zap.Int("skipped", env.Stats.Skipped))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// applyFlags superimposes command line on configured document options, only
// flags actually present are taken into account.
func applyFlags(cmd *cli.Command, doc *config.DocumentConfig) error {
	if cmd.IsSet("raw") {
		doc.Raw = cmd.Bool("raw")
	}
	if cmd.IsSet("style") {
		doc.Style = cmd.Bool("style")
	}
	if cmd.IsSet("break-sentences") {
		doc.BreakSentences = cmd.Bool("break-sentences")
	}
	if cmd.IsSet("segmenter") {
		s, err := config.ParseSegmenter(cmd.String("segmenter"))
		if err != nil {
			return fmt.Errorf("unable to select sentence segmenter: %w", err)
		}
		doc.Segmenter = s
	}
	return nil
}

// process handles the core conversion logic independently of CLI framework.
// Single document failure is returned, failures in directory mode are logged
// and processing continues.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.IsDir() {
		if err := processDir(ctx, src, dst, log); err != nil {
			return fmt.Errorf("unable to process directory: %w", err)
		}
		return nil
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	env := state.EnvFromContext(ctx)
	if err := processDocument(ctx, src, filepath.Base(src), dst, log); err != nil {
		env.Stats.Failed++
		return err
	}
	env.Stats.Converted++
	return nil
}

// processDir walks directory tree finding documents with configured
// extensions and processes them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() || !hasExtension(path, env.Cfg.Document.Extensions) {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		switch err := processDocument(ctx, path, rel, dst, log); {
		case err == nil:
			env.Stats.Converted++
		case errors.Is(err, errNotDocument):
			env.Stats.Skipped++
			log.Debug("Skipping file", zap.String("file", path), zap.Error(err))
		default:
			env.Stats.Failed++
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	if err == nil && env.Stats.Total() == 0 {
		log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}
