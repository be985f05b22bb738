package sheet

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/archive"
	"cssb/config"
	"cssb/state"
)

// recipeExtensions lists file extensions recognized as recipes when walking
// a directory tree.
var recipeExtensions = []string{".yaml", ".yml"}

func isRecipeFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range recipeExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Run is the "build" subcommand action. It accepts a recipe file or a
// directory tree of recipes and writes assembled stylesheets to the
// destination. For a single input without destination the result goes to
// stdout.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input recipe has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	if cmd.Bool("compact") {
		env.Cfg.Sheet.Compact = true
	}

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input recipe was not found (%s): %w", src, err)
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if fi.Mode().IsDir() {
		if len(dst) == 0 {
			if dst, err = os.Getwd(); err != nil {
				return fmt.Errorf("unable to get working directory: %w", err)
			}
		}
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		return processDir(ctx, src, dst, log)
	}

	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}

	bundle, err := isArchiveFile(src)
	if err != nil {
		return fmt.Errorf("unable to check archive type: %w", err)
	}
	if bundle {
		if len(dst) == 0 {
			if dst, err = os.Getwd(); err != nil {
				return fmt.Errorf("unable to get working directory: %w", err)
			}
		}
		if dst, err = filepath.Abs(dst); err != nil {
			return err
		}
		return processArchive(ctx, src, dst, log)
	}

	if len(dst) == 0 {
		// single recipe without destination - write to stdout
		return processRecipe(ctx, src, filepath.Base(src), "", log)
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	return processRecipe(ctx, src, filepath.Base(src), dst, log)
}

// processDir walks directory tree finding recipe files and assembles them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	env := state.EnvFromContext(ctx)

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() || !isRecipeFile(path) {
			return nil
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		out := filepath.Join(dst, outputName(src, env))
		if err := processRecipe(ctx, path, src, out, log); err != nil {
			log.Error("Unable to process recipe", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// outputName derives the destination path (relative to the destination
// directory) for a recipe path relative to the source directory.
func outputName(src string, env *state.LocalEnv) string {
	base := config.CleanFileName(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))) + env.Cfg.Sheet.OutputExtension
	if env.NoDirs {
		return base
	}
	return filepath.Join(filepath.Dir(src), base)
}

// processArchive walks all recipe files inside a zip bundle and assembles
// each of them under dst.
func processArchive(ctx context.Context, path, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	env := state.EnvFromContext(ctx)

	err = archive.Walk(path, isRecipeFile, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process recipe in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		data, err := io.ReadAll(r)
		if err != nil {
			log.Error("Unable to read recipe in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}

		src := filepath.FromSlash(f.FileHeader.Name)
		out := filepath.Join(dst, outputName(src, env))
		if err := assembleData(ctx, data, src, out, log); err != nil {
			log.Error("Unable to process recipe in archive",
				zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
	return err
}

// processRecipe assembles a single recipe file. "src" is the source path
// relative to the original input (base file name when a file was specified
// directly), used for logging. "dst" is the destination file, empty for
// stdout.
func processRecipe(ctx context.Context, path, src, dst string, log *zap.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read recipe (%s): %w", src, err)
	}
	return assembleData(ctx, data, src, dst, log)
}

// assembleData assembles recipe data into a stylesheet written to dst, or to
// stdout when dst is empty.
func assembleData(ctx context.Context, data []byte, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	log.Info("Assembly starting", zap.String("from", src))
	defer func(start time.Time) {
		log.Info("Assembly completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", dst))
	}(time.Now())

	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("recipe/%s", filepath.Base(src)), data)
	}

	doc, err := Load(data)
	if err != nil {
		return fmt.Errorf("unable to parse recipe (%s): %w", src, err)
	}

	sheet, err := doc.Assemble(log)
	if err != nil {
		return fmt.Errorf("unable to assemble recipe (%s): %w", src, err)
	}
	sheet.Compact = env.Cfg.Sheet.Compact

	if len(dst) == 0 {
		_, err = sheet.WriteTo(os.Stdout)
		return err
	}

	if _, err := os.Stat(dst); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer out.Close()

	if _, err := sheet.WriteTo(out); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result/%s", filepath.Base(dst)), dst)
	}
	return nil
}
