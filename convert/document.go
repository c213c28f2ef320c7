package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"odfc/config"
	"odfc/css"
	"odfc/odf"
	"odfc/state"
)

// sessionOptions maps configured document section to conversion options.
func sessionOptions(doc *config.DocumentConfig) odf.Options {
	return odf.Options{
		Raw:               doc.Raw,
		Style:             doc.Style,
		BreakSentences:    doc.BreakSentences,
		Punkt:             doc.Segmenter == config.SegmenterPunkt,
		Language:          doc.Language,
		Abbreviations:     doc.Abbreviations,
		DefaultStyle:      doc.DefaultStyle,
		SkipStylePrefixes: doc.SkipStylePrefixes,
	}
}

// processDocument converts single document. "path" is actual location of the
// file, "src" is part of the source path relative to the processed root
// (always including file name). When dst is "-" result goes to stdout,
// otherwise dst is the output directory. Output is written only when whole
// document was converted.
func processDocument(ctx context.Context, path, src, dst string, log *zap.Logger) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate document id: %w", err)
	}
	log = log.With(zap.Stringer("id", id))

	var outputName string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	ok, err := isArchiveFile(path)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", src, errNotDocument)
	}

	cfg := &env.Cfg.Document
	doc, err := odf.Open(path, cfg.Style)
	if err != nil {
		return fmt.Errorf("unable to open document (%s): %w", src, err)
	}
	if !doc.IsOpenDocument() {
		log.Warn("Unexpected document media type", zap.String("mimetype", doc.MimeType))
	}
	if err := env.Rpt.StoreCopy(fmt.Sprintf("source/%s-%s", id, filepath.Base(src)), path); err != nil {
		log.Warn("Unable to store document copy in report", zap.Error(err))
	}

	session := odf.NewSession(sessionOptions(cfg), log.Named("odf"))
	out, err := session.Convert(doc)
	if err != nil {
		return fmt.Errorf("unable to convert document (%s): %w", src, err)
	}

	mode := cfg.Mode()
	if env.Rpt != nil && mode == config.OutputModeStyled {
		env.Rpt.StoreData(fmt.Sprintf("catalog/%s-%s.txt", id, filepath.Base(src)), []byte(session.Catalog().String()))
	}
	if cfg.AuditStyles && mode == config.OutputModeStyled {
		auditStyles(session.StyleBlock(out), src, log)
	}

	if dst == stdoutName {
		outputName = "STDOUT"
		_, err := os.Stdout.Write(out)
		return err
	}

	lang, country := session.Catalog().Language()
	if country != "" {
		lang += "-" + country
	}
	outputName = buildOutputPath(src, dst, Values{
		Name:       trimExt(filepath.Base(src)),
		Dir:        filepath.ToSlash(filepath.Dir(src)),
		Mode:       mode.String(),
		Ext:        mode.Ext(),
		Language:   lang,
		DocumentID: id.String(),
	}, env)

	if err := writeOutput(outputName, out, env.Overwrite, log); err != nil {
		return err
	}
	env.Rpt.Store(fmt.Sprintf("result/%s-%s", id, filepath.Base(outputName)), outputName)
	return nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

func writeOutput(name string, data []byte, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return writeFile(name, data)
}

func writeFile(name string, data []byte) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("unable to close output file: %w", cerr)
		}
	}()
	if _, err = f.Write(data); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}

// auditStyles reads produced style block back and logs what looks suspicious.
func auditStyles(block []byte, src string, log *zap.Logger) {
	sheet := css.NewParser(log).Parse(block, src)
	for _, w := range sheet.Warnings {
		log.Warn("Style block problem", zap.String("problem", w))
	}
	for _, c := range sheet.Unhandled() {
		log.Debug("Style property was not converted", zap.String("comment", c))
	}
	log.Debug("Style block audited", zap.Int("rulesets", len(sheet.Rulesets)),
		zap.Int("defaults", len(sheet.Defaults())), zap.Int("unhandled", len(sheet.Unhandled())))
}
