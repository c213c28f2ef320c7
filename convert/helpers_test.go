package convert

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"odfc/config"
	"odfc/state"
)

const namespaces = `xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"` +
	` xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"` +
	` xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"` +
	` xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"`

const sampleStyles = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<office:document-styles ` + namespaces + `><office:styles>` +
	`<style:style style:name="Standard" style:family="paragraph"/>` +
	`<style:style style:name="Quote" style:display-name="Quotation" style:family="paragraph">` +
	`<style:paragraph-properties fo:margin-left="1in"/>` +
	`</style:style>` +
	`</office:styles></office:document-styles>`

const sampleContent = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<office:document-content ` + namespaces + `><office:body><office:text>` +
	`<text:p text:style-name="Standard">Hello world.</text:p>` +
	`<text:p text:style-name="Quote">Quoted.</text:p>` +
	`</office:text></office:body></office:document-content>`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Cfg = cfg
	return ctx, env
}

// writeDocument creates zip container with provided parts at path.
func writeDocument(t *testing.T, path string, parts map[string]string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create document: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for _, name := range []string{"mimetype", "styles.xml", "content.xml"} {
		data, ok := parts[name]
		if !ok {
			continue
		}
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(data)); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish document: %v", err)
	}
}

func sampleDocument(t *testing.T, path string) {
	t.Helper()
	writeDocument(t, path, map[string]string{
		"mimetype":    "application/vnd.oasis.opendocument.text",
		"styles.xml":  sampleStyles,
		"content.xml": sampleContent,
	})
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
