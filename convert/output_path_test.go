package convert

import (
	"path/filepath"
	"testing"
)

func TestBuildOutputPath(t *testing.T) {
	_, env := setupTestEnv(t)
	dst := filepath.Join(string(filepath.Separator), "out")
	values := Values{Name: "Report", Dir: "sub", Mode: "plain", Ext: ".txt", Language: "en-US", DocumentID: "id-1"}

	tests := []struct {
		name          string
		noDirs        bool
		template      string
		transliterate bool
		src           string
		want          string
	}{
		{"default keeps directories", false, "", false, filepath.Join("sub", "Report.odt"), filepath.Join(dst, "sub", "Report.txt")},
		{"default without directories", true, "", false, filepath.Join("sub", "Report.odt"), filepath.Join(dst, "Report.txt")},
		{"template", true, "{{ .Language }}/{{ .Name | lower }}", false, "Report.odt", filepath.Join(dst, "en-US", "report.txt")},
		{"template cannot escape", true, "../../{{ .Name }}", false, "Report.odt", filepath.Join(dst, "Report.txt")},
		{"template with mode", true, "{{ .Name }}-{{ .Mode }}", false, "Report.odt", filepath.Join(dst, "Report-plain.txt")},
		{"broken template falls back", true, "{{ .Name ", false, "Report.odt", filepath.Join(dst, "Report.txt")},
		{"transliteration", true, "", true, "Annual Report 2024.odt", filepath.Join(dst, "annual-report-2024.txt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.NoDirs = tt.noDirs
			env.Cfg.Document.OutputNameTemplate = tt.template
			env.Cfg.Document.FileNameTransliterate = tt.transliterate
			if got := buildOutputPath(tt.src, dst, values, env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	sep := string(filepath.Separator)
	got := splitPath("a" + sep + sep + "." + sep + ".." + sep + "b")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitPath() = %v, want [a b]", got)
	}
	if got := splitPath(""); len(got) != 0 {
		t.Errorf("splitPath(\"\") = %v, want empty", got)
	}
}

func TestExpandTemplate(t *testing.T) {
	got, err := expandTemplate("output_name_template", "{{ .Context }}:{{ .DocumentID }}{{ .Ext }}", Values{DocumentID: "x", Ext: ".html"})
	if err != nil {
		t.Fatalf("expandTemplate() error = %v", err)
	}
	if got != "output_name_template:x.html" {
		t.Errorf("expandTemplate() = %q", got)
	}

	if _, err := expandTemplate("output_name_template", "{{ .Missing }}", Values{}); err == nil {
		t.Error("expected error for unknown field")
	}
}
