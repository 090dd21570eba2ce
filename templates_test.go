package goadmin

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-admin/pkg/ui"
)

func TestEmbeddedTemplatesContainPages(t *testing.T) {
	for _, name := range []string{ui.BaseTemplate, ui.IndexTemplate, ui.ErrorTemplate, "form.tpl"} {
		if _, err := fs.Stat(EmbeddedTemplates(), name); err != nil {
			t.Fatalf("expected %s to be embedded: %v", name, err)
		}
	}
}

func TestStaticFSStylesheetDefinesTokens(t *testing.T) {
	data, err := fs.ReadFile(StaticFS(), ui.Stylesheet)
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "--brand") {
		t.Fatalf("expected stylesheet to define the brand token")
	}
}
