package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cardframe/pkg/template"
)

func newTestCLI() *CLI {
	c := New(io.Discard, LogInfo)
	c.Config = DefaultConfig()
	return c
}

func TestRootCommandSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"resolve", "preview", "graph", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir = %s", dir)
	}
}

func TestCacheDirHomeFallback(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	home, _ := os.UserHomeDir()
	if dir != filepath.Join(home, ".cache", appName) {
		t.Errorf("cacheDir = %s", dir)
	}
}

func writeTestTemplate(t *testing.T) string {
	t.Helper()
	tmpl := template.Template{
		Name:      "front",
		Container: template.Container{Width: 800, Height: 600},
		Components: []template.ComponentSpec{
			{ID: 1, Width: template.Px(200), Height: template.Px(30), UseConstraints: true},
		},
		Constraints: []template.ConstraintSpec{
			{Source: 1, Relation: "center_horizontal", Target: template.ParentTarget()},
			{Source: 1, Relation: "top_to_top", Target: template.ParentTarget(), Margin: 20},
		},
	}
	path := filepath.Join(t.TempDir(), "card.json")
	if err := template.WriteFile(tmpl, path); err != nil {
		t.Fatalf("write template: %v", err)
	}
	return path
}

func TestResolveCommand(t *testing.T) {
	path := writeTestTemplate(t)
	out := filepath.Join(t.TempDir(), "layout.json")

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"resolve", path, "-o", out, "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var res template.Result
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	p, ok := res.Rect(1)
	if !ok || p.X != 300 || p.Y != 20 {
		t.Errorf("resolved rect = %+v, %v", p, ok)
	}
}

func TestResolveCommandRejectsNonJSON(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"resolve", "card.yaml", "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("non-json template path should be rejected")
	}
}

func TestGraphCommand(t *testing.T) {
	path := writeTestTemplate(t)
	out := filepath.Join(t.TempDir(), "graph.dot")

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"graph", path, "-o", out})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("graph: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 || string(data[:7]) != "digraph" {
		t.Errorf("unexpected DOT output: %.40s", data)
	}
}

func TestGraphCommandInvalidFormat(t *testing.T) {
	path := writeTestTemplate(t)

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"graph", path, "-f", "png"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("unsupported format should be rejected")
	}
}

func TestPreviewCommandSVGExport(t *testing.T) {
	path := writeTestTemplate(t)
	out := filepath.Join(t.TempDir(), "preview.svg")

	root := newTestCLI().RootCommand()
	root.SetArgs([]string{"preview", path, "--svg", out, "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("preview --svg: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty SVG output")
	}
}
