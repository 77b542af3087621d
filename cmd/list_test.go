package cmd

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestListPrintsScriptFileNames(t *testing.T) {
	home := isolate(t)

	for _, name := range []string{"alpha", "beta"} {
		if _, err := executeCommandWithInput(rootCmd, "n\n", "new", name); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(home, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(rootCmd, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := strings.Fields(out)
	sort.Strings(got)
	if strings.Join(got, ",") != "alpha.sh,beta.sh" {
		t.Errorf("list output = %q", out)
	}
}

func TestListEmptyHome(t *testing.T) {
	isolate(t)
	out, err := executeCommand(rootCmd, "list")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}
