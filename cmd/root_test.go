package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/klytics/apsheet/internal/formats/xlsx"
)

const sampleExport = `{
	"accesspoints": [
		{"model": "c9130", "floorplan_name": "1st Floor", "coordinate_xyz": {"x": 12.34, "y": 5.6}},
		{"model": "C9130AXI", "floorplan_name": "2nd Floor"}
	]
}`

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	viper.Reset()
	t.Cleanup(func() { viper.Reset() })
	return dir
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCommand()
	root.SetArgs(args)
	return root.Execute()
}

func TestGenerateEndToEnd(t *testing.T) {
	dir := setup(t)
	in := filepath.Join(dir, "export.json")
	out := filepath.Join(dir, "placements.xlsx")
	if err := os.WriteFile(in, []byte(sampleExport), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "generate", in, out); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	wb, err := xlsx.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(wb.Sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != "Floor 1" || wb.Sheets[1].Name != "Floor 2" {
		t.Errorf("sheets = %q, %q", wb.Sheets[0].Name, wb.Sheets[1].Name)
	}
	if wb.Sheets[0].Rows[0][0] != "AP-001" || wb.Sheets[1].Rows[0][0] != "AP-002" {
		t.Errorf("placements = %q, %q", wb.Sheets[0].Rows[0][0], wb.Sheets[1].Rows[0][0])
	}
}

func TestGenerateAppendsExtension(t *testing.T) {
	dir := setup(t)
	in := filepath.Join(dir, "export.json")
	if err := os.WriteFile(in, []byte(sampleExport), 0644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "placements")
	if err := execute(t, "generate", in, out); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(out + ".xlsx"); err != nil {
		t.Errorf("expected %s.xlsx to exist: %v", out, err)
	}
}

func TestGenerateEmptyExport(t *testing.T) {
	dir := setup(t)
	in := filepath.Join(dir, "export.json")
	out := filepath.Join(dir, "placements.xlsx")
	if err := os.WriteFile(in, []byte(`{"accesspoints": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "generate", in, out); err == nil {
		t.Fatal("expected error for empty export")
	}
	if _, err := os.Stat(out); err == nil {
		t.Error("no workbook should be written for an empty export")
	}
}

func TestGenerateWrongArgCount(t *testing.T) {
	setup(t)
	if err := execute(t, "generate", "only-one.json"); err == nil {
		t.Fatal("expected arg count error")
	}
}

func TestValidateReportsFloors(t *testing.T) {
	dir := setup(t)
	in := filepath.Join(dir, "export.json")
	if err := os.WriteFile(in, []byte(sampleExport), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "validate", in); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestValidateEmptyExport(t *testing.T) {
	dir := setup(t)
	in := filepath.Join(dir, "export.json")
	if err := os.WriteFile(in, []byte(`{}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "validate", in); err == nil {
		t.Fatal("expected error for export without access points")
	}
}

func TestInspectGeneratedWorkbook(t *testing.T) {
	dir := setup(t)
	in := filepath.Join(dir, "export.json")
	out := filepath.Join(dir, "placements.xlsx")
	if err := os.WriteFile(in, []byte(sampleExport), 0644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "generate", in, out); err != nil {
		t.Fatal(err)
	}

	if err := execute(t, "inspect", out); err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if err := execute(t, "inspect", out, "--sheet", "Floor 2"); err != nil {
		t.Fatalf("inspect --sheet failed: %v", err)
	}
	if err := execute(t, "inspect", out, "--sheet", "Basement"); err == nil {
		t.Fatal("expected error for unknown sheet")
	}
}

func TestInspectFromStdin(t *testing.T) {
	dir := setup(t)
	in := filepath.Join(dir, "export.json")
	out := filepath.Join(dir, "placements.xlsx")
	if err := os.WriteFile(in, []byte(sampleExport), 0644); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "generate", in, out); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	oldStdin := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = oldStdin })

	if err := execute(t, "inspect", "-"); err != nil {
		t.Fatalf("inspect from stdin failed: %v", err)
	}
}

func TestInspectFromEmptyStdin(t *testing.T) {
	dir := setup(t)
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(empty)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	oldStdin := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = oldStdin })

	if err := execute(t, "inspect", "-"); err == nil {
		t.Fatal("expected error for empty stdin")
	}
}

func TestUnknownCommand(t *testing.T) {
	setup(t)
	if err := execute(t, "frobnicate"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}
