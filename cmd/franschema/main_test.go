package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderjulianmartinez/franschema/internal/config"
	"github.com/alexanderjulianmartinez/franschema/internal/scan"
	"github.com/alexanderjulianmartinez/franschema/pkg/types"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cfgFile, outputFormat = "", "yaml"
	extractFlags = overrides{}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func saveFile(t *testing.T, dir string) string {
	t.Helper()
	var b bytes.Buffer
	b.WriteString("header")
	b.Write(scan.Start)
	b.WriteString(`<FranTkData fileName="Franchise-Schemas">`)
	b.Write(scan.End)
	path := filepath.Join(dir, "CAREER-CLI")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "schemas")
	path := saveFile(t, dir)

	stdout, _, err := execute(t, "extract", "--out", out, "--chunk-size", "3", "-o", "json", path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	var reports []types.FileReport
	if err := json.Unmarshal([]byte(stdout), &reports); err != nil {
		t.Fatalf("decode report: %v\n%s", err, stdout)
	}
	if len(reports) != 1 || len(reports[0].Blocks) != 1 {
		t.Fatalf("expected one report with one block, got %+v", reports)
	}
	if reports[0].Blocks[0].Offset != 6 {
		t.Fatalf("expected block at offset 6, got %d", reports[0].Blocks[0].Offset)
	}

	name := reports[0].Blocks[0].Name
	if !strings.HasPrefix(name, "CAREER-CLI-") || !strings.HasSuffix(name, "-schema-000.xml") {
		t.Fatalf("unexpected artifact name %s", name)
	}
	data, err := os.ReadFile(filepath.Join(out, name))
	if err != nil {
		t.Fatalf("expected extracted file: %v", err)
	}
	if !bytes.HasPrefix(data, scan.Start) || !bytes.HasSuffix(data, scan.End) {
		t.Fatalf("unexpected extracted data %q", data)
	}
}

func TestExtractCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute(t, "extract", "--out", dir, filepath.Join(dir, "CAREER-none"))
	if err == nil {
		t.Fatal("expected blocking error for a missing file")
	}
	if !strings.Contains(stdout, "status: ERROR") {
		t.Fatalf("expected yaml report with ERROR status, got:\n%s", stdout)
	}
}

func TestCheckCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "franschema.yaml")
	body := "sinks:\n  filesystem:\n    dir: ./out\n  kafka:\n    brokers: [localhost:9092]\n    topic: schemas\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	stdout, _, err := execute(t, "check", "--config", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(stdout, "Sinks: filesystem, kafka") {
		t.Fatalf("unexpected output:\n%s", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "franschema dev") {
		t.Fatalf("unexpected output %q", stdout)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig("", overrides{chunkSize: 10, outDir: "x", concurrency: 2, compression: "lz4"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source.ChunkSize != 10 || cfg.Concurrency != 2 || cfg.Generator.Compression != "lz4" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Sinks.Filesystem.Dir != "x" {
		t.Fatalf("expected out dir override, got %s", cfg.Sinks.Filesystem.Dir)
	}
	if _, err := loadConfig("", overrides{compression: "brotli"}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestWriteOutput(t *testing.T) {
	data := map[string]int{"blocks": 2}
	var b bytes.Buffer
	if err := writeOutput(&b, "yaml", data); err != nil || b.String() != "blocks: 2\n" {
		t.Fatalf("yaml: %q %v", b.String(), err)
	}
	b.Reset()
	if err := writeOutput(&b, "json", data); err != nil || !strings.Contains(b.String(), `"blocks": 2`) {
		t.Fatalf("json: %q %v", b.String(), err)
	}
	if err := writeOutput(&b, "xml", data); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	logger := newLogger(config.LogConfig{Level: "warn", Format: "json"}, &b)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	if strings.Contains(b.String(), "hidden") {
		t.Fatal("info should be filtered at warn level")
	}
	var rec map[string]any
	if err := json.Unmarshal(b.Bytes(), &rec); err != nil {
		t.Fatalf("expected one json record: %v", err)
	}
	if rec["msg"] != "shown" || rec["level"] != slog.LevelWarn.String() {
		t.Fatalf("unexpected record %v", rec)
	}
}
