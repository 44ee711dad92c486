package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/creditscore-pro/grcdump/config"
	"github.com/creditscore-pro/grcdump/output"
)

// sampleTuple builds one full 62-field tuple for the target table.
func sampleTuple(coop, ano, mes int) string {
	values := []string{"3", "1",
		fmt.Sprintf("%d", coop), fmt.Sprintf("%d", ano), fmt.Sprintf("%d", mes)}
	for i := 0; i < 50; i++ { // 25 notas + 25 alertas
		values = append(values, fmt.Sprintf("%d", i%10))
	}
	values = append(values, "42", "1", "NULL",
		"'carteira concentrada, acompanhar'", "''", "0", "1")
	return "(" + strings.Join(values, ",") + ")"
}

// createTestDumpFile writes a dump with rows for two cooperatives plus one
// malformed row and one statement for another table.
func createTestDumpFile(t *testing.T, dir string) string {
	t.Helper()
	body := "-- MySQL dump\n" +
		"INSERT INTO `usuario` VALUES (1,'admin');\n" +
		"INSERT INTO `alerta_cooperativa_sicoob` VALUES " +
		sampleTuple(101, 2023, 1) + "," + sampleTuple(101, 2023, 2) + ",(1,2,3);\n" +
		"INSERT INTO `alerta_cooperativa_sicoob` VALUES " +
		sampleTuple(205, 2024, 1) + ";\n"

	path := filepath.Join(dir, "grc-web.sql")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write test dump: %v", err)
	}
	return path
}

func testConfig(input, out string) *config.Config {
	return &config.Config{
		Input:   config.InputConfig{Path: input},
		Output:  config.OutputConfig{Dir: out, BalancesDir: "balances", Parquet: true},
		Logging: config.LoggingConfig{Level: "error", Format: "console"},
	}
}

func TestRun_EndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	dumpPath := createTestDumpFile(t, tmpDir)
	outDir := filepath.Join(tmpDir, "out")

	if err := run(testConfig(dumpPath, outDir), zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	// Consolidated JSON: 3 valid rows, the malformed one dropped.
	data, err := os.ReadFile(filepath.Join(outDir, "alerta_cooperativa_sicoob.json"))
	if err != nil {
		t.Fatalf("missing consolidated JSON: %v", err)
	}
	var export output.Export
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("invalid consolidated JSON: %v", err)
	}
	if export.Metadata.TotalRecords != 3 {
		t.Errorf("total_records = %d, want 3", export.Metadata.TotalRecords)
	}
	if export.Metadata.TotalCooperativas != 2 {
		t.Errorf("total_cooperativas = %d, want 2", export.Metadata.TotalCooperativas)
	}
	if export.Metadata.Fonte != "grc-web.sql" {
		t.Errorf("fonte = %q, want \"grc-web.sql\"", export.Metadata.Fonte)
	}

	for _, name := range []string{
		"alerta_cooperativa_sicoob.csv",
		"alerta_cooperativa_sicoob.parquet",
		filepath.Join("balances", "cooperativa_101.json"),
		filepath.Join("balances", "cooperativa_205.json"),
	} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
		}
	}
}

func TestRun_MissingInput(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := testConfig(filepath.Join(tmpDir, "does-not-exist.sql"), tmpDir)

	err := run(cfg, zap.NewNop())
	if err == nil {
		t.Fatal("run() should fail for a missing dump file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRun_NoRecordsWritesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	dumpPath := filepath.Join(tmpDir, "empty.sql")
	if err := os.WriteFile(dumpPath, []byte("INSERT INTO `usuario` VALUES (1,'x');\n"), 0o644); err != nil {
		t.Fatalf("failed to write dump: %v", err)
	}
	outDir := filepath.Join(tmpDir, "out")

	if err := run(testConfig(dumpPath, outDir), zap.NewNop()); err != nil {
		t.Fatalf("run() error = %v, want warning only", err)
	}

	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("output directory created despite zero records")
	}
}
