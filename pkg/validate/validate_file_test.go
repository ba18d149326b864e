package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(minimalValidRequestJSON(1, "A", "10")), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected non-empty output")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "list.jsonl")
	content := oneLineJSON(minimalValidRequestJSON(1, "A", "10")) + "\n" +
		oneLineJSON(minimalValidRequestJSON(2, "", "10")) + "\n" + // empty customer
		oneLineJSON(minimalValidRequestJSON(3, "C", "10")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
	if len(summary.Issues) != 1 || summary.Issues[0].Line != 2 || summary.Issues[0].OutletID != 2 {
		t.Fatalf("unexpected issues: %+v", summary.Issues)
	}
}

func TestValidateFile_JSONArray_ImportBatch(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "import.json")
	content := "[" +
		withOrderNumber(minimalValidRequestJSON(1, "A", "10"), "ORD-001-0100") + "," +
		withOrderNumber(minimalValidRequestJSON(1, "B", "10"), "ORD-001-0100") + "," + // повтор в пакете
		withOrderNumber(minimalValidRequestJSON(1, "C", "10"), "ORD-002-0001") + "," + // чужая точка
		minimalValidRequestJSON(2, "D", "10") + "," +
		minimalValidRequestJSON(2, "E", "10") +
		"]"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	res, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("batch must not fail on invalid items: %v", err)
	}
	if res.String() != "3 valid / 2 invalid" {
		t.Fatalf("unexpected summary: %s", res)
	}
	if got := res.Outlets(); len(got) != 2 || got[0] != 1 || got[1] != 2 || res.ByOutlet[1] != 1 || res.ByOutlet[2] != 2 {
		t.Fatalf("unexpected per-outlet counts: %v", res.ByOutlet)
	}
	if len(res.Issues) != 2 {
		t.Fatalf("unexpected issues: %+v", res.Issues)
	}
	dup, foreign := res.Issues[0], res.Issues[1]
	if dup.Line != 2 || !errors.Is(dup.Err, ErrInvalidOrder) || !strings.Contains(dup.Err.Error(), "уже есть в строке 1") {
		t.Fatalf("unexpected duplicate issue: %+v", dup)
	}
	if foreign.Line != 3 || foreign.OutletID != 1 || !strings.Contains(foreign.Err.Error(), "не относится к точке 1") {
		t.Fatalf("unexpected foreign-number issue: %+v", foreign)
	}
	if n := strings.Count(out.String(), "\n"); n != 3 {
		t.Fatalf("expected 3 output lines, got %d", n)
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	// неизвестное поле
	raw := `{"unknown":1,` + minimalValidRequestJSON(1, "A", "10")[1:]
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSON, &out)
	if err == nil {
		t.Fatalf("expected error for invalid json")
	}
	if summary.String() != "0 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if out.String() != "" {
		t.Fatalf("output must be empty for invalid single JSON")
	}
}

func TestValidateFile_ExplicitFormat_IgnoresExt(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "data.txt")
	content := oneLineJSON(minimalValidRequestJSON(1, "A", "10")) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatJSONL, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	var out bytes.Buffer
	_, err := ValidateFile(ctx, validator, "no-such-file.json", FormatAuto, &out)
	if err == nil {
		t.Fatalf("expected open error")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	_ = os.WriteFile(path, []byte(minimalValidRequestJSON(1, "A", "10")), 0o600)

	var out bytes.Buffer
	_, err := ValidateFile(ctx, validator, path, InputFormat("yaml"), &out)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got: %v", err)
	}
}

// ---- функции для тестирования ----

// withOrderNumber — добавляет заранее присвоенный номер в JSON заявки.
func withOrderNumber(raw, number string) string {
	return `{"order_number":"` + number + `",` + strings.TrimSpace(raw)[1:]
}

func oneLineJSON(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
