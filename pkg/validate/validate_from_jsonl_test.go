package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Gunvolt24/rentshop_orders/internal/domain"
)

func TestValidateJSONLStream_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	line1 := oneLineJSONL(minimalValidRequestJSON(1, "A", "10"))
	line2 := oneLineJSONL(minimalValidRequestJSON(0, "B", "10")) // invalid outlet
	line3 := ""                                                  // пустая строка — ок
	line4 := oneLineJSONL(minimalValidRequestJSON(3, "C", "10"))

	input := strings.Join([]string{line1, line2, line3, line4}, "\n")
	var out bytes.Buffer

	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	// строка 2 — outlet_id=0; пустая строка 3 учитывается в нумерации
	if len(res.Issues) != 1 || res.Issues[0].Line != 2 || !strings.Contains(res.Issues[0].Err.Error(), "outlet_id") {
		t.Fatalf("unexpected issues: %+v", res.Issues)
	}
	if res.ByOutlet[1] != 1 || res.ByOutlet[3] != 1 {
		t.Fatalf("unexpected per-outlet counts: %v", res.ByOutlet)
	}

	outLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(outLines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(outLines))
	}
	var r1, r2 domain.CreateOrderRequest
	if err := json.Unmarshal([]byte(outLines[0]), &r1); err != nil {
		t.Fatalf("unmarshal line1: %v", err)
	}
	if err := json.Unmarshal([]byte(outLines[1]), &r2); err != nil {
		t.Fatalf("unmarshal line2: %v", err)
	}
	if r1.CustomerName != "A" || r2.CustomerName != "C" {
		t.Fatalf("unexpected output order: %q, %q", r1.CustomerName, r2.CustomerName)
	}
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	// > 64KB, но customer_name слишком длинный — строка невалидна, поток не падает
	bigName := strings.Repeat("X", 200_000)
	raw := oneLineJSONL(minimalValidRequestJSON(1, bigName, "1"))

	var out bytes.Buffer
	res, err := ValidateJSONLStream(ctx, validator, strings.NewReader(raw+"\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ValidLinesCount != 0 || res.InvalidLinesCount != 1 {
		t.Fatalf("unexpected counters: %+v", res)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output")
	}
}

// ------ функции-помощники ------

func oneLineJSONL(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}
