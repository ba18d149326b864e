package validate

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestValidateRequestFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	req, err := ValidateRequestFromJSON(ctx, validator, []byte(minimalValidRequestJSON(3, "Anna", "990.00")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.OutletID != 3 || req.CustomerName != "Anna" || req.TotalAmount.String() != "990" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestValidateRequestFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := `{"unknown":"x",` + minimalValidRequestJSON(1, "Anna", "1")[1:]
	_, err := ValidateRequestFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidateRequestFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	raw := minimalValidRequestJSON(1, "Anna", "1") + "{}"
	_, err := ValidateRequestFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateRequestFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewOrderValidator()

	// Не валиден: пустое имя клиента
	_, err := ValidateRequestFromJSON(ctx, validator, []byte(minimalValidRequestJSON(1, "", "1")))
	if err == nil {
		t.Fatalf("expected domain validation error, got nil")
	}
}

func TestDecodeCreateOrderRequest_NumberOptions(t *testing.T) {
	raw := `{"outlet_id":2,"type":"sale","customer_name":"B","total_amount":"5",
		"number":{"format":"random","random_length":8,"numeric_only":true}}`
	req, err := DecodeCreateOrderRequest([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Number == nil || req.Number.Format != "random" || req.Number.RandomLength != 8 ||
		req.Number.NumericOnly == nil || !*req.Number.NumericOnly {
		t.Fatalf("unexpected options: %+v", req.Number)
	}
}

// ---- helpers ----

func minimalValidRequestJSON(outletID int, customer, amount string) string {
	return `{
  "outlet_id": ` + strconv.Itoa(outletID) + `,
  "type": "rent",
  "customer_name": "` + customer + `",
  "total_amount": "` + amount + `"
}`
}

func TestDecodeCreateOrderRequest_BrokenJSONIsInvalidOrder(t *testing.T) {
	for _, raw := range []string{"{", `{"outlet_id":"x"}`, `{"outlet_id":1} []`} {
		if _, err := DecodeCreateOrderRequest([]byte(raw)); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("%q: want ErrInvalidOrder, got %v", raw, err)
		}
	}
}
