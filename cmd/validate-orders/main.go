package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/rentshop_orders/internal/numbering"
	"github.com/Gunvolt24/rentshop_orders/pkg/validate"
)

// CLI для проверки заявок на создание заказов и отдельных номеров.
func main() {
	inputPath := flag.String("in", "", "path to input (.json object/array or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	number := flag.String("number", "", "validate a single order number instead of request payloads")
	flag.Parse()

	if *number != "" {
		os.Exit(checkNumber(*number))
	}

	ctx := context.Background()
	validator := validate.NewOrderValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	res, err := validate.ValidateFile(ctx, validator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, res)
		os.Exit(1)
	}
	for _, issue := range res.Issues {
		fmt.Fprintf(os.Stderr, "line %d outlet=%d: %v\n", issue.Line, issue.OutletID, issue.Err)
	}
	for _, id := range res.Outlets() {
		fmt.Fprintf(os.Stderr, "outlet %d: %d valid\n", id, res.ByOutlet[id])
	}
	fmt.Fprintf(os.Stderr, "validation done (%s)\n", res)
	if res.InvalidLinesCount > 0 {
		os.Exit(2)
	}
}

func checkNumber(number string) int {
	res := numbering.ValidateOrderNumberFormat(number)
	if !res.Valid {
		fmt.Fprintf(os.Stderr, "invalid order number %q: %s\n", number, res.Suggestion)
		return 1
	}
	fmt.Fprintf(os.Stdout, "%s: valid, format=%s", number, res.Format)
	if res.Sequence > 0 {
		fmt.Fprintf(os.Stdout, ", sequence=%d", res.Sequence)
	}
	fmt.Fprintln(os.Stdout)
	return 0
}
