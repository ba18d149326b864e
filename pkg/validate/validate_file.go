package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

// InputFormat — формат файла с заявками.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"  // одна заявка или массив заявок
	FormatJSONL InputFormat = "jsonl" // заявка на строку
)

// detectFormat — формат по расширению; всё, кроме .jsonl, читается как JSON.
func detectFormat(filePath string) InputFormat {
	if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверяет файл заявок на импорт и пишет валидные заявки в ow (JSONL).
// Для одиночной JSON-заявки невалидность — ошибка; для пакета — строка в Issues.
func ValidateFile(ctx context.Context, validator ports.OrderValidator, filePath string, format InputFormat, ow io.Writer) (BatchResult, error) {
	if format == FormatAuto {
		format = detectFormat(filePath)
	}
	if format != FormatJSON && format != FormatJSONL {
		return BatchResult{}, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return BatchResult{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return BatchResult{}, fmt.Errorf("read file: %w", err)
	}
	raw = bytes.TrimSpace(raw)

	b := newBatch(ctx, validator, ow)
	if !bytes.HasPrefix(raw, []byte("[")) {
		if err := b.add(1, raw); err != nil {
			return b.res, err
		}
		if len(b.res.Issues) > 0 {
			return b.res, b.res.Issues[0].Err
		}
		return b.res, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return b.res, fmt.Errorf("%w: invalid json array: %w", ErrInvalidOrder, err)
	}
	for i, item := range items {
		if err := b.add(i+1, item); err != nil {
			return b.res, err
		}
	}
	return b.res, nil
}
