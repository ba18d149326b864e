package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/Gunvolt24/rentshop_orders/internal/ports"
)

// LineIssue — отклонённая заявка пакета: номер строки (или элемента массива), точка и причина.
// OutletID = 0, если заявку не удалось разобрать.
type LineIssue struct {
	Line     int
	OutletID int64
	Err      error // всегда оборачивает ErrInvalidOrder
}

// BatchResult — итог проверки пакета заявок на импорт.
type BatchResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	Issues            []LineIssue
	ByOutlet          map[int64]int // валидные заявки по точкам
}

// String — "N valid / M invalid".
func (r BatchResult) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.ValidLinesCount, r.InvalidLinesCount)
}

// Outlets — точки с валидными заявками по возрастанию id.
func (r BatchResult) Outlets() []int64 {
	ids := make([]int64, 0, len(r.ByOutlet))
	for id := range r.ByOutlet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// batch — накопитель проверки: считает строки и ловит повтор заранее присвоенного номера внутри пакета.
type batch struct {
	ctx       context.Context
	validator ports.OrderValidator
	out       io.Writer
	res       BatchResult
	seen      map[string]int // order_number -> строка первого появления
}

func newBatch(ctx context.Context, validator ports.OrderValidator, out io.Writer) *batch {
	return &batch{
		ctx: ctx, validator: validator, out: out,
		res:  BatchResult{ByOutlet: map[int64]int{}},
		seen: map[string]int{},
	}
}

func (b *batch) reject(line int, outletID int64, err error) {
	b.res.InvalidLinesCount++
	b.res.Issues = append(b.res.Issues, LineIssue{Line: line, OutletID: outletID, Err: err})
}

// add — проверяет одну заявку; валидную пишет в out каноническим JSON одной строкой.
func (b *batch) add(line int, raw []byte) error {
	req, err := ValidateRequestFromJSON(b.ctx, b.validator, raw)
	if err != nil {
		var outletID int64
		if parsed, decErr := DecodeCreateOrderRequest(raw); decErr == nil {
			outletID = parsed.OutletID
		}
		b.reject(line, outletID, err)
		return nil
	}
	if req.OrderNumber != "" {
		if first, dup := b.seen[req.OrderNumber]; dup {
			b.reject(line, req.OutletID, fmt.Errorf("%w: order_number %q уже есть в строке %d",
				ErrInvalidOrder, req.OrderNumber, first))
			return nil
		}
		b.seen[req.OrderNumber] = line
	}

	canonical, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal line %d: %w", line, err)
	}
	if _, err := b.out.Write(append(canonical, '\n')); err != nil {
		return fmt.Errorf("write valid line %d: %w", line, err)
	}
	b.res.ValidLinesCount++
	b.res.ByOutlet[req.OutletID]++
	return nil
}

// ValidateJSONLStream — проверяет пакет заявок в JSONL: одна заявка на строку, пустые строки пропускаются.
// Невалидные строки не прерывают поток, а попадают в Issues.
func ValidateJSONLStream(ctx context.Context, validator ports.OrderValidator, ir io.Reader, ow io.Writer) (BatchResult, error) {
	b := newBatch(ctx, validator, ow)

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if err := b.add(line, raw); err != nil {
			return b.res, err
		}
	}
	if err := scanner.Err(); err != nil {
		return b.res, fmt.Errorf("scan line %d: %w", line+1, err)
	}
	return b.res, nil
}
