package importer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"asset-exchange/core/logger"
	"asset-exchange/feature/assets/models"
	"asset-exchange/feature/assets/normalize"
	"asset-exchange/feature/assets/reconcile"
	"asset-exchange/feature/assets/schema"
	"asset-exchange/feature/assets/store"
	"asset-exchange/feature/assets/tabular"
	"asset-exchange/feature/assets/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Per-row pipeline states. Stored, rejected, skipped, storeFailed and
// cancelled are terminal.
const (
	statePending     = "pending"
	stateAccepted    = "accepted"
	stateRejected    = "rejected"
	stateSkipped     = "skipped_duplicate"
	stateStored      = "stored"
	stateStoreFailed = "store_failed"
	stateCancelled   = "cancelled"
)

// row tracks one data row through the pipeline.
type row struct {
	line      int
	candidate *models.Asset
	state     string
	reason    string
	matches   []string
}

// Engine drives a batch of decoded rows through normalization, validation,
// duplicate reconciliation and store submission.
type Engine struct {
	store  store.RecordStore
	schema *schema.Schema
	rules  *validation.Engine
	log    *zap.Logger
	opts   Options
}

// New builds an engine over the default field schema.
func New(rs store.RecordStore, log *zap.Logger, opts Options) *Engine {
	s := schema.Default()
	return &Engine{
		store:  rs,
		schema: s,
		rules:  validation.New(s),
		log:    log,
		opts:   opts.withDefaults(),
	}
}

// Run imports one file. Parse failures and an unreadable snapshot abort the
// whole batch; everything past that point is captured per row, so one bad
// row never blocks the rest. Cancelling the context stops further
// submissions but never rolls back stored records; unsubmitted rows are
// reported as failed.
func (e *Engine) Run(ctx context.Context, r io.Reader) (*models.ImportReport, error) {
	log := logger.WithBatch(e.log, uuid.NewString())

	doc, err := tabular.Decode(r, tabular.Options{RequiredColumns: e.schema.RequiredHeaders()})
	if err != nil {
		return nil, err
	}
	for _, w := range doc.Warnings {
		log.Warn("row shape mismatch", zap.Int("line", w.Line), zap.String("detail", w.Message))
	}

	rows := e.prepare(doc)
	log.Info("batch decoded",
		zap.Int("rows", len(rows)),
		zap.Int("rejected", countState(rows, stateRejected)))

	if err := e.reconcileBatch(ctx, rows, log); err != nil {
		return nil, err
	}

	if e.opts.DryRun {
		log.Info("dry run, skipping submission")
		return buildReport(rows), nil
	}

	if e.opts.Snapshot == SnapshotPerRow && e.opts.OnDuplicate == DuplicateSkip {
		e.submitSequential(ctx, rows, log)
	} else {
		e.submitPool(ctx, rows, log)
	}

	rep := buildReport(rows)
	log.Info("batch finished",
		zap.Int("total", rep.TotalRows),
		zap.Int("succeeded", rep.Succeeded),
		zap.Int("failed", len(rep.Failed)),
		zap.Int("skipped_duplicates", len(rep.SkippedDuplicates)))
	return rep, nil
}

// prepare normalizes and validates every decoded row. Violations reject the
// row but are accumulated per row, not short-circuited, so the report can
// list every problem at once.
func (e *Engine) prepare(doc *tabular.Document) []*row {
	rows := make([]*row, len(doc.Rows))
	for i, raw := range doc.Rows {
		rec := normalize.Normalize(raw, e.schema)
		rw := &row{line: raw.Line, candidate: rec, state: statePending}
		if vs := e.rules.Validate(rec, raw.Line); len(vs) > 0 {
			rw.state = stateRejected
			rw.reason = rejectionReason(raw.Line, vs)
		} else {
			rw.state = stateAccepted
		}
		rows[i] = rw
	}
	return rows
}

// reconcileBatch flags accepted rows that match existing records, using one
// snapshot read at batch start. Dry runs always take this path so their
// report still surfaces duplicates; under SnapshotPerRow the live check
// happens at submission time instead.
func (e *Engine) reconcileBatch(ctx context.Context, rows []*row, log *zap.Logger) error {
	if e.opts.Snapshot != SnapshotOnce && !e.opts.DryRun {
		return nil
	}

	candidates, idx := acceptedCandidates(rows)
	if len(candidates) == 0 {
		return nil
	}

	existing, err := store.ListAll(ctx, e.store)
	if err != nil {
		return fmt.Errorf("failed to list existing records: %w", err)
	}

	matches, _ := reconcile.Reconcile(candidates, existing)
	for _, m := range matches {
		rw := rows[idx[m.CandidateIndex]]
		if e.opts.OnDuplicate == DuplicateImportAnyway {
			log.Info("duplicate imported anyway",
				zap.String("identifier", rw.candidate.Identifier()),
				zap.Strings("existing_ids", m.ExistingIDs))
			continue
		}
		rw.state = stateSkipped
		rw.matches = m.ExistingIDs
	}
	return nil
}

// submitPool stores accepted rows through a bounded worker pool. Each row is
// owned by exactly one worker and the rows slice is never reordered, so the
// report stays in file order.
func (e *Engine) submitPool(ctx context.Context, rows []*row, log *zap.Logger) {
	pending := make([]*row, 0, len(rows))
	for _, rw := range rows {
		if rw.state == stateAccepted {
			pending = append(pending, rw)
		}
	}
	if len(pending) == 0 {
		return
	}

	workers := e.opts.Workers
	if workers > len(pending) {
		workers = len(pending)
	}

	jobs := make(chan *row, len(pending))
	for _, rw := range pending {
		jobs <- rw
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for rw := range jobs {
				if ctx.Err() != nil {
					markCancelled(rw)
					continue
				}
				e.createOne(ctx, rw, log)
			}
		}()
	}

	wg.Wait()
}

// submitSequential stores accepted rows one at a time, re-reading existing
// records before each so duplicates created earlier in the same batch are
// caught too.
func (e *Engine) submitSequential(ctx context.Context, rows []*row, log *zap.Logger) {
	for _, rw := range rows {
		if rw.state != stateAccepted {
			continue
		}
		if ctx.Err() != nil {
			markCancelled(rw)
			continue
		}

		existing, err := store.ListAll(ctx, e.store)
		if err != nil {
			rw.state = stateStoreFailed
			rw.reason = fmt.Sprintf("line %d: %s", rw.line, store.Reason(err))
			continue
		}
		if ids := reconcile.NewIndex(existing).Match(rw.candidate); len(ids) > 0 {
			rw.state = stateSkipped
			rw.matches = ids
			continue
		}

		e.createOne(ctx, rw, log)
	}
}

func (e *Engine) createOne(ctx context.Context, rw *row, log *zap.Logger) {
	if err := e.store.Create(ctx, rw.candidate); err != nil {
		rw.state = stateStoreFailed
		rw.reason = fmt.Sprintf("line %d: %s", rw.line, store.Reason(err))
		log.Warn("record rejected by store",
			zap.String("identifier", rw.candidate.Identifier()),
			zap.Int("line", rw.line),
			zap.Error(err))
		return
	}
	rw.state = stateStored
}

func markCancelled(rw *row) {
	rw.state = stateCancelled
	rw.reason = fmt.Sprintf("line %d: import cancelled before submission", rw.line)
}

// buildReport collates row outcomes in file order. Accepted counts as
// succeeded only on dry runs, where submission never happens.
func buildReport(rows []*row) *models.ImportReport {
	rep := &models.ImportReport{TotalRows: len(rows)}
	for _, rw := range rows {
		switch rw.state {
		case stateStored, stateAccepted:
			rep.Succeeded++
		case stateRejected, stateStoreFailed, stateCancelled:
			rep.Failed = append(rep.Failed, models.FailedRow{
				Identifier: rw.candidate.Identifier(),
				Reason:     rw.reason,
			})
		case stateSkipped:
			rep.SkippedDuplicates = append(rep.SkippedDuplicates, models.SkippedDuplicate{
				Identifier:  rw.candidate.Identifier(),
				ExistingIDs: rw.matches,
			})
		}
	}
	return rep
}

func rejectionReason(line int, vs []models.Violation) string {
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("line %d: %s", line, strings.Join(msgs, "; "))
}

func acceptedCandidates(rows []*row) ([]*models.Asset, []int) {
	var candidates []*models.Asset
	var idx []int
	for i, rw := range rows {
		if rw.state == stateAccepted {
			candidates = append(candidates, rw.candidate)
			idx = append(idx, i)
		}
	}
	return candidates, idx
}

func countState(rows []*row, state string) int {
	n := 0
	for _, rw := range rows {
		if rw.state == state {
			n++
		}
	}
	return n
}
