package importer

// Dispositions for candidates that match existing records.
const (
	DuplicateSkip         = "skip"
	DuplicateImportAnyway = "import_anyway"
)

// Policies for when the existing-record snapshot is taken.
const (
	SnapshotOnce   = "once"
	SnapshotPerRow = "per_row"
)

// defaultWorkers bounds concurrent store submissions. Four is plenty for
// CSV-sized batches without hammering the backend.
const defaultWorkers = 4

// Options control how a batch is reconciled and submitted.
type Options struct {
	// OnDuplicate decides what happens to candidates matching existing
	// records: DuplicateSkip drops them, DuplicateImportAnyway stores them.
	OnDuplicate string
	// Snapshot picks when existing records are read for duplicate checks:
	// SnapshotOnce reads them at batch start, SnapshotPerRow re-reads them
	// before every submission so duplicates created earlier in the same
	// batch are caught. Per-row checking takes effect under DuplicateSkip
	// and disables the worker pool since each check depends on the rows
	// stored before it.
	Snapshot string
	// Workers bounds concurrent store submissions under SnapshotOnce.
	Workers int
	// DryRun validates and reconciles the batch without storing anything.
	// Accepted rows count as succeeded in the report.
	DryRun bool
}

// IsValidOnDuplicate checks if the configured duplicate disposition is valid.
func (o Options) IsValidOnDuplicate() bool {
	switch o.OnDuplicate {
	case DuplicateSkip, DuplicateImportAnyway:
		return true
	default:
		return false
	}
}

// IsValidSnapshot checks if the configured snapshot policy is valid.
func (o Options) IsValidSnapshot() bool {
	switch o.Snapshot {
	case SnapshotOnce, SnapshotPerRow:
		return true
	default:
		return false
	}
}

func (o Options) withDefaults() Options {
	if o.OnDuplicate == "" {
		o.OnDuplicate = DuplicateSkip
	}
	if o.Snapshot == "" {
		o.Snapshot = SnapshotOnce
	}
	if o.Workers <= 0 {
		o.Workers = defaultWorkers
	}
	return o
}
