package importer

// Config holds configuration for import runs.
type Config struct {
	// OnDuplicate is the duplicate disposition (skip, import_anyway).
	OnDuplicate string `mapstructure:"on_duplicate" default:"skip"`
	// Workers bounds concurrent store submissions.
	Workers int `mapstructure:"workers" default:"4"`
	// Snapshot is the existing-record snapshot policy (once, per_row).
	Snapshot string `mapstructure:"snapshot" default:"once"`
}

// Options converts configured defaults into run options. Flags may
// override individual fields afterwards.
func (c Config) Options() Options {
	return Options{
		OnDuplicate: c.OnDuplicate,
		Snapshot:    c.Snapshot,
		Workers:     c.Workers,
	}
}
