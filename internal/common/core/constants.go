package core

// RetryMode selects how a fallible Gateway operation is retried.
type RetryMode int

const (
	// None performs no retries; the first failure is returned as-is.
	None RetryMode = iota
	// Backoff retries a fixed number of times with a constant interval,
	// matching the original tooling's fixed retry counts (export: 2
	// extra attempts, VDI destroy: 3 attempts with a 5s pause) rather
	// than an unbounded exponential schedule.
	Backoff
)

const (
	// DefaultMaxSubproc is the default number of pools processed in
	// parallel by the Run Orchestrator. Exposed as config so it is no
	// longer a fixed constant.
	DefaultMaxSubproc = 2

	// BackupSnapshotPrefix marks every snapshot created for backup
	// purposes so it can be discovered and pruned by label.
	BackupSnapshotPrefix = "__backup__"

	// TimestampLayout is used for every on-disk artefact name. It is
	// lexicographically sortable, so sorting filenames sorts them
	// chronologically too.
	TimestampLayout = "20060102T150405"
)
