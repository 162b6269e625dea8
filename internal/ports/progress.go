package ports

// ProgressFunc is called once per file during batch execution so a
// responsive caller can render status without polling. index is 1-based.
type ProgressFunc func(index, total int, filename string)
