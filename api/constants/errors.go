package constants

// ============================================================================
// UPLOAD ERRORS — fatal for the whole file, no rows processed
// ============================================================================

const (
	ErrUnsupportedFormat = "Unsupported file format: %s"
	ErrMissingColumns    = "Missing required columns: %s"
	ErrMalformedFile     = "Invalid or empty file: %s"
	ErrNoFilesUploaded   = "No files uploaded"
)

// ============================================================================
// PERSISTENCE ERRORS
// ============================================================================

const (
	ErrPersistenceFailure = "Failed to persist batch, transaction rolled back"
)

// ============================================================================
// REPORTING ERRORS
// ============================================================================

const (
	ErrInvalidDateRange = "fecha_inicio and fecha_fin must be valid YYYY-MM-DD dates with fecha_inicio <= fecha_fin"
)
