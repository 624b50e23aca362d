package domain

// DocumentError records a single document's ingestion failure during a
// reindex run.
type DocumentError struct {
	// FileID is the external source file id that failed.
	FileID string `json:"documentId"`

	// Message describes the failure.
	Message string `json:"message"`
}

// ReindexReport summarises a reindex run. The run always completes and
// reports per-document outcomes; it never aborts because one document
// failed.
type ReindexReport struct {
	// ScannedCount is the number of files returned by the source listing.
	ScannedCount int `json:"scannedCount"`

	// UpdatedCount is the number of documents ingested or reingested.
	UpdatedCount int `json:"updatedCount"`

	// SkippedCount is the number of documents left untouched because
	// checksum and modified time both matched the stored values.
	SkippedCount int `json:"skippedCount"`

	// ErrorCount is the number of documents that failed.
	ErrorCount int `json:"errorCount"`

	// Errors lists the per-document failures.
	Errors []DocumentError `json:"errors"`
}

// AddError records a per-document failure.
func (r *ReindexReport) AddError(fileID, message string) {
	r.ErrorCount++
	r.Errors = append(r.Errors, DocumentError{FileID: fileID, Message: message})
}
