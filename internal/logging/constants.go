package logging

// Standardized field names for structured logging.
// Using constants keeps log output consistent across pipeline stages,
// making it easier to filter by account, category, or stage.
const (
	FieldStage         = "stage"
	FieldAccount       = "account"
	FieldCategory      = "category"
	FieldConfidence    = "confidence"
	FieldStatementType = "statement_type"
	FieldRowIndex      = "row_index"
	FieldRowCount      = "row_count"
	FieldBatchID       = "batch_id"
	FieldTenant        = "company_id"
	FieldMethod        = "method"
	FieldReason        = "reason"
	FieldCount         = "count"
	FieldFile          = "file_path"
	FieldModel         = "model"
)
