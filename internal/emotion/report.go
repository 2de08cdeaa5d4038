package emotion

// Report is the success shape emitted on stdout and over HTTP. A
// classification either fully succeeds (every field populated) or fully
// fails (ErrorReport); there are no partial results.
type Report struct {
	Success    bool               `json:"success"`
	Emotion    string             `json:"emotion"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	Model      string             `json:"model"`
	TextLength int                `json:"text_length"`
	TokensUsed int                `json:"tokens_used"`
}

// ErrorReport is the failure shape. Every error, whatever its category,
// is converted to this at the process or HTTP boundary.
type ErrorReport struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorReport wraps err in the failure shape.
func NewErrorReport(err error) ErrorReport {
	return ErrorReport{Success: false, Error: err.Error()}
}
