package logging

// Field name constants for structured trace output.
const (
	FieldRecognizer = "recognizer"
	FieldTokenType  = "token_type"
	FieldLen        = "len"
	FieldRemaining  = "remaining"
)
