package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)

const (
	// CodeOK is the error_code for successful responses.
	CodeOK = 0
	// CodeInternal is the error_code for unclassified server errors.
	CodeInternal = 500
)
