// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeFormat,
//	    "non-numeric counter",
//	    parseErr,
//	    map[string]any{
//	        "device": "sda",
//	        "field":  "reads_completed",
//	    },
//	)
//
// Callers branch on the code rather than on message text:
//
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // snapshot file is missing
//	}
package errors
