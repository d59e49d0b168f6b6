// Package errors provides structured error types for better observability
// and programmatic error handling across the suite. The error codes double
// as the public API error contract returned in HTTP error responses.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "health probe failed",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "url":    healthURL,
//	        "window": window.String(),
//	    },
//	)
package errors
