// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Errors produced by WrapError support errors.Is() and errors.As() through
// the standard chain.
package apperrors
