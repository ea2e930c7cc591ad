package errx

import (
	"errors"
	"fmt"
)

// Code classifies an AppError so callers can branch without string matching.
type Code string

const (
	CodeNotFound        Code = "NOT_FOUND"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeCacheCorrupt    Code = "CACHE_CORRUPT"
	CodeCacheIO         Code = "CACHE_IO"
	CodeRedis           Code = "REDIS"
	CodeExport          Code = "EXPORT"
	CodeInternal        Code = "INTERNAL"
)

const (
	// SystemErrorMessage is the fallback message when internal errors occur.
	SystemErrorMessage = "internal error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// CacheNotFoundMessage is used when no cached catalog exists yet.
	CacheNotFoundMessage = "inventory cache not found"
	// CacheCorruptMessage is used when a cached catalog cannot be decoded.
	CacheCorruptMessage = "inventory cache is corrupt"
	// CacheIOMessage is used when the cache cannot be read or written.
	CacheIOMessage = "inventory cache i/o failed"
	// ExportMessage is used when the JSON export cannot be written.
	ExportMessage = "inventory export failed"
)

// AppError wraps an underlying error with a code and safe message.
type AppError struct {
	Err     error
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, code Code, message string) *AppError {
	return &AppError{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

// CacheNotFound reports a missing cache entry.
func CacheNotFound(err error) *AppError {
	return New(err, CodeNotFound, CacheNotFoundMessage)
}

// CacheCorrupt reports a cache entry that exists but cannot be decoded.
func CacheCorrupt(err error) *AppError {
	return New(err, CodeCacheCorrupt, CacheCorruptMessage)
}

// CacheIO reports a cache read/write failure.
func CacheIO(err error) *AppError {
	return New(err, CodeCacheIO, CacheIOMessage)
}

// CodeOf returns the code of the first AppError in err's chain, or "" if none.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
