package errors

import "fmt"

var (
	ErrEmptyMessage      = fmt.Errorf("message is empty")
	ErrFileTooLarge      = fmt.Errorf("attachment exceeds the size limit")
	ErrUnsupportedMedia  = fmt.Errorf("unsupported attachment type")
	ErrComplaintNotFound = fmt.Errorf("complaint not found")
	ErrInvalidStatus     = fmt.Errorf("invalid complaint status")
)
