package errors

import "errors"

var (
	ErrPanelNotFound = errors.New("panel template not found")
	ErrUnknownTest   = errors.New("test is not part of the panel template")
	ErrInvalidInput  = errors.New("panel catalog input is invalid")
)
