package errors

import "errors"

var (
	ErrInvalidInput     = errors.New("report draft input is invalid")
	ErrDraftNotFound    = errors.New("report draft not found")
	ErrInvalidPatient   = errors.New("patient information is invalid")
	ErrUnknownPanel     = errors.New("panel code is not in the catalog")
	ErrNoPanelsSelected = errors.New("at least one panel must be selected")
	ErrPanelNotSelected = errors.New("panel is not selected on the draft")
	ErrUnknownTest      = errors.New("test is not part of the panel template")
)
