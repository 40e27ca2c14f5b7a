package leave

import "errors"

var (
	ErrLeaveNotFound = errors.New("leave entry not found")
	ErrLeaveExists   = errors.New("a leave entry already exists for this employee and date")
)
