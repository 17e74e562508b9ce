package systems

import "errors"

// ErrPermissionDenied is raised when the local player triggers an
// action on a token they do not control. The target is skipped; other
// targets in the same call proceed.
var ErrPermissionDenied = errors.New("you do not control this token")
