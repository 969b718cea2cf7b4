package wizard

import "errors"

// ErrNoApplicationService indicates that no application service was provided.
var ErrNoApplicationService = errors.New("application service is required")

// ErrNoSession indicates that the wizard has no session to act on.
var ErrNoSession = errors.New("no application in progress")
