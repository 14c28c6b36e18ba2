package tracker

import (
	"github.com/ayoisaiah/sessionlog/internal/apperr"
)

var (
	errReadStatus = &apperr.Error{
		Message: "unable to read the status file at %s",
	}

	errParseSessionCmd = &apperr.Error{
		Message: "unable to parse settings.cmd option",
	}
)
