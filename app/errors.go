package app

import (
	"github.com/ayoisaiah/sessionlog/internal/apperr"
)

var (
	errInvalidPeriod = &apperr.Error{
		Message: "period must be one of: %s",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to understand the date %q passed to --since",
	}

	errConflictingFilters = &apperr.Error{
		Message: "--since cannot be combined with --period",
	}
)
