package config

import "github.com/ayoisaiah/sessionlog/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend %q: must be 'json' or 'bolt'",
	}

	errUnknownBucketBy = &apperr.Error{
		Message: "unknown storage.bucket_by value %q: must be 'start' or 'save'",
	}

	errInvalidRefresh = &apperr.Error{
		Message: "refresh interval must be between %v and %v, got %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid --refresh duration",
	}
)
