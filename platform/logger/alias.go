package logger

import "go.uber.org/zap"

type Field = zap.Field

// Field constructors used across the storefront.
var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int64    = zap.Int64
	Duration = zap.Duration
	Bool     = zap.Bool
	ErrorF   = zap.Error
)
