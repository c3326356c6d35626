package server

import (
	"pricecomparator/internal/alert"
	"pricecomparator/internal/cache"
	"pricecomparator/internal/query"
)

type Server struct {
	Query  query.Engine
	Alerts *alert.Tracker
	// Cache is optional, a nil Cache computes every response.
	Cache  *cache.Cache
	Logger logger
}

type logger interface {
	Debug(v ...any)
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
	Tracef(format string, v ...any)
}
