package api

import "context"

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type statsProvider interface {
	Len() int
	Boundaries() int
}
