package server

import "github.com/nikmy/intervald/internal/intervals"

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=server

type index interface {
	Insert(begin, end uint64, label string) error
	Chop(begin, end uint64, filters ...intervals.Filter)
	Point(p uint64) []string
	Overlap(begin, end uint64) []string
}

type recorder interface {
	Command(verb, result string)
	ConnOpened()
	ConnClosed()
}
