package application

import "errors"

var (
	// ErrNoReceiveAddress is returned by ReceiveAddress when no unused
	// external address exists yet; callers must ensure one first
	ErrNoReceiveAddress = errors.New("no unused receive address available")
	// ErrServiceUnavailable is returned when the sync engine cannot accept
	// watch requests
	ErrServiceUnavailable = errors.New("sync engine is unavailable, try again later")
)
