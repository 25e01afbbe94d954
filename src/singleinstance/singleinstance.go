// Package singleinstance prevents two capture runs from fighting over the
// displays at the same time. Ownership is a bound loopback TCP port: the
// first process to bind it is the running instance, everyone else exits.
package singleinstance

import (
	"fmt"
	"net"
)

// ErrAlreadyRunning is returned when another capture process owns the port.
var ErrAlreadyRunning = fmt.Errorf("another capture instance is already running")

// Lock holds single-instance ownership for the lifetime of the process.
type Lock struct {
	listener net.Listener
	port     int
}

// Acquire claims instance ownership. It binds the configured loopback port;
// a bind failure means a live instance holds it.
func Acquire() (*Lock, error) {
	port := lockPort()
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &Lock{listener: l, port: port}, nil
}

// Port returns the bound TCP port.
func (l *Lock) Port() int { return l.port }

// Release drops ownership. Safe to call on a nil lock.
func (l *Lock) Release() {
	if l == nil || l.listener == nil {
		return
	}
	_ = l.listener.Close()
	l.listener = nil
}
