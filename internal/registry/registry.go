// Package registry keeps track of live notification connections per user.
//
// The registry is the delivery fan-out point of the notification core: a
// domain event handler calls SendToUser and every live connection of that user
// receives the message. Delivery is best-effort; a connection that fails to
// accept a message is treated as disconnected and dropped.
package registry

import (
	"fmt"
	"sync"

	"github.com/wb-go/wbf/zlog"
)

// Conn is a live bidirectional connection bound to one authenticated user.
//
// Implementations must be comparable (pointer types) and safe for concurrent Send calls.
type Conn interface {
	Send(message any) error
	Close() error
}

// DeliveryError describes a failed push to a single connection.
type DeliveryError struct {
	UserID int64
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to user %d: %v", e.UserID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Registry maps user ids to their set of live connections.
type Registry struct {
	mu    sync.RWMutex
	conns map[int64]map[Conn]struct{}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		conns: make(map[int64]map[Conn]struct{}),
	}
}

// Register adds conn to the user's connection set, creating the set if absent.
func (r *Registry) Register(userID int64, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[Conn]struct{})
		r.conns[userID] = set
	}
	set[conn] = struct{}{}

	zlog.Logger.Info().Int64("user_id", userID).Int("connections", len(set)).Msg("connection registered")
}

// Unregister removes conn from the user's set and drops the user entry once
// the set is empty. Unknown connections are ignored.
func (r *Registry) Unregister(userID int64, conn Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unregisterLocked(userID, conn)
}

func (r *Registry) unregisterLocked(userID int64, conn Conn) bool {
	set, ok := r.conns[userID]
	if !ok {
		return false
	}

	if _, ok := set[conn]; !ok {
		return false
	}

	delete(set, conn)
	if len(set) == 0 {
		delete(r.conns, userID)
	}

	zlog.Logger.Info().Int64("user_id", userID).Int("connections", len(set)).Msg("connection unregistered")
	return true
}

// SendToUser pushes message to every live connection of the user and returns
// the number of connections that accepted it.
//
// The connection set is snapshotted under the lock and the writes happen
// without holding it. Connections whose send fails are unregistered and closed
// after the iteration. A user without connections is a no-op.
func (r *Registry) SendToUser(userID int64, message any) int {
	r.mu.RLock()
	set := r.conns[userID]
	snapshot := make([]Conn, 0, len(set))
	for conn := range set {
		snapshot = append(snapshot, conn)
	}
	r.mu.RUnlock()

	if len(snapshot) == 0 {
		return 0
	}

	var (
		delivered int
		failed    []Conn
	)
	for _, conn := range snapshot {
		if err := conn.Send(message); err != nil {
			derr := &DeliveryError{UserID: userID, Err: err}
			zlog.Logger.Warn().Err(derr).Int64("user_id", userID).Msg("failed to push message, dropping connection")
			failed = append(failed, conn)
			continue
		}
		delivered++
	}

	if len(failed) > 0 {
		r.mu.Lock()
		var removed []Conn
		for _, conn := range failed {
			if r.unregisterLocked(userID, conn) {
				removed = append(removed, conn)
			}
		}
		r.mu.Unlock()

		for _, conn := range removed {
			_ = conn.Close()
		}
	}

	return delivered
}

// IsOnline reports whether the user has at least one live connection.
func (r *Registry) IsOnline(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns[userID]) > 0
}

// OnlineUserCount returns the number of users with at least one live connection.
func (r *Registry) OnlineUserCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.conns)
}

// ConnectionCount returns the total number of live connections across all users.
func (r *Registry) ConnectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, set := range r.conns {
		total += len(set)
	}

	return total
}
