package store

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Listen holds a dedicated connection LISTENing on channel and calls fn with
// each notification payload until ctx ends or the connection fails.
func (s *Store) Listen(ctx context.Context, channel string, fn func(ctx context.Context, payload string)) error {
	conn, err := s.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return err
	}
	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		fn(ctx, n.Payload)
	}
}

func (s *Store) Notify(ctx context.Context, channel, payload string) error {
	_, err := s.Pool.Exec(ctx, `SELECT pg_notify($1, $2)`, channel, payload)
	return err
}
