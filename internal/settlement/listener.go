package settlement

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Notifier delivers game-completion payloads. store.Store implements it with
// LISTEN/NOTIFY.
type Notifier interface {
	Listen(ctx context.Context, channel string, fn func(ctx context.Context, payload string)) error
}

type Settler interface {
	SettleGame(ctx context.Context, gameID string) (*SettleResult, error)
}

// Listener settles each game id published on a channel.
type Listener struct {
	notifier Notifier
	settler  Settler
	channel  string
	backoff  time.Duration
}

func NewListener(n Notifier, s Settler, channel string, backoff time.Duration) *Listener {
	if backoff <= 0 {
		backoff = 5 * time.Second
	}
	return &Listener{notifier: n, settler: s, channel: channel, backoff: backoff}
}

// Run listens until ctx is done, reconnecting after backoff when the
// connection drops.
func (l *Listener) Run(ctx context.Context) {
	log.Info().Str("channel", l.channel).Msg("settlement listener started")
	for {
		err := l.notifier.Listen(ctx, l.channel, l.handle)
		if ctx.Err() != nil {
			log.Info().Str("channel", l.channel).Msg("settlement listener stopped")
			return
		}
		metricListenerReconnects.Add(1)
		log.Warn().Err(err).Dur("backoff", l.backoff).Msg("settlement listener disconnected")
		t := time.NewTimer(l.backoff)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

func (l *Listener) handle(ctx context.Context, payload string) {
	gameID := strings.TrimSpace(payload)
	if gameID == "" {
		return
	}
	metricListenerDelivered.Add(1)
	res, err := l.settler.SettleGame(ctx, gameID)
	if err != nil {
		log.Error().Err(err).Str("game_id", gameID).Msg("settle on notification failed")
		return
	}
	log.Debug().Str("game_id", gameID).Int("entries", len(res.Entries)).Msg("settled on notification")
}
