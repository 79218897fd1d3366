package party

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gorilla/websocket"
	"github.com/milk9111/playerbox/overlay"
)

// pongWait is how long the feed waits for any frame from the bridge before
// treating it as dead. Pings go out at nine tenths of it.
var pongWait = 30 * time.Second

const writeWait = 10 * time.Second

var ErrFeedClosed = errors.New("party: feed closed")

// wireSnapshot is the JSON message a party bridge sends for each update.
type wireSnapshot struct {
	Viewer  *wireViewer  `json:"viewer"`
	Members []wireMember `json:"members"`
}

type wireViewer struct {
	ID       uint64     `json:"id"`
	Position [3]float64 `json:"position"`
}

type wireMember struct {
	ID       uint64     `json:"id"`
	Name     string     `json:"name"`
	Role     int        `json:"role"`
	Position [3]float64 `json:"position"`
}

func (w wireSnapshot) snapshot() Snapshot {
	snap := Snapshot{Members: make([]overlay.Entity, 0, len(w.Members))}
	if w.Viewer != nil {
		snap.Viewer = &overlay.Viewer{ID: w.Viewer.ID, Position: mgl64.Vec3(w.Viewer.Position)}
	}
	for _, m := range w.Members {
		snap.Members = append(snap.Members, overlay.Entity{
			ID:       m.ID,
			Name:     m.Name,
			Position: mgl64.Vec3(m.Position),
			RoleCode: m.Role,
		})
	}
	return snap
}

// Feed is a Source backed by a websocket stream of party snapshots. Until
// the first message arrives the snapshot has no viewer, so nothing is drawn.
type Feed struct {
	conn   *websocket.Conn
	logger *slog.Logger

	mu     sync.Mutex
	latest Snapshot
	err    error

	wait time.Duration
	done chan struct{}
	once sync.Once
}

func DialFeed(ctx context.Context, url string, logger *slog.Logger) (*Feed, error) {
	if logger == nil {
		logger = slog.Default()
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("party: dial feed %s: %w", url, err)
	}
	f := &Feed{
		conn:   conn,
		logger: logger.With("feed", url),
		wait:   pongWait,
		done:   make(chan struct{}),
	}
	go f.readPump()
	go f.pingPump()
	return f, nil
}

func (f *Feed) readPump() {
	defer close(f.done)

	f.conn.SetReadDeadline(time.Now().Add(f.wait))
	f.conn.SetPongHandler(func(string) error {
		return f.conn.SetReadDeadline(time.Now().Add(f.wait))
	})

	for {
		_, data, err := f.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				f.logger.Warn("feed closed unexpectedly", "error", err)
			}
			f.fail(err)
			return
		}
		f.conn.SetReadDeadline(time.Now().Add(f.wait))

		var msg wireSnapshot
		if err := json.Unmarshal(data, &msg); err != nil {
			f.logger.Debug("ignoring malformed snapshot", "error", err)
			continue
		}
		snap := msg.snapshot()
		f.mu.Lock()
		f.latest = snap
		f.mu.Unlock()
	}
}

// pingPump keeps a quiet bridge alive: each pong extends the read deadline.
func (f *Feed) pingPump() {
	ticker := time.NewTicker(f.wait * 9 / 10)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := f.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			if err != nil {
				f.logger.Debug("feed ping failed", "error", err)
				return
			}
		case <-f.done:
			return
		}
	}
}

func (f *Feed) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = fmt.Errorf("%w: %v", ErrFeedClosed, err)
	}
	// A dead feed means no session.
	f.latest = Snapshot{}
}

// Snapshot returns a copy of the most recent party state.
func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest.Clone()
}

// Err reports why the feed stopped, or nil while it is running.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Done is closed once the read loop exits.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

func (f *Feed) Close() error {
	var err error
	f.once.Do(func() {
		_ = f.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		err = f.conn.Close()
		<-f.done
	})
	return err
}
