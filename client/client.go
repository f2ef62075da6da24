package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	DefaultServerURL = "wss://sim3.psim.us/showdown/websocket"

	// Showdown drops chat lines longer than this.
	maxMessageLength = 300
)

type ShowdownClient struct {
	Conn *websocket.Conn
	log  *zap.Logger

	writeMu sync.Mutex
}

func NewShowdownClient(ctx context.Context, serverURL string, log *zap.Logger) (*ShowdownClient, error) {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing server url: %w", err)
	}

	log.Info("connecting", zap.String("url", u.String()))
	c, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error connecting to websocket: %w", err)
	}

	log.Info("connected to showdown server")
	return &ShowdownClient{Conn: c, log: log}, nil
}

// ReadMessage blocks for the next server frame.
func (sc *ShowdownClient) ReadMessage() (string, error) {
	_, message, err := sc.Conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(message), nil
}

func (sc *ShowdownClient) Send(message string) error {
	sc.log.Debug("sending", zap.String("message", message))
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	return sc.Conn.WriteMessage(websocket.TextMessage, []byte(message))
}

func (sc *ShowdownClient) JoinRoom(roomID string) error {
	return sc.Send(fmt.Sprintf("|/join %s", roomID))
}

// Say posts text to a room. An empty room sends to the global room.
func (sc *ShowdownClient) Say(roomID, text string) error {
	return sc.Send(roomID + "|" + truncate(oneLine(text)))
}

func (sc *ShowdownClient) PM(user, text string) error {
	return sc.Send(fmt.Sprintf("|/pm %s, %s", user, truncate(oneLine(text))))
}

// Rename finishes a login with the assertion returned by Login.
func (sc *ShowdownClient) Rename(user, assertion string) error {
	return sc.Send(fmt.Sprintf("|/trn %s,0,%s", user, assertion))
}

func (sc *ShowdownClient) Close() error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()
	_ = sc.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return sc.Conn.Close()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxMessageLength {
		return s
	}
	return string(r[:maxMessageLength-3]) + "..."
}
