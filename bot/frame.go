package bot

import (
	"strings"
)

type EventKind int

const (
	EventChat EventKind = iota + 1
	EventPM
	EventChallstr
	EventUpdateUser
)

// Event is one protocol line the bot cares about.
type Event struct {
	Kind EventKind
	Room string
	User string
	Text string
	// Backlog is set for chat replayed by the server when a room is joined.
	Backlog bool
}

// ParseFrame splits a server frame into events. A frame is an optional ">room" line
// followed by "|type|..." lines; lines of other types are dropped.
func ParseFrame(frame string) []Event {
	lines := strings.Split(frame, "\n")
	room := ""
	if len(lines) > 0 && strings.HasPrefix(lines[0], ">") {
		room = strings.TrimSpace(lines[0][1:])
		lines = lines[1:]
	}

	backlog := false
	var events []Event
	for _, line := range lines {
		parts := strings.Split(strings.TrimRight(line, "\r"), "|")
		if len(parts) < 2 {
			continue
		}
		switch parts[1] {
		case "init":
			backlog = true
		case "c":
			if len(parts) >= 4 {
				events = append(events, Event{
					Kind:    EventChat,
					Room:    room,
					User:    trimRank(parts[2]),
					Text:    strings.Join(parts[3:], "|"),
					Backlog: backlog,
				})
			}
		case "c:":
			if len(parts) >= 5 {
				events = append(events, Event{
					Kind:    EventChat,
					Room:    room,
					User:    trimRank(parts[3]),
					Text:    strings.Join(parts[4:], "|"),
					Backlog: backlog,
				})
			}
		case "pm":
			if len(parts) >= 5 {
				events = append(events, Event{
					Kind: EventPM,
					User: trimRank(parts[2]),
					Text: strings.Join(parts[4:], "|"),
				})
			}
		case "challstr":
			if len(parts) >= 3 {
				events = append(events, Event{
					Kind: EventChallstr,
					Text: strings.Join(parts[2:], "|"),
				})
			}
		case "updateuser":
			if len(parts) >= 3 {
				events = append(events, Event{
					Kind: EventUpdateUser,
					User: trimRank(parts[2]),
				})
			}
		}
	}
	return events
}

// trimRank drops the auth symbol Showdown puts before a user name and any "@!" away
// marker after it.
func trimRank(name string) string {
	name = strings.TrimLeft(name, " +%@*#&~^☆")
	if i := strings.Index(name, "@!"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
