package nats

import "time"

const (
	StreamName    = "BIZMANAGER_EVENTS"
	SubjectPrefix = "bizmanager.events"
	SubjectAll    = SubjectPrefix + ".>"

	streamMaxAge = 7 * 24 * time.Hour
)

// Subject builds bizmanager.events.<entity>.<action> from a "<entity>.<action>" type
func Subject(eventType string) string {
	return SubjectPrefix + "." + eventType
}
