// Package ics renders a single-event iCalendar file for booking downloads.
package ics

import (
	"fmt"
	"strings"
	"time"
)

type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
	Location    string
	URL         string
	Organizer   Attendee
	Attendees   []Attendee
}

type Attendee struct {
	Name  string
	Email string
}

const timestampLayout = "20060102T150405Z"

// Render produces an RFC 5545 VCALENDAR with one VEVENT. Times are written in
// UTC so importing calendars re-localize them correctly.
func Render(ev Event, now time.Time) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//expertbook//booking//EN")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "BEGIN:VEVENT")
	writeLine(&b, "UID:"+escape(ev.UID))
	writeLine(&b, "DTSTAMP:"+now.UTC().Format(timestampLayout))
	writeLine(&b, "DTSTART:"+ev.Start.UTC().Format(timestampLayout))
	writeLine(&b, "DTEND:"+ev.End.UTC().Format(timestampLayout))
	writeLine(&b, "SUMMARY:"+escape(ev.Summary))
	if ev.Description != "" {
		writeLine(&b, "DESCRIPTION:"+escape(ev.Description))
	}
	if ev.Location != "" {
		writeLine(&b, "LOCATION:"+escape(ev.Location))
	}
	if ev.URL != "" {
		writeLine(&b, "URL:"+escape(ev.URL))
	}
	if ev.Organizer.Email != "" {
		writeLine(&b, fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", escape(ev.Organizer.Name), ev.Organizer.Email))
	}
	for _, at := range ev.Attendees {
		writeLine(&b, fmt.Sprintf("ATTENDEE;CN=%s;ROLE=REQ-PARTICIPANT;RSVP=TRUE:mailto:%s", escape(at.Name), at.Email))
	}
	writeLine(&b, "END:VEVENT")
	writeLine(&b, "END:VCALENDAR")

	return b.String()
}

// RFC 5545 requires CRLF line endings and 75-octet folding.
func writeLine(b *strings.Builder, line string) {
	const maxLen = 75
	for len(line) > maxLen {
		b.WriteString(line[:maxLen])
		b.WriteString("\r\n ")
		line = line[maxLen:]
	}
	b.WriteString(line)
	b.WriteString("\r\n")
}

func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
