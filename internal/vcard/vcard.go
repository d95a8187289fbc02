// Package vcard implements the vCard 3.0 codec used for QR payloads and
// .vcf file exchange. Encoding and decoding are pure functions over
// domain.Card; this is the one byte-exact external format the
// application speaks, so the property set and escaping rules here must
// not drift.
package vcard

import (
	"fmt"
	"strings"

	"github.com/sirakinb/drop-card/internal/core/domain"
)

// Social profile URL prefixes used to expand bare usernames.
const (
	linkedInBaseURL = "https://www.linkedin.com/in/"
	twitterBaseURL  = "https://twitter.com/"
)

// Encode produces a vCard 3.0 text block with CRLF line endings.
// Name is required; every other property is emitted only when present.
// Social fields are normalised to full URLs, bio maps to NOTE, and a
// photo is embedded only when it is already a base64 data URI (local
// file references are silently omitted).
func Encode(card *domain.Card) (string, error) {
	if card == nil || strings.TrimSpace(card.Name) == "" {
		return "", fmt.Errorf("%w: card name is required for vCard encoding", domain.ErrInvalidInput)
	}

	var b strings.Builder
	writeLine(&b, "BEGIN:VCARD")
	writeLine(&b, "VERSION:3.0")
	writeLine(&b, "FN:"+escape(card.Name))

	family, given := splitName(card.Name)
	writeLine(&b, "N:"+escape(family)+";"+escape(given)+";;;")

	if card.Company != "" {
		writeLine(&b, "ORG:"+escape(card.Company))
	}
	if card.Title != "" {
		writeLine(&b, "TITLE:"+escape(card.Title))
	}
	if card.Phone != "" {
		writeLine(&b, "TEL;TYPE=CELL:"+escape(card.Phone))
	}
	if card.Email != "" {
		writeLine(&b, "EMAIL:"+escape(card.Email))
	}
	if card.Website != "" {
		writeLine(&b, "URL:"+escape(card.Website))
	}
	if card.LinkedIn != "" {
		writeLine(&b, "URL;TYPE=LINKEDIN:"+escape(NormaliseLinkedIn(card.LinkedIn)))
	}
	if card.Twitter != "" {
		writeLine(&b, "URL;TYPE=TWITTER:"+escape(NormaliseTwitter(card.Twitter)))
	}
	if card.Bio != "" {
		writeLine(&b, "NOTE:"+escape(card.Bio))
	}
	if card.HasPhoto() {
		if payload := dataURIPayload(card.PhotoURI); payload != "" {
			writeLine(&b, "PHOTO;ENCODING=b;TYPE=JPEG:"+payload)
		}
	}

	writeLine(&b, "END:VCARD")
	return b.String(), nil
}

// Decode parses a vCard text block into a card.
// Folded continuation lines are unfolded, recognised properties are
// mapped onto card fields, and unrecognised properties are ignored.
// PHOTO is not decoded.
func Decode(text string) (*domain.Card, error) {
	if !strings.Contains(strings.ToUpper(text), "BEGIN:VCARD") {
		return nil, fmt.Errorf("%w: missing BEGIN:VCARD marker", domain.ErrInvalidFormat)
	}

	card := &domain.Card{}
	for _, line := range unfold(text) {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		prop := strings.ToUpper(name)

		switch {
		case prop == "FN":
			card.Name = unescape(value)
		case prop == "ORG":
			card.Company = unescape(value)
		case prop == "TITLE":
			card.Title = unescape(value)
		case strings.HasPrefix(prop, "TEL"):
			card.Phone = unescape(value)
		case strings.HasPrefix(prop, "EMAIL"):
			card.Email = unescape(value)
		case prop == "URL", prop == "URL;TYPE=WORK":
			card.Website = unescape(value)
		case prop == "URL;TYPE=LINKEDIN":
			card.LinkedIn = unescape(value)
		case prop == "URL;TYPE=TWITTER":
			card.Twitter = unescape(value)
		case prop == "NOTE":
			card.Bio = unescape(value)
		}
	}
	return card, nil
}

// NormaliseLinkedIn expands a bare username to a full profile URL.
// Values already starting with http pass through unchanged.
func NormaliseLinkedIn(value string) string {
	if strings.HasPrefix(value, "http") {
		return value
	}
	return linkedInBaseURL + value
}

// NormaliseTwitter expands a bare handle to a full profile URL,
// stripping a leading @. Values already starting with http pass through
// unchanged.
func NormaliseTwitter(value string) string {
	if strings.HasPrefix(value, "http") {
		return value
	}
	return twitterBaseURL + strings.TrimPrefix(value, "@")
}

// writeLine appends a property line with the CRLF ending the format
// requires.
func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// splitName derives family and given name components from a full name.
// The last whitespace-separated token is the family name; the remainder
// is the given name. A single token is all family name.
func splitName(name string) (family, given string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	if len(fields) == 1 {
		return fields[0], ""
	}
	return fields[len(fields)-1], strings.Join(fields[:len(fields)-1], " ")
}

// unfold splits text into logical lines, appending each folded
// continuation line (one starting with a space) to its predecessor with
// the leading space stripped.
func unfold(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.HasPrefix(line, " ") && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// escape applies the vCard value escaping rules: backslash, comma,
// semicolon, then newline, in that order.
func escape(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, ",", `\,`)
	value = strings.ReplaceAll(value, ";", `\;`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	return value
}

// unescape reverses the escaping rules. A single scan keeps escaped
// backslashes from being re-interpreted as the start of another escape
// sequence.
func unescape(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] != '\\' || i+1 == len(value) {
			b.WriteByte(value[i])
			continue
		}
		i++
		switch value[i] {
		case '\\':
			b.WriteByte('\\')
		case ',':
			b.WriteByte(',')
		case ';':
			b.WriteByte(';')
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte('\\')
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// dataURIPayload extracts the base64 payload from a data URI.
func dataURIPayload(uri string) string {
	_, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return ""
	}
	return payload
}
