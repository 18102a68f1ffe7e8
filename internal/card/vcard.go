package card

import (
	"errors"
	"fmt"
	"strings"
)

// EncodeVCard serializes rec as the vCard 3.0 payload embedded in the
// scannable code. The line order is fixed; optional ORG and TITLE lines are
// omitted entirely when empty, so a parser recovers exactly the fields that
// were set.
func EncodeVCard(rec ContactRecord) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		fmt.Sprintf("N:%s;%s;;;", rec.Last, rec.First),
		"FN:" + rec.FullName(),
	}
	if rec.Org != "" {
		lines = append(lines, "ORG:"+rec.Org)
	}
	if rec.Title != "" {
		lines = append(lines, "TITLE:"+rec.Title)
	}
	lines = append(lines,
		"TEL;TYPE=CELL:"+rec.Phone,
		"EMAIL:"+rec.Email,
		"END:VCARD",
	)
	return strings.Join(lines, "\n")
}

// ParseVCard recovers contact fields from a payload produced by EncodeVCard.
// Absent optional lines leave the corresponding field empty.
func ParseVCard(payload string) (ContactRecord, error) {
	var rec ContactRecord
	var begin, end bool
	for _, line := range strings.Split(payload, "\n") {
		switch {
		case line == "BEGIN:VCARD":
			begin = true
		case line == "END:VCARD":
			end = true
		case strings.HasPrefix(line, "N:"):
			parts := strings.Split(strings.TrimPrefix(line, "N:"), ";")
			rec.Last = parts[0]
			if len(parts) > 1 {
				rec.First = parts[1]
			}
		case strings.HasPrefix(line, "ORG:"):
			rec.Org = strings.TrimPrefix(line, "ORG:")
		case strings.HasPrefix(line, "TITLE:"):
			rec.Title = strings.TrimPrefix(line, "TITLE:")
		case strings.HasPrefix(line, "TEL;TYPE=CELL:"):
			rec.Phone = strings.TrimPrefix(line, "TEL;TYPE=CELL:")
		case strings.HasPrefix(line, "EMAIL:"):
			rec.Email = strings.TrimPrefix(line, "EMAIL:")
		}
	}
	if !begin || !end {
		return ContactRecord{}, errors.New("missing vCard markers")
	}
	return rec, nil
}
