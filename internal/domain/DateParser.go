package domain

import (
	"strings"
	"time"
)

// DefaultDateLayouts são os formatos aceitos para a coluna de data, em ordem de tentativa
var DefaultDateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.DateTime,
	"1/2/2006",
	"1/2/2006 15:04:05",
	"2006/1/2",
	"2006-1-2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// DateParser interpreta o texto livre da coluna de data da planilha
type DateParser struct {
	Layouts  []string
	Location *time.Location
}

func NewDateParser(layouts []string, loc *time.Location) DateParser {
	return DateParser{Layouts: layouts, Location: loc}
}

// Parse retorna false quando nenhum formato aceita o texto ou a data não existe no calendário (ex: 31/02)
func (p DateParser) Parse(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	layouts := p.Layouts
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}

	loc := p.Location
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
