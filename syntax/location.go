package syntax

import "strconv"

// Location is a coordinate into a source file.
// Position counts characters (runes) from the start of the file, Line is 1-based and
// Column is 0-based.
type Location struct {
	File     string
	Position int
	Line     int
	Column   int
}

func StartLocation(file string) Location {
	return Location{
		File: file,
		Line: 1,
	}
}

func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

// Span delimits a lexeme. End is the location right after the last character.
type Span struct {
	Start Location
	End   Location
}

func (s Span) Len() int {
	return s.End.Position - s.Start.Position
}

func (s Span) Valid() bool {
	return s.End.Position >= s.Start.Position &&
		s.Start.File == s.End.File
}

func (s Span) String() string {
	return s.Start.String() + " - " + s.End.String()
}
