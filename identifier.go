package eoid

import (
	"time"
)

// Name is implemented by enumerations that have a short conventional name.
type Name interface {
	Name() string
}

// NameLong is implemented by enumerations that also have a spelled-out name.
type NameLong interface {
	NameLong() string
}

// Mission is the producing satellite mission of an identifier.
type Mission int

const (
	Sentinel1 Mission = iota + 1
	Sentinel2
	Sentinel3
	Landsat1
	Landsat2
	Landsat3
	Landsat4
	Landsat5
	Landsat6
	Landsat7
	Landsat8
	Landsat9
)

var missionNames = map[Mission]string{
	Sentinel1: "Sentinel 1",
	Sentinel2: "Sentinel 2",
	Sentinel3: "Sentinel 3",
	Landsat1:  "Landsat 1",
	Landsat2:  "Landsat 2",
	Landsat3:  "Landsat 3",
	Landsat4:  "Landsat 4",
	Landsat5:  "Landsat 5",
	Landsat6:  "Landsat 6",
	Landsat7:  "Landsat 7",
	Landsat8:  "Landsat 8",
	Landsat9:  "Landsat 9",
}

func (m Mission) Name() string {
	return missionNames[m]
}

func (m Mission) String() string {
	return m.Name()
}

// Identifier is a decoded earth observation product or dataset identifier.
// It is implemented by the record types of the mission grammar packages;
// a value is only ever constructed by a successful grammar parse and is
// immutable afterwards.
type Identifier interface {
	// Mission returns the producing mission.
	Mission() Mission

	// StartTime returns the sensing start time. Grammars that only encode an
	// acquisition date report midnight UTC of that date.
	StartTime() time.Time

	// StopTime returns the sensing stop time, if the identifier encodes one.
	StopTime() (time.Time, bool)
}
