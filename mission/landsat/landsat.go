// Package landsat defines the grammars for Landsat scene identifiers
// (collection pre-1 style, e.g. "LC80390222013076EDC00") and Landsat
// collection product identifiers (e.g. "LC08_L2SP_008008_20180520_20200901_02_T2").
//
// See https://www.usgs.gov/faqs/what-naming-convention-landsat-collections-level-1-scenes
// and https://www.usgs.gov/faqs/what-naming-convention-landsat-collection-2-level-1-and-level-2-scenes
package landsat

import (
	"strings"
	"time"

	"github.com/earthobs/eoid"
	"github.com/earthobs/eoid/combinator"
	"github.com/earthobs/eoid/temporal"
)

// MissionID is the Landsat satellite number, 1 through 9.
type MissionID int

// Mission returns the corresponding eoid mission.
func (m MissionID) Mission() eoid.Mission {
	return eoid.Landsat1 + eoid.Mission(m-1)
}

// Sensor is the imaging instrument encoded in the identifier.
type Sensor string

const (
	// C = OLI and TIRS combined
	SensorOLITIRS Sensor = "OLI+TIRS"

	// O = OLI only
	SensorOLI Sensor = "OLI"

	// T = TIRS only (Landsat 8/9)
	SensorTIRS Sensor = "TIRS"

	// E = ETM+
	SensorETMPlus Sensor = "ETM+"

	// T = TM (Landsat 4/5)
	SensorTM Sensor = "TM"

	// M = MSS
	SensorMSS Sensor = "MSS"
)

func (s Sensor) Name() string {
	return string(s)
}

func (s Sensor) NameLong() string {
	switch s {
	case SensorOLITIRS:
		return "Operational Land Imager + Thermal InfraRed Sensor"
	case SensorOLI:
		return "Operational Land Imager"
	case SensorTIRS:
		return "Thermal InfraRed Sensor"
	case SensorETMPlus:
		return "Enhanced Thematic Mapper Plus"
	case SensorTM:
		return "Thematic Mapper"
	case SensorMSS:
		return "Multi Spectral Scanner"
	}
	return string(s)
}

// ProcessingLevel is the processing correction level. Levels outside the
// known set are preserved uppercased.
type ProcessingLevel string

const (
	L1TP ProcessingLevel = "L1TP"
	L1GT ProcessingLevel = "L1GT"
	L1GS ProcessingLevel = "L1GS"
	L2SP ProcessingLevel = "L2SP"
	L2SR ProcessingLevel = "L2SR"

	// Full-resolution browse tiles, see LSDS-1609.
	LevelCONUS  ProcessingLevel = "CU"
	LevelAlaska ProcessingLevel = "AK"
	LevelHawaii ProcessingLevel = "HI"
)

// CollectionCategory is the collection tier of a product.
type CollectionCategory string

const (
	RealTime    CollectionCategory = "RT"
	Tier1       CollectionCategory = "T1"
	Tier2       CollectionCategory = "T2"
	AlbersTier1 CollectionCategory = "A1"
	AlbersTier2 CollectionCategory = "A2"
)

func (c CollectionCategory) Name() string {
	return string(c)
}

func (c CollectionCategory) NameLong() string {
	switch c {
	case RealTime:
		return "Real-Time"
	case Tier1:
		return "Tier 1"
	case Tier2:
		return "Tier 2"
	case AlbersTier1:
		return "Albers Tier 1"
	case AlbersTier2:
		return "Albers Tier 2"
	}
	return string(c)
}

// SceneID is a decoded Landsat scene identifier.
type SceneID struct {
	Sensor         Sensor    `json:"sensor" yaml:"sensor"`
	MissionID      MissionID `json:"mission_id" yaml:"mission_id"`
	WRSPath        int       `json:"wrs_path" yaml:"wrs_path"`
	WRSRow         int       `json:"wrs_row" yaml:"wrs_row"`
	AcquireDate    time.Time `json:"acquire_date" yaml:"acquire_date"`
	GroundStation  string    `json:"ground_station" yaml:"ground_station"`
	ArchiveVersion int       `json:"archive_version" yaml:"archive_version"`
}

func (s SceneID) Mission() eoid.Mission {
	return s.MissionID.Mission()
}

func (s SceneID) StartTime() time.Time {
	return s.AcquireDate
}

func (s SceneID) StopTime() (time.Time, bool) {
	return time.Time{}, false
}

// Product is a decoded Landsat collection product identifier.
type Product struct {
	Sensor             Sensor             `json:"sensor" yaml:"sensor"`
	MissionID          MissionID          `json:"mission_id" yaml:"mission_id"`
	ProcessingLevel    ProcessingLevel    `json:"processing_level" yaml:"processing_level"`
	WRSPath            int                `json:"wrs_path" yaml:"wrs_path"`
	WRSRow             int                `json:"wrs_row" yaml:"wrs_row"`
	AcquireDate        time.Time          `json:"acquire_date" yaml:"acquire_date"`
	ProcessingDate     time.Time          `json:"processing_date" yaml:"processing_date"`
	CollectionNumber   int                `json:"collection_number" yaml:"collection_number"`
	CollectionCategory CollectionCategory `json:"collection_category,omitempty" yaml:"collection_category,omitempty"`
}

func (p Product) Mission() eoid.Mission {
	return p.MissionID.Mission()
}

func (p Product) StartTime() time.Time {
	return p.AcquireDate
}

func (p Product) StopTime() (time.Time, bool) {
	return time.Time{}, false
}

var (
	sep          = combinator.Tag("_")
	missionDigit = combinator.DigitsInRange(1, 1, 9)
	threeDigits  = combinator.Digits(3)
	station      = combinator.Alphanumeric(3)
	twoDigits    = combinator.Digits(2)

	levelRun = combinator.TakeWhile(0, -1, combinator.IsAlphanumeric)

	parseLevel = combinator.Alt(
		combinator.Value(combinator.TagNoCase("l1tp"), L1TP),
		combinator.Value(combinator.TagNoCase("l1gs"), L1GS),
		combinator.Value(combinator.TagNoCase("l1gt"), L1GT),
		combinator.Value(combinator.TagNoCase("l2sp"), L2SP),
		combinator.Value(combinator.TagNoCase("l2sr"), L2SR),
		combinator.Value(combinator.TagNoCase("cu"), LevelCONUS),
		combinator.Value(combinator.TagNoCase("ak"), LevelAlaska),
		combinator.Value(combinator.TagNoCase("hi"), LevelHawaii),
		combinator.Map(levelRun, func(v string) ProcessingLevel {
			return ProcessingLevel(strings.ToUpper(v))
		}),
	)

	parseCategory = combinator.Alt(
		combinator.Value(combinator.TagNoCase("rt"), RealTime),
		combinator.Value(combinator.TagNoCase("t1"), Tier1),
		combinator.Value(combinator.TagNoCase("t2"), Tier2),
		combinator.Value(combinator.TagNoCase("a1"), AlbersTier1),
		combinator.Value(combinator.TagNoCase("a2"), AlbersTier2),
	)
)

// sensorFor maps the sensor letter onto a Sensor. The letter T is ambiguous:
// it means TM on Landsat 4 and 5 and TIRS on later missions.
func sensorFor(c byte, mission, pos int) (Sensor, error) {
	switch c {
	case 'c', 'C':
		return SensorOLITIRS, nil
	case 'o', 'O':
		return SensorOLI, nil
	case 't', 'T':
		if mission == 4 || mission == 5 {
			return SensorTM, nil
		}
		return SensorTIRS, nil
	case 'e', 'E':
		return SensorETMPlus, nil
	case 'm', 'M':
		return SensorMSS, nil
	}
	return "", eoid.FormatError(combinator.ShapeError, pos, "unknown sensor code %q", string(c))
}

// ParseSceneID parses a Landsat scene identifier such as
// "LC80390222013076EDC00".
func ParseSceneID(s string, pos int) (SceneID, int, error) {
	var scene SceneID
	_, p, err := combinator.TagNoCase("l")(s, pos)
	if err != nil {
		return scene, pos, err
	}
	sensorPos := p
	sensorChar, p, err := combinator.Take(1)(s, p)
	if err != nil {
		return scene, pos, err
	}
	mission, p, err := missionDigit(s, p)
	if err != nil {
		return scene, pos, err
	}
	sensor, err := sensorFor(sensorChar[0], mission, sensorPos)
	if err != nil {
		return scene, pos, err
	}
	path, p, err := threeDigits(s, p)
	if err != nil {
		return scene, pos, err
	}
	row, p, err := threeDigits(s, p)
	if err != nil {
		return scene, pos, err
	}
	acquired, p, err := temporal.JulianDate(s, p)
	if err != nil {
		return scene, pos, err
	}
	gsi, p, err := station(s, p)
	if err != nil {
		return scene, pos, err
	}
	version, p, err := twoDigits(s, p)
	if err != nil {
		return scene, pos, err
	}

	scene = SceneID{
		Sensor:         sensor,
		MissionID:      MissionID(mission),
		WRSPath:        path,
		WRSRow:         row,
		AcquireDate:    acquired,
		GroundStation:  strings.ToUpper(gsi),
		ArchiveVersion: version,
	}
	return scene, p, nil
}

// ParseProduct parses a Landsat collection product identifier such as
// "LC08_L1GT_029030_20151209_20160131_01_RT".
func ParseProduct(s string, pos int) (Product, int, error) {
	var prod Product
	_, p, err := combinator.TagNoCase("l")(s, pos)
	if err != nil {
		return prod, pos, err
	}
	sensorPos := p
	sensorChar, p, err := combinator.Take(1)(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = combinator.Tag("0")(s, p)
	if err != nil {
		return prod, pos, err
	}
	mission, p, err := missionDigit(s, p)
	if err != nil {
		return prod, pos, err
	}
	sensor, err := sensorFor(sensorChar[0], mission, sensorPos)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	level, p, err := parseLevel(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	path, p, err := threeDigits(s, p)
	if err != nil {
		return prod, pos, err
	}
	row, p, err := threeDigits(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	acquired, p, err := temporal.Date(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	processed, p, err := temporal.Date(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	collection, p, err := twoDigits(s, p)
	if err != nil {
		return prod, pos, err
	}

	prod = Product{
		Sensor:           sensor,
		MissionID:        MissionID(mission),
		ProcessingLevel:  level,
		WRSPath:          path,
		WRSRow:           row,
		AcquireDate:      acquired,
		ProcessingDate:   processed,
		CollectionNumber: collection,
	}

	// The collection category is optional; an unparsable trailer is left
	// unconsumed rather than failing the whole product.
	if _, p2, err := sep(s, p); err == nil {
		if cat, p3, err := parseCategory(s, p2); err == nil {
			prod.CollectionCategory = cat
			p = p3
		}
	}
	return prod, p, nil
}
