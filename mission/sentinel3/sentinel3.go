// Package sentinel3 defines the grammar for Sentinel-3 product identifiers,
// e.g. "S3A_OL_1_EFR____20220801T210143_20220801T210443_20220803T023357_0179_088_157_1800_MAR_O_NT_002".
//
// See https://sentinel.esa.int/web/sentinel/user-guides/sentinel-3-olci/naming-convention
package sentinel3

import (
	"strings"
	"time"

	"github.com/earthobs/eoid"
	"github.com/earthobs/eoid/combinator"
	"github.com/earthobs/eoid/temporal"
)

// MissionID identifies the satellite within the Sentinel-3 constellation.
// S3AB marks products merged from both units ("S3_" in the identifier).
type MissionID string

const (
	S3A  MissionID = "S3A"
	S3B  MissionID = "S3B"
	S3AB MissionID = "S3AB"
)

// DataSource is the instrument or data source of a product.
type DataSource string

const (
	OLCI    DataSource = "OLCI"
	SLSTR   DataSource = "SLSTR"
	Synergy DataSource = "SYNERGY"
	SRAL    DataSource = "SRAL"
	DORIS   DataSource = "DORIS"
	MWR     DataSource = "MWR"
	GNSS    DataSource = "GNSS"
)

// DataType is the six character data type field with padding underscores
// stripped and letters uppercased, e.g. "EFR" or "WST_BW".
type DataType string

// LevelNone marks products whose identifier carries no processing level
// (auxiliary data files).
const LevelNone = -1

// InstanceKind discriminates the layouts of the 17 character instance field.
type InstanceKind string

const (
	KindStripe     InstanceKind = "stripe"
	KindFrame      InstanceKind = "frame"
	KindGlobalTile InstanceKind = "global"
	KindTile       InstanceKind = "tile"
	KindAux        InstanceKind = "aux"
)

// Instance is the decoded instance field. Only the fields of the variant
// named by Kind are populated.
type Instance struct {
	Kind InstanceKind `json:"kind" yaml:"kind"`

	// Stripe and frame variants.
	Duration      int `json:"duration,omitempty" yaml:"duration,omitempty"`
	Cycle         int `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	RelativeOrbit int `json:"relative_orbit,omitempty" yaml:"relative_orbit,omitempty"`

	// Frame variant: along track coordinate of the frame.
	Frame int `json:"frame,omitempty" yaml:"frame,omitempty"`

	// Tile variant.
	Tile string `json:"tile,omitempty" yaml:"tile,omitempty"`
}

// Platform is the ground segment platform that generated the product.
type Platform string

const (
	Operational  Platform = "O"
	Reference    Platform = "F"
	Development  Platform = "D"
	Reprocessing Platform = "R"
)

// Timeliness of the product delivery.
type Timeliness string

const (
	NRT Timeliness = "NR"
	STC Timeliness = "ST"
	NTC Timeliness = "NT"
)

// Product is a decoded Sentinel-3 product identifier.
type Product struct {
	MissionID MissionID  `json:"mission_id" yaml:"mission_id"`
	Source    DataSource `json:"source" yaml:"source"`

	// Level is the processing level, or LevelNone when the identifier
	// carries none.
	Level int `json:"level" yaml:"level"`

	Type DataType `json:"type" yaml:"type"`

	Start   time.Time `json:"start" yaml:"start"`
	Stop    time.Time `json:"stop" yaml:"stop"`
	Created time.Time `json:"created" yaml:"created"`

	Instance Instance `json:"instance" yaml:"instance"`

	// Centre is the centre that generated the file.
	Centre string `json:"centre" yaml:"centre"`

	// Platform and Timeliness are empty when their fields hold padding.
	Platform   Platform   `json:"platform,omitempty" yaml:"platform,omitempty"`
	Timeliness Timeliness `json:"timeliness,omitempty" yaml:"timeliness,omitempty"`

	// Collection is the baseline collection or data usage, empty when the
	// field holds padding.
	Collection string `json:"collection,omitempty" yaml:"collection,omitempty"`
}

func (p Product) Mission() eoid.Mission {
	return eoid.Sentinel3
}

func (p Product) StartTime() time.Time {
	return p.Start
}

func (p Product) StopTime() (time.Time, bool) {
	return p.Stop, true
}

func isPad(c byte) bool {
	return c == '_'
}

var (
	sep = combinator.Tag("_")

	parseMissionID = combinator.Alt(
		combinator.Value(combinator.TagNoCase("s3a"), S3A),
		combinator.Value(combinator.TagNoCase("s3b"), S3B),
		combinator.Value(combinator.TagNoCase("s3_"), S3AB),
	)

	parseSource = combinator.Alt(
		combinator.Value(combinator.TagNoCase("ol"), OLCI),
		combinator.Value(combinator.TagNoCase("sl"), SLSTR),
		combinator.Value(combinator.TagNoCase("sy"), Synergy),
		combinator.Value(combinator.TagNoCase("sr"), SRAL),
		combinator.Value(combinator.TagNoCase("do"), DORIS),
		combinator.Value(combinator.TagNoCase("mw"), MWR),
		combinator.Value(combinator.TagNoCase("gn"), GNSS),
	)

	parseLevel = combinator.Alt(
		combinator.Digits(1),
		combinator.Value(sep, LevelNone),
	)

	parseType = combinator.Map(combinator.Take(6), func(v string) DataType {
		return DataType(strings.ToUpper(strings.TrimRight(v, "_")))
	})

	fourDigits  = combinator.Digits(4)
	threeDigits = combinator.Digits(3)

	parseInstance = combinator.Alt(
		combinator.Value(combinator.TakeWhile(17, 17, isPad), Instance{Kind: KindAux}),
		combinator.Value(combinator.TagNoCase("GLOBAL___________"), Instance{Kind: KindGlobalTile}),
		parseStripe,
		parseFrame,
		combinator.Map(combinator.Alphanumeric(17), func(v string) Instance {
			return Instance{Kind: KindTile, Tile: strings.ToUpper(v)}
		}),
	)

	parsePlatform = combinator.Alt(
		combinator.Value(combinator.TagNoCase("o"), Operational),
		combinator.Value(combinator.TagNoCase("f"), Reference),
		combinator.Value(combinator.TagNoCase("d"), Development),
		combinator.Value(combinator.TagNoCase("r"), Reprocessing),
		combinator.Value(sep, Platform("")),
	)

	parseTimeliness = combinator.Alt(
		combinator.Value(combinator.TagNoCase("nr"), NRT),
		combinator.Value(combinator.TagNoCase("st"), STC),
		combinator.Value(combinator.TagNoCase("nt"), NTC),
		combinator.Value(combinator.Tag("__"), Timeliness("")),
	)

	parseCollection = combinator.Alt(
		combinator.Map(combinator.TakeWhile(1, 3, combinator.IsAlphanumeric), strings.ToUpper),
		combinator.Value(combinator.Tag("___"), ""),
	)
)

// parseStripe parses the "dddd_ddd_ddd_____" instance layout.
func parseStripe(s string, pos int) (Instance, int, error) {
	duration, p, err := fourDigits(s, pos)
	if err != nil {
		return Instance{}, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	cycle, p, err := threeDigits(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	orbit, p, err := threeDigits(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	_, p, err = combinator.TakeWhile(4, 4, isPad)(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	return Instance{Kind: KindStripe, Duration: duration, Cycle: cycle, RelativeOrbit: orbit}, p, nil
}

// parseFrame parses the "dddd_ddd_ddd_dddd" instance layout.
func parseFrame(s string, pos int) (Instance, int, error) {
	duration, p, err := fourDigits(s, pos)
	if err != nil {
		return Instance{}, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	cycle, p, err := threeDigits(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	orbit, p, err := threeDigits(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	frame, p, err := fourDigits(s, p)
	if err != nil {
		return Instance{}, pos, err
	}
	return Instance{Kind: KindFrame, Duration: duration, Cycle: cycle, RelativeOrbit: orbit, Frame: frame}, p, nil
}

// ParseProduct parses a Sentinel-3 product identifier.
func ParseProduct(s string, pos int) (Product, int, error) {
	var prod Product
	missionID, p, err := parseMissionID(s, pos)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	source, p, err := parseSource(s, p)
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
	dataType, p, err := parseType(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	start, p, err := temporal.DateTime(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	stop, p, err := temporal.DateTime(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	created, p, err := temporal.DateTime(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	instance, p, err := parseInstance(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	centre, p, err := combinator.Alphanumeric(3)(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	platform, p, err := parsePlatform(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	timeliness, p, err := parseTimeliness(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	collection, p, err := parseCollection(s, p)
	if err != nil {
		return prod, pos, err
	}

	prod = Product{
		MissionID:  missionID,
		Source:     source,
		Level:      level,
		Type:       dataType,
		Start:      start,
		Stop:       stop,
		Created:    created,
		Instance:   instance,
		Centre:     strings.ToUpper(centre),
		Platform:   platform,
		Timeliness: timeliness,
		Collection: collection,
	}
	return prod, p, nil
}
