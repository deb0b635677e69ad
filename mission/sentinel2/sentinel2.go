// Package sentinel2 defines the grammar for Sentinel-2 product identifiers in
// the compact naming convention used for products generated after
// 6 December 2016, e.g. "S2A_MSIL1C_20170105T013442_N0204_R031_T53NMJ_20170105T013443".
//
// See https://sentinel.esa.int/web/sentinel/user-guides/sentinel-2-msi/naming-convention
package sentinel2

import (
	"strings"
	"time"

	"github.com/earthobs/eoid"
	"github.com/earthobs/eoid/combinator"
	"github.com/earthobs/eoid/temporal"
)

// MissionID identifies the satellite within the Sentinel-2 constellation.
type MissionID string

const (
	S2A MissionID = "S2A"
	S2B MissionID = "S2B"
)

// ProductLevel is the processing level of a product.
type ProductLevel string

const (
	L1C ProductLevel = "L1C"
	L2A ProductLevel = "L2A"
)

// Baseline is the PDGS processing baseline number, e.g. N0204 decodes to
// major 2, minor 4.
type Baseline struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
}

// Product is a decoded Sentinel-2 product identifier.
type Product struct {
	MissionID MissionID    `json:"mission_id" yaml:"mission_id"`
	Level     ProductLevel `json:"level" yaml:"level"`

	// Start is the datatake sensing start time.
	Start time.Time `json:"start" yaml:"start"`

	Baseline      Baseline `json:"baseline" yaml:"baseline"`
	RelativeOrbit int      `json:"relative_orbit" yaml:"relative_orbit"`
	Tile          string   `json:"tile" yaml:"tile"`

	// Discriminator distinguishes end user products from the same datatake.
	// Depending on the instance its embedded time can be earlier or slightly
	// later than the datatake sensing time.
	Discriminator string `json:"discriminator" yaml:"discriminator"`
}

func (p Product) Mission() eoid.Mission {
	return eoid.Sentinel2
}

func (p Product) StartTime() time.Time {
	return p.Start
}

func (p Product) StopTime() (time.Time, bool) {
	return time.Time{}, false
}

var (
	sep = combinator.Tag("_")

	parseMissionID = combinator.Alt(
		combinator.Value(combinator.TagNoCase("s2a"), S2A),
		combinator.Value(combinator.TagNoCase("s2b"), S2B),
	)

	parseLevel = combinator.Alt(
		combinator.Value(combinator.TagNoCase("l1c"), L1C),
		combinator.Value(combinator.TagNoCase("l2a"), L2A),
	)

	baselinePart  = combinator.DigitsInRange(2, 0, 99)
	relativeOrbit = combinator.DigitsInRange(3, 1, 143)
	tileNumber    = combinator.Alphanumeric(5)
	discriminator = combinator.Alphanumeric(15)
)

// ParseProduct parses a Sentinel-2 product identifier.
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
	_, p, err = combinator.TagNoCase("msi")(s, p)
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
	start, p, err := temporal.DateTime(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = combinator.TagNoCase("n")(s, p)
	if err != nil {
		return prod, pos, err
	}
	major, p, err := baselinePart(s, p)
	if err != nil {
		return prod, pos, err
	}
	minor, p, err := baselinePart(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = combinator.TagNoCase("r")(s, p)
	if err != nil {
		return prod, pos, err
	}
	orbit, p, err := relativeOrbit(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = combinator.TagNoCase("t")(s, p)
	if err != nil {
		return prod, pos, err
	}
	tile, p, err := tileNumber(s, p)
	if err != nil {
		return prod, pos, err
	}
	_, p, err = sep(s, p)
	if err != nil {
		return prod, pos, err
	}
	disc, p, err := discriminator(s, p)
	if err != nil {
		return prod, pos, err
	}

	prod = Product{
		MissionID:     missionID,
		Level:         level,
		Start:         start,
		Baseline:      Baseline{Major: major, Minor: minor},
		RelativeOrbit: orbit,
		Tile:          strings.ToUpper(tile),
		Discriminator: strings.ToUpper(disc),
	}
	return prod, p, nil
}
