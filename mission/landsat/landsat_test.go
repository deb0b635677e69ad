package landsat

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthobs/eoid"
)

func TestParseSceneID(t *testing.T) {
	scene, pos, err := ParseSceneID("LC80390222013076EDC00", 0)
	require.NoError(t, err)
	assert.Equal(t, len("LC80390222013076EDC00"), pos)

	want := SceneID{
		Sensor:         SensorOLITIRS,
		MissionID:      8,
		WRSPath:        39,
		WRSRow:         22,
		AcquireDate:    time.Date(2013, 3, 17, 0, 0, 0, 0, time.UTC),
		GroundStation:  "EDC",
		ArchiveVersion: 0,
	}
	if diff := cmp.Diff(want, scene); diff != "" {
		t.Errorf("scene mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, eoid.Landsat8, scene.Mission())
	assert.Equal(t, want.AcquireDate, scene.StartTime())
	_, ok := scene.StopTime()
	assert.False(t, ok)
}

func TestParseSceneIDSensorIsMissionDependent(t *testing.T) {
	// T means TM on Landsat 4/5 and TIRS on Landsat 8/9.
	tm, _, err := ParseSceneID("LT50170362000306AAA02", 0)
	require.NoError(t, err)
	assert.Equal(t, SensorTM, tm.Sensor)
	assert.Equal(t, MissionID(5), tm.MissionID)

	tirs, _, err := ParseSceneID("LT80170362020306AAA02", 0)
	require.NoError(t, err)
	assert.Equal(t, SensorTIRS, tirs.Sensor)
}

func TestParseSceneIDRejects(t *testing.T) {
	t.Run("wrong leading tag", func(t *testing.T) {
		_, _, err := ParseSceneID("XC80390222013076EDC00", 0)
		var pe *eoid.Error
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 0, pe.Offset)
	})

	t.Run("satellite number zero", func(t *testing.T) {
		_, _, err := ParseSceneID("LC00390222013076EDC00", 0)
		var pe *eoid.Error
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 2, pe.Offset)
	})

	t.Run("unknown sensor code", func(t *testing.T) {
		_, _, err := ParseSceneID("LX80390222013076EDC00", 0)
		var pe *eoid.Error
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 1, pe.Offset)
	})
}

func TestParseProduct(t *testing.T) {
	t.Run("level 1", func(t *testing.T) {
		prod, pos, err := ParseProduct("LC08_L1GT_029030_20151209_20160131_01_RT", 0)
		require.NoError(t, err)
		assert.Equal(t, len("LC08_L1GT_029030_20151209_20160131_01_RT"), pos)

		want := Product{
			Sensor:             SensorOLITIRS,
			MissionID:          8,
			ProcessingLevel:    L1GT,
			WRSPath:            29,
			WRSRow:             30,
			AcquireDate:        time.Date(2015, 12, 9, 0, 0, 0, 0, time.UTC),
			ProcessingDate:     time.Date(2016, 1, 31, 0, 0, 0, 0, time.UTC),
			CollectionNumber:   1,
			CollectionCategory: RealTime,
		}
		if diff := cmp.Diff(want, prod); diff != "" {
			t.Errorf("product mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("level 2", func(t *testing.T) {
		prod, _, err := ParseProduct("LC08_L2SP_140041_20130503_20190828_02_T1", 0)
		require.NoError(t, err)
		assert.Equal(t, L2SP, prod.ProcessingLevel)
		assert.Equal(t, Tier1, prod.CollectionCategory)
		assert.Equal(t, 2, prod.CollectionNumber)
	})

	t.Run("category is optional", func(t *testing.T) {
		prod, pos, err := ParseProduct("LC08_L2SP_140041_20130503_20190828_02", 0)
		require.NoError(t, err)
		assert.Equal(t, len("LC08_L2SP_140041_20130503_20190828_02"), pos)
		assert.Equal(t, CollectionCategory(""), prod.CollectionCategory)
	})

	t.Run("unknown level is preserved uppercased", func(t *testing.T) {
		prod, _, err := ParseProduct("LC08_l2xx_140041_20130503_20190828_02_T1", 0)
		require.NoError(t, err)
		assert.Equal(t, ProcessingLevel("L2XX"), prod.ProcessingLevel)
	})

	t.Run("browse tile level", func(t *testing.T) {
		prod, _, err := ParseProduct("LC08_CU_012005_20170430_20181222_01_A1", 0)
		require.NoError(t, err)
		assert.Equal(t, LevelCONUS, prod.ProcessingLevel)
		assert.Equal(t, AlbersTier1, prod.CollectionCategory)
	})
}

func TestSensorNames(t *testing.T) {
	assert.Equal(t, "OLI+TIRS", SensorOLITIRS.Name())
	assert.Equal(t, "Enhanced Thematic Mapper Plus", SensorETMPlus.NameLong())
	assert.Equal(t, "Tier 1", Tier1.NameLong())
}
