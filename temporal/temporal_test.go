package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earthobs/eoid"
	"github.com/earthobs/eoid/combinator"
)

func requireCode(t *testing.T, err error, code int) *eoid.Error {
	t.Helper()
	require.Error(t, err)
	pe, ok := err.(*eoid.Error)
	require.True(t, ok, "expected *eoid.Error, got %T", err)
	require.Equal(t, code, pe.Code)
	return pe
}

func TestDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, pos, err := Date("20130503", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2013, 5, 3, 0, 0, 0, 0, time.UTC), d)
		assert.Equal(t, 8, pos)
	})

	t.Run("month out of range", func(t *testing.T) {
		_, _, err := Date("20131303", 0)
		pe := requireCode(t, err, combinator.RangeError)
		assert.Equal(t, 4, pe.Offset)
	})

	t.Run("day out of range", func(t *testing.T) {
		_, _, err := Date("20131241", 0)
		pe := requireCode(t, err, combinator.RangeError)
		assert.Equal(t, 6, pe.Offset)
	})

	t.Run("nonexistent date", func(t *testing.T) {
		_, _, err := Date("20230230", 0)
		pe := requireCode(t, err, InvalidDateError)
		assert.Equal(t, 0, pe.Offset)
	})

	t.Run("leap day", func(t *testing.T) {
		d, _, err := Date("20200229", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC), d)

		_, _, err = Date("20190229", 0)
		requireCode(t, err, InvalidDateError)
	})
}

func TestClock(t *testing.T) {
	c, pos, err := Clock("051836", 0)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Hour+18*time.Minute+36*time.Second, c)
	assert.Equal(t, 6, pos)

	t.Run("end of day and leap second are admitted", func(t *testing.T) {
		c, _, err := Clock("240000", 0)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, c)

		c, _, err = Clock("235960", 0)
		require.NoError(t, err)
		assert.Equal(t, 24*time.Hour, c)
	})

	t.Run("minute out of range", func(t *testing.T) {
		_, _, err := Clock("236000", 0)
		pe := requireCode(t, err, combinator.RangeError)
		assert.Equal(t, 2, pe.Offset)
	})
}

func TestDateTime(t *testing.T) {
	want := time.Date(2020, 2, 7, 5, 18, 36, 0, time.UTC)

	t.Run("separator equivalence", func(t *testing.T) {
		withT, posT, err := DateTime("20200207T051836", 0)
		require.NoError(t, err)
		without, pos, err := DateTime("20200207051836", 0)
		require.NoError(t, err)

		assert.Equal(t, want, withT)
		assert.Equal(t, want, without)
		assert.Equal(t, 15, posT)
		assert.Equal(t, 14, pos)
	})

	t.Run("lowercase separator", func(t *testing.T) {
		got, _, err := DateTime("20200207t051836", 0)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("hour 24 rolls to next day", func(t *testing.T) {
		got, _, err := DateTime("20200207T240000", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 2, 8, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestJulianDate(t *testing.T) {
	t.Run("leap year", func(t *testing.T) {
		d, pos, err := JulianDate("2020046", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 2, 15, 0, 0, 0, 0, time.UTC), d)
		assert.Equal(t, 7, pos)
	})

	t.Run("non leap year", func(t *testing.T) {
		d, _, err := JulianDate("2019046", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, 2, 15, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("rolls across months", func(t *testing.T) {
		d, _, err := JulianDate("2013076", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2013, 3, 17, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("day 366 of a leap year", func(t *testing.T) {
		d, _, err := JulianDate("2020366", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("truncated day of year", func(t *testing.T) {
		_, _, err := JulianDate("202004", 0)
		pe := requireCode(t, err, combinator.IncompleteError)
		assert.Equal(t, 6, pe.Offset)
		assert.Equal(t, 1, pe.Needed)
	})
}
