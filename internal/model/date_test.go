package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshalJSON(t *testing.T) {
	d := NewDate(1985, time.February, 14)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1985-02-14"`, string(out))
}

func TestDateMarshalJSONZero(t *testing.T) {
	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestDateUnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1985-02-14"`), &d))

	assert.Equal(t, 1985, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 14, d.Day())
}

func TestDateUnmarshalJSONNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateUnmarshalJSONInvalid(t *testing.T) {
	tests := []string{
		`"14-02-1985"`,
		`"1985-02-14T10:00:00Z"`,
		`"not a date"`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(input), &d))
		})
	}
}

func TestDateScan(t *testing.T) {
	t.Run("time", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan(time.Date(2001, time.July, 9, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, "2001-07-09", d.Format(DateLayout))
	})

	t.Run("string", func(t *testing.T) {
		var d Date
		require.NoError(t, d.Scan("2001-07-09"))
		assert.Equal(t, "2001-07-09", d.Format(DateLayout))
	})

	t.Run("nil", func(t *testing.T) {
		d := NewDate(2001, time.July, 9)
		require.NoError(t, d.Scan(nil))
		assert.True(t, d.IsZero())
	})

	t.Run("unsupported", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2001, time.July, 9).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2001, time.July, 9, 0, 0, 0, 0, time.UTC), v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDateOf(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	d := DateOf(time.Date(2025, time.March, 1, 23, 30, 0, 0, loc))

	assert.Equal(t, "2025-03-02", d.Format(DateLayout))
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339 utc",
			input: `"2025-11-03T14:30:00Z"`,
			want:  time.Date(2025, time.November, 3, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 with offset",
			input: `"2025-11-03T14:30:00+02:00"`,
			want:  time.Date(2025, time.November, 3, 12, 30, 0, 0, time.UTC),
		},
		{
			name:  "naive with seconds",
			input: `"2025-11-03T14:30:00"`,
			want:  time.Date(2025, time.November, 3, 14, 30, 0, 0, time.UTC),
		},
		{
			name:  "naive without seconds",
			input: `"2025-11-03T14:30"`,
			want:  time.Date(2025, time.November, 3, 14, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dt DateTime
			require.NoError(t, json.Unmarshal([]byte(tt.input), &dt))
			assert.True(t, dt.Equal(tt.want), "got %v, want %v", dt.Time, tt.want)
		})
	}
}

func TestDateTimeUnmarshalJSONInvalid(t *testing.T) {
	var dt DateTime
	assert.Error(t, json.Unmarshal([]byte(`"03/11/2025 2pm"`), &dt))
}

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	dt := NewDateTime(time.Date(2025, time.November, 3, 14, 30, 0, 0, loc))

	out, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2025-11-03T12:30:00Z"`, string(out))
}

func TestDateTimeMarshalJSONZero(t *testing.T) {
	out, err := json.Marshal(DateTime{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.November, 3), d)

	_, err = ParseDate("2025-13-45")
	assert.Error(t, err)
}
