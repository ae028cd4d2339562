package nocodb

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateMarshal(t *testing.T) {
	d := Date{time.Date(2021, 3, 25, 14, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2021-03-25"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDateUnmarshal(t *testing.T) {
	want := time.Date(2021, 3, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"plain date", `"2021-03-25"`, want},
		{"rfc3339", `"2021-03-25T00:00:00Z"`, want},
		{"datetime", `"2021-03-25 00:00:00"`, want},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
		{"garbage", `"next tuesday"`, time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.True(t, d.Time.Equal(tt.want), "got %v; want %v", d.Time, tt.want)
		})
	}
}

func TestDateTimePtr(t *testing.T) {
	var nilDate *Date
	assert.Nil(t, nilDate.TimePtr())
	assert.Nil(t, (&Date{}).TimePtr())

	now := time.Now().UTC()
	d := NewDate(&now)
	require.NotNil(t, d.TimePtr())
	assert.True(t, d.TimePtr().Equal(now))

	assert.Nil(t, NewDate(nil))
	assert.True(t, nilDate.OrZero().IsZero())
}
