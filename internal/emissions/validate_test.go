package emissions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReading(t *testing.T) {
	tests := []struct {
		name        string
		consumption string
		date        string
		wantC       *float64
		wantD       *int64
		wantErr     bool
	}{
		{
			name:        "both present",
			consumption: "12.5",
			date:        "2024-03-01",
			wantC:       floatPtr(12.5),
			wantD:       int64Ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()),
		},
		{
			name:        "rfc3339 date",
			consumption: "1",
			date:        "2024-03-01T12:00:00Z",
			wantC:       floatPtr(1),
			wantD:       int64Ptr(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()),
		},
		{name: "both blank", consumption: " ", date: ""},
		{name: "only consumption", consumption: "3", wantC: floatPtr(3)},
		{name: "bad number", consumption: "ten", date: "2024-03-01", wantErr: true},
		{name: "bad date", consumption: "1", date: "03/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReading(tt.consumption, tt.date, time.UTC)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantC, got.Consumption)
			assert.Equal(t, tt.wantD, got.Date)
		})
	}
}

func TestValidateReading(t *testing.T) {
	assert.NoError(t, ValidateReading(NewReading(0, 0)))
	assert.NoError(t, ValidateReading(NewReading(MaxConsumption, 0)))
	assert.ErrorIs(t, ValidateReading(Reading{}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateReading(NewReading(MaxConsumption+1, 0)), ErrInvalidInput)
}

func TestParseSource(t *testing.T) {
	s, err := ParseSource(" Coal ")
	require.NoError(t, err)
	assert.Equal(t, Coal, s)

	s, err = ParseSource("gas")
	require.NoError(t, err)
	assert.Equal(t, Gas, s)

	_, err = ParseSource("oil")
	assert.ErrorIs(t, err, ErrUnknownSource)
	assert.Equal(t, "Source(7)", Source(7).String())
}
