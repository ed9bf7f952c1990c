package iodb

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/oceandata/argodb/pkg/db"
	"github.com/oceandata/argodb/pkg/errcode"
	"github.com/oceandata/argodb/pkg/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notConnectedCode(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

func TestOperatorNotConnected(t *testing.T) {
	ctx := context.Background()
	op := NewPgxOperator()

	_, err := op.HasTables(ctx)
	notConnectedCode(t, err)

	notConnectedCode(t, op.DropAllTables(ctx))

	_, err = op.InsertProfile(ctx, &profile.Metadata{FloatID: "123"})
	notConnectedCode(t, err)

	_, err = op.InsertMeasurements(ctx, 1, []profile.Measurement{{}})
	notConnectedCode(t, err)

	_, _, err = op.ProfileIDByHash(ctx, "abc")
	notConnectedCode(t, err)

	_, err = op.Profiles(ctx, db.ProfileFilter{})
	notConnectedCode(t, err)

	_, err = op.MeasurementsByProfile(ctx, 1)
	notConnectedCode(t, err)

	_, err = op.Stats(ctx)
	notConnectedCode(t, err)
}

func TestOperatorCloseWithoutConnect(t *testing.T) {
	op := NewPgxOperator()
	assert.NoError(t, op.Close())
	assert.Nil(t, op.Pool())
}

func TestConnectionError(t *testing.T) {
	err := ConnectionError("localhost", 5432, "argo", errors.New("refused"))

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.Contains(t, gnErr.Error(), "localhost:5432/argo")
	assert.Contains(t, gnErr.Error(), "refused")
}

func TestMeasurementChunks(t *testing.T) {
	ms := make([]profile.Measurement, 25)

	tests := []struct {
		name  string
		size  int
		wants []int
	}{
		{"even split", 5, []int{5, 5, 5, 5, 5}},
		{"remainder chunk", 10, []int{10, 10, 5}},
		{"single chunk", 100, []int{25}},
		{"zero size falls back to one chunk", 0, []int{25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := measurementChunks(ms, tt.size)
			require.Len(t, chunks, len(tt.wants))
			for i, want := range tt.wants {
				assert.Len(t, chunks[i], want)
			}
		})
	}
}

func TestMeasurementRow(t *testing.T) {
	m := profile.Measurement{
		Pressure:    profile.Float(100),
		Depth:       profile.Float(99),
		Temperature: profile.Float(10.5),
		QualityFlag: profile.QualityGood,
	}

	row := measurementRow(42, m)
	require.Len(t, row, len(measurementColumns))

	assert.Equal(t, int64(42), row[0])
	assert.Equal(t, profile.Float(100), row[1])
	assert.Equal(t, profile.Float(99), row[2])
	assert.Equal(t, profile.Float(10.5), row[3])
	// unmeasured fields stay NULL
	assert.Nil(t, row[4])
	assert.Equal(t, profile.QualityGood, row[len(row)-1])
}
