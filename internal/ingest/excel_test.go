package ingest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Girder/internal/statics"
)

// workbook builds an in-memory xlsx with the given header and data rows.
func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &rows[i]))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadLoads(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Load Type", "Magnitude (kN)", "Position (m)", "Start Position (m)", "End Position (m)"},
		[]interface{}{"Point", 10.0, 5.0, nil, nil},
		[]interface{}{"UDL", 6.0, nil, 0.0, 15.0},
	)

	loads, table, err := ReadLoads(buf)
	require.NoError(t, err)
	require.Len(t, loads, 2)

	assert.Equal(t, statics.PointLoad{Magnitude: 10, Position: 5}, loads[0])
	assert.Equal(t, statics.DistributedLoad{Intensity: 6, Start: 0, End: 15}, loads[1])
	assert.Len(t, table.Rows, 2)
}

func TestReadLoadsHeaderNormalization(t *testing.T) {
	// Lowercase headers without unit suffixes are accepted too.
	buf := workbook(t,
		[]interface{}{"load type", "magnitude", "position", "start position", "end position"},
		[]interface{}{"point load", 12.5, 3.0, nil, nil},
	)

	loads, _, err := ReadLoads(buf)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, statics.PointLoad{Magnitude: 12.5, Position: 3}, loads[0])
}

func TestReadLoadsPositionFallbacks(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Load Type", "Magnitude (kN)", "Position (m)", "Start Position (m)", "End Position (m)"},
		// Point load with its position in the start column.
		[]interface{}{"Point", 8.0, nil, 2.5, nil},
		// UDL with its start in the position column.
		[]interface{}{"UDL", 4.0, 1.0, nil, 6.0},
	)

	loads, _, err := ReadLoads(buf)
	require.NoError(t, err)
	require.Len(t, loads, 2)

	assert.Equal(t, statics.PointLoad{Magnitude: 8, Position: 2.5}, loads[0])
	assert.Equal(t, statics.DistributedLoad{Intensity: 4, Start: 1, End: 6}, loads[1])
}

func TestReadLoadsSkipsBadRows(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Load Type", "Magnitude (kN)", "Position (m)", "Start Position (m)", "End Position (m)"},
		[]interface{}{"Moment", 5.0, 1.0, nil, nil},  // unknown type
		[]interface{}{"Point", "abc", 1.0, nil, nil}, // unparseable magnitude
		[]interface{}{"Point", 5.0, nil, nil, nil},   // no position at all
		[]interface{}{"UDL", 3.0, nil, 2.0, nil},     // missing end
		[]interface{}{"Point", 5.0, 4.0, nil, nil},   // the one good row
	)

	loads, table, err := ReadLoads(buf)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, statics.PointLoad{Magnitude: 5, Position: 4}, loads[0])
	assert.Len(t, table.Rows, 5, "raw table keeps every row")
}

func TestReadLoadsMissingColumns(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Name", "Value"},
		[]interface{}{"something", 1.0},
	)

	_, _, err := ReadLoads(buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load type")
}

func TestReadLoadsEmptySheet(t *testing.T) {
	buf := workbook(t,
		[]interface{}{"Load Type", "Magnitude (kN)"},
	)

	_, _, err := ReadLoads(buf)
	require.Error(t, err)
}

func TestWriteSampleRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSampleTo(&buf))

	loads, _, err := ReadLoads(&buf)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, statics.DistributedLoad{Intensity: 6, Start: 0, End: 15}, loads[0])
}
