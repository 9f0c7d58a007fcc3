package tabular

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	data := "\xEF\xBB\xBFFirst Name, Last Name,Status,2:00 pm Jan 30\n" +
		"Ada,Lovelace,Active,1\n" +
		"\n" +
		"Grace,Hopper,Pending\n" +
		",,,\n"
	table, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []string{"First Name", "Last Name", "Status", "2:00 pm Jan 30"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "1", table.Cell(0, 3))
	assert.Equal(t, "", table.Cell(1, 3), "short rows read as empty cells")
	assert.Equal(t, 2, table.Column("status"))
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrEmpty))
	_, err = ReadCSV(strings.NewReader("a,\"b\n"))
	assert.Error(t, err)
}

func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadXLSX(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"Time", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		{"9:00 am", "Ada Lovelace", "", "", "", "", ""},
	})
	table, err := ReadXLSX(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "Time", table.Headers[0])
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Ada Lovelace", table.Cell(0, 1))

	_, err = ReadXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestReadDetectsFormat(t *testing.T) {
	data := xlsxBytes(t, [][]any{{"First Name", "Last Name", "Status", "5:00 pm"}})
	table, err := Read("upload.bin", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, table.Headers, 4)

	table, err = Read("roster.csv", strings.NewReader("Time,Monday\n9:00 am,Ada\n"))
	require.NoError(t, err)
	assert.Equal(t, "Ada", table.Cell(0, 1))

	assert.Equal(t, FormatXLSX, DetectFormat("a.XLSX", nil))
	assert.Equal(t, FormatCSV, DetectFormat("", []byte("Time,Monday")))
}
