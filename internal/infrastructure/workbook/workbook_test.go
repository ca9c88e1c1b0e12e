package workbook

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadSheet(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf,
		Sheet{
			Name:    "Users",
			Headers: []string{"Name", "Username", "Password"},
			Rows: [][]string{
				{"Alice", "alice", "secret"},
				{"", "bob"},
			},
		},
		Sheet{
			Name:    "Cards",
			Headers: []string{"Card ID", "Photo ID"},
			Rows:    [][]string{{"01FC05", "FotosCavet00005"}},
		},
	)
	require.NoError(t, err)

	users, err := ReadSheet(bytes.NewReader(buf.Bytes()), "Users", 3)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Alice", "alice", "secret"},
		{"", "bob", ""},
	}, users)

	cards, err := ReadSheet(bytes.NewReader(buf.Bytes()), "Cards", 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"01FC05", "FotosCavet00005"}}, cards)
}

func TestReadSheet_Missing(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Sheet{Name: "Cards", Headers: []string{"Card ID"}}))

	_, err := ReadSheet(bytes.NewReader(buf.Bytes()), "Users", 5)
	assert.Error(t, err)

	rows, err := ReadSheet(bytes.NewReader(buf.Bytes()), "Cards", 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWrite_NoSheets(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf))
}

func TestReadSheet_NotAWorkbook(t *testing.T) {
	_, err := ReadSheet(bytes.NewReader([]byte("plain text")), "Users", 5)
	assert.Error(t, err)
}
