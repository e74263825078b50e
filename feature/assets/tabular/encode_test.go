package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuoting(t *testing.T) {
	var buf bytes.Buffer

	err := Encode(&buf, []string{"Name", "Notes"}, [][]string{
		{"Srv1", "plain"},
		{"Srv2", "hello, world"},
		{"Srv3", `say "hi"`},
		{"Srv4", "line one\nline two"},
		{"Srv5", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, "Name,Notes\n"+
		"Srv1,plain\n"+
		`Srv2,"hello, world"`+"\n"+
		`Srv3,"say ""hi"""`+"\n"+
		"Srv4,\"line one\nline two\"\n"+
		"Srv5,\n", buf.String())
}

func TestEncodeCommentLeadingField(t *testing.T) {
	header := []string{"Name", "Notes"}
	rows := [][]string{
		{"#1 rack", "22"},
		{" #2 rack", "plain"},
		{"Srv1", "#not a comment"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, header, rows))

	// Only a first field that would read back as a comment line is
	// force-quoted; a '#' in any later field stays bare.
	assert.Equal(t, "Name,Notes\n"+
		`"#1 rack",22`+"\n"+
		`" #2 rack",plain`+"\n"+
		"Srv1,#not a comment\n", buf.String())

	doc, err := Decode(strings.NewReader(buf.String()), Options{})
	require.NoError(t, err)
	require.Len(t, doc.Rows, len(rows))
	for i, row := range rows {
		assert.Equal(t, row[0], doc.Rows[i].Cells[Fold("Name")], "row %d", i)
		assert.Equal(t, row[1], doc.Rows[i].Cells[Fold("Notes")], "row %d", i)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	header := []string{"Name", "Notes", "Private Key"}
	rows := [][]string{
		{"Srv1", "a, b and \"c\"", "-----BEGIN-----\nabc\n-----END-----"},
		{"Srv2", "", "x"},
		{"Srv,3", "trailing space ", " leading"},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, header, rows))

	doc, err := Decode(strings.NewReader(buf.String()), Options{})
	require.NoError(t, err)

	assert.Equal(t, header, doc.Header)
	require.Len(t, doc.Rows, len(rows))
	for i, row := range rows {
		for j, want := range row {
			got := doc.Rows[i].Cells[Fold(header[j])]
			assert.Equal(t, want, got, "row %d column %q", i, header[j])
		}
	}
}
