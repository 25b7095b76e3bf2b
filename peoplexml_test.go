package peoplexml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/people-xml/records"
)

const sample = "P|Anna|Karlsson\nF|Bo|2001\nP|Carl|Svensson\nA|Main St|Springfield|12345\n"

func TestConvert_XML(t *testing.T) {
	var out bytes.Buffer
	report, err := Convert(strings.NewReader(sample), &out, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Persons)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<people>
  <person>
    <firstName>Anna</firstName>
    <lastName>Karlsson</lastName>
    <family>
      <name>Bo</name>
      <born>2001</born>
    </family>
  </person>
  <person>
    <firstName>Carl</firstName>
    <lastName>Svensson</lastName>
    <address>
      <street>Main St</street>
      <city>Springfield</city>
      <zip>12345</zip>
    </address>
  </person>
</people>
`
	assert.Equal(t, want, out.String())
}

func TestConvert_UnknownFormat(t *testing.T) {
	_, err := Convert(strings.NewReader(sample), &bytes.Buffer{}, Options{Format: "csv"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	report, err := Validate(strings.NewReader(sample), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.FamilyMembers)

	_, err = Validate(strings.NewReader("A|Main St|Springfield\n"), Options{})
	assert.ErrorIs(t, err, records.ErrMissingParent)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	out := filepath.Join(dir, "xml", "output.xml")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o644))

	report, err := ConvertFile(in, out, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Persons)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "</people>\n"))
}

func TestConvertFile_FailureRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	out := filepath.Join(dir, "output.xml")
	require.NoError(t, os.WriteFile(in, []byte("P|Anna|Karlsson\nF|Bo|abc\n"), 0o644))

	report, err := ConvertFile(in, out, Options{})
	assert.ErrorIs(t, err, records.ErrInvalidBirthYear)
	assert.Nil(t, report)
	assert.NoFileExists(t, out)
}

func TestConvertFile_MissingInput(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "missing.txt"), filepath.Join(t.TempDir(), "out.xml"), Options{})
	assert.ErrorContains(t, err, "opening input")
}
