package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBanner(t *testing.T) {
	expected := "Usage:\n" +
		"\n" +
		"Switches                 Default  Desc               \n" +
		"--------                 -------  ----               \n" +
		"-p, --port               3000     Listen on this port\n" +
		"--no-verbose, --verbose  false    Print extra output \n"

	p := NewParser(
		Spec{"-p", "--port", "Listen on this port", KeyDefault, 3000, KeyParse, ToInt},
		Spec{"--[no-]verbose", "Print extra output"},
	)

	var buf bytes.Buffer
	p.WriteBanner(&buf)
	assert.Equal(t, expected, buf.String())
}

func TestBannerColumnsShareWidths(t *testing.T) {
	p := NewParser(
		Spec{"--host", "The hostname", KeyDefault, "localhost"},
		Spec{"-p", "--port", "Listen on this port", KeyDefault, 3000, KeyParse, ToInt},
		Spec{"--[no-]verbose"},
	)

	lines := strings.Split(strings.TrimSuffix(p.Banner(), "\n"), "\n")
	require.Greater(t, len(lines), 3)

	// every table row is padded to the same overall width
	rows := lines[2:]
	for _, row := range rows[1:] {
		assert.Len(t, row, len(rows[0]))
	}
}

func TestBannerEmptyDefaultColumn(t *testing.T) {
	p := NewParser(Spec{"--host", "The hostname"})
	banner := p.Banner()
	assert.NotContains(t, banner, "<nil>")
}

func TestBannerDeterministic(t *testing.T) {
	p := NewParser(
		Spec{"-p", "--port", "Listen on this port", KeyDefault, 3000, KeyParse, ToInt},
		Spec{"--[no-]verbose", "Print extra output"},
	)
	assert.Equal(t, p.Banner(), p.Banner())
}
