package blocklist

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmed-ai/species-recognition/lib"
)

var testBlocklist = Blocklist{
	CaseSensitive: map[string]bool{
		"May": true, // month vs. hawthorn genus
	},
	CaseInsensitive: map[string]bool{
		"culture": true,
	},
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{name: "species word allowed", word: "Escherichia coli", want: true},
		{name: "case sensitive blocked", word: "May", want: false},
		{name: "case sensitive other casing allowed", word: "may", want: true},
		{name: "case insensitive blocked", word: "Culture", want: false},
	}
	for _, tt := range tests {
		t.Log(tt.name)
		assert.Equal(t, tt.want, testBlocklist.Allowed(tt.word))
	}
}

func TestFilterPredictions(t *testing.T) {
	predictions := []lib.Prediction{
		{Word: "Escherichia coli", Score: 0.99},
		{Word: "culture", Score: 0.55},
		{Word: "May", Score: 0.41},
	}

	filtered := testBlocklist.FilterPredictions(predictions)

	assert.Len(t, filtered, 1)
	assert.Equal(t, "Escherichia coli", filtered[0].Word)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blocklist.yml")
	content := "case_sensitive:\n  - May\ncase_insensitive:\n  - culture\n  - blood\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(content), os.ModePerm))

	bl, err := Load(path)
	require.NoError(t, err)

	assert.True(t, bl.CaseSensitive["May"])
	assert.True(t, bl.CaseInsensitive["culture"])
	assert.True(t, bl.CaseInsensitive["blood"])
	assert.False(t, bl.Allowed("Blood"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.yml")
	assert.Error(t, err)
}
