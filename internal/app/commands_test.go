package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/checklist/internal/rules"
)

func TestRunPreview(t *testing.T) {
	globalLogger = zerolog.Nop()

	t.Run("Should print the previewed tasks", func(t *testing.T) {
		var out bytes.Buffer
		err := runPreview(strings.NewReader(`{"will_status": "No"}`), &out, "")
		require.NoError(t, err)

		var got struct {
			Flow  string `json:"flow"`
			Tasks []struct {
				Title    string `json:"title"`
				Category string `json:"category"`
			} `json:"tasks"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, "planning_ahead", got.Flow)
		require.NotEmpty(t, got.Tasks)

		var titles []string
		for _, task := range got.Tasks {
			titles = append(titles, task.Title)
			assert.NotEmpty(t, task.Category)
		}
		assert.Contains(t, titles, rules.TitleEstateAttorney)
	})

	t.Run("Should honour the flow flag", func(t *testing.T) {
		var out bytes.Buffer
		err := runPreview(strings.NewReader(`{}`), &out, "recent_loss")
		require.NoError(t, err)
		assert.Contains(t, out.String(), rules.TitleDeathCertificate)
	})

	t.Run("Should reject unknown flows", func(t *testing.T) {
		err := runPreview(strings.NewReader(`{}`), &bytes.Buffer{}, "someday")
		assert.ErrorContains(t, err, "unknown flow type")
	})

	t.Run("Should preview anchor tasks for malformed answers", func(t *testing.T) {
		var out bytes.Buffer
		err := runPreview(strings.NewReader(`[`), &out, "")
		require.NoError(t, err)
		assert.Contains(t, out.String(), `"flow": "recent_loss"`)
		assert.Contains(t, out.String(), rules.TitleDeathCertificate)
	})
}

func TestRunRulesCheck(t *testing.T) {
	globalLogger = zerolog.Nop()

	t.Run("Should pass against the built-in vocabulary", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runRulesCheck(&out, rules.BuiltinVocabulary()))
		assert.JSONEq(t, `[]`, out.String())
	})

	t.Run("Should report unknown keys", func(t *testing.T) {
		var out bytes.Buffer
		err := runRulesCheck(&out, rules.Vocabulary{})
		assert.ErrorIs(t, err, errVocabularyMismatch)

		var mismatches []rules.Mismatch
		require.NoError(t, json.Unmarshal(out.Bytes(), &mismatches))
		assert.NotEmpty(t, mismatches)
	})
}
