package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"talentscout_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreResume_HappyPath(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "ai_score")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/ai/score-resume", token, map[string]interface{}{
		"job_description": "Backend engineer, Go",
		"resume_text":     "5 years of Go and PostgreSQL",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got struct {
		Score    int    `json:"score"`
		Analysis string `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, 88, got.Score)
	assert.Equal(t, "候选人与职位匹配度较高。", got.Analysis)
}

func TestScoreResume_UnlabeledReply(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServerWithAI(t, func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteCompletionReply(w, "Looks like a reasonable fit.")
	})
	token := helpers.RegisterAndLogin(t, ts, "ai_unlabeled")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/ai/score-resume", token, map[string]interface{}{
		"job_description": "Backend engineer",
		"resume_text":     "resume",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var got struct {
		Score    int    `json:"score"`
		Analysis string `json:"analysis"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Zero(t, got.Score)
	assert.Equal(t, "Looks like a reasonable fit.", got.Analysis)
}

func TestScoreResume_UpstreamDown(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServerWithAI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	token := helpers.RegisterAndLogin(t, ts, "ai_down")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/ai/score-resume", token, map[string]interface{}{
		"job_description": "Backend engineer",
		"resume_text":     "resume",
	})

	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Contains(t, body, "Error calling AI service")
}

func TestScoreResume_RequiresAuth(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/ai/score-resume", "", map[string]interface{}{
		"job_description": "x",
		"resume_text":     "y",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestScoreResume_MissingFields(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "ai_invalid")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/ai/score-resume", token, map[string]interface{}{
		"job_description": "only one field",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Validation failed")
}

func TestGetAIKey_MintsAndReuses(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "ai_key")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/ai/key", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var first struct {
		TempToken  string    `json:"temp_token"`
		ValidUntil time.Time `json:"valid_until"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &first))
	assert.NotEmpty(t, first.TempToken)
	assert.True(t, first.ValidUntil.After(time.Now()))

	// The provider secret never leaves the server.
	assert.NotContains(t, body, "sk-test-provider-key")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/ai/key", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var second struct {
		TempToken string `json:"temp_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &second))
	assert.Equal(t, first.TempToken, second.TempToken)
}
