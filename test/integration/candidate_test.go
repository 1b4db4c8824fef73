package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"talentscout_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type candidateView struct {
	ID             uint   `json:"id"`
	TaskID         uint   `json:"task_id"`
	Name           string `json:"name"`
	Age            *int   `json:"age"`
	AIScore        *int   `json:"ai_score"`
	SourcePlatform string `json:"source_platform"`
}

func addCandidate(t *testing.T, ts *helpers.TestServer, token string, taskID uint, name string) {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/candidates", taskID), token, map[string]interface{}{
		"name":            name,
		"source_platform": "linkedin",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
}

func listCandidates(t *testing.T, ts *helpers.TestServer, token string, taskID uint, query string) []candidateView {
	t.Helper()
	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d/candidates%s", taskID, query), token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var out []candidateView
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestAddCandidate_FullPayload(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "cand_full")
	taskID := helpers.CreateTask(t, ts, token, "Full Payload Task")

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/candidates", taskID), token, map[string]interface{}{
		"name":            "张三",
		"gender":          "male",
		"age":             29,
		"contact":         "zhangsan@test.com",
		"education":       "Bachelor",
		"experience":      "5 years backend",
		"ai_score":        77,
		"source_platform": "boss",
		"resume_text":     "Go, PostgreSQL, Redis",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var got candidateView
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "张三", got.Name)
	assert.Equal(t, taskID, got.TaskID)
	require.NotNil(t, got.Age)
	assert.Equal(t, 29, *got.Age)
	require.NotNil(t, got.AIScore)
	assert.Equal(t, 77, *got.AIScore)
}

func TestAddCandidate_OptionalFieldsStayNull(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "cand_min")
	taskID := helpers.CreateTask(t, ts, token, "Minimal Task")

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/candidates", taskID), token, map[string]interface{}{
		"name":            "Minimal",
		"source_platform": "referral",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var got candidateView
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Nil(t, got.Age)
	assert.Nil(t, got.AIScore)
}

func TestAddCandidate_MissingRequiredFields(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "cand_bad")
	taskID := helpers.CreateTask(t, ts, token, "Validation Task")

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/candidates", taskID), token, map[string]interface{}{
		"name": "No Platform",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Validation failed")
}

func TestBatchCandidates_PreservesOrder(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "batch_user")
	taskID := helpers.CreateTask(t, ts, token, "Batch Task")

	batch := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"name": "First", "source_platform": "boss"},
			{"name": "Second", "source_platform": "boss"},
			{"name": "Third", "source_platform": "boss"},
		},
	}
	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/candidates/batch", taskID), token, batch)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created []candidateView
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.Len(t, created, 3)
	assert.Equal(t, "First", created[0].Name)
	assert.Equal(t, "Second", created[1].Name)
	assert.Equal(t, "Third", created[2].Name)

	listed := listCandidates(t, ts, token, taskID, "")
	require.Len(t, listed, 3)
	assert.Equal(t, "First", listed[0].Name)
	assert.Equal(t, "Third", listed[2].Name)
}

func TestBatchCandidates_EmptyRejected(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "batch_empty")
	taskID := helpers.CreateTask(t, ts, token, "Empty Batch Task")

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/candidates/batch", taskID), token, map[string]interface{}{
		"candidates": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Validation failed")
}

func TestListCandidates_Pagination(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "page_user")
	taskID := helpers.CreateTask(t, ts, token, "Paged Task")

	for i := 0; i < 5; i++ {
		addCandidate(t, ts, token, taskID, fmt.Sprintf("Candidate %d", i))
	}

	page := listCandidates(t, ts, token, taskID, "?skip=1&limit=2")
	require.Len(t, page, 2)
	assert.Equal(t, "Candidate 1", page[0].Name)
	assert.Equal(t, "Candidate 2", page[1].Name)

	rest := listCandidates(t, ts, token, taskID, "?skip=4&limit=100")
	require.Len(t, rest, 1)
	assert.Equal(t, "Candidate 4", rest[0].Name)

	beyond := listCandidates(t, ts, token, taskID, "?skip=50")
	assert.Empty(t, beyond)
}

func TestListCandidates_BoundsEnforced(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)
	token := helpers.RegisterAndLogin(t, ts, "bounds_user")
	taskID := helpers.CreateTask(t, ts, token, "Bounds Task")

	for _, query := range []string{"?limit=0", "?limit=101", "?skip=-1"} {
		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d/candidates%s", taskID, query), token, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "query %s: %s", query, body)
		assert.Contains(t, body, "Validation failed")
	}
}
