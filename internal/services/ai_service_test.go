package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"talentscout_backend/internal/models"
	"talentscout_backend/internal/repositories"
	"talentscout_backend/internal/services/dto"
	"talentscout_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return s.reply, s.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ApiKey{}, &models.Task{}, &models.Candidate{}))
	return db
}

func TestScoreResume_ParsesLabeledReply(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		wantScore    int
		wantAnalysis string
	}{
		{
			name:         "labeled score and analysis",
			reply:        "分数：85\n分析：候选人与职位高度匹配。",
			wantScore:    85,
			wantAnalysis: "候选人与职位高度匹配。",
		},
		{
			name:         "surrounding whitespace",
			reply:        "  分数：60\n分析：一般匹配。\n",
			wantScore:    60,
			wantAnalysis: "一般匹配。",
		},
		{
			name:         "non-numeric score degrades to zero",
			reply:        "分数：abc",
			wantScore:    0,
			wantAnalysis: "分数：abc",
		},
		{
			name:         "unlabeled reply passes through verbatim",
			reply:        "The candidate looks fine to me.",
			wantScore:    0,
			wantAnalysis: "The candidate looks fine to me.",
		},
		{
			name:         "empty analysis label falls back to full reply",
			reply:        "分数：70\n分析：",
			wantScore:    70,
			wantAnalysis: "分数：70\n分析：",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAIService(repositories.NewAPIKeyRepository(), &stubCompleter{reply: tt.reply}, "sk-test")

			got, err := svc.ScoreResume(context.Background(), &dto.ResumeScoreRequest{
				JobDescription: "Backend engineer",
				ResumeText:     "5 years of Go",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantAnalysis, got.Analysis)
		})
	}
}

func TestScoreResume_UpstreamFailure(t *testing.T) {
	svc := NewAIService(repositories.NewAPIKeyRepository(), &stubCompleter{err: errors.New("connection refused")}, "sk-test")

	_, err := svc.ScoreResume(context.Background(), &dto.ResumeScoreRequest{
		JobDescription: "Backend engineer",
		ResumeText:     "5 years of Go",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode)
	assert.Contains(t, appErr.Message, "Error calling AI service")
	assert.Contains(t, appErr.Message, "connection refused")
}

func TestIssueKey_MintsAndReuses(t *testing.T) {
	db := newTestDB(t)
	svc := NewAIService(repositories.NewAPIKeyRepository(), &stubCompleter{}, "sk-provider")

	first, err := svc.IssueKey(db, 1)
	require.NoError(t, err)
	assert.NotEmpty(t, first.TempToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), first.ValidUntil, 5*time.Second)

	// A second request within the hour returns the same record.
	second, err := svc.IssueKey(db, 1)
	require.NoError(t, err)
	assert.Equal(t, first.TempToken, second.TempToken)

	var count int64
	require.NoError(t, db.Model(&models.ApiKey{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIssueKey_ExpiredRecordIsSuperseded(t *testing.T) {
	db := newTestDB(t)
	svc := NewAIService(repositories.NewAPIKeyRepository(), &stubCompleter{}, "sk-provider")

	expired := &models.ApiKey{
		UserID:     2,
		ApiKey:     "sk-provider",
		ValidUntil: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(expired).Error)

	got, err := svc.IssueKey(db, 2)
	require.NoError(t, err)
	assert.True(t, got.ValidUntil.After(time.Now()))

	var count int64
	require.NoError(t, db.Model(&models.ApiKey{}).Where("user_id = ?", 2).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestIssueKey_PerUserIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAIService(repositories.NewAPIKeyRepository(), &stubCompleter{}, "sk-provider")

	a, err := svc.IssueKey(db, 10)
	require.NoError(t, err)
	b, err := svc.IssueKey(db, 11)
	require.NoError(t, err)

	assert.NotEqual(t, a.TempToken, b.TempToken)
}
