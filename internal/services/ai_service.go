package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"talentscout_backend/internal/models"
	"talentscout_backend/internal/repositories"
	"talentscout_backend/internal/services/dto"
	"talentscout_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Completer is the outbound LLM call: one system-framed chat completion,
// returning the reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const (
	scoreLabel    = "分数："
	analysisLabel = "分析："

	systemPrompt = "你是一个专业的招聘顾问，擅长评估候选人与职位的匹配度。"

	promptTemplate = `请根据以下职位描述评估候选人简历，给出0-100的匹配分数和简要分析：

职位描述：
%s

候选人简历：
%s

请给出以下格式的回复：
分数：[0-100之间的数字]
分析：[简要分析候选人与职位的匹配度，不超过200字]`

	apiKeyTTL = time.Hour
)

type AIService interface {
	// ScoreResume asks the model to rate a resume against a job description.
	// It never writes to storage; attaching the score to a candidate is the
	// caller's decision.
	ScoreResume(ctx context.Context, req *dto.ResumeScoreRequest) (*dto.ResumeScoreResponse, error)
	// IssueKey returns a handle to the user's cached provider key, minting a
	// fresh one-hour record when none is currently valid.
	IssueKey(db *gorm.DB, userID uint) (*dto.APIKeyResponse, error)
}

type AIServiceImpl struct {
	keyRepo     repositories.APIKeyRepository
	completer   Completer
	providerKey string
}

func NewAIService(keyRepo repositories.APIKeyRepository, completer Completer, providerKey string) AIService {
	return &AIServiceImpl{
		keyRepo:     keyRepo,
		completer:   completer,
		providerKey: providerKey,
	}
}

func (s *AIServiceImpl) ScoreResume(ctx context.Context, req *dto.ResumeScoreRequest) (*dto.ResumeScoreResponse, error) {
	prompt := fmt.Sprintf(promptTemplate, req.JobDescription, req.ResumeText)

	reply, err := s.completer.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, apperrors.UpstreamServiceError(err)
	}

	score, analysis := parseScoreReply(reply)
	return &dto.ResumeScoreResponse{
		Score:    score,
		Analysis: analysis,
	}, nil
}

// parseScoreReply extracts the labeled score and analysis lines. Parsing is
// best-effort: a missing or non-numeric score degrades to 0, a missing
// analysis falls back to the whole reply.
func parseScoreReply(reply string) (int, string) {
	reply = strings.TrimSpace(reply)
	lines := strings.Split(reply, "\n")

	score := 0
	analysis := ""
	foundAnalysis := false

	for _, line := range lines {
		if strings.HasPrefix(line, scoreLabel) {
			if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, scoreLabel))); err == nil {
				score = n
			}
			break
		}
	}

	for _, line := range lines {
		if strings.HasPrefix(line, analysisLabel) {
			analysis = strings.TrimSpace(strings.TrimPrefix(line, analysisLabel))
			foundAnalysis = true
			break
		}
	}

	if foundAnalysis {
		if analysis == "" && len(lines) > 1 {
			analysis = reply
		}
	} else {
		analysis = reply
	}

	return score, analysis
}

func (s *AIServiceImpl) IssueKey(db *gorm.DB, userID uint) (*dto.APIKeyResponse, error) {
	now := time.Now()

	key, err := s.keyRepo.FindValidByUser(db, userID, now)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrAPIKeyNotFound) {
			return nil, apperrors.InternalError(err)
		}

		key = &models.ApiKey{
			UserID:     userID,
			ApiKey:     s.providerKey,
			ValidUntil: now.Add(apiKeyTTL),
		}
		if err := s.keyRepo.Create(db, key); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	// The handle references the row; the provider secret stays server-side.
	return &dto.APIKeyResponse{
		TempToken:  strconv.FormatUint(uint64(key.ID), 10),
		ValidUntil: key.ValidUntil,
	}, nil
}
