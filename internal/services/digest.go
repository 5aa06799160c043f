package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/vickhardth/site-pulse-api/internal/dto"
)

// DigestService produces a short natural-language summary of recent activity for
// supervisors. It is optional: without an API key the service stays nil and the
// endpoint reports unavailable.
type DigestService struct {
	client *openai.Client
}

func NewDigestService(apiKey string) *DigestService {
	return &DigestService{
		client: openai.NewClient(apiKey),
	}
}

// SummarizeActivities turns a slice of recent activities into a brief digest.
func (s *DigestService) SummarizeActivities(ctx context.Context, activities []dto.ActivityDTO) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	var sb strings.Builder
	for _, a := range activities {
		problem := ""
		if a.ProblemFaced != nil && *a.ProblemFaced != "" {
			problem = fmt.Sprintf("; problem: %s", *a.ProblemFaced)
		}
		fmt.Fprintf(&sb, "- [%s] %s on project %s (%s): %s%s\n",
			a.ReportType, a.Username, a.ProjectNo, a.ReportDate, a.DailyTargetAchieved, problem)
	}

	prompt := fmt.Sprintf(`You are an operations assistant for a field engineering team.
Summarize the following activity reports in at most five sentences for a manager.
Highlight unresolved problems and anyone who needed online support. Reply with plain
text only.

Reports:
%s`, sb.String())

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
