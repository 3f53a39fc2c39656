package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"jobscout/internal/config"
	"jobscout/internal/llm/processors"
	"jobscout/internal/logging"
	"jobscout/pkg/models"
)

// ClaudeAdvisor implements the advisor provider interface using
// Anthropic's Claude
type ClaudeAdvisor struct {
	client      anthropic.Client
	config      *config.Config
	htmlCleaner *processors.HTMLCleaner
	logger      logging.Logger
}

// NewClaudeAdvisor creates a new Claude advisor instance
func NewClaudeAdvisor(cfg *config.Config) *ClaudeAdvisor {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.Advisor.APIKey),
	)

	return &ClaudeAdvisor{
		client:      client,
		config:      cfg,
		htmlCleaner: processors.NewHTMLCleaner(),
		logger:      logging.GetGlobalLogger(),
	}
}

// DecideCareersAction analyzes careers-page HTML and returns Claude's
// recommendation for reaching actual job listings.
func (ca *ClaudeAdvisor) DecideCareersAction(ctx context.Context, html, jobTitle string) (*models.AdvisorDecision, error) {
	startTime := time.Now()

	ca.logger.Info("Requesting careers-page decision from Claude", map[string]interface{}{
		"job_title":   jobTitle,
		"html_length": len(html),
		"provider":    "claude",
	})

	condensed, err := ca.htmlCleaner.CondenseCareersHTML(html, ca.config.Advisor.MaxHTMLSize)
	if err != nil {
		return nil, fmt.Errorf("failed to clean HTML: %w", err)
	}

	prompt := ca.buildDecisionPrompt(condensed, jobTitle)

	response, err := ca.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(ca.config.Advisor.Model),
		MaxTokens:   int64(ca.config.Advisor.MaxTokens),
		Temperature: anthropic.Float(float64(ca.config.Advisor.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	decision, err := ca.parseDecisionResponse(response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response: %w", err)
	}

	ca.logger.Info("Careers-page decision received", map[string]interface{}{
		"action":          decision.Action,
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return decision, nil
}

// buildDecisionPrompt creates the prompt asking Claude to pick a
// navigation action for a careers page.
func (ca *ClaudeAdvisor) buildDecisionPrompt(content, jobTitle string) string {
	return fmt.Sprintf(`You are a careers-page navigator. We are looking for a job posting titled "%s". Analyze the careers page markup below and decide the single best next action. Return a JSON object with exactly these fields:

{
  "action": "string - one of: use_search, navigate_to_link, extract_jobs_current_page",
  "target_url": "string - the href to follow when action is navigate_to_link, otherwise empty",
  "search_term": "string - the term to type when action is use_search, otherwise empty",
  "reasoning": "string - one short sentence explaining the choice"
}

ACTION GUIDE:
1. use_search - the page has a job search box and searching is the fastest route to the posting
2. navigate_to_link - a specific link (open positions, job board, vacancies) leads to the listings
3. extract_jobs_current_page - individual job postings are already visible on this page

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. target_url must be an href that literally appears in the markup
3. Prefer extract_jobs_current_page when listings are already visible

CAREERS PAGE MARKUP:
%s`, jobTitle, content)
}

// parseDecisionResponse parses the Claude API response into a decision
func (ca *ClaudeAdvisor) parseDecisionResponse(response *anthropic.Message) (*models.AdvisorDecision, error) {
	if len(response.Content) == 0 {
		return nil, fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in Claude response")
	}

	// Strip markdown code fences if present
	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	var decision models.AdvisorDecision
	if err := json.Unmarshal([]byte(responseText), &decision); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response from Claude: %w, response: %s", err, responseText)
	}

	return &decision, nil
}

// IsHealthy checks if the Claude advisor is healthy and available
func (ca *ClaudeAdvisor) IsHealthy(ctx context.Context) error {
	if ca.config.Advisor.APIKey == "" {
		return fmt.Errorf("Claude API key not configured, set ADVISOR_API_KEY environment variable")
	}

	_, err := ca.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(ca.config.Advisor.Model),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the advisor provider
func (ca *ClaudeAdvisor) GetProviderName() string {
	return "claude"
}
