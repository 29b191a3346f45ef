package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/wardaashahid/biosync-api/internal/domain"
)

var (
	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
	// ErrLLMRequest indicates an error during the LLM API request.
	ErrLLMRequest = errors.New("LLM request failed")
	// ErrLLMResponse indicates an error parsing the LLM response.
	ErrLLMResponse = errors.New("failed to parse LLM response")
)

const defaultSystemPrompt = `You are BioSync, a non-diagnostic AI health assistant.

You receive a JSON snapshot of a single user: their profile (age, gender, height, chronic-condition notes), their family-history risk flags, their latest logged day of biometrics, a short history window, and a computed BMI with its band.

Your goals:
- Describe the user's day in clear, empathetic, neutral language.
- Weigh current metrics against the family-history risks (e.g. heart rate and activity against a heart-disease history).
- Be concrete: reference the actual numbers you were given.

Rules:
- Do NOT diagnose, prescribe, or mention treatment.
- Base every conclusion only on the provided data.
- If the history is short or mixed, say so explicitly.`

const analysisPromptTemplate = `Here is the JSON snapshot of the user's current state.

- "profile" holds identity, height and the family-history flags.
- "latest" is today's entry; "history" is the last few entries oldest first.
- "bmi" is computed from the latest weight and the profile height.
- "active_risks" lists the flagged family-history conditions.

JSON:

%s

Respond as strict JSON with exactly this shape:

{
  "wellness_score": <integer 0-100 judged from the data>,
  "summary": "2-4 sentences analyzing the day, highlighting risks from family history and current metrics.",
  "recommendation": "one specific, actionable, non-medical suggestion tailored to these numbers."
}

No extra fields. No comments. No backticks.`

const recipePromptTemplate = `Create a healthy, delicious recipe for a user with the following context.

- Preference/Craving: %s
- The JSON snapshot below holds their BMI and family-history risk flags.

JSON:

%s

The recipe must be specifically tailored to mitigate the flagged risks (e.g. low sodium for a hypertension history, low sugar for a diabetes history).

Respond as strict JSON with exactly this shape:

{
  "name": "recipe name",
  "benefit": "why this is good for them given BMI and flagged risks",
  "ingredients": ["ingredient with quantity", ...],
  "instructions": ["brief step", ...],
  "calories": <approximate integer kilocalories per serving>
}

No extra fields. No comments. No backticks.`

// RecipeContext pairs the user snapshot with the free-text craving.
type RecipeContext struct {
	Snapshot   domain.HealthSnapshot `json:"snapshot"`
	Preference string                `json:"preference"`
}

// HealthLLM is the interface for the external text-generation collaborator.
// The core supplies a read-only snapshot and takes back structured output;
// it never re-validates or re-parses the collaborator's free text.
type HealthLLM interface {
	// GenerateAnalysis produces the daily wellness analysis.
	GenerateAnalysis(ctx context.Context, snapshot *domain.HealthSnapshot) (*domain.WellnessAnalysis, error)
	// GenerateRecipe produces a risk-tailored recipe.
	GenerateRecipe(ctx context.Context, rc *RecipeContext) (*domain.Recipe, error)
}

// OpenAIClient implements HealthLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	coachModel   string
	recipeModel  string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client. Returns nil if apiKey is
// empty. systemPrompt overrides the built-in system prompt when non-empty
// (e.g. a Langfuse-managed prompt).
func NewOpenAIClient(apiKey, coachModel, recipeModel, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if coachModel == "" {
		coachModel = "gpt-4o-mini"
	}
	if recipeModel == "" {
		recipeModel = coachModel
	}
	if systemPrompt == "" {
		systemPrompt = defaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		coachModel:   coachModel,
		recipeModel:  recipeModel,
		systemPrompt: systemPrompt,
	}
}

// GenerateAnalysis calls the LLM for the daily wellness analysis.
func (c *OpenAIClient) GenerateAnalysis(ctx context.Context, snapshot *domain.HealthSnapshot) (*domain.WellnessAnalysis, error) {
	if c == nil {
		return nil, ErrLLMUnavailable
	}

	snapshotJSON, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize snapshot: %v", ErrLLMRequest, err)
	}

	userPrompt := fmt.Sprintf(analysisPromptTemplate, string(snapshotJSON))

	content, err := c.complete(ctx, c.coachModel, userPrompt)
	if err != nil {
		return nil, err
	}

	var output domain.WellnessAnalysis
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMResponse, err)
	}
	return &output, nil
}

// GenerateRecipe calls the LLM for a risk-tailored recipe.
func (c *OpenAIClient) GenerateRecipe(ctx context.Context, rc *RecipeContext) (*domain.Recipe, error) {
	if c == nil {
		return nil, ErrLLMUnavailable
	}

	snapshotJSON, err := json.MarshalIndent(rc.Snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize snapshot: %v", ErrLLMRequest, err)
	}

	userPrompt := fmt.Sprintf(recipePromptTemplate, rc.Preference, string(snapshotJSON))

	content, err := c.complete(ctx, c.recipeModel, userPrompt)
	if err != nil {
		return nil, err
	}

	var output domain.Recipe
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLMResponse, err)
	}
	return &output, nil
}

func (c *OpenAIClient) complete(ctx context.Context, model, userPrompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLLMRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrLLMResponse)
	}
	return resp.Choices[0].Message.Content, nil
}
