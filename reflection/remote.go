package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"
	"github.com/sony/gobreaker"
)

// RemoteReflection is the structured payload an upstream model returns.
type RemoteReflection struct {
	Mirror   string   `json:"mirror" jsonschema:"title=Mirror,description=Two to four empathetic sentences reflecting the entry back"`
	Question string   `json:"question" jsonschema:"title=Question,description=One open-ended follow-up question"`
	Nudges   []string `json:"nudges" jsonschema:"title=Nudges,description=Up to three short gentle suggestions"`
}

// RemoteReflector is anything that can produce a reflection over the
// network. The engine treats every failure as a cue to fall back.
type RemoteReflector interface {
	Reflect(ctx context.Context, prompt string) (RemoteReflection, error)
}

const remoteReflectorPrompt = `You are a warm, grounded journaling companion. You will receive a journal entry and optionally a few remembered details about the writer. Reflect the entry back in 2-4 empathetic sentences, ask one open-ended question, and offer up to three short, gentle suggestions. Never diagnose, never lecture, never use clinical language. Respond only with the requested JSON.`

var reflectionSchema = generateSchema[RemoteReflection]()

// OpenAIReflector calls the Responses API with a strict JSON schema.
// A circuit breaker sits in front so a struggling upstream degrades to
// local reflections quickly instead of making every entry wait out a
// timeout.
type OpenAIReflector struct {
	client  *openai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
}

func NewOpenAIReflector(client *openai.Client, model string) *OpenAIReflector {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openai-reflect",
		MaxRequests: 2,
		Interval:    60 * time.Second,
		Timeout:     90 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 3 && counts.ConsecutiveFailures >= 3
		},
	})
	return &OpenAIReflector{client: client, model: model, breaker: cb}
}

func (r *OpenAIReflector) Reflect(ctx context.Context, prompt string) (RemoteReflection, error) {
	if r.client == nil {
		return RemoteReflection{}, errors.New("openAIReflector: client is nil")
	}
	if r.model == "" {
		return RemoteReflection{}, errors.New("openAIReflector: model is empty")
	}

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "Reflection",
			Schema:      reflectionSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Journal reflection JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           r.model,
		MaxOutputTokens: openai.Int(600),
		Instructions:    openai.String(remoteReflectorPrompt),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	result, err := r.breaker.Execute(func() (any, error) {
		return callWithRetry(ctx, r.client, params)
	})
	if err != nil {
		return RemoteReflection{}, err
	}
	resp := result.(*responses.Response)

	var out RemoteReflection
	if err := decodeModelJSON(resp.OutputText(), &out); err != nil {
		return RemoteReflection{}, fmt.Errorf("unmarshal reflection: %w", err)
	}
	out.Mirror = strings.TrimSpace(out.Mirror)
	out.Question = strings.TrimSpace(out.Question)
	return out, nil
}

func callWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 2
	waitTimes := []time.Duration{2 * time.Second, 5 * time.Second}

	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err != nil {
			if isRetryableError(err) && attempt < maxRetries-1 {
				select {
				case <-time.After(waitTimes[attempt]):
					continue
				case <-ctx.Done():
					return nil, ctx.Err()
				}
			}
			return nil, err
		}
		return resp, nil
	}
	return nil, fmt.Errorf("failed after %d attempts due to OpenAI API issues", maxRetries)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "500") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "server_error")
}

// decodeModelJSON unmarshals JSON from a model response, with a small amount of robustness
// for cases where the model wraps the JSON in extra text or returns leading/trailing whitespace.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}

	// Fast path: valid JSON as-is.
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	// Fallback: attempt to extract the first top-level JSON object.
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	sub := s[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON (len=%d): %w", len(sub), err)
	}
	return nil
}

func generateSchema[T any]() map[string]interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)
	schemaObj, err := schemaToMap(schema)
	if err != nil {
		panic(err)
	}
	ensureOpenAICompliance(schemaObj)
	return schemaObj
}

func schemaToMap(schema *jsonschema.Schema) (map[string]interface{}, error) {
	b, err := schema.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

const (
	propertiesKey           = "properties"
	additionalPropertiesKey = "additionalProperties"
	typeKey                 = "type"
	requiredKey             = "required"
	itemsKey                = "items"
)

// ensureOpenAICompliance rewrites a reflected schema into the shape the
// structured-output endpoint insists on: every object closed and every
// property required.
func ensureOpenAICompliance(schema map[string]interface{}) {
	if schemaType, ok := schema[typeKey].(string); ok && schemaType == "object" {
		schema[additionalPropertiesKey] = false

		if properties, ok := schema[propertiesKey].(map[string]interface{}); ok {
			var requiredFields []string
			for propName := range properties {
				requiredFields = append(requiredFields, propName)
			}
			if len(requiredFields) > 0 {
				schema[requiredKey] = requiredFields
			}
		}
	}

	if properties, ok := schema[propertiesKey].(map[string]interface{}); ok {
		for _, prop := range properties {
			if propMap, ok := prop.(map[string]interface{}); ok {
				ensureOpenAICompliance(propMap)
			}
		}
	}

	if items, ok := schema[itemsKey].(map[string]interface{}); ok {
		ensureOpenAICompliance(items)
	}

	if additionalProps, ok := schema[additionalPropertiesKey].(map[string]interface{}); ok {
		ensureOpenAICompliance(additionalProps)
	}
}
