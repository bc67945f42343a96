package external

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"scheduleorganizer/external/interfaces"
)

const (
	defaultModel = "gemini-2.0-flash"
	// textBudget caps how much source text rides along in one prompt.
	textBudget = 6000
)

// GeminiExtractor sends schedule documents to the Gemini API with explicit
// field-by-field formatting instructions and returns the raw response text.
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("extraction collaborator requires an API key")
	}
	if model == "" {
		model = defaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiExtractor{client: client, model: model}, nil
}

// ExtractRows implements interfaces.RowExtractor for both text and image
// sources. The response is returned verbatim; fence stripping and JSON
// decoding belong to the collaborator-agnostic normalization layer.
func (g *GeminiExtractor) ExtractRows(ctx context.Context, req interfaces.ExtractionRequest) (string, error) {
	var parts []*genai.Part
	if len(req.Image) > 0 {
		parts = append(parts, genai.NewPartFromBytes(req.Image, req.MediaType))
		parts = append(parts, genai.NewPartFromText(imagePrompt(req)))
	} else {
		parts = append(parts, genai.NewPartFromText(textPrompt(req)))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini extraction call: %w", err)
	}
	raw := resp.Text()
	log.Debugf("gemini returned %d bytes for carrier %s", len(raw), req.Carrier)
	return raw, nil
}

func textPrompt(req interfaces.ExtractionRequest) string {
	text := req.Text
	if len(text) > textBudget {
		text = text[:textBudget]
	}
	return fmt.Sprintf(`Extract ALL shipping schedule entries from the text below.

Carrier: %[1]s
POL (Port of Loading): %[2]s
POD (Port of Discharge): %[3]s

RULES:
1. ETD = departure date from %[2]s, format MM-DD (e.g. 02-15)
2. ETA = arrival date at %[3]s, format MM-DD
3. T/T = transit days as integer (round UP: 1d 15h becomes 2)
4. CY Cut-off = CY CUT / Cargo Closing / CY Closing
5. SI Cut-off = Document Closing / Doc Cut / S/I Cut / Booking Doc Closing
   (KMTC: "Document Closing" = SI Cut-off)
6. All dates format: MM-DD
7. Extract EVERY sailing visible. Do not skip.

Return ONLY a valid JSON array, no explanation:
%[4]s

TEXT TO PARSE:
%[5]s`, req.Carrier, req.Pol, req.Pod, rowTemplate(req), text)
}

func imagePrompt(req interfaces.ExtractionRequest) string {
	return fmt.Sprintf(`This image shows a shipping schedule from %[1]s.

POL: %[2]s  ->  POD: %[3]s

Extract ALL sailing rows visible in the image.

RULES:
1. ETD from %[2]s, format MM-DD
2. ETA at %[3]s, format MM-DD
3. T/T = integer days (round UP)
4. CY Cut-off = CY CUT / Cargo Closing
5. SI Cut-off = Document Closing / Doc Cut / Booking Cut
6. Extract EVERY row visible.

Return ONLY a JSON array:
%[4]s`, req.Carrier, req.Pol, req.Pod, rowTemplate(req))
}

func rowTemplate(req interfaces.ExtractionRequest) string {
	row := fmt.Sprintf(`  {
    "carrier": "%s",
    "pol": "%s",
    "pod": "%s",
    "vessel": "VESSEL NAME",
    "voyage": "VOYAGE NUMBER",
    "etd": "MM-DD",
    "eta": "MM-DD",
    "transit_time": "2",
    "cy_cutoff": "MM-DD",
    "si_cutoff": "MM-DD"
  }`, req.Carrier, req.Pol, req.Pod)
	return strings.Join([]string{"[", row, "]"}, "\n")
}
