// Package visual generates the dashboard's gamification imagery through
// the Gemini image model: the rank mascot badge, the neighbor persona
// portrait, and the style-matched energy-tip collage. Every method
// degrades to an empty string on failure so the dashboard renders
// without artwork instead of erroring.
package visual

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"google.golang.org/genai"

	"github.com/kaipengyu/ppl-small-win/internal/config"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
)

// DefaultModel is the default Gemini model for image generation.
const DefaultModel = "gemini-2.5-flash-image"

const (
	rankBadgePrefix = "Generate a high quality 3D AI rendered cartoon character representing an Energy Saver Rank. The character should be cute, friendly, and colorful - like a cartoon mascot. The character should be shown from the front, centered, with a warm and friendly expression. Style should be 3D rendered, cute, and gamified - similar to animated cartoon characters. "

	personaPrefix = "Generate a high quality, realistic photo portrait of a friendly African American woman neighbor, smiling and looking helpful. She should be dressed casually in a jacket or sweater, standing near a brick house or front porch. The style should be warm and inviting, like a real photograph. "

	collageTemplate = `Create an image visualizing the energy tip: %q.

Instructions:
1. **Analyze Style**: Look at the provided input image. Understand its rendering style (e.g. blue blueprint, 3d wireframe, realistic photo, or sketch).
2. **Determine Room**: Identify the single best room for the tip (e.g. Kitchen for microwave/cooking, Bathroom for water, Living Room for thermostat).
3. **GENERATE NEW IMAGE**: Generate a close-up, interior view of ONLY that specific room. Do NOT show the whole house or floor plan.
4. **Apply Style**: Ensure this new image uses the EXACT SAME visual style as the input image.
5. **Integrate Text**: In the style of the image (e.g. as a blueprint label, a sticky note, or integrated text), clearly write the energy tip text %q inside the image near the relevant object.`
)

// generator is the slice of the genai client the illustrator needs;
// tests substitute a stub.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Illustrator renders dashboard imagery. The zero value is not usable;
// construct with NewIllustrator.
type Illustrator struct {
	models    generator
	model     string
	baseImage []byte
	log       *slog.Logger
}

// NewIllustrator creates an illustration gateway. The base image, when
// configured, is attached to collage requests as the style reference.
func NewIllustrator(ctx context.Context, cfg config.Gemini, baseImagePath string) (*Illustrator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required. Set GEMINI_API_KEY or ai.gemini.api_key in the config file")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.ImageModel
	if model == "" {
		model = DefaultModel
	}

	ill := &Illustrator{
		models: client.Models,
		model:  model,
		log:    logger.Get(),
	}

	if baseImagePath != "" {
		data, err := os.ReadFile(baseImagePath)
		if err != nil {
			// Collages still work, they just lose the style reference.
			ill.log.Warn("base image not readable, collages will be unstyled",
				"path", baseImagePath, "error", err)
		} else {
			ill.baseImage = data
		}
	}

	return ill, nil
}

// RankBadge generates the 3D mascot character for a rank. The prompt is
// the model-authored rankVisualPrompt from the extracted bill.
func (i *Illustrator) RankBadge(ctx context.Context, prompt string) string {
	return i.generate(ctx, "rank badge", []*genai.Part{
		{Text: rankBadgePrefix + prompt},
	})
}

// Persona generates the neighbor persona portrait.
func (i *Illustrator) Persona(ctx context.Context, prompt string) string {
	return i.generate(ctx, "persona", []*genai.Part{
		{Text: personaPrefix + prompt},
	})
}

// Collage generates a room interior visualizing the household tip,
// matched to the base image's rendering style with the tip text written
// into the scene.
func (i *Illustrator) Collage(ctx context.Context, tip string) string {
	parts := make([]*genai.Part, 0, 2)
	if len(i.baseImage) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "image/png", Data: i.baseImage},
		})
	}
	parts = append(parts, &genai.Part{Text: fmt.Sprintf(collageTemplate, tip, tip)})
	return i.generate(ctx, "collage", parts)
}

// generate runs one image request and returns the first inline image as
// a data URI, or empty on any failure.
func (i *Illustrator) generate(ctx context.Context, kind string, parts []*genai.Part) string {
	contents := []*genai.Content{{Parts: parts, Role: "user"}}

	resp, err := i.models.GenerateContent(ctx, i.model, contents, nil)
	if err != nil {
		i.log.Warn("image generation failed", "kind", kind, "error", err)
		return ""
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(part.InlineData.Data)
				return uri
			}
		}
	}

	i.log.Warn("image generation returned no image", "kind", kind)
	return ""
}
