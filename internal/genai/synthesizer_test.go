package genai_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
	"github.com/ganot/lumina/internal/genai"
)

type callerCall struct {
	model string
	req   genai.ContentRequest
}

// fakeCaller scripts per-model responses.
type fakeCaller struct {
	calls     []callerCall
	responses map[string]func(genai.ContentRequest) ([]genai.Part, error)
}

func (f *fakeCaller) GenerateContent(ctx context.Context, model string, req genai.ContentRequest) ([]genai.Part, error) {
	f.calls = append(f.calls, callerCall{model: model, req: req})
	fn, ok := f.responses[model]
	if !ok {
		return nil, errors.New("unexpected model " + model)
	}
	return fn(req)
}

func imageParts(data string) []genai.Part {
	return []genai.Part{{InlineData: &genai.Blob{MimeType: "image/png", Data: data}}}
}

func respond(parts []genai.Part, err error) func(genai.ContentRequest) ([]genai.Part, error) {
	return func(genai.ContentRequest) ([]genai.Part, error) { return parts, err }
}

const primaryModel = "gemini-3-pro-image-preview"
const fallbackModel = "gemini-2.5-flash-image"

func newSynth(caller *fakeCaller) *genai.Synthesizer {
	return genai.NewSynthesizer(caller, primaryModel, fallbackModel, time.Second, nil)
}

func TestRender_Primary(t *testing.T) {
	caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
		primaryModel: respond(imageParts("abc123"), nil),
	}}
	synth := newSynth(caller)

	ref, err := synth.Render(context.Background(), asset.RenderRequest{
		Prompt: "a logo", Size: "1K", AspectRatio: "1:1",
	})
	require.NoError(t, err)
	require.Equal(t, concept.AssetRef("data:image/png;base64,abc123"), ref)

	require.Len(t, caller.calls, 1)
	req := caller.calls[0].req
	require.Equal(t, "a logo", req.Contents[0].Parts[0].Text)
	require.NotNil(t, req.GenerationConfig)
	require.Equal(t, "1K", req.GenerationConfig.ImageConfig.ImageSize)
	require.Equal(t, "1:1", req.GenerationConfig.ImageConfig.AspectRatio)
}

func TestRender_FallbackOnCapacityError(t *testing.T) {
	caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
		primaryModel:  respond(nil, errors.New("status 429: RESOURCE_EXHAUSTED")),
		fallbackModel: respond(imageParts("fallbackdata"), nil),
	}}
	synth := newSynth(caller)

	ref, err := synth.Render(context.Background(), asset.RenderRequest{
		Prompt: "a logo", Size: "1K", AspectRatio: "16:9",
	})
	require.NoError(t, err)
	require.Equal(t, concept.AssetRef("data:image/png;base64,fallbackdata"), ref)

	require.Len(t, caller.calls, 2)
	fb := caller.calls[1].req
	// No image config on the fallback model; the ratio rides the prompt.
	require.Nil(t, fb.GenerationConfig)
	last := fb.Contents[0].Parts[len(fb.Contents[0].Parts)-1]
	require.Equal(t, " Aspect ratio 16 to 9.", last.Text)
}

func TestRender_BothFail_PrimaryErrorSurfaces(t *testing.T) {
	primaryErr := errors.New("status 429: quota exceeded")
	caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
		primaryModel:  respond(nil, primaryErr),
		fallbackModel: respond(nil, errors.New("status 500: internal")),
	}}
	synth := newSynth(caller)

	_, err := synth.Render(context.Background(), asset.RenderRequest{Prompt: "p", AspectRatio: "1:1"})
	require.ErrorIs(t, err, primaryErr)
	require.Len(t, caller.calls, 2)
}

func TestRender_NonCapacityError_NoFallback(t *testing.T) {
	primaryErr := errors.New("status 500: internal")
	caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
		primaryModel: respond(nil, primaryErr),
	}}
	synth := newSynth(caller)

	_, err := synth.Render(context.Background(), asset.RenderRequest{Prompt: "p", AspectRatio: "1:1"})
	require.ErrorIs(t, err, primaryErr)
	require.Len(t, caller.calls, 1)
}

func TestRender_TextRefusal(t *testing.T) {
	refusal := strings.Repeat("I cannot generate that image. ", 5)
	caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
		primaryModel: respond([]genai.Part{{Text: refusal}}, nil),
	}}
	synth := newSynth(caller)

	_, err := synth.Render(context.Background(), asset.RenderRequest{Prompt: "p", AspectRatio: "1:1"})
	require.ErrorIs(t, err, genai.ErrNoImage)
	require.Contains(t, err.Error(), "I cannot generate")
	require.Less(t, len(err.Error()), 120)
}

func TestRender_EmptyParts(t *testing.T) {
	caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
		primaryModel: respond(nil, nil),
	}}
	synth := newSynth(caller)

	_, err := synth.Render(context.Background(), asset.RenderRequest{Prompt: "p", AspectRatio: "1:1"})
	require.ErrorIs(t, err, genai.ErrNoImage)
}

func TestRender_ReferenceAttached(t *testing.T) {
	payload := strings.Repeat("A", 200)
	caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
		primaryModel: respond(imageParts("out"), nil),
	}}
	synth := newSynth(caller)

	_, err := synth.Render(context.Background(), asset.RenderRequest{
		Prompt:      "a moodboard",
		AspectRatio: "16:9",
		Reference:   concept.AssetRef("data:image/png;base64," + payload),
	})
	require.NoError(t, err)

	parts := caller.calls[0].req.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[1].InlineData)
	require.Equal(t, "image/png", parts[1].InlineData.MimeType)
	require.Equal(t, payload, parts[1].InlineData.Data)
}

func TestRender_ReferenceSkipped(t *testing.T) {
	cases := map[string]concept.AssetRef{
		"empty":     concept.RefPending,
		"failed":    concept.RefFailed,
		"too short": "data:image/png;base64,tiny",
		"not a uri": "https://example.com/logo.png",
	}
	for name, ref := range cases {
		t.Run(name, func(t *testing.T) {
			caller := &fakeCaller{responses: map[string]func(genai.ContentRequest) ([]genai.Part, error){
				primaryModel: respond(imageParts("out"), nil),
			}}
			synth := newSynth(caller)

			_, err := synth.Render(context.Background(), asset.RenderRequest{
				Prompt: "p", AspectRatio: "1:1", Reference: ref,
			})
			require.NoError(t, err)
			require.Len(t, caller.calls[0].req.Contents[0].Parts, 1)
		})
	}
}

func TestRender_Timeout(t *testing.T) {
	block := func(genai.ContentRequest) ([]genai.Part, error) {
		return nil, context.DeadlineExceeded
	}
	caller := &blockingCaller{delay: 50 * time.Millisecond, then: block}
	synth := genai.NewSynthesizer(caller, primaryModel, "", 10*time.Millisecond, nil)

	_, err := synth.Render(context.Background(), asset.RenderRequest{Prompt: "p", AspectRatio: "1:1"})
	require.ErrorIs(t, err, genai.ErrTimeout)
}

// blockingCaller waits past the attempt deadline before failing, the way
// a real transport does when its context expires.
type blockingCaller struct {
	delay time.Duration
	then  func(genai.ContentRequest) ([]genai.Part, error)
}

func (b *blockingCaller) GenerateContent(ctx context.Context, model string, req genai.ContentRequest) ([]genai.Part, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(b.delay):
		return b.then(req)
	}
}
