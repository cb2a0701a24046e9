package ai

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/localnerve/gestorinmo/internal/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply string
	err   error

	prompt   string
	mimeType string
	image    []byte
}

func (m *fakeModel) Generate(_ context.Context, prompt string) (string, error) {
	m.prompt = prompt
	return m.reply, m.err
}

func (m *fakeModel) GenerateWithImage(_ context.Context, prompt, mimeType string, img []byte) (string, error) {
	m.prompt = prompt
	m.mimeType = mimeType
	m.image = img
	return m.reply, m.err
}

func receiptPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, imaging.New(1600, 800, color.White)))
	return buf.Bytes()
}

func TestDraftEmail(t *testing.T) {
	model := &fakeModel{reply: "Asunto: Revisión IPC\n\nEstimado Juan..."}
	svc := NewService(model, nil)

	got := svc.DraftEmail(context.Background(), "Juan Pérez", "Revisión IPC", "Subida del 3%")
	assert.Equal(t, model.reply, got)
	assert.Contains(t, model.prompt, "inquilino: Juan Pérez")
	assert.Contains(t, model.prompt, "Tema principal: Revisión IPC")
	assert.Contains(t, model.prompt, "Contexto adicional: Subida del 3%")
}

func TestDraftEmailNeverFails(t *testing.T) {
	assert.Equal(t, MsgNotConfigured, NewService(nil, nil).DraftEmail(context.Background(), "a", "b", "c"))

	failing := NewService(&fakeModel{err: errors.New("quota")}, nil)
	assert.Equal(t, MsgDraftFailed, failing.DraftEmail(context.Background(), "a", "b", "c"))

	empty := NewService(&fakeModel{reply: "  "}, nil)
	assert.Equal(t, MsgEmptyDraft, empty.DraftEmail(context.Background(), "a", "b", "c"))
}

func TestExtractReceipt(t *testing.T) {
	model := &fakeModel{reply: "```json\n{\"amount\": 80, \"date\": \"2024-02-01\", \"category\": \"Comunidad\"}\n```"}
	svc := NewService(model, nil)

	guess, err := svc.ExtractReceipt(context.Background(), receiptPNG(t))
	require.NoError(t, err)
	require.NotNil(t, guess.Amount)
	assert.Equal(t, 80.0, *guess.Amount)
	assert.Equal(t, "2024-02-01", *guess.Date)

	assert.Equal(t, media.JPEGMimeType, model.mimeType)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(model.image))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, media.MaxSide, cfg.Width)
}

func TestExtractReceiptErrors(t *testing.T) {
	_, err := NewService(nil, nil).ExtractReceipt(context.Background(), receiptPNG(t))
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewService(&fakeModel{reply: "{}"}, nil).ExtractReceipt(context.Background(), []byte("not an image"))
	assert.Error(t, err)

	_, err = NewService(&fakeModel{err: errors.New("timeout")}, nil).ExtractReceipt(context.Background(), receiptPNG(t))
	assert.EqualError(t, err, "timeout")

	_, err = NewService(&fakeModel{reply: "lo siento"}, nil).ExtractReceipt(context.Background(), receiptPNG(t))
	assert.ErrorIs(t, err, ErrNoJSON)
}
