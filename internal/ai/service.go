package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/localnerve/gestorinmo/internal/media"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no AI backend is available
var ErrNotConfigured = errors.New("API Key no configurada")

// Messages returned by DraftEmail in place of a draft
const (
	MsgNotConfigured = "Error: API Key de Google no configurada o inválida. Verifica tus variables de entorno."
	MsgEmptyDraft    = "No se pudo generar el texto."
	MsgDraftFailed   = "Ocurrió un error al contactar con la IA. Por favor intenta más tarde."
)

const emailPrompt = `Actúa como un gestor inmobiliario profesional y educado.
Redacta un correo electrónico formal dirigido al inquilino: %s.

Tema principal: %s
Contexto adicional: %s

El tono debe ser firme pero cordial. Estructura el correo con Asunto y Cuerpo.
No uses marcadores de posición, genera el texto completo.`

const receiptPrompt = `Analiza esta imagen de una factura o recibo.
Extrae la siguiente información en formato JSON puro (sin markdown):

{
  "amount": (número, usa punto para decimales),
  "date": (string en formato YYYY-MM-DD, si no hay fecha usa la de hoy),
  "description": (resumen corto de 3-5 palabras del concepto),
  "category": (Elige EXACTAMENTE UNA de estas: "Reparación", "Comunidad", "Seguro", "Impuestos", "Otros")
}

Si no puedes leer la imagen, devuelve un JSON con valores vacíos o estimados.`

// Service drafts emails and reads receipts.
// A Service without a model reports itself as not configured instead of failing.
type Service struct {
	model Model
	log   *zap.Logger
}

// NewService wraps a model, which may be nil
func NewService(model Model, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{model: model, log: log}
}

// Enabled reports whether a model is available
func (s *Service) Enabled() bool {
	return s != nil && s.model != nil
}

// DraftEmail writes a formal email to a tenant.
// It never fails: problems are reported through the returned text.
func (s *Service) DraftEmail(ctx context.Context, tenantName, topic, details string) string {
	if !s.Enabled() {
		return MsgNotConfigured
	}

	text, err := s.model.Generate(ctx, fmt.Sprintf(emailPrompt, tenantName, topic, details))
	if err != nil {
		s.log.Error("email draft failed", zap.String("tenant", tenantName), zap.Error(err))
		return MsgDraftFailed
	}
	if strings.TrimSpace(text) == "" {
		return MsgEmptyDraft
	}
	return text
}

// ExtractReceipt compresses a receipt image and asks the model for its expense fields.
// Every field of the result is optional and only a suggestion.
func (s *Service) ExtractReceipt(ctx context.Context, image []byte) (ReceiptGuess, error) {
	if !s.Enabled() {
		return ReceiptGuess{}, ErrNotConfigured
	}

	compressed, err := media.CompressImage(image)
	if err != nil {
		return ReceiptGuess{}, err
	}

	text, err := s.model.GenerateWithImage(ctx, receiptPrompt, media.JPEGMimeType, compressed)
	if err != nil {
		s.log.Error("receipt extraction failed", zap.Error(err))
		return ReceiptGuess{}, err
	}

	guess, err := ParseReceipt(text)
	if err != nil {
		s.log.Warn("unreadable receipt reply", zap.String("reply", text), zap.Error(err))
		return ReceiptGuess{}, err
	}
	return guess, nil
}
