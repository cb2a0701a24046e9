package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/gestorinmo/internal/ai"
	"github.com/localnerve/gestorinmo/internal/dashboard"
	"github.com/localnerve/gestorinmo/internal/utils"
)

// MsgManualEntry tells the user to fill the expense form by hand
const MsgManualEntry = "No se pudo leer el recibo. Por favor, rellena los datos manualmente."

// AIHandler handles the AI assisted routes
type AIHandler struct {
	AI     *ai.Service
	Engine *dashboard.Engine
}

// EmailRequest is the body of an email draft request.
// TenantID is used to look up the name when TenantName is empty.
type EmailRequest struct {
	TenantID   string `json:"tenantId"`
	TenantName string `json:"tenantName"`
	Topic      string `json:"topic"`
	Context    string `json:"context"`
}

// EmailResponse carries the drafted email, or a message explaining why there is none
type EmailResponse struct {
	Text string `json:"text"`
}

// ExtractReceipt handles POST /api/ai/receipt
// @Summary Read a receipt
// @Description Suggest expense fields from a receipt image. Every field is optional.
// @Tags AI
// @Accept multipart/form-data,json
// @Produce json
// @Param receipt formData file false "Receipt image"
// @Success 200 {object} ai.ReceiptGuess
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Failure 503 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /ai/receipt [post]
func (h *AIHandler) ExtractReceipt(c *fiber.Ctx) error {
	if !h.AI.Enabled() {
		return utils.ErrorResponse(c, ai.ErrNotConfigured.Error(), fiber.StatusServiceUnavailable, "ai.unavailable")
	}

	image, err := receiptImage(c)
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusBadRequest, "data.validation.input")
	}

	guess, err := h.AI.ExtractReceipt(c.UserContext(), image)
	if err != nil {
		return utils.ErrorResponse(c, MsgManualEntry, fiber.StatusBadGateway, "ai.receipt")
	}
	return c.Status(fiber.StatusOK).JSON(guess)
}

// DraftEmail handles POST /api/ai/email
// @Summary Draft an email to a tenant
// @Description Always answers 200; problems are reported in the text
// @Tags AI
// @Accept json
// @Produce json
// @Param body body EmailRequest true "Email request"
// @Success 200 {object} EmailResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /ai/email [post]
func (h *AIHandler) DraftEmail(c *fiber.Ctx) error {
	var body EmailRequest
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}

	name := body.TenantName
	if name == "" && body.TenantID != "" {
		for _, t := range h.Engine.Snapshot().Tenants {
			if t.ID == body.TenantID {
				name = t.Name
				break
			}
		}
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(body.Topic) == "" {
		return invalidInput(c)
	}

	text := h.AI.DraftEmail(c.UserContext(), name, body.Topic, body.Context)
	return c.Status(fiber.StatusOK).JSON(EmailResponse{Text: text})
}

// receiptImage reads the image from a multipart "receipt" file or a JSON {"image": ...} body
func receiptImage(c *fiber.Ctx) ([]byte, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("receipt")
		if err != nil {
			return nil, err
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	var body struct {
		Image string `json:"image"`
	}
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	return ai.DecodeImagePayload(body.Image)
}
