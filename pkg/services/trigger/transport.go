package trigger

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/estafette/estafette-agent-trigger/pkg/api"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// signatureHeader carries the hex encoded HMAC-SHA512 of the body sent by Terraform Cloud notifications
	signatureHeader = "X-TFE-Notification-Signature"

	// maxBodyBytes limits the size of webhook and manual trigger bodies
	maxBodyBytes = 1 << 20
)

func NewHandler(configReader api.ConfigReader, service Service) *Handler {
	return &Handler{
		configReader: configReader,
		service:      service,
	}
}

type Handler struct {
	configReader api.ConfigReader
	service      Service

	mutex  sync.RWMutex
	config *api.Config
}

// SetConfig pins the config used for invocations; without it every invocation reads the config itself
func (h *Handler) SetConfig(config *api.Config) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.config = config
}

func (h *Handler) getConfig(ctx context.Context) (*api.Config, error) {
	h.mutex.RLock()
	config := h.config
	h.mutex.RUnlock()

	if config != nil {
		return config, nil
	}

	return h.configReader.ReadConfig(ctx)
}

// Invoke runs one trigger invocation over all configured projects; the event is only logged
func (h *Handler) Invoke(ctx context.Context, event json.RawMessage) (response Response, err error) {
	config, err := h.getConfig(ctx)
	if err != nil {
		return response, errors.Wrap(err, "Failed reading trigger configuration")
	}

	return h.invoke(ctx, config, event), nil
}

func (h *Handler) invoke(ctx context.Context, config *api.Config, event json.RawMessage) Response {

	logger := log.With().Str("invocationID", uuid.New().String()).Str("environment", config.Environment).Logger()
	ctx = logger.WithContext(ctx)

	logger.Info().Str("event", string(event)).Msg("Received trigger event")
	logger.Info().Msgf("Found %v CodeBuild projects for environment: %v", len(config.Projects), config.Environment)

	batch := h.service.TriggerProjects(ctx, config.Projects)

	return NewResponse(batch)
}

// Handle serves webhook and manual triggers over http
func (h *Handler) Handle(c *gin.Context) {

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			log.Warn().Err(err).Msgf("Trigger request body exceeds %v bytes", maxBodyBytes)
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		log.Error().Err(err).Msg("Reading body from trigger request failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	config, err := h.getConfig(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Reading trigger configuration failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	if config.WebhookToken != "" && !HasValidSignature(body, c.GetHeader(signatureHeader), config.WebhookToken) {
		log.Warn().Msg("Signature of trigger request is invalid")
		c.Status(http.StatusUnauthorized)
		return
	}

	event := json.RawMessage(body)
	if len(body) == 0 || !json.Valid(body) {
		event = json.RawMessage("{}")
	}

	response := h.invoke(c.Request.Context(), config, event)

	c.JSON(response.StatusCode, response)
}

// GetProjects returns the projects an invocation would process
func (h *Handler) GetProjects(c *gin.Context) {

	config, err := h.getConfig(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Reading trigger configuration failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"environment": config.Environment,
		"projects":    config.Projects,
	})
}

// HandleLambda serves scheduled, api gateway and manual lambda invocations
func (h *Handler) HandleLambda(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {

	response, err := h.Invoke(ctx, event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	body, err := json.Marshal(response.Body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, errors.Wrap(err, "Failed marshalling trigger response body")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: response.StatusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(body),
	}, nil
}

// HasValidSignature checks the hex encoded HMAC-SHA512 signature of a webhook body
func HasValidSignature(body []byte, signature, token string) bool {

	actualMAC, err := hex.DecodeString(signature)
	if err != nil {
		log.Warn().Err(err).Msgf("Decoding hexadecimal %v to byte array failed", signatureHeader)
		return false
	}

	// calculate expected MAC
	mac := hmac.New(sha512.New, []byte(token))
	mac.Write(body)
	expectedMAC := mac.Sum(nil)

	return hmac.Equal(actualMAC, expectedMAC)
}
