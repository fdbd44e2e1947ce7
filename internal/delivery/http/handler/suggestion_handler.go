package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/parking-microservice/internal/pkg/utils"
	"github.com/parking-microservice/internal/pkg/validator"
	"github.com/parking-microservice/internal/usecase"
	"github.com/parking-microservice/internal/usecase/dto"
)

// SuggestionHandler - обработчик автодополнения локаций
type SuggestionHandler struct {
	suggestionUC *usecase.SuggestionUseCase
	logger       *zap.Logger
}

// NewSuggestionHandler - создание нового SuggestionHandler
func NewSuggestionHandler(suggestionUC *usecase.SuggestionUseCase, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionUC: suggestionUC,
		logger:       logger,
	}
}

// GetSuggestions godoc
// @Summary Location autocomplete
// @Description Suggests street segment names and known landmarks matching the query text
// @Tags Suggestions
// @Accept json
// @Produce json
// @Param q query string true "Query text (minimum 2 characters)"
// @Param limit query int false "Maximum suggestions" default(10)
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/location-suggestions [get]
func (h *SuggestionHandler) GetSuggestions(c *fiber.Ctx) error {
	req := dto.SuggestRequest{
		Query: c.Query("q"),
		Limit: c.QueryInt("limit"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.suggestionUC.Suggest(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
