package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mBurakKoseler/AI-Powered-Sentiment-Analysis-in-Turkish-Comments/internal/usecase"
)

// PredictionHandler handles sentiment prediction requests
type PredictionHandler struct {
	predictionUC usecase.PredictionUsecase
	logger       *zap.Logger
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(predictionUC usecase.PredictionUsecase, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionUC: predictionUC,
		logger:       logger,
	}
}

// Predict handles POST /predict
func (h *PredictionHandler) Predict(c *gin.Context) {
	log := h.logger.With(zap.String("request_id", c.GetString("request_id")))

	var input usecase.PredictInput
	if err := BindJSONBody(c, &input); err != nil {
		log.Error("Invalid prediction request body", zap.Error(err))
		HandleInvalidRequest(c, err.Error())
		return
	}
	log.Info("Prediction request", zap.Stringp("text", input.Text))

	output, err := h.predictionUC.Predict(c.Request.Context(), &input)
	if err != nil {
		log.Error("Prediction failed", zap.Error(err))
		HandleUsecaseError(c, err)
		return
	}

	log.Info("Prediction response",
		zap.String("input", output.Input),
		zap.String("label", output.Label),
		zap.String("sentiment", output.Sentiment),
		zap.Float64("score", output.Score),
	)
	respondSuccess(c, http.StatusOK, output)
}
