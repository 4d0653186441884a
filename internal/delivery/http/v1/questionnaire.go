package v1

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/checklist/internal/questionnaire"
	"github.com/adanyl0v/checklist/internal/rules"
	"github.com/adanyl0v/checklist/internal/services"
)

type questionnaireRequest struct {
	FlowType string `json:"flow_type" binding:"omitempty,oneof=recent_loss planning_ahead"`
	// Answers is kept raw so that a malformed answers value degrades to an
	// empty submission instead of rejecting the request.
	Answers json.RawMessage `json:"answers"`
}

type taskStubResponse struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Description   string `json:"description,omitempty"`
}

func newTaskStubResponses(stubs []rules.TaskStub) []taskStubResponse {
	response := make([]taskStubResponse, len(stubs))
	for i, stub := range stubs {
		response[i] = taskStubResponse{
			Title:         stub.Title,
			Category:      stub.Category.String(),
			CategoryLabel: stub.Category.Label(),
			Description:   stub.Description,
		}
	}
	return response
}

type taskGenerationResponse struct {
	OK           bool     `json:"ok"`
	Flow         string   `json:"flow"`
	GenerationID string   `json:"generation_id,omitempty"`
	MatchedRules []string `json:"matched_rules"`
	Deleted      int64    `json:"deleted"`
	Inserted     int64    `json:"inserted"`
	Superseded   bool     `json:"superseded"`
	Error        string   `json:"error,omitempty"`
}

type submitQuestionnaireResponse struct {
	TaskGeneration taskGenerationResponse `json:"task_generation"`
	Tasks          []taskStubResponse     `json:"tasks"`
}

func (h *handlerImpl) bindQuestionnaire(c *gin.Context) (questionnaire.FlowType, questionnaire.AnswerSet, bool) {
	var req questionnaireRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return "", questionnaire.AnswerSet{}, false
	}

	answers := questionnaire.NormalizeJSON(req.Answers)
	if answers.Len() == 0 && len(req.Answers) > 0 {
		h.logger.Debug().
			Int("bytes", len(req.Answers)).
			Msg("ignored unusable answers")
	}

	if req.FlowType == "" {
		return "", answers, true
	}
	flow, ok := questionnaire.ParseFlowType(req.FlowType)
	if !ok {
		abort(c, newBadRequestError(errInvalidFlowType.Error()))
		return "", questionnaire.AnswerSet{}, false
	}
	return flow, answers, true
}

// HandleSubmitQuestionnaire regenerates the personalized tasks of the
// subject. It answers 200 even when generation fails so that completing
// the questionnaire is never blocked; the failure is reported in the
// task_generation object.
func (h *handlerImpl) HandleSubmitQuestionnaire(c *gin.Context) {
	actorID, _ := getStringFromContext(c, actorIDCtxKey)
	subjectID := c.Param("subject_id")

	flow, answers, ok := h.bindQuestionnaire(c)
	if !ok {
		return
	}

	result := h.generation.Generate(c, services.GenerateParams{
		SubjectID: subjectID,
		ActorID:   actorID,
		FlowType:  flow,
		Answers:   answers,
	})

	generation := taskGenerationResponse{
		OK:           result.OK(),
		Flow:         string(result.Flow),
		GenerationID: result.GenerationID,
		MatchedRules: result.MatchedRules,
		Deleted:      result.Deleted,
		Inserted:     result.Inserted,
		Superseded:   result.Superseded,
	}
	if result.Err != nil {
		h.logger.Warn().
			Err(result.Err).
			Str("subject_id", subjectID).
			Msg("questionnaire accepted without task generation")
		generation.Error = "task generation failed"
	}

	h.logger.Info().
		Str("subject_id", subjectID).
		Msg("submitted questionnaire")
	c.JSON(http.StatusOK, submitQuestionnaireResponse{
		TaskGeneration: generation,
		Tasks:          newTaskStubResponses(result.Tasks),
	})
}

type previewQuestionnaireResponse struct {
	Flow         string             `json:"flow"`
	MatchedRules []string           `json:"matched_rules"`
	Tasks        []taskStubResponse `json:"tasks"`
}

func (h *handlerImpl) HandlePreviewQuestionnaire(c *gin.Context) {
	flow, answers, ok := h.bindQuestionnaire(c)
	if !ok {
		return
	}

	preview := h.generation.Preview(services.PreviewParams{
		FlowType: flow,
		Answers:  answers,
	})
	c.JSON(http.StatusOK, previewQuestionnaireResponse{
		Flow:         string(preview.Flow),
		MatchedRules: preview.MatchedRules,
		Tasks:        newTaskStubResponses(preview.Tasks),
	})
}
