package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/galleon/backend/src/config"
	"github.com/username/galleon/backend/src/logger"
	"github.com/username/galleon/backend/src/models"
	"github.com/username/galleon/backend/src/parser"
	"github.com/username/galleon/backend/src/security/validation"
	"github.com/username/galleon/backend/src/utils"
)

type ParseHandler struct {
	engine *parser.Engine
}

func NewParseHandler(engine *parser.Engine) *ParseHandler {
	return &ParseHandler{engine: engine}
}

type parseRequest struct {
	Text string `json:"text"`
}

type parseBatchRequest struct {
	Texts []string `json:"texts"`
}

// maxBatchSize bounds one batch request; the endpoint is meant for a screen
// of pending inputs, not bulk import.
const maxBatchSize = 50

// HandleParse runs the engine over one line of text. The response result is
// null when the input carried no usable transaction signal; that is not an
// error, the UI simply shows no preview.
func (h *ParseHandler) HandleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "invalid JSON body: expected {\"text\": \"...\"}", http.StatusBadRequest)
		return
	}

	text := validation.CleanInputText(req.Text, config.Cfg.MaxInputLength)
	result := h.engine.Parse(text)
	logger.FromContext(r.Context()).Debug("Parsed input", "found", result != nil)

	utils.SendJSON(w, map[string]*models.ParseResult{"result": result}, http.StatusOK)
}

// HandleParseBatch applies the parser to each input independently and returns
// a same-length array, with null entries where parsing found nothing.
func (h *ParseHandler) HandleParseBatch(w http.ResponseWriter, r *http.Request) {
	var req parseBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "invalid JSON body: expected {\"texts\": [\"...\"]}", http.StatusBadRequest)
		return
	}
	if len(req.Texts) > maxBatchSize {
		utils.SendJSONError(w, "too many inputs in one batch", http.StatusBadRequest)
		return
	}

	cleaned := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		cleaned[i] = validation.CleanInputText(text, config.Cfg.MaxInputLength)
	}
	results := h.engine.ParseBatch(cleaned)

	utils.SendJSON(w, map[string][]*models.ParseResult{"results": results}, http.StatusOK)
}

// HandleSuggestMerchants returns up to five canonical merchant names matching
// the partial input, for the entry field's autocomplete.
func (h *ParseHandler) HandleSuggestMerchants(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("q")
	suggestions := h.engine.SuggestMerchants(partial)
	if suggestions == nil {
		suggestions = []string{}
	}
	utils.SendJSON(w, map[string][]string{"suggestions": suggestions}, http.StatusOK)
}

type categoryInfo struct {
	ID              models.Category `json:"id"`
	GenericMerchant string          `json:"genericMerchant"`
}

// HandleGetCategories lists the fixed category set with the generic merchant
// label each one synthesizes, for pickers and display fallbacks.
func (h *ParseHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]categoryInfo, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		categories = append(categories, categoryInfo{
			ID:              c,
			GenericMerchant: h.engine.GenericMerchantName(c),
		})
	}
	utils.SendJSON(w, map[string][]categoryInfo{"categories": categories}, http.StatusOK)
}
