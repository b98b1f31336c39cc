package http

import (
	"net/http"
	"strings"

	"github.com/fwojciec/devdocs"
	"github.com/go-chi/chi/v5"
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Item      *devdocs.QAItem `json:"item"`
	HTML      string          `json:"html"`
	Sources   []documentRef   `json:"sources"`
	Citations []documentRef   `json:"citations,omitempty"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		Error(w, r, s.logger, devdocs.Errorf(devdocs.EINTERNAL, "Assistant not configured."))
		return
	}

	var req askRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		Error(w, r, s.logger, devdocs.Errorf(devdocs.EINVALID, "Question required."))
		return
	}

	c, err := s.docs.Catalog(r.Context())
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	relevant := devdocs.RelevantDocuments(c.All(), question, s.relevantLimit)
	relevant, err = devdocs.FitSnippets(r.Context(), s.tokens, relevant, s.maxContextTokens)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	answer, err := s.assistant.Answer(r.Context(), question, devdocs.FormatSnippets(relevant))
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	item := &devdocs.QAItem{Question: question, Answer: answer}
	if s.history != nil {
		if err := s.history.CreateQAItem(r.Context(), item); err != nil {
			Error(w, r, s.logger, err)
			return
		}
	}

	resp := askResponse{
		Item:    item,
		HTML:    devdocs.Render(answer, devdocs.RenderOptions{Mode: devdocs.ModeChat}),
		Sources: []documentRef{},
	}
	for _, doc := range relevant {
		resp.Sources = append(resp.Sources, documentRef{ID: doc.ID, Title: doc.Title})
	}
	if s.citations != nil {
		citations, err := s.citations.ExtractCitations(resp.HTML)
		if err != nil {
			Error(w, r, s.logger, err)
			return
		}
		resp.Citations = citedDocuments(c, citations)
	}
	writeJSON(w, http.StatusOK, resp)
}

type explainRequest struct {
	Text string `json:"text"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
	HTML        string `json:"html"`
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		Error(w, r, s.logger, devdocs.Errorf(devdocs.EINTERNAL, "Assistant not configured."))
		return
	}

	var req explainRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	explanation, err := s.assistant.Explain(r.Context(), req.Text)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, explainResponse{
		Explanation: explanation,
		HTML:        devdocs.Render(explanation, devdocs.RenderOptions{Mode: devdocs.ModeChat}),
	})
}

type codeRequest struct {
	Text         string `json:"text"`
	ExistingCode string `json:"existingCode"`

	// DocumentID and CodeKey identify the block being regenerated. CodeKey
	// defaults to the key of ExistingCode.
	DocumentID string `json:"documentId"`
	CodeKey    string `json:"codeKey"`
}

type codeResponse struct {
	Code string `json:"code"`
	Key  string `json:"key,omitempty"`
}

func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) {
	if s.assistant == nil {
		Error(w, r, s.logger, devdocs.Errorf(devdocs.EINTERNAL, "Assistant not configured."))
		return
	}

	var req codeRequest
	if err := decodeJSON(r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if req.DocumentID != "" {
		if _, err := s.docs.FindDocumentByID(r.Context(), req.DocumentID); err != nil {
			Error(w, r, s.logger, err)
			return
		}
	}

	code, err := s.assistant.GenerateCode(r.Context(), req.Text, req.ExistingCode)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	resp := codeResponse{Code: code, Key: req.CodeKey}
	if req.DocumentID != "" && resp.Key == "" && req.ExistingCode != "" {
		resp.Key = devdocs.CodeKey(req.DocumentID, req.ExistingCode)
	}
	if s.code != nil && req.DocumentID != "" && resp.Key != "" {
		if err := s.code.SaveRegeneratedCode(r.Context(), &devdocs.RegeneratedCode{
			Key:        resp.Key,
			DocumentID: req.DocumentID,
			Code:       code,
		}); err != nil {
			Error(w, r, s.logger, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleRestoreCode drops the regenerated code blocks of a document so the
// original blocks render again.
func (s *Server) handleRestoreCode(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if s.code != nil {
		if err := s.code.DeleteRegeneratedCode(r.Context(), doc.ID); err != nil {
			Error(w, r, s.logger, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

type historyResponse struct {
	Items []*devdocs.QAItem `json:"items"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeJSON(w, http.StatusOK, historyResponse{Items: []*devdocs.QAItem{}})
		return
	}

	items, err := s.history.FindQAItems(r.Context(), devdocs.QAFilter{})
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if items == nil {
		items = []*devdocs.QAItem{}
	}
	writeJSON(w, http.StatusOK, historyResponse{Items: items})
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if s.history != nil {
		if err := s.history.ClearQAItems(r.Context()); err != nil {
			Error(w, r, s.logger, err)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

// citedDocuments resolves citations against the catalog. Citations of
// unknown documents are dropped.
func citedDocuments(c *devdocs.Catalog, citations []devdocs.Citation) []documentRef {
	refs := []documentRef{}
	for _, cite := range citations {
		if doc := c.Find(cite.DocumentID); doc != nil {
			refs = append(refs, documentRef{ID: doc.ID, Title: doc.Title})
		}
	}
	return refs
}
