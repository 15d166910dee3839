package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/syllabify/internal/db"
	"github.com/jonathan/syllabify/internal/server/middleware"
	"github.com/jonathan/syllabify/internal/types"
	"go.uber.org/zap"
)

// handleListWords lists word bank entries with optional prefix and paging.
func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filters := db.WordFilters{Prefix: strings.TrimSpace(query.Get("prefix"))}
	var err error
	if filters.Limit, err = intParam(query.Get("limit")); err != nil {
		s.errorFrom(w, &ErrValidation{Field: "limit", Message: "must be an integer"})
		return
	}
	if filters.Offset, err = intParam(query.Get("offset")); err != nil {
		s.errorFrom(w, &ErrValidation{Field: "offset", Message: "must be an integer"})
		return
	}

	words, err := s.store.ListWords(r.Context(), filters)
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	out := make([]types.Word, len(words))
	for i := range words {
		out[i] = toAPIWord(&words[i])
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"words": out,
		"count": len(out),
	})
}

// handleGetWord returns a word bank entry by ID.
func (s *Server) handleGetWord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorFrom(w, &ErrValidation{Field: "id", Message: "invalid word ID"})
		return
	}

	word, err := s.store.GetWord(r.Context(), id)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	if word == nil {
		s.errorFrom(w, &ErrWordNotFound{Key: id.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, toAPIWord(word))
}

// handleGetWordByText returns a word bank entry by spelling.
func (s *Server) handleGetWordByText(w http.ResponseWriter, r *http.Request) {
	text := strings.TrimSpace(r.URL.Query().Get("word"))
	if text == "" {
		s.errorFrom(w, &ErrValidation{Field: "word", Message: "required"})
		return
	}

	word, err := s.store.GetWordByText(r.Context(), text)
	if err != nil {
		s.errorFrom(w, err)
		return
	}
	if word == nil {
		s.errorFrom(w, &ErrWordNotFound{Key: text})
		return
	}

	s.jsonResponse(w, http.StatusOK, toAPIWord(word))
}

// handleCreateWord segments and stores a word. Admin only.
func (s *Server) handleCreateWord(w http.ResponseWriter, r *http.Request) {
	var req types.CreateWordRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFrom(w, validationError(err))
		return
	}

	source := req.Source
	if source == "" {
		source = "api"
	}

	word, err := s.store.UpsertWord(r.Context(), &db.WordInput{
		Word:      req.Word,
		Phonetic:  req.Phonetic,
		Syllables: s.segmenter.Segment(req.Word, req.Phonetic),
		Source:    source,
	})
	if err != nil {
		s.errorFrom(w, err)
		return
	}

	subject, _ := middleware.GetSubject(r)
	s.logger.Info("word stored",
		zap.String("word", word.Word),
		zap.String("syllables", word.Syllables),
		zap.String("by", subject))

	s.jsonResponse(w, http.StatusCreated, toAPIWord(word))
}

// handleDeleteWord removes a word. Admin only.
func (s *Server) handleDeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorFrom(w, &ErrValidation{Field: "id", Message: "invalid word ID"})
		return
	}

	if err := s.store.DeleteWord(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorFrom(w, &ErrWordNotFound{Key: id.String()})
			return
		}
		s.errorFrom(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func toAPIWord(w *db.Word) types.Word {
	return types.Word{
		ID:        w.ID,
		Word:      w.Word,
		Phonetic:  w.Phonetic,
		Syllables: w.Syllables,
		Source:    w.Source,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
