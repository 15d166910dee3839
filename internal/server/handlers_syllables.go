package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/jonathan/syllabify/internal/batch"
	"github.com/jonathan/syllabify/internal/types"
	"go.uber.org/zap"
)

// handleSegment segments a single word.
func (s *Server) handleSegment(w http.ResponseWriter, r *http.Request) {
	var req types.WordEntry
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFrom(w, validationError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, batch.Result(s.segmenter, req))
}

// handleBatch segments up to types.MaxBatchSize words in parallel.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchSegmentRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFrom(w, validationError(err))
		return
	}

	results, err := batch.Segment(r.Context(), s.segmenter, req.Words, s.workers)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.logger.Debug("batch canceled by client", zap.Int("words", len(req.Words)))
			return
		}
		s.errorFrom(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.BatchSegmentResponse{Results: results})
}

// handleAnalyze returns every intermediate step of a segmentation.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.WordEntry
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorFrom(w, validationError(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.segmenter.Analyze(req.Word, req.Phonetic))
}
