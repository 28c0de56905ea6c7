package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"ilpload/facts"
	"ilpload/ilp"
	"ilpload/render"
)

const maxBodyBytes = 8 << 20

const (
	ParsingStage   = "parse"
	ExamplesStage  = "examples"
	TemplateStage  = "template"
	AssembledStage = "assembled"
)

type Request struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Positive   string `json:"positive"`
	Negative   string `json:"negative"`
	Hypothesis string `json:"hypothesis,omitempty"`
}

type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type Failure struct {
	Message  string    `json:"message"`
	Location *Location `json:"location,omitempty"`
	Expected string    `json:"expected,omitempty"`
	Found    string    `json:"found,omitempty"`
}

type Response struct {
	Stage   string           `json:"stage"`
	Problem *render.Document `json:"problem,omitempty"`
	Error   *Failure         `json:"error,omitempty"`
}

type Server struct {
	assembler *ilp.Assembler
	logger    *zap.Logger
}

func New(assembler *ilp.Assembler, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{assembler: assembler, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("/assemble", s.assemble)
	mux.HandleFunc("/prolog", s.renderProlog)
	return mux
}

func allowOrigins(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
}

func (s *Server) readRequest(w http.ResponseWriter, r *http.Request) (*Request, bool) {
	allowOrigins(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return nil, false
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	defer func() {
		if err := r.Body.Close(); err != nil {
			s.logger.Warn("close request body", zap.Error(err))
		}
	}()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, fmt.Sprintf("decode request: %v", err), http.StatusBadRequest)
		return nil, false
	}
	if req.Name == "" {
		req.Name = "problem"
	}
	return &req, true
}

func (s *Server) assemble(w http.ResponseWriter, r *http.Request) {
	req, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	p, tmpl, err := s.assembler.AssembleText(req.Name, req.Background, req.Positive, req.Negative)
	if err != nil {
		s.fail(w, req.Name, err)
		return
	}
	s.respond(w, http.StatusOK, Response{Stage: AssembledStage, Problem: render.NewDocument(p, tmpl)})
}

func (s *Server) renderProlog(w http.ResponseWriter, r *http.Request) {
	req, ok := s.readRequest(w, r)
	if !ok {
		return
	}
	p, tmpl, err := s.assembler.AssembleText(req.Name, req.Background, req.Positive, req.Negative)
	if err != nil {
		s.fail(w, req.Name, err)
		return
	}
	program, err := render.Program(p, tmpl, req.Hypothesis)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, program); err != nil {
		s.logger.Warn("write response", zap.Error(err))
	}
}

func (s *Server) fail(w http.ResponseWriter, name string, err error) {
	s.logger.Info("assembly failed", zap.String("problem", name), zap.Error(err))
	resp := Response{Error: &Failure{Message: err.Error()}}
	var perr *facts.ParseError
	switch {
	case errors.As(err, &perr):
		resp.Stage = ParsingStage
		resp.Error.Location = &Location{File: perr.Pos.Filename, Line: perr.Pos.Line, Column: perr.Pos.Column}
		resp.Error.Expected = perr.Expected
		resp.Error.Found = perr.Found
	case errors.Is(err, ilp.ErrEmptyExamples):
		resp.Stage = ExamplesStage
	case errors.Is(err, ilp.ErrInvalidTemplate):
		resp.Stage = TemplateStage
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.respond(w, http.StatusUnprocessableEntity, resp)
}

func (s *Server) respond(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("encode response", zap.Error(err))
	}
}
