package server

import (
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/trabalhista/calculadora/internal/calculation"
	"github.com/trabalhista/calculadora/internal/domain"
)

const dateLayout = "2006-01-02"

// Server exposes the calculators over HTTP. It holds one immutable fiscal
// table; concurrent requests share it read-only.
type Server struct {
	params *domain.LegalParameters
}

// New creates a server bound to one fiscal table.
func New(p *domain.LegalParameters) *Server {
	return &Server{params: p}
}

// CalculationMetadata describes one calculation run in the response
// envelope.
type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	FiscalYear             int    `json:"fiscal_year"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

// Envelope is the uniform response body: metadata plus either a result or
// an error.
type Envelope struct {
	Metadata CalculationMetadata       `json:"calculation_metadata"`
	Result   *domain.CalculationResult `json:"result,omitempty"`
	Error    *ErrorBody                `json:"error,omitempty"`
}

// ErrorBody reports a failed calculation. Violations carries the full
// precondition list for invalid input.
type ErrorBody struct {
	Status     int      `json:"status"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// TerminationRequest is the wire form of a termination input; dates travel
// as ISO calendar dates with no time-of-day.
type TerminationRequest struct {
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	Dependents         int             `json:"dependents"`
	AdmissionDate      string          `json:"admission_date"`
	TerminationDate    string          `json:"termination_date"`
	Reason             string          `json:"reason"`
	FGTSBalance        decimal.Decimal `json:"fgts_balance"`
	NoticeWorked       bool            `json:"notice_worked"`
	UnusedVacationDays int             `json:"unused_vacation_days"`
}

// Handle routes a request to the matching calculator endpoint.
func (s *Server) Handle(ctx *fasthttp.RequestCtx) {
	if string(ctx.Method()) != fasthttp.MethodPost {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "only POST is supported", nil)
		return
	}

	switch string(ctx.Path()) {
	case "/v1/salario":
		s.handleSalary(ctx)
	case "/v1/ferias":
		s.handleVacation(ctx)
	case "/v1/decimo-terceiro":
		s.handleThirteenth(ctx)
	case "/v1/rescisao":
		s.handleTermination(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "unknown endpoint", nil)
	}
}

func (s *Server) handleSalary(ctx *fasthttp.RequestCtx) {
	var input domain.SalaryInput
	if err := json.Unmarshal(ctx.PostBody(), &input); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	s.run(ctx, func() (*domain.CalculationResult, error) {
		return calculation.NewSalaryCalculator(s.params).Calculate(input)
	})
}

func (s *Server) handleVacation(ctx *fasthttp.RequestCtx) {
	var input domain.VacationInput
	if err := json.Unmarshal(ctx.PostBody(), &input); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	s.run(ctx, func() (*domain.CalculationResult, error) {
		return calculation.NewVacationCalculator(s.params).Calculate(input)
	})
}

func (s *Server) handleThirteenth(ctx *fasthttp.RequestCtx) {
	var input domain.ThirteenthInput
	if err := json.Unmarshal(ctx.PostBody(), &input); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	s.run(ctx, func() (*domain.CalculationResult, error) {
		return calculation.NewThirteenthCalculator(s.params).Calculate(input)
	})
}

func (s *Server) handleTermination(ctx *fasthttp.RequestCtx) {
	var req TerminationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	input := domain.TerminationInput{
		GrossSalary:        req.GrossSalary,
		Dependents:         req.Dependents,
		Reason:             domain.TerminationReason(req.Reason),
		FGTSBalance:        req.FGTSBalance,
		NoticeWorked:       req.NoticeWorked,
		UnusedVacationDays: req.UnusedVacationDays,
	}

	var parseErrs []string
	if req.AdmissionDate != "" {
		t, err := time.Parse(dateLayout, req.AdmissionDate)
		if err != nil {
			parseErrs = append(parseErrs, "admission_date must be an ISO date (YYYY-MM-DD)")
		} else {
			input.AdmissionDate = t
		}
	}
	if req.TerminationDate != "" {
		t, err := time.Parse(dateLayout, req.TerminationDate)
		if err != nil {
			parseErrs = append(parseErrs, "termination_date must be an ISO date (YYYY-MM-DD)")
		} else {
			input.TerminationDate = t
		}
	}
	if len(parseErrs) > 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body", parseErrs)
		return
	}

	s.run(ctx, func() (*domain.CalculationResult, error) {
		return calculation.NewTerminationCalculator(s.params).Calculate(input)
	})
}

func (s *Server) run(ctx *fasthttp.RequestCtx, calculate func() (*domain.CalculationResult, error)) {
	started := time.Now().UTC()
	result, err := calculate()
	completed := time.Now().UTC()

	envelope := Envelope{
		Metadata: CalculationMetadata{
			CalculationID:          uuid.New().String(),
			FiscalYear:             s.params.Metadata.FiscalYear,
			CalculationStartedAt:   started.Format(time.RFC3339Nano),
			CalculationCompletedAt: completed.Format(time.RFC3339Nano),
			CalculationDurationMs:  completed.Sub(started).Milliseconds(),
			CalculationOutcome:     "success",
		},
		Result: result,
	}

	status := fasthttp.StatusOK
	if err != nil {
		envelope.Metadata.CalculationOutcome = "failure"
		status = fasthttp.StatusInternalServerError
		body := &ErrorBody{Status: status, Message: err.Error()}

		var iie *domain.InvalidInputError
		if errors.As(err, &iie) {
			status = fasthttp.StatusBadRequest
			body.Status = status
			body.Message = "invalid input"
			body.Violations = iie.Violations
		}
		envelope.Error = body
	}

	writeJSON(ctx, status, envelope)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string, violations []string) {
	writeJSON(ctx, status, Envelope{
		Metadata: CalculationMetadata{
			CalculationID:      uuid.New().String(),
			CalculationOutcome: "failure",
		},
		Error: &ErrorBody{Status: status, Message: message, Violations: violations},
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := json.Marshal(body)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":{"status":500,"message":"failed to encode response"}}`)
		return
	}
	ctx.SetBody(data)
}
