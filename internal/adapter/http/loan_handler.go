package http

import (
	"net/http"

	"fincalc/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type loanReq struct {
	LoanAmount   string `json:"loanAmount"   form:"loanAmount"   validate:"omitempty,max=32,decimal"`
	Years        string `json:"years"        form:"years"        validate:"omitempty,max=32,wholenum"`
	Months       string `json:"months"       form:"months"       validate:"omitempty,max=32,wholenum"`
	InterestRate string `json:"interestRate" form:"interestRate" validate:"omitempty,max=32,decimal"`
	PayFrequency string `json:"payFrequency" form:"payFrequency" validate:"omitempty,max=32"`
}

// Form describes the empty loan form.
func (h *LoanHandler) Form(c echo.Context) error {
	return c.JSON(http.StatusOK, formDescription{
		Submit:      false,
		Fields:      []string{"loanAmount", "years", "months", "interestRate", "payFrequency"},
		Frequencies: []string{"monthly", "bi-weekly", "weekly"},
	})
}

func (h *LoanHandler) Calculate(c echo.Context) error {
	if wantsReset(c) {
		return c.Redirect(http.StatusSeeOther, "/loan")
	}
	var req loanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, invalidInput(err))
	}
	dto, err := h.uc.Calculate(c.Request().Context(), loan.Form(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
