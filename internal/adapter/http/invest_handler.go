package http

import (
	"net/http"

	"fincalc/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

type InvestHandler struct{ uc *investment.Usecase }

func NewInvestHandler(uc *investment.Usecase) *InvestHandler { return &InvestHandler{uc: uc} }

type investReq struct {
	InitialDeposit string `json:"initialDeposit" form:"initialDeposit" validate:"omitempty,max=32,decimal"`
	MonthlyDeposit string `json:"monthlyDeposit" form:"monthlyDeposit" validate:"omitempty,max=32,decimal"`
	InterestRate   string `json:"interestRate"   form:"interestRate"   validate:"omitempty,max=32,decimal"`
	Years          string `json:"years"          form:"years"          validate:"omitempty,max=32,wholenum"`
}

// Form describes the empty investment form.
func (h *InvestHandler) Form(c echo.Context) error {
	return c.JSON(http.StatusOK, formDescription{
		Submit: false,
		Fields: []string{"initialDeposit", "monthlyDeposit", "interestRate", "years"},
	})
}

func (h *InvestHandler) Calculate(c echo.Context) error {
	if wantsReset(c) {
		return c.Redirect(http.StatusSeeOther, "/invest")
	}
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, invalidInput(err))
	}
	dto, err := h.uc.Calculate(c.Request().Context(), investment.Form(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
