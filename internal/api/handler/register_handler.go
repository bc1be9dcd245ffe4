package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veridianlabs/identity-api/internal/api/metrics"
	"github.com/veridianlabs/identity-api/internal/core/domain"
	"github.com/veridianlabs/identity-api/internal/core/ports"
)

// registrationSuccessLocation is where a freshly registered user is sent.
const registrationSuccessLocation = "/login?msg=Registration+successful.+Please+log+in"

// RegisterHandler handles the self-service registration endpoints. The
// RegistrationGate middleware has already verified the feature is enabled
// by the time either handler runs.
type RegisterHandler struct {
	service ports.RegistrationService
}

func NewRegisterHandler(service ports.RegistrationService) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// --- Request / Response types ---

type registerRequest struct {
	EmailAddress string `form:"emailaddress" validate:"required,email"`
	Nickname     string `form:"nickname"     validate:"required"`
	Password     string `form:"password"     validate:"required"`
}

type registrationFormResponse struct {
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields"`
}

// Form handles GET /register, rendering the form descriptor with an
// optional message carried in the msg query parameter.
//
// @Summary      Registration form
// @Tags         registration
// @Produce      json
// @Param        msg  query     string  false  "Message to display above the form"
// @Success      200  {object}  registrationFormResponse
// @Failure      403  {object}  map[string]string
// @Router       /register [get]
func (h *RegisterHandler) Form(c echo.Context) error {
	return c.JSON(http.StatusOK, registrationFormResponse{
		Message: c.QueryParam("msg"),
		Fields:  []string{"emailaddress", "nickname", "password"},
	})
}

// Register handles POST /register. On success it answers with a
// permanent redirect to the login view carrying a success message; no
// session is established.
//
// @Summary      Register a new user
// @Tags         registration
// @Accept       x-www-form-urlencoded
// @Success      308
// @Failure      403  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /register [post]
func (h *RegisterHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsRejectedTotal.WithLabelValues("invalid_input").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		EmailAddress: req.EmailAddress,
		Nickname:     req.Nickname,
		Password:     req.Password,
	})
	if err != nil {
		metrics.RegistrationsRejectedTotal.WithLabelValues(registerRejectReason(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.Redirect(http.StatusPermanentRedirect, registrationSuccessLocation)
}

func registerRejectReason(err error) string {
	if errors.Is(err, domain.ErrUserExists) {
		return "identity_exists"
	}
	return "error"
}
