package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"grafica_xpto/internal/adapter/http/middleware"
	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/workflow"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Path id must be a positive integer", http.StatusBadRequest)
	errNoPrincipal    = pkg.NewDomainErrorSimple("MISSING_PRINCIPAL", "Missing or invalid identity headers", http.StatusUnauthorized)
)

// mapWorkflowError translates domain rejections into the HTTP error envelope.
// Every typed rejection carries its structure into `details` so clients can
// render allowed targets, required roles or the offending field.
func mapWorkflowError(err error) *pkg.AppError {
	var (
		sameState  *workflow.SameStateError
		invalid    *workflow.InvalidTransitionError
		permission *workflow.PermissionError
		state      *workflow.InvalidStateError
		immutable  *workflow.ImmutableFieldError
		conflict   *workflow.ConflictError
		validation *workflow.ValidationError
	)

	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).
			WithDetails(map[string]interface{}{"field": validation.Field, "reason": validation.Reason})

	case errors.As(err, &permission):
		return pkg.NewDomainErrorSimple("PERMISSION_DENIED", "Role may not perform this operation", http.StatusForbidden).
			WithDetails(map[string]interface{}{
				"role":           string(permission.Role),
				"target":         permission.Target,
				"required_roles": roleNames(permission.Required),
			})

	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orcamento not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("PEDIDO_NOT_FOUND", "Pedido not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrFaturaNotFound):
		return pkg.NewDomainErrorSimple("FATURA_NOT_FOUND", "Fatura not found", http.StatusNotFound)

	case errors.As(err, &sameState):
		return pkg.NewDomainErrorSimple("SAME_STATE", "Entity is already in the requested status", http.StatusConflict).
			WithDetails(map[string]interface{}{"status": sameState.Status})

	case errors.As(err, &invalid):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition is not allowed from the current status", http.StatusConflict).
			WithDetails(map[string]interface{}{
				"from":                invalid.From,
				"to":                  invalid.To,
				"allowed_transitions": invalid.Allowed,
			})

	case errors.As(err, &state):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation precondition not met", http.StatusConflict).
			WithDetails(map[string]interface{}{
				"operation": state.Operation,
				"expected":  state.Expected,
				"actual":    state.Actual,
			})

	case errors.As(err, &immutable):
		return pkg.NewDomainErrorSimple("IMMUTABLE_FIELD", "Field cannot be changed after creation", http.StatusConflict).
			WithDetails(map[string]interface{}{
				"field":     immutable.Field,
				"current":   immutable.Current,
				"attempted": immutable.Attempted,
			})

	case errors.As(err, &conflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Entity was modified concurrently, reload and retry", http.StatusConflict).
			WithDetails(map[string]interface{}{"expected_status": conflict.Expected})

	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func roleNames(roles []entities.Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// idParam parses the positive integer path id or writes a 400 and reports
// failure.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return 0, false
	}
	return id, true
}

// principalOrAbort fetches the principal set by the middleware or writes a 401.
func principalOrAbort(c *gin.Context) (entities.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errNoPrincipal.HTTPStatus, errNoPrincipal.ToHTTPError())
		return entities.Principal{}, false
	}
	return p, true
}
