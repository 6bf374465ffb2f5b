package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fxledger/internal/repositories"
	"fxledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActivityQuery is the pagination of the listing endpoints
type ActivityQuery struct {
	Offset int `query:"offset" json:"offset" validate:"min=0"`
	Limit  int `query:"limit" json:"limit" validate:"min=1,max=100"`
}

// AuditHandler serves read access to the audit store
type AuditHandler struct {
	audit services.AuditServiceInterface
}

func NewAuditHandler(audit services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// SessionActivity lists the events of one session, oldest first
func (h *AuditHandler) SessionActivity(c echo.Context) error {
	logs, err := h.audit.GetSessionActivity(c.Param("session_id"))
	if err != nil {
		return auditError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: logs})
}

// ClientActivity lists the events of one client, newest first
func (h *AuditHandler) ClientActivity(c echo.Context) error {
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id must be an unsigned integer")
	}

	query, err := bindActivityQuery(c)
	if err != nil {
		return err
	}

	logs, total, err := h.audit.GetClientActivity(uint32(clientID), query.Offset, query.Limit)
	if err != nil {
		return auditError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: PageMeta{Offset: query.Offset, Limit: query.Limit, Total: total},
	})
}

// ActionActivity lists the events of one action, newest first
func (h *AuditHandler) ActionActivity(c echo.Context) error {
	action := c.Param("action")
	if err := services.ValidateActivityType(action); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	query, err := bindActivityQuery(c)
	if err != nil {
		return err
	}

	logs, total, err := h.audit.GetActionActivity(action, query.Offset, query.Limit)
	if err != nil {
		return auditError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: PageMeta{Offset: query.Offset, Limit: query.Limit, Total: total},
	})
}

func (h *AuditHandler) Event(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a UUID")
	}

	event, err := h.audit.GetEvent(id)
	if err != nil {
		return auditError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: event})
}

// FailedLogins counts failed logins of a username, by default over the last hour
func (h *AuditHandler) FailedLogins(c echo.Context) error {
	window := time.Hour
	if raw := c.QueryParam("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "window must be a positive duration")
		}
		window = parsed
	}

	username := c.Param("username")
	count, err := h.audit.CountFailedLogins(username, window)
	if err != nil {
		return auditError(err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: map[string]interface{}{
		"username":      username,
		"window":        window.String(),
		"failed_logins": count,
	}})
}

func bindActivityQuery(c echo.Context) (ActivityQuery, error) {
	query := ActivityQuery{Limit: 20}
	if err := c.Bind(&query); err != nil {
		return query, echo.NewHTTPError(http.StatusBadRequest, "invalid pagination")
	}
	if err := c.Validate(query); err != nil {
		return query, err
	}
	return query, nil
}

func auditError(err error) error {
	switch {
	case errors.Is(err, services.ErrAuditDisabled):
		return echo.NewHTTPError(http.StatusNotFound, "audit store is disabled")
	case errors.Is(err, repositories.ErrAuditLogNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidSessionID):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
