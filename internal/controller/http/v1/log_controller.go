package httpv1

import (
	"errors"
	"net/http"
	"strings"

	logginghelper "github.com/altiguard/altiguard/internal/controller/common/logging"
	"github.com/altiguard/altiguard/internal/controller/http/validators"
	"github.com/altiguard/altiguard/internal/domain"
	"github.com/altiguard/altiguard/internal/service"
	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer "

type IngestResponse struct {
	Message string            `json:"message"`
	Data    *domain.LogRecord `json:"data,omitempty"`
}

type LogController struct {
	logService service.Log
}

func NewLogController(ls service.Log) *LogController {
	return &LogController{
		logService: ls,
	}
}

func (c *LogController) Ingest(ctx echo.Context) error {
	auth := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, bearerScheme) {
		return ctx.JSON(http.StatusUnauthorized, IngestResponse{
			Message: "missing or malformed bearer credential",
		})
	}
	apiKey := strings.TrimPrefix(auth, bearerScheme)

	payload := &validators.LogPayload{}
	if err := ctx.Bind(payload); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, IngestResponse{
			Message: "invalid request body",
		})
	}

	if err := validators.Validate(payload); err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, IngestResponse{
			Message: err.Error(),
		})
	}

	record := &domain.LogRecord{
		ApiKey: apiKey,
		Input:  *payload.Input,
		Output: *payload.Output,
	}

	logginghelper.LogReceived(record)

	stored, err := c.logService.Ingest(ctx.Request().Context(), record)
	if err != nil {
		if errors.Is(err, service.ErrAmbiguousWriteAck) {
			// The store accepted the insert but returned nothing, so
			// durability cannot be confirmed from here.
			return ctx.JSON(http.StatusOK, IngestResponse{
				Message: "Warning: no data returned from store insert",
			})
		}
		logginghelper.LogError(record, err)
		return ctx.JSON(http.StatusInternalServerError, IngestResponse{
			Message: "internal error",
		})
	}

	logginghelper.LogStored(stored)

	return ctx.JSON(http.StatusOK, IngestResponse{
		Message: "Log stored successfully",
		Data:    stored,
	})
}
