// Package handler implements the generic HTTP handler layer: the uniform
// response envelope, panic-safe execution and the reusable CRUD endpoints.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/GreenD94/ladingburger-sub002/internal/common"
	"github.com/GreenD94/ladingburger-sub002/internal/logger"
)

// JSONResponse is the envelope every endpoint returns. status is "success"
// or "error"; code carries the HTTP status on success and the structured
// error code on failure.
type JSONResponse struct {
	Code    interface{} `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Status  string      `json:"status"`
}

// SafeHandler runs fn with a recover guard so a panicking handler returns a
// 500 envelope instead of dropping the connection.
func SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().WithField("panic", r).Error("Handler panic recovered")
			_ = c.Status(common.StatusInternalServerError).JSON(JSONResponse{
				Code:    common.ErrCodeInternalServer.Code,
				Message: common.MsgInternalError,
				Status:  "error",
			})
		}
	}()

	return fn()
}

// HandleResponse writes the uniform envelope for a service result. A
// *common.Error decides status code and error code; any other error becomes
// a generic 500.
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			_ = c.Status(customErr.StatusCode).JSON(JSONResponse{
				Code:    customErr.Code.Code,
				Message: customErr.Message,
				Details: customErr.Details,
				Status:  "error",
			})
			return
		}

		logger.GetErrorLogger().WithError(err).Error("Unhandled service error")
		_ = c.Status(common.StatusInternalServerError).JSON(JSONResponse{
			Code:    common.ErrCodeInternalServer.Code,
			Message: common.MsgInternalError,
			Status:  "error",
		})
		return
	}

	_ = c.Status(common.StatusOK).JSON(JSONResponse{
		Code:    common.StatusOK,
		Message: common.MsgSuccess,
		Data:    data,
		Status:  "success",
	})
}
