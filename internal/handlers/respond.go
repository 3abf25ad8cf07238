package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"StockDLC/internal/apperr"
	"StockDLC/internal/model"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	// outcome принимает те же значения, что и model.ParseOutcome
	_ = v.RegisterValidation("outcome", func(fl validator.FieldLevel) bool {
		_, err := model.ParseOutcome(fl.Field().String())
		return err == nil
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError переводит вид ошибки в HTTP-статус.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	typed := apperr.As(err)
	if typed == nil {
		typed = apperr.Wrap(apperr.CodeInternal, err, "unexpected error")
	}
	writeErrorStatus(w, logger, apperr.MetadataFor(typed.Code()).HTTPStatus, typed)
}

func writeErrorStatus(w http.ResponseWriter, logger *zap.SugaredLogger, status int, typed *apperr.Error) {
	meta := apperr.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	if typed.Code() != apperr.CodeInternal && typed.Message() != "" {
		msg = typed.Message()
	}
	payload := errorEnvelope{Error: apiError{Code: string(typed.Code()), Message: msg}}
	if meta.DetailsAllowed {
		payload.Error.Details = typed.Details()
	}

	if status >= http.StatusInternalServerError {
		logger.Errorw("request failed", "status", status, "error", typed)
	} else {
		logger.Debugw("request rejected", "status", status, "error", typed)
	}
	writeJSON(w, status, payload)
}

// decodeJSONBody читает тело и проверяет его тегами validate.
// Ошибки тела отдаются как 422.
func decodeJSONBody(r *http.Request, dest any) *apperr.Error {
	defer func() {
		_, _ = io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return apperr.Wrap(apperr.CodeValidation, err, "invalid request body").
			WithDetails(map[string]any{"error": err.Error()})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *apperr.Error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		details := map[string]string{}
		for _, fe := range errs {
			details[fe.Field()] = validationMessage(fe)
		}
		return apperr.New(apperr.CodeValidation, "validation failed").WithDetails(details)
	}
	return apperr.Wrap(apperr.CodeValidation, err, "validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", "YYYY-MM-DD")
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "outcome":
		return "must be one of consumed, wasted (or consomme, perdu)"
	}
	return "is invalid"
}

func parseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("query parameter %s must be numeric", key).
			WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, apperr.Validation("query parameter %s out of range", key).
			WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}
