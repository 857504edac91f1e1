// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package adjust

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR TAXONOMY
// =============================================================================

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrConfiguration = errors.New("adjust: missing API credential")
	ErrEmptyResponse = errors.New("adjust: no response from model")
	ErrService       = errors.New("adjust: service call failed")
)

// ConfigurationError means no API credential was available for the call.
type ConfigurationError struct {
	Provider string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: API key is missing; set credentials.api_key or THAITONE_API_KEY", e.Provider)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// EmptyResponseError means the model answered without usable text.
type EmptyResponseError struct {
	Provider string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("%s: no response from model", e.Provider)
}

func (e *EmptyResponseError) Is(target error) bool {
	return target == ErrEmptyResponse
}

// ServiceError wraps any other transport or service failure.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: service error: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	return target == ErrService
}

// Category names the error class of err for logging.
func Category(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	default:
		return "service"
	}
}
