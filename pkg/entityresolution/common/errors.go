package common

import (
	"errors"
	"strings"

	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution/types"
	"github.com/aws/smithy-go"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

// MapError translates an Entity Resolution API error into a handler error. It is applied once
// at every backend call site; nothing is retried here.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var herr *cfn.HandlerError
	if errors.As(err, &herr) {
		return herr
	}

	var (
		accessDenied *types.AccessDeniedException
		notFound     *types.ResourceNotFoundException
		exceedsLimit *types.ExceedsLimitException
		internal     *types.InternalServerException
		validation   *types.ValidationException
	)

	switch {
	case errors.As(err, &accessDenied):
		return newBackendError(cfntypes.HandlerErrorCodeAccessDenied, err)
	case errors.As(err, &notFound):
		return newBackendError(cfntypes.HandlerErrorCodeNotFound, err)
	case errors.As(err, &exceedsLimit):
		return newBackendError(cfntypes.HandlerErrorCodeServiceLimitExceeded, err)
	case errors.As(err, &internal):
		return newBackendError(cfntypes.HandlerErrorCodeServiceInternalError, err)
	case errors.As(err, &validation):
		return newBackendError(cfntypes.HandlerErrorCodeInvalidRequest, err)
	default:
		return newBackendError(cfntypes.HandlerErrorCodeGeneralServiceException, err)
	}
}

// MapCreateError is MapError for create calls: a conflict whose message contains
// alreadyExists means the resource exists, any other conflict is an invalid request.
func MapCreateError(err error, alreadyExists string) error {
	var conflict *types.ConflictException
	if errors.As(err, &conflict) {
		if strings.Contains(conflict.ErrorMessage(), alreadyExists) {
			return newBackendError(cfntypes.HandlerErrorCodeAlreadyExists, err)
		}
		return newBackendError(cfntypes.HandlerErrorCodeInvalidRequest, err)
	}
	return MapError(err)
}

// IsNotFound reports whether err is the backend's not-found exception.
func IsNotFound(err error) bool {
	var notFound *types.ResourceNotFoundException
	return errors.As(err, &notFound)
}

func newBackendError(code cfntypes.HandlerErrorCode, err error) *cfn.HandlerError {
	herr := cfn.NewError(code, err)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		herr.Message = apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()
	}
	return herr
}

// InvalidModel reports a resource model that cannot be translated into a request.
func InvalidModel(err error) error {
	return cfn.NewError(cfntypes.HandlerErrorCodeInvalidRequest, err)
}

// InvalidResponse reports a backend response that cannot be translated into a resource model.
func InvalidResponse(err error) error {
	return cfn.NewError(cfntypes.HandlerErrorCodeInternalFailure, err)
}
