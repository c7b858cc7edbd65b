package cfn

import (
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// ProgressEvent is a handler's reply.
type ProgressEvent[M any] struct {
	Status               types.OperationStatus  `json:"status"`
	ErrorCode            types.HandlerErrorCode `json:"errorCode,omitempty"`
	Message              string                 `json:"message,omitempty"`
	CallbackContext      map[string]any         `json:"callbackContext,omitempty"`
	CallbackDelaySeconds int                    `json:"callbackDelaySeconds,omitempty"`
	ResourceModel        *M                     `json:"resourceModel,omitempty"`
	ResourceModels       []M                    `json:"resourceModels,omitempty"`
	NextToken            string                 `json:"nextToken,omitempty"`
}

// plainEvent has ProgressEvent's fields without its MarshalJSON.
type plainEvent[M any] ProgressEvent[M]

// listEvent is the wire shape of a list page: resourceModels is present even when empty.
type listEvent[M any] struct {
	Status               types.OperationStatus  `json:"status"`
	ErrorCode            types.HandlerErrorCode `json:"errorCode,omitempty"`
	Message              string                 `json:"message,omitempty"`
	CallbackContext      map[string]any         `json:"callbackContext,omitempty"`
	CallbackDelaySeconds int                    `json:"callbackDelaySeconds,omitempty"`
	ResourceModels       []M                    `json:"resourceModels"`
	NextToken            string                 `json:"nextToken,omitempty"`
}

// MarshalJSON writes a list page (non-nil ResourceModels) with its resourceModels key always
// present. Single-resource events never carry the key.
func (e ProgressEvent[M]) MarshalJSON() ([]byte, error) {
	if e.ResourceModels == nil {
		return json.Marshal(plainEvent[M](e))
	}
	return json.Marshal(listEvent[M]{
		Status:               e.Status,
		ErrorCode:            e.ErrorCode,
		Message:              e.Message,
		CallbackContext:      e.CallbackContext,
		CallbackDelaySeconds: e.CallbackDelaySeconds,
		ResourceModels:       e.ResourceModels,
		NextToken:            e.NextToken,
	})
}

// Success reports a completed single-resource operation. A nil model is valid and is what
// Delete returns.
func Success[M any](model *M) *ProgressEvent[M] {
	return &ProgressEvent[M]{
		Status:        types.OperationStatusSuccess,
		ResourceModel: model,
	}
}

// ListSuccess reports one page of a list operation. An empty page still encodes
// resourceModels as [].
func ListSuccess[M any](models []M, nextToken string) *ProgressEvent[M] {
	if models == nil {
		models = []M{}
	}
	return &ProgressEvent[M]{
		Status:         types.OperationStatusSuccess,
		ResourceModels: models,
		NextToken:      nextToken,
	}
}

// Failed folds err into a FAILED event.
func Failed[M any](err error) *ProgressEvent[M] {
	event := &ProgressEvent[M]{
		Status:    types.OperationStatusFailed,
		ErrorCode: ErrorCode(err),
	}
	var herr *HandlerError
	if errors.As(err, &herr) {
		event.Message = herr.Message
	} else if err != nil {
		event.Message = err.Error()
	}
	return event
}

// Succeeded reports whether the event finished successfully.
func (e *ProgressEvent[M]) Succeeded() bool {
	return e != nil && e.Status == types.OperationStatusSuccess
}
