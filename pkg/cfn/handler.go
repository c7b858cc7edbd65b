package cfn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// Handler is the full CRUDL surface of one resource type.
type Handler[M any] interface {
	Create(ctx context.Context, req *Request[M]) (*ProgressEvent[M], error)
	Read(ctx context.Context, req *Request[M]) (*ProgressEvent[M], error)
	Update(ctx context.Context, req *Request[M]) (*ProgressEvent[M], error)
	Delete(ctx context.Context, req *Request[M]) (*ProgressEvent[M], error)
	List(ctx context.Context, req *Request[M]) (*ProgressEvent[M], error)
}

// Invoke dispatches req to the handler for action. Handler errors never escape: they are
// reported as a FAILED event, the way the CloudFormation wrapper reports them.
func Invoke[M any](ctx context.Context, h Handler[M], action Action, req *Request[M]) *ProgressEvent[M] {
	var (
		event *ProgressEvent[M]
		err   error
	)

	switch action {
	case Create:
		event, err = h.Create(ctx, req)
	case Read:
		event, err = h.Read(ctx, req)
	case Update:
		event, err = h.Update(ctx, req)
	case Delete:
		event, err = h.Delete(ctx, req)
	case List:
		event, err = h.List(ctx, req)
	default:
		err = Errorf(types.HandlerErrorCodeInvalidRequest, "unsupported action %q", action)
	}

	if err != nil {
		return Failed[M](err)
	}
	if event == nil {
		return Failed[M](Errorf(types.HandlerErrorCodeInternalFailure, "%s handler returned no progress event", action))
	}
	return event
}

// RawHandler runs a handler on an encoded request and returns the encoded event. It is
// what callers that only know a resource type name (CLI, MCP tools) hold.
type RawHandler interface {
	HandleRaw(ctx context.Context, action Action, payload []byte) ([]byte, error)
}

type rawHandler[M any] struct {
	handler Handler[M]
}

// NewRawHandler adapts a typed handler to the RawHandler interface.
func NewRawHandler[M any](h Handler[M]) RawHandler {
	return &rawHandler[M]{handler: h}
}

// HandleRaw decodes payload as a Request[M]. A payload that does not decode produces an
// InvalidRequest event, not an error; the returned error is reserved for encoding failures.
func (r *rawHandler[M]) HandleRaw(ctx context.Context, action Action, payload []byte) ([]byte, error) {
	var event *ProgressEvent[M]

	req, err := DecodeRequest[M](payload)
	if err != nil {
		event = Failed[M](NewError(types.HandlerErrorCodeInvalidRequest, err))
	} else {
		event = Invoke(ctx, r.handler, action, req)
	}

	out, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode progress event: %w", err)
	}
	return out, nil
}

// DecodeRequest decodes a JSON handler request. Fields this package does not model, such as
// callbackContext or typeConfiguration, are ignored.
func DecodeRequest[M any](payload []byte) (*Request[M], error) {
	req := &Request[M]{}
	if len(bytes.TrimSpace(payload)) == 0 {
		return req, nil
	}

	if err := json.Unmarshal(payload, req); err != nil {
		return nil, fmt.Errorf("failed to decode handler request: %w", err)
	}
	return req, nil
}
