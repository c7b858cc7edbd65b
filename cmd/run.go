package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/helpers"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/jq"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/message"
	o "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/options"
	outputproviders "github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/output_providers"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/internal/registry"
	"github.com/aws-cloudformation/aws-cloudformation-resource-providers-entityresolution/pkg/cfn"
)

// awsSession resolves the AWS configuration, client and request defaults once per process.
// The MCP server shares one across every tool call.
type awsSession struct {
	once     sync.Once
	client   *entityresolution.Client
	defaults helpers.RequestDefaults
	err      error
}

var session = &awsSession{}

func (s *awsSession) init(ctx context.Context) error {
	s.once.Do(func() {
		cfg, err := helpers.GetAWSCfg(ctx, awsRegion, awsProfile, logger)
		if err != nil {
			s.err = err
			return
		}

		identity, err := helpers.GetCallerIdentity(ctx, sts.NewFromConfig(cfg))
		if err != nil {
			s.err = err
			return
		}
		logger.Debug("Resolved caller identity", "account", identity.AccountID, "partition", identity.Partition, "region", cfg.Region)

		s.client = helpers.NewEntityResolutionClient(cfg)
		s.defaults = helpers.RequestDefaults{
			AccountID: identity.AccountID,
			Partition: identity.Partition,
			Region:    cfg.Region,
		}
	})
	return s.err
}

// invoke runs one handler action on an encoded request and returns the encoded progress event.
func (s *awsSession) invoke(ctx context.Context, entry registry.RegistryEntry, action cfn.Action, payload []byte) ([]byte, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}

	payload, err := helpers.ApplyDefaults(payload, s.defaults)
	if err != nil {
		return nil, err
	}

	logger.Debug("Invoking handler", "type", entry.TypeName, "action", action)
	return entry.New(s.client, logger).HandleRaw(ctx, action, payload)
}

// eventSummary is the part of any progress event the CLI inspects.
type eventSummary struct {
	Status    types.OperationStatus  `json:"status"`
	ErrorCode types.HandlerErrorCode `json:"errorCode"`
	Message   string                 `json:"message"`
}

// FailedError reports a progress event whose status is FAILED.
type FailedError struct {
	TypeName  string
	Action    cfn.Action
	ErrorCode types.HandlerErrorCode
	Message   string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%s %s failed with %s: %s", e.TypeName, e.Action, e.ErrorCode, e.Message)
}

// renderEvent applies query to event, or indents it when query is empty.
func renderEvent(event []byte, query string) (string, error) {
	if query != "" {
		out, err := jq.PerformJqQuery(event, query)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, event, "", "  "); err != nil {
		return "", fmt.Errorf("failed to format progress event: %w", err)
	}
	return out.String(), nil
}

// checkEvent turns a FAILED event into a *FailedError.
func checkEvent(entry registry.RegistryEntry, action cfn.Action, event []byte) error {
	var summary eventSummary
	if err := json.Unmarshal(event, &summary); err != nil {
		return fmt.Errorf("failed to decode progress event: %w", err)
	}

	if summary.Status != types.OperationStatusFailed {
		return nil
	}
	return &FailedError{
		TypeName:  entry.TypeName,
		Action:    action,
		ErrorCode: summary.ErrorCode,
		Message:   summary.Message,
	}
}

// runRequest is one CLI handler invocation.
type runRequest struct {
	entry       registry.RegistryEntry
	action      cfn.Action
	requestPath string
	query       string
	outputPath  string
	fileName    string
}

func newRunRequest(entry registry.RegistryEntry, action cfn.Action, opts []*o.Option) runRequest {
	value := func(name string) string {
		if opt := o.GetOptionByName(name, opts); opt != nil {
			return opt.Value
		}
		return ""
	}
	return runRequest{
		entry:       entry,
		action:      action,
		requestPath: value(o.RequestOpt.Name),
		query:       value(o.QueryOpt.Name),
		outputPath:  value(o.OutputOpt.Name),
		fileName:    value(o.FileNameOpt.Name),
	}
}

func (r runRequest) providers(out io.Writer) []outputproviders.OutputProvider {
	providers := []outputproviders.OutputProvider{outputproviders.NewConsoleProvider(out)}
	if r.outputPath != "" {
		providers = append(providers, outputproviders.NewJsonFileProvider(r.outputPath, r.fileName))
	}
	return providers
}

// runHandler loads the request, runs the handler and hands the event to the output providers.
// An empty request path sends an empty request.
func runHandler(ctx context.Context, r runRequest, stdin io.Reader, out io.Writer) error {
	entry, action := r.entry, r.action

	var (
		payload []byte
		err     error
	)
	if r.requestPath != "" {
		payload, err = helpers.LoadRequest(r.requestPath, stdin)
		if err != nil {
			return err
		}
	}

	message.Section("%s %s", entry.TypeName, action)
	event, err := session.invoke(ctx, entry, action, payload)
	if err != nil {
		return err
	}

	rendered, err := renderEvent(event, r.query)
	if err != nil {
		return err
	}
	result := outputproviders.Result{
		Resource: entry.TypeHierarchy.Resource,
		Action:   string(action),
		Event:    event,
		Rendered: rendered,
	}
	if err := outputproviders.WriteAll(r.providers(out), result); err != nil {
		return err
	}

	if err := checkEvent(entry, action, event); err != nil {
		return err
	}
	message.Success("%s %s completed", entry.TypeName, action)
	return nil
}
