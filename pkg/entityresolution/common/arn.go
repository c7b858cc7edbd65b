// Package common holds what the Entity Resolution resource types share: ARN helpers, tag
// conversion and reconciliation, provider properties and backend error mapping.
package common

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
)

// Service is the ARN service namespace of Entity Resolution.
const Service = "entityresolution"

// Resource-type segments used in Entity Resolution ARNs.
const (
	MatchingWorkflowResource  = "matchingworkflow"
	IdMappingWorkflowResource = "idmappingworkflow"
	SchemaMappingResource     = "schemamapping"
)

var ErrMalformedArn = errors.New("malformed ARN")

// ResourceArn formats arn:{partition}:entityresolution:{region}:{account}:{resourceType}/{name}.
func ResourceArn(partition, region, accountID, resourceType, name string) string {
	return arn.ARN{
		Partition: partition,
		Service:   Service,
		Region:    region,
		AccountID: accountID,
		Resource:  resourceType + "/" + name,
	}.String()
}

// NameFromArn returns what follows the last '/' of an ARN.
func NameFromArn(resourceArn string) (string, error) {
	idx := strings.LastIndex(resourceArn, "/")
	if idx < 0 {
		return "", fmt.Errorf("%w: %q has no resource name segment", ErrMalformedArn, resourceArn)
	}
	return resourceArn[idx+1:], nil
}

// SchemaArnFromWorkflowArn rebuilds a schema mapping ARN from its bare name. The backend only
// returns schema names, so the schema mapping is assumed to live in the partition, region and
// account of the workflow that references it.
func SchemaArnFromWorkflowArn(workflowArn, schemaName string) (string, error) {
	parsed, err := arn.Parse(workflowArn)
	if err != nil {
		return "", fmt.Errorf("%w: workflow ARN %q: %v", ErrMalformedArn, workflowArn, err)
	}
	if parsed.Service != Service {
		return "", fmt.Errorf("%w: workflow ARN %q is not an %s ARN", ErrMalformedArn, workflowArn, Service)
	}
	return ResourceArn(parsed.Partition, parsed.Region, parsed.AccountID, SchemaMappingResource, schemaName), nil
}

// FormatTimestamp renders a backend timestamp the way resource models carry it.
func FormatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
