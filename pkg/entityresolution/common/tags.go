package common

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/entityresolution"
)

// Tag is one CloudFormation key/value pair.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// TaggingAPI is the part of the Entity Resolution client that reconciles tags.
type TaggingAPI interface {
	TagResource(ctx context.Context, params *entityresolution.TagResourceInput, optFns ...func(*entityresolution.Options)) (*entityresolution.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *entityresolution.UntagResourceInput, optFns ...func(*entityresolution.Options)) (*entityresolution.UntagResourceOutput, error)
}

// TagsMapToSet converts backend tags to the model's list of pairs, sorted by key.
// Nil and empty maps both yield nil.
func TagsMapToSet(tags map[string]string) []Tag {
	if len(tags) == 0 {
		return nil
	}

	set := make([]Tag, 0, len(tags))
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		set = append(set, Tag{Key: key, Value: tags[key]})
	}
	return set
}

// TagsSetToMap converts model tags to a map. Duplicate keys collapse, the last pair wins.
// A nil list stays nil and an empty list gives an empty map.
func TagsSetToMap(tags []Tag) map[string]string {
	if tags == nil {
		return nil
	}

	m := make(map[string]string, len(tags))
	for _, tag := range tags {
		m[tag.Key] = tag.Value
	}
	return m
}

// DesiredTags is what a create call sends: nil unless there is at least one tag.
func DesiredTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// ReconcileTags converges a resource's tags from previous to desired. Every previous key is
// untagged in one call, then every desired tag is applied in one call. The untag call always
// comes first and a side with no tags issues no call. Progress is logged on logger, or the
// default logger when nil.
func ReconcileTags(ctx context.Context, client TaggingAPI, logger *slog.Logger, resourceArn string, previous, desired map[string]string) error {
	if logger == nil {
		logger = slog.Default()
	}

	if len(previous) > 0 {
		keys := slices.Sorted(maps.Keys(previous))
		if _, err := client.UntagResource(ctx, &entityresolution.UntagResourceInput{
			ResourceArn: aws.String(resourceArn),
			TagKeys:     keys,
		}); err != nil {
			return err
		}
		logger.Debug("Removed previous tags", "arn", resourceArn, "keys", keys)
	}

	if len(desired) > 0 {
		if _, err := client.TagResource(ctx, &entityresolution.TagResourceInput{
			ResourceArn: aws.String(resourceArn),
			Tags:        desired,
		}); err != nil {
			return err
		}
		logger.Debug("Applied desired tags", "arn", resourceArn, "count", len(desired))
	}

	return nil
}
