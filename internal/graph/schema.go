package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/mindlog-ai/knowledge-engine/internal/types"
)

// Schema holds the label, relationship, and property metadata of the
// connected graph. It is loaded once at startup and read-only afterwards,
// so it may be shared across concurrent readers without locking.
type Schema struct {
	Labels            []string            `json:"node_labels"`
	RelationshipTypes []string            `json:"relationship_types"`
	Properties        map[string][]string `json:"node_properties"`
	LoadedAt          time.Time           `json:"schema_cached_at"`
}

// LoadSchema queries the graph for its labels, relationship types, and a
// sample of property names per label. Labels whose property sample query
// fails are skipped rather than failing the whole load.
func LoadSchema(ctx context.Context, client Client) (*Schema, error) {
	labelsResult, err := client.Query(ctx, "CALL db.labels()", nil)
	if err != nil {
		return nil, types.WrapError(types.SCHEMA_LOAD_FAILED, "failed to load node labels", err)
	}

	schema := &Schema{
		Labels:            []string{},
		RelationshipTypes: []string{},
		Properties:        make(map[string][]string),
		LoadedAt:          time.Now(),
	}

	for _, record := range labelsResult.Records {
		if label, ok := record["label"].(string); ok {
			schema.Labels = append(schema.Labels, label)
		}
	}

	relsResult, err := client.Query(ctx, "CALL db.relationshipTypes()", nil)
	if err != nil {
		return nil, types.WrapError(types.SCHEMA_LOAD_FAILED, "failed to load relationship types", err)
	}

	for _, record := range relsResult.Records {
		if relType, ok := record["relationshipType"].(string); ok {
			schema.RelationshipTypes = append(schema.RelationshipTypes, relType)
		}
	}

	for _, label := range schema.Labels {
		cypher := fmt.Sprintf("MATCH (n:%s) RETURN keys(n) as properties LIMIT 1", label)
		propResult, err := client.Query(ctx, cypher, nil)
		if err != nil || len(propResult.Records) == 0 {
			continue
		}

		props, ok := propResult.Records[0]["properties"].([]any)
		if !ok {
			continue
		}

		names := make([]string, 0, len(props))
		for _, p := range props {
			if name, ok := p.(string); ok {
				names = append(names, name)
			}
		}
		schema.Properties[label] = names
	}

	return schema, nil
}
