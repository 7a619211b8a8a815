package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

var ErrPositionNotFound = errors.New("position not found")

// EdgeRecord - one successor link of a stored position.
type EdgeRecord struct {
	Cell  int    `json:"cell"`
	Child string `json:"child"`
}

// PositionRecord - a solved position as stored for external consumers:
// the facts, the finalized value and the adjacent keys.
type PositionRecord struct {
	Key      string       `json:"key"`
	Depth    int          `json:"depth"`
	Mover    string       `json:"mover"`
	Status   string       `json:"status"`
	Value    int          `json:"value"`
	Children []EdgeRecord `json:"children,omitempty"`
	Parents  []string     `json:"parents,omitempty"`
}

// NewPositionRecord - builds the record for one key of a propagated graph.
func NewPositionRecord(graph *solver.Graph, key string) (*PositionRecord, error) {
	node, err := graph.Lookup(key)
	if err != nil {
		return nil, fmt.Errorf("could not build record: %w", err)
	}

	value, err := node.Value()
	if err != nil {
		return nil, fmt.Errorf("could not build record: %w", err)
	}

	record := &PositionRecord{
		Key:     key,
		Depth:   node.Position.Depth,
		Mover:   node.Position.Mover,
		Status:  node.Position.Status,
		Value:   value,
		Parents: graph.Parents(key),
	}

	for _, edge := range graph.Children(key) {
		record.Children = append(record.Children, EdgeRecord{Cell: edge.Cell, Child: edge.Child})
	}

	return record, nil
}

type PositionRepository interface {
	Save(ctx context.Context, record *PositionRecord) error
	SaveAll(ctx context.Context, records []*PositionRecord) error
	GetByKey(ctx context.Context, key string) (*PositionRecord, error)
	DeleteByKey(ctx context.Context, key string) error
}

type dbPosition struct {
	client *redis.Client
}

func NewPositionRepository(client *redis.Client) PositionRepository {
	return &dbPosition{
		client: client,
	}
}

func (that *dbPosition) Save(ctx context.Context, record *PositionRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal position: %w", err)
	}

	positionKey := "position:" + record.Key
	if err = that.client.Set(ctx, positionKey, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set position: %w", err)
	}

	return nil
}

func (that *dbPosition) SaveAll(ctx context.Context, records []*PositionRecord) error {
	pipe := that.client.Pipeline()

	for _, record := range records {
		recordJSON, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("could not marshal position %q: %w", record.Key, err)
		}

		pipe.Set(ctx, "position:"+record.Key, recordJSON, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save positions: %w", err)
	}

	return nil
}

func (that *dbPosition) GetByKey(ctx context.Context, key string) (*PositionRecord, error) {
	positionKey := "position:" + key

	response, err := that.client.Get(ctx, positionKey).Result()

	if errors.Is(err, redis.Nil) {
		return &PositionRecord{}, ErrPositionNotFound
	}

	if err != nil {
		return &PositionRecord{}, fmt.Errorf("failed to get position by key: %w", err)
	}

	var existingRecord PositionRecord
	if err = json.Unmarshal([]byte(response), &existingRecord); err != nil {
		return &PositionRecord{}, fmt.Errorf("failed to unmarshal position: %w", err)
	}

	return &existingRecord, nil
}

func (that *dbPosition) DeleteByKey(ctx context.Context, key string) error {
	positionKey := "position:" + key

	if err := that.client.Del(ctx, positionKey).Err(); err != nil {
		return fmt.Errorf("failed to delete position by key: %w", err)
	}

	return nil
}
