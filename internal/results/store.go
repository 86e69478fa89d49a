// Package results persists anonymous assessment placements as per-cell
// counters in MongoDB. No user identity is stored, only which matrix cell a
// completed assessment landed in.
package results

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "assessment_results"

var stages = []string{"E", "P", "I", "A", "S"}

// Heatmap is the aggregated 6x5 count grid. Enabled is false when no store
// is configured, so the front end can hide the view instead of showing an
// all-zero grid.
type Heatmap struct {
	Counts    map[string]int64 `json:"counts"`
	Total     int64            `json:"total"`
	Enabled   bool             `json:"enabled"`
	UpdatedAt string           `json:"updated_at"`
}

// Store wraps the results collection. A nil *Store disables persistence:
// every method is a no-op returning empty data.
type Store struct {
	coll *mongo.Collection
}

func NewStore(client *mongo.Client, dbName string) *Store {
	if client == nil {
		return nil
	}
	return &Store{coll: client.Database(dbName).Collection(collectionName)}
}

// IncrementCell bumps the counter for one matrix cell atomically.
func (s *Store) IncrementCell(ctx context.Context, level int, stage string) error {
	if s == nil {
		return nil
	}
	cellKey := fmt.Sprintf("%d_%s", level, stage)
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"cell_key": cellKey},
		bson.M{
			"$inc": bson.M{"count": 1},
			"$set": bson.M{
				"sae_level":   level,
				"epias_stage": stage,
				"updated_at":  time.Now().UTC(),
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("increment cell %s: %w", cellKey, err)
	}
	return nil
}

// HeatmapData aggregates all cell counters into the full 6x5 grid, with
// zeroes for cells no assessment has landed in yet.
func (s *Store) HeatmapData(ctx context.Context) (Heatmap, error) {
	counts := make(map[string]int64, 30)
	for level := 0; level <= 5; level++ {
		for _, stage := range stages {
			counts[fmt.Sprintf("%d_%s", level, stage)] = 0
		}
	}
	hm := Heatmap{
		Counts:    counts,
		Enabled:   s != nil,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if s == nil {
		return hm, nil
	}

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return hm, fmt.Errorf("query results: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc struct {
			CellKey string `bson:"cell_key"`
			Count   int64  `bson:"count"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return hm, fmt.Errorf("decode result: %w", err)
		}
		if _, ok := counts[doc.CellKey]; ok {
			counts[doc.CellKey] = doc.Count
			hm.Total += doc.Count
		}
	}
	if err := cursor.Err(); err != nil {
		return hm, fmt.Errorf("iterate results: %w", err)
	}
	return hm, nil
}
