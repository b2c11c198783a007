//go:build cgo

package triplet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kuzu "github.com/kuzudb/go-kuzu"
)

// KuzuStore implements the Store interface using KuzuDB as the graph
// backend. It requires CGO because the go-kuzu driver wraps KuzuDB's C
// library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(":memory:", cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// NewKuzuFileStore creates a KuzuStore backed by a file-based KuzuDB at
// the given path, so a relation graph extracted once can be queried across
// training sessions.
func NewKuzuFileStore(dbPath string) (*KuzuStore, error) {
	// Ensure parent directory exists (KuzuDB creates the leaf directory).
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("kuzu: create parent directory: %w", err)
	}
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(dbPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open file database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// The node table must precede the relationship table.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS Entity(
		id INT64,
		name STRING,
		PRIMARY KEY(id)
	)`,
	`CREATE REL TABLE IF NOT EXISTS RELATES(FROM Entity TO Entity, relation INT64)`,
}

// InitSchema creates the node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// AddEntity inserts an Entity node.
func (s *KuzuStore) AddEntity(_ context.Context, id int, name string) error {
	return s.exec(
		"CREATE (e:Entity {id: $id, name: $name})",
		map[string]any{
			"id":   int64(id),
			"name": name,
		},
	)
}

// AddTriplet inserts a RELATES edge between two entities.
func (s *KuzuStore) AddTriplet(_ context.Context, t Triplet) error {
	return s.exec(
		`MATCH (a:Entity {id: $head}), (b:Entity {id: $tail})
		 CREATE (a)-[:RELATES {relation: $rel}]->(b)`,
		map[string]any{
			"head": int64(t.Head),
			"tail": int64(t.Tail),
			"rel":  int64(t.Relation),
		},
	)
}

// ---------- Read operations ----------

// EntityName retrieves a single entity name by id.
func (s *KuzuStore) EntityName(_ context.Context, id int) (string, bool, error) {
	rows, err := s.query(
		"MATCH (e:Entity {id: $id}) RETURN e.name",
		map[string]any{"id": int64(id)},
	)
	if err != nil {
		return "", false, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", false, nil
	}
	return toString(rows[0][0]), true, nil
}

// CountByRelation returns triplet counts grouped by relation value.
func (s *KuzuStore) CountByRelation(_ context.Context) (map[int]int, error) {
	rows, err := s.query(
		`MATCH (:Entity)-[r:RELATES]->(:Entity)
		 RETURN r.relation, count(r)`,
		nil,
	)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int, len(rows))
	for _, r := range rows {
		if len(r) < 2 {
			continue
		}
		counts[toInt(r[0])] = toInt(r[1])
	}
	return counts, nil
}

// Neighbors returns the tail entity ids reachable from head along relation.
func (s *KuzuStore) Neighbors(_ context.Context, head, relation int) ([]int, error) {
	rows, err := s.query(
		`MATCH (a:Entity {id: $head})-[r:RELATES {relation: $rel}]->(b:Entity)
		 RETURN b.id`,
		map[string]any{
			"head": int64(head),
			"rel":  int64(relation),
		},
	)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		if len(r) > 0 {
			out = append(out, toInt(r[0]))
		}
	}
	return out, nil
}

// Stats returns counts over the stored graph.
func (s *KuzuStore) Stats(_ context.Context) (*Stats, error) {
	entities, err := s.scalar("MATCH (e:Entity) RETURN count(e)")
	if err != nil {
		return nil, err
	}
	triplets, err := s.scalar("MATCH (:Entity)-[r:RELATES]->(:Entity) RETURN count(r)")
	if err != nil {
		return nil, err
	}
	maxRel := 0
	if triplets > 0 {
		maxRel, err = s.scalar("MATCH (:Entity)-[r:RELATES]->(:Entity) RETURN max(r.relation)")
		if err != nil {
			return nil, err
		}
	}
	return &Stats{
		EntityCount:  entities,
		TripletCount: triplets,
		MaxRelation:  maxRel,
	}, nil
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// scalar runs a query expected to return a single integer value.
func (s *KuzuStore) scalar(cypher string) (int, error) {
	rows, err := s.query(cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// toString converts a Kuzu result value to a string.
func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// toInt converts a Kuzu result value to an int.
func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case uint64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
