package ledger

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/xiaomi388/kakeibo/pkg/persistence"
	"github.com/xiaomi388/kakeibo/pkg/types"
)

// Book keeps the ledger entries in the data document and the chart
// breakdown in the graph data document of the same backend.
type Book struct {
	entries *persistence.Store[[]types.Entry]
	graph   *persistence.Store[types.GraphData]
}

func NewBook(backend persistence.Backend) *Book {
	return &Book{
		entries: persistence.New[[]types.Entry](backend, persistence.DefaultDataName),
		graph:   persistence.New[types.GraphData](backend, persistence.DefaultGraphDataName),
	}
}

// Entries returns the stored entries, or an empty ledger when none were saved yet.
func (b *Book) Entries() ([]types.Entry, error) {
	entries, found, err := b.entries.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	if !found || entries == nil {
		return []types.Entry{}, nil
	}

	return entries, nil
}

func (b *Book) Add(entry types.Entry) error {
	entries, err := b.Entries()
	if err != nil {
		return err
	}

	return b.replace(append(entries, entry))
}

func (b *Book) Remove(index int) (types.Entry, error) {
	entries, err := b.Entries()
	if err != nil {
		return types.Entry{}, err
	}

	if index < 0 || index >= len(entries) {
		return types.Entry{}, fmt.Errorf("entry %d out of range [0, %d)", index, len(entries))
	}

	removed := entries[index]
	entries = append(entries[:index], entries[index+1:]...)
	return removed, b.replace(entries)
}

// Move relocates the entry at from so that it ends up at index to.
func (b *Book) Move(from, to int) error {
	entries, err := b.Entries()
	if err != nil {
		return err
	}

	if from < 0 || from >= len(entries) || to < 0 || to >= len(entries) {
		return fmt.Errorf("move %d -> %d out of range [0, %d)", from, to, len(entries))
	}
	if from == to {
		return nil
	}

	entry := entries[from]
	entries = append(entries[:from], entries[from+1:]...)
	entries = append(entries[:to], append([]types.Entry{entry}, entries[to:]...)...)
	return b.replace(entries)
}

func (b *Book) Reset() error {
	return b.replace([]types.Entry{})
}

func (b *Book) Summary() (Summary, error) {
	entries, err := b.Entries()
	if err != nil {
		return Summary{}, err
	}

	return Summarize(entries), nil
}

// RefreshGraph recomputes the chart breakdown from the stored entries and saves it.
func (b *Book) RefreshGraph() (types.GraphData, error) {
	entries, err := b.Entries()
	if err != nil {
		return nil, err
	}

	data, err := chartFor(entries)
	if err != nil {
		return nil, err
	}

	if err := b.saveGraph(data); err != nil {
		return nil, err
	}

	return data, nil
}

func (b *Book) saveGraph(data types.GraphData) error {
	if err := b.graph.Save(data); err != nil {
		return fmt.Errorf("failed to save graph data: %w", err)
	}

	return nil
}

// chartFor summarises entries and rejects totals that overflowed.
func chartFor(entries []types.Entry) (types.GraphData, error) {
	summary := Summarize(entries)
	if err := summary.checkFinite(); err != nil {
		return nil, err
	}

	data := summary.ChartData()
	for label, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("chart value %s is %v: %w", label, v, ErrNotFinite)
		}
	}

	return data, nil
}

// Graph returns the saved chart breakdown without recomputing it.
func (b *Book) Graph() (types.GraphData, bool, error) {
	return b.graph.Load()
}

func (b *Book) replace(entries []types.Entry) error {
	entries = Normalize(entries)
	data, err := chartFor(entries)
	if err != nil {
		return err
	}

	if err := b.entries.Save(entries); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	logrus.WithField("entries", len(entries)).Debug("ledger updated")

	return b.saveGraph(data)
}
