package catalog

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	models "io.winapps.florafauna/internal/models/entry"
	"io.winapps.florafauna/internal/remote"
)

const (
	CountUpDuration = 2 * time.Second
	CountUpFrame    = 16 * time.Millisecond
)

// Stats are the three headline numbers. Titles stand in for species.
type Stats struct {
	TotalRecords    int `json:"totalRecords"`
	UniqueSpecies   int `json:"uniqueSpecies"`
	UniqueLocations int `json:"uniqueLocations"`
}

// Aggregator computes Stats with three independent queries
type Aggregator struct {
	table string
}

func NewAggregator(table string) *Aggregator {
	return &Aggregator{table: table}
}

// Compute runs the three queries concurrently. Any failure fails the whole
// computation; callers decide how to degrade.
func (a *Aggregator) Compute(ctx context.Context, store remote.Store) (Stats, error) {
	// each goroutine writes its own field
	var stats Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := store.Count(gctx, a.table, nil)
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}
		stats.TotalRecords = n
		return nil
	})

	g.Go(func() error {
		rows, err := store.Select(gctx, remote.Query{
			Table:   a.table,
			Columns: []string{models.ColumnTitle},
		})
		if err != nil {
			return fmt.Errorf("failed to fetch titles: %w", err)
		}
		stats.UniqueSpecies = distinctTitles(rows)
		return nil
	})

	g.Go(func() error {
		rows, err := store.Select(gctx, remote.Query{
			Table:   a.table,
			Columns: []string{models.ColumnLocationName},
			Filters: []remote.Filter{remote.NotNull(models.ColumnLocationName)},
		})
		if err != nil {
			return fmt.Errorf("failed to fetch locations: %w", err)
		}
		stats.UniqueLocations = distinct(rows, models.ColumnLocationName)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// distinct counts the distinct non-null string values of column
func distinct(rows []remote.Row, column string) int {
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if s, ok := row[column].(string); ok {
			seen[s] = struct{}{}
		}
	}
	return len(seen)
}

// distinctTitles counts titles case-insensitively. Rows without a title
// together count as one more value.
func distinctTitles(rows []remote.Row) int {
	seen := make(map[string]struct{}, len(rows))
	sawMissing := false
	for _, row := range rows {
		s, ok := row[models.ColumnTitle].(string)
		if !ok {
			sawMissing = true
			continue
		}
		seen[strings.ToLower(s)] = struct{}{}
	}
	if sawMissing {
		return len(seen) + 1
	}
	return len(seen)
}

// CountUpFrames returns the values shown while counting from 0 to target:
// one value per frame, floored, non-decreasing, ending exactly at target.
func CountUpFrames(target int, duration, frame time.Duration) []int {
	if target < 0 {
		target = 0
	}
	if frame <= 0 || duration <= 0 {
		return []int{target}
	}

	increment := float64(target) / (float64(duration) / float64(frame))
	maxFrames := int(duration/frame) + 2

	frames := make([]int, 0, maxFrames)
	current := 0.0
	for i := 0; i < maxFrames; i++ {
		current += increment
		if current >= float64(target) {
			break
		}
		frames = append(frames, int(math.Floor(current)))
	}
	return append(frames, target)
}

// Frames zips the count-up of all three numbers into one sequence
func (s Stats) Frames(duration, frame time.Duration) []Stats {
	total := CountUpFrames(s.TotalRecords, duration, frame)
	species := CountUpFrames(s.UniqueSpecies, duration, frame)
	locations := CountUpFrames(s.UniqueLocations, duration, frame)

	n := max(len(total), len(species), len(locations))
	out := make([]Stats, n)
	for i := range out {
		out[i] = Stats{
			TotalRecords:    at(total, i),
			UniqueSpecies:   at(species, i),
			UniqueLocations: at(locations, i),
		}
	}
	return out
}

func at(frames []int, i int) int {
	if i < len(frames) {
		return frames[i]
	}
	return frames[len(frames)-1]
}

// Animate calls emit once per frame tick with each frame in turn. It stops
// early with ctx's error when ctx is cancelled.
func Animate(ctx context.Context, frames []Stats, interval time.Duration, emit func(Stats)) error {
	if len(frames) == 0 {
		return nil
	}
	if interval <= 0 {
		emit(frames[len(frames)-1])
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, f := range frames {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			emit(f)
		}
	}
	return nil
}
