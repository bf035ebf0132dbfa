package resize

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/stathat/consistent"
)

// ResizeBy returns a Runner that resizes its input separately per partition.
// The values of the provided columns of each row are hashed onto a ring of
// `shards` partitions using consistent hashing, and each partition is resized
// by its own Resizer. Thus rows with equal keys always end up in the same
// tables, in their original relative order. Order between partitions is not
// guaranteed
func ResizeBy(cfg Config, shards int, columns ...int) (Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if shards <= 0 {
		return nil, fmt.Errorf("at least 1 shard is required, got %d", shards)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("at least 1 partition column is required")
	}
	return &resizeBy{cfg, shards, columns}, nil
}

type resizeBy struct {
	Config
	Shards        int
	PartitionCols []int
}

func (r *resizeBy) Returns() []Type { return []Type{Wildcard} }
func (r *resizeBy) Run(ctx context.Context, inp, out chan Dataset) error {
	ring := consistent.New()
	for i := 0; i < r.Shards; i++ {
		ring.Add(shardName(i))
	}

	resizers := make(map[string]*Resizer)
	for data := range inp {
		if data.Len() == 0 {
			continue
		}

		dataByShard, err := r.route(ring, data)
		if err != nil {
			return err
		}

		for _, shard := range sortedShards(dataByShard) {
			resizer, ok := resizers[shard]
			if !ok {
				resizer, err = New(r.Config)
				if err != nil {
					return err
				}
				resizers[shard] = resizer
			}

			tables, _, err := resizer.Transform(dataByShard[shard])
			var concatErr *ConcatenationError
			if errors.As(err, &concatErr) {
				resizer.log.Warn("dropped buffered rows", "shard", shard,
					"dropped", concatErr.BufferedRows, "rows", concatErr.InputRows, "err", concatErr.Err)
			} else if err != nil {
				return err
			}

			if !send(ctx, out, tables) {
				return nil
			}
		}
	}

	shards := make([]string, 0, len(resizers))
	for shard := range resizers {
		shards = append(shards, shard)
	}
	sort.Strings(shards)
	for _, shard := range shards {
		tables, _ := resizers[shard].Flush()
		if !send(ctx, out, tables) {
			return nil
		}
	}
	return nil
}

// route splits data into the rows of each shard, keeping their order
func (r *resizeBy) route(ring *consistent.Consistent, data Dataset) (map[string]Dataset, error) {
	keys := make([][]string, len(r.PartitionCols))
	for i, col := range r.PartitionCols {
		if col < 0 || col >= data.Width() {
			return nil, errors.Errorf("partition column %d out of range for %d columns", col, data.Width())
		}
		keys[i] = data.At(col).Strings()
	}

	shards := make([]string, data.Len())
	for row := range shards {
		var sb strings.Builder
		for i := range keys {
			if i > 0 {
				sb.WriteByte(0)
			}
			sb.WriteString(keys[i][row])
		}

		shard, err := ring.Get(sb.String())
		if err != nil {
			return nil, err
		}
		shards[row] = shard
	}

	// append consecutive rows of the same shard at once
	dataByShard := make(map[string]Dataset)
	lastSliced := 0
	for row := 1; row <= len(shards); row++ {
		if row < len(shards) && shards[row] == shards[lastSliced] {
			continue
		}

		shard := shards[lastSliced]
		segment := data.Slice(lastSliced, row).(Dataset)
		if acc, ok := dataByShard[shard]; ok {
			segment = acc.Append(segment).(Dataset)
		}
		dataByShard[shard] = segment
		lastSliced = row
	}
	return dataByShard, nil
}

func shardName(i int) string {
	return fmt.Sprintf("shard-%04d", i)
}

func sortedShards(m map[string]Dataset) []string {
	shards := make([]string, 0, len(m))
	for shard := range m {
		shards = append(shards, shard)
	}
	sort.Strings(shards)
	return shards
}
