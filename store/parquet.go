// Package store archives played ticks as Parquet files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"

	"github.com/errorcodezero/mastodon-plays-snake/game"
)

// Schema is stored in each file's key/value metadata.
const Schema = "snake_tick_v1"

// TickRow is the game state after one tick.
//
// Body coordinates are tail first, matching the backup format, and Backup
// holds the full backup string so any row can be restored directly.
type TickRow struct {
	Episode   int32   `parquet:"episode"`
	Turn      int32   `parquet:"turn"`
	Direction string  `parquet:"direction,dict"`
	Outcome   string  `parquet:"outcome,dict"`
	FoodX     int32   `parquet:"food_x"`
	FoodY     int32   `parquet:"food_y"`
	BodyX     []int32 `parquet:"body_x"`
	BodyY     []int32 `parquet:"body_y"`
	Score     int32   `parquet:"score"`
	HighScore int32   `parquet:"high_score"`
	Backup    string  `parquet:"backup"`
}

// Recorder collects one TickRow per tick.
// Resets start a new episode whose turn counter begins at zero.
type Recorder struct {
	episode int32
	turn    int32
	rows    []TickRow
}

func NewRecorder() *Recorder {
	return &Recorder{rows: make([]TickRow, 0, 256)}
}

// Record appends the state of g after a tick that moved in d.
func (r *Recorder) Record(g *game.Game, d game.Direction, out game.Outcome) {
	if out.Reset() {
		r.episode++
		r.turn = 0
	} else {
		r.turn++
	}

	body := g.Body()
	row := TickRow{
		Episode:   r.episode,
		Turn:      r.turn,
		Direction: d.String(),
		Outcome:   out.String(),
		FoodX:     int32(g.Food().X),
		FoodY:     int32(g.Food().Y),
		BodyX:     make([]int32, len(body)),
		BodyY:     make([]int32, len(body)),
		Score:     int32(g.Score()),
		HighScore: int32(g.HighScore()),
		Backup:    g.Backup(),
	}
	for i, p := range body {
		row.BodyX[i] = int32(p.X)
		row.BodyY[i] = int32(p.Y)
	}
	r.rows = append(r.rows, row)
}

func (r *Recorder) Len() int { return len(r.rows) }

// Rows returns the recorded rows. The slice is shared with the recorder.
func (r *Recorder) Rows() []TickRow { return r.rows }

// WriteTicksParquet writes rows to outPath through a temp file and rename, so
// readers never observe a partial file.
func WriteTicksParquet(outPath string, rows []TickRow) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", Schema),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

// ReadTicksParquet loads every row of a file written by WriteTicksParquet.
func ReadTicksParquet(path string) ([]TickRow, error) {
	rows, err := parquet.ReadFile[TickRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	return rows, nil
}
