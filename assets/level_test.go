package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestLoadEmbeddedLevel(t *testing.T) {
	level, err := LoadEmbedded("")
	require.NoError(t, err)

	assert.Equal(t, "Ridge One", level.Title)
	assert.Equal(t, 1600.0, level.Width)
	assert.Equal(t, 640.0, level.Height)
	assert.Equal(t, 16, level.TileSize)
	assert.Equal(t, math.NewVec2(48, 540), level.Spawn)

	// Three placed solids plus two floor runs on each of the three ground rows.
	assert.Len(t, level.Solids, 9)
	assert.Contains(t, level.Solids, Rect{X: 0, Y: 592, Width: 640, Height: 16})
	assert.Contains(t, level.Solids, Rect{X: 960, Y: 624, Width: 640, Height: 16})

	require.Len(t, level.Platforms, 5)
	motions := map[string]Motion{}
	for _, p := range level.Platforms {
		motions[p.Name] = p.Motion
	}
	assert.Equal(t, map[string]Motion{
		"drifter": MotionPatrol,
		"ferry":   MotionShuttle,
		"bobber":  MotionBounce,
		"lift":    MotionPath,
		"step":    MotionNone,
	}, motions)

	ferry := level.Platforms[1]
	assert.Equal(t, 640.0, ferry.Left)
	assert.Equal(t, 960.0, ferry.Right)
	assert.Equal(t, 80.0, ferry.Speed)
	assert.Equal(t, "y", level.Platforms[3].Axis)

	require.Len(t, level.Enemies, 1)
	assert.Equal(t, 1200.0, level.Enemies[0].Left)
	require.Len(t, level.Hazards, 2)
	assert.Equal(t, MotionFall, level.Hazards[1].Motion)
}

func TestLevelNames(t *testing.T) {
	names, err := LevelNames()
	require.NoError(t, err)
	assert.Contains(t, names, "ridge.tmx")
}

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
`

func TestLoadLevelErrors(t *testing.T) {
	tests := []struct {
		name string
		tmx  string
		want error
	}{
		{
			name: "no spawn",
			tmx: header + ` <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="144" width="160" height="16"/>
 </objectgroup>
</map>
`,
			want: ErrNoSpawn,
		},
		{
			name: "zero size solid",
			tmx: header + ` <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="144" width="0" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="16" y="16"><point/></object>
 </objectgroup>
</map>
`,
			want: ErrInvalidBody,
		},
		{
			name: "zero size hazard",
			tmx: header + ` <objectgroup id="1" name="Hazards">
  <object id="1" x="0" y="144" width="16" height="0"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="16" y="16"><point/></object>
 </objectgroup>
</map>
`,
			want: ErrInvalidBody,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"level.tmx": {Data: []byte(tt.tmx)}}
			_, err := LoadLevel(fsys, "level.tmx")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadLevelMinimal(t *testing.T) {
	tmx := header + ` <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="144" width="160" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="2" x="16" y="96"><point/></object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"level.tmx": {Data: []byte(tmx)}}

	level, err := LoadLevel(fsys, "level.tmx")
	require.NoError(t, err)
	assert.Equal(t, []Rect{{X: 0, Y: 144, Width: 160, Height: 16}}, level.Solids)
	assert.Equal(t, math.NewVec2(16, 96), level.Spawn)
	assert.Empty(t, level.Platforms)
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
