package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

//go:embed all:levels
var levelFS embed.FS

var (
	ErrNoSpawn     = errors.New("level has no player spawn")
	ErrInvalidBody = errors.New("object must have a positive size")
	ErrNoLevels    = errors.New("no levels found")
)

// Object group names read from a level file.
const (
	GroupSolids      = "Solids"
	GroupPlatforms   = "Platforms"
	GroupEnemies     = "Enemies"
	GroupHazards     = "Hazards"
	GroupPlayerSpawn = "PlayerSpawn"

	// Tile layer whose non-empty tiles become solids.
	LayerGround = "Ground"
)

// Motion names a scripted movement read from the "motion" property.
type Motion string

const (
	MotionNone    Motion = ""
	MotionShuttle Motion = "shuttle"
	MotionPatrol  Motion = "patrol"
	MotionBounce  Motion = "bounce"
	MotionPath    Motion = "path"
	MotionFall    Motion = "fall"
)

type Rect struct {
	X, Y, Width, Height float64
}

// Platform is a solid that may move. Zero-valued tunables fall back to the
// configured defaults when the level is built.
type Platform struct {
	Rect
	Name      string
	Motion    Motion
	Left      float64
	Right     float64
	Speed     float64
	Amplitude float64
	Frequency float64
	Distance  float64
	Duration  float64
	Axis      string // "x" or "y", path motion only
}

// Enemy is a patrolling hazard.
type Enemy struct {
	Rect
	Name  string
	Left  float64
	Right float64
	Speed float64
}

type Hazard struct {
	Rect
	Name   string
	Motion Motion
}

// Level is the plain description of one loaded scene.
type Level struct {
	Name      string
	Title     string
	Width     float64
	Height    float64
	TileSize  int
	Spawn     math.Vec2
	Solids    []Rect
	Platforms []Platform
	Enemies   []Enemy
	Hazards   []Hazard
}

// LoadLevel parses a TMX file from fsys.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", levelPath, err)
	}

	level := &Level{
		Name:     levelPath,
		Title:    levelMap.Properties.GetString("title"),
		Width:    float64(levelMap.Width * levelMap.TileWidth),
		Height:   float64(levelMap.Height * levelMap.TileHeight),
		TileSize: levelMap.TileWidth,
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %s: %w", levelPath, og.Name, err)
				}
				level.Solids = append(level.Solids, r)
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %s: %w", levelPath, og.Name, err)
				}
				level.Platforms = append(level.Platforms, Platform{
					Rect:      r,
					Name:      o.Name,
					Motion:    Motion(strings.ToLower(o.Properties.GetString("motion"))),
					Left:      o.Properties.GetFloat("left"),
					Right:     o.Properties.GetFloat("right"),
					Speed:     o.Properties.GetFloat("speed"),
					Amplitude: o.Properties.GetFloat("amplitude"),
					Frequency: o.Properties.GetFloat("frequency"),
					Distance:  o.Properties.GetFloat("distance"),
					Duration:  o.Properties.GetFloat("duration"),
					Axis:      strings.ToLower(o.Properties.GetString("axis")),
				})
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %s: %w", levelPath, og.Name, err)
				}
				level.Enemies = append(level.Enemies, Enemy{
					Rect:  r,
					Name:  o.Name,
					Left:  o.Properties.GetFloat("left"),
					Right: o.Properties.GetFloat("right"),
					Speed: o.Properties.GetFloat("speed"),
				})
			}
		case GroupHazards:
			for _, o := range og.Objects {
				r, err := objectRect(o)
				if err != nil {
					return nil, fmt.Errorf("%s: %s: %w", levelPath, og.Name, err)
				}
				level.Hazards = append(level.Hazards, Hazard{
					Rect:   r,
					Name:   o.Name,
					Motion: Motion(strings.ToLower(o.Properties.GetString("motion"))),
				})
			}
		case GroupPlayerSpawn:
			// First spawn wins
			if len(og.Objects) > 0 && !spawned {
				level.Spawn = math.NewVec2(og.Objects[0].X, og.Objects[0].Y)
				spawned = true
			}
		}
	}
	if !spawned {
		return nil, fmt.Errorf("%s: %w", levelPath, ErrNoSpawn)
	}

	// Merge each row of ground tiles into runs so a flat floor is one solid.
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != LayerGround {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			start := -1
			for x := 0; x <= levelMap.Width; x++ {
				filled := false
				if x < levelMap.Width {
					idx := y*levelMap.Width + x
					filled = idx < len(layer.Tiles) && layer.Tiles[idx] != nil && !layer.Tiles[idx].IsNil()
				}
				switch {
				case filled && start < 0:
					start = x
				case !filled && start >= 0:
					level.Solids = append(level.Solids, Rect{
						X:      float64(start) * tileW,
						Y:      float64(y) * tileH,
						Width:  float64(x-start) * tileW,
						Height: tileH,
					})
					start = -1
				}
			}
		}
		break
	}

	return level, nil
}

func objectRect(o *tiled.Object) (Rect, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return Rect{}, fmt.Errorf("object %d %q is %vx%v: %w", o.ID, o.Name, o.Width, o.Height, ErrInvalidBody)
	}
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}, nil
}

// LevelNames lists the embedded level files in name order.
func LevelNames() ([]string, error) {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadEmbedded loads an embedded level by file name. An empty name loads the
// first level.
func LoadEmbedded(name string) (*Level, error) {
	if name == "" {
		names, err := LevelNames()
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, ErrNoLevels
		}
		name = names[0]
	}
	return LoadLevel(levelFS, path.Join("levels", name))
}
