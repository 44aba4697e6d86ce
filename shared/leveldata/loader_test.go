package leveldata

import (
	"errors"
	"image/color"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "width": 4, "height": 3, "tilewidth": 16, "tileheight": 16,
  "backgroundcolor": "#f7d7db",
  "layers": [
    {"name": "background", "type": "tilelayer", "data": [0, 0]},
    {"name": "colliders", "type": "objectgroup", "objects": [
      {"x": 0, "y": 32, "width": 64, "height": 16},
      {"name": "exit", "x": 48, "y": 16, "width": 16, "height": 16},
      {"name": "ledge", "x": 16, "y": 16, "width": 16, "height": 4}
    ]},
    {"name": "spawnpoints", "type": "objectgroup", "objects": [
      {"name": "player", "x": 10, "y": 20, "point": true},
      {"name": "flame", "x": 30, "y": 40, "point": true},
      {"name": "player", "x": 50, "y": 60, "point": true}
    ]}
  ]
}`

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="7">
 <objectgroup id="1" name="colliders">
  <object id="1" x="0" y="32" width="64" height="16"/>
  <object id="2" name="exit" x="48" y="16" width="16" height="16"/>
  <object id="3" name="ledge" x="16" y="16" width="16" height="4"/>
 </objectgroup>
 <objectgroup id="2" name="spawnpoints">
  <object id="4" name="player" x="10" y="20"><point/></object>
  <object id="5" name="flame" x="30" y="40"><point/></object>
  <object id="6" name="player" x="50" y="60"><point/></object>
 </objectgroup>
</map>`

func sampleFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/json-level.json": {Data: []byte(sampleJSON)},
		"levels/tmx-level.tmx":   {Data: []byte(sampleTMX)},
	}
}

func TestParse_ClassifiesColliders(t *testing.T) {
	lvl, err := Parse(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	require.Len(t, lvl.Colliders, 3)
	assert.Equal(t, ColliderPlatform, lvl.Colliders[0].Kind)
	assert.Equal(t, ColliderExit, lvl.Colliders[1].Kind)
	assert.Equal(t, ColliderPlatform, lvl.Colliders[2].Kind, "named non-exit colliders are platforms")

	assert.Len(t, lvl.Platforms(), 2)
	assert.Equal(t, []Collider{{X: 48, Y: 16, Width: 16, Height: 16, Kind: ColliderExit, Name: "exit"}}, lvl.Exits())
}

func TestParse_SpawnPointsKeepDocumentOrder(t *testing.T) {
	lvl, err := Parse(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, map[string][]Point{
		"player": {{X: 10, Y: 20}, {X: 50, Y: 60}},
		"flame":  {{X: 30, Y: 40}},
	}, lvl.SpawnPoints)

	total := 0
	for _, pts := range lvl.SpawnPoints {
		total += len(pts)
	}
	assert.Equal(t, 3, total, "every spawn object is kept")
}

func TestParse_Dimensions(t *testing.T) {
	lvl, err := Parse(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, 64, lvl.Width)
	assert.Equal(t, 48, lvl.Height)

	bg, ok := lvl.BackgroundColor()
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xf7, G: 0xd7, B: 0xdb, A: 0xff}, bg)
}

func TestParse_NoKnownLayers(t *testing.T) {
	lvl, err := Parse(strings.NewReader(`{"layers": [{"name": "decor", "type": "tilelayer"}]}`))
	require.NoError(t, err)

	assert.Empty(t, lvl.Colliders)
	assert.Empty(t, lvl.SpawnPoints)
	_, ok := lvl.Spawn(SpawnPlayer)
	assert.False(t, ok)
}

func TestParse_GroupLayersAreFlattened(t *testing.T) {
	doc := `{"layers": [{"name": "world", "type": "group", "layers": [
		{"name": "colliders", "type": "objectgroup", "objects": [{"x": 1, "y": 2, "width": 3, "height": 4}]},
		{"name": "spawnpoints", "type": "objectgroup", "objects": [{"name": "guy", "x": 5, "y": 6}]}
	]}]}`
	lvl, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Len(t, lvl.Colliders, 1)
	assert.Equal(t, []Point{{X: 5, Y: 6}}, lvl.SpawnPoints[SpawnGuy])
}

func TestParse_MalformedObjects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "zero width collider",
			doc:  `{"layers": [{"name": "colliders", "objects": [{"x": 0, "y": 0, "width": 0, "height": 4}]}]}`,
			want: "non-positive size",
		},
		{
			name: "unnamed spawn point",
			doc:  `{"layers": [{"name": "spawnpoints", "objects": [{"x": 0, "y": 0}]}]}`,
			want: "without a name",
		},
		{
			name: "not json",
			doc:  `<map/>`,
			want: "decode level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Parse(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Nil(t, lvl)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_JSONAndTMXAgree(t *testing.T) {
	fsys := sampleFS()

	fromJSON, err := Load(fsys, "levels/json-level")
	require.NoError(t, err)
	fromTMX, err := Load(fsys, "levels/tmx-level")
	require.NoError(t, err)

	assert.Equal(t, "json-level", fromJSON.Name)
	assert.Equal(t, "tmx-level", fromTMX.Name)
	assert.Equal(t, fromJSON.Width, fromTMX.Width)
	assert.Equal(t, fromJSON.Height, fromTMX.Height)
	assert.Equal(t, fromJSON.Colliders, fromTMX.Colliders)
	assert.Equal(t, fromJSON.SpawnPoints, fromTMX.SpawnPoints)
}

func TestLoad_ExplicitExtension(t *testing.T) {
	lvl, err := Load(sampleFS(), "levels/tmx-level.tmx")
	require.NoError(t, err)
	assert.Equal(t, "tmx-level", lvl.Name)

	_, err = Load(sampleFS(), "levels/tmx-level.json")
	assert.True(t, errors.Is(err, ErrLevelNotFound))
}

func TestLoad_Missing(t *testing.T) {
	lvl, err := Load(sampleFS(), "levels/nope")
	assert.Nil(t, lvl)
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestLoad_Unparseable(t *testing.T) {
	fsys := fstest.MapFS{"broken.json": {Data: []byte(`{"layers": [`)}}
	lvl, err := Load(fsys, "broken")
	assert.Nil(t, lvl)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLevelNotFound)
	assert.Contains(t, err.Error(), "broken.json")
}

func TestLevel_FirstSpawn(t *testing.T) {
	lvl, err := Parse(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	lvl.Name = "sample"

	p, err := lvl.FirstSpawn(SpawnPlayer)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 10, Y: 20}, p)

	_, err = lvl.FirstSpawn(SpawnBird)
	assert.ErrorIs(t, err, ErrMissingSpawn)
}

func TestList_SortsNaturally(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level-10.json": {Data: []byte(`{}`)},
		"levels/level-2.tmx":   {Data: []byte(`<map/>`)},
		"levels/level-1.json":  {Data: []byte(`{}`)},
		"levels/level-1.tmx":   {Data: []byte(`<map/>`)},
		"levels/readme.txt":    {Data: []byte(`x`)},
	}

	names, err := List(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"level-1", "level-2", "level-10"}, names)

	_, err = List(fsys, "empty")
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestColliderKind_String(t *testing.T) {
	assert.Equal(t, "platform", ColliderPlatform.String())
	assert.Equal(t, "exit", ColliderExit.String())
	assert.Equal(t, "ColliderKind(7)", ColliderKind(7).String())
}
