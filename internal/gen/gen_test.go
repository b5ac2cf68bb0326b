package gen

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coltonmorris/zone-map/internal/grid"
)

func TestParseADTName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantMap  string
		wantCol  int
		wantRow  int
		wantOK   bool
	}{
		{"root adt", "Kalimdor_30_12.adt", "Kalimdor", 30, 12, true},
		{"uppercase ext", "Azeroth_0_63.ADT", "Azeroth", 0, 63, true},
		{"split file", "Kalimdor_30_12_obj0.adt", "", 0, 0, false},
		{"wrong extension", "Kalimdor_30_12.wdt", "", 0, 0, false},
		{"non-numeric", "Kalimdor_aa_12.adt", "", 0, 0, false},
		{"out of grid", "Kalimdor_64_12.adt", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapName, col, row, ok := ParseADTName(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantMap, mapName)
				assert.Equal(t, tt.wantCol, col)
				assert.Equal(t, tt.wantRow, row)
			}
		})
	}
}

// chunk assembles one on-disk chunk: reversed FourCC, LE size, payload.
func chunk(magic string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, magic...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	return append(out, payload...)
}

// mcnkChunk builds a minimal MCNK with the given area ID in its header.
func mcnkChunk(areaID uint32) []byte {
	header := make([]byte, 0x80)
	binary.LittleEndian.PutUint32(header[mcnkAreaOffset:], areaID)
	return chunk(mcnkMagic, header)
}

func TestScanAreaIDs(t *testing.T) {
	var file []byte
	file = append(file, chunk("REVM", []byte{18, 0, 0, 0})...) // version chunk, ignored
	file = append(file, mcnkChunk(14)...)
	file = append(file, mcnkChunk(363)...)
	file = append(file, chunk("RDHM", make([]byte, 16))...) // unrelated chunk
	file = append(file, mcnkChunk(0)...)

	ids, err := ScanAreaIDs(file)
	require.NoError(t, err)
	require.Len(t, ids, grid.CellsPerTile, "padded to 256 entries")
	assert.Equal(t, uint32(14), ids[0])
	assert.Equal(t, uint32(363), ids[1])
	assert.Equal(t, uint32(0), ids[2])
	assert.Equal(t, uint32(0), ids[255])
}

func TestScanAreaIDsNoTerrain(t *testing.T) {
	ids, err := ScanAreaIDs(chunk("REVM", []byte{18, 0, 0, 0}))
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestScanAreaIDsTruncatedChunk(t *testing.T) {
	bad := chunk("KNCM", make([]byte, 0x80))
	bad = bad[:len(bad)-10] // size field now overruns the file
	_, err := ScanAreaIDs(bad)
	assert.Error(t, err)
}

func TestParseAreaTable(t *testing.T) {
	csv := strings.Join([]string{
		`ID,AreaName_lang,ParentAreaID,ExplorationLevel,Extra`,
		`14,"Durotar",0,0,x`,
		`363,"Valley of Trials",14,1,x`,
		`bad,Nope,0,0,x`,
		`17,"The Barrens",0,10,x`,
	}, "\n")

	areas, err := ParseAreaTable(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, areas, 3, "malformed ID row skipped")
	assert.Equal(t, "Durotar", areas[14].Name)
	assert.Equal(t, uint32(14), areas[363].ParentID)
	assert.Equal(t, 10, areas[17].ExplorationLevel)
}

func TestParseAreaTableMissingColumn(t *testing.T) {
	_, err := ParseAreaTable(strings.NewReader("ID,AreaName_lang\n1,x"))
	assert.Error(t, err)
}

func TestParseMapToArea(t *testing.T) {
	csv := strings.Join([]string{
		`Zone, mapId, AreaId`,
		`Durotar, 1411, 14`,
		`Skipped, x, 14`,
		`"The Barrens", 1413, 17`,
	}, "\n")

	entries, err := ParseMapToArea(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, MapEntry{ZoneName: "Durotar", MapID: 1411, AreaID: 14}, entries[0])
	assert.Equal(t, MapEntry{ZoneName: "The Barrens", MapID: 1413, AreaID: 17}, entries[1])
}

func TestRootParent(t *testing.T) {
	areas := map[uint32]AreaRow{
		14:  {ID: 14, Name: "Durotar"},
		363: {ID: 363, Name: "Valley of Trials", ParentID: 14},
		400: {ID: 400, Name: "Deep Valley", ParentID: 363},
		500: {ID: 500, Name: "Cycle A", ParentID: 501},
		501: {ID: 501, Name: "Cycle B", ParentID: 500},
	}

	assert.Equal(t, uint32(14), RootParent(14, areas))
	assert.Equal(t, uint32(14), RootParent(363, areas))
	assert.Equal(t, uint32(14), RootParent(400, areas))
	assert.Equal(t, uint32(999), RootParent(999, areas), "unknown area is its own root")
	assert.Contains(t, []uint32{500, 501}, RootParent(500, areas), "cycle terminates")
}

func tileWithHalves(left, right uint32) []uint32 {
	ids := make([]uint32, grid.CellsPerTile)
	for row := 0; row < grid.CellsPerSide; row++ {
		for col := 0; col < grid.CellsPerSide; col++ {
			if col < grid.CellsPerSide/2 {
				ids[row*grid.CellsPerSide+col] = left
			} else {
				ids[row*grid.CellsPerSide+col] = right
			}
		}
	}
	return ids
}

func uniformTile(id uint32) []uint32 {
	ids := make([]uint32, grid.CellsPerTile)
	for i := range ids {
		ids[i] = id
	}
	return ids
}

func TestAddTileNeighbors(t *testing.T) {
	g := make(NeighborGraph)
	g.AddTileNeighbors(tileWithHalves(14, 17))

	assert.True(t, g.Neighbors(14, 17))
	assert.True(t, g.Neighbors(17, 14))
	assert.Equal(t, 1, g.Degree(14))
	assert.False(t, g.Neighbors(14, 14))
}

func TestAddTileNeighborsIgnoresZero(t *testing.T) {
	g := make(NeighborGraph)
	g.AddTileNeighbors(tileWithHalves(0, 17))
	assert.Equal(t, 0, g.Degree(17))
	assert.Equal(t, 0, g.Degree(0))
}

func TestMerge(t *testing.T) {
	a := make(NeighborGraph)
	a.add(14, 17)
	b := make(NeighborGraph)
	b.add(17, 21)
	b.add(30, 31)

	a.Merge(b)
	assert.True(t, a.Neighbors(14, 17))
	assert.True(t, a.Neighbors(21, 17))
	assert.True(t, a.Neighbors(31, 30))
	assert.Equal(t, 2, a.Degree(17))
}

func TestAddSeamNeighbors(t *testing.T) {
	tiles := map[int][]uint32{
		grid.TileKey(0, 0): uniformTile(14),
		grid.TileKey(0, 1): uniformTile(17),
		grid.TileKey(1, 0): uniformTile(21),
		// diagonal tile (1,1) absent: no seam with it
	}

	g := make(NeighborGraph)
	g.AddSeamNeighbors(tiles)

	assert.True(t, g.Neighbors(14, 17), "right seam")
	assert.True(t, g.Neighbors(14, 21), "bottom seam")
	assert.False(t, g.Neighbors(17, 21), "no shared edge")
}

func TestAssignColorsAvoidsNeighborCollisions(t *testing.T) {
	found := map[uint32]struct{}{}
	g := make(NeighborGraph)
	// A 5-clique: every pair touches.
	members := []uint32{1, 2, 3, 4, 5}
	for _, a := range members {
		found[a] = struct{}{}
		for _, b := range members {
			g.add(a, b)
		}
	}

	colors := AssignColors(found, g, nil)
	require.Len(t, colors, 5)
	seen := make(map[[3]float64]uint32)
	for id, c := range colors {
		key := [3]float64{c.R, c.G, c.B}
		if prev, dup := seen[key]; dup {
			t.Fatalf("neighbors %d and %d share color %+v", prev, id, c)
		}
		seen[key] = id
	}
}

func TestAssignColorsAvoidsParentColor(t *testing.T) {
	found := map[uint32]struct{}{14: {}, 363: {}}
	areas := map[uint32]AreaRow{
		14:  {ID: 14, Name: "Durotar"},
		363: {ID: 363, Name: "Valley of Trials", ParentID: 14},
	}
	colors := AssignColors(found, make(NeighborGraph), areas)
	require.Len(t, colors, 2)
	assert.NotEqual(t, colors[14], colors[363])
}

func TestAssignColorsDeterministic(t *testing.T) {
	found := map[uint32]struct{}{}
	g := make(NeighborGraph)
	for id := uint32(1); id <= 30; id++ {
		found[id] = struct{}{}
		g.add(id, id%7+100)
		found[id%7+100] = struct{}{}
	}

	first := AssignColors(found, g, nil)
	second := AssignColors(found, g, nil)
	assert.Equal(t, first, second)
}

func TestFallbackColorWhenPaletteExhausted(t *testing.T) {
	found := map[uint32]struct{}{}
	g := make(NeighborGraph)
	// A clique larger than the palette forces fallback colors.
	for a := uint32(1); a <= 20; a++ {
		found[a] = struct{}{}
		for b := uint32(1); b <= 20; b++ {
			g.add(a, b)
		}
	}

	colors := AssignColors(found, g, nil)
	require.Len(t, colors, 20)
	fallbacks := 0
	for id, c := range colors {
		inPalette := false
		for _, p := range palette {
			if p == c {
				inPalette = true
				break
			}
		}
		if !inPalette {
			fallbacks++
			assert.Equal(t, fallbackColor(id), c)
		}
	}
	assert.Equal(t, 4, fallbacks, "palette covers 16 of 20 clique members")
}
