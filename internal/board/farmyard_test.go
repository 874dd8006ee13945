package board

import (
	"testing"

	"github.com/minaorangina/agricola/errdefs"
	utils "github.com/minaorangina/agricola/internal"
	"github.com/minaorangina/agricola/internal/goods"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(row, col int) goods.Coordinate { return goods.Coordinate{Row: row, Col: col} }

var inv = goods.InventoryCoord

func TestNewFarmyard(t *testing.T) {
	f := NewFarmyard()

	utils.AssertEqual(t, len(f.Coordinates()), 15)
	utils.AssertDeepEqual(t, f.Rooms(), []goods.Coordinate{at(1, 0), at(2, 0)})
	utils.AssertEqual(t, f.HouseType(), WoodRoom)

	kind, err := f.SpaceType(at(0, 4))
	require.NoError(t, err)
	assert.Equal(t, Unused, kind)

	t.Run("house segments start blocked", func(t *testing.T) {
		for _, key := range blockedSegments {
			blocked, err := f.IsBlocked(key)
			require.NoError(t, err)
			assert.True(t, blocked)
		}
		open, err := f.IsBlocked(FenceKey{goods.Horizontal, at(0, 4)})
		require.NoError(t, err)
		assert.False(t, open)
	})

	t.Run("reads outside the grid are out of range", func(t *testing.T) {
		_, err := f.SpaceType(at(3, 0))
		assert.True(t, errdefs.IsIllegal(err))
		_, err = f.IsOccupied(at(0, 5))
		assert.True(t, errdefs.IsIllegal(err))
		_, err = f.ChildPresent(inv)
		assert.True(t, errdefs.IsIllegal(err))
	})
}

func TestChangeSpaceType(t *testing.T) {
	t.Run("rooms must touch the house", func(t *testing.T) {
		t.Log("Given a new farmyard")
		f := NewFarmyard()

		t.Log("When a wood room is requested away from the house")
		err := f.ChangeSpaceType(WoodRoom, at(0, 3))

		t.Log("Then it is refused and nothing changes")
		assert.True(t, errdefs.IsIllegal(err))
		kind, _ := f.SpaceType(at(0, 3))
		assert.Equal(t, Unused, kind)

		t.Log("And the same request next to the house succeeds")
		require.NoError(t, f.ChangeSpaceType(WoodRoom, at(0, 0)))
		kind, _ = f.SpaceType(at(0, 0))
		assert.Equal(t, WoodRoom, kind)
	})

	t.Run("rooms must match the house material", func(t *testing.T) {
		f := NewFarmyard()
		assert.True(t, errdefs.IsIllegal(f.ChangeSpaceType(ClayRoom, at(1, 1))))
	})

	t.Run("stabled spaces cannot become rooms", func(t *testing.T) {
		f := NewFarmyard()
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Stable, 1, goods.Farmyard, at(1, 1), goods.Inventory, inv)))
		assert.True(t, errdefs.IsIllegal(f.ChangeSpaceType(WoodRoom, at(1, 1))))
	})

	t.Run("later fields grow from earlier ones", func(t *testing.T) {
		f := NewFarmyard()
		require.NoError(t, f.ChangeSpaceType(Field, at(0, 4)))
		assert.True(t, errdefs.IsIllegal(f.ChangeSpaceType(Field, at(2, 2))))
		require.NoError(t, f.ChangeSpaceType(Field, at(1, 4)))
		assert.Len(t, f.Fields(), 2)
	})

	t.Run("only rooms and fields are built this way", func(t *testing.T) {
		f := NewFarmyard()
		assert.True(t, errdefs.IsIllegal(f.ChangeSpaceType(Pasture, at(0, 4))))
		assert.True(t, errdefs.IsIllegal(f.ChangeSpaceType(WoodRoom, at(1, 0))))
	})

	t.Run("renovation rebuilds every room", func(t *testing.T) {
		f := NewFarmyard()
		next, err := f.Renovate()
		require.NoError(t, err)
		assert.Equal(t, ClayRoom, next)
		assert.Equal(t, 2, f.CountSpaces(ClayRoom))

		_, err = f.Renovate()
		require.NoError(t, err)
		_, err = f.Renovate()
		assert.True(t, errdefs.IsIllegal(err))
	})
}

func TestFarmyardWorkers(t *testing.T) {
	f := NewFarmyard()

	require.NoError(t, f.Move(goods.NewMoveRequest(goods.Worker, 1, goods.Farmyard, at(1, 0), goods.Inventory, inv)))
	occupied, _ := f.IsOccupied(at(1, 0))
	assert.True(t, occupied)

	room, err := f.OpenRoom()
	require.NoError(t, err)
	assert.Equal(t, at(2, 0), room)

	t.Run("workers only live in rooms", func(t *testing.T) {
		err := f.Move(goods.NewMoveRequest(goods.Worker, 1, goods.Farmyard, at(0, 0), goods.Inventory, inv))
		assert.True(t, errdefs.IsIllegal(err))
	})

	t.Run("leaving for an action space clears the room", func(t *testing.T) {
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Worker, 1, goods.ActionSpace, at(1, 2), goods.Farmyard, at(1, 0))))
		occupied, _ := f.IsOccupied(at(1, 0))
		assert.False(t, occupied)

		err := f.Move(goods.NewMoveRequest(goods.Worker, 1, goods.ActionSpace, at(1, 2), goods.Farmyard, at(1, 0)))
		assert.True(t, errdefs.IsIllegal(err))
	})
}

func TestFarmyardCrops(t *testing.T) {
	f := NewFarmyard()
	require.NoError(t, f.ChangeSpaceType(Field, at(0, 2)))
	sow := goods.NewMoveRequest(goods.Grain, 1, goods.Farmyard, at(0, 2), goods.Inventory, inv)

	require.NoError(t, f.Move(sow))
	n, _ := f.NumGoodsPresent(at(0, 2))
	assert.Equal(t, 3, n)

	t.Run("a planted field cannot be sown again", func(t *testing.T) {
		assert.True(t, errdefs.IsIllegal(f.Move(sow)))
	})

	t.Run("crops only grow in fields", func(t *testing.T) {
		bad := goods.NewMoveRequest(goods.Vegetable, 1, goods.Farmyard, at(0, 3), goods.Inventory, inv)
		assert.True(t, errdefs.IsIllegal(f.Move(bad)))
	})

	t.Run("harvesting takes one unit at a time", func(t *testing.T) {
		harvest := goods.NewMoveRequest(goods.Grain, 1, goods.Inventory, inv, goods.Farmyard, at(0, 2))
		for i := 0; i < 3; i++ {
			require.NoError(t, f.Move(harvest))
		}
		kind, _ := f.GoodsType(at(0, 2))
		assert.Equal(t, goods.None, kind)
		assert.True(t, errdefs.IsIllegal(f.Move(harvest)))
	})
}

func fencedPasture(t *testing.T, f *Farmyard, coords ...goods.Coordinate) {
	t.Helper()
	keys, err := f.RequiredFences(coords)
	require.NoError(t, err)
	require.NoError(t, f.BuildPasture(coords, keys))
}

func TestPastures(t *testing.T) {
	t.Run("a single space needs four fences", func(t *testing.T) {
		f := NewFarmyard()
		keys, err := f.RequiredFences([]goods.Coordinate{at(0, 4)})
		require.NoError(t, err)
		assert.Len(t, keys, 4)
	})

	t.Run("neighbouring pastures share a fence", func(t *testing.T) {
		f := NewFarmyard()
		fencedPasture(t, f, at(0, 4))

		keys, err := f.RequiredFences([]goods.Coordinate{at(1, 4)})
		require.NoError(t, err)
		assert.Len(t, keys, 3)

		fencedPasture(t, f, at(1, 4))
		assert.Equal(t, 7, f.NumFences())
		assert.Len(t, f.Pastures(), 2)
	})

	t.Run("pasture spaces must be connected and unused", func(t *testing.T) {
		f := NewFarmyard()
		_, err := f.RequiredFences([]goods.Coordinate{at(0, 1), at(0, 3)})
		assert.True(t, errdefs.IsIllegal(err))
		_, err = f.RequiredFences([]goods.Coordinate{at(1, 0)})
		assert.True(t, errdefs.IsIllegal(err))
		_, err = f.RequiredFences(nil)
		assert.True(t, errdefs.IsIllegal(err))
	})

	t.Run("capacity doubles with each stable", func(t *testing.T) {
		f := NewFarmyard()
		fencedPasture(t, f, at(0, 3), at(0, 4))

		capacity, err := f.PastureCapacity(at(0, 3))
		require.NoError(t, err)
		assert.Equal(t, 4, capacity)

		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Stable, 1, goods.Farmyard, at(0, 4), goods.Inventory, inv)))
		capacity, _ = f.PastureCapacity(at(0, 3))
		assert.Equal(t, 8, capacity)
	})

	t.Run("animals fill a pasture up to capacity", func(t *testing.T) {
		t.Log("Given a two space pasture holding 3 sheep")
		f := NewFarmyard()
		fencedPasture(t, f, at(0, 3), at(0, 4))
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Sheep, 3, goods.Farmyard, at(0, 3), goods.ActionSpace, at(0, 2))))

		t.Log("When 2 more sheep arrive")
		err := f.Move(goods.NewMoveRequest(goods.Sheep, 2, goods.Farmyard, at(0, 4), goods.ActionSpace, at(0, 2)))

		t.Log("Then the move is refused")
		assert.True(t, errdefs.IsIllegal(err))
		n, kind, _ := f.PastureAnimals(at(0, 4))
		assert.Equal(t, 3, n)
		assert.Equal(t, goods.Sheep, kind)

		t.Log("And exactly the remaining capacity fits")
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(0, 4), goods.ActionSpace, at(0, 2))))
		present, _ := f.NumGoodsPresent(at(0, 4))
		assert.Equal(t, 1, present)

		t.Log("And a full pasture takes nothing more")
		err = f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(0, 4), goods.ActionSpace, at(0, 2)))
		assert.True(t, errdefs.IsIllegal(err))
	})

	t.Run("a pasture keeps to one species", func(t *testing.T) {
		f := NewFarmyard()
		fencedPasture(t, f, at(0, 4))
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Boar, 1, goods.Farmyard, at(0, 4), goods.ActionSpace, at(0, 2))))

		err := f.Move(goods.NewMoveRequest(goods.Cattle, 1, goods.Farmyard, at(0, 4), goods.ActionSpace, at(0, 2)))
		assert.True(t, errdefs.IsIllegal(err))
	})

	t.Run("breeding respects capacity", func(t *testing.T) {
		f := NewFarmyard()
		fencedPasture(t, f, at(0, 4))
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(0, 4), goods.ActionSpace, at(0, 2))))
		require.NoError(t, f.Breed(at(0, 4), goods.Sheep))
		assert.True(t, errdefs.IsIllegal(f.Breed(at(0, 4), goods.Sheep)))
	})
}

func TestFarmyardAnimalMatrix(t *testing.T) {
	setup := func(t *testing.T) *Farmyard {
		t.Helper()
		f := NewFarmyard()
		fencedPasture(t, f, at(0, 4))
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Stable, 1, goods.Farmyard, at(2, 2), goods.Inventory, inv)))
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Sheep, 2, goods.Farmyard, at(0, 4), goods.ActionSpace, at(0, 2))))
		return f
	}

	t.Run("pasture to stable to room", func(t *testing.T) {
		f := setup(t)
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(2, 2), goods.Farmyard, at(0, 4))))
		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(1, 0), goods.Farmyard, at(2, 2))))

		n, _ := f.NumGoodsPresent(at(1, 0))
		assert.Equal(t, 1, n)
		n, _ = f.NumGoodsPresent(at(2, 2))
		assert.Equal(t, 0, n)
	})

	t.Run("unstabled unused spaces hold nothing", func(t *testing.T) {
		f := setup(t)
		err := f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(2, 3), goods.Farmyard, at(0, 4)))
		assert.True(t, errdefs.IsIllegal(err))
	})

	t.Run("rooms hold a single animal", func(t *testing.T) {
		f := setup(t)
		err := f.Move(goods.NewMoveRequest(goods.Sheep, 2, goods.Farmyard, at(1, 0), goods.Farmyard, at(0, 4)))
		assert.True(t, errdefs.IsIllegal(err))

		require.NoError(t, f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(1, 0), goods.Farmyard, at(0, 4))))
		err = f.Move(goods.NewMoveRequest(goods.Sheep, 1, goods.Farmyard, at(1, 0), goods.Farmyard, at(0, 4)))
		assert.True(t, errdefs.IsIllegal(err))
	})

	t.Run("stables cannot be doubled up", func(t *testing.T) {
		f := setup(t)
		err := f.Move(goods.NewMoveRequest(goods.Stable, 1, goods.Farmyard, at(2, 2), goods.Inventory, inv))
		assert.True(t, errdefs.IsIllegal(err))
		err = f.Move(goods.NewMoveRequest(goods.Stable, 1, goods.Farmyard, at(1, 0), goods.Inventory, inv))
		assert.True(t, errdefs.IsIllegal(err))
	})
}

func TestTiles(t *testing.T) {
	tiles := NewTiles()
	require.NoError(t, tiles.Take(WoodRoom, 3))
	assert.Equal(t, WoodFieldTiles-3, tiles.Available(Field))

	assert.True(t, errdefs.IsIllegal(tiles.Take(StoneRoom, ClayStoneTiles+1)))
	assert.Equal(t, ClayStoneTiles, tiles.Available(ClayRoom))

	require.NoError(t, tiles.Return(WoodRoom, 3))
	assert.Equal(t, WoodFieldTiles, tiles.Available(WoodRoom))
}

func TestTileSwap(t *testing.T) {
	tiles := NewTiles()

	require.NoError(t, tiles.Swap(WoodRoom, ClayRoom, 2))
	assert.Equal(t, WoodFieldTiles+2, tiles.Available(WoodRoom))
	assert.Equal(t, ClayStoneTiles-2, tiles.Available(ClayRoom))

	require.NoError(t, tiles.Swap(ClayRoom, StoneRoom, 2))
	assert.Equal(t, ClayStoneTiles-2, tiles.Available(StoneRoom))

	assert.True(t, errdefs.IsIllegal(tiles.Swap(WoodRoom, ClayRoom, ClayStoneTiles)))
	assert.True(t, errdefs.IsIllegal(tiles.Swap(Pasture, ClayRoom, 1)))
}
