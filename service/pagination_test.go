package service

import (
	"testing"

	"github.com/BerniceZTT/product_console/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{ID: i + 1, Name: "Produto", Quantity: i}
	}
	return products
}

func TestWindow_Sizes(t *testing.T) {
	source := makeProducts(25)
	for start := 0; start < len(source); start++ {
		visible, ok := Window(source, start, 10)
		require.True(t, ok, "start %d", start)

		want := 10
		if len(source)-start < want {
			want = len(source) - start
		}
		assert.Len(t, visible, want, "start %d", start)
		assert.Equal(t, start+1, visible[0].ID)
	}
}

func TestWindow_Rejects(t *testing.T) {
	source := makeProducts(25)

	for _, start := range []int{-10, -1, 25, 30, 100} {
		visible, ok := Window(source, start, 10)
		assert.False(t, ok, "start %d", start)
		assert.Nil(t, visible)
	}
}

func TestWindow_EmptySource(t *testing.T) {
	visible, ok := Window(nil, 0, 10)
	assert.True(t, ok)
	assert.Empty(t, visible)

	_, ok = Window(nil, 10, 10)
	assert.False(t, ok)
	_, ok = Window([]models.Product{}, -10, 10)
	assert.False(t, ok)
}

func TestWindow_SliceCannotGrowIntoSource(t *testing.T) {
	source := makeProducts(15)
	visible, ok := Window(source, 0, 10)
	require.True(t, ok)

	visible = append(visible, models.Product{ID: 99})

	assert.Equal(t, 11, source[10].ID)
	assert.Len(t, visible, 11)
}

func TestPaginator_ScenarioTwentyFive(t *testing.T) {
	source := makeProducts(25)
	p := NewPaginator(0)
	p.Reset(source)
	assert.Equal(t, models.WindowState{Start: 0, Size: models.PageSize}, p.State())
	assert.Len(t, p.Visible(), 10)

	require.True(t, p.Next(source))
	assert.Equal(t, 10, p.State().Start)

	require.True(t, p.Next(source))
	assert.Equal(t, 20, p.State().Start)
	assert.Len(t, p.Visible(), 5)

	// 20+10=30 >= 25，被拒绝，状态不变
	assert.False(t, p.Next(source))
	assert.Equal(t, 20, p.State().Start)
	assert.Len(t, p.Visible(), 5)
	assert.Equal(t, 21, p.Visible()[0].ID)
}

func TestPaginator_PreviousAtFirstPageIsNoop(t *testing.T) {
	source := makeProducts(12)
	p := NewPaginator(10)
	p.Reset(source)

	assert.False(t, p.Previous(source))
	assert.Equal(t, 0, p.State().Start)
	assert.Len(t, p.Visible(), 10)

	require.True(t, p.Next(source))
	require.True(t, p.Previous(source))
	assert.Equal(t, 0, p.State().Start)
}

func TestPaginator_RejectedMoveIsIdempotent(t *testing.T) {
	source := makeProducts(25)
	p := NewPaginator(10)
	p.Reset(source)
	require.True(t, p.Next(source))
	before := p

	for _, start := range []int{-1, 25, 40} {
		assert.False(t, p.MoveTo(source, start))
		assert.Equal(t, before.State(), p.State())
		assert.Equal(t, before.Visible(), p.Visible())
	}
}

func TestPaginator_StartStaysMultipleOfSize(t *testing.T) {
	source := makeProducts(47)
	p := NewPaginator(10)
	p.Reset(source)

	moves := []bool{true, true, false, true, true, true, true, true, false, false}
	for _, next := range moves {
		if next {
			p.Next(source)
		} else {
			p.Previous(source)
		}
		assert.Zero(t, p.State().Start%p.State().Size)
		assert.Less(t, p.State().Start, len(source))
	}
}

func TestPaginator_Pagination(t *testing.T) {
	source := makeProducts(25)
	p := NewPaginator(10)
	p.Reset(source)

	pg := p.Pagination(len(source))
	assert.Equal(t, models.Pagination{Total: 25, Page: 1, Limit: 10, Pages: 3, HasPrev: false, HasNext: true}, pg)

	p.Next(source)
	p.Next(source)
	pg = p.Pagination(len(source))
	assert.Equal(t, int64(3), pg.Page)
	assert.True(t, pg.HasPrev)
	assert.False(t, pg.HasNext)

	empty := NewPaginator(10)
	empty.Reset(nil)
	pg = empty.Pagination(0)
	assert.Equal(t, int64(0), pg.Pages)
	assert.False(t, pg.HasPrev)
	assert.False(t, pg.HasNext)
}
