package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gap = Ellipsis()

func pages(nums ...int) []PageToken {
	out := make([]PageToken, len(nums))
	for i, n := range nums {
		if n == 0 {
			out[i] = gap
			continue
		}
		out[i] = Page(n)
	}
	return out
}

func TestComputePageRange(t *testing.T) {
	t.Parallel()

	// 0 stands for an ellipsis in the expectations below.
	cases := []struct {
		name                       string
		current, total, maxVisible int
		want                       []PageToken
	}{
		{"centered window", 5, 10, 5, pages(1, 0, 4, 5, 6, 0, 10)},
		{"single page", 1, 1, 5, pages(1)},
		{"window at start", 1, 10, 5, pages(1, 2, 3, 0, 10)},
		{"window at end", 10, 10, 5, pages(1, 0, 8, 9, 10)},
		{"budget covers all pages", 3, 4, 5, pages(1, 2, 3, 4)},
		{"budget equals total", 5, 5, 5, pages(1, 2, 3, 4, 5)},
		{"second page", 2, 10, 5, pages(1, 2, 3, 0, 10)},
		{"start adjacent to first page", 3, 10, 5, pages(1, 2, 3, 4, 0, 10)},
		{"end adjacent to last page", 8, 10, 5, pages(1, 0, 7, 8, 9, 10)},
		{"wider budget", 10, 20, 7, pages(1, 0, 8, 9, 10, 11, 12, 0, 20)},
		{"even budget skews right", 5, 10, 6, pages(1, 0, 4, 5, 6, 7, 0, 10)},
		{"minimal budget", 5, 10, 1, pages(1, 0, 5, 0, 10)},
		{"budget of two", 1, 3, 2, pages(1, 0, 3)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ComputePageRange(tc.current, tc.total, tc.maxVisible))
		})
	}
}

func TestComputePageRangeInvariants(t *testing.T) {
	t.Parallel()

	for total := 1; total <= 30; total++ {
		for maxVisible := 1; maxVisible <= 9; maxVisible++ {
			for current := 1; current <= total; current++ {
				tokens := ComputePageRange(current, total, maxVisible)
				require.NotEmpty(t, tokens)

				assert.Equal(t, Page(1), tokens[0], "first token (%d/%d/%d)", current, total, maxVisible)
				assert.Equal(t, Page(total), tokens[len(tokens)-1], "last token (%d/%d/%d)", current, total, maxVisible)

				seen := map[int]bool{}
				prev := 0
				numbers := 0
				containsCurrent := false
				for i, tok := range tokens {
					if tok.IsEllipsis() {
						require.Greater(t, i, 0)
						require.False(t, tokens[i-1].IsEllipsis(), "adjacent ellipses")
						continue
					}
					numbers++
					assert.Greater(t, tok.Page, prev, "pages ascend")
					assert.False(t, seen[tok.Page], "page %d repeated", tok.Page)
					if i > 0 && !tokens[i-1].IsEllipsis() {
						assert.Equal(t, prev+1, tok.Page, "no silent gaps")
					}
					if i > 0 && tokens[i-1].IsEllipsis() {
						assert.Greater(t, tok.Page, prev+1, "ellipsis hides at least one page")
					}
					seen[tok.Page] = true
					prev = tok.Page
					containsCurrent = containsCurrent || tok.Page == current
				}
				assert.True(t, containsCurrent, "current page shown (%d/%d/%d)", current, total, maxVisible)
				assert.LessOrEqual(t, numbers, max(maxVisible, 3), "budget (%d/%d/%d)", current, total, maxVisible)
			}
		}
	}
}

func TestComputePageRangeOutOfDomain(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ComputePageRange(1, 0, 5))
	assert.Equal(t, ComputePageRange(1, 10, 5), ComputePageRange(-3, 10, 5))
	assert.Equal(t, ComputePageRange(10, 10, 5), ComputePageRange(42, 10, 5))
	assert.Equal(t, ComputePageRange(5, 10, 1), ComputePageRange(5, 10, 0))
}

func TestPageTokenString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", Page(7).String())
	assert.Equal(t, "...", Ellipsis().String())
}

func TestPaginatorNavigationClamps(t *testing.T) {
	t.Parallel()

	p := New(10)
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, DefaultMaxVisible, p.MaxVisible())

	assert.Equal(t, 1, p.Prev())
	assert.Equal(t, 2, p.Next())
	assert.Equal(t, 10, p.Last())
	assert.Equal(t, 10, p.Next())
	assert.Equal(t, 1, p.First())
	assert.Equal(t, 10, p.GoTo(99))
	assert.Equal(t, 1, p.GoTo(-4))
}

func TestPaginatorOptions(t *testing.T) {
	t.Parallel()

	p := New(0, WithCurrent(3), WithMaxVisible(0))
	assert.Equal(t, 1, p.Total())
	assert.Equal(t, 1, p.Current())
	assert.Equal(t, DefaultMaxVisible, p.MaxVisible())

	p = New(20, WithCurrent(15), WithMaxVisible(7))
	assert.Equal(t, 15, p.Current())
	assert.Equal(t, ComputePageRange(15, 20, 7), p.Pages())
	assert.True(t, p.IsCurrent(Page(15)))
	assert.False(t, p.IsCurrent(Ellipsis()))
}

func TestPaginatorSetTotalReclamps(t *testing.T) {
	t.Parallel()

	p := New(10, WithCurrent(9))
	p.SetTotal(4)
	assert.Equal(t, 4, p.Current())
	assert.True(t, p.OnLastPage())
}

func TestPaginatorControls(t *testing.T) {
	t.Parallel()

	p := New(5)
	leading := p.Leading()
	require.Len(t, leading, 2)
	assert.Equal(t, Control{Kind: ControlFirst, Target: 1, Disabled: true}, leading[0])
	assert.Equal(t, Control{Kind: ControlPrev, Target: 1, Disabled: true}, leading[1])

	trailing := p.Trailing()
	require.Len(t, trailing, 2)
	assert.Equal(t, Control{Kind: ControlNext, Target: 2, Disabled: false}, trailing[0])
	assert.Equal(t, Control{Kind: ControlLast, Target: 5, Disabled: false}, trailing[1])

	assert.Equal(t, 1, p.Activate(leading[0]))
	assert.Equal(t, 5, p.Activate(trailing[1]))

	trailing = p.Trailing()
	assert.True(t, trailing[0].Disabled)
	assert.True(t, trailing[1].Disabled)
	assert.Equal(t, 5, p.Activate(trailing[0]))
}

func TestPaginatorHiddenControls(t *testing.T) {
	t.Parallel()

	p := New(5, WithFirstLast(false))
	require.Len(t, p.Leading(), 1)
	assert.Equal(t, ControlPrev, p.Leading()[0].Kind)

	p = New(5, WithFirstLast(false), WithPrevNext(false))
	assert.Empty(t, p.Leading())
	assert.Empty(t, p.Trailing())
}

func TestControlLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "First page", ControlFirst.Label())
	assert.Equal(t, "Previous page", ControlPrev.Label())
	assert.Equal(t, "Next page", ControlNext.Label())
	assert.Equal(t, "Last page", ControlLast.Label())
}
