package render_test

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/render"
)

var (
	rowspanRe = regexp.MustCompile(`rowspan="(\d+)"`)
	bodyRowRe = regexp.MustCompile(`<tr>`)
)

func bodyRows(markup string) int {
	_, body, ok := strings.Cut(markup, "<tbody>")
	if !ok {
		return 0
	}
	return len(bodyRowRe.FindAllString(body, -1))
}

func spanSum(t *testing.T, markup string) int {
	t.Helper()
	sum := 0
	for _, m := range rowspanRe.FindAllStringSubmatch(markup, -1) {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		sum += n
	}
	return sum
}

var weeklyHeader = models.Header{"训练日", "动作名称", "目标RPE"}

func TestRenderGrid_EmptyInput(t *testing.T) {
	assert.Equal(t, render.NoData, render.RenderGrid(nil, weeklyHeader, render.Flat()))
	assert.Equal(t, render.NoData, render.RenderGrid([]models.Row{}, weeklyHeader, render.Merged(0)))
}

func TestRenderGrid_Flat(t *testing.T) {
	rows := []models.Row{
		{"第1天", "💪 深蹲", " 7-8 "},
		{"第1天", "臀桥", "4"},
	}

	out := string(render.RenderGrid(rows, weeklyHeader, render.Flat()))

	assert.Equal(t, 3, strings.Count(out, "<th>"))
	assert.Equal(t, 2, bodyRows(out))
	assert.NotContains(t, out, "rowspan")
	assert.Contains(t, out, `<span style="color:#1565c0; font-weight:600;">💪 深蹲</span>`)
	assert.Contains(t, out, `<span style="color:#c62828; font-weight:bold;">7-8</span>`)
	assert.Contains(t, out, `<span style="color:#2e7d32;">4</span>`)
}

func TestRenderGrid_Merged(t *testing.T) {
	rows := []models.Row{
		{"第1天", "深蹲", "8"},
		{"", "硬拉", "8"},
		{"", "臀桥", "5"},
		{"第2天", "卧推", "7"},
	}

	out := string(render.RenderGrid(rows, weeklyHeader, render.Merged(0)))

	assert.Equal(t, 4, bodyRows(out))
	assert.Equal(t, 4, spanSum(t, out))
	assert.Contains(t, out, `<td rowspan="3" class="merged-cell" style="background-color:#e8eaf6; color:#283593;">第1天</td>`)
	assert.Contains(t, out, `<td rowspan="1" class="merged-cell" style="background-color:#e0f2f1; color:#004d40;">第2天</td>`)
	// Continuation rows carry only the non-key columns.
	assert.Contains(t, out, `<tr><td>硬拉</td>`)
}

func TestRenderGrid_SpanSumProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []string{"", "", "第1天", "第2天", "热身"}

	for iter := 0; iter < 100; iter++ {
		n := 1 + rng.Intn(25)
		rows := make([]models.Row, n)
		for i := range rows {
			rows[i] = models.Row{keys[rng.Intn(len(keys))], "x", "y"}
		}

		out := string(render.RenderGrid(rows, weeklyHeader, render.Merged(0)))

		require.Equal(t, n, spanSum(t, out), "span values must sum to the row count")
		require.Equal(t, n, bodyRows(out), "one emitted row per input row")
	}
}

func TestRenderGrid_MergedKeyOutsideHeaderRendersFlat(t *testing.T) {
	rows := []models.Row{{"a", "b", "c"}, {"", "d", "e"}}

	for _, col := range []int{-1, 3, 5} {
		out := string(render.RenderGrid(rows, weeklyHeader, render.Merged(col)))

		assert.NotContains(t, out, "rowspan", "column %d", col)
		assert.Equal(t, len(rows), bodyRows(out), "column %d", col)
		assert.Equal(t, string(render.RenderGrid(rows, weeklyHeader, render.Flat())), out, "column %d", col)
	}
}

func TestRenderGrid_Idempotent(t *testing.T) {
	rows := []models.Row{{"第1天", "深蹲", "8"}, {"", "硬拉", "7-8"}}

	first := render.RenderGrid(rows, weeklyHeader, render.Merged(0))
	second := render.RenderGrid(rows, weeklyHeader, render.Merged(0))

	assert.Equal(t, first, second)
	assert.Equal(t, "", rows[1][0], "rendering must not fill the source rows")
}

func TestRenderGrid_EscapesCellText(t *testing.T) {
	rows := []models.Row{{"<b>day</b>", "a & b", "<script>"}}

	out := string(render.RenderGrid(rows, weeklyHeader, render.Merged(0)))

	assert.Contains(t, out, "&lt;b&gt;day&lt;/b&gt;")
	assert.Contains(t, out, "a &amp; b")
	assert.NotContains(t, out, "<script>")
}

func TestGridMode(t *testing.T) {
	assert.False(t, render.Flat().IsMerged())
	assert.Equal(t, -1, render.Flat().KeyColumn())
	assert.True(t, render.Merged(2).IsMerged())
	assert.Equal(t, 2, render.Merged(2).KeyColumn())
}
