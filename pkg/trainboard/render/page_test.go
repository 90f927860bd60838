package render_test

import (
	"bytes"
	"errors"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/render"
)

func TestRenderNotes(t *testing.T) {
	sheet := models.Sheet{
		Header: models.Header{"主题", "内容"},
		Rows: []models.Row{
			{"训练原则", ""},
			{" 渐进超负荷 ", " 每周加重不超过5% "},
			{"", ""},
			{"<饮食>", "高蛋白"},
		},
	}

	out := string(render.RenderNotes(sheet))

	assert.Equal(t, `<div class="notes"><h3>训练原则</h3><p><strong>渐进超负荷</strong>：每周加重不超过5%</p><hr><p><strong>&lt;饮食&gt;</strong>：高蛋白</p></div>`, out)
}

func TestRenderNotes_Empty(t *testing.T) {
	assert.Equal(t, render.NoData, render.RenderNotes(models.Sheet{}))
}

func TestErrorBanner(t *testing.T) {
	out := string(render.ErrorBanner(errors.New("invalid_grant <token>")))

	assert.Contains(t, out, "连接失败：invalid_grant &lt;token&gt;")
	assert.Contains(t, out, render.CredentialHint)
}

func TestRenderPage(t *testing.T) {
	page := models.Page{
		Title:         "💪 道长训练计划",
		Caption:       "数据来源：Google Sheet · 实时同步",
		Mode:          "desktop",
		ActiveTab:     models.TabLibrary,
		ViewportWidth: 1280,
		Tabs: []models.Tab{
			{ID: models.TabWeekly, Label: "📅 周训练计划", Body: template.HTML(`<table class="fit-table"></table>`),
				Filter: &models.Filter{Param: "day", Label: "筛选训练日", Multiple: true, Options: []models.FilterOption{
					{Value: "第1天", Selected: true}, {Value: "第2天"},
				}}},
			{ID: models.TabLibrary, Label: "📚 动作库", Body: render.NoData, Caption: "共 0 个动作"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render.RenderPage(&buf, page))
	out := buf.String()

	assert.Contains(t, out, "<title>💪 道长训练计划</title>")
	assert.Contains(t, out, `<table class="fit-table"></table>`, "tab bodies are emitted unescaped")
	assert.Contains(t, out, `id="tab-library" checked>`)
	assert.NotContains(t, out, `id="tab-weekly" checked>`)
	assert.Contains(t, out, `<input type="checkbox" name="day" value="第1天" checked>`)
	assert.Contains(t, out, `<input type="checkbox" name="day" value="第2天">`)
	assert.Contains(t, out, `<input type="hidden" name="vw" value="1280">`)
	assert.Contains(t, out, "共 0 个动作")
}

func TestRenderPage_Banner(t *testing.T) {
	page := models.Page{
		Title:  "t",
		Banner: render.ErrorBanner(errors.New("boom")),
		Tabs:   []models.Tab{{ID: models.TabWeekly, Label: "x"}},
	}

	var buf bytes.Buffer
	require.NoError(t, render.RenderPage(&buf, page))

	assert.Contains(t, buf.String(), "连接失败：boom")
	assert.NotContains(t, buf.String(), `class="panel"`)
}

func TestRenderPage_RequiresTitle(t *testing.T) {
	assert.Error(t, render.RenderPage(&bytes.Buffer{}, models.Page{}))
}
