package render

import (
	"errors"
	"html/template"
	"io"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// CredentialHint is shown under every data source failure.
const CredentialHint = "请检查 Google Sheet 凭证配置。"

// ErrorBanner renders the single page-level banner for a data source failure.
func ErrorBanner(err error) template.HTML {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}

	var b builder
	b.WriteString(`<div class="error-banner" role="alert">`)
	b.tag(`<p class="error-title">连接失败：`, esc(msg), `</p>`)
	b.tag(`<p class="error-hint">`, esc(CredentialHint), `</p>`)
	b.WriteString(`</div>`)
	return b.html()
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// RenderPage writes a complete HTML document for the page.
func RenderPage(w io.Writer, page models.Page) error {
	if page.Title == "" {
		return errors.New("render: page title is required")
	}
	return pageTemplate.Execute(w, pageView{Page: page, CSS: template.CSS(PageCSS)})
}

type pageView struct {
	models.Page
	CSS template.CSS
}

const pageHTML = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="Accept-CH" content="Sec-CH-Viewport-Width">
<title>{{.Title}}</title>
<style>{{.CSS}}</style>
<script>
(function () {
  var u = new URL(window.location.href);
  if (!u.searchParams.has("vw")) {
    u.searchParams.set("vw", String(window.innerWidth));
    window.location.replace(u.toString());
  }
})();
</script>
</head>
<body class="mode-{{.Mode}}">
<header class="page-header">
  <h1>{{.Title}}</h1>
  <p class="caption">{{.Caption}}</p>
</header>
{{if .Banner}}{{.Banner}}{{else}}
<main class="tabs">
{{range .Tabs}}<input class="tab-radio" type="radio" name="tabs" id="tab-{{.ID}}"{{if eq .ID $.ActiveTab}} checked{{end}}><label class="tab-label" for="tab-{{.ID}}">{{.Label}}</label>
{{end}}
{{range $tab := .Tabs}}<section class="panel" id="panel-{{$tab.ID}}">
{{with $tab.Filter}}<form class="filter" method="get">
  <input type="hidden" name="tab" value="{{$tab.ID}}">
  <input type="hidden" name="filtered" value="{{.Param}}">
  {{if $.ViewportWidth}}<input type="hidden" name="vw" value="{{$.ViewportWidth}}">{{end}}
  <span class="filter-label">{{.Label}}</span>
  {{if .Multiple}}{{$p := .Param}}{{range .Options}}<label class="chip"><input type="checkbox" name="{{$p}}" value="{{.Value}}"{{if .Selected}} checked{{end}}>{{.Value}}</label>{{end}}
  {{else}}<select name="{{.Param}}">{{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select>
  {{end}}<button type="submit">应用</button>
</form>{{end}}
{{$tab.Body}}
{{if $tab.Caption}}<p class="tab-caption">{{$tab.Caption}}</p>{{end}}
</section>
{{end}}
</main>
{{end}}
</body>
</html>
`
