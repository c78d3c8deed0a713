package export

import (
	"bytes"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/adstradigital/adinvoice-sub000/internal/proposal"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
@page { size: A4; margin: 0; }
body { margin: 0; padding: 0; }
.page {
	width: 595.28px;
	height: 841.89px;
	box-sizing: border-box;
	padding: 24px;
	page-break-after: always;
	background-size: cover;
}
.page:last-child { page-break-after: avoid; }
table { width: 100%; border-collapse: collapse; margin: 8px 0; }
th, td { border: 1px solid #ddd; padding: 6px 8px; text-align: left; }
.region { margin-bottom: 10px; }
</style>
</head>
<body>
{{- range .Pages}}
<div class="page" style="{{.Style}}">
	{{- range .Regions}}
	{{- if .Table}}
	<table class="region">
		<thead><tr>{{range .Table.Columns}}<th style="{{$.TableHeaderStyle}}">{{.}}</th>{{end}}</tr></thead>
		<tbody>
		{{- range .Table.Rows}}
		<tr>{{range .}}<td style="{{$.TableCellStyle}}">{{.}}</td>{{end}}</tr>
		{{- end}}
		</tbody>
	</table>
	{{- else}}
	<div class="region" style="{{.Style}}">
		{{- range .Lines}}
		<div>{{.}}</div>
		{{- end}}
	</div>
	{{- end}}
	{{- end}}
</div>
{{- end}}
</body>
</html>`

var htmlTmpl = template.Must(template.New("pages").Parse(pageTemplate))

type htmlRegion struct {
	Style template.CSS
	Lines []string
	Table *proposal.Table
}

type htmlPage struct {
	Style   template.CSS
	Regions []htmlRegion
}

type htmlDoc struct {
	Pages            []htmlPage
	TableHeaderStyle template.CSS
	TableCellStyle   template.CSS
}

// PagesHTML builds the print rendition of a page sequence. assetDir, when
// non-empty, is where template background images are resolved from.
func PagesHTML(pages []proposal.Page, assetDir string) ([]byte, error) {
	doc := htmlDoc{}
	for _, pg := range pages {
		hp := htmlPage{Style: pageCSS(pg, assetDir)}
		for _, region := range pg.Regions {
			hr := htmlRegion{Style: regionCSS(region.Style), Lines: region.Lines, Table: region.Table}
			if region.Table != nil {
				doc.TableHeaderStyle = regionCSS(region.Table.Header)
				doc.TableCellStyle = regionCSS(region.Table.Cell)
			}
			hp.Regions = append(hp.Regions, hr)
		}
		doc.Pages = append(doc.Pages, hp)
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pageCSS(pg proposal.Page, assetDir string) template.CSS {
	css := string(regionCSS(pg.Container))
	if pg.Background != "" && assetDir != "" {
		css += "background-image:url('file://" + filepath.Join(assetDir, pg.Background) + "');"
	}
	return template.CSS(css)
}

func regionCSS(style proposal.RegionStyle) template.CSS {
	var b strings.Builder
	if style.FontFamily != "" {
		b.WriteString("font-family:" + style.FontFamily + ";")
	}
	if style.FontSize != "" {
		b.WriteString("font-size:" + style.FontSize + ";")
	}
	if style.FontWeight != "" {
		b.WriteString("font-weight:" + style.FontWeight + ";")
	}
	if style.Color != "" {
		b.WriteString("color:" + style.Color + ";")
	}
	if style.Background != "" {
		b.WriteString("background:" + style.Background + ";")
	}
	if style.Align != "" {
		b.WriteString("text-align:" + style.Align + ";")
	}
	return template.CSS(b.String())
}
