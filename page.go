package barchart

import (
	"bytes"
	"html/template"
	"io"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.Style}}</style>
</head>
<body>
<div id="chart">
{{.Chart}}
</div>
</body>
</html>
`))

// RenderPage writes an HTML page holding the chart inside the #chart
// container.
func (c *Chart) RenderPage(w io.Writer) error {
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		return err
	}
	doc := buf.Bytes()
	if i := bytes.Index(doc, []byte("<svg")); i > 0 {
		doc = doc[i:]
	}
	title := c.Title
	if title == "" {
		title = "bar chart"
	}
	data := struct {
		Title string
		Style template.CSS
		Chart template.HTML
	}{
		Title: title,
		Style: template.CSS(PageStylesheet),
		Chart: template.HTML(doc),
	}
	return page.Execute(w, data)
}
