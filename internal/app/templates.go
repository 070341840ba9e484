package app

// galleryTemplate holds the index and gallery pages. The grid is plain CSS
// columns; the "load more" button posts back to the discrete trigger
// endpoint. Clicking a thumbnail opens the xl variant.
const galleryTemplate = `
{{define "index"}}<!DOCTYPE html>
<html>
<head><title>galleries</title></head>
<body>
<h1>Galleries</h1>
<ul>
{{range .Galleries}}<li><a href="/g/{{.}}">{{.}}</a></li>
{{end}}</ul>
</body>
</html>{{end}}

{{define "gallery"}}<!DOCTYPE html>
<html>
<head>
<title>{{.Name}}</title>
<style>
.grid { column-count: {{.Columns}}; column-gap: 8px; }
.grid figure { margin: 0 0 8px; break-inside: avoid; }
.grid img { width: 100%; display: block; }
.notice { background: #fff3cd; padding: 8px; margin-bottom: 8px; }
.error { background: #f8d7da; padding: 8px; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
{{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>
{{else if eq .State "empty"}}<p>no photos found</p>
{{else}}<div class="grid">
{{range .Photos}}<figure>
{{if .ThumbURL}}<a href="{{.PreviewURL}}"><img src="{{.ThumbURL}}" alt="{{.Filename}}" loading="lazy"></a>
{{else}}<span>{{.Filename}}</span>
{{end}}</figure>
{{end}}</div>
{{if .CanLoadMore}}<form method="post" action="/g/{{.Name}}/more"><button type="submit">load more</button></form>{{end}}
{{end}}
</body>
</html>{{end}}
`
