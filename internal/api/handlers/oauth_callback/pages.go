package oauth_callback

import (
	"html/template"
	"net/http"
)

var resultPage = template.Must(template.New("result").Parse(`<!DOCTYPE html>
<html lang="pt">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, sans-serif; max-width: 600px; margin: 100px auto; padding: 2rem; background: #1a1a1a; color: white; text-align: center; }
h1 { color: {{if .Success}}#22c55e{{else}}#ef4444{{end}}; }
a { color: #ffd700; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
<a href="/admin.html">{{.Link}}</a>
</body>
</html>
`))

type page struct {
	Title   string
	Message string
	Link    string
	Success bool
}

func renderPage(w http.ResponseWriter, status int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = resultPage.Execute(w, p)
}
