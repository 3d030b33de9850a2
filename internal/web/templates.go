package web

import (
	"html/template"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/view"
)

var funcMap = template.FuncMap{
	"typeColor": view.TypeColor,
	"statLabel": func(key creature.StatKey) string { return view.StatLabels[key] },
	"statValue": func(state view.DisplayState, key creature.StatKey) string {
		return state.Stats[key]
	},
}

// page is the data the page template renders.
type page struct {
	State       view.DisplayState
	StatKeys    []creature.StatKey
	Notices     []string
	Suggestions []string
}

var pageTemplate = template.Must(template.New("page").Funcs(funcMap).Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Creature Search</title>
<style>
body { font-family: sans-serif; max-width: 36rem; margin: 2rem auto; }
.type { display: inline-block; padding: 0.2rem 0.6rem; margin-right: 0.3rem; border-radius: 0.3rem; font-weight: bold; }
.notice { background: #fdd; border: 1px solid #c33; padding: 0.6rem; }
table { border-collapse: collapse; }
td { padding: 0.2rem 1rem 0.2rem 0; }
</style>
</head>
<body>
{{range .Notices}}<p class="notice" role="alert">{{.}}</p>
{{end}}
<form method="get" action="/">
<label for="search-input">Search for Creature Name or ID:</label>
<input id="search-input" name="q" value="{{.State.Input}}" list="creature-names" required>
<datalist id="creature-names">{{range .Suggestions}}<option value="{{.}}">{{end}}</datalist>
<button id="search-button" type="submit">Search</button>
</form>
<form method="post" action="/clear"><button id="clear-button" type="submit">Clear</button></form>
{{if .State.InfoVisible}}
<section id="creature-info">
<h2><span id="creature-name">{{.State.Name}}</span> <span id="creature-id">{{.State.ID}}</span></h2>
<p><span id="weight">{{.State.Weight}}</span> <span id="height">{{.State.Height}}</span></p>
<div id="types">{{range .State.Types}}<span class="type {{.StyleKey}}" style="background: {{typeColor .}}">{{.Label}}</span>{{end}}</div>
<div id="special">
{{- if .State.Special.Title}}
<h3 id="special-name">{{.State.Special.Title}}</h3>
<p id="special-description">{{.State.Special.Description}}</p>
{{- else}}
<p>{{.State.Special.Placeholder}}</p>
{{- end}}
</div>
<table id="stats">
{{- $state := .State}}
{{- range .StatKeys}}
<tr><td>{{statLabel .}}</td><td id="{{.}}">{{statValue $state .}}</td></tr>
{{- end}}
</table>
</section>
{{end}}
</body>
</html>
`
