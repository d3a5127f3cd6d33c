package httpapi

import "html/template"

// formTemplate renders the category-selection page, a direct analogue of
// the original environment's CategoriesForm checkbox list: one checkbox per
// category, submitting to /api/graph(.svg) via a comma-joined query string.
var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head><title>emgraph</title></head>
<body>
  <h1>Dependency graph</h1>
  <form id="categories" onsubmit="return false">
    {{range .}}
    <label><input type="checkbox" name="categories" value="{{.}}" checked> {{.}}</label><br>
    {{end}}
    <button type="button" onclick="go()">Render</button>
  </form>
  <div id="graph"></div>
  <script>
    function selected() {
      return Array.from(document.querySelectorAll('input[name=categories]:checked'))
        .map(el => el.value).join(',');
    }
    function go() {
      fetch('/api/graph.svg?categories=' + encodeURIComponent(selected()))
        .then(r => r.text())
        .then(svg => { document.getElementById('graph').innerHTML = svg; });
    }
  </script>
</body>
</html>
`))
