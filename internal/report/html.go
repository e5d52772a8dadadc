package report

import (
	"html/template"
	"os"
	"sort"
	"strings"

	"jobalert-engine/internal/domain"
)

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Job Alert Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
.dropdown { display: inline-block; margin-right: 1em; }
.dropdown-content a { display: block; padding: 2px 8px; cursor: pointer; }
footer { margin-top: 2em; color: #777; font-size: 0.8em; }
</style>
</head>
<body>
<h1>Job Alert Report</h1>

<div class="dropdown">
  <span>Source</span>
  <div class="dropdown-content" id="sourceFilter">
    <a data-source="">All</a>
{{- range .Sources}}
    <a data-source="{{.}}">{{.}}</a>
{{- end}}
  </div>
</div>
<div class="dropdown">
  <span>Remote</span>
  <div class="dropdown-content" id="remoteFilter">
    <a data-remote="">All</a>
    <a data-remote="Yes">Yes</a>
    <a data-remote="No">No</a>
  </div>
</div>

<table id="entries">
<thead>
<tr><th>Source</th><th>Job Position</th><th>Location</th><th>Min Qualifications</th><th>Remote</th></tr>
</thead>
<tbody>
{{- range .Entries}}
<tr data-source="{{.Source}}" data-remote="{{.Remote}}"><td>{{.Source}} ({{.Filename}})</td><td>{{.JobPosition}}</td><td>{{.Location}}</td><td>{{.Qualifications}}</td><td>{{.Remote}}</td></tr>
{{- end}}
</tbody>
</table>

<script>
(function () {
  var source = "";
  var remote = "";
  function apply() {
    var rows = document.querySelectorAll("#entries tbody tr");
    rows.forEach(function (row) {
      var show = (!source || row.dataset.source === source) &&
                 (!remote || row.dataset.remote === remote);
      row.style.display = show ? "" : "none";
    });
  }
  document.querySelectorAll("#sourceFilter a").forEach(function (a) {
    a.addEventListener("click", function () { source = a.dataset.source; apply(); });
  });
  document.querySelectorAll("#remoteFilter a").forEach(function (a) {
    a.addEventListener("click", function () { remote = a.dataset.remote; apply(); });
  });
})();
</script>

<footer>Generated by jobalert-engine</footer>
</body>
</html>
`))

type htmlRow struct {
	Source         string
	Filename       string
	JobPosition    string
	Location       string
	Qualifications template.HTML
	Remote         string
}

type htmlData struct {
	Sources []string
	Entries []htmlRow
}

// WriteHTML renders the static filterable table view.
func WriteHTML(path string, entries []domain.JobEntry) error {
	data := htmlData{}

	seen := map[string]bool{}
	for _, e := range entries {
		src := string(e.Provider)
		if !seen[src] {
			seen[src] = true
			data.Sources = append(data.Sources, src)
		}

		quals := make([]string, 0, 4)
		for _, q := range strings.Split(e.MinimumQualifications, "\n") {
			quals = append(quals, template.HTMLEscapeString(q))
		}

		data.Entries = append(data.Entries, htmlRow{
			Source:         src,
			Filename:       e.Filename,
			JobPosition:    e.JobPosition,
			Location:       e.Location,
			Qualifications: template.HTML(strings.Join(quals, "<br>")),
			Remote:         yesNo(e.Remote),
		})
	}
	sort.Strings(data.Sources)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := htmlTmpl.Execute(f, data); err != nil {
		return err
	}
	return f.Close()
}
