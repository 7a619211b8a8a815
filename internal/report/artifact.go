package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-solver/internal/board"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

// One page per position. Empty cells that have a recorded child link to the
// child's page; occupied cells and every cell of a terminal position do not.
var pageTemplate = template.Must(template.New("position").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Key}}</title></head>
<body>
<p>depth {{.Depth}}, {{.Status}}{{if .HasValue}}, value {{.Value}}{{end}}</p>
<table>
{{range .Rows}}<tr>
{{range .}}<td>{{if .Child}}<a href="{{.Child}}.html">_</a>{{else}}{{.Mark}}{{end}}</td>
{{end}}</tr>
{{end}}</table>
{{if .Parents}}<p>reached from:{{range .Parents}} <a href="{{.}}.html">{{.}}</a>{{end}}</p>{{end}}
</body>
</html>
`))

type pageCell struct {
	Mark  string
	Child string
}

type pageData struct {
	Key      string
	Depth    int
	Status   string
	Value    int
	HasValue bool
	Rows     [3][3]pageCell
	Parents  []string
}

// WriteArtifacts - writes one navigable HTML page per position into dir,
// named <key>.html. The root page is the entry point.
func WriteArtifacts(dir string, graph *solver.Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifacts dir: %w", err)
	}

	for _, key := range graph.Keys() {
		node, err := graph.Lookup(key)
		if err != nil {
			return fmt.Errorf("artifact %q: %w", key, err)
		}

		if err = writePage(dir, key, node, graph); err != nil {
			return err
		}
	}

	return nil
}

func writePage(dir, key string, node *solver.Node, graph *solver.Graph) error {
	childByCell := make(map[int]string)
	for _, edge := range graph.Children(key) {
		childByCell[edge.Cell] = edge.Child
	}

	data := pageData{
		Key:     key,
		Depth:   node.Position.Depth,
		Status:  node.Position.Status,
		Parents: graph.Parents(key),
	}

	if value, err := node.Value(); err == nil {
		data.Value = value
		data.HasValue = true
	}

	for cell := 0; cell < board.Cells; cell++ {
		mark := node.Position.Board[cell]
		if mark == board.EmptyCell {
			mark = "_"
		}
		data.Rows[cell/3][cell%3] = pageCell{
			Mark:  mark,
			Child: childByCell[cell],
		}
	}

	file, err := os.Create(filepath.Join(dir, key+".html"))
	if err != nil {
		return fmt.Errorf("create page for %q: %w", key, err)
	}

	if err = pageTemplate.Execute(file, data); err != nil {
		_ = file.Close()
		return fmt.Errorf("render page for %q: %w", key, err)
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("close page for %q: %w", key, err)
	}

	return nil
}
