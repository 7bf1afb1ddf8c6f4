package main

import (
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <grammar file>",
		Short:   "Print a human-readable description of a compiled grammar",
		Example: `  parley show grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

const showTemplate = `# {{ .Name }}

start: {{ .Start }}
{{ if .Deletables }}deletables: {{ range .Deletables }}{{ . }} {{ end }}
{{ end }}
{{- range .Symbols }}
{{ .Name }}
{{- range .Rules }}
    {{ if eq .Kind "terminal" }}{{ printf "%q" .Terminal }}{{ else }}{{ range .RHS }}{{ . }} {{ end }}{{ end }}{{ if ne .Kind "non-terminal" }}({{ .Kind }}{{ if .InsertionIdx }}, idx {{ .InsertionIdx }}{{ end }}) {{ end }}cost {{ printf "%g" .Cost }}{{ if .Semantic }} sem {{ .Semantic.Name }}{{ end }}
{{- end }}
{{ end }}`

func runShow(cmd *cobra.Command, args []string) error {
	cg, err := readGrammar(args[0])
	if err != nil {
		return err
	}
	tmpl, err := template.New("show").Parse(showTemplate)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(os.Stdout, cg); err != nil {
		return fmt.Errorf("cannot describe %v: %w", args[0], err)
	}
	return nil
}
