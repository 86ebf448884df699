package cli

const movementTemplate = `
=== Movement ===

SKU:      {{.SKU}}
Quantity: {{.Quantity}}
From:     {{.FromLocation}}
To:       {{.ToLocation}}
{{- if .Note }}
Note:     {{.Note}}
{{- end}}

`

const drainReportTemplate = `
=== Sync Report ===

Sent:     {{len .Succeeded}}
Failed:   {{len .Failed}}
{{- range .Failed}}
  - {{.ID}} ({{.Type}}): {{.Err}}{{if .Transient}} [will retry]{{end}}
{{- end}}
{{- if .Unknown}}
Unknown:  {{len .Unknown}} (left in queue)
{{- range .Unknown}}
  - {{.}}
{{- end}}
{{- end}}
`
