package mail

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/lysyi3m/arxiv-comb/app/arxiv"
)

const digestTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; max-width: 720px; margin: 0 auto; color: #222; }
  h1 { font-size: 20px; border-bottom: 2px solid #b31b1b; padding-bottom: 6px; }
  .paper { margin-bottom: 28px; }
  .paper h2 { font-size: 16px; margin-bottom: 2px; }
  .paper h2 a { color: #b31b1b; text-decoration: none; }
  .meta { font-size: 13px; color: #555; margin: 2px 0; }
  .keywords { font-size: 13px; color: #006400; }
  .tag { display: inline-block; background: #eee; border-radius: 3px; padding: 1px 6px;
         margin-right: 4px; font-size: 12px; }
  .summary { font-size: 14px; line-height: 1.5; margin-top: 6px; }
  .footer { font-size: 12px; color: #888; margin-top: 32px; }
</style>
</head>
<body>
<h1>{{.Headline}} &mdash; {{.AnnounceDate}}</h1>
{{range .Submissions}}
<div class="paper">
  <h2><a href="{{.ArxivURL}}">{{.Title}}</a></h2>
  <p class="meta">{{.ArxivID}} &middot; {{join .SubjectAbbrs ", "}}</p>
  <p class="meta">{{join .Authors ", "}}</p>
  <p class="keywords">Matched: {{keywords .Keywords}} (weight {{.Weight}})</p>
  {{if .Tags}}<p>{{range .Tags}}<span class="tag">{{.Phrase}}</span>{{end}}</p>{{end}}
  <p class="summary">{{.Summary}}</p>
</div>
{{end}}
<p class="footer">{{len .Submissions}} relevant submission(s) out of {{.TotalCount}} announced.</p>
</body>
</html>
`

type digestData struct {
	Headline     string
	AnnounceDate string
	Submissions  []arxiv.Submission
	TotalCount   int
}

// Renderer produces the HTML digest body and subject line for a profile.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"join": strings.Join,
		"keywords": func(matches []arxiv.KeywordMatch) string {
			parts := make([]string, 0, len(matches))
			for _, m := range matches {
				parts = append(parts, m.Keyword)
			}
			return strings.Join(parts, ", ")
		},
	}

	return &Renderer{
		tmpl: template.Must(template.New("digest").Funcs(funcs).Parse(digestTemplate)),
	}
}

// Run renders the digest for one announce date. Submissions are expected
// to already be relevance-filtered and sorted; totalCount is the size of
// the unfiltered day.
func (r *Renderer) Run(headline, announceDate string, subs []arxiv.Submission, totalCount int) (string, string, error) {
	subject := fmt.Sprintf("%s: %d papers for %s", headline, len(subs), announceDate)

	var body strings.Builder
	err := r.tmpl.Execute(&body, digestData{
		Headline:     headline,
		AnnounceDate: announceDate,
		Submissions:  subs,
		TotalCount:   totalCount,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render digest: %w", err)
	}

	return subject, body.String(), nil
}
